package scraper

import (
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// GuildRow is one member row scraped from the tibia.com guild page.
type GuildRow struct {
	Name     string
	Vocation string
	Level    int
	Joined   string
	Status   string
}

// ParseTibiaComGuild extracts the member table from a tibia.com guild page.
// Row layout: rank | name | vocation | level | joining date | status.
func ParseTibiaComGuild(r io.Reader) ([]GuildRow, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var rows []GuildRow
	var traverse func(*html.Node)

	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			if isMemberRow(n) {
				if row, ok := extractMemberRow(n); ok {
					rows = append(rows, row)
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}

	traverse(doc)
	return rows, nil
}

func isMemberRow(n *html.Node) bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" && (attr.Val == "Odd" || attr.Val == "Even") {
			return true
		}
	}
	return false
}

func extractMemberRow(tr *html.Node) (GuildRow, bool) {
	var cells []*html.Node

	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "td" {
			cells = append(cells, c)
		}
	}

	if len(cells) < 6 {
		return GuildRow{}, false
	}

	name := extractMemberName(cells[1])
	if name == "" {
		return GuildRow{}, false
	}

	level, err := strconv.Atoi(strings.TrimSpace(getTextContent(cells[3])))
	if err != nil {
		return GuildRow{}, false
	}

	return GuildRow{
		Name:     name,
		Vocation: strings.TrimSpace(getTextContent(cells[2])),
		Level:    level,
		Joined:   strings.TrimSpace(getTextContent(cells[4])),
		Status:   strings.ToLower(strings.TrimSpace(getTextContent(cells[5]))),
	}, true
}

func extractMemberName(td *html.Node) string {
	var link *html.Node

	for c := td.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "a" {
			for _, attr := range c.Attr {
				if attr.Key == "href" && strings.Contains(attr.Val, "name=") {
					link = c
					break
				}
			}
			if link != nil {
				break
			}
		}
	}

	if link == nil {
		return ""
	}

	for _, attr := range link.Attr {
		if attr.Key == "href" && strings.Contains(attr.Val, "name=") {
			return extractNameFromURL(attr.Val)
		}
	}

	return ""
}

func extractNameFromURL(link string) string {
	re := regexp.MustCompile(`[?&]name=([^&]+)`)
	matches := re.FindStringSubmatch(link)
	if len(matches) < 2 {
		return ""
	}

	decoded, err := url.QueryUnescape(matches[1])
	if err != nil {
		return ""
	}
	return strings.ReplaceAll(decoded, "+", " ")
}

func getTextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text.WriteString(getTextContent(c))
	}

	return text.String()
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"guild-manager/internal/adapters/metrics"

	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://api.tibiadata.com/v4"

// requestsPerSecond keeps the client well under the TibiaData fair-use limit.
const requestsPerSecond = 5

type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: NewMetricsRoundTripper(http.DefaultTransport),
		},
		baseURL: DefaultBaseURL,
		limiter: rate.NewLimiter(requestsPerSecond, 2*requestsPerSecond),
	}
}

// NewTestClient creates a client with custom base URL for testing.
func NewTestClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

func (c *Client) GetGuild(ctx context.Context, name string) (*GuildResponse, error) {
	safeName := strings.ReplaceAll(url.PathEscape(name), "%27", "'")
	u := fmt.Sprintf("%s/guild/%s", c.baseURL, safeName)

	var data GuildResponse
	if err := c.getAndDecode(ctx, u, &data); err != nil {
		return nil, fmt.Errorf("fetch guild: %w", err)
	}

	return &data, nil
}

func (c *Client) GetCharacter(ctx context.Context, name string) (*CharacterResponse, error) {
	safeName := strings.ReplaceAll(url.PathEscape(name), "%27", "'")
	u := fmt.Sprintf("%s/character/%s", c.baseURL, safeName)

	var data CharacterResponse
	if err := c.getAndDecode(ctx, u, &data); err != nil {
		return nil, fmt.Errorf("fetch character: %w", err)
	}

	return &data, nil
}

func (c *Client) getAndDecode(ctx context.Context, url string, dest interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// -- Middleware --

type MetricsRoundTripper struct {
	Proxied http.RoundTripper
}

func NewMetricsRoundTripper(proxied http.RoundTripper) *MetricsRoundTripper {
	if proxied == nil {
		proxied = http.DefaultTransport
	}
	return &MetricsRoundTripper{Proxied: proxied}
}

func (mrt *MetricsRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := mrt.Proxied.RoundTrip(req)
	duration := time.Since(start).Seconds()

	status := "error"
	if err == nil {
		status = fmt.Sprintf("%d", resp.StatusCode)
	}

	endpoint := "unknown"
	path := req.URL.Path
	if len(path) > 0 {
		if strings.Contains(path, "/guild/") {
			endpoint = "guild"
		} else if strings.Contains(path, "/character/") {
			endpoint = "character"
		}
	}

	metrics.TibiaDataRequestDuration.WithLabelValues(endpoint, status).Observe(duration)
	metrics.TibiaDataRequests.WithLabelValues(endpoint, status).Inc()

	return resp, err
}

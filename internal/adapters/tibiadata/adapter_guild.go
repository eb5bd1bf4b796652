package tibiadata

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"guild-manager/internal/adapters/metrics"
	"guild-manager/internal/adapters/tibiadata/scraper"
	"guild-manager/internal/core/domain"
)

// FetchGuildRoster gets the full membership and invite listing. TibiaData is
// the primary source; when it fails and the fallback is enabled, the
// tibia.com guild page is scraped instead. Both failing means the cycle
// cannot run.
func (a *Adapter) FetchGuildRoster(ctx context.Context, guildName string) (*domain.GuildSnapshot, error) {
	resp, err := a.client.GetGuild(ctx, guildName)
	if err == nil && resp.Guild.Name != "" {
		snapshot := a.mapGuild(resp)
		slog.Info("Fetched guild roster", "guild", guildName, "members", len(snapshot.Members), "invites", len(snapshot.Invites))
		return snapshot, nil
	}

	if err == nil {
		err = fmt.Errorf("guild %q not found", guildName)
	}

	if !a.config.UseTibiaComFallback {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	slog.Warn("Failed to fetch guild from TibiaData, falling back to tibia.com", "guild", guildName, "error", err)
	snapshot, scrapeErr := a.fetchGuildFromTibiaCom(ctx, guildName)
	if scrapeErr != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, scrapeErr)
	}
	return snapshot, nil
}

func (a *Adapter) fetchGuildFromTibiaCom(ctx context.Context, guildName string) (*domain.GuildSnapshot, error) {
	start := time.Now()
	targetURL := fmt.Sprintf("%s/community/?subtopic=guilds&page=view&GuildName=%s", a.tibiaComBaseURL, url.QueryEscape(guildName))

	req, err := http.NewRequestWithContext(ctx, "GET", targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	a.addBrowserHeaders(req)

	resp, err := a.tibiaComClient.Do(req)

	status := "error"
	if err == nil {
		status = fmt.Sprintf("%d", resp.StatusCode)
	}
	duration := time.Since(start).Seconds()

	metrics.TibiaComRequestDuration.WithLabelValues(status).Observe(duration)
	metrics.TibiaComRequests.WithLabelValues(status).Inc()

	if err != nil {
		slog.Error("Failed to fetch tibia.com guild page", "guild", guildName, "error", err)
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("Unexpected status from tibia.com", "guild", guildName, "status", resp.StatusCode)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	rows, err := scraper.ParseTibiaComGuild(resp.Body)
	if err != nil {
		slog.Error("Failed to parse tibia.com HTML", "guild", guildName, "error", err)
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("guild %q not found on tibia.com", guildName)
	}

	slog.Info("Fetched guild roster from tibia.com", "guild", guildName, "members", len(rows))
	return a.mapScrapedGuild(guildName, rows), nil
}

func (a *Adapter) addBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
}

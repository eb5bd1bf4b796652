package discord

import (
	"log/slog"

	"guild-manager/internal/adapters/discord/formatting"
	"guild-manager/internal/adapters/metrics"
	"guild-manager/internal/config"
	"guild-manager/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

// WebhookSession is the subset of discordgo.Session the adapter uses.
type WebhookSession interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Adapter posts change notifications to a Discord channel webhook. No bot
// token is required; webhook id and token come from configuration.
type Adapter struct {
	session WebhookSession
	config  *config.Config
}

func NewAdapter(cfg *config.Config) (*Adapter, error) {
	// An empty token session is enough for webhook execution.
	session, err := discordgo.New("")
	if err != nil {
		return nil, err
	}
	return &Adapter{session: session, config: cfg}, nil
}

func NewAdapterWithSession(session WebhookSession, cfg *config.Config) *Adapter {
	return &Adapter{session: session, config: cfg}
}

func (a *Adapter) SendChangeNotification(change domain.ChangeEvent) error {
	content := formatting.MsgChange(change)

	_, err := a.session.WebhookExecute(a.config.DiscordWebhookID, a.config.DiscordWebhookToken, false, &discordgo.WebhookParams{
		Content: content,
	})
	if err != nil {
		slog.Error("Failed to send webhook message", "change_type", change.Type, "error", err)
		metrics.DiscordMessagesSent.WithLabelValues("failure").Inc()
		return err
	}

	metrics.DiscordMessagesSent.WithLabelValues("success").Inc()
	return nil
}

// NopNotifier is used when no webhook is configured.
type NopNotifier struct{}

func (NopNotifier) SendChangeNotification(domain.ChangeEvent) error { return nil }

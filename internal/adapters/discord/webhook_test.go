package discord

import (
	"errors"
	"testing"

	"guild-manager/internal/config"
	"guild-manager/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

type mockWebhookSession struct {
	webhookExecuteFunc func(webhookID, token string, wait bool, data *discordgo.WebhookParams) (*discordgo.Message, error)
}

func (m *mockWebhookSession) WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if m.webhookExecuteFunc != nil {
		return m.webhookExecuteFunc(webhookID, token, wait, data)
	}
	return &discordgo.Message{}, nil
}

func TestSendChangeNotification(t *testing.T) {
	var gotID, gotToken, gotContent string
	session := &mockWebhookSession{
		webhookExecuteFunc: func(webhookID, token string, wait bool, data *discordgo.WebhookParams) (*discordgo.Message, error) {
			gotID = webhookID
			gotToken = token
			gotContent = data.Content
			return &discordgo.Message{}, nil
		},
	}

	adapter := NewAdapterWithSession(session, &config.Config{
		DiscordWebhookID:    "123",
		DiscordWebhookToken: "tok",
	})

	err := adapter.SendChangeNotification(domain.ChangeEvent{
		Name:     "Aria",
		Type:     domain.ChangeJoined,
		Level:    250,
		Vocation: "Elder Druid",
	})
	if err != nil {
		t.Fatalf("SendChangeNotification failed: %v", err)
	}

	if gotID != "123" || gotToken != "tok" {
		t.Errorf("Webhook credentials not used: id=%q token=%q", gotID, gotToken)
	}
	if gotContent != "**Aria** joined the guild - Elder Druid (Lvl 250)" {
		t.Errorf("Unexpected message content: %q", gotContent)
	}
}

func TestSendChangeNotification_Error(t *testing.T) {
	wantErr := errors.New("webhook gone")
	session := &mockWebhookSession{
		webhookExecuteFunc: func(webhookID, token string, wait bool, data *discordgo.WebhookParams) (*discordgo.Message, error) {
			return nil, wantErr
		},
	}

	adapter := NewAdapterWithSession(session, &config.Config{})

	if err := adapter.SendChangeNotification(domain.ChangeEvent{Name: "Aria"}); !errors.Is(err, wantErr) {
		t.Fatalf("Expected error surfaced, got %v", err)
	}
}

func TestNopNotifier(t *testing.T) {
	var n NopNotifier
	if err := n.SendChangeNotification(domain.ChangeEvent{Name: "Aria"}); err != nil {
		t.Errorf("Expected nop notifier to always succeed, got %v", err)
	}
}

package main

import (
	"context"
	"testing"

	"guild-manager/internal/config"
)

func TestApp_Shutdown_NilComponents(t *testing.T) {
	app := &App{
		config: &config.Config{},
	}

	if err := app.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown failed with nil components: %v", err)
	}
}

func TestNewNotifier_Unconfigured(t *testing.T) {
	notifier := newNotifier(&config.Config{})
	if notifier == nil {
		t.Fatal("Expected a notifier")
	}
}

func TestNewNotifier_Configured(t *testing.T) {
	notifier := newNotifier(&config.Config{
		DiscordWebhookID:    "123",
		DiscordWebhookToken: "tok",
	})
	if notifier == nil {
		t.Fatal("Expected a notifier")
	}
}

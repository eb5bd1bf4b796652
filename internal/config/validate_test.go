package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		GuildName:       "Night Watch",
		DatabaseURL:     "postgres://localhost/guild",
		APISecret:       "secret",
		HTTPAddr:        ":8080",
		RefreshInterval: 5 * time.Minute,
		PersistDebounce: time.Second,
		WorkerPoolSize:  10,
		DefaultTimeZone: "America/Mexico_City",
		DetailCacheTTL:  3 * time.Minute,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing guild name",
			mutate:  func(c *Config) { c.GuildName = "" },
			wantErr: "GUILD_NAME",
		},
		{
			name:    "refresh interval too short",
			mutate:  func(c *Config) { c.RefreshInterval = 10 * time.Second },
			wantErr: "REFRESH_INTERVAL",
		},
		{
			name:    "refresh interval too long",
			mutate:  func(c *Config) { c.RefreshInterval = 48 * time.Hour },
			wantErr: "REFRESH_INTERVAL",
		},
		{
			name:    "debounce too short",
			mutate:  func(c *Config) { c.PersistDebounce = time.Millisecond },
			wantErr: "PERSIST_DEBOUNCE",
		},
		{
			name:    "debounce too long",
			mutate:  func(c *Config) { c.PersistDebounce = 5 * time.Minute },
			wantErr: "PERSIST_DEBOUNCE",
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.WorkerPoolSize = 0 },
			wantErr: "WORKER_POOL_SIZE",
		},
		{
			name:    "too many workers",
			mutate:  func(c *Config) { c.WorkerPoolSize = 500 },
			wantErr: "WORKER_POOL_SIZE",
		},
		{
			name:    "empty time zone",
			mutate:  func(c *Config) { c.DefaultTimeZone = "" },
			wantErr: "DEFAULT_TIMEZONE",
		},
		{
			name:    "bogus time zone",
			mutate:  func(c *Config) { c.DefaultTimeZone = "Mars/Olympus" },
			wantErr: "DEFAULT_TIMEZONE",
		},
		{
			name:    "webhook id without token",
			mutate:  func(c *Config) { c.DiscordWebhookID = "123" },
			wantErr: "DISCORD_WEBHOOK",
		},
		{
			name:    "webhook token without id",
			mutate:  func(c *Config) { c.DiscordWebhookToken = "tok" },
			wantErr: "DISCORD_WEBHOOK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error mentioning %s, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_WebhookPairAccepted(t *testing.T) {
	cfg := validConfig()
	cfg.DiscordWebhookID = "123"
	cfg.DiscordWebhookToken = "tok"

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected webhook pair accepted, got %v", err)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.GuildName = ""
	cfg.WorkerPoolSize = 0
	cfg.PersistDebounce = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, want := range []string{"GUILD_NAME", "WORKER_POOL_SIZE", "PERSIST_DEBOUNCE"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected aggregated error to mention %s, got: %v", want, err)
		}
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	GuildName           string
	DatabaseURL         string
	APISecret           string
	HTTPAddr            string
	RefreshInterval     time.Duration
	PersistDebounce     time.Duration
	WorkerPoolSize      int
	DefaultTimeZone     string
	DetailCacheTTL      time.Duration
	UseTibiaComFallback bool
	DiscordWebhookID    string
	DiscordWebhookToken string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	guildName := envString("GUILD_NAME", "")
	if guildName == "" {
		return nil, fmt.Errorf("GUILD_NAME is not set")
	}

	dbURL := readSecret("database_url")
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set (via secret or env var)")
	}

	apiSecret := readSecret("api_secret")
	if apiSecret == "" {
		apiSecret = os.Getenv("API_SECRET")
	}
	if apiSecret == "" {
		return nil, fmt.Errorf("API_SECRET is not set (via secret or env var)")
	}

	webhookToken := readSecret("discord_webhook_token")
	if webhookToken == "" {
		webhookToken = os.Getenv("DISCORD_WEBHOOK_TOKEN")
	}

	cfg := &Config{
		GuildName:           guildName,
		DatabaseURL:         dbURL,
		APISecret:           apiSecret,
		HTTPAddr:            envString("HTTP_ADDR", ":8080"),
		RefreshInterval:     envDuration("REFRESH_INTERVAL", 5*time.Minute),
		PersistDebounce:     envDuration("PERSIST_DEBOUNCE", time.Second),
		WorkerPoolSize:      envInt("WORKER_POOL_SIZE", 10),
		DefaultTimeZone:     envString("DEFAULT_TIMEZONE", "America/Mexico_City"),
		DetailCacheTTL:      envDuration("DETAIL_CACHE_TTL", 3*time.Minute),
		UseTibiaComFallback: envBool("USE_TIBIACOM_FALLBACK", true),
		DiscordWebhookID:    envString("DISCORD_WEBHOOK_ID", ""),
		DiscordWebhookToken: webhookToken,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

var secretsDir = "/run/secrets/"

func readSecret(name string) string {
	data, err := os.ReadFile(secretsDir + name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

package config

import (
	"errors"
	"fmt"
	"time"
)

// Validation constants define acceptable bounds for configuration values
const (
	// RefreshInterval validation
	minRefreshInterval = 1 * time.Minute // Minimum to avoid excessive API calls
	maxRefreshInterval = 24 * time.Hour  // Maximum reasonable interval

	// PersistDebounce validation
	minPersistDebounce = 100 * time.Millisecond
	maxPersistDebounce = 1 * time.Minute

	// WorkerPoolSize validation
	minWorkerPoolSize = 1   // At least one worker needed
	maxWorkerPoolSize = 100 // Prevent resource exhaustion
)

// Validate checks if the configuration values are valid and within acceptable
// ranges. It returns all validation errors at once using errors.Join.
func (c *Config) Validate() error {
	var errs []error

	if err := c.validateGuildName(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateRefreshInterval(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validatePersistDebounce(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateWorkerPoolSize(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateDefaultTimeZone(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateWebhook(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %w", errors.Join(errs...))
	}

	return nil
}

func (c *Config) validateGuildName() error {
	if c.GuildName == "" {
		return fmt.Errorf("GUILD_NAME is required but not set")
	}
	return nil
}

// validateRefreshInterval ensures the refresh interval is within acceptable bounds
func (c *Config) validateRefreshInterval() error {
	if c.RefreshInterval < minRefreshInterval {
		return fmt.Errorf(
			"REFRESH_INTERVAL must be at least %v to avoid excessive API calls, got %v (hint: recommended range is 2m-15m)",
			minRefreshInterval, c.RefreshInterval,
		)
	}

	if c.RefreshInterval > maxRefreshInterval {
		return fmt.Errorf(
			"REFRESH_INTERVAL must be at most %v, got %v",
			maxRefreshInterval, c.RefreshInterval,
		)
	}

	return nil
}

func (c *Config) validatePersistDebounce() error {
	if c.PersistDebounce < minPersistDebounce {
		return fmt.Errorf(
			"PERSIST_DEBOUNCE must be at least %v, got %v",
			minPersistDebounce, c.PersistDebounce,
		)
	}

	if c.PersistDebounce > maxPersistDebounce {
		return fmt.Errorf(
			"PERSIST_DEBOUNCE must be at most %v, got %v",
			maxPersistDebounce, c.PersistDebounce,
		)
	}

	return nil
}

// validateWorkerPoolSize ensures the worker pool size is within safe limits
func (c *Config) validateWorkerPoolSize() error {
	if c.WorkerPoolSize < minWorkerPoolSize {
		return fmt.Errorf(
			"WORKER_POOL_SIZE must be at least %d, got %d",
			minWorkerPoolSize, c.WorkerPoolSize,
		)
	}

	if c.WorkerPoolSize > maxWorkerPoolSize {
		return fmt.Errorf(
			"WORKER_POOL_SIZE must be at most %d to prevent resource exhaustion, got %d (hint: recommended range is 5-25)",
			maxWorkerPoolSize, c.WorkerPoolSize,
		)
	}

	return nil
}

func (c *Config) validateDefaultTimeZone() error {
	if c.DefaultTimeZone == "" {
		return fmt.Errorf("DEFAULT_TIMEZONE cannot be empty")
	}
	if _, err := time.LoadLocation(c.DefaultTimeZone); err != nil {
		return fmt.Errorf("DEFAULT_TIMEZONE %q is not a valid IANA zone: %w", c.DefaultTimeZone, err)
	}
	return nil
}

// validateWebhook ensures the Discord webhook id and token are set together
func (c *Config) validateWebhook() error {
	if (c.DiscordWebhookID == "") != (c.DiscordWebhookToken == "") {
		return fmt.Errorf("DISCORD_WEBHOOK_ID and DISCORD_WEBHOOK_TOKEN must be set together")
	}
	return nil
}

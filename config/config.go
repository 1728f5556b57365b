package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Renderer selection values.
const (
	RendererChrome = "chrome"
	RendererStatic = "static"
)

// Config holds pipeline configuration.
type Config struct {
	BaseURL           string
	DataDir           string
	Renderer          string // chrome or static
	MaxCandidates     int    // price matches examined per page
	MaxAncestorHops   int    // upward steps when locating the extraction container
	NavigationTimeout time.Duration
	SettleDelay       time.Duration // fixed wait after navigation for client-side rendering
	TagDelayMin       time.Duration // inter-tag pacing, lower bound
	TagDelayMax       time.Duration // inter-tag pacing, upper bound
	ProgressEvery     int           // emit a progress line every N tags
	UserAgent         string
	MetricsAddr       string
	Verbose           bool
}

// DefaultConfig returns the defaults observed to work against the live
// marketplace.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:           "https://collect.fifa.com",
		DataDir:           "fifa_marketplace_data",
		Renderer:          RendererChrome,
		MaxCandidates:     15,
		MaxAncestorHops:   8,
		NavigationTimeout: 30 * time.Second,
		SettleDelay:       3 * time.Second,
		TagDelayMin:       1 * time.Second,
		TagDelayMax:       3 * time.Second,
		ProgressEvery:     20,
		UserAgent:         "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		MetricsAddr:       "",
		Verbose:           false,
	}
}

// ApplyGentle stretches the waits for tags that keep timing out under the
// normal pacing.
func (c *Config) ApplyGentle() {
	c.NavigationTimeout = 45 * time.Second
	c.SettleDelay = 6 * time.Second
	c.TagDelayMin = 3 * time.Second
	c.TagDelayMax = 3 * time.Second
}

// Validate ensures all configuration values are coherent.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}
	parsedURL, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("base URL must include a host")
	}

	if c.DataDir == "" {
		return fmt.Errorf("data dir cannot be empty")
	}
	if c.Renderer != RendererChrome && c.Renderer != RendererStatic {
		return fmt.Errorf("renderer must be %s or %s", RendererChrome, RendererStatic)
	}
	if c.MaxCandidates <= 0 {
		return fmt.Errorf("max candidates must be positive")
	}
	if c.MaxAncestorHops <= 0 {
		return fmt.Errorf("max ancestor hops must be positive")
	}
	if c.NavigationTimeout <= 0 {
		return fmt.Errorf("navigation timeout must be positive")
	}
	if c.SettleDelay < 0 {
		return fmt.Errorf("settle delay cannot be negative")
	}
	if c.TagDelayMin < 0 {
		return fmt.Errorf("tag delay cannot be negative")
	}
	if c.TagDelayMax < c.TagDelayMin {
		return fmt.Errorf("tag delay max (%s) cannot be below tag delay min (%s)", c.TagDelayMax, c.TagDelayMin)
	}
	if c.ProgressEvery <= 0 {
		return fmt.Errorf("progress interval must be positive")
	}
	if c.UserAgent == "" {
		return fmt.Errorf("user agent cannot be empty")
	}

	return nil
}

// EnvString reads a string environment variable, reporting presence.
func EnvString(key string) (string, bool) {
	value := os.Getenv(key)
	return value, value != ""
}

// EnvInt reads an integer environment variable, reporting presence.
func EnvInt(key string) (int, bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", key, err)
	}
	return value, true, nil
}

package ghost

import (
	"errors"
	"os"
	"time"

	"github.com/howToCodeWell/ghost-content-api/internal/base"
)

const (
	// DefaultAPIVersion is the Content API version used when none is configured
	DefaultAPIVersion = "v2"

	// DefaultUserAgent identifies the client to Ghost
	DefaultUserAgent = "ghost-content-api-go"

	// DefaultTimeout bounds each request when no timeout is configured
	DefaultTimeout = base.DefaultTimeout
)

// Config holds Ghost Content API connection settings
type Config struct {
	// Host is the site root (e.g., https://demo.ghost.io)
	Host string

	// APIVersion selects the /ghost/api/{version}/content/ prefix
	APIVersion string

	// APIToken is the content API key (optional until the first request)
	APIToken string

	// Timeout for API requests
	Timeout time.Duration

	// UserAgent identifies the client to the site
	UserAgent string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	host := os.Getenv("GHOST_URL")
	if host == "" {
		return nil, errors.New("GHOST_URL environment variable is required")
	}

	apiVersion := os.Getenv("GHOST_API_VERSION")
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	timeout := DefaultTimeout
	if t := os.Getenv("GHOST_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			timeout = d
		}
	}

	userAgent := os.Getenv("GHOST_USER_AGENT")
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Config{
		Host:       host,
		APIVersion: apiVersion,
		APIToken:   os.Getenv("GHOST_CONTENT_API_KEY"),
		Timeout:    timeout,
		UserAgent:  userAgent,
	}, nil
}

// HasToken returns true if a content API key is configured
func (c *Config) HasToken() bool {
	return c.APIToken != ""
}

package source

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/mmcdole/todoadmin/internal/adapter"
	"github.com/mmcdole/todoadmin/internal/adapter/source/rest"
	"github.com/mmcdole/todoadmin/internal/domain"
)

// SourceConfig contains the configuration needed to create a DataSource
type SourceConfig struct {
	URL     string
	Token   string
	Timeout time.Duration
}

// NewClient creates the backend DataSource.
// The token is optional; the backend decides whether it is required.
func NewClient(cfg *SourceConfig, logger *slog.Logger) (domain.DataSource, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source config is nil")
	}

	if cfg.URL == "" {
		return nil, fmt.Errorf("server URL is required")
	}

	u, err := url.Parse(cfg.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid server URL: %q", cfg.URL)
	}

	return rest.NewClient(cfg.URL, cfg.Token, logger, rest.WithTimeout(cfg.Timeout)), nil
}

// NewClientFromConfig creates a DataSource from the application config
func NewClientFromConfig(cfg *adapter.Config, logger *slog.Logger) (domain.DataSource, error) {
	return NewClient(&SourceConfig{
		URL:     cfg.Server.URL,
		Token:   cfg.Server.Token,
		Timeout: cfg.Server.Timeout,
	}, logger)
}

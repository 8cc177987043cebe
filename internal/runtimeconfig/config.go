// Package runtimeconfig holds the explicit configuration value handed to the
// pipeline entry point. The scan root arrives as a parameter and is
// validated once at startup, before any traversal I/O.
package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrRootRequired         = errors.New("runtimeconfig: articles root is required")
	ErrIntroRequired        = errors.New("runtimeconfig: intro document path is required")
	ErrOutputPathRequired   = errors.New("runtimeconfig: output path is required")
	ErrRawBaseURLRequired   = errors.New("runtimeconfig: raw base url is required")
	ErrRawBaseURLInvalid    = errors.New("runtimeconfig: raw base url is invalid")
	ErrLoggingLevelInvalid  = errors.New("runtimeconfig: logging level is invalid")
	ErrLoggingFormatInvalid = errors.New("runtimeconfig: logging format is invalid")
)

// LoggingConfig mirrors the options understood by the go-logger provider.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// Config is the full runtime configuration for one indexer run.
type Config struct {
	// Root is the directory of topic folders to scan.
	Root string
	// Intro is the static introduction document prepended to the README.
	Intro string
	// ArticlesOut, SeriesOut, and ReadmeOut are the three output artifacts,
	// fully overwritten each run.
	ArticlesOut string
	SeriesOut   string
	ReadmeOut   string
	// RawBaseURL is the source-hosting base used for raw document URLs.
	RawBaseURL string
	Logging    LoggingConfig
}

// DefaultConfig returns the defaults used when flags and environment leave
// a value unset. Root has no default on purpose: it must be supplied.
func DefaultConfig() Config {
	return Config{
		Intro:       "intro.md",
		ArticlesOut: "articles.json",
		SeriesOut:   "series.json",
		ReadmeOut:   "README.md",
		RawBaseURL:  "https://raw.githubusercontent.com/goliatone/articles/master",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate reports the first configuration error. It runs before any
// filesystem access so a misconfigured run aborts without side effects.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return ErrRootRequired
	}
	if strings.TrimSpace(c.Intro) == "" {
		return ErrIntroRequired
	}
	for _, out := range []string{c.ArticlesOut, c.SeriesOut, c.ReadmeOut} {
		if strings.TrimSpace(out) == "" {
			return ErrOutputPathRequired
		}
	}

	base := strings.TrimSpace(c.RawBaseURL)
	if base == "" {
		return ErrRawBaseURLRequired
	}
	if parsed, err := url.Parse(base); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: %q", ErrRawBaseURLInvalid, c.RawBaseURL)
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("%w: %q", ErrLoggingLevelInvalid, c.Logging.Level)
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "json", "console", "pretty":
	default:
		return fmt.Errorf("%w: %q", ErrLoggingFormatInvalid, c.Logging.Format)
	}

	return nil
}

package app

import (
	"time"

	"github.com/hyperifyio/pagetext/internal/clean"
)

// Format names an output rendering.
type Format string

const (
	FormatDebug Format = "debug"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Defaults used by flags and for detecting unset values when overlaying a
// config file.
const (
	DefaultURL       = "https://www.dawn.com/news/1741752"
	DefaultUserAgent = "pagetext/1.0 (+https://github.com/hyperifyio/pagetext)"
)

// Config holds runtime configuration for the application.
type Config struct {
	URL string

	// HTTP
	UserAgent string
	// Timeout bounds the fetch. Zero leaves the request unbounded.
	Timeout time.Duration
	Charset string

	// Output
	Format    Format
	CleanMode clean.Mode

	// Behavior
	// Strict makes a fetch failure a non-zero exit instead of a warning.
	Strict  bool
	Verbose bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		URL:       DefaultURL,
		UserAgent: DefaultUserAgent,
		Format:    FormatDebug,
		CleanMode: clean.ModeDelete,
	}
}

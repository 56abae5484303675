package app

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/pagetext/internal/clean"
)

// ApplyEnvOverrides forcefully overrides cfg fields with environment variables
// when the corresponding env vars are set. Env takes precedence over a config
// file; explicit flags are applied after this and win over both.
func ApplyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}

	if v := strings.TrimSpace(os.Getenv("PAGETEXT_URL")); v != "" {
		cfg.URL = v
	}
	if v := os.Getenv("PAGETEXT_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("PAGETEXT_CHARSET"); v != "" {
		cfg.Charset = v
	}
	if v := os.Getenv("PAGETEXT_FORMAT"); v != "" {
		cfg.Format = Format(strings.ToLower(strings.TrimSpace(v)))
	}
	if v := os.Getenv("PAGETEXT_CLEAN"); v != "" {
		cfg.CleanMode = clean.Mode(strings.ToLower(strings.TrimSpace(v)))
	}
	if s := os.Getenv("PAGETEXT_TIMEOUT"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			cfg.Timeout = d
		} else {
			log.Warn().Err(err).Str("env", "PAGETEXT_TIMEOUT").Str("value", s).Msg("ignoring unparsable timeout")
		}
	}

	// Booleans override when env present and truthy/falsey
	setBool := func(dst *bool, envKey string) {
		if s := strings.ToLower(strings.TrimSpace(os.Getenv(envKey))); s != "" {
			switch s {
			case "1", "true", "yes", "on":
				*dst = true
			case "0", "false", "no", "off":
				*dst = false
			}
		}
	}
	setBool(&cfg.Strict, "PAGETEXT_STRICT")
	setBool(&cfg.Verbose, "PAGETEXT_VERBOSE")
}

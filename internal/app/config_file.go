package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/pagetext/internal/clean"
)

// ErrNoURL is returned by ValidateConfig when no page URL is configured.
var ErrNoURL = errors.New("config: url is required")

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
	URL string `yaml:"url" json:"url"`

	HTTP struct {
		UserAgent string `yaml:"userAgent" json:"userAgent"`
		// Timeout accepts Go duration strings such as "10s".
		Timeout string `yaml:"timeout" json:"timeout"`
		Charset string `yaml:"charset" json:"charset"`
	} `yaml:"http" json:"http"`

	Output struct {
		Format string `yaml:"format" json:"format"`
	} `yaml:"output" json:"output"`

	Clean struct {
		Mode string `yaml:"mode" json:"mode"`
	} `yaml:"clean" json:"clean"`

	Strict  bool `yaml:"strict" json:"strict"`
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays non-empty values from fc onto cfg. Callers apply
// env and explicit flags afterwards so those take precedence.
func ApplyFileConfig(cfg *Config, fc FileConfig) error {
	if cfg == nil {
		return nil
	}
	if s := strings.TrimSpace(fc.URL); s != "" {
		cfg.URL = s
	}
	if s := strings.TrimSpace(fc.HTTP.UserAgent); s != "" {
		cfg.UserAgent = s
	}
	if s := strings.TrimSpace(fc.HTTP.Timeout); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("config: http.timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if s := strings.TrimSpace(fc.HTTP.Charset); s != "" {
		cfg.Charset = s
	}
	if s := strings.TrimSpace(fc.Output.Format); s != "" {
		cfg.Format = Format(strings.ToLower(s))
	}
	if s := strings.TrimSpace(fc.Clean.Mode); s != "" {
		cfg.CleanMode = clean.Mode(strings.ToLower(s))
	}
	if fc.Strict {
		cfg.Strict = true
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
	return nil
}

// ValidateConfig checks the settings a run cannot proceed without.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.URL) == "" {
		return ErrNoURL
	}
	switch cfg.Format {
	case "", FormatDebug, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("config: unknown output format %q (want debug, json or yaml)", cfg.Format)
	}
	if !clean.Valid(cfg.CleanMode) {
		return fmt.Errorf("config: unknown clean mode %q (want delete or spaced)", cfg.CleanMode)
	}
	if cfg.Timeout < 0 {
		return errors.New("config: negative timeout is not allowed")
	}
	return nil
}

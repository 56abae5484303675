package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/pagetext/internal/app"
	"github.com/hyperifyio/pagetext/internal/clean"
	"github.com/hyperifyio/pagetext/internal/fetch"
)

// Exit codes.
const (
	exitOK          = 0
	exitFetchFailed = 1
	exitBadConfig   = 2
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := app.LoadEnvFiles(".env", ".env.local"); err != nil {
		log.Warn().Err(err).Msg("dotenv load failed")
	}

	cfg, showVersion, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(exitBadConfig)
	}
	if showVersion {
		fmt.Println(app.VersionString())
		return
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(exitCode(cfg, run(ctx, cfg, os.Stdout)))
}

// parseConfig resolves configuration with precedence flags > env > config
// file > defaults.
func parseConfig(args []string) (app.Config, bool, error) {
	def := app.DefaultConfig()
	fs := flag.NewFlagSet("pagetext", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		configPath  string
		url         string
		userAgent   string
		timeout     time.Duration
		charset     string
		format      string
		cleanMode   string
		strict      bool
		verbose     bool
		showVersion bool
	)
	fs.StringVar(&configPath, "config", os.Getenv("PAGETEXT_CONFIG"), "Path to YAML or JSON config file")
	fs.StringVar(&url, "url", def.URL, "Absolute URL of the page to extract")
	fs.StringVar(&userAgent, "ua", def.UserAgent, "User-Agent header for the fetch")
	fs.DurationVar(&timeout, "timeout", 0, "Overall fetch timeout (e.g. 15s); 0 disables")
	fs.StringVar(&charset, "charset", "", "Force the body charset instead of detecting it")
	fs.StringVar(&format, "format", string(def.Format), "Output format: debug, json or yaml")
	fs.StringVar(&cleanMode, "clean", string(def.CleanMode), "Cleaning mode: delete (drop \\r\\t\\n) or spaced (replace with a space)")
	fs.BoolVar(&strict, "strict", false, "Exit non-zero when the fetch fails")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return app.Config{}, false, err
	}
	if showVersion {
		return def, true, nil
	}

	cfg := def
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			return app.Config{}, false, fmt.Errorf("load config file: %w", err)
		}
		if err := app.ApplyFileConfig(&cfg, fc); err != nil {
			return app.Config{}, false, err
		}
	}
	app.ApplyEnvOverrides(&cfg)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "url":
			cfg.URL = url
		case "ua":
			cfg.UserAgent = userAgent
		case "timeout":
			cfg.Timeout = timeout
		case "charset":
			cfg.Charset = charset
		case "format":
			cfg.Format = app.Format(format)
		case "clean":
			cfg.CleanMode = clean.Mode(cleanMode)
		case "strict":
			cfg.Strict = strict
		case "v":
			cfg.Verbose = verbose
		}
	})

	if err := app.ValidateConfig(cfg); err != nil {
		return app.Config{}, false, err
	}
	return cfg, false, nil
}

func run(ctx context.Context, cfg app.Config, out io.Writer) error {
	a, err := app.New(cfg, out)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}

// exitCode maps a run error to the process exit status. A fetch failure
// has already printed empty results; it only fails the process in strict
// mode. Anything else is a hard failure.
func exitCode(cfg app.Config, err error) int {
	if err == nil {
		return exitOK
	}
	var fe *fetch.Error
	if errors.As(err, &fe) {
		if cfg.Strict {
			return exitFetchFailed
		}
		log.Warn().Msg("completed without a document")
		return exitOK
	}
	log.Error().Err(err).Msg("run failed")
	return exitFetchFailed
}

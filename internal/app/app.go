// Package app wires configuration, fetching, extraction and output into a
// single page run.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/pagetext/internal/clean"
	"github.com/hyperifyio/pagetext/internal/extract"
	"github.com/hyperifyio/pagetext/internal/fetch"
)

type App struct {
	cfg       Config
	fetcher   Fetcher
	extractor extract.Extractor
	out       io.Writer
}

// Option customizes an App.
type Option func(*App)

// WithFetcher replaces the HTTP fetcher, mainly for tests.
func WithFetcher(f Fetcher) Option {
	return func(a *App) { a.fetcher = f }
}

// WithExtractor replaces the default TagExtractor.
func WithExtractor(e extract.Extractor) Option {
	return func(a *App) { a.extractor = e }
}

// New validates cfg and builds an App that writes results to out.
func New(cfg Config, out io.Writer, opts ...Option) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	a := &App{cfg: cfg, out: out, extractor: extract.TagExtractor{}}
	for _, o := range opts {
		o(a)
	}
	if a.fetcher == nil {
		a.fetcher = &fetch.Client{
			HTTPClient: newHTTPClient(cfg.Timeout),
			UserAgent:  cfg.UserAgent,
			Timeout:    cfg.Timeout,
			Charset:    cfg.Charset,
		}
	}
	return a, nil
}

// Run fetches the page, extracts and cleans both sequences, and renders them.
// A fetch failure does not stop rendering: empty results are written and the
// fetch error is returned afterwards so the caller can choose an exit code.
func (a *App) Run(ctx context.Context) error {
	page := NewPage(a.cfg.URL)
	fetchErr := page.Load(ctx, a.fetcher)

	res := a.Extract(page)
	log.Info().
		Str("url", a.cfg.URL).
		Int("paragraphs", len(res.Paragraphs)).
		Int("images", len(res.Images)).
		Msg("extraction complete")

	if err := Render(a.out, a.cfg.Format, res); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return fetchErr
}

// Extract returns the cleaned paragraph text and image sources of page.
func (a *App) Extract(page *Page) extract.Result {
	raw := page.Extract(a.extractor)
	fn := clean.Func(a.cfg.CleanMode)
	return extract.Result{
		Paragraphs: clean.All(raw.Paragraphs, fn),
		Images:     clean.All(raw.Images, fn),
	}
}

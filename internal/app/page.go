package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/pagetext/internal/extract"
)

// Fetcher retrieves a page body as text. *fetch.Client satisfies it.
type Fetcher interface {
	Get(ctx context.Context, url string) (string, error)
}

// Page pairs a URL with its parsed document. Doc stays nil until Load
// succeeds, and Extract is safe to call before that.
type Page struct {
	URL string
	Doc *extract.Document
}

// NewPage returns a page with no document loaded.
func NewPage(url string) *Page {
	return &Page{URL: url}
}

// Load fetches and parses the page. A fetch failure is logged and returned;
// Doc is left nil so later extraction yields empty results.
func (p *Page) Load(ctx context.Context, f Fetcher) error {
	body, err := f.Get(ctx, p.URL)
	if err != nil {
		log.Error().Err(err).Str("url", p.URL).Msg("fetch failed")
		return err
	}
	p.Doc = extract.Parse(body)
	log.Debug().Str("url", p.URL).Str("title", p.Doc.Title()).Msg("parsed page")
	return nil
}

// Loaded reports whether a document is available.
func (p *Page) Loaded() bool { return p != nil && p.Doc != nil }

// Extract runs ex over the document. Without a document it warns and
// returns empty sequences.
func (p *Page) Extract(ex extract.Extractor) extract.Result {
	if !p.Loaded() {
		url := ""
		if p != nil {
			url = p.URL
		}
		log.Warn().Str("url", url).Msg("no document; extraction yields empty results")
		return extract.Result{Paragraphs: []string{}, Images: []string{}}
	}
	return ex.Extract(p.Doc)
}

package extract

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed HTML page that can be queried by tag name.
// It is never modified after Parse returns.
type Document struct {
	root *goquery.Document
}

// Parse builds a Document from HTML text. It never fails: malformed markup
// produces whatever best-effort tree the HTML5 parser recovers.
func Parse(input string) *Document {
	return ParseReader(strings.NewReader(input))
}

// ParseReader is like Parse but reads the markup from r. A read error yields
// an empty document rather than a failure.
func ParseReader(r io.Reader) *Document {
	node, err := html.Parse(r)
	if err != nil || node == nil {
		node = &html.Node{Type: html.DocumentNode}
	}
	return &Document{root: goquery.NewDocumentFromNode(node)}
}

// find returns the elements named tag in document order. A nil document
// yields an empty selection.
func (d *Document) find(tag string) *goquery.Selection {
	if d == nil || d.root == nil {
		return &goquery.Selection{}
	}
	return d.root.Find(tag)
}

// Title returns the trimmed text of the first <title>, or "".
func (d *Document) Title() string {
	return strings.TrimSpace(d.find("title").First().Text())
}

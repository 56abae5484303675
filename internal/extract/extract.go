// Package extract pulls paragraph text and image sources from parsed HTML.
package extract

import "github.com/PuerkitoBio/goquery"

// ParagraphText returns the full text content of every <p> element in
// document order, one entry per element. Descendant text is concatenated,
// so <p>a<b>b</b></p> yields "ab". Empty paragraphs yield "". A nil document
// yields an empty slice.
func ParagraphText(doc *Document) []string {
	sel := doc.find("p")
	out := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, s.Text())
	})
	return out
}

// ImageSources returns the src attribute of every <img> that carries one,
// in document order. Images without src are skipped; an empty src="" is
// kept because the attribute is present.
func ImageSources(doc *Document) []string {
	sel := doc.find("img")
	out := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok {
			out = append(out, src)
		}
	})
	return out
}

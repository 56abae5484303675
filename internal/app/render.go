package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/pagetext/internal/extract"
)

// Render writes res to w in the given format. Debug output is one bracketed
// list of quoted strings per line: paragraphs first, then images.
func Render(w io.Writer, format Format, res extract.Result) error {
	switch format {
	case "", FormatDebug:
		if _, err := fmt.Fprintln(w, debugList(res.Paragraphs)); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, debugList(res.Images))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(nonNil(res))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nonNil(res)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("render: unknown format %q", format)
	}
}

// debugList formats xs as ["a", "b"].
func debugList(xs []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range xs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(x))
	}
	b.WriteByte(']')
	return b.String()
}

// nonNil keeps empty sequences as [] rather than null in encoded output.
func nonNil(res extract.Result) extract.Result {
	if res.Paragraphs == nil {
		res.Paragraphs = []string{}
	}
	if res.Images == nil {
		res.Images = []string{}
	}
	return res
}

package extract

import (
	"strings"
	"testing"
)

// Benchmark parsing plus both extraction passes on representative sizes.
func BenchmarkExtract(b *testing.B) {
	small := "<html><head><title>t</title></head><body><p>a</p><img src=\"a.png\"></body></html>"
	medium := makeHTML(50, 20)
	large := makeHTML(500, 200)

	for _, bc := range []struct {
		name string
		html string
	}{{"small", small}, {"medium", medium}, {"large", large}} {
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = TagExtractor{}.Extract(Parse(bc.html))
			}
		})
	}
}

func makeHTML(paras int, images int) string {
	builder := new(strings.Builder)
	builder.WriteString("<html><head><title>demo</title></head><body><main>")
	for i := 0; i < paras; i++ {
		builder.WriteString("<h2>Heading</h2><p>")
		builder.WriteString(sampleText)
		builder.WriteString("</p>")
	}
	for i := 0; i < images; i++ {
		builder.WriteString(`<figure><img src="/img/photo.jpg" alt="photo"></figure>`)
	}
	builder.WriteString("</main></body></html>")
	return builder.String()
}

const sampleText = "Lorem ipsum dolor sit amet, consectetur adipiscing elit.\nSed do eiusmod tempor incididunt ut labore et dolore magna aliqua."

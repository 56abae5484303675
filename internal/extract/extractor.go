package extract

// Result holds both sequences produced from one document.
type Result struct {
	Paragraphs []string `json:"paragraphs" yaml:"paragraphs"`
	Images     []string `json:"images" yaml:"images"`
}

// Extractor defines a minimal interface for extraction strategies.
// Implementations must not mutate the document.
type Extractor interface {
	Extract(doc *Document) Result
}

// TagExtractor collects <p> text and <img src> values.
type TagExtractor struct{}

func (TagExtractor) Extract(doc *Document) Result {
	return Result{
		Paragraphs: ParagraphText(doc),
		Images:     ImageSources(doc),
	}
}

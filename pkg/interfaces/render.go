package interfaces

import "context"

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be reusable across requests; parser instances are
// expected to be stateless.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// RenderedSection pairs a parsed section with the display strategy selected
// for it and, when the strategy renders markdown, the resulting HTML body.
type RenderedSection struct {
	Section  ParsedSection
	Strategy string
	HTML     []byte
}

// RenderedDocument is the display-ready projection of a parsed document.
type RenderedDocument struct {
	Document ParsedMarkdownDocument
	Sections []RenderedSection
}

// DocumentService exposes the high-level PRP workflows: segmenting raw
// markdown, normalizing arbitrary nested data, and producing display-ready
// documents from heterogeneous inputs.
type DocumentService interface {
	Segment(ctx context.Context, markdown string) (*ParsedMarkdownDocument, error)
	Normalize(ctx context.Context, value any) (any, error)
	Render(ctx context.Context, input any) (*RenderedDocument, error)
}

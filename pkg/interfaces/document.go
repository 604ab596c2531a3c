package interfaces

// TextShape classifies the syntactic makeup of a section body (text, list,
// code, mixed), independent of its semantic category. The value is derived
// on demand and never persisted.
type TextShape string

const (
	ShapeText  TextShape = "text"
	ShapeList  TextShape = "list"
	ShapeCode  TextShape = "code"
	ShapeMixed TextShape = "mixed"
)

// TemplateCategory is a closed semantic label used to select a specialized
// display strategy for a section. The zero value means no keyword rule
// matched; consumers treat it as CategoryGeneric.
type TemplateCategory string

const (
	CategoryContext  TemplateCategory = "context"
	CategoryMetrics  TemplateCategory = "metrics"
	CategoryPlan     TemplateCategory = "plan"
	CategoryPersonas TemplateCategory = "personas"
	CategoryFlows    TemplateCategory = "flows"
	CategoryList     TemplateCategory = "list"
	CategoryFeatures TemplateCategory = "features"
	CategoryObject   TemplateCategory = "object"
	CategoryKeyValue TemplateCategory = "keyvalue"
	CategoryGeneric  TemplateCategory = "generic"
)

// ParsedSection is a contiguous span of a document delimited by heading
// boundaries. Sections are immutable values once the parsed document is
// returned; callers must not mutate them.
type ParsedSection struct {
	// Title is the heading text that opened the section.
	Title string
	// Content is the section body with surrounding whitespace trimmed.
	Content string
	// RawContent preserves the body exactly as buffered, untrimmed.
	RawContent string
	// Level records the heading depth (1..6) that opened the section.
	Level int
	// Type is the section body's TextShape classification.
	Type TextShape
	// SectionKey is a slug derived from the title, unique per document.
	SectionKey string
	// TemplateType carries the semantic category resolved from the title.
	// Empty when no keyword rule matched; treated as generic downstream.
	TemplateType TemplateCategory
}

// ParsedMarkdownDocument is the ordered result of segmenting a raw markdown
// string. Sections appear exactly in source order; the segmenter never
// reorders or deduplicates them.
type ParsedMarkdownDocument struct {
	// Title is the document title, taken from the first level-1 heading or
	// the first non-blank line before any heading. Empty when absent.
	Title string
	// Slug is a URL-safe identifier derived from Title. Empty when the
	// document has no title.
	Slug string
	// Sections holds every flushed section in source order.
	Sections []ParsedSection
	// Metadata carries frontmatter fields when the source was
	// metadata-wrapped markdown.
	Metadata map[string]any
	// HasMetadata reports whether frontmatter was present in the source.
	HasMetadata bool
}

// Segmenter splits a raw markdown string into an ordered, classified
// document. Implementations must be total: any input, including the empty
// string, yields a well-formed document.
type Segmenter interface {
	Segment(markdown string) ParsedMarkdownDocument
}

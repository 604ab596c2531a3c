// Package render is the display boundary: it selects a strategy per
// classified section, converts markdown bodies into HTML, and renders
// arbitrary normalized trees as indented text with a hard depth ceiling.
package render

import (
	"fmt"

	"github.com/goliatone/go-prp/internal/logging"
	"github.com/goliatone/go-prp/pkg/interfaces"
)

// Strategy names returned by the dispatcher. Consumers key view components
// off these identifiers; "generic" is the universal fallback.
const (
	StrategyProse       = "prose"
	StrategyStatGrid    = "stat-grid"
	StrategyTimeline    = "timeline"
	StrategyCardGrid    = "card-grid"
	StrategyStepList    = "step-list"
	StrategyChecklist   = "checklist"
	StrategyFeatureGrid = "feature-grid"
	StrategyTree        = "tree"
	StrategyKeyValue    = "key-value"
	StrategyGeneric     = "generic"
)

var strategyByCategory = map[interfaces.TemplateCategory]string{
	interfaces.CategoryContext:  StrategyProse,
	interfaces.CategoryMetrics:  StrategyStatGrid,
	interfaces.CategoryPlan:     StrategyTimeline,
	interfaces.CategoryPersonas: StrategyCardGrid,
	interfaces.CategoryFlows:    StrategyStepList,
	interfaces.CategoryList:     StrategyChecklist,
	interfaces.CategoryFeatures: StrategyFeatureGrid,
	interfaces.CategoryObject:   StrategyTree,
	interfaces.CategoryKeyValue: StrategyKeyValue,
	interfaces.CategoryGeneric:  StrategyGeneric,
}

// StrategyFor resolves the display strategy for a template category. Unknown
// or empty categories map to the generic strategy; this is the expected path
// for unclassified sections, not an error.
func StrategyFor(category interfaces.TemplateCategory) string {
	if strategy, ok := strategyByCategory[category]; ok {
		return strategy
	}
	return StrategyGeneric
}

// Dispatcher pairs sections with display strategies and rendered HTML bodies.
type Dispatcher struct {
	parser interfaces.MarkdownParser
	opts   interfaces.ParseOptions
	logger interfaces.Logger
}

// Option customises a Dispatcher instance.
type Option func(*Dispatcher)

// WithLogger injects the logger used for render diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithParseOptions overrides the markdown parse options applied per section.
func WithParseOptions(opts interfaces.ParseOptions) Option {
	return func(d *Dispatcher) {
		d.opts = opts
	}
}

// NewDispatcher constructs a Dispatcher around the supplied markdown parser.
// A goldmark-backed parser with defaults is used when parser is nil.
func NewDispatcher(parser interfaces.MarkdownParser, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		parser: parser,
		logger: logging.NoOp(),
	}
	if d.parser == nil {
		d.parser = NewGoldmarkParser(interfaces.ParseOptions{})
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// RenderSection selects the strategy for the section and renders its body to
// HTML. Empty bodies skip the markdown round trip.
func (d *Dispatcher) RenderSection(section interfaces.ParsedSection) (interfaces.RenderedSection, error) {
	rendered := interfaces.RenderedSection{
		Section:  section,
		Strategy: StrategyFor(section.TemplateType),
	}

	if section.Content == "" {
		return rendered, nil
	}

	html, err := d.parser.ParseWithOptions([]byte(section.Content), d.opts)
	if err != nil {
		return interfaces.RenderedSection{}, fmt.Errorf("render section %q: %w", section.SectionKey, err)
	}
	rendered.HTML = html
	return rendered, nil
}

// RenderDocument renders every section of the parsed document in order.
func (d *Dispatcher) RenderDocument(doc interfaces.ParsedMarkdownDocument) (*interfaces.RenderedDocument, error) {
	out := &interfaces.RenderedDocument{
		Document: doc,
		Sections: make([]interfaces.RenderedSection, 0, len(doc.Sections)),
	}

	for _, section := range doc.Sections {
		rendered, err := d.RenderSection(section)
		if err != nil {
			return nil, err
		}
		out.Sections = append(out.Sections, rendered)
	}

	logger := logging.WithDocumentContext(d.logger, doc.Title, doc.Slug, "")
	logger.Debug("render.document.complete", "sections", len(out.Sections))
	return out, nil
}

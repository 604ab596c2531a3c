package prp

import (
	"context"
	"sort"
	"strings"

	"github.com/goliatone/go-prp/internal/format"
	"github.com/goliatone/go-prp/internal/logging"
	"github.com/goliatone/go-prp/internal/normalize"
	"github.com/goliatone/go-prp/internal/render"
	"github.com/goliatone/go-prp/internal/segment"
	"github.com/goliatone/go-prp/internal/shape"
	"github.com/goliatone/go-prp/internal/templatetype"
	"github.com/goliatone/go-prp/pkg/interfaces"
)

// documentTitleField is the JSON field adopted as the document title when a
// structurally-given document carries one.
const documentTitleField = "title"

// Service orchestrates the full pipeline: segmentation for markdown inputs,
// normalization plus per-field classification for JSON inputs, and strategy
// dispatch for display. Instances are safe for concurrent use.
type Service struct {
	config     Config
	provider   interfaces.LoggerProvider
	parser     interfaces.MarkdownParser
	logger     interfaces.Logger
	segmenter  *segment.Segmenter
	normalizer *normalize.Normalizer
	dispatcher *render.Dispatcher
}

var _ interfaces.DocumentService = (*Service)(nil)

// ServiceOption customises Service construction.
type ServiceOption func(*Service)

// WithLoggerProvider injects the provider used to scope module loggers.
func WithLoggerProvider(provider interfaces.LoggerProvider) ServiceOption {
	return func(s *Service) {
		s.provider = provider
	}
}

// WithMarkdownParser overrides the goldmark-backed default parser.
func WithMarkdownParser(parser interfaces.MarkdownParser) ServiceOption {
	return func(s *Service) {
		s.parser = parser
	}
}

// New validates the configuration and assembles a Service.
func New(cfg Config, opts ...ServiceOption) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Service{config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	s.logger = logging.ModuleLogger(s.provider, "")

	parseOpts := interfaces.ParseOptions{
		Extensions: cfg.Markdown.Extensions,
		Sanitize:   cfg.Markdown.Sanitize,
		HardWraps:  cfg.Markdown.HardWraps,
		SafeMode:   cfg.Markdown.SafeMode,
	}
	if s.parser == nil {
		s.parser = render.NewGoldmarkParser(parseOpts)
	}

	s.segmenter = segment.New(segment.WithLogger(logging.SegmentLogger(s.provider)))
	s.normalizer = normalize.New(normalize.Options{
		MaxDepth:    cfg.Normalizer.MaxDepth,
		PruneNested: cfg.Normalizer.PruneNested,
		Logger:      logging.NormalizeLogger(s.provider),
	})
	s.dispatcher = render.NewDispatcher(s.parser,
		render.WithLogger(logging.RenderLogger(s.provider)),
		render.WithParseOptions(parseOpts),
	)

	return s, nil
}

// Segment splits raw markdown into an ordered, classified document.
func (s *Service) Segment(ctx context.Context, markdown string) (*interfaces.ParsedMarkdownDocument, error) {
	if !s.config.Enabled {
		return nil, ErrModuleDisabled
	}

	doc := s.segmenter.Segment(markdown)
	if !s.config.Features.Metadata {
		doc.Metadata = nil
		doc.HasMetadata = false
	}
	return &doc, nil
}

// Normalize canonicalizes an arbitrary nested value.
func (s *Service) Normalize(ctx context.Context, value any) (any, error) {
	if !s.config.Enabled {
		return nil, ErrModuleDisabled
	}
	return s.normalizer.Normalize(value)
}

// Render accepts any raw input shape and produces a display-ready document:
// markdown strings are segmented, JSON values are normalized and projected
// into per-field sections, and every section is paired with a display
// strategy and rendered HTML body.
func (s *Service) Render(ctx context.Context, input any) (*interfaces.RenderedDocument, error) {
	if !s.config.Enabled {
		return nil, ErrModuleDisabled
	}
	if !s.config.Features.Rendering {
		return nil, ErrRenderingDisabled
	}

	doc, err := s.document(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.dispatcher.RenderDocument(*doc)
}

// document resolves the heterogeneous input into a parsed document.
func (s *Service) document(ctx context.Context, input any) (*interfaces.ParsedMarkdownDocument, error) {
	switch v := input.(type) {
	case nil:
		return &interfaces.ParsedMarkdownDocument{}, nil
	case string:
		return s.stringDocument(ctx, v)
	default:
		normalized, err := s.Normalize(ctx, v)
		if err != nil {
			return nil, err
		}
		return s.valueDocument(ctx, normalized)
	}
}

func (s *Service) stringDocument(ctx context.Context, source string) (*interfaces.ParsedMarkdownDocument, error) {
	if shape.LooksLikeMarkdown(source) {
		return s.Segment(ctx, source)
	}
	return plainTextDocument(source), nil
}

// valueDocument projects a normalized JSON value into a document. Objects
// become one section per top-level field; a string "title" field is adopted
// as the document title instead of a section. Field order follows sorted
// keys so output is deterministic across runs.
func (s *Service) valueDocument(ctx context.Context, value any) (*interfaces.ParsedMarkdownDocument, error) {
	object, ok := value.(map[string]any)
	if !ok {
		if str, isString := value.(string); isString {
			return s.stringDocument(ctx, str)
		}
		doc := &interfaces.ParsedMarkdownDocument{}
		doc.Sections = append(doc.Sections, s.fieldSection(segment.NewKeyAllocator(), 0, "content", value))
		return doc, nil
	}

	doc := &interfaces.ParsedMarkdownDocument{}
	if title, isString := object[documentTitleField].(string); isString && strings.TrimSpace(title) != "" {
		doc.Title = strings.TrimSpace(title)
		doc.Slug = segment.DocumentSlug(doc.Title)
	}

	keys := make([]string, 0, len(object))
	for key := range object {
		if key == documentTitleField && doc.Title != "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	allocator := segment.NewKeyAllocator()
	for _, key := range keys {
		doc.Sections = append(doc.Sections, s.fieldSection(allocator, len(doc.Sections), key, object[key]))
	}
	return doc, nil
}

// fieldSection builds a section for a single top-level JSON field, routing
// markdown-looking string values through shape classification and rendering
// containers as depth-capped trees.
func (s *Service) fieldSection(allocator *segment.KeyAllocator, index int, key string, value any) interfaces.ParsedSection {
	title := format.HumanizeKey(key)

	section := interfaces.ParsedSection{
		Title:        title,
		Level:        2,
		SectionKey:   allocator.Issue(segment.SlugifyTitle(title), index),
		TemplateType: templatetype.ClassifyField(key, title, value),
	}

	switch v := value.(type) {
	case string:
		section.RawContent = v
		section.Content = strings.TrimSpace(v)
		section.Type = shape.Classify(section.Content)
	case []any:
		section.Content = render.RenderTreeWithDepth(v, s.config.Renderer.MaxTreeDepth)
		section.RawContent = section.Content
		section.Type = interfaces.ShapeList
	case map[string]any:
		section.Content = render.RenderTreeWithDepth(v, s.config.Renderer.MaxTreeDepth)
		section.RawContent = section.Content
		section.Type = interfaces.ShapeText
	default:
		section.Content = format.Value(v)
		section.RawContent = section.Content
		section.Type = interfaces.ShapeText
	}
	return section
}

// plainTextDocument wraps a non-markdown string as a single generic section.
// Blank input yields a well-formed empty document.
func plainTextDocument(source string) *interfaces.ParsedMarkdownDocument {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return &interfaces.ParsedMarkdownDocument{}
	}

	return &interfaces.ParsedMarkdownDocument{
		Sections: []interfaces.ParsedSection{
			{
				Content:      trimmed,
				RawContent:   source,
				Level:        2,
				Type:         interfaces.ShapeText,
				SectionKey:   "section_0",
				TemplateType: interfaces.CategoryGeneric,
			},
		},
	}
}

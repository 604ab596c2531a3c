// Package segment splits raw markdown strings into ordered, classified
// documents. The segmenter recognizes heading boundaries only; body lines
// are buffered verbatim and classified as a whole when a section closes.
package segment

import (
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
	slug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-prp/internal/logging"
	"github.com/goliatone/go-prp/internal/shape"
	"github.com/goliatone/go-prp/internal/templatetype"
	"github.com/goliatone/go-prp/pkg/interfaces"
)

var headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// Segmenter turns raw markdown into a ParsedMarkdownDocument. Instances are
// stateless between calls and safe for concurrent use.
type Segmenter struct {
	logger interfaces.Logger
}

// Option customises a Segmenter instance.
type Option func(*Segmenter)

// WithLogger injects the logger used for segmentation diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Segmenter) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a Segmenter with a no-op logger unless overridden.
func New(opts ...Option) *Segmenter {
	s := &Segmenter{logger: logging.NoOp()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// accumulator buffers the body of the section currently being scanned.
type accumulator struct {
	title string
	level int
	raw   strings.Builder
}

// Segment scans the markdown line by line and returns a well-formed document
// for any input, including the empty string. Sections appear exactly in
// source order.
//
// The first level-1 heading becomes the document title and opens no section.
// Every other heading flushes the open accumulator and starts a new one.
// When content precedes all headings, the first non-blank line is adopted as
// the title by fallback.
func (s *Segmenter) Segment(markdown string) interfaces.ParsedMarkdownDocument {
	metadata, body := extractMetadata(markdown)

	doc := interfaces.ParsedMarkdownDocument{
		Metadata:    metadata,
		HasMetadata: len(metadata) > 0,
	}

	keys := NewKeyAllocator()
	var current *accumulator

	flush := func() {
		if current == nil {
			return
		}
		doc.Sections = append(doc.Sections, buildSection(current, keys, len(doc.Sections)))
		current = nil
	}

	lines := strings.Split(body, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		// Drop the artifact of splitting a trailing newline so RawContent
		// stays verbatim.
		lines = lines[:len(lines)-1]
	}

	titleSet := false
	for _, line := range lines {
		if match := headingRe.FindStringSubmatch(line); match != nil {
			level := len(match[1])
			title := strings.TrimSpace(match[2])

			if level == 1 && !titleSet {
				doc.Title = title
				titleSet = true
				continue
			}

			flush()
			current = &accumulator{title: title, level: level}
			continue
		}

		if current != nil {
			current.raw.WriteString(line)
			current.raw.WriteString("\n")
			continue
		}

		if !titleSet && strings.TrimSpace(line) != "" {
			doc.Title = strings.TrimSpace(line)
			titleSet = true
		}
	}
	flush()

	doc.Slug = DocumentSlug(doc.Title)

	s.logger.Debug("segment.complete",
		"title", doc.Title,
		"sections", len(doc.Sections),
		"has_metadata", doc.HasMetadata,
	)

	return doc
}

func buildSection(acc *accumulator, keys *KeyAllocator, index int) interfaces.ParsedSection {
	raw := acc.raw.String()
	content := strings.TrimSpace(raw)

	return interfaces.ParsedSection{
		Title:        acc.title,
		Content:      content,
		RawContent:   raw,
		Level:        acc.level,
		Type:         shape.Classify(content),
		SectionKey:   keys.Issue(SlugifyTitle(acc.title), index),
		TemplateType: templatetype.ClassifySection(acc.title),
	}
}

// extractMetadata strips YAML/TOML frontmatter from the source when present.
// Malformed frontmatter degrades to no metadata with the input untouched;
// segmentation never fails on bad metadata.
func extractMetadata(markdown string) (map[string]any, string) {
	var metadata map[string]any

	rest, err := frontmatter.Parse(strings.NewReader(markdown), &metadata)
	if err != nil {
		return nil, markdown
	}
	if len(metadata) == 0 {
		return nil, string(rest)
	}
	return metadata, string(rest)
}

// DocumentSlug derives a URL-safe slug from a document title using the
// shared slug rules. Section keys intentionally do not use this helper; they
// follow the legacy underscore format consumers already key on.
func DocumentSlug(title string) string {
	if strings.TrimSpace(title) == "" {
		return ""
	}
	normalized, err := slug.Normalize(title)
	if err != nil {
		return ""
	}
	return normalized
}

// Package prp renders PRP (structured requirement) documents that arrive in
// heterogeneous shapes, from raw markdown strings and metadata-wrapped
// markdown to arbitrary nested JSON values, into a uniform sequence of
// classified, labeled sections for display.
package prp

import (
	"github.com/goliatone/go-prp/internal/render"
	"github.com/goliatone/go-prp/internal/segment"
	"github.com/goliatone/go-prp/internal/shape"
	"github.com/goliatone/go-prp/internal/templatetype"
	"github.com/goliatone/go-prp/pkg/interfaces"
)

type (
	TextShape              = interfaces.TextShape
	TemplateCategory       = interfaces.TemplateCategory
	ParsedSection          = interfaces.ParsedSection
	ParsedMarkdownDocument = interfaces.ParsedMarkdownDocument
	ParseOptions           = interfaces.ParseOptions
	RenderedSection        = interfaces.RenderedSection
	RenderedDocument       = interfaces.RenderedDocument
	Logger                 = interfaces.Logger
	LoggerProvider         = interfaces.LoggerProvider
)

const (
	ShapeText  = interfaces.ShapeText
	ShapeList  = interfaces.ShapeList
	ShapeCode  = interfaces.ShapeCode
	ShapeMixed = interfaces.ShapeMixed

	CategoryContext  = interfaces.CategoryContext
	CategoryMetrics  = interfaces.CategoryMetrics
	CategoryPlan     = interfaces.CategoryPlan
	CategoryPersonas = interfaces.CategoryPersonas
	CategoryFlows    = interfaces.CategoryFlows
	CategoryList     = interfaces.CategoryList
	CategoryFeatures = interfaces.CategoryFeatures
	CategoryObject   = interfaces.CategoryObject
	CategoryKeyValue = interfaces.CategoryKeyValue
	CategoryGeneric  = interfaces.CategoryGeneric
)

// ClassifyShape reduces a block of text to its TextShape.
func ClassifyShape(content string) TextShape {
	return shape.Classify(content)
}

// LooksLikeMarkdown reports whether a raw string should be routed through
// the markdown segmenter. The test is permissive and tolerates false
// positives; a plain string containing a lone asterisk matches.
func LooksLikeMarkdown(s string) bool {
	return shape.LooksLikeMarkdown(s)
}

// ClassifyTemplate resolves a markdown section title to a template category
// by exact normalized phrase. The zero value means no rule matched;
// consumers treat it as CategoryGeneric.
func ClassifyTemplate(title string) TemplateCategory {
	return templatetype.ClassifySection(title)
}

// ClassifyFieldTemplate resolves a structurally-given JSON field to a
// template category using substring keyword rules with a data-shape
// fallback. It always returns a concrete category.
func ClassifyFieldTemplate(key, title string, value any) TemplateCategory {
	return templatetype.ClassifyField(key, title, value)
}

// StrategyFor resolves the display strategy name for a template category.
func StrategyFor(category TemplateCategory) string {
	return render.StrategyFor(category)
}

// SectionSlug applies the section-key slug rules to a title without the
// per-document collision suffixing.
func SectionSlug(title string) string {
	return segment.SlugifyTitle(title)
}

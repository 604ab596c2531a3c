// Package templatetype maps section titles and document fields to the closed
// set of semantic template categories used to pick display strategies.
//
// Two classifiers live here on purpose. ClassifySection matches markdown
// section titles against exact normalized phrases; near misses fall through
// to generic, which is a legitimate outcome. ClassifyField serves
// structurally-given JSON fields and is deliberately looser: substring rules
// over key and title, then a data-shape fallback. The two must not be
// unified; they carry different false-positive trade-offs.
package templatetype

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-prp/pkg/interfaces"
)

var sectionPhrases = map[string]interfaces.TemplateCategory{
	"goal":       interfaces.CategoryContext,
	"goals":      interfaces.CategoryContext,
	"objective":  interfaces.CategoryContext,
	"objectives": interfaces.CategoryContext,
	"why":        interfaces.CategoryContext,
	"context":    interfaces.CategoryContext,
	"background": interfaces.CategoryContext,
	"overview":   interfaces.CategoryContext,
	"purpose":    interfaces.CategoryContext,

	"success metrics":  interfaces.CategoryMetrics,
	"metrics":          interfaces.CategoryMetrics,
	"kpis":             interfaces.CategoryMetrics,
	"success criteria": interfaces.CategoryMetrics,

	"implementation plan": interfaces.CategoryPlan,
	"plan":                interfaces.CategoryPlan,
	"roadmap":             interfaces.CategoryPlan,
	"rollout plan":        interfaces.CategoryPlan,
	"timeline":            interfaces.CategoryPlan,
	"milestones":          interfaces.CategoryPlan,

	"personas":     interfaces.CategoryPersonas,
	"stakeholders": interfaces.CategoryPersonas,
	"target users": interfaces.CategoryPersonas,

	"user flow":    interfaces.CategoryFlows,
	"user flows":   interfaces.CategoryFlows,
	"workflow":     interfaces.CategoryFlows,
	"workflows":    interfaces.CategoryFlows,
	"user journey": interfaces.CategoryFlows,

	"validation":          interfaces.CategoryList,
	"acceptance criteria": interfaces.CategoryList,
	"checklist":           interfaces.CategoryList,

	"features":     interfaces.CategoryFeatures,
	"capabilities": interfaces.CategoryFeatures,
	"key features": interfaces.CategoryFeatures,

	"architecture":           interfaces.CategoryObject,
	"technical requirements": interfaces.CategoryObject,
	"technical architecture": interfaces.CategoryObject,
	"data model":             interfaces.CategoryObject,

	"budget":    interfaces.CategoryKeyValue,
	"team":      interfaces.CategoryKeyValue,
	"resources": interfaces.CategoryKeyValue,
}

var nonAlphanumRe = regexp.MustCompile(`[^a-z0-9 ]+`)
var spacesRe = regexp.MustCompile(`\s+`)

// NormalizeTitle lowercases the title, strips everything outside [a-z0-9 ],
// and collapses internal whitespace.
func NormalizeTitle(title string) string {
	normalized := strings.ToLower(title)
	normalized = nonAlphanumRe.ReplaceAllString(normalized, "")
	normalized = spacesRe.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// ClassifySection resolves a markdown section title to a template category
// by exact normalized phrase lookup. The zero value is returned when no
// phrase matches; callers treat it as generic.
func ClassifySection(title string) interfaces.TemplateCategory {
	return sectionPhrases[NormalizeTitle(title)]
}

// fieldRule is a substring keyword rule evaluated against both a field's key
// and its display title. Rules are ordered; the first hit wins.
type fieldRule struct {
	keyword  string
	category interfaces.TemplateCategory
}

var fieldRules = []fieldRule{
	{"persona", interfaces.CategoryPersonas},
	{"stakeholder", interfaces.CategoryPersonas},
	{"metric", interfaces.CategoryMetrics},
	{"kpi", interfaces.CategoryMetrics},
	{"flow", interfaces.CategoryFlows},
	{"journey", interfaces.CategoryFlows},
	{"roadmap", interfaces.CategoryPlan},
	{"milestone", interfaces.CategoryPlan},
	{"plan", interfaces.CategoryPlan},
	{"feature", interfaces.CategoryFeatures},
	{"capabilit", interfaces.CategoryFeatures},
	{"goal", interfaces.CategoryContext},
	{"objective", interfaces.CategoryContext},
	{"context", interfaces.CategoryContext},
	{"background", interfaces.CategoryContext},
	{"budget", interfaces.CategoryKeyValue},
	{"team", interfaces.CategoryKeyValue},
	{"resource", interfaces.CategoryKeyValue},
	{"architecture", interfaces.CategoryObject},
	{"technical", interfaces.CategoryObject},
	{"validation", interfaces.CategoryList},
	{"criteria", interfaces.CategoryList},
	{"checklist", interfaces.CategoryList},
}

// ClassifyField resolves a top-level JSON field to a template category.
// Substring keyword rules run against the field key and title first; when
// none hit, the value's shape decides: arrays render as lists, plain objects
// as key/value trees, everything else as generic. Unlike ClassifySection,
// this classifier always returns a concrete category.
func ClassifyField(key, title string, value any) interfaces.TemplateCategory {
	haystack := strings.ToLower(key) + " " + strings.ToLower(title)
	for _, rule := range fieldRules {
		if strings.Contains(haystack, rule.keyword) {
			return rule.category
		}
	}

	switch value.(type) {
	case []any:
		return interfaces.CategoryList
	case map[string]any:
		return interfaces.CategoryObject
	default:
		return interfaces.CategoryGeneric
	}
}

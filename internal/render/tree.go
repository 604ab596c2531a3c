package render

import (
	"sort"
	"strings"

	"github.com/goliatone/go-prp/internal/format"
)

// MaxTreeDepth caps display-time recursion over normalized trees. Nodes
// beyond the ceiling render as TooDeepPlaceholder so pathological nesting
// can never wedge the display layer.
const MaxTreeDepth = 5

// TooDeepPlaceholder stands in for nodes beyond MaxTreeDepth.
const TooDeepPlaceholder = "[too deeply nested]"

// RenderTree renders a normalized value as indented plain text. Object keys
// are humanized and emitted in sorted order so output is deterministic.
func RenderTree(value any) string {
	return RenderTreeWithDepth(value, MaxTreeDepth)
}

// RenderTreeWithDepth renders with an explicit recursion ceiling. Callers
// with configurable display budgets use this form; non-positive ceilings
// fall back to MaxTreeDepth.
func RenderTreeWithDepth(value any, maxDepth int) string {
	if maxDepth <= 0 {
		maxDepth = MaxTreeDepth
	}
	var b strings.Builder
	writeTree(&b, value, 0, maxDepth)
	return strings.TrimRight(b.String(), "\n")
}

func writeTree(b *strings.Builder, value any, depth, maxDepth int) {
	if depth > maxDepth {
		writeLine(b, depth, TooDeepPlaceholder)
		return
	}

	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			child := v[key]
			label := format.HumanizeKey(key)
			if isContainer(child) {
				writeLine(b, depth, label+":")
				writeTree(b, child, depth+1, maxDepth)
				continue
			}
			writeLine(b, depth, label+": "+format.Value(child))
		}
	case []any:
		for _, child := range v {
			if isContainer(child) {
				writeLine(b, depth, "-")
				writeTree(b, child, depth+1, maxDepth)
				continue
			}
			writeLine(b, depth, "- "+format.Value(child))
		}
	default:
		writeLine(b, depth, format.Value(v))
	}
}

func isContainer(value any) bool {
	switch value.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

func writeLine(b *strings.Builder, depth int, text string) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(text)
	b.WriteString("\n")
}

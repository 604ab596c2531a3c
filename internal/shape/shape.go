// Package shape classifies the syntactic makeup of text blocks. It backs two
// decisions: which TextShape a section body behaves as, and whether a raw
// string field should be routed into the markdown segmenter at all.
package shape

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-prp/pkg/interfaces"
)

var (
	bulletRe  = regexp.MustCompile(`^[-*+]\s`)
	orderedRe = regexp.MustCompile(`^\d+\.\s`)
)

// Classify inspects every non-blank line of content and reduces the
// observations to a single TextShape. Precedence is fixed: a fenced code
// marker anywhere wins outright, then list+text yields mixed, then a pure
// list, then text. Code winning over mixed is a deliberate simplification.
// Lines are trimmed before matching, so indented list markers and fences
// count the same as column-zero ones; nested list items classify as list
// rather than leaking into text.
func Classify(content string) interfaces.TextShape {
	var hasCode, hasList, hasText bool

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		switch {
		case strings.HasPrefix(trimmed, "```"):
			hasCode = true
		case bulletRe.MatchString(trimmed) || orderedRe.MatchString(trimmed):
			hasList = true
		default:
			hasText = true
		}
	}

	switch {
	case hasCode:
		return interfaces.ShapeCode
	case hasList && hasText:
		return interfaces.ShapeMixed
	case hasList:
		return interfaces.ShapeList
	default:
		return interfaces.ShapeText
	}
}

var markdownHints = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^#{1,6}\s`),        // headings
	regexp.MustCompile(`(?m)^\s*[-*+]\s`),      // bullet lists
	regexp.MustCompile(`(?m)^\s*\d+\.\s`),      // ordered lists
	regexp.MustCompile("```"),                  // fenced code
	regexp.MustCompile(`(?m)^>\s?`),            // blockquotes
	regexp.MustCompile(`(?m)^\|.*\|`),          // tables
	regexp.MustCompile(`\*\*[^*\n]+\*\*`),      // bold
	regexp.MustCompile(`\*[^*\n]+\*`),          // italic
	regexp.MustCompile("`[^`\n]+`"),            // inline code
}

// LooksLikeMarkdown reports whether the string carries any recognizable
// markdown syntax. The test is intentionally permissive: false positives
// (a stray asterisk pair reads as italic) are accepted, because the cost of
// routing plain text through the segmenter is a single text section.
func LooksLikeMarkdown(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, hint := range markdownHints {
		if hint.MatchString(s) {
			return true
		}
	}
	return false
}

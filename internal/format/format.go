// Package format renders scalar values, counts, and machine keys as
// human-readable display strings. All helpers are pure and safe for
// concurrent use.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/gertd/go-pluralize"
)

var pluralizer = pluralize.NewClient()

// Value stringifies a scalar for display. Collections collapse to a count
// label so callers can defer structural rendering to the tree renderer.
func Value(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "Yes"
		}
		return "No"
	case float64:
		// JSON numbers decode as float64; render integral values without
		// a trailing fraction.
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return Value(float64(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case []any:
		return CountLabel(len(v), "item")
	case map[string]any:
		return CountLabel(len(v), "field")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// CountLabel renders a count with a correctly pluralized noun, e.g.
// CountLabel(3, "item") -> "3 items".
func CountLabel(count int, noun string) string {
	noun = strings.TrimSpace(noun)
	if noun == "" {
		return strconv.Itoa(count)
	}
	return pluralizer.Pluralize(noun, count, true)
}

// HumanizeKey derives a display label from a machine key, splitting
// snake_case, kebab-case, and camelCase boundaries and title-casing each
// word: "success_metrics" -> "Success Metrics", "userFlow" -> "User Flow".
func HumanizeKey(key string) string {
	words := splitKeyWords(key)
	if len(words) == 0 {
		return ""
	}
	for i, word := range words {
		words[i] = titleWord(word)
	}
	return strings.Join(words, " ")
}

func splitKeyWords(key string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(key)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == '.' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r):
			// Break before an upper rune that starts a new word: either the
			// previous rune was lower/digit, or the next rune is lower
			// ("APIKey" -> "API", "Key").
			if i > 0 {
				prev := runes[i-1]
				next := rune(0)
				if i+1 < len(runes) {
					next = runes[i+1]
				}
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && unicode.IsLower(next)) {
					flush()
				}
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}

func titleWord(word string) string {
	if word == "" {
		return word
	}
	if word == strings.ToUpper(word) && len(word) > 1 {
		// Preserve acronyms as-is.
		return word
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

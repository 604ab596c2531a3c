// Package normalize canonicalizes arbitrary nested data before display.
// Four rules compose, in order: wrapper "content" objects are flattened into
// their parent, string leaves that look like JSON are re-parsed, image
// placeholder tokens are rewritten to markdown image syntax, and empty
// values are pruned from objects. The result is idempotent: normalizing an
// already-normalized tree is a no-op.
package normalize

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-prp/internal/logging"
	"github.com/goliatone/go-prp/pkg/interfaces"
)

// DefaultMaxDepth bounds the recursive walk. Inputs nested beyond the
// ceiling fail with a structured error instead of exhausting the stack.
const DefaultMaxDepth = 64

const maxDepthCode = "NORMALIZE_MAX_DEPTH"

// ErrMaxDepthExceeded reports input nested beyond the configured ceiling.
var ErrMaxDepthExceeded = errors.New("normalize: maximum nesting depth exceeded")

const contentKey = "content"

var imagePlaceholderRe = regexp.MustCompile(`\[Image #(\d+)\]`)

// Options tunes normalization behaviour.
type Options struct {
	// MaxDepth caps the recursive walk; zero selects DefaultMaxDepth.
	MaxDepth int
	// PruneNested extends empty-value pruning from the top-level object
	// into every nested object. The legacy behaviour prunes the outermost
	// object only.
	PruneNested bool
	// Logger receives normalization diagnostics; nil means silent.
	Logger interfaces.Logger
}

// Normalizer applies the canonicalization rules. Instances hold no per-call
// state and are safe for concurrent use.
type Normalizer struct {
	maxDepth    int
	pruneNested bool
	logger      interfaces.Logger
}

// New constructs a Normalizer from the supplied options.
func New(opts Options) *Normalizer {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Normalizer{
		maxDepth:    maxDepth,
		pruneNested: opts.PruneNested,
		logger:      logger,
	}
}

// Normalize canonicalizes the value with default options.
func Normalize(value any) (any, error) {
	return New(Options{}).Normalize(value)
}

// Normalize walks the value and returns its canonical form. The input is
// never mutated; containers are rebuilt. Malformed embedded JSON is kept as
// the original string, never surfaced as an error. The only failure mode is
// nesting beyond the depth ceiling.
func (n *Normalizer) Normalize(value any) (any, error) {
	out, err := n.walk(value, 0)
	if err != nil {
		return nil, err
	}

	if object, ok := out.(map[string]any); ok {
		out = n.pruneObject(object, true)
	}
	return out, nil
}

func (n *Normalizer) walk(value any, depth int) (any, error) {
	if depth > n.maxDepth {
		n.logger.Warn("normalize.depth_exceeded", "max_depth", n.maxDepth)
		return nil, goerrors.Wrap(ErrMaxDepthExceeded, goerrors.CategoryValidation, "normalize tree too deep").
			WithTextCode(maxDepthCode)
	}

	switch v := value.(type) {
	case map[string]any:
		return n.walkObject(v, depth)
	case []any:
		return n.walkArray(v, depth)
	case string:
		return n.walkString(v, depth)
	default:
		return v, nil
	}
}

func (n *Normalizer) walkObject(object map[string]any, depth int) (any, error) {
	object = flattenNestedContent(object)

	out := make(map[string]any, len(object))
	for key, child := range object {
		normalized, err := n.walk(child, depth+1)
		if err != nil {
			return nil, err
		}
		out[key] = normalized
	}

	if n.pruneNested && depth > 0 {
		return n.pruneObject(out, false), nil
	}
	return out, nil
}

func (n *Normalizer) walkArray(array []any, depth int) (any, error) {
	out := make([]any, 0, len(array))
	for _, child := range array {
		normalized, err := n.walk(child, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, normalized)
	}
	return out, nil
}

// walkString re-parses JSON-looking leaves and rewrites image placeholders.
// A successful parse substitutes the parsed tree, which is then walked so
// nested strings inside it normalize too; that recursion is what keeps the
// whole pass idempotent. Parse failures keep the original string and fall
// through to the placeholder rewrite.
func (n *Normalizer) walkString(s string, depth int) (any, error) {
	if looksLikeJSON(s) {
		var parsed any
		if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &parsed); err == nil {
			return n.walk(parsed, depth+1)
		}
	}
	return rewriteImagePlaceholders(s), nil
}

// flattenNestedContent merges a wrapper "content" object into its parent.
// Fields from the content object win on key collision. The loop re-checks
// the merged result because the wrapper may itself carry another wrapper.
// String or array content values are left in place untouched.
func flattenNestedContent(object map[string]any) map[string]any {
	for {
		raw, ok := object[contentKey]
		if !ok {
			return object
		}
		nested, ok := raw.(map[string]any)
		if !ok {
			return object
		}

		merged := make(map[string]any, len(object)+len(nested))
		for key, value := range object {
			if key != contentKey {
				merged[key] = value
			}
		}
		for key, value := range nested {
			merged[key] = value
		}
		object = merged
	}
}

// looksLikeJSON reports whether the trimmed string is bracket-delimited the
// way a JSON object or array would be. It is a routing heuristic, not a
// validity check; the parse attempt decides.
func looksLikeJSON(s string) bool {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) < 2 {
		return false
	}
	switch trimmed[0] {
	case '{':
		return trimmed[len(trimmed)-1] == '}'
	case '[':
		return trimmed[len(trimmed)-1] == ']'
	default:
		return false
	}
}

// rewriteImagePlaceholders replaces every "[Image #N]" token with markdown
// image syntax pointing at a deterministic placeholder asset.
func rewriteImagePlaceholders(s string) string {
	return imagePlaceholderRe.ReplaceAllString(s, "![Image $1](placeholder-image-$1)")
}

// pruneObject drops keys whose values are empty: nil, "", empty arrays,
// empty objects. topLevel distinguishes the outermost pass, which always
// prunes, from nested passes that only run when PruneNested is set.
func (n *Normalizer) pruneObject(object map[string]any, topLevel bool) map[string]any {
	if !topLevel && !n.pruneNested {
		return object
	}

	out := make(map[string]any, len(object))
	for key, value := range object {
		if isEmptyValue(value) {
			continue
		}
		out[key] = value
	}
	return out
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

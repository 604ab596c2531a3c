package normalize

import (
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/go-cmp/cmp"
)

func mustNormalize(t *testing.T, n *Normalizer, value any) any {
	t.Helper()
	out, err := n.Normalize(value)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	return out
}

func TestNormalizeFlattensNestedContent(t *testing.T) {
	input := map[string]any{
		"name": "outer",
		"content": map[string]any{
			"name":  "inner",
			"extra": "kept",
		},
	}

	got := mustNormalize(t, New(Options{}), input)

	want := map[string]any{
		"name":  "inner", // content fields win on collision
		"extra": "kept",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeFlattensChainedWrappers(t *testing.T) {
	input := map[string]any{
		"content": map[string]any{
			"content": map[string]any{
				"leaf": "value",
			},
		},
	}

	got := mustNormalize(t, New(Options{}), input)

	want := map[string]any{"leaf": "value"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("chained flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeLeavesScalarContentField(t *testing.T) {
	input := map[string]any{"content": "plain body"}

	got := mustNormalize(t, New(Options{}), input)

	want := map[string]any{"content": "plain body"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("scalar content mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeParsesJSONStrings(t *testing.T) {
	input := map[string]any{"a": `{"b":1}`}

	got := mustNormalize(t, New(Options{}), input)

	want := map[string]any{"a": map[string]any{"b": float64(1)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("json re-parse mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeKeepsMalformedJSONStrings(t *testing.T) {
	input := map[string]any{"a": "not json {still text"}

	got := mustNormalize(t, New(Options{}), input)

	want := map[string]any{"a": "not json {still text"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("malformed json mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeRewritesImagePlaceholders(t *testing.T) {
	got, err := Normalize("see [Image #3] below")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	want := "see ![Image 3](placeholder-image-3) below"
	if got != want {
		t.Fatalf("placeholder rewrite: got %q, want %q", got, want)
	}
}

func TestNormalizePrunesTopLevelEmptyValues(t *testing.T) {
	input := map[string]any{
		"a": "",
		"b": nil,
		"c": []any{},
		"d": "keep",
		"e": map[string]any{},
	}

	got := mustNormalize(t, New(Options{}), input)

	want := map[string]any{"d": "keep"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("top-level prune mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizePruningDepth(t *testing.T) {
	input := map[string]any{
		"outer": map[string]any{
			"empty": "",
			"keep":  "x",
		},
	}

	t.Run("top level only by default", func(t *testing.T) {
		got := mustNormalize(t, New(Options{}), input)

		want := map[string]any{
			"outer": map[string]any{
				"empty": "",
				"keep":  "x",
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("default prune mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nested when configured", func(t *testing.T) {
		got := mustNormalize(t, New(Options{PruneNested: true}), input)

		want := map[string]any{
			"outer": map[string]any{
				"keep": "x",
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("nested prune mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestNormalizeIdempotence(t *testing.T) {
	fixtures := []any{
		map[string]any{
			"title": "Doc",
			"content": map[string]any{
				"goal": "ship",
				"raw":  `{"nested":{"list":[1,2,"[Image #1]"]}}`,
			},
			"empty":   "",
			"caption": "see [Image #7]",
		},
		[]any{"plain", `["a","b"]`, map[string]any{"content": "s"}},
		"see [Image #2] and {broken json",
	}

	for _, opts := range []Options{{}, {PruneNested: true}} {
		n := New(opts)
		for i, fixture := range fixtures {
			once := mustNormalize(t, n, fixture)
			twice := mustNormalize(t, n, once)
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Fatalf("fixture %d not idempotent (pruneNested=%v) (-once +twice):\n%s", i, opts.PruneNested, diff)
			}
		}
	}
}

func TestNormalizeDepthCeiling(t *testing.T) {
	deep := any("leaf")
	for i := 0; i < 10; i++ {
		deep = map[string]any{"level": deep}
	}

	_, err := New(Options{MaxDepth: 5}).Normalize(deep)
	if err == nil {
		t.Fatalf("expected depth ceiling error")
	}
	if !errors.Is(err, ErrMaxDepthExceeded) {
		t.Fatalf("expected ErrMaxDepthExceeded, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestNormalizeWithinDepthCeiling(t *testing.T) {
	deep := any("leaf")
	for i := 0; i < 10; i++ {
		deep = map[string]any{"level": deep}
	}

	if _, err := New(Options{MaxDepth: 50}).Normalize(deep); err != nil {
		t.Fatalf("expected deep-but-bounded input to normalize, got %v", err)
	}
}

func TestNormalizeArraysRecursively(t *testing.T) {
	input := []any{`{"a":1}`, "see [Image #4]", []any{"x"}}

	got := mustNormalize(t, New(Options{}), input)

	want := []any{
		map[string]any{"a": float64(1)},
		"see ![Image 4](placeholder-image-4)",
		[]any{"x"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("array walk mismatch (-want +got):\n%s", diff)
	}
}

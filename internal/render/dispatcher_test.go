package render

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-prp/pkg/interfaces"
)

type fieldRecordingLogger struct {
	fields []map[string]any
}

func (r *fieldRecordingLogger) Trace(string, ...any) {}
func (r *fieldRecordingLogger) Debug(string, ...any) {}
func (r *fieldRecordingLogger) Info(string, ...any)  {}
func (r *fieldRecordingLogger) Warn(string, ...any)  {}
func (r *fieldRecordingLogger) Error(string, ...any) {}
func (r *fieldRecordingLogger) Fatal(string, ...any) {}

func (r *fieldRecordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *fieldRecordingLogger) WithContext(context.Context) interfaces.Logger {
	return r
}

func TestStrategyFor(t *testing.T) {
	cases := []struct {
		category interfaces.TemplateCategory
		want     string
	}{
		{interfaces.CategoryContext, StrategyProse},
		{interfaces.CategoryMetrics, StrategyStatGrid},
		{interfaces.CategoryPlan, StrategyTimeline},
		{interfaces.CategoryPersonas, StrategyCardGrid},
		{interfaces.CategoryFlows, StrategyStepList},
		{interfaces.CategoryList, StrategyChecklist},
		{interfaces.CategoryFeatures, StrategyFeatureGrid},
		{interfaces.CategoryObject, StrategyTree},
		{interfaces.CategoryKeyValue, StrategyKeyValue},
		{interfaces.CategoryGeneric, StrategyGeneric},
		{"", StrategyGeneric},
		{"unknown", StrategyGeneric},
	}

	for _, tc := range cases {
		if got := StrategyFor(tc.category); got != tc.want {
			t.Fatalf("StrategyFor(%q) = %q, want %q", tc.category, got, tc.want)
		}
	}
}

func TestRenderSection(t *testing.T) {
	dispatcher := NewDispatcher(nil)

	rendered, err := dispatcher.RenderSection(interfaces.ParsedSection{
		Title:        "Goal",
		Content:      "Build **everything**.",
		SectionKey:   "goal",
		TemplateType: interfaces.CategoryContext,
	})
	if err != nil {
		t.Fatalf("RenderSection: %v", err)
	}

	if rendered.Strategy != StrategyProse {
		t.Fatalf("expected prose strategy, got %q", rendered.Strategy)
	}
	if !strings.Contains(string(rendered.HTML), "<strong>everything</strong>") {
		t.Fatalf("expected rendered HTML body, got %q", string(rendered.HTML))
	}
}

func TestRenderSectionEmptyBody(t *testing.T) {
	dispatcher := NewDispatcher(nil)

	rendered, err := dispatcher.RenderSection(interfaces.ParsedSection{
		Title:      "Empty",
		SectionKey: "empty",
	})
	if err != nil {
		t.Fatalf("RenderSection: %v", err)
	}

	if rendered.Strategy != StrategyGeneric {
		t.Fatalf("expected generic fallback, got %q", rendered.Strategy)
	}
	if rendered.HTML != nil {
		t.Fatalf("expected no HTML for empty body, got %q", string(rendered.HTML))
	}
}

func TestRenderDocumentKeepsSectionOrder(t *testing.T) {
	dispatcher := NewDispatcher(nil)

	doc := interfaces.ParsedMarkdownDocument{
		Title: "Doc",
		Sections: []interfaces.ParsedSection{
			{Title: "One", Content: "a", SectionKey: "one"},
			{Title: "Two", Content: "b", SectionKey: "two"},
		},
	}

	rendered, err := dispatcher.RenderDocument(doc)
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}

	if len(rendered.Sections) != 2 {
		t.Fatalf("expected two rendered sections, got %d", len(rendered.Sections))
	}
	if rendered.Sections[0].Section.Title != "One" || rendered.Sections[1].Section.Title != "Two" {
		t.Fatalf("expected source order preserved, got %#v", rendered.Sections)
	}
}

func TestRenderDocumentLogsDocumentContext(t *testing.T) {
	rec := &fieldRecordingLogger{}
	dispatcher := NewDispatcher(nil, WithLogger(rec))

	doc := interfaces.ParsedMarkdownDocument{
		Title: "My Doc",
		Slug:  "my-doc",
		Sections: []interfaces.ParsedSection{
			{Title: "One", Content: "a", SectionKey: "one"},
		},
	}

	if _, err := dispatcher.RenderDocument(doc); err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}

	merged := map[string]any{}
	for _, fields := range rec.fields {
		for k, v := range fields {
			merged[k] = v
		}
	}
	if merged["document_title"] != "My Doc" || merged["document_slug"] != "my-doc" {
		t.Fatalf("expected document fields on render log, got %#v", merged)
	}
}

func TestGoldmarkParserParse(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered HTML to include <h1>Heading</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestGoldmarkParserHardWraps(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.ParseWithOptions([]byte("line one\nline two"), interfaces.ParseOptions{
		HardWraps: true,
	})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}

	if !strings.Contains(string(html), "line one<br>") {
		t.Fatalf("expected hard wraps in HTML output, got %q", string(html))
	}
}

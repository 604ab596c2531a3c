package documentadapter

import (
	"context"
	"testing"

	documentcmd "github.com/goliatone/go-prp/internal/commands/document"
	"github.com/goliatone/go-prp/pkg/interfaces"
)

type recordingRegistry struct {
	handlers []any
}

func (r *recordingRegistry) RegisterCommand(handler any) error {
	r.handlers = append(r.handlers, handler)
	return nil
}

type fakeDocumentService struct{}

func (fakeDocumentService) Segment(context.Context, string) (*interfaces.ParsedMarkdownDocument, error) {
	return &interfaces.ParsedMarkdownDocument{}, nil
}

func (fakeDocumentService) Normalize(_ context.Context, value any) (any, error) {
	return value, nil
}

func (fakeDocumentService) Render(context.Context, any) (*interfaces.RenderedDocument, error) {
	return &interfaces.RenderedDocument{}, nil
}

func TestRegisterDocumentCommandsBuildsHandlers(t *testing.T) {
	registry := &recordingRegistry{}

	set, err := RegisterDocumentCommands(registry, fakeDocumentService{}, nil, documentcmd.FeatureGates{})
	if err != nil {
		t.Fatalf("register commands: %v", err)
	}

	if set.Render == nil {
		t.Fatal("expected render handler to be constructed")
	}
	if len(registry.handlers) != 1 {
		t.Fatalf("expected registry to record the handler, got %d", len(registry.handlers))
	}
}

func TestRegisterDocumentCommandsWithoutRegistry(t *testing.T) {
	set, err := RegisterDocumentCommands(nil, fakeDocumentService{}, nil, documentcmd.FeatureGates{})
	if err != nil {
		t.Fatalf("register commands: %v", err)
	}
	if set.Render == nil {
		t.Fatal("expected render handler even without a registry")
	}
}

func TestRegisterDocumentCommandsRequiresService(t *testing.T) {
	if _, err := RegisterDocumentCommands(&recordingRegistry{}, nil, nil, documentcmd.FeatureGates{}); err == nil {
		t.Fatal("expected error when service is nil")
	}
}

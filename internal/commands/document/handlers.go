package documentcmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	command "github.com/goliatone/go-command"
	"github.com/google/uuid"

	"github.com/goliatone/go-prp/internal/commands"
	"github.com/goliatone/go-prp/internal/logging"
	"github.com/goliatone/go-prp/pkg/interfaces"
)

const renderOperation = "document.render"

// ErrRenderFeatureDisabled is returned when the rendering feature flag is disabled at runtime.
var ErrRenderFeatureDisabled = errors.New("document command: feature disabled")

var _ command.Commander[RenderDocumentCommand] = (*RenderDocumentHandler)(nil)

// FeatureGates exposes runtime feature toggles required by document command
// handlers. Callers supply closures that read from prp.Config.Features so
// handlers stay decoupled from configuration while honouring feature flags.
type FeatureGates struct {
	RenderEnabled func() bool
}

func (g FeatureGates) renderEnabled() bool {
	if g.RenderEnabled == nil {
		return true
	}
	return g.RenderEnabled()
}

// RenderDocumentOption customises the render handler during construction.
type RenderDocumentOption func(*renderDocumentConfig)

type renderDocumentConfig struct {
	sink        func(*interfaces.RenderedDocument)
	handlerOpts []commands.HandlerOption[RenderDocumentCommand]
}

// WithResultSink registers a callback invoked with every successfully
// rendered document. Commands report errors only; the sink is how callers
// receive the rendered output.
func WithResultSink(sink func(*interfaces.RenderedDocument)) RenderDocumentOption {
	return func(cfg *renderDocumentConfig) {
		cfg.sink = sink
	}
}

// WithHandlerOptions forwards options to the shared handler foundation.
func WithHandlerOptions(opts ...commands.HandlerOption[RenderDocumentCommand]) RenderDocumentOption {
	return func(cfg *renderDocumentConfig) {
		cfg.handlerOpts = append(cfg.handlerOpts, opts...)
	}
}

// RenderDocumentHandler orchestrates document rendering via the shared command handler foundation.
type RenderDocumentHandler struct {
	inner *commands.Handler[RenderDocumentCommand]
}

// NewRenderDocumentHandler creates a handler bound to the supplied document service.
func NewRenderDocumentHandler(service interfaces.DocumentService, logger interfaces.Logger, gates FeatureGates, opts ...RenderDocumentOption) *RenderDocumentHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	cfg := renderDocumentConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	exec := func(ctx context.Context, msg RenderDocumentCommand) error {
		if !gates.renderEnabled() {
			return ErrRenderFeatureDisabled
		}

		entryLogger := baseLogger
		if msg.RequestID != uuid.Nil {
			entryLogger = logging.WithFields(entryLogger, map[string]any{
				"request_id": msg.RequestID.String(),
			})
		}

		input, err := commandInput(msg)
		if err != nil {
			return err
		}

		doc, err := service.Render(ctx, input)
		if err != nil {
			return err
		}

		entryLogger.Debug("document.render.complete",
			"title", doc.Document.Title,
			"sections", len(doc.Sections),
		)

		if cfg.sink != nil {
			cfg.sink(doc)
		}
		return nil
	}

	handlerOpts := append([]commands.HandlerOption[RenderDocumentCommand]{
		commands.WithLogger[RenderDocumentCommand](baseLogger),
		commands.WithOperation[RenderDocumentCommand](renderOperation),
	}, cfg.handlerOpts...)

	return &RenderDocumentHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander by delegating to the shared handler.
func (h *RenderDocumentHandler) Execute(ctx context.Context, msg RenderDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// commandInput resolves the raw input carried by the message. JSON payloads
// decode into the generic value tree the normalizer operates on.
func commandInput(msg RenderDocumentCommand) (any, error) {
	if len(msg.Payload) == 0 {
		return msg.Markdown, nil
	}

	var input any
	if err := json.Unmarshal(msg.Payload, &input); err != nil {
		return nil, fmt.Errorf("document command: decode payload: %w", err)
	}
	return input, nil
}

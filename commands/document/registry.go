// Package documentadapter wires document command handlers into host command
// registries.
package documentadapter

import (
	"errors"

	"github.com/goliatone/go-prp/internal/commands"
	documentcmd "github.com/goliatone/go-prp/internal/commands/document"
	"github.com/goliatone/go-prp/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the document command handlers produced by RegisterDocumentCommands.
type HandlerSet struct {
	Render *documentcmd.RenderDocumentHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	renderHandlerOpts []documentcmd.RenderDocumentOption
}

// WithRenderHandlerOptions forwards options to the RenderDocumentHandler constructor.
func WithRenderHandlerOptions(opts ...documentcmd.RenderDocumentOption) Option {
	return func(cfg *options) {
		cfg.renderHandlerOpts = append(cfg.renderHandlerOpts, opts...)
	}
}

// RegisterDocumentCommands builds document command handlers and registers
// them with the provided registry. A HandlerSet containing the constructed
// handlers is returned so callers can wire additional integrations as needed.
func RegisterDocumentCommands(reg CommandRegistry, service interfaces.DocumentService, provider interfaces.LoggerProvider, gates documentcmd.FeatureGates, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("document command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "document")

	renderHandler := documentcmd.NewRenderDocumentHandler(service, logger, gates, cfg.renderHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(renderHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Render: renderHandler,
	}, nil
}

package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-prp/pkg/interfaces"
)

const (
	rootModule      = "prp"
	segmentModule   = "prp.segment"
	normalizeModule = "prp.normalize"
	renderModule    = "prp.render"
)

const (
	fieldDocumentTitle = "document_title"
	fieldDocumentSlug  = "document_slug"
	fieldSectionKey    = "section_key"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// SegmentLogger returns the logger namespace reserved for the markdown segmenter.
func SegmentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, segmentModule)
}

// NormalizeLogger returns the logger namespace reserved for the content normalizer.
func NormalizeLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, normalizeModule)
}

// RenderLogger returns the logger namespace reserved for the rendering dispatcher.
func RenderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, renderModule)
}

// WithDocumentContext enriches the provided logger with common document fields
// such as title, slug, and section key. Empty values are ignored.
func WithDocumentContext(logger interfaces.Logger, title, slug, sectionKey string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		fields[fieldDocumentTitle] = trimmed
	}
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		fields[fieldDocumentSlug] = trimmed
	}
	if trimmed := strings.TrimSpace(sectionKey); trimmed != "" {
		fields[fieldSectionKey] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}

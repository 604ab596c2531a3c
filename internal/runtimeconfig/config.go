// Package runtimeconfig holds the runtime configuration surface for the PRP
// module. Fields intentionally use simple types so host applications can
// unmarshal them from any configuration source.
package runtimeconfig

import (
	"errors"
	"strings"
)

// ErrNormalizerMaxDepthInvalid rejects negative depth ceilings.
var ErrNormalizerMaxDepthInvalid = errors.New("prp config: normalizer max depth must be zero or positive")

// ErrRenderDepthInvalid rejects non-positive display recursion ceilings.
var ErrRenderDepthInvalid = errors.New("prp config: render tree depth must be positive")

// ErrCommandsRequireRendering keeps the command surface behind the rendering feature.
var ErrCommandsRequireRendering = errors.New("prp config: commands feature requires rendering to be enabled")

// ErrLoggingProviderRequired is returned when logging is enabled without a provider.
var ErrLoggingProviderRequired = errors.New("prp config: logging provider is required when logging feature is enabled")

// ErrLoggingProviderUnknown flags unrecognized logging providers.
var ErrLoggingProviderUnknown = errors.New("prp config: logging provider is invalid")

// ErrLoggingLevelInvalid flags unrecognized logging levels.
var ErrLoggingLevelInvalid = errors.New("prp config: logging level is invalid")

// ErrLoggingFormatInvalid flags unrecognized logging formats.
var ErrLoggingFormatInvalid = errors.New("prp config: logging format is invalid")

// Config aggregates feature flags and component tuning for the PRP module.
type Config struct {
	Enabled    bool
	Normalizer NormalizerConfig
	Renderer   RendererConfig
	Markdown   MarkdownParserConfig
	Logging    LoggingConfig
	Features   Features
}

// NormalizerConfig tunes the recursive content normalizer.
type NormalizerConfig struct {
	// MaxDepth caps the recursive walk; zero selects the package default.
	MaxDepth int
	// PruneNested extends empty-value pruning into nested objects.
	PruneNested bool
}

// RendererConfig tunes the display boundary.
type RendererConfig struct {
	// MaxTreeDepth caps display-time recursion over normalized trees.
	MaxTreeDepth int
}

// MarkdownParserConfig customises markdown-to-HTML conversion.
type MarkdownParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// LoggingConfig selects and tunes the logging backend.
type LoggingConfig struct {
	Enabled   bool
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features gates optional surfaces of the module.
type Features struct {
	Rendering bool
	Commands  bool
	Metadata  bool
}

// DefaultConfig returns the configuration used when hosts supply nothing.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Normalizer: NormalizerConfig{
			MaxDepth:    0,
			PruneNested: false,
		},
		Renderer: RendererConfig{
			MaxTreeDepth: 5,
		},
		Markdown: MarkdownParserConfig{},
		Logging: LoggingConfig{
			Enabled:  true,
			Provider: "gologger",
			Level:    "info",
			Format:   "json",
		},
		Features: Features{
			Rendering: true,
			Commands:  true,
			Metadata:  true,
		},
	}
}

// Validate enforces cross-field consistency rules.
func (c Config) Validate() error {
	if c.Normalizer.MaxDepth < 0 {
		return ErrNormalizerMaxDepthInvalid
	}
	if c.Renderer.MaxTreeDepth <= 0 {
		return ErrRenderDepthInvalid
	}
	if c.Features.Commands && !c.Features.Rendering {
		return ErrCommandsRequireRendering
	}
	return c.Logging.validate()
}

func (l LoggingConfig) validate() error {
	if !l.Enabled {
		return nil
	}

	provider := strings.ToLower(strings.TrimSpace(l.Provider))
	switch provider {
	case "":
		return ErrLoggingProviderRequired
	case "gologger", "noop":
	default:
		return ErrLoggingProviderUnknown
	}

	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}

	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	return nil
}

package prp

import "github.com/goliatone/go-prp/internal/runtimeconfig"

var (
	ErrNormalizerMaxDepthInvalid = runtimeconfig.ErrNormalizerMaxDepthInvalid
	ErrRenderDepthInvalid        = runtimeconfig.ErrRenderDepthInvalid
	ErrCommandsRequireRendering  = runtimeconfig.ErrCommandsRequireRendering
	ErrLoggingProviderRequired   = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown    = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid       = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid      = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config               = runtimeconfig.Config
	NormalizerConfig     = runtimeconfig.NormalizerConfig
	RendererConfig       = runtimeconfig.RendererConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
	Features             = runtimeconfig.Features
)

// DefaultConfig returns the module's default configuration.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

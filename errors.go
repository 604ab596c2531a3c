package prp

import (
	"errors"

	"github.com/goliatone/go-prp/internal/normalize"
)

var (
	// ErrModuleDisabled is returned when the module is disabled by configuration.
	ErrModuleDisabled = errors.New("prp: module disabled")
	// ErrRenderingDisabled is returned when the rendering feature flag is off.
	ErrRenderingDisabled = errors.New("prp: rendering feature disabled")
	// ErrMaxDepthExceeded is returned when input nests beyond the normalizer ceiling.
	ErrMaxDepthExceeded = normalize.ErrMaxDepthExceeded
)

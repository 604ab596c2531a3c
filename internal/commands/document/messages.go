package documentcmd

import (
	"encoding/json"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const renderDocumentMessageType = "prp.document.render"

// RenderDocumentCommand asks the document service to segment, classify, and
// normalize a single PRP document. Exactly one of Markdown or Payload must
// be supplied: Markdown carries a raw markdown source, Payload an arbitrary
// JSON value to normalize before rendering.
type RenderDocumentCommand struct {
	// Markdown carries the raw markdown source to segment.
	Markdown string `json:"markdown,omitempty"`
	// Payload carries an arbitrary JSON document to normalize and render.
	Payload json.RawMessage `json:"payload,omitempty"`
	// RequestID correlates log entries emitted while rendering.
	RequestID uuid.UUID `json:"request_id,omitempty"`
}

// Type implements command.Message.
func (RenderDocumentCommand) Type() string { return renderDocumentMessageType }

// Validate ensures exactly one input form is present before handlers execute.
func (cmd RenderDocumentCommand) Validate() error {
	hasMarkdown := strings.TrimSpace(cmd.Markdown) != ""
	hasPayload := len(cmd.Payload) > 0

	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Markdown, validation.By(func(any) error {
			if !hasMarkdown && !hasPayload {
				return validation.NewError("prp.document.render.input_required", "markdown or payload is required")
			}
			if hasMarkdown && hasPayload {
				return validation.NewError("prp.document.render.input_ambiguous", "markdown and payload are mutually exclusive")
			}
			return nil
		})),
	)
}

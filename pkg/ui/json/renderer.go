// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/clipfix/pkg/types"
)

// Renderer provides JSON output for machine consumption. Every call writes
// one complete JSON document.
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return &Renderer{encoder: encoder}
}

// RenderEvent renders a rewrite event
func (r *Renderer) RenderEvent(event types.Event) error {
	return r.encoder.Encode(event)
}

// RenderRewrite renders a one-shot rewrite
func (r *Renderer) RenderRewrite(result types.Rewrite) error {
	return r.encoder.Encode(result)
}

// RenderRules renders the rule table under a "rules" key
func (r *Renderer) RenderRules(rules []types.RuleInfo) error {
	return r.encoder.Encode(map[string][]types.RuleInfo{"rules": rules})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{"error": err.Error()})
}

// Package toml renders output as TOML documents
package toml

import (
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/clipfix/pkg/types"
)

// Renderer writes one TOML document per call. TOML has no top-level arrays,
// so rule lists are written as a [[rules]] array of tables.
type Renderer struct {
	output io.Writer
}

// New creates a new TOML renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

type ruleDocument struct {
	Rules []types.RuleInfo `toml:"rules"`
}

func (r *Renderer) encode(v interface{}) error {
	return toml.NewEncoder(r.output).Encode(v)
}

// RenderEvent renders a rewrite event
func (r *Renderer) RenderEvent(event types.Event) error {
	return r.encode(event)
}

// RenderRewrite renders a one-shot rewrite
func (r *Renderer) RenderRewrite(result types.Rewrite) error {
	return r.encode(result)
}

// RenderRules renders the rule table
func (r *Renderer) RenderRules(rules []types.RuleInfo) error {
	return r.encode(ruleDocument{Rules: rules})
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

// RenderError renders an error
func (r *Renderer) RenderError(err error) error {
	return r.encode(map[string]string{"error": err.Error()})
}

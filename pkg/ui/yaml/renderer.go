// Package yaml renders output as YAML documents
package yaml

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/clipfix/pkg/types"
)

// Renderer writes one YAML document per call
type Renderer struct {
	output io.Writer
}

// New creates a new YAML renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

func (r *Renderer) encode(v interface{}) error {
	enc := yaml.NewEncoder(r.output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// RenderEvent renders a rewrite event
func (r *Renderer) RenderEvent(event types.Event) error {
	return r.encode(event)
}

// RenderRewrite renders a one-shot rewrite
func (r *Renderer) RenderRewrite(result types.Rewrite) error {
	return r.encode(result)
}

// RenderRules renders the rule table under a "rules" key
func (r *Renderer) RenderRules(rules []types.RuleInfo) error {
	return r.encode(map[string][]types.RuleInfo{"rules": rules})
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

// RenderError renders an error
func (r *Renderer) RenderError(err error) error {
	return r.encode(map[string]string{"error": err.Error()})
}

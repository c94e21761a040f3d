// Package ui renders clipfix output. It supports terminal (rich), text
// (plain), and JSON, YAML and TOML documents.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/clipfix/pkg/types"
	"github.com/arthur-debert/clipfix/pkg/ui/json"
	"github.com/arthur-debert/clipfix/pkg/ui/terminal"
	"github.com/arthur-debert/clipfix/pkg/ui/text"
	"github.com/arthur-debert/clipfix/pkg/ui/toml"
	"github.com/arthur-debert/clipfix/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderEvent renders a clipboard rewrite done by the monitor
	RenderEvent(event types.Event) error

	// RenderRewrite renders a one-shot rewrite of supplied text
	RenderRewrite(result types.Rewrite) error

	// RenderRules renders the rule table
	RenderRules(rules []types.RuleInfo) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error
}

// NewRenderer creates a new renderer based on the specified format.
// It detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatYAML:
		return yaml.New(output), nil
	case FormatTOML:
		return toml.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/clipfix/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderEvent prints the previous and new clipboard content
func (r *Renderer) RenderEvent(event types.Event) error {
	var b strings.Builder
	switch {
	case event.Error != "":
		fmt.Fprintf(&b, "Couldn't update clipboard content: %s\n", event.Error)
	case event.DryRun:
		b.WriteString("Clipboard content would be updated (dry run)\n")
	default:
		b.WriteString("Clipboard content updated!\n")
	}
	fmt.Fprintf(&b, "Previous Content: %s\n", event.Before)
	fmt.Fprintf(&b, "New Content: %s\n", event.After)

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderRewrite prints the rewritten text alone so the command can sit in a pipe
func (r *Renderer) RenderRewrite(result types.Rewrite) error {
	_, err := fmt.Fprintln(r.output, result.Output)
	return err
}

// RenderRules prints one block per rule
func (r *Renderer) RenderRules(rules []types.RuleInfo) error {
	var b strings.Builder
	for i, rule := range rules {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, rule.Name, rule.Platform)
		fmt.Fprintf(&b, "   pattern:     %s\n", rule.Pattern)
		fmt.Fprintf(&b, "   replacement: %s\n", rule.Replacement)
		fmt.Fprintf(&b, "   example:     %s -> %s\n", rule.Example, rule.Rewritten)
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderMessage prints msg on its own line
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// RenderError prints err prefixed with "Error:"
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

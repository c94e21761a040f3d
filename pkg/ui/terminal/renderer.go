// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/clipfix/pkg/types"
)

// Renderer provides rich terminal output
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderEvent shows the previous and new clipboard content
func (r *Renderer) RenderEvent(event types.Event) error {
	var title string
	switch {
	case event.Error != "":
		title = ErrorStyle.Render("Couldn't update clipboard content: " + event.Error)
	case event.DryRun:
		title = WarningStyle.Render("Clipboard content would be updated (dry run)")
	default:
		title = SuccessStyle.Render("Clipboard content updated!")
	}

	lines := []string{
		title,
		LabelStyle.Render("Previous Content:") + BeforeStyle.Render(event.Before),
		LabelStyle.Render("New Content:") + AfterStyle.Render(event.After),
	}
	if len(event.Rules) > 0 {
		lines = append(lines, LabelStyle.Render("Rules:")+RuleTagStyle.Render(strings.Join(event.Rules, ", ")))
	}

	_, err := fmt.Fprintln(r.output, strings.Join(lines, "\n"))
	return err
}

// RenderRewrite prints the rewritten text
func (r *Renderer) RenderRewrite(result types.Rewrite) error {
	_, err := fmt.Fprintln(r.output, result.Output)
	return err
}

// RenderRules shows the rule table
func (r *Renderer) RenderRules(rules []types.RuleInfo) error {
	data := pterm.TableData{{"#", "Rule", "Platform", "Pattern", "Replacement"}}
	for i, rule := range rules {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			rule.Name,
			rule.Platform,
			rule.Pattern,
			rule.Replacement,
		})
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithWriter(r.output).
		WithData(data).
		Render()
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	pterm.Info.WithWriter(r.output).Println(msg)
	return nil
}

// RenderError renders an error
func (r *Renderer) RenderError(err error) error {
	pterm.Error.WithWriter(r.output).Println(err.Error())
	return nil
}

package types

import "time"

// Event records one handled clipboard change that produced a rewrite.
type Event struct {
	// Time the change was handled
	Time time.Time `json:"time" yaml:"time" toml:"time"`

	// Before is the clipboard text as read
	Before string `json:"before" yaml:"before" toml:"before"`

	// After is the rewritten text
	After string `json:"after" yaml:"after" toml:"after"`

	// Rules lists the rules that fired, in table order
	Rules []string `json:"rules" yaml:"rules" toml:"rules"`

	// DryRun is set when the rewrite was computed but not written back
	DryRun bool `json:"dryRun" yaml:"dryRun" toml:"dry_run"`

	// Error holds the write failure, if any
	Error string `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

// Written reports whether the rewritten text reached the clipboard
func (e Event) Written() bool {
	return !e.DryRun && e.Error == ""
}

// Rewrite is the result of a one-shot rewrite of supplied text.
type Rewrite struct {
	Input  string   `json:"input" yaml:"input" toml:"input"`
	Output string   `json:"output" yaml:"output" toml:"output"`
	Rules  []string `json:"rules" yaml:"rules" toml:"rules"`
}

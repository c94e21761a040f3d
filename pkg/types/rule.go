package types

// RuleInfo is the display form of a rewrite rule.
type RuleInfo struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Platform    string `json:"platform" yaml:"platform" toml:"platform"`
	Pattern     string `json:"pattern" yaml:"pattern" toml:"pattern"`
	Replacement string `json:"replacement" yaml:"replacement" toml:"replacement"`
	Example     string `json:"example" yaml:"example" toml:"example"`
	// Rewritten is Example after the full table ran over it
	Rewritten string `json:"rewritten" yaml:"rewritten" toml:"rewritten"`
}

package rewrite

import (
	"fmt"

	"github.com/arthur-debert/clipfix/pkg/errors"
)

// builtinRules is the fixed rule table. Order matters: each rule sees the
// output of the ones before it, so no replacement here may produce text that a
// later pattern matches.
var builtinRules = []Definition{
	{
		Name:        "x",
		Platform:    "X",
		Pattern:     `\b(http|https)://x\.com/([A-Za-z0-9_]{4,15})/status`,
		Replacement: `https://fixvx.com/${2}/status`,
		Example:     "https://x.com/someuser/status/12345",
	},
	{
		Name:        "twitter",
		Platform:    "Twitter",
		Pattern:     `\b(http|https)://twitter\.com/([A-Za-z0-9_]{4,15})/status`,
		Replacement: `https://vxtwitter.com/${2}/status`,
		Example:     "https://twitter.com/ab_cd/status/999",
	},
	{
		Name:        "tiktok",
		Platform:    "TikTok",
		Pattern:     `\b(http|https)://(www\.)tiktok\.com/@([A-Za-z0-9_.]{4,15})/video`,
		Replacement: `https://www.vxtiktok.com/@${3}/video`,
		Example:     "https://www.tiktok.com/@jane.doe/video/42",
	},
	{
		Name:        "tiktok-short",
		Platform:    "TikTok",
		Pattern:     `\b(http|https)://vm\.tiktok\.com/([A-Za-z0-9_.-]+)`,
		Replacement: `https://vm.vxtiktok.com/${2}`,
		Example:     "https://vm.tiktok.com/ZMabc123/",
	},
	{
		Name:        "pixiv",
		Platform:    "pixiv",
		Pattern:     `\b(http|https)://(www[.])?pixiv\.net/([a-z]{2}/)?artworks/([0-9]+)`,
		Replacement: `https://www.pixiv.net/en/artworks/${4}`,
		Example:     "https://pixiv.net/artworks/555",
	},
	{
		Name:        "bluesky",
		Platform:    "Bluesky",
		Pattern:     `\b(http|https)://bsky\.app/(.*)`,
		Replacement: `https://bskyx.app/${2}`,
		Example:     "https://bsky.app/profile/someone/post/abc",
	},
}

// Default is the built-in rule table.
var Default = MustCompileTable(builtinRules)

// Table is an ordered, read-only list of compiled rules.
type Table struct {
	rules []Rule
}

// CompileTable compiles definitions in order. The first failure aborts.
func CompileTable(defs []Definition) (*Table, error) {
	rules := make([]Rule, 0, len(defs))
	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if seen[def.Name] {
			return nil, errors.Newf(errors.ErrRuleInvalid, "duplicate rule name %q", def.Name)
		}
		seen[def.Name] = true

		rule, err := Compile(def)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return &Table{rules: rules}, nil
}

// MustCompileTable is like CompileTable but panics on error.
func MustCompileTable(defs []Definition) *Table {
	t, err := CompileTable(defs)
	if err != nil {
		panic(fmt.Sprintf("rewrite: invalid rule table: %v", err))
	}
	return t
}

// Len returns the number of rules
func (t *Table) Len() int { return len(t.rules) }

// Rules returns a copy of the rules in table order
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Definitions returns the source definitions in table order
func (t *Table) Definitions() []Definition {
	out := make([]Definition, len(t.rules))
	for i, r := range t.rules {
		out[i] = r.def
	}
	return out
}

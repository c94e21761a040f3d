package rewrite

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/clipfix/pkg/errors"
)

// RE2's \b only knows ASCII word characters. A pattern that starts with \b
// is compiled with this capture in its place so that a link glued to a word
// in any script does not match. The captured character is written back
// through ${1}.
const (
	wordBoundary   = `\b`
	unicodeNonWord = `(^|[^\p{L}\p{Nl}\p{M}\p{Nd}\p{Pc}])`
)

// Definition is the source form of a rule, before its pattern is compiled.
type Definition struct {
	// Name identifies the rule in logs and listings
	Name string
	// Platform is the human-readable service the rule targets
	Platform string
	// Pattern is an RE2 expression. Only the anchors written in it apply.
	// A leading \b is a Unicode word boundary and must be followed by a
	// word character.
	Pattern string
	// Replacement may reference capture groups as ${n}
	Replacement string
	// Example is a sample input the rule must rewrite
	Example string
}

// Rule is a compiled Definition. Rules are immutable once compiled.
type Rule struct {
	def         Definition
	re          *regexp.Regexp
	replacement string
}

// Compile builds a Rule from its definition.
func Compile(def Definition) (Rule, error) {
	if def.Name == "" {
		return Rule{}, errors.New(errors.ErrRuleInvalid, "rule has no name")
	}
	if def.Pattern == "" {
		return Rule{}, errors.Newf(errors.ErrRuleInvalid, "rule %q has an empty pattern", def.Name)
	}

	pattern, replacement := def.Pattern, def.Replacement
	if rest, ok := strings.CutPrefix(pattern, wordBoundary); ok {
		pattern = unicodeNonWord + rest
		replacement = "${1}" + shiftGroups(replacement)
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, errors.Wrapf(err, errors.ErrPatternCompile, "rule %q", def.Name)
	}
	return Rule{def: def, re: re, replacement: replacement}, nil
}

// shiftGroups renumbers the $n and ${n} references of a replacement
// template by one. Named references and $$ are left alone.
func shiftGroups(tmpl string) string {
	var b strings.Builder
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '$' || i+1 == len(tmpl) {
			b.WriteByte(tmpl[i])
			continue
		}

		switch next := tmpl[i+1]; {
		case next == '$':
			b.WriteString("$$")
			i++
		case next == '{':
			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				b.WriteByte('$')
				continue
			}
			writeRef(&b, tmpl[i+2:i+end], tmpl[i:i+end+1])
			i += end
		default:
			j := i + 1
			for j < len(tmpl) && isNameByte(tmpl[j]) {
				j++
			}
			writeRef(&b, tmpl[i+1:j], tmpl[i:j])
			i = j - 1
		}
	}
	return b.String()
}

func writeRef(b *strings.Builder, name, raw string) {
	if name == "" || strings.TrimLeft(name, "0123456789") != "" {
		b.WriteString(raw)
		return
	}
	n, err := strconv.Atoi(name)
	if err != nil {
		b.WriteString(raw)
		return
	}
	b.WriteString("${" + strconv.Itoa(n+1) + "}")
}

func isNameByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Name returns the rule name
func (r Rule) Name() string { return r.def.Name }

// Definition returns the source definition of the rule
func (r Rule) Definition() Definition { return r.def }

// Matches reports whether the rule would fire on text
func (r Rule) Matches(text string) bool {
	return r.re.MatchString(text)
}

// Apply replaces every non-overlapping match in text with the expanded
// replacement template.
func (r Rule) Apply(text string) string {
	return r.re.ReplaceAllString(text, r.replacement)
}

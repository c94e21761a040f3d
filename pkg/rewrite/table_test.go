// pkg/rewrite/table_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test rule compilation, table construction and authoring checks

package rewrite_test

import (
	"testing"

	"github.com/arthur-debert/clipfix/pkg/errors"
	"github.com/arthur-debert/clipfix/pkg/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable_Order(t *testing.T) {
	var names []string
	for _, def := range rewrite.Default.Definitions() {
		names = append(names, def.Name)
	}

	assert.Equal(t, []string{"x", "twitter", "tiktok", "tiktok-short", "pixiv", "bluesky"}, names)
	assert.Equal(t, 6, rewrite.Default.Len())
}

func TestDefaultTable_PassesCheck(t *testing.T) {
	assert.Empty(t, rewrite.Default.Check())
}

func TestDefaultTable_ExamplesRewrite(t *testing.T) {
	for _, rule := range rewrite.Default.Rules() {
		def := rule.Definition()
		t.Run(def.Name, func(t *testing.T) {
			assert.True(t, rule.Matches(def.Example))
			assert.NotEqual(t, def.Example, rule.Apply(def.Example))
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name string
		def  rewrite.Definition
		code errors.ErrorCode
	}{
		{
			name: "bad pattern",
			def:  rewrite.Definition{Name: "broken", Pattern: `(unclosed`},
			code: errors.ErrPatternCompile,
		},
		{
			name: "empty pattern",
			def:  rewrite.Definition{Name: "empty"},
			code: errors.ErrRuleInvalid,
		},
		{
			name: "missing name",
			def:  rewrite.Definition{Pattern: `x`},
			code: errors.ErrRuleInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rewrite.Compile(tt.def)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestCompileTable_RejectsDuplicates(t *testing.T) {
	_, err := rewrite.CompileTable([]rewrite.Definition{
		{Name: "a", Pattern: `a`},
		{Name: "a", Pattern: `b`},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleInvalid))
}

func TestMustCompileTable_Panics(t *testing.T) {
	assert.Panics(t, func() {
		rewrite.MustCompileTable([]rewrite.Definition{{Name: "bad", Pattern: `[`}})
	})
	assert.NotPanics(t, func() {
		rewrite.MustCompileTable([]rewrite.Definition{{Name: "ok", Pattern: `ok`}})
	})
}

func TestTable_RulesIsACopy(t *testing.T) {
	table := rewrite.MustCompileTable([]rewrite.Definition{
		{Name: "a", Pattern: `a`, Replacement: "b"},
	})

	rules := table.Rules()
	rules[0] = rewrite.Rule{}

	assert.Equal(t, "a", table.Rules()[0].Name())
}

func TestEngine_CustomTableRunsInOrder(t *testing.T) {
	table := rewrite.MustCompileTable([]rewrite.Definition{
		{Name: "first", Pattern: `cat`, Replacement: "dog"},
		{Name: "second", Pattern: `dog`, Replacement: "wolf"},
	})

	// The second rule sees the first rule's output.
	assert.Equal(t, "wolf wolf", rewrite.New(table).Transform("cat dog"))
}

func TestEngine_CaptureGroups(t *testing.T) {
	table := rewrite.MustCompileTable([]rewrite.Definition{
		{Name: "swap", Pattern: `(\w+)@(\w+)`, Replacement: "${2}@${1}"},
	})

	assert.Equal(t, "b@a and d@c", rewrite.New(table).Transform("a@b and c@d"))
}

func TestEngine_LeadingWordBoundaryIsUnicode(t *testing.T) {
	table := rewrite.MustCompileTable([]rewrite.Definition{
		{Name: "swap", Pattern: `\b(\w+)@(\w+)`, Replacement: "$2@${1} $$1 ${name}"},
	})
	rule := table.Rules()[0]

	assert.Equal(t, "b@a $1  éc@d", rule.Apply("a@b éc@d"))
	assert.True(t, rule.Matches("x a@b"))
	assert.False(t, rule.Matches("éa@b"))
	assert.Equal(t, `\b(\w+)@(\w+)`, rule.Definition().Pattern)
}

func TestCheck_ReportsProblems(t *testing.T) {
	table := rewrite.MustCompileTable([]rewrite.Definition{
		{Name: "feeds-next", Pattern: `foo`, Replacement: "bar", Example: "foo"},
		{Name: "next", Pattern: `bar`, Replacement: "baz", Example: "bar"},
		{Name: "wrong-example", Pattern: `qux`, Replacement: "quux", Example: "nope"},
		{Name: "no-example", Pattern: `zzz`, Replacement: "y"},
	})

	var got []string
	for _, p := range table.Check() {
		got = append(got, p.Rule)
	}

	assert.Equal(t, []string{"feeds-next", "wrong-example", "no-example"}, got)
}

func TestCheck_ReportsNonIdempotentRule(t *testing.T) {
	table := rewrite.MustCompileTable([]rewrite.Definition{
		{Name: "grows", Pattern: `a`, Replacement: "aa", Example: "a"},
	})

	problems := table.Check()
	require.Len(t, problems, 1)
	assert.Equal(t, "grows", problems[0].Rule)
	assert.Contains(t, problems[0].String(), "not idempotent")
}

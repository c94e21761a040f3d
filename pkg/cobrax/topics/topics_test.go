// pkg/cobrax/topics/topics_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test topic loading, lookup and the help command

package topics_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/clipfix/pkg/cobrax/topics"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/backends.txt":       {Data: []byte("Backends: system and file")},
		"help/rules.md":           {Data: []byte("# Rules\n\nThe rule table.")},
		"help/option-dry-run.txt": {Data: []byte("Dry run reports without writing")},
		"help/nested/polling.txt": {Data: []byte("Polling details")},
		"help/ignored.json":       {Data: []byte("{}")},
		"other/not-a-topic.txt":   {Data: []byte("outside")},
	}
}

func TestLoad(t *testing.T) {
	m, err := topics.Load(testFS(), "help", topics.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"backends", "option-dry-run", "polling", "rules"}, m.Names())

	topic, ok := m.Get("rules")
	require.True(t, ok)
	assert.Equal(t, ".md", topic.Format)
	assert.Equal(t, "# Rules\n\nThe rule table.", topic.Content)

	_, ok = m.Get("ignored")
	assert.False(t, ok)
}

func TestLoad_CustomExtensions(t *testing.T) {
	m, err := topics.Load(testFS(), "help", topics.Options{Extensions: []string{".json"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"ignored"}, m.Names())
}

func TestLoad_MissingDir(t *testing.T) {
	m, err := topics.Load(testFS(), "nope", topics.Options{})
	require.NoError(t, err)
	assert.Empty(t, m.Names())

	var buf bytes.Buffer
	require.NoError(t, m.WriteList(&buf, "app"))
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func TestGet_FlagSpellings(t *testing.T) {
	m, err := topics.Load(testFS(), "help", topics.Options{})
	require.NoError(t, err)

	for _, name := range []string{"--dry-run", "-dry-run", "dry-run", "option-dry-run"} {
		topic, ok := m.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-dry-run", topic.Name)
	}
}

func TestWriteList(t *testing.T) {
	m, err := topics.Load(testFS(), "help", topics.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.WriteList(&buf, "app"))

	out := buf.String()
	assert.Contains(t, out, "General topics:\n  backends\n  polling\n  rules\n")
	assert.Contains(t, out, "Option topics:\n  --dry-run\n")
	assert.Contains(t, out, "Use 'app help <topic>'")
}

func newRoot(t *testing.T, opts topics.Options) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	root := &cobra.Command{Use: "app", Short: "root command", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "sub", Short: "a subcommand", Run: func(*cobra.Command, []string) {}})
	root.PersistentFlags().Bool("dry-run", false, "")
	root.PersistentFlags().Bool("quiet", false, "")

	_, err := topics.Install(root, testFS(), "help", opts)
	require.NoError(t, err)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestInstall_HelpCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"topic", []string{"help", "backends"}, "Backends: system and file"},
		{"option topic", []string{"help", "--dry-run"}, "Dry run reports without writing"},
		{"option topic by name", []string{"help", "dry-run"}, "Dry run reports without writing"},
		{"flag without topic", []string{"--quiet", "help"}, "root command"},
		{"topic list", []string{"help", "topics"}, "General topics:"},
		{"command help", []string{"help", "sub"}, "a subcommand"},
		{"root help", []string{"help"}, "root command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, out := newRoot(t, topics.Options{})
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			assert.Contains(t, out.String(), tt.contains)
		})
	}
}

func TestInstall_GroupID(t *testing.T) {
	root, _ := newRoot(t, topics.Options{})
	root.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	_, err := topics.Install(root, testFS(), "help", topics.Options{GroupID: "misc"})
	require.NoError(t, err)
	root.InitDefaultHelpCmd()

	var found bool
	for _, c := range root.Commands() {
		if c.Name() == "help" {
			found = true
			assert.Equal(t, "misc", c.GroupID)
		}
	}
	assert.True(t, found)
}

func TestGlamourRenderer(t *testing.T) {
	r := &topics.GlamourRenderer{Style: "notty", Width: 40}

	assert.Equal(t, "plain *text*", r.Render("plain *text*", ".txt"))

	out := r.Render("# Heading\n\nSome **bold** words.", ".md")
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "bold")
	assert.NotEqual(t, "# Heading\n\nSome **bold** words.", out)
}

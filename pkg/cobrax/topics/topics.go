// Package topics adds help topics to a cobra command tree. Topics are plain
// text or markdown files read from an fs.FS, usually an embedded one, and are
// shown by "help <topic>" next to the regular command help.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// OptionPrefix marks topics that document a flag: "option-dry-run" is shown
// for "help --dry-run".
const OptionPrefix = "option-"

// Manager holds the topics of one command tree
type Manager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Topic is one help file
type Topic struct {
	Name    string
	Format  string // file extension, including the dot
	Content string
}

// Options configures a Manager
type Options struct {
	// Extensions lists the file extensions read as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer

	// GroupID places the help command in a command group
	GroupID string
}

// Load reads every topic file under dir in fsys. A missing dir yields an
// empty Manager.
func Load(fsys fs.FS, dir string, opts Options) (*Manager, error) {
	m := &Manager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	if _, err := fs.Stat(fsys, dir); err != nil {
		return m, nil
	}

	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !m.supported(path.Ext(p)) {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		ext := path.Ext(p)
		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{Name: name, Format: ext, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return m, nil
}

func (m *Manager) supported(ext string) bool {
	for _, e := range m.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Get finds a topic by name. Flag spellings ("--dry-run", "-dry-run") look
// up the matching option topic.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if topic, ok := m.topics[name]; ok {
		return topic, true
	}
	topic, ok := m.topics[OptionPrefix+name]
	return topic, ok
}

// flagTopic returns the option topic of the first set flag that has one
func (m *Manager) flagTopic(flags *pflag.FlagSet) *Topic {
	var found *Topic
	flags.Visit(func(f *pflag.Flag) {
		if found != nil {
			return
		}
		if topic, ok := m.topics[OptionPrefix+f.Name]; ok {
			found = topic
		}
	})
	return found
}

// Names returns the topic names, sorted
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render writes topic through the configured renderer
func (m *Manager) Render(w io.Writer, topic *Topic) error {
	_, err := io.WriteString(w, m.renderer.Render(topic.Content, topic.Format))
	return err
}

// WriteList prints the topic index for rootName
func (m *Manager) WriteList(w io.Writer, rootName string) error {
	names := m.Names()
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, "No help topics available.")
		return err
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, OptionPrefix) {
			options = append(options, strings.TrimPrefix(name, OptionPrefix))
		} else {
			general = append(general, name)
		}
	}

	var b strings.Builder
	b.WriteString("Available help topics:\n")
	if len(general) > 0 {
		b.WriteString("\nGeneral topics:\n")
		for _, name := range general {
			fmt.Fprintf(&b, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		b.WriteString("\nOption topics:\n")
		for _, name := range options {
			fmt.Fprintf(&b, "  --%s\n", name)
		}
	}
	fmt.Fprintf(&b, "\nUse '%s help <topic>' to read about a specific topic.\n", rootName)

	_, err := io.WriteString(w, b.String())
	return err
}

// Install loads the topics and replaces rootCmd's help command with one that
// also knows about them.
func Install(rootCmd *cobra.Command, fsys fs.FS, dir string, opts Options) (*Manager, error) {
	m, err := Load(fsys, dir, opts)
	if err != nil {
		return nil, err
	}

	name := rootCmd.Name()
	originalHelp := rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + name + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + name + ` help topics`,
		GroupID: opts.GroupID,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// "help --dry-run" parses the flag; show its topic if any
				if topic := m.flagTopic(cmd.Flags()); topic != nil {
					return m.Render(cmd.OutOrStdout(), topic)
				}
				originalHelp(rootCmd, args)
				return nil
			}
			if args[0] == "topics" {
				return m.WriteList(cmd.OutOrStdout(), name)
			}
			if topic, ok := m.Get(args[0]); ok {
				return m.Render(cmd.OutOrStdout(), topic)
			}

			target, _, err := rootCmd.Find(args)
			if err != nil || target == nil {
				return fmt.Errorf("unknown help topic %q", strings.Join(args, " "))
			}
			originalHelp(target, args)
			return nil
		},
	}

	rootCmd.SetHelpCommand(helpCmd)
	return m, nil
}

package clipfix

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/arthur-debert/clipfix/internal/version"
	"github.com/arthur-debert/clipfix/pkg/clipboard"
	"github.com/arthur-debert/clipfix/pkg/cobrax/topics"
	"github.com/arthur-debert/clipfix/pkg/config"
	"github.com/arthur-debert/clipfix/pkg/errors"
	"github.com/arthur-debert/clipfix/pkg/logging"
	"github.com/arthur-debert/clipfix/pkg/monitor"
	"github.com/arthur-debert/clipfix/pkg/rewrite"
	"github.com/arthur-debert/clipfix/pkg/types"
	"github.com/arthur-debert/clipfix/pkg/ui"
	"github.com/arthur-debert/clipfix/pkg/watcher"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app carries what the persistent pre-run resolves for every command
type app struct {
	table *rewrite.Table
	cfg   *config.Config
}

func (a *app) renderer(w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.cfg.Output)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, w)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(rewrite.Default)
}

func newRootCmd(table *rewrite.Table) *cobra.Command {
	initTemplateFormatting()

	a := &app{table: table}
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "clipfix",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Misc commands never touch the clipboard; a broken config must
			// not keep them from running.
			if cmd.GroupID == "misc" || cmd.Hidden {
				logging.SetupLogger(verbosity, false)
				return nil
			}

			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			a.cfg = cfg

			logging.SetupLogger(verbosity, cfg.LogFile)
			log.Debug().Str("command", cmd.Name()).Str("backend", cfg.Backend).Msg("Command started")
			return nil
		},
		// No subcommand means watch
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, a)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Global flags. Defaults mirror the embedded defaults.toml; only flags the
	// user sets override config and environment.
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringP("output", "o", "auto", MsgFlagOutput)
	flags.Bool("dry-run", false, MsgFlagDryRun)
	flags.String("backend", clipboard.BackendSystem, MsgFlagBackend)
	flags.String("file", "", MsgFlagFile)
	flags.Duration("poll-interval", watcher.DefaultPollInterval, MsgFlagPollInterval)
	flags.Duration("stats-interval", 0, MsgFlagStatsInterval)
	flags.Bool("no-log-file", false, MsgFlagNoLogFile)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	renderer := topics.NewGlamourRenderer()
	if !stdoutIsTerminal() {
		renderer.Style = "notty"
	}
	if _, err := topics.Install(rootCmd, helpTopics, "topics", topics.Options{
		Renderer: renderer,
		GroupID:  "misc",
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	rootCmd.AddCommand(newWatchCmd(a))
	rootCmd.AddCommand(newRewriteCmd(a))
	rootCmd.AddCommand(newRulesCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		Example: MsgWatchExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, a)
		},
	}
}

// runWatch runs the monitor until SIGINT or SIGTERM
func runWatch(cmd *cobra.Command, a *app) error {
	cfg := a.cfg
	logger := logging.GetLogger("cmd.watch")

	r, err := a.renderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	clip, err := clipboard.New(cfg.Backend, cfg.File)
	if err != nil {
		return fmt.Errorf(MsgErrClipboard, err)
	}

	var notifier watcher.Notifier
	switch cfg.Backend {
	case clipboard.BackendFile:
		notifier = watcher.NewFileWatcher(cfg.File)
	default:
		// Fail early on platforms without a clipboard tool; other read
		// errors are transient and left to the poller.
		if _, err := clip.Read(); errors.IsErrorCode(err, errors.ErrClipboardUnavailable) {
			return fmt.Errorf(MsgErrListen, err)
		}
		notifier = watcher.NewPoller(clip, cfg.PollInterval)
	}

	mon := monitor.New(clip, rewrite.New(a.table),
		monitor.WithDryRun(cfg.DryRun),
		monitor.WithLogger(logging.GetLogger("monitor").With().Str("backend", cfg.Backend).Logger()),
		monitor.WithReporter(monitor.ReporterFunc(func(event types.Event) {
			if err := r.RenderEvent(event); err != nil {
				logger.Warn().Err(err).Msg("Failed to render event")
			}
		})),
	)

	if err := r.RenderMessage(fmt.Sprintf(MsgBanner, version.Version)); err != nil {
		return fmt.Errorf(MsgErrRender, err)
	}
	if err := r.RenderMessage(MsgListening); err != nil {
		return fmt.Errorf(MsgErrRender, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("backend", cfg.Backend).
		Dur("pollInterval", cfg.PollInterval).
		Bool("dryRun", cfg.DryRun).
		Msg("Watching clipboard")

	if err := monitor.NewService(notifier, mon, cfg.StatsInterval).Run(ctx); err != nil {
		return fmt.Errorf(MsgErrListen, err)
	}
	return nil
}

func newRewriteCmd(a *app) *cobra.Command {
	var fromClipboard bool

	cmd := &cobra.Command{
		Use:     "rewrite [text...]",
		Short:   MsgRewriteShort,
		Long:    MsgRewriteLong,
		Example: MsgRewriteExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if fromClipboard {
				return rewriteClipboard(a, r)
			}

			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}

			res := rewrite.New(a.table).Rewrite(text)
			log.Debug().Strs("rules", res.Applied).Bool("changed", res.Changed()).Msg("Rewrote text")

			return r.RenderRewrite(types.Rewrite{
				Input:  res.Input,
				Output: res.Output,
				Rules:  res.Applied,
			})
		},
	}

	cmd.Flags().BoolVar(&fromClipboard, "clipboard", false, MsgFlagClipboard)
	return cmd
}

// inputText joins args, or reads stdin minus its final "\r\n" or "\n"
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf(MsgErrReadStdin, err)
	}
	text := string(data)
	if trimmed, ok := strings.CutSuffix(text, "\r\n"); ok {
		return trimmed, nil
	}
	return strings.TrimSuffix(text, "\n"), nil
}

// rewriteClipboard handles the clipboard once, the same way the watcher does
func rewriteClipboard(a *app, r ui.Renderer) error {
	clip, err := clipboard.New(a.cfg.Backend, a.cfg.File)
	if err != nil {
		return fmt.Errorf(MsgErrClipboard, err)
	}
	// Monitor.Handle treats read failures as "nothing to do"; here the user
	// asked for this read, so surface it.
	if _, err := clip.Read(); err != nil {
		return fmt.Errorf(MsgErrClipboard, err)
	}

	mon := monitor.New(clip, rewrite.New(a.table), monitor.WithDryRun(a.cfg.DryRun))
	event, changed := mon.Handle()
	if !changed {
		return r.RenderMessage(MsgNoRewrite)
	}

	if err := r.RenderEvent(event); err != nil {
		return fmt.Errorf(MsgErrRender, err)
	}
	if event.Error != "" {
		return errors.New(errors.ErrClipboardWrite, event.Error)
	}
	return nil
}

func newRulesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		Long:    MsgRulesLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderRules(ruleInfos(a.table))
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: MsgRulesCheckShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			problems := a.table.Check()
			if len(problems) == 0 {
				return r.RenderMessage(fmt.Sprintf(MsgRulesCheckOK, a.table.Len()))
			}
			for _, p := range problems {
				log.Warn().Str("rule", p.Rule).Msg(p.Message)
				if err := r.RenderError(errors.New(errors.ErrRuleInvalid, p.String())); err != nil {
					return fmt.Errorf(MsgErrRender, err)
				}
			}
			return fmt.Errorf(MsgRulesProblems, len(problems))
		},
	})

	return cmd
}

// ruleInfos describes table for display, running each example through the
// whole table
func ruleInfos(table *rewrite.Table) []types.RuleInfo {
	engine := rewrite.New(table)
	defs := table.Definitions()

	infos := make([]types.RuleInfo, 0, len(defs))
	for _, def := range defs {
		infos = append(infos, types.RuleInfo{
			Name:        def.Name,
			Platform:    def.Platform,
			Pattern:     def.Pattern,
			Replacement: def.Replacement,
			Example:     def.Example,
			Rewritten:   engine.Transform(def.Example),
		})
	}
	return infos
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

package clipfix

import (
	"embed"
	"strings"
)

// helpTopics holds the files shown by "clipfix help <topic>"
//
//go:embed topics
var helpTopics embed.FS

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Rewrite social media links on the clipboard"
	MsgWatchShort      = "Watch the clipboard and rewrite links"
	MsgRewriteShort    = "Rewrite text once and print the result"
	MsgRulesShort      = "List the rewrite rules"
	MsgRulesCheckShort = "Verify the rewrite rule table"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgBanner        = "clipfix %s"
	MsgListening     = "Listening for clipboard changes..."
	MsgNoRewrite     = "Nothing to rewrite."
	MsgRulesCheckOK  = "All %d rules passed."
	MsgVersionFormat = "clipfix %s (commit %s, built %s)\n"
	MsgRulesProblems = "%d rule problem(s) found"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrClipboard  = "failed to open clipboard: %w"
	MsgErrListen     = "couldn't listen for clipboard changes: %w"
	MsgErrReadStdin  = "failed to read stdin: %w"
	MsgErrRender     = "failed to render output: %w"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun        = "Report rewrites without writing the clipboard"
	MsgFlagOutput        = "Output format (auto, term, text, json, yaml, toml)"
	MsgFlagBackend       = "Clipboard backend (system, file)"
	MsgFlagFile          = "File used as the clipboard by the file backend"
	MsgFlagPollInterval  = "How often the system clipboard is polled"
	MsgFlagStatsInterval = "Log counters at this interval (0 disables)"
	MsgFlagNoLogFile     = "Do not write the log file"
	MsgFlagClipboard     = "Rewrite the current clipboard content instead of text"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/watch-example.txt
	msgWatchExampleRaw string
	MsgWatchExample    = strings.TrimRight(msgWatchExampleRaw, "\n")

	//go:embed msgs/rewrite-long.txt
	msgRewriteLongRaw string
	MsgRewriteLong    = strings.TrimSpace(msgRewriteLongRaw)

	//go:embed msgs/rewrite-example.txt
	msgRewriteExampleRaw string
	MsgRewriteExample    = strings.TrimRight(msgRewriteExampleRaw, "\n")

	//go:embed msgs/rules-long.txt
	msgRulesLongRaw string
	MsgRulesLong    = strings.TrimSpace(msgRulesLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)

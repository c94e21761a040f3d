package terminal

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	SuccessColor = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#4ADE80"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	LinkColor    = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
)

var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(18)

	BeforeStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Strikethrough(true)

	AfterStyle = lipgloss.NewStyle().
			Foreground(LinkColor)

	RuleTagStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)
)

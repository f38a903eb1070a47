package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Palette
	Accent    = lipgloss.Color("#00C8AA")
	AccentDim = lipgloss.Color("#00705F")
	Muted     = lipgloss.Color("#7a7a8c")
	Text      = lipgloss.Color("#e0e0e0")
	Danger    = lipgloss.Color("#FF4136")
	Warning   = lipgloss.Color("#FFD700")

	TitleStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	RowStyle = lipgloss.NewStyle().
			Foreground(Text).
			PaddingLeft(2)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(Accent).
				Bold(true).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(Accent).
				PaddingLeft(1)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			PaddingLeft(2)

	SearchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(AccentDim).
			Padding(0, 1)

	SearchActiveStyle = SearchBoxStyle.
				BorderForeground(Accent)

	FormStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Warning).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Width(10)

	FocusedLabelStyle = LabelStyle.
				Foreground(Warning).
				Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(AccentDim)
)

package theme

import "github.com/charmbracelet/lipgloss"

// ── Core colors ──────────────────────────────────────────

var (
	Title = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("15")).Padding(0, 2)

	Header  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	Label   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	Value   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	Dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	Warn    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	Footer  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// ── Borders ──────────────────────────────────────────────

var (
	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("245"))

	SummaryKey = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(16).
			Align(lipgloss.Right)

	SummaryVal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true)
)

// Interactive TUI for gathering the bootstrap choices. Uses
// bubbletea for arrow-key navigation and lipgloss for styling;
// free-form values (admin account, password) are collected later by
// the line prompts in internal/prompt.
package installer

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vantagepanel/bootstrap/internal/theme"
)

type question struct {
	title   string
	options []option
}

type option struct {
	label string
	desc  string
	value string
	warn  string // shown while this option is highlighted
}

func buildQuestions() []question {
	return []question{
		{
			title: "Release Channel",
			options: []option{
				{
					label: "Stable",
					desc:  "Tagged releases — recommended",
					value: "stable",
				},
				{
					label: "Beta",
					desc:  "Latest development builds",
					value: "beta",
					warn:  "Beta builds may break between updates",
				},
			},
		},
		{
			title: "Components",
			options: []option{
				{
					label: "Panel only",
					desc:  "Web panel without a local node agent",
					value: "panel",
				},
				{
					label: "Panel + Agent",
					desc:  "Web panel and the node agent on this host",
					value: "panel+agent",
				},
			},
		},
		{
			title: "Panel Port",
			options: []option{
				{
					label: "8888",
					desc:  "Default panel port",
					value: "8888",
				},
				{
					label: "8443",
					desc:  "Alternative HTTPS-style port",
					value: "8443",
				},
			},
		},
	}
}

type tuiPhase int

const (
	phaseQuestions tuiPhase = iota
	phaseSummary
	phaseConfirmed
	phaseCancelled
)

type tuiModel struct {
	questions []question
	current   int
	cursors   []int
	answers   []string
	phase     tuiPhase
	width     int
	height    int
}

// tuiResult holds the parsed answers from the TUI.
type tuiResult struct {
	channel    string
	components string
	panelPort  int
}

func newTuiModel() tuiModel {
	questions := buildQuestions()
	return tuiModel{
		questions: questions,
		cursors:   make([]int, len(questions)),
		answers:   make([]string, len(questions)),
	}
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.phase = phaseCancelled
			return m, tea.Quit

		case "q":
			if m.phase == phaseSummary {
				m.phase = phaseCancelled
				return m, tea.Quit
			}

		case "up", "k":
			if m.phase == phaseQuestions && m.cursors[m.current] > 0 {
				m.cursors[m.current]--
			}

		case "down", "j":
			if m.phase == phaseQuestions {
				maxIdx := len(m.questions[m.current].options) - 1
				if m.cursors[m.current] < maxIdx {
					m.cursors[m.current]++
				}
			}

		case "enter":
			return m.handleEnter()

		case "backspace", "left", "h":
			if m.phase == phaseQuestions && m.current > 0 {
				m.current--
			} else if m.phase == phaseSummary {
				m.phase = phaseQuestions
				m.current = len(m.questions) - 1
			}
		}
	}

	return m, nil
}

// handleEnter saves the current answer and advances to the next
// question or the summary.
func (m tuiModel) handleEnter() (tea.Model, tea.Cmd) {
	if m.phase == phaseSummary {
		m.phase = phaseConfirmed
		return m, tea.Quit
	}
	if m.phase != phaseQuestions {
		return m, nil
	}

	q := m.questions[m.current]
	m.answers[m.current] = q.options[m.cursors[m.current]].value

	if m.current < len(m.questions)-1 {
		m.current++
	} else {
		m.phase = phaseSummary
	}
	return m, nil
}

func (m tuiModel) View() string {
	// Wait for the terminal size before rendering anything.
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(" Vantage Panel Bootstrap "))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseQuestions:
		b.WriteString(m.renderQuestion())
	case phaseSummary:
		b.WriteString(m.renderSummary())
	}

	b.WriteString("\n")
	if m.phase == phaseQuestions {
		b.WriteString(theme.Footer.Render("↑↓ navigate • enter select • backspace back • ctrl+c quit"))
	} else if m.phase == phaseSummary {
		b.WriteString(theme.Footer.Render("enter confirm • backspace edit • q cancel"))
	}

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		b.String(),
	)
}

func (m tuiModel) renderQuestion() string {
	var b strings.Builder

	b.WriteString(theme.Dim.Render(fmt.Sprintf(
		"Question %d of %d", m.current+1, len(m.questions),
	)))
	b.WriteString("\n\n")

	q := m.questions[m.current]
	b.WriteString(theme.Header.Render(q.title))
	b.WriteString("\n\n")

	for i, opt := range q.options {
		cursor := "  "
		style := theme.Label
		if i == m.cursors[m.current] {
			cursor = "▸ "
			style = theme.Value
		}

		b.WriteString(style.Render(cursor + opt.label))
		b.WriteString(theme.Dim.Render(" — " + opt.desc))
		b.WriteString("\n")

		if i == m.cursors[m.current] && opt.warn != "" {
			b.WriteString("  " + theme.Warn.Render("⚠ "+opt.warn))
			b.WriteString("\n")
		}
	}

	if m.current > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Dim.Render("─────────────────────────────"))
		b.WriteString("\n")
		for i := 0; i < m.current; i++ {
			key := theme.Dim.Render(m.questions[i].title + ":")
			b.WriteString(fmt.Sprintf("%s %s\n", key, m.answers[i]))
		}
	}

	return b.String()
}

func (m tuiModel) renderSummary() string {
	var b strings.Builder

	b.WriteString(theme.Header.Render("Bootstrap Summary"))
	b.WriteString("\n\n")

	result := m.getResult()
	rows := []struct {
		key string
		val string
	}{
		{"Channel", result.channel},
		{"Components", result.components},
		{"Panel Port", strconv.Itoa(result.panelPort)},
	}

	var content strings.Builder
	for _, row := range rows {
		content.WriteString(theme.SummaryKey.Render(row.key + ":"))
		content.WriteString(theme.SummaryVal.Render(" " + row.val))
		content.WriteString("\n")
	}

	b.WriteString(theme.Box.Padding(1, 2).Render(content.String()))
	b.WriteString("\n\n")
	b.WriteString(theme.Value.Render("Press Enter to continue"))
	b.WriteString("\n")

	return b.String()
}

// getResult extracts the final choices from answered questions,
// falling back to the defaults for anything unanswered.
func (m tuiModel) getResult() tuiResult {
	result := tuiResult{
		channel:    "stable",
		components: "panel+agent",
		panelPort:  8888,
	}

	for i, q := range m.questions {
		if i >= len(m.answers) || m.answers[i] == "" {
			continue
		}
		switch q.title {
		case "Release Channel":
			result.channel = m.answers[i]
		case "Components":
			result.components = m.answers[i]
		case "Panel Port":
			if port, err := strconv.Atoi(m.answers[i]); err == nil {
				result.panelPort = port
			}
		}
	}

	return result
}

// runTUI launches the choice TUI and returns the selections, or nil
// if the user cancelled.
func runTUI() (*tuiResult, error) {
	p := tea.NewProgram(newTuiModel(), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("setup TUI: %w", err)
	}

	m := final.(tuiModel)
	if m.phase != phaseConfirmed {
		return nil, nil
	}
	r := m.getResult()
	return &r, nil
}

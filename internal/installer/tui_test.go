package installer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func drive(m tuiModel, keys ...string) tuiModel {
	var model tea.Model = m
	for _, k := range keys {
		model, _ = model.(tuiModel).Update(key(k))
	}
	return model.(tuiModel)
}

func TestTUIDefaults(t *testing.T) {
	r := newTuiModel().getResult()
	if r.channel != "stable" {
		t.Errorf("channel: got %q", r.channel)
	}
	if r.components != "panel+agent" {
		t.Errorf("components: got %q", r.components)
	}
	if r.panelPort != 8888 {
		t.Errorf("panelPort: got %d", r.panelPort)
	}
}

func TestTUIAnswerFlow(t *testing.T) {
	// beta, panel only, port 8443, confirm.
	m := drive(newTuiModel(),
		"down", "enter", // Release Channel: Beta
		"enter",         // Components: Panel only
		"down", "enter", // Panel Port: 8443
		"enter", // confirm summary
	)
	if m.phase != phaseConfirmed {
		t.Fatalf("phase: got %d, want confirmed", m.phase)
	}
	r := m.getResult()
	if r.channel != "beta" {
		t.Errorf("channel: got %q", r.channel)
	}
	if r.components != "panel" {
		t.Errorf("components: got %q", r.components)
	}
	if r.panelPort != 8443 {
		t.Errorf("panelPort: got %d", r.panelPort)
	}
}

func TestTUIBackspaceReturnsToPreviousQuestion(t *testing.T) {
	m := drive(newTuiModel(), "enter", "backspace")
	if m.current != 0 {
		t.Errorf("current: got %d, want 0", m.current)
	}
	if m.phase != phaseQuestions {
		t.Errorf("phase: got %d", m.phase)
	}
}

func TestTUICancel(t *testing.T) {
	m := drive(newTuiModel(), "enter", "ctrl+c")
	if m.phase != phaseCancelled {
		t.Errorf("phase: got %d, want cancelled", m.phase)
	}
}

func TestTUICursorBounds(t *testing.T) {
	m := drive(newTuiModel(), "up", "up")
	if m.cursors[0] != 0 {
		t.Errorf("cursor moved above first option: %d", m.cursors[0])
	}
	m = drive(m, "down", "down", "down", "down")
	if m.cursors[0] != len(m.questions[0].options)-1 {
		t.Errorf("cursor moved past last option: %d", m.cursors[0])
	}
}

package browser

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/control/pkg/control"
)

func newTree(t *testing.T) *control.Control {
	t.Helper()
	env := control.NewEnvironment(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	root := control.New(env, "Form", control.Options{"id": "form"}, nil)
	root.AddChild(control.New(env, "Input", control.Options{"id": "email"}, nil), "email")
	root.AddChild(control.New(env, "Button", control.Options{"id": "submit"}, nil))
	root.Render()
	return root
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModel_Navigation(t *testing.T) {
	m := New(newTree(t))
	if len(m.rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(m.rows))
	}
	m = press(m, "down", "j", "j")
	if m.Selected().ID() != "submit" {
		t.Errorf("selected = %s, want submit", m.Selected().ID())
	}
	m = press(m, "k")
	if m.Selected().ID() != "email" {
		t.Errorf("selected = %s, want email", m.Selected().ID())
	}
}

func TestModel_ToggleAndLog(t *testing.T) {
	m := New(newTree(t))
	m = press(m, "j", "d")

	if !m.Selected().IsDisabled() {
		t.Fatal("d should disable the selected control")
	}
	log := strings.Join(m.Log(), "\n")
	if !strings.Contains(log, "email:propertychange disabled") || !strings.Contains(log, "email:disable") {
		t.Errorf("log = %q", log)
	}
	if !strings.Contains(m.diff, "+ ") || !strings.Contains(m.diff, "disabled") {
		t.Error("diff pane should show the state change")
	}

	m = press(m, "d", "h")
	if m.Selected().IsDisabled() || !m.Selected().IsHidden() {
		t.Error("d then h should enable and hide")
	}
}

func TestModel_DisposeRefreshesRows(t *testing.T) {
	m := New(newTree(t))
	m = press(m, "j", "j", "x")
	if len(m.rows) != 2 {
		t.Errorf("rows = %d, want 2 after disposing a leaf", len(m.rows))
	}
	if m.Selected().ID() != "email" {
		t.Errorf("selection should clamp to the last row, got %s", m.Selected().ID())
	}

	m = press(m, "k", "x")
	if len(m.rows) != 0 || m.Selected() != nil {
		t.Error("disposing the root empties the tree")
	}
}

func TestModel_CopyAndBaseline(t *testing.T) {
	m := New(newTree(t))
	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}
	m = press(m, "y")
	if copied != "form" {
		t.Errorf("copied %q, want form", copied)
	}

	m = press(m, "d", "s")
	if m.diff != "" {
		t.Error("a new baseline clears the diff")
	}
}

func TestModel_PaneSwitchAndView(t *testing.T) {
	m := New(newTree(t))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	m = press(m, "tab")
	if m.pane != PaneLog {
		t.Errorf("pane = %d, want log", m.pane)
	}
	m = press(m, "d")
	if m.rows[0].comp.IsDisabled() {
		t.Error("action keys only apply in the tree pane")
	}
	if v := m.View(); !strings.Contains(v, "Controls") || !strings.Contains(v, "submit") {
		t.Errorf("view missing content:\n%s", v)
	}
}

// Package browser implements the interactive control tree browser.
package browser

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/control/pkg/control"
	"github.com/go-drift/control/pkg/errors"
	"github.com/go-drift/control/pkg/event"
	"github.com/go-drift/control/pkg/inspect"
)

// Pane represents which pane has keyboard focus.
type Pane int

const (
	PaneTree Pane = iota
	PaneLog
	PaneDiff
)

// watched lists the notifications shown in the event log.
var watched = []string{
	control.EventBeforeRender,
	control.EventAfterRender,
	control.EventBeforeDispose,
	control.EventAfterDispose,
	control.EventPropertyChange,
	control.EventEnable,
	control.EventDisable,
	control.EventShow,
	control.EventHide,
}

type row struct {
	comp  control.Component
	depth int
}

// eventLog is shared by every copy of the model.
type eventLog struct {
	lines []string
}

func (l *eventLog) add(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// HandleError implements errors.ErrorHandler, so reported errors land in
// the log instead of on the terminal.
func (l *eventLog) HandleError(err *errors.ControlError) {
	l.add("error: %v", err)
}

// HandlePanic implements errors.ErrorHandler.
func (l *eventLog) HandlePanic(err *errors.PanicError) {
	l.add("panic: %v", err)
}

// Model is the root Bubble Tea model of the browser.
type Model struct {
	root     *control.Control
	rows     []row
	selected int
	baseline *inspect.Snapshot
	diff     string
	log      *eventLog

	logView  viewport.Model
	diffView viewport.Model
	help     help.Model
	keys     keyMap

	pane   Pane
	width  int
	height int
	status string

	copyText func(string) error
}

// New creates a browser over root and subscribes to the notifications of
// every control in the tree. The first snapshot becomes the diff baseline.
func New(root *control.Control) Model {
	m := Model{
		root:     root,
		log:      &eventLog{},
		logView:  viewport.New(0, 0),
		diffView: viewport.New(0, 0),
		help:     help.New(),
		keys:     defaultKeys(),
		copyText: clipboard.WriteAll,
	}
	m.watch(root)
	m.baseline = inspect.Capture(root)
	m.refresh()
	m.status = fmt.Sprintf("%d controls", len(m.rows))
	return m
}

// ErrorHandler returns the handler that writes reported errors to the
// event log.
func (m Model) ErrorHandler() errors.ErrorHandler {
	return m.log
}

func (m Model) watch(c control.Component) {
	for _, typ := range watched {
		c.On(typ, func(ev *event.Event, args ...any) {
			line := fmt.Sprintf("%s:%s", c.ID(), ev.Type)
			if changes, ok := firstChanges(args); ok {
				line += " " + strings.Join(changes.Names(), ",")
			}
			m.log.add("%s", line)
		})
	}
	for _, child := range c.Base().Children() {
		m.watch(child)
	}
}

func firstChanges(args []any) (control.Changes, bool) {
	if len(args) == 0 {
		return nil, false
	}
	changes, ok := args[0].(control.Changes)
	return changes, ok
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Pane):
		m.pane = (m.pane + 1) % 3
		return m, nil
	}

	if m.pane != PaneTree {
		var cmd tea.Cmd
		if m.pane == PaneLog {
			m.logView, cmd = m.logView.Update(msg)
		} else {
			m.diffView, cmd = m.diffView.Update(msg)
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.rows)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Disable):
		m.act("toggle disabled", func(c control.Component) {
			if c.IsDisabled() {
				c.Enable()
			} else {
				c.Disable()
			}
		})
	case key.Matches(msg, m.keys.Hide):
		m.act("toggle hidden", func(c control.Component) { c.Toggle() })
	case key.Matches(msg, m.keys.Render):
		m.act("render", func(c control.Component) { c.Render() })
	case key.Matches(msg, m.keys.Dispose):
		m.act("dispose", func(c control.Component) { c.Dispose() })
	case key.Matches(msg, m.keys.Baseline):
		m.baseline = inspect.Capture(m.root)
		m.refresh()
		m.status = "baseline snapshot taken"
	case key.Matches(msg, m.keys.Copy):
		if c := m.Selected(); c != nil {
			if err := m.copyText(c.ID()); err != nil {
				m.status = fmt.Sprintf("copy failed: %v", err)
			} else {
				m.status = fmt.Sprintf("copied %s", c.ID())
			}
		}
	}
	return m, nil
}

// act runs fn on the selected control. Panics are reported to the event
// log and shown in the status line.
func (m *Model) act(name string, fn func(c control.Component)) {
	c := m.Selected()
	if c == nil {
		return
	}
	m.status = fmt.Sprintf("%s %s", name, c.ID())
	func() {
		defer errors.RecoverWithCallback("browser."+strings.ReplaceAll(name, " ", "-"), func(r any) {
			m.status = fmt.Sprintf("%s failed: %v", name, r)
		})
		fn(c)
	}()
	m.refresh()
}

// Selected returns the control under the cursor, or nil.
func (m Model) Selected() control.Component {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return nil
	}
	return m.rows[m.selected].comp
}

// Log returns the event log lines.
func (m Model) Log() []string {
	return m.log.lines
}

func (m *Model) refresh() {
	m.rows = m.rows[:0]
	if !m.root.IsDisposed() {
		m.flatten(m.root, 0)
	}
	if m.selected >= len(m.rows) {
		m.selected = max(len(m.rows)-1, 0)
	}

	m.logView.SetContent(strings.Join(m.log.lines, "\n"))
	m.logView.GotoBottom()

	m.diff = inspect.Capture(m.root).Diff(m.baseline)
	if m.diff == "" {
		m.diffView.SetContent(faintStyle.Render("No changes since baseline"))
	} else {
		m.diffView.SetContent(colorDiff(m.diff))
	}
}

func (m *Model) flatten(c control.Component, depth int) {
	m.rows = append(m.rows, row{comp: c, depth: depth})
	for _, child := range c.Base().Children() {
		m.flatten(child, depth+1)
	}
}

func (m *Model) resize() {
	body := max(m.height-3, 1)
	right := m.width - m.width*45/100 - 2
	m.logView.Width = max(right, 1)
	m.logView.Height = max(body/2-1, 1)
	m.diffView.Width = max(right, 1)
	m.diffView.Height = max(body-body/2-1, 1)
	m.help.Width = m.width
}

func colorDiff(d string) string {
	lines := strings.Split(strings.TrimSuffix(d, "\n"), "\n")
	for i, l := range lines {
		switch {
		case strings.HasPrefix(l, "+ "):
			lines[i] = diffAddStyle.Render(l)
		case strings.HasPrefix(l, "- "):
			lines[i] = diffDelStyle.Render(l)
		default:
			lines[i] = faintStyle.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

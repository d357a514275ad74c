package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := headerBarStyle.Width(m.width).Render(
		headerBrandStyle.Render("controlctl") + "  " + m.root.ID(),
	)
	footer := lipgloss.JoinVertical(lipgloss.Left,
		statusStyle.Render(m.status),
		m.help.View(m.keys),
	)

	bodyHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)
	leftWidth := m.width * 45 / 100
	rightWidth := m.width - leftWidth

	tree := m.renderPanel("Controls", m.renderTree(bodyHeight-1), PaneTree, leftWidth, bodyHeight)
	logPanel := m.renderPanel("Events", m.logView.View(), PaneLog, rightWidth, bodyHeight/2)
	diffPanel := m.renderPanel("Diff", m.diffView.View(), PaneDiff, rightWidth, bodyHeight-bodyHeight/2)

	right := lipgloss.JoinVertical(lipgloss.Left, logPanel, diffPanel)
	body := lipgloss.JoinHorizontal(lipgloss.Top, tree, right)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderPanel(title, content string, pane Pane, width, height int) string {
	style, titleStyle := panelStyle, panelTitleDimStyle
	if m.pane == pane {
		style, titleStyle = panelActiveStyle, panelTitleStyle
	}
	return style.Width(width).Height(height).Render(
		titleStyle.Render(title) + "\n" + content,
	)
}

func (m Model) renderTree(height int) string {
	if len(m.rows) == 0 {
		return faintStyle.Render("(disposed)")
	}
	start := 0
	if m.selected >= height {
		start = m.selected - height + 1
	}
	var sb strings.Builder
	for i := start; i < len(m.rows) && i < start+height; i++ {
		r := m.rows[i]
		c := r.comp.Base()
		line := fmt.Sprintf("%s%s %s", strings.Repeat("  ", r.depth), c.Type(), c.ID())
		if name := c.ChildName(); name != "" {
			line += fmt.Sprintf(" %q", name)
		}
		style := rowStyle
		switch {
		case i == m.selected:
			style = rowSelectedStyle
		case c.IsDisabled() || c.IsHidden():
			style = rowDisabledStyle
		}
		sb.WriteString(style.Render(line))
		if states := c.States(); len(states) > 0 {
			sb.WriteString(" " + stateTagStyle.Render("["+strings.Join(states, " ")+"]"))
		}
		sb.WriteString(" " + phaseTagStyle.Render(c.Phase().String()))
		sb.WriteByte('\n')
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

package browser

import "github.com/charmbracelet/lipgloss"

// Palette. No ad-hoc color literals elsewhere.
var (
	colorBgSurface = lipgloss.Color("#1c2128")

	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	colorBlue   = lipgloss.Color("#58a6ff")
	colorGreen  = lipgloss.Color("#3fb950")
	colorRed    = lipgloss.Color("#f85149")
	colorYellow = lipgloss.Color("#d29922")

	colorDivider   = lipgloss.Color("#30363d")
	colorHighlight = lipgloss.Color("#1f6feb")
)

// Header and footer bars
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Padding(0, 1)
)

// Panel chrome
var (
	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorDivider)

	panelActiveStyle = panelStyle.
				BorderForeground(colorBlue)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	panelTitleDimStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted).
				Bold(true)
)

// Tree rows
var (
	rowStyle = lipgloss.NewStyle().
			Foreground(colorText)

	rowSelectedStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorHighlight).
				Bold(true)

	rowDisabledStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted)

	stateTagStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	phaseTagStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Diff lines
var (
	diffAddStyle = lipgloss.NewStyle().Foreground(colorGreen)
	diffDelStyle = lipgloss.NewStyle().Foreground(colorRed)
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

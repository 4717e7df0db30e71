package tui

import "github.com/charmbracelet/lipgloss"

// Rosé Pine, dawn for light terminals and main for dark ones.
var (
	colorText    = lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#9893a5", Dark: "#6e6a86"}
	colorFoam    = lipgloss.AdaptiveColor{Light: "#56949f", Dark: "#9ccfd8"}
	colorGold    = lipgloss.AdaptiveColor{Light: "#ea9d34", Dark: "#f6c177"}
	colorLove    = lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"}
	colorIris    = lipgloss.AdaptiveColor{Light: "#907aa9", Dark: "#c4a7e7"}
	colorSurface = lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"}
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorIris)
	promptStyle   = lipgloss.NewStyle().Foreground(colorText)
	currentStyle  = lipgloss.NewStyle().Foreground(colorFoam)
	previousStyle = lipgloss.NewStyle().Foreground(colorMuted)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText).Background(colorSurface)
	readyStyle    = lipgloss.NewStyle().Foreground(colorFoam)
	pendingStyle  = lipgloss.NewStyle().Foreground(colorGold)
	errorStyle    = lipgloss.NewStyle().Foreground(colorLove)
	helpStyle     = lipgloss.NewStyle().Italic(true).Foreground(colorMuted)
	busyStyle     = lipgloss.NewStyle().Foreground(colorGold)
	messageStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorIris).Padding(0, 1)
)

package charts

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/K25anjali/fossil-energy-graph/internal/energy"
	"github.com/K25anjali/fossil-energy-graph/internal/palette"
	"github.com/K25anjali/fossil-energy-graph/internal/series"
)

// AxisColor is the color used for chart axes.
var AxisColor = lipgloss.Color("#CCBB44") // Olive/Yellow - high visibility

// LabelColor is the color used for chart labels.
var LabelColor = lipgloss.Color("#66CCEE") // Cyan - good contrast

// ErrorColor frames charts that failed to build.
var ErrorColor = lipgloss.Color("#EE6677")

// productionColor keeps the black production stroke readable on dark terminals.
var productionColor = lipgloss.AdaptiveColor{Light: palette.ProductionColor, Dark: "#BBBBBB"}

// ChannelColor returns the terminal color of a chart channel.
func ChannelColor(ch series.Channel) lipgloss.TerminalColor {
	if ch.SubSeries == energy.Production {
		return productionColor
	}
	return lipgloss.Color(ch.Color)
}

// ChannelStyle returns a lipgloss style with the foreground color of ch.
func ChannelStyle(ch series.Channel) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ChannelColor(ch))
}

// EntryStyle colors a legend or tooltip row by its palette color.
func EntryStyle(color string) lipgloss.Style {
	if color == palette.ProductionColor {
		return lipgloss.NewStyle().Foreground(productionColor)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

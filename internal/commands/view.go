package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/K25anjali/fossil-energy-graph/internal/charts"
)

func (m TUIModel) View() string {
	// Show shortcuts overlay if active
	if m.showShortcutsOverlay {
		overlay := renderShortcutsOverlay()
		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			overlay,
		)
	}

	var s strings.Builder

	// Status bar
	s.WriteString(m.renderStatusBar())
	s.WriteString("\n")

	// Title
	s.WriteString(lipgloss.NewStyle().Bold(true).Width(m.width).Align(lipgloss.Center).Render(charts.PageTitle))
	s.WriteString("\n")

	// Charts, legend and panes
	s.WriteString(m.renderBody())
	s.WriteString("\n")

	if m.focusedPane == PaneYearInput {
		s.WriteString(m.renderYearInput())
		s.WriteString("\n")
	}

	// Help bar
	s.WriteString(m.renderHelpBar())

	return s.String()
}

func (m TUIModel) renderStatusBar() string {
	var parts []string
	switch {
	case m.state == StateLoading:
		parts = append(parts, "Loading")
	case m.session.Active:
		parts = append(parts, fmt.Sprintf("Hover: %d", m.session.Year), "Chart: "+m.session.Source.String())
	default:
		parts = append(parts, "Hover a chart or press h/l")
	}
	if m.narrow {
		parts = append(parts, "narrow")
	}
	if m.loadDuration != 0 {
		parts = append(parts, "Loaded in "+formatDuration(m.loadDuration))
	}

	statusStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Width(m.width).
		Padding(0, 1)

	status := strings.Join(parts, " | ")
	if m.warning != "" {
		status += " | " + WarningStyle.Render(m.warning)
	}
	return statusStyle.Render(status)
}

func (m TUIModel) renderBody() string {
	switch m.state {
	case StateLoading:
		return m.renderLoadingState()
	case StateError:
		return m.renderErrorState()
	}

	cfg := m.builder.Config()
	legend := charts.NewTerminal(cfg, m.width, m.narrow).Legend(cfg.Palette)
	body := lipgloss.JoinVertical(lipgloss.Left, m.gridContent, "", legend)
	if m.focusedPane == PaneTable {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))
		title := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s frames (%d/%d)", strings.ToUpper(m.session.Source.String()), m.table.VisibleRows(), m.table.Rows()))
		pane := []string{title, m.table.Table()}
		if m.table.Filtering() {
			pane = append(pane, m.table.FilterView())
		}
		body = lipgloss.JoinVertical(lipgloss.Left, body, tableStyle.Render(lipgloss.JoinVertical(lipgloss.Left, pane...)))
	}
	return body
}

func (m TUIModel) renderLoadingState() string {
	loadingStyle := lipgloss.NewStyle().Padding(2, 4)
	return loadingStyle.Render(fmt.Sprintf("%s Loading dataset...", m.spinner.View()))
}

func (m TUIModel) renderErrorState() string {
	errorStyle := lipgloss.NewStyle().Padding(1, 2)
	return errorStyle.Render(ErrorStyle.Render("Error: ") + m.err.Error() + "\n\nr: retry | q: quit")
}

func (m TUIModel) renderYearInput() string {
	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("205")).
		Padding(0, 1)
	return inputStyle.Render(m.yearInput.View())
}

func (m TUIModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Width(m.width).
		Padding(0, 1)

	var helpText string
	switch m.focusedPane {
	case PaneYearInput:
		helpText = "enter: jump | esc: cancel"
	case PaneTable:
		helpText = "j/k: rows | /: filter | t/esc: close table | ?: shortcuts | q: quit"
		if m.table.Filtering() {
			helpText = "enter/esc: done filtering"
		}
	default:
		helpText = "h/l: year | /: jump | t: table | esc: hide | ?: shortcuts | q: quit"
	}

	return helpStyle.Render(helpText)
}

// formatDuration formats a duration with appropriate precision.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func renderShortcutsOverlay() string {
	accentColor := lipgloss.Color("205")

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor).
		MarginBottom(1)

	categoryStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("252"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	var content strings.Builder

	content.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	content.WriteString("\n")

	sections := []struct {
		title     string
		shortcuts []struct{ key, desc string }
	}{
		{"Global", []struct{ key, desc string }{
			{"q", "Quit"},
			{"Ctrl+C", "Force quit"},
			{"r", "Reload dataset"},
		}},
		{"Tooltip", []struct{ key, desc string }{
			{"mouse", "Hover any chart to show every tooltip"},
			{"click", "Click outside the charts to hide them"},
			{"h/l", "Previous/next year"},
			{"H/L", "Five years back/forward"},
			{"Tab", "Next chart"},
			{"/", "Jump to a year"},
			{"Esc", "Hide tooltips"},
		}},
		{"Data", []struct{ key, desc string }{
			{"t", "Toggle the frames table"},
			{"j/k", "Navigate table rows"},
			{"/", "Filter the table by year or regime"},
		}},
	}
	for _, section := range sections {
		content.WriteString(categoryStyle.Render(section.title))
		content.WriteString("\n")
		for _, s := range section.shortcuts {
			content.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-8s", s.key)), descStyle.Render(s.desc)))
		}
	}

	content.WriteString("\n")
	content.WriteString(descStyle.Render("Press any key to close"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(1, 2)

	return boxStyle.Render(content.String())
}

package commands

import (
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/K25anjali/fossil-energy-graph/internal/tables"
	"github.com/K25anjali/fossil-energy-graph/internal/viewport"
)

func (m TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.observer != nil {
			m.observer.Update(msg.Width)
			m.narrow = m.observer.Narrow()
		} else {
			m.narrow = msg.Width < viewport.DefaultNarrowWidth
		}
		return m.relayout(), nil

	case narrowMsg:
		if m.observer == nil {
			return m, nil
		}
		m.narrow = m.observer.Narrow()
		return m.relayout(), nil

	case datasetLoadedMsg:
		return m.applyDataset(msg), nil

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.focusedPane == PaneYearInput {
		var cmd tea.Cmd
		m.yearInput, cmd = m.yearInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleMouseMsg feeds pointer events to the shared session: moving over
// any chart activates every tooltip, pressing outside all charts hides them.
func (m TUIModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.state != StateReady {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		return m.setSession(m.session.PointerMove(msg.X, msg.Y)), nil
	case tea.MouseActionPress:
		return m.setSession(m.session.PointerDown(msg.X, msg.Y)), nil
	}
	return m, nil
}

func (m TUIModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Handle shortcuts overlay - dismiss on any key except quit keys
	if m.showShortcutsOverlay {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		m.showShortcutsOverlay = false
		return m, nil
	}

	switch m.state {
	case StateLoading:
		// Only allow quit during loading
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	case StateError:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "r":
			return m.handleReloadKey()
		}
		return m, nil
	}

	if m.focusedPane == PaneYearInput {
		return m.handleYearInputKey(msg)
	}
	return m.handleNormalModeKey(msg)
}

func (m TUIModel) handleNormalModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.warning = ""
	if m.focusedPane == PaneTable && (m.table.Filtering() || msg.String() == "/") {
		return m.updateTable(msg)
	}
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "h", "left":
		return m.setSession(m.session.Step(-1)), nil
	case "l", "right":
		return m.setSession(m.session.Step(1)), nil
	case "H", "shift+left":
		return m.setSession(m.session.Step(-5)), nil
	case "L", "shift+right":
		return m.setSession(m.session.Step(5)), nil
	case "tab":
		return m.handleTabKey()
	case "/":
		return m.enterYearInput()
	case "t":
		return m.handleTableKey()
	case "r":
		return m.handleReloadKey()
	case "esc":
		return m.handleEscapeKey()
	case "?":
		m.showShortcutsOverlay = true
		return m, nil
	}

	if m.focusedPane == PaneTable {
		return m.updateTable(msg)
	}
	return m, nil
}

// updateTable hands msg to the frames table.
func (m TUIModel) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	updated, cmd := m.table.Update(msg)
	if t, ok := updated.(tables.Model); ok {
		m.table = t
	}
	return m, cmd
}

// handleTabKey moves the hovered chart to the next source.
func (m TUIModel) handleTabKey() (tea.Model, tea.Cmd) {
	if len(m.charts) == 0 {
		return m, nil
	}
	s := m.session
	next := 0
	for i, c := range m.charts {
		if c.Source == s.Source {
			next = (i + 1) % len(m.charts)
			break
		}
	}
	s.Source = m.charts[next].Source
	if !s.Active {
		s = s.Jump(s.Year)
	}
	return m.setSession(s), nil
}

func (m TUIModel) enterYearInput() (tea.Model, tea.Cmd) {
	m.focusedPane = PaneYearInput
	m.yearInput.SetValue("")
	cmd := m.yearInput.Focus()
	return m, cmd
}

func (m TUIModel) handleYearInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focusedPane = PaneCharts
		m.yearInput.Blur()
		return m, nil
	case "enter":
		m.focusedPane = PaneCharts
		m.yearInput.Blur()
		year, err := strconv.Atoi(m.yearInput.Value())
		if err != nil {
			m.warning = "not a year: " + m.yearInput.Value()
			return m, nil
		}
		return m.setSession(m.session.Jump(year)), nil
	}

	var cmd tea.Cmd
	m.yearInput, cmd = m.yearInput.Update(msg)
	return m, cmd
}

// handleTableKey toggles the frames table of the hovered source.
func (m TUIModel) handleTableKey() (tea.Model, tea.Cmd) {
	if m.focusedPane == PaneTable {
		m.focusedPane = PaneCharts
		return m, nil
	}
	m.focusedPane = PaneTable
	m.table = m.tableFor(m.session.Source)
	return m, nil
}

func (m TUIModel) handleReloadKey() (tea.Model, tea.Cmd) {
	m.state = StateLoading
	return m, tea.Batch(m.spinner.Tick, m.loadDataset())
}

// handleEscapeKey closes the table, then hides the tooltips.
func (m TUIModel) handleEscapeKey() (tea.Model, tea.Cmd) {
	if m.focusedPane == PaneTable {
		m.focusedPane = PaneCharts
		return m, nil
	}
	return m.setSession(m.session.Deactivate()), nil
}

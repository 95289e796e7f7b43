package tables

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/evertras/bubble-table/table"

	"github.com/K25anjali/fossil-energy-graph/internal/series"
)

const (
	columnKeyYear       = "year"
	columnKeyRegime     = "regime"
	columnKeyProduction = "production"
)

// blank marks a value that is not drawn in a regime.
const blank = "-"

type Model struct {
	table           table.Model
	filterTextInput textinput.Model
	years           []int
}

// Frames returns a filterable table of every frame of c.
func Frames(c series.Chart) Model {
	return framesModel(c)
}

func cell(v *float64) string {
	if v == nil {
		return blank
	}
	return series.FormatValue(*v)
}

func columnKey(prefix string, ch series.Channel) string {
	return prefix + "_" + ch.SubSeries.String()
}

func framesModel(c series.Chart) Model {
	rows := make([]table.Row, 0, len(c.Frames))
	years := make([]int, 0, len(c.Frames))
	for _, f := range c.Frames {
		data := table.RowData{
			columnKeyYear:       strconv.Itoa(f.Year),
			columnKeyRegime:     f.Regime.String(),
			columnKeyProduction: cell(f.Line),
		}
		for i, ch := range c.Stacked {
			data[columnKey("area", ch)] = cell(f.Areas[i])
			bar := blank
			if f.Projected() {
				bar = series.FormatValue(f.Bars[i])
			}
			data[columnKey("bar", ch)] = bar
		}
		rows = append(rows, table.NewRow(data))
		years = append(years, f.Year)
	}

	columns := []table.Column{
		table.NewColumn(columnKeyYear, "Year", 6).WithFiltered(true),
		table.NewColumn(columnKeyRegime, "Regime", 12).WithFiltered(true),
		table.NewColumn(columnKeyProduction, c.Line.Label, max(len(c.Line.Label)+1, 8)),
	}
	for _, prefix := range []string{"area", "bar"} {
		for _, ch := range c.Stacked {
			title := ch.SubSeries.Title()
			if prefix == "bar" {
				title += " (bar)"
			}
			columns = append(columns, table.NewColumn(columnKey(prefix, ch), title, max(len(title)+1, 8)))
		}
	}

	return Model{
		table: table.
			New(columns).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(true).
			WithPageSize(12).
			WithRows(rows),
		filterTextInput: textinput.New(),
		years:           years,
	}
}

// WithYear highlights the row of year when present.
func (m Model) WithYear(year int) Model {
	for i, y := range m.years {
		if y == year {
			m.table = m.table.WithHighlightedRow(i)
			break
		}
	}
	return m
}

// Rows returns the number of frames in the table.
func (m Model) Rows() int {
	return len(m.years)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			cmds = append(cmds, tea.Quit)

			return m, tea.Batch(cmds...)
		}
		// event to filter
		if m.filterTextInput.Focused() {
			if msg.String() == "enter" || msg.String() == "esc" {
				m.filterTextInput.Blur()
			} else {
				m.filterTextInput, _ = m.filterTextInput.Update(msg)
			}
			m.table = m.table.WithFilterInput(m.filterTextInput)

			return m, tea.Batch(cmds...)
		}

		switch msg.String() {
		case "/":
			m.filterTextInput.Focus()
		case "q":
			cmds = append(cmds, tea.Quit)
			return m, tea.Batch(cmds...)
		default:
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// VisibleRows returns the number of frames that pass the filter.
func (m Model) VisibleRows() int {
	return len(m.table.GetVisibleRows())
}

// Filtering reports whether the filter input has focus.
func (m Model) Filtering() bool {
	return m.filterTextInput.Focused()
}

// FilterView renders the filter input.
func (m Model) FilterView() string {
	return m.filterTextInput.View()
}

// Table renders the table without the key help line.
func (m Model) Table() string {
	return m.table.View()
}

func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	body.WriteString("\nPress / + year or regime to filter, and q or ctrl+c to quit")

	return body.String()
}

package charts

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/K25anjali/fossil-energy-graph/internal/energy"
	"github.com/K25anjali/fossil-energy-graph/internal/interaction"
	"github.com/K25anjali/fossil-energy-graph/internal/palette"
	"github.com/K25anjali/fossil-energy-graph/internal/series"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(AxisColor)

	errorPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Foreground(ErrorColor)

	titleStyle = lipgloss.NewStyle().Bold(true)

	faintStyle = lipgloss.NewStyle().Faint(true)

	markerStyle = lipgloss.NewStyle().Foreground(LabelColor).Bold(true)
)

// tooltipRows is the space reserved under each chart for the tooltip, so
// that showing it never moves the charts.
const tooltipRows = 1 + energy.NumSubSeries

// rows above the plot inside a panel: title and y-axis caption.
const headerRows = 2

// Terminal lays out the small multiples for a terminal of a given width.
type Terminal struct {
	cfg    series.Config
	width  int
	narrow bool
}

// NewTerminal returns a terminal renderer. Narrow terminals stack the
// charts vertically.
func NewTerminal(cfg series.Config, width int, narrow bool) *Terminal {
	return &Terminal{cfg: cfg, width: width, narrow: narrow}
}

// Backend implements Renderer.
func (t *Terminal) Backend() string {
	return BackendTerminal
}

// PanelWidth returns the outer width of one chart panel.
func (t *Terminal) PanelWidth() int {
	w := t.width
	if !t.narrow {
		w = (t.width - PanelGap*(energy.NumSources-1)) / energy.NumSources
	}
	return max(w, MinPanelWidth)
}

// innerSize returns the drawable size inside a panel border.
func (t *Terminal) innerSize() (width, plotHeight int) {
	width = t.PanelWidth() - 2
	plotHeight = max(MinChartHeight, width/ChartHeightRatio)
	return width, plotHeight
}

// container returns the regions of a panel drawn at (x, y).
func (t *Terminal) container(src energy.Source, x, y, width, height int) interaction.Container {
	inner, plotHeight := t.innerSize()
	// The plot starts after the border, the y labels and the axis line.
	gutter := 1 + YLabelWidth + 1
	return interaction.Container{
		Source: src,
		Bounds: interaction.Rect{X: x, Y: y, Width: width, Height: height},
		Plot: interaction.Rect{
			X:      x + gutter,
			Y:      y + 1 + headerRows,
			Width:  max(inner-gutter+1, 1),
			Height: plotHeight,
		},
	}
}

// Panel draws one chart. tip is shown when non-nil; marker is the panel
// column of the hovered year, or negative for none.
func (t *Terminal) Panel(c series.Chart, tip *series.Tooltip, marker int) string {
	inner, plotHeight := t.innerSize()
	if c.Err != nil {
		msg := fmt.Sprintf("%s: %v", strings.ToUpper(c.Source.String()), c.Err)
		return errorPanelStyle.Width(inner).Render(msg)
	}

	caption := ""
	if c.Primary {
		caption = t.cfg.YAxisLabel
	}

	parts := []string{
		titleStyle.Width(inner).Align(lipgloss.Center).Render(strings.ToUpper(c.Source.String())),
		faintStyle.MaxWidth(inner).Render(caption),
		Timeseries(t.cfg, c, inner, plotHeight),
		markerRow(marker, inner),
	}
	if bars := Barchart(t.cfg, c, inner, BarHeight); bars != "" {
		if c.Primary && t.cfg.ReferenceLabel != "" {
			parts = append(parts, faintStyle.MaxWidth(inner).Render(fmt.Sprintf("%d ▸ %s", t.cfg.CutoffYear, t.cfg.ReferenceLabel)))
		} else {
			parts = append(parts, "")
		}
		parts = append(parts, bars)
	}
	parts = append(parts, tooltipBox(tip, inner))

	return panelStyle.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func markerRow(col, width int) string {
	if col < 0 || col >= width {
		return ""
	}
	return strings.Repeat(" ", col) + markerStyle.Render("▲")
}

// tooltipBox renders tip into a fixed number of rows.
func tooltipBox(tip *series.Tooltip, width int) string {
	rows := make([]string, tooltipRows)
	if tip != nil {
		rows[0] = titleStyle.Render(tip.Header())
		for i, e := range tip.Entries {
			if i+1 >= tooltipRows {
				break
			}
			rows[i+1] = EntryStyle(e.Color).Render(e.String())
		}
	}
	for i := range rows {
		rows[i] = lipgloss.NewStyle().MaxWidth(width).Render(rows[i])
	}
	return strings.Join(rows, "\n")
}

// Grid lays out the charts and returns the view with the container of
// every chart, relative to the top-left corner of the view.
func (t *Terminal) Grid(cs []series.Chart, sess interaction.Session, tips map[energy.Source]series.Tooltip) (string, []interaction.Container) {
	panels := make([]string, 0, len(cs))
	containers := make([]interaction.Container, 0, len(cs))
	x, y := 0, 0
	for _, c := range cs {
		// The container only depends on the position and size, so lay it out
		// first to know where the hover marker goes.
		slot := t.container(c.Source, x, y, t.PanelWidth(), 0)
		marker := -1
		var tip *series.Tooltip
		if sess.Active && c.Err == nil {
			marker = sess.ColumnOf(slot, sess.Year) - x - 1
			if tt, ok := tips[c.Source]; ok {
				tip = &tt
			}
		}

		panel := t.Panel(c, tip, marker)
		w, h := lipgloss.Width(panel), lipgloss.Height(panel)
		containers = append(containers, t.container(c.Source, x, y, w, h))
		panels = append(panels, panel)

		if t.narrow {
			y += h
		} else {
			x += w + PanelGap
		}
	}

	if t.narrow {
		return lipgloss.JoinVertical(lipgloss.Left, panels...), containers
	}
	gap := strings.Repeat(" ", PanelGap)
	joined := make([]string, 0, 2*len(panels))
	for i, p := range panels {
		if i > 0 {
			joined = append(joined, gap)
		}
		joined = append(joined, p)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joined...), containers
}

// Legend renders the palette legend, one group per line when narrow.
func (t *Terminal) Legend(p palette.Palette) string {
	groups := make([]string, 0, 2)
	for _, g := range p.Legend() {
		entries := []string{titleStyle.Render(g.Title)}
		for _, e := range g.Entries {
			swatch := "█"
			if e.Dashed {
				swatch = "╌"
			}
			entries = append(entries, EntryStyle(e.Color).Render(swatch+" "+e.Label))
		}
		if t.narrow {
			groups = append(groups, strings.Join(entries, "  "))
		} else {
			groups = append(groups, lipgloss.JoinVertical(lipgloss.Left, entries...))
		}
	}
	if t.narrow {
		return lipgloss.JoinVertical(lipgloss.Left, groups...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, groups[0], "   ", groups[1])
}

// Render implements Renderer: the inactive grid followed by the legend.
func (t *Terminal) Render(w io.Writer, cs []series.Chart) error {
	sess := interaction.NewSession(t.cfg.Ticks.Min, t.cfg.Ticks.Max)
	grid, _ := t.Grid(cs, sess, nil)
	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, grid, "", t.Legend(t.cfg.Palette)))
	return err
}

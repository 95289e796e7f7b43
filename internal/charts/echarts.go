package charts

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/K25anjali/fossil-energy-graph/internal/series"
)

// PageTitle heads the HTML page and the TUI.
const PageTitle = "Electricity Generation in Australia"

const (
	areaStack = "fossil-use"
	barStack  = "projected"

	// projectedSuffix keeps the bar series apart from the area series of
	// the same sub-series.
	projectedSuffix = " (projected)"
)

// HTML renders the small multiples as an interactive go-echarts page.
type HTML struct {
	cfg series.Config
}

// NewHTML returns the HTML backend.
func NewHTML(cfg series.Config) *HTML {
	return &HTML{cfg: cfg}
}

// Backend implements Renderer.
func (h *HTML) Backend() string {
	return BackendHTML
}

// Render implements Renderer. Charts that failed to build are left out.
func (h *HTML) Render(w io.Writer, cs []series.Chart) error {
	drawable, _ := Drawable(cs)

	page := components.NewPage()
	page.PageTitle = PageTitle
	page.SetLayout(components.PageFlexLayout)
	for _, c := range drawable {
		page.AddCharts(h.Chart(c))
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// years returns the category labels of the x-axis.
func (h *HTML) years() []string {
	out := make([]string, 0, h.cfg.Ticks.Max-h.cfg.Ticks.Min+1)
	for y := h.cfg.Ticks.Min; y <= h.cfg.Ticks.Max; y++ {
		out = append(out, strconv.Itoa(y))
	}
	return out
}

// lineValue formats v for the tooltip; nil leaves a gap.
func lineValue(v *float64) opts.LineData {
	if v == nil {
		return opts.LineData{Value: nil}
	}
	return opts.LineData{Value: series.FormatValue(*v)}
}

// Chart builds one source: historical areas and the production line
// overlapped with the stacked projected bars.
func (h *HTML) Chart(c series.Chart) *charts.Line {
	n := h.cfg.Ticks.Max - h.cfg.Ticks.Min + 1
	production := make([]opts.LineData, n)
	areas := [2][]opts.LineData{make([]opts.LineData, n), make([]opts.LineData, n)}
	bars := [2][]opts.BarData{make([]opts.BarData, n), make([]opts.BarData, n)}
	for i := range production {
		production[i] = opts.LineData{Value: nil}
		for j := range areas {
			areas[j][i] = opts.LineData{Value: nil}
			bars[j][i] = opts.BarData{Value: nil}
		}
	}
	for _, f := range c.Frames {
		if !h.cfg.Ticks.Contains(f.Year) {
			continue
		}
		i := f.Year - h.cfg.Ticks.Min
		production[i] = lineValue(f.Line)
		for j := range areas {
			areas[j][i] = lineValue(f.Areas[j])
			// Historical bars are zero height; leaving them empty keeps
			// them out of the axis tooltip.
			if f.Projected() {
				bars[j][i] = opts.BarData{Value: series.FormatValue(f.Bars[j])}
			}
		}
	}

	top := YTop(h.cfg, c)
	yAxis := opts.YAxis{
		Show: opts.Bool(c.Primary),
		Min:  0,
		Max:  top,
	}
	if c.Primary {
		yAxis.Name = h.cfg.YAxisLabel
		yAxis.NameLocation = "center"
		yAxis.NameGap = 30
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "450px",
			Height: "450px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: strings.ToUpper(c.Source.String()),
			Left:  "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "axis",
			Formatter: TooltipFormatter(c),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Bottom: "0",
		}),
		charts.WithYAxisOpts(yAxis),
	)
	line.SetXAxis(h.years())

	for j, ch := range c.Stacked {
		line.AddSeries(ch.Label, areas[j],
			charts.WithLineChartOpts(opts.LineChart{
				Stack:      areaStack,
				Smooth:     opts.Bool(true),
				ShowSymbol: opts.Bool(false),
			}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: AreaOpacity, Color: ch.Color}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: ch.Color}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: ch.Color, Width: 0}),
		)
	}

	productionOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{
			Smooth:     opts.Bool(true),
			ShowSymbol: opts.Bool(false),
		}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: c.Line.Color}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: c.Line.Color, Type: "dashed", Width: 2}),
	}
	if c.Primary && h.cfg.ReferenceLabel != "" {
		productionOpts = append(productionOpts, charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
			Name:  h.cfg.ReferenceLabel,
			XAxis: strconv.Itoa(h.cfg.CutoffYear),
		}))
	}
	line.AddSeries(c.Line.Label, production, productionOpts...)

	bar := charts.NewBar()
	bar.SetXAxis(h.years())
	for j, ch := range c.Stacked {
		bar.AddSeries(ch.Label+projectedSuffix, bars[j],
			charts.WithBarChartOpts(opts.BarChart{Stack: barStack}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: ch.Color, Opacity: AreaOpacity}),
		)
	}
	line.Overlap(bar)

	return line
}

// TooltipFormatter returns the axis tooltip of c: the formatted tooltip of
// the hovered year, so absent values stay hidden and entries follow the
// configured label order. Years without a record show the header only.
func TooltipFormatter(c series.Chart) types.FuncStr {
	rows := make([]string, 0, len(c.Tooltips))
	for _, tip := range c.Tooltips {
		rows = append(rows, fmt.Sprintf("'%d': '%s'", tip.Year, tooltipHTML(tip)))
	}
	return opts.FuncOpts(fmt.Sprintf(`function (params) {
	var rows = {%s};
	var year = params[0].axisValue;
	return rows[year] || 'Year: ' + year;
}`, strings.Join(rows, ", ")))
}

// tooltipHTML renders t for a single-quoted JS string. html.EscapeString
// also escapes quotes, and attributes are left unquoted.
func tooltipHTML(t series.Tooltip) string {
	lines := make([]string, 0, len(t.Entries)+1)
	lines = append(lines, html.EscapeString(t.Header()))
	for _, e := range t.Entries {
		lines = append(lines, fmt.Sprintf("<span style=color:%s>&#9679;</span> %s",
			html.EscapeString(e.Color), html.EscapeString(e.String())))
	}
	return strings.ReplaceAll(strings.Join(lines, "<br/>"), `\`, `&#92;`)
}

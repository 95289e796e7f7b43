package charts

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/K25anjali/fossil-energy-graph/internal/series"
)

var axisStyle = lipgloss.NewStyle().
	Foreground(AxisColor)

var labelStyle = lipgloss.NewStyle().
	Foreground(LabelColor)

// yearTime places a year on the time axis.
func yearTime(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// YearLabelFormatter labels the time axis with years, leaving hidden ticks blank.
func YearLabelFormatter(ticks series.TickSet) func(int, float64) string {
	return func(_ int, v float64) string {
		t := time.Unix(int64(v), 0).UTC()
		year := t.Year()
		if t.Month() > time.June {
			year++
		}
		return ticks.Label(year)
	}
}

// yLabelFormatter pads labels to YLabelWidth; charts without an axis get
// blank labels of the same width.
func yLabelFormatter(show bool) func(int, float64) string {
	return func(_ int, v float64) string {
		if !show {
			return strings.Repeat(" ", YLabelWidth)
		}
		return fmt.Sprintf("%*.0f", YLabelWidth, v)
	}
}

// YTop returns the top of the y range: the last configured tick or the
// data maximum, whichever is larger, rounded up.
func YTop(cfg series.Config, c series.Chart) float64 {
	top := c.MaxValue()
	if n := len(cfg.YTicks); n > 0 {
		top = max(top, cfg.YTicks[n-1])
	}
	if top <= 0 {
		return 1
	}
	return math.Ceil(top)
}

// Timeseries draws the historical regime of c: the production line and
// the stacked electricity and other areas drawn as cumulative lines.
func Timeseries(cfg series.Config, c series.Chart, width, height int) string {
	top := YTop(cfg, c)

	lc := timeserieslinechart.New(width, height)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.XLabelFormatter = YearLabelFormatter(cfg.Ticks)
	lc.YLabelFormatter = yLabelFormatter(c.Primary)
	lc.SetTimeRange(yearTime(cfg.Ticks.Min), yearTime(cfg.Ticks.Max))
	lc.SetViewTimeRange(yearTime(cfg.Ticks.Min), yearTime(cfg.Ticks.Max))
	lc.SetYRange(0, top)     // set expected Y values first
	lc.SetViewYRange(0, top) // display range must follow the expected range
	lc.SetStyle(ChannelStyle(c.Line))
	lc.SetLineStyle(runes.ThinLineStyle)

	line := c.Line.SubSeries.String()
	lc.SetDataSetStyle(line, ChannelStyle(c.Line))
	for i, ch := range c.Stacked {
		lc.SetDataSetStyle(ch.SubSeries.String(), ChannelStyle(c.Stacked[i]))
	}

	for _, f := range c.Frames {
		if f.Projected() {
			continue
		}
		at := yearTime(f.Year)
		if f.Line != nil {
			lc.PushDataSet(line, timeserieslinechart.TimePoint{Time: at, Value: *f.Line})
		}
		// Each stacked layer is drawn at its cumulative height.
		var cumulative float64
		for i, v := range f.Areas {
			if v == nil {
				continue
			}
			cumulative += *v
			lc.PushDataSet(c.Stacked[i].SubSeries.String(), timeserieslinechart.TimePoint{Time: at, Value: cumulative})
		}
	}

	lc.DrawBrailleAll()

	return lc.View()
}

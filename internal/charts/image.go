package charts

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/K25anjali/fossil-energy-graph/internal/series"
)

const (
	imageWidth  = 600
	imageHeight = 450

	// barHalfWidth is half a projected bar in years.
	barHalfWidth = 0.6
)

// Image renders one chart as a PNG or SVG with go-chart.
type Image struct {
	cfg    series.Config
	format string
}

// NewImage returns the image backend for format (png or svg).
func NewImage(cfg series.Config, format string) *Image {
	return &Image{cfg: cfg, format: format}
}

// Backend implements Renderer.
func (im *Image) Backend() string {
	return im.format
}

// ContentType returns the MIME type of the rendered image.
func (im *Image) ContentType() string {
	if im.format == BackendSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Render implements Renderer. Exactly one chart is drawn per image.
func (im *Image) Render(w io.Writer, cs []series.Chart) error {
	if len(cs) != 1 {
		return fmt.Errorf("%w: got %d charts", ErrSingleChart, len(cs))
	}
	c := cs[0]
	if c.Err != nil {
		return fmt.Errorf("chart %s: %w", c.Source, c.Err)
	}

	provider := chart.PNG
	if im.format == BackendSVG {
		provider = chart.SVG
	}
	if err := im.Graph(c).Render(provider, w); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return nil
}

// fill returns a color with the shared area opacity.
func fill(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#")).WithAlpha(uint8(AreaOpacity * 255))
}

func stroke(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// Graph builds the go-chart description of c. go-chart fills every series
// down to the axis, so stacked layers are drawn tallest first.
func (im *Image) Graph(c series.Chart) chart.Chart {
	top := YTop(im.cfg, c)

	var hx []float64
	var layers [2][]float64
	var px, py []float64
	for _, f := range c.Frames {
		if f.Projected() {
			continue
		}
		if f.Line != nil {
			px = append(px, float64(f.Year))
			py = append(py, *f.Line)
		}
		if f.Areas[0] == nil && f.Areas[1] == nil {
			continue
		}
		hx = append(hx, float64(f.Year))
		var cumulative float64
		for i, v := range f.Areas {
			if v != nil {
				cumulative += *v
			}
			layers[i] = append(layers[i], cumulative)
		}
	}

	var seriesList []chart.Series
	for i := len(c.Stacked) - 1; i >= 0; i-- {
		if len(hx) == 0 {
			break
		}
		ch := c.Stacked[i]
		seriesList = append(seriesList, chart.ContinuousSeries{
			Name: ch.Label,
			Style: chart.Style{
				StrokeColor: fill(ch.Color),
				FillColor:   fill(ch.Color),
			},
			XValues: hx,
			YValues: layers[i],
		})
	}

	for _, f := range c.Frames {
		if !f.Projected() {
			continue
		}
		total := f.BarTotal()
		for i := len(c.Stacked) - 1; i >= 0; i-- {
			ch := c.Stacked[i]
			seriesList = append(seriesList, barSeries(ch.Label, float64(f.Year), total, fill(ch.Color)))
			total -= f.Bars[i]
		}
	}

	if len(px) > 0 {
		seriesList = append(seriesList, chart.ContinuousSeries{
			Name: c.Line.Label,
			Style: chart.Style{
				StrokeColor:     stroke(c.Line.Color),
				StrokeWidth:     2,
				StrokeDashArray: []float64{5, 5},
			},
			XValues: px,
			YValues: py,
		})
	}

	if c.Primary && im.cfg.ReferenceLabel != "" {
		seriesList = append(seriesList, chart.AnnotationSeries{
			Annotations: []chart.Value2{{
				XValue: float64(im.cfg.CutoffYear),
				YValue: top,
				Label:  im.cfg.ReferenceLabel,
			}},
		})
	}

	// go-chart refuses a chart without series; a source with no records
	// still gets its axes.
	if len(seriesList) == 0 {
		seriesList = append(seriesList, chart.ContinuousSeries{
			Name:    "baseline",
			Style:   chart.Style{StrokeColor: stroke(string(AxisColor)), StrokeWidth: 1},
			XValues: []float64{float64(im.cfg.Ticks.Min), float64(im.cfg.Ticks.Max)},
			YValues: []float64{0, 0},
		})
	}

	yAxis := chart.YAxis{
		Range: &chart.ContinuousRange{Min: 0, Max: top},
		Style: chart.Style{Hidden: !c.Primary},
		ValueFormatter: func(v interface{}) string {
			if f, ok := v.(float64); ok {
				return strconv.FormatFloat(f, 'f', 0, 64)
			}
			return ""
		},
	}
	if c.Primary {
		yAxis.Name = im.cfg.YAxisLabel
		for _, v := range im.cfg.YTicks {
			yAxis.Ticks = append(yAxis.Ticks, chart.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', 0, 64)})
		}
	}

	xTicks := make([]chart.Tick, 0, len(im.cfg.Ticks.Ticks))
	for _, tick := range im.cfg.Ticks.Ticks {
		xTicks = append(xTicks, chart.Tick{Value: float64(tick), Label: im.cfg.Ticks.Label(tick)})
	}

	return chart.Chart{
		Title:  strings.ToUpper(c.Source.String()),
		Width:  imageWidth,
		Height: imageHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{
				Min: float64(im.cfg.Ticks.Min) - 1,
				Max: float64(im.cfg.Ticks.Max) + 1,
			},
			Ticks: xTicks,
		},
		YAxis:  yAxis,
		Series: seriesList,
	}
}

// barSeries draws a bar from zero to height centered on x.
func barSeries(name string, x, height float64, color drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name: name,
		Style: chart.Style{
			StrokeColor: color,
			FillColor:   color,
		},
		XValues: []float64{x - barHalfWidth, x - barHalfWidth, x + barHalfWidth, x + barHalfWidth},
		YValues: []float64{0, height, height, 0},
	}
}

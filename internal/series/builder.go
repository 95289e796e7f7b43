package series

import (
	"fmt"

	"github.com/K25anjali/fossil-energy-graph/internal/energy"
	"github.com/K25anjali/fossil-energy-graph/internal/palette"
)

// Channel is one drawable series of a chart with its resolved attribution.
type Channel struct {
	SubSeries energy.SubSeries
	palette.Resolved
}

// Chart is everything a backend needs to draw one source.
type Chart struct {
	Source energy.Source
	Frames []Frame

	// Line is the production channel; Stacked are electricity and other.
	Line    Channel
	Stacked [2]Channel

	// Primary charts carry the y-axis and the reference label.
	Primary bool

	// Tooltips holds the hover content of every frame, in frame order.
	Tooltips []Tooltip

	// Excluded counts points that had no year.
	Excluded int

	// Err is set when the chart could not be built; the other charts are unaffected.
	Err error
}

// MaxValue returns the largest stacked or line value across all frames.
func (c Chart) MaxValue() float64 {
	var hi float64
	for _, f := range c.Frames {
		if f.Line != nil && *f.Line > hi {
			hi = *f.Line
		}
		hi = max(hi, f.AreaTotal(), f.BarTotal())
	}
	return hi
}

// Frame returns the frame for year.
func (c Chart) Frame(year int) (Frame, bool) {
	for _, f := range c.Frames {
		if f.Year == year {
			return f, true
		}
	}
	return Frame{}, false
}

// Builder builds charts from a validated configuration.
type Builder struct {
	cfg Config
}

// NewBuilder validates cfg once so that no configuration error can surface
// while rendering.
func NewBuilder(cfg Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("chart configuration: %w", err)
	}
	return &Builder{cfg: cfg}, nil
}

// Config returns the builder's configuration.
func (b *Builder) Config() Config {
	return b.cfg
}

// Build shapes the points of src into a chart.
func (b *Builder) Build(src energy.Source, points []energy.DataPoint) Chart {
	chart := Chart{Source: src, Primary: src == energy.Sources[0]}
	if !src.Valid() {
		chart.Err = fmt.Errorf("unknown source %d", int(src))
		return chart
	}

	line, err := b.channel(src, energy.Production)
	if err != nil {
		chart.Err = err
		return chart
	}
	chart.Line = line
	for i, sub := range energy.Stacked {
		ch, err := b.channel(src, sub)
		if err != nil {
			chart.Err = err
			return chart
		}
		chart.Stacked[i] = ch
	}

	part := Partition(points, b.cfg.CutoffYear)
	chart.Excluded = part.Excluded
	merged := part.Merge()
	chart.Frames = make([]Frame, 0, len(merged))
	chart.Tooltips = make([]Tooltip, 0, len(merged))
	for _, p := range merged {
		f, ok := NewFrame(p, b.cfg.CutoffYear)
		if !ok {
			continue
		}
		chart.Frames = append(chart.Frames, f)
		chart.Tooltips = append(chart.Tooltips, FormatTooltip(src, f.Year, p, b.cfg.LabelOrder, b.cfg.Palette))
	}
	return chart
}

// BuildAll builds one chart per source in display order.
func (b *Builder) BuildAll(ds energy.Dataset) []Chart {
	out := make([]Chart, 0, energy.NumSources)
	for _, src := range energy.Sources {
		out = append(out, b.Build(src, ds[src]))
	}
	return out
}

// Tooltip formats the hover content of src at year.
func (b *Builder) Tooltip(ds energy.Dataset, src energy.Source, year int) Tooltip {
	p, _ := ds.Lookup(src, year)
	return FormatTooltip(src, year, p, b.cfg.LabelOrder, b.cfg.Palette)
}

func (b *Builder) channel(src energy.Source, sub energy.SubSeries) (Channel, error) {
	r, err := b.cfg.Palette.Resolve(src, sub)
	if err != nil {
		return Channel{}, err
	}
	return Channel{SubSeries: sub, Resolved: r}, nil
}

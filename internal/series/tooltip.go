package series

import (
	"fmt"
	"strings"

	"github.com/K25anjali/fossil-energy-graph/internal/energy"
	"github.com/K25anjali/fossil-energy-graph/internal/palette"
)

// TooltipEntry is one attributed value of a hovered year.
type TooltipEntry struct {
	SubSeries energy.SubSeries `json:"sub_series" yaml:"sub_series"`
	Label     string           `json:"label" yaml:"label"`
	Color     string           `json:"color" yaml:"color"`
	Value     string           `json:"value" yaml:"value"`
}

func (e TooltipEntry) String() string {
	return e.Label + ": " + e.Value
}

// Tooltip is the hover content of one chart. A year without values has a
// header and no entries.
type Tooltip struct {
	Source  energy.Source  `json:"source" yaml:"source"`
	Year    int            `json:"year" yaml:"year"`
	Entries []TooltipEntry `json:"entries" yaml:"entries"`
}

// Header is the first line of the tooltip.
func (t Tooltip) Header() string {
	return fmt.Sprintf("Year: %d", t.Year)
}

func (t Tooltip) String() string {
	var b strings.Builder
	b.WriteString(t.Header())
	for _, e := range t.Entries {
		b.WriteString("\n")
		b.WriteString(e.String())
	}
	return b.String()
}

// FormatValue renders v with exactly two decimals.
func FormatValue(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatTooltip lists the defined values of p in order. Sub-series whose
// value is absent or null are omitted, never shown as zero.
func FormatTooltip(src energy.Source, year int, p energy.DataPoint, order LabelOrder, pal palette.Palette) Tooltip {
	t := Tooltip{Source: src, Year: year}
	for _, sub := range order {
		v := p.Value(sub)
		if v == nil {
			continue
		}
		r, err := pal.Resolve(src, sub)
		if err != nil {
			continue
		}
		t.Entries = append(t.Entries, TooltipEntry{
			SubSeries: sub,
			Label:     r.Label,
			Color:     r.Color,
			Value:     FormatValue(*v),
		})
	}
	return t
}

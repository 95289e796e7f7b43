package palette

import (
	"fmt"

	"github.com/K25anjali/fossil-energy-graph/internal/energy"
)

// Overrides is the config-file form of a palette: source -> sub-series -> color.
type Overrides map[string]map[string]string

// Apply returns a copy of p with the overrides applied. Unknown names and
// production colors are rejected rather than ignored.
func (p Palette) Apply(o Overrides) (Palette, error) {
	for srcName, subs := range o {
		src, err := energy.ParseSource(srcName)
		if err != nil {
			return p, fmt.Errorf("palette override: %w", err)
		}
		for subName, color := range subs {
			sub, err := energy.ParseSubSeries(subName)
			if err != nil {
				return p, fmt.Errorf("palette override: %w", err)
			}
			if sub == energy.Production {
				return p, fmt.Errorf("palette override: production color is fixed to %s", ProductionColor)
			}
			p[src][sub] = color
		}
	}
	return p, nil
}

// Overrides returns p in config-file form.
func (p Palette) Overrides() Overrides {
	o := make(Overrides, energy.NumSources)
	for _, src := range energy.Sources {
		subs := make(map[string]string, len(energy.Stacked))
		for _, sub := range energy.Stacked {
			subs[sub.String()] = p[src][sub]
		}
		o[src.String()] = subs
	}
	return o
}

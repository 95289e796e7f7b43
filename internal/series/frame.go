package series

import "github.com/K25anjali/fossil-energy-graph/internal/energy"

// Frame is one year of a chart as the rendering backends consume it.
type Frame struct {
	Year   int    `json:"year" yaml:"year"`
	Regime Regime `json:"regime" yaml:"regime"`

	// Line is the production line, present only for historical years.
	Line *float64 `json:"line" yaml:"line"`

	// Areas are the stacked historical electricity and other values, nil
	// for projected years.
	Areas [2]*float64 `json:"areas" yaml:"areas"`

	// Bars are the stacked projected electricity and other values, zero
	// for historical years. Production never appears here.
	Bars [2]float64 `json:"bars" yaml:"bars"`
}

// Projected reports whether the frame belongs to the projected regime.
func (f Frame) Projected() bool {
	return f.Regime == Projected
}

// AreaTotal sums the stacked historical values that are present.
func (f Frame) AreaTotal() float64 {
	var total float64
	for _, v := range f.Areas {
		if v != nil {
			total += *v
		}
	}
	return total
}

// BarTotal sums the stacked projected values.
func (f Frame) BarTotal() float64 {
	return f.Bars[0] + f.Bars[1]
}

// NewFrame maps p to its chart channels. ok is false when p has no year.
func NewFrame(p energy.DataPoint, cutoff int) (Frame, bool) {
	regime := Classify(p, cutoff)
	if regime == Unclassified {
		return Frame{}, false
	}

	f := Frame{
		Year:   *p.Year,
		Regime: regime,
		Line:   HistoricalValue(p, energy.Production, cutoff),
	}
	for i, sub := range energy.Stacked {
		f.Areas[i] = HistoricalValue(p, sub, cutoff)
		if v := ProjectedValue(p, sub, cutoff); v != nil {
			f.Bars[i] = *v
		}
	}
	return f, true
}

package series

import "github.com/K25anjali/fossil-energy-graph/internal/energy"

// DefaultCutoffYear is the first projected year.
const DefaultCutoffYear = 2030

// Regime places a point on one side of the cutoff.
type Regime int

const (
	Unclassified Regime = iota
	Historical
	Projected
)

func (r Regime) String() string {
	switch r {
	case Historical:
		return "historical"
	case Projected:
		return "projected"
	default:
		return "unclassified"
	}
}

func (r Regime) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Classify returns the regime of p. Historical is (-inf, cutoff), projected
// is [cutoff, +inf). A point without a year cannot be classified.
func Classify(p energy.DataPoint, cutoff int) Regime {
	if !p.HasYear() {
		return Unclassified
	}
	if *p.Year >= cutoff {
		return Projected
	}
	return Historical
}

// HistoricalValue is the field value of sub before the cutoff, nil otherwise.
func HistoricalValue(p energy.DataPoint, sub energy.SubSeries, cutoff int) *float64 {
	if Classify(p, cutoff) != Historical {
		return nil
	}
	return copyValue(p.Value(sub))
}

// ProjectedValue is the field value of sub from the cutoff on, and zero
// before it. Unclassified points yield nil.
func ProjectedValue(p energy.DataPoint, sub energy.SubSeries, cutoff int) *float64 {
	switch Classify(p, cutoff) {
	case Projected:
		return copyValue(p.Value(sub))
	case Historical:
		return energy.Float(0)
	default:
		return nil
	}
}

// Partitioned splits a record list at the cutoff.
type Partitioned struct {
	Historical []energy.DataPoint
	Projected  []energy.DataPoint
	// Excluded counts points without a year.
	Excluded int
}

// Partition splits points at the cutoff. Whole points go to the view of
// their regime; HistoricalValue and ProjectedValue read the fields each view
// may draw.
func Partition(points []energy.DataPoint, cutoff int) Partitioned {
	var out Partitioned
	for _, p := range points {
		switch Classify(p, cutoff) {
		case Historical:
			out.Historical = append(out.Historical, p)
		case Projected:
			out.Projected = append(out.Projected, p)
		default:
			out.Excluded++
		}
	}
	return out
}

// Merge joins the two views back together, minus the excluded points. A
// year-sorted input comes back unchanged.
func (p Partitioned) Merge() []energy.DataPoint {
	out := make([]energy.DataPoint, 0, len(p.Historical)+len(p.Projected))
	out = append(out, p.Historical...)
	return append(out, p.Projected...)
}

func copyValue(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return energy.Float(*v)
}

package energy

// DataPoint is one year of a source's record. Nil fields are absent or null.
type DataPoint struct {
	Year        *int     `yaml:"year" json:"year"`
	Production  *float64 `yaml:"production" json:"production"`
	Electricity *float64 `yaml:"electricity" json:"electricity"`
	Other       *float64 `yaml:"other" json:"other"`
}

// Point builds a DataPoint for year with the given optional values.
func Point(year int, production, electricity, other *float64) DataPoint {
	return DataPoint{
		Year:        &year,
		Production:  production,
		Electricity: electricity,
		Other:       other,
	}
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

// HasYear reports whether the point can be placed on the time axis.
func (p DataPoint) HasYear() bool {
	return p.Year != nil
}

// YearOr returns the point's year, or fallback when it has none.
func (p DataPoint) YearOr(fallback int) int {
	if p.Year == nil {
		return fallback
	}
	return *p.Year
}

// Value returns the field for sub, or nil when it is absent.
func (p DataPoint) Value(sub SubSeries) *float64 {
	switch sub {
	case Production:
		return p.Production
	case Electricity:
		return p.Electricity
	case Other:
		return p.Other
	default:
		return nil
	}
}

// Equal compares two points field by field, treating nil as distinct from zero.
func (p DataPoint) Equal(o DataPoint) bool {
	if (p.Year == nil) != (o.Year == nil) {
		return false
	}
	if p.Year != nil && *p.Year != *o.Year {
		return false
	}
	for _, sub := range AllSubSeries {
		a, b := p.Value(sub), o.Value(sub)
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && *a != *b {
			return false
		}
	}
	return true
}

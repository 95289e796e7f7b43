package energy

import (
	"fmt"
	"strings"
)

// Source is one of the fixed fossil fuel sources charted side by side.
type Source int

const (
	Coal Source = iota
	Gas
	Oil
)

// NumSources is the size of the Source enumeration.
const NumSources = 3

// Sources lists every source in display order.
var Sources = [NumSources]Source{Coal, Gas, Oil}

func (s Source) String() string {
	switch s {
	case Coal:
		return "coal"
	case Gas:
		return "gas"
	case Oil:
		return "oil"
	default:
		return "unknown"
	}
}

// Title returns the capitalized source name used in labels.
func (s Source) Title() string {
	return capitalize(s.String())
}

// Valid reports whether s is a member of the enumeration.
func (s Source) Valid() bool {
	return s >= Coal && s <= Oil
}

// ParseSource maps a case-insensitive name to a Source.
func ParseSource(name string) (Source, error) {
	for _, s := range Sources {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown source %q", name)
}

func (s Source) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid source %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Source) UnmarshalText(text []byte) error {
	parsed, err := ParseSource(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// SubSeries is a named field of a DataPoint.
type SubSeries int

const (
	Production SubSeries = iota
	Electricity
	Other
)

// NumSubSeries is the size of the SubSeries enumeration.
const NumSubSeries = 3

// AllSubSeries lists every sub-series in declaration order.
var AllSubSeries = [NumSubSeries]SubSeries{Production, Electricity, Other}

// Stacked lists the sub-series drawn as stacked areas and bars.
var Stacked = [2]SubSeries{Electricity, Other}

func (s SubSeries) String() string {
	switch s {
	case Production:
		return "production"
	case Electricity:
		return "electricity"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// Title returns the capitalized sub-series name used in labels.
func (s SubSeries) Title() string {
	return capitalize(s.String())
}

// Valid reports whether s is a member of the enumeration.
func (s SubSeries) Valid() bool {
	return s >= Production && s <= Other
}

// ParseSubSeries maps a case-insensitive name to a SubSeries.
func ParseSubSeries(name string) (SubSeries, error) {
	for _, s := range AllSubSeries {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown sub-series %q", name)
}

func (s SubSeries) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid sub-series %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *SubSeries) UnmarshalText(text []byte) error {
	parsed, err := ParseSubSeries(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

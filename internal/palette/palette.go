package palette

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/K25anjali/fossil-energy-graph/internal/energy"
)

// ProductionColor is the neutral stroke of every production line.
const ProductionColor = "#000000"

// ProductionLabel is the source-independent label of the production line.
const ProductionLabel = "Production"

var (
	// ErrMissingColor is returned when a stacked (source, sub-series) pair has no color.
	ErrMissingColor = errors.New("missing palette color")

	// ErrDuplicateColor is returned when two stacked pairs share a color.
	ErrDuplicateColor = errors.New("duplicate palette color")

	// ErrInvalidColor is returned for colors that are not #rgb or #rrggbb.
	ErrInvalidColor = errors.New("invalid palette color")
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Palette maps every (source, sub-series) pair to a fill color. The
// production column is ignored; production always uses ProductionColor.
type Palette [energy.NumSources][energy.NumSubSeries]string

// Resolved is the display attribution of one sub-series of one source.
type Resolved struct {
	Color string `json:"color" yaml:"color"`
	Label string `json:"label" yaml:"label"`
}

// Default is the fossil use palette of the published charts.
func Default() Palette {
	var p Palette
	p[energy.Coal][energy.Electricity] = "#154a45"
	p[energy.Coal][energy.Other] = "#457473"
	p[energy.Gas][energy.Electricity] = "#17159e"
	p[energy.Gas][energy.Other] = "#1717fc"
	p[energy.Oil][energy.Electricity] = "#941819"
	p[energy.Oil][energy.Other] = "#ac3d3e"
	return p
}

// Label returns the legend label of sub for src.
func Label(src energy.Source, sub energy.SubSeries) string {
	if sub == energy.Production {
		return ProductionLabel
	}
	return src.Title() + "|" + sub.Title()
}

// Resolve returns the color and label of sub for src.
func (p Palette) Resolve(src energy.Source, sub energy.SubSeries) (Resolved, error) {
	if !src.Valid() || !sub.Valid() {
		return Resolved{}, fmt.Errorf("%w: %s/%s", ErrMissingColor, src, sub)
	}
	if sub == energy.Production {
		return Resolved{Color: ProductionColor, Label: ProductionLabel}, nil
	}
	color := p[src][sub]
	if color == "" {
		return Resolved{}, fmt.Errorf("%w: %s", ErrMissingColor, Label(src, sub))
	}
	return Resolved{Color: color, Label: Label(src, sub)}, nil
}

// Validate checks that every stacked pair has a well-formed color and that
// no two pairs share one.
func (p Palette) Validate() error {
	var errs []error
	seen := make(map[string]string)
	for _, src := range energy.Sources {
		for _, sub := range energy.Stacked {
			label := Label(src, sub)
			color := p[src][sub]
			switch {
			case color == "":
				errs = append(errs, fmt.Errorf("%w: %s", ErrMissingColor, label))
				continue
			case !hexColor.MatchString(color):
				errs = append(errs, fmt.Errorf("%w: %s has %q", ErrInvalidColor, label, color))
				continue
			}
			key := strings.ToLower(color)
			if prev, ok := seen[key]; ok {
				errs = append(errs, fmt.Errorf("%w: %s and %s both use %s", ErrDuplicateColor, prev, label, color))
				continue
			}
			seen[key] = label
		}
	}
	return errors.Join(errs...)
}

// Entry is one row of the legend.
type Entry struct {
	Label  string
	Color  string
	Dashed bool
}

// Group is a titled legend section.
type Group struct {
	Title   string
	Entries []Entry
}

// Legend returns the fossil use swatches followed by the domestic supply line.
func (p Palette) Legend() []Group {
	use := Group{Title: "Fossil use"}
	for _, src := range energy.Sources {
		for _, sub := range energy.Stacked {
			use.Entries = append(use.Entries, Entry{Label: Label(src, sub), Color: p[src][sub]})
		}
	}
	supply := Group{
		Title:   "Domestic Supply",
		Entries: []Entry{{Label: ProductionLabel, Color: ProductionColor, Dashed: true}},
	}
	return []Group{use, supply}
}

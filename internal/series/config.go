package series

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/K25anjali/fossil-energy-graph/internal/energy"
	"github.com/K25anjali/fossil-energy-graph/internal/palette"
	"gopkg.in/yaml.v2"
)

var (
	// ErrLabelOrder is returned when a label order is not a permutation of the sub-series.
	ErrLabelOrder = errors.New("invalid label order")

	// ErrCutoff is returned when the cutoff year falls outside the x-axis domain.
	ErrCutoff = errors.New("cutoff year outside axis domain")
)

// LabelOrder is the display order of sub-series in tooltips.
type LabelOrder []energy.SubSeries

// DefaultLabelOrder lists production, electricity, then other.
func DefaultLabelOrder() LabelOrder {
	return LabelOrder{energy.Production, energy.Electricity, energy.Other}
}

// Validate checks that o names every sub-series exactly once.
func (o LabelOrder) Validate() error {
	if len(o) != energy.NumSubSeries {
		return fmt.Errorf("%w: want %d entries, got %d", ErrLabelOrder, energy.NumSubSeries, len(o))
	}
	var seen [energy.NumSubSeries]bool
	for _, sub := range o {
		if !sub.Valid() {
			return fmt.Errorf("%w: unknown sub-series %d", ErrLabelOrder, int(sub))
		}
		if seen[sub] {
			return fmt.Errorf("%w: %s listed twice", ErrLabelOrder, sub)
		}
		seen[sub] = true
	}
	return nil
}

// TickSet describes the year axis.
type TickSet struct {
	Min    int   `yaml:"min" json:"min"`
	Max    int   `yaml:"max" json:"max"`
	Ticks  []int `yaml:"ticks" json:"ticks"`
	Hidden []int `yaml:"hidden" json:"hidden"`
}

// DefaultTickSet spans 2000-2035 and leaves the mid-decade ticks unlabeled.
func DefaultTickSet() TickSet {
	return TickSet{
		Min:    2000,
		Max:    2035,
		Ticks:  []int{2000, 2005, 2010, 2015, 2020, 2030, 2035},
		Hidden: []int{2005, 2015, 2025},
	}
}

// Label returns the text drawn under tick, empty for hidden ticks.
func (t TickSet) Label(tick int) string {
	if slices.Contains(t.Hidden, tick) {
		return ""
	}
	return strconv.Itoa(tick)
}

// Contains reports whether year lies within the axis domain.
func (t TickSet) Contains(year int) bool {
	return year >= t.Min && year <= t.Max
}

// Config parameterizes a single chart-building function for every source.
type Config struct {
	CutoffYear     int
	Ticks          TickSet
	YTicks         []float64
	YAxisLabel     string
	ReferenceLabel string
	LabelOrder     LabelOrder
	Palette        palette.Palette
}

// DefaultConfig mirrors the published charts.
func DefaultConfig() Config {
	return Config{
		CutoffYear:     DefaultCutoffYear,
		Ticks:          DefaultTickSet(),
		YTicks:         []float64{0, 5, 10},
		YAxisLabel:     "Fossil Energy Production and use (EJ/Yr)",
		ReferenceLabel: "High Ambition",
		LabelOrder:     DefaultLabelOrder(),
		Palette:        palette.Default(),
	}
}

// Validate reports every configuration error at once.
func (c Config) Validate() error {
	var errs []error
	if err := c.Palette.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.LabelOrder.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Ticks.Min >= c.Ticks.Max {
		errs = append(errs, fmt.Errorf("empty axis domain [%d, %d]", c.Ticks.Min, c.Ticks.Max))
	} else if !c.Ticks.Contains(c.CutoffYear) {
		errs = append(errs, fmt.Errorf("%w: %d not in [%d, %d]", ErrCutoff, c.CutoffYear, c.Ticks.Min, c.Ticks.Max))
	}
	return errors.Join(errs...)
}

// File is the YAML form of Config. Zero fields keep their defaults.
type File struct {
	CutoffYear     int               `yaml:"cutoff_year,omitempty" json:"cutoff_year,omitempty"`
	Ticks          *TickSet          `yaml:"ticks,omitempty" json:"ticks,omitempty"`
	YTicks         []float64         `yaml:"y_ticks,omitempty" json:"y_ticks,omitempty"`
	YAxisLabel     string            `yaml:"y_axis_label,omitempty" json:"y_axis_label,omitempty"`
	ReferenceLabel string            `yaml:"reference_label,omitempty" json:"reference_label,omitempty"`
	LabelOrder     []string          `yaml:"label_order,omitempty" json:"label_order,omitempty"`
	Palette        palette.Overrides `yaml:"palette,omitempty" json:"palette,omitempty"`
}

// Apply overlays f onto c.
func (f File) Apply(c Config) (Config, error) {
	if f.CutoffYear != 0 {
		c.CutoffYear = f.CutoffYear
	}
	if f.Ticks != nil {
		c.Ticks = *f.Ticks
	}
	if len(f.YTicks) > 0 {
		c.YTicks = f.YTicks
	}
	if f.YAxisLabel != "" {
		c.YAxisLabel = f.YAxisLabel
	}
	if f.ReferenceLabel != "" {
		c.ReferenceLabel = f.ReferenceLabel
	}
	if len(f.LabelOrder) > 0 {
		order := make(LabelOrder, 0, len(f.LabelOrder))
		for _, name := range f.LabelOrder {
			sub, err := energy.ParseSubSeries(name)
			if err != nil {
				return c, fmt.Errorf("%w: %v", ErrLabelOrder, err)
			}
			order = append(order, sub)
		}
		c.LabelOrder = order
	}
	if len(f.Palette) > 0 {
		p, err := c.Palette.Apply(f.Palette)
		if err != nil {
			return c, err
		}
		c.Palette = p
	}
	return c, nil
}

// ToFile returns the complete config-file form of c.
func (c Config) ToFile() File {
	order := make([]string, len(c.LabelOrder))
	for i, sub := range c.LabelOrder {
		order[i] = sub.String()
	}
	ticks := c.Ticks
	return File{
		CutoffYear:     c.CutoffYear,
		Ticks:          &ticks,
		YTicks:         c.YTicks,
		YAxisLabel:     c.YAxisLabel,
		ReferenceLabel: c.ReferenceLabel,
		LabelOrder:     order,
		Palette:        c.Palette.Overrides(),
	}
}

// DecodeConfig reads a YAML config file over the defaults and validates it.
func DecodeConfig(r io.Reader) (Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var f File
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg, err := f.Apply(DefaultConfig())
	if err != nil {
		return Config{}, fmt.Errorf("applying config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads the config file at path, or the defaults when path is empty.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		cfg := DefaultConfig()
		return cfg, cfg.Validate()
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()
	return DecodeConfig(f)
}

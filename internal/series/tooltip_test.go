package series

import (
	"testing"

	"github.com/K25anjali/fossil-energy-graph/internal/energy"
	"github.com/K25anjali/fossil-energy-graph/internal/palette"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3, "3.00"},
		{3.2, "3.20"},
		{1.005, "1.00"},
		{0, "0.00"},
		{12.3456, "12.35"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTooltip(t *testing.T) {
	pal := palette.Default()

	t.Run("omits null values", func(t *testing.T) {
		p := energy.Point(2025, energy.Float(3.2), energy.Float(1.1), nil)
		tip := FormatTooltip(energy.Coal, 2025, p, DefaultLabelOrder(), pal)

		if len(tip.Entries) != 2 {
			t.Fatalf("len(Entries) = %d, want 2", len(tip.Entries))
		}
		if got := tip.Entries[0].String(); got != "Production: 3.20" {
			t.Errorf("Entries[0] = %q, want %q", got, "Production: 3.20")
		}
		if got := tip.Entries[1].String(); got != "Coal|Electricity: 1.10" {
			t.Errorf("Entries[1] = %q, want %q", got, "Coal|Electricity: 1.10")
		}
		if tip.Entries[0].Color != palette.ProductionColor {
			t.Errorf("production color = %q, want %q", tip.Entries[0].Color, palette.ProductionColor)
		}
		if tip.Entries[1].Color != "#154a45" {
			t.Errorf("electricity color = %q, want #154a45", tip.Entries[1].Color)
		}
	})

	t.Run("zero is shown", func(t *testing.T) {
		p := energy.Point(2010, nil, nil, energy.Float(0))
		tip := FormatTooltip(energy.Gas, 2010, p, DefaultLabelOrder(), pal)
		if len(tip.Entries) != 1 || tip.Entries[0].String() != "Gas|Other: 0.00" {
			t.Errorf("Entries = %v, want [Gas|Other: 0.00]", tip.Entries)
		}
	})

	t.Run("configurable order", func(t *testing.T) {
		p := energy.Point(2020, energy.Float(1), energy.Float(2), energy.Float(3))
		order := LabelOrder{energy.Production, energy.Other, energy.Electricity}
		tip := FormatTooltip(energy.Oil, 2020, p, order, pal)
		want := []string{"Production", "Oil|Other", "Oil|Electricity"}
		if len(tip.Entries) != len(want) {
			t.Fatalf("len(Entries) = %d, want %d", len(tip.Entries), len(want))
		}
		for i, label := range want {
			if tip.Entries[i].Label != label {
				t.Errorf("Entries[%d].Label = %q, want %q", i, tip.Entries[i].Label, label)
			}
		}
	})

	t.Run("empty point renders header only", func(t *testing.T) {
		tip := FormatTooltip(energy.Oil, 2024, energy.DataPoint{}, DefaultLabelOrder(), pal)
		if len(tip.Entries) != 0 {
			t.Errorf("len(Entries) = %d, want 0", len(tip.Entries))
		}
		if got := tip.String(); got != "Year: 2024" {
			t.Errorf("String() = %q, want %q", got, "Year: 2024")
		}
	})
}

func TestTooltipString(t *testing.T) {
	p := energy.Point(2025, energy.Float(3.2), energy.Float(1.1), nil)
	tip := FormatTooltip(energy.Coal, 2025, p, DefaultLabelOrder(), palette.Default())
	want := "Year: 2025\nProduction: 3.20\nCoal|Electricity: 1.10"
	if got := tip.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilderTooltip(t *testing.T) {
	b, err := NewBuilder(DefaultConfig())
	if err != nil {
		t.Fatalf("NewBuilder() returned error: %v", err)
	}
	ds := energy.Dataset{
		energy.Gas: {energy.Point(2030, nil, energy.Float(0.26), energy.Float(0.61))},
	}

	tip := b.Tooltip(ds, energy.Gas, 2030)
	if len(tip.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(tip.Entries))
	}
	if tip.Entries[0].Label != "Gas|Electricity" {
		t.Errorf("Entries[0].Label = %q, want Gas|Electricity", tip.Entries[0].Label)
	}

	missing := b.Tooltip(ds, energy.Gas, 1999)
	if len(missing.Entries) != 0 || missing.Header() != "Year: 1999" {
		t.Errorf("missing year tooltip = %v", missing)
	}
}

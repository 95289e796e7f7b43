package energy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSourceString(t *testing.T) {
	tests := []struct {
		name   string
		source Source
		want   string
		title  string
	}{
		{"coal", Coal, "coal", "Coal"},
		{"gas", Gas, "gas", "Gas"},
		{"oil", Oil, "oil", "Oil"},
		{"unknown source", Source(99), "unknown", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.source.String(); got != tt.want {
				t.Errorf("Source.String() = %q, want %q", got, tt.want)
			}
			if got := tt.source.Title(); got != tt.title {
				t.Errorf("Source.Title() = %q, want %q", got, tt.title)
			}
		})
	}
}

func TestParseSource(t *testing.T) {
	for _, src := range Sources {
		got, err := ParseSource(strings.ToUpper(src.String()))
		if err != nil {
			t.Fatalf("ParseSource(%q) returned error: %v", src, err)
		}
		if got != src {
			t.Errorf("ParseSource(%q) = %v, want %v", src, got, src)
		}
	}

	if _, err := ParseSource("uranium"); err == nil {
		t.Error("ParseSource(uranium) returned nil error")
	}
}

func TestParseSubSeries(t *testing.T) {
	for _, sub := range AllSubSeries {
		got, err := ParseSubSeries(sub.Title())
		if err != nil {
			t.Fatalf("ParseSubSeries(%q) returned error: %v", sub.Title(), err)
		}
		if got != sub {
			t.Errorf("ParseSubSeries(%q) = %v, want %v", sub.Title(), got, sub)
		}
	}

	if _, err := ParseSubSeries("exports"); err == nil {
		t.Error("ParseSubSeries(exports) returned nil error")
	}
}

func TestDataPointValue(t *testing.T) {
	p := Point(2025, Float(3.2), Float(1.1), nil)

	if got := p.Value(Production); got == nil || *got != 3.2 {
		t.Errorf("Value(Production) = %v, want 3.2", got)
	}
	if got := p.Value(Other); got != nil {
		t.Errorf("Value(Other) = %v, want nil", *got)
	}
}

func TestDataPointEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b DataPoint
		want bool
	}{
		{"identical", Point(2000, Float(1), nil, Float(2)), Point(2000, Float(1), nil, Float(2)), true},
		{"different year", Point(2000, nil, nil, nil), Point(2001, nil, nil, nil), false},
		{"nil versus zero", Point(2000, nil, nil, nil), Point(2000, Float(0), nil, nil), false},
		{"missing year both", DataPoint{Other: Float(1)}, DataPoint{Other: Float(1)}, true},
		{"missing year one", DataPoint{}, Point(2000, nil, nil, nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultDataset(t *testing.T) {
	ds, err := Default()
	if err != nil {
		t.Fatalf("Default() returned error: %v", err)
	}

	for _, src := range Sources {
		points := ds[src]
		if len(points) == 0 {
			t.Fatalf("Default()[%s] is empty", src)
		}
		for i := 1; i < len(points); i++ {
			if *points[i-1].Year >= *points[i].Year {
				t.Errorf("%s points not sorted at index %d", src, i)
			}
		}
		if _, ok := ds.Lookup(src, 2030); !ok {
			t.Errorf("%s has no projected 2030 point", src)
		}
	}
}

func TestDecode(t *testing.T) {
	t.Run("yaml with null and missing year", func(t *testing.T) {
		in := `
coal:
  - year: 2031
    electricity: 0.5
  - year: 2001
    production: 3
    other: null
  - production: 9
`
		ds, err := Decode(strings.NewReader(in), "yaml")
		if err != nil {
			t.Fatalf("Decode() returned error: %v", err)
		}
		coal := ds[Coal]
		if len(coal) != 3 {
			t.Fatalf("len(coal) = %d, want 3", len(coal))
		}
		if *coal[0].Year != 2001 || *coal[1].Year != 2031 {
			t.Errorf("points not sorted by year: %d, %d", *coal[0].Year, *coal[1].Year)
		}
		if coal[2].HasYear() {
			t.Error("point without year should sort last")
		}
		if coal[0].Other != nil {
			t.Error("null value decoded as non-nil")
		}
		if len(ds[Gas]) != 0 {
			t.Errorf("len(gas) = %d, want 0", len(ds[Gas]))
		}
	})

	t.Run("json", func(t *testing.T) {
		in := `{"oil": [{"year": 2010, "production": 1.5, "electricity": null}]}`
		ds, err := Decode(strings.NewReader(in), "json")
		if err != nil {
			t.Fatalf("Decode() returned error: %v", err)
		}
		p, ok := ds.Lookup(Oil, 2010)
		if !ok {
			t.Fatal("Lookup(oil, 2010) not found")
		}
		if *p.Production != 1.5 || p.Electricity != nil {
			t.Errorf("unexpected point %+v", p)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		if _, err := Decode(strings.NewReader(""), "toml"); err == nil {
			t.Error("Decode(toml) returned nil error")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		if _, err := Decode(strings.NewReader("coal: [year: {"), "yaml"); err == nil {
			t.Error("Decode() returned nil error for malformed input")
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("empty path loads embedded data", func(t *testing.T) {
		ds, err := Load("")
		if err != nil {
			t.Fatalf("Load(\"\") returned error: %v", err)
		}
		if len(ds[Gas]) == 0 {
			t.Error("embedded gas data is empty")
		}
	})

	t.Run("json file by extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.json")
		if err := os.WriteFile(path, []byte(`{"gas": [{"year": 2005, "other": 0.7}]}`), 0o600); err != nil {
			t.Fatal(err)
		}
		ds, err := Load(path)
		if err != nil {
			t.Fatalf("Load() returned error: %v", err)
		}
		if _, ok := ds.Lookup(Gas, 2005); !ok {
			t.Error("Lookup(gas, 2005) not found")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("Load() returned nil error for missing file")
		}
	})
}

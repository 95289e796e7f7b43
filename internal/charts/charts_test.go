package charts

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/K25anjali/fossil-energy-graph/internal/energy"
	"github.com/K25anjali/fossil-energy-graph/internal/interaction"
	"github.com/K25anjali/fossil-energy-graph/internal/palette"
	"github.com/K25anjali/fossil-energy-graph/internal/series"
)

func testCharts(t *testing.T) (series.Config, []series.Chart) {
	t.Helper()
	cfg := series.DefaultConfig()
	b, err := series.NewBuilder(cfg)
	if err != nil {
		t.Fatalf("NewBuilder() returned error: %v", err)
	}
	ds := energy.Dataset{
		energy.Coal: {
			energy.Point(2020, energy.Float(4), energy.Float(2), energy.Float(1)),
			energy.Point(2025, energy.Float(3.2), energy.Float(1.1), nil),
			energy.Point(2030, nil, energy.Float(0.5), energy.Float(0.7)),
		},
		energy.Gas: {
			energy.Point(2020, energy.Float(5), energy.Float(1), energy.Float(2)),
			energy.Point(2035, nil, energy.Float(0.2), energy.Float(0.3)),
		},
		energy.Oil: {
			energy.Point(2020, energy.Float(2), energy.Float(0.1), energy.Float(1.5)),
		},
	}
	return cfg, b.BuildAll(ds)
}

func TestChannelStyle(t *testing.T) {
	ch := series.Channel{SubSeries: energy.Electricity, Resolved: palette.Resolved{Color: "#154a45"}}
	if got := ChannelColor(ch); got != ChannelStyle(ch).GetForeground() {
		t.Errorf("ChannelStyle().GetForeground() = %v, want %v", ChannelStyle(ch).GetForeground(), got)
	}

	prod := series.Channel{SubSeries: energy.Production, Resolved: palette.Resolved{Color: palette.ProductionColor}}
	if got := ChannelColor(prod); got != productionColor {
		t.Errorf("ChannelColor(production) = %v, want the adaptive production color", got)
	}
}

func TestProjectedBars(t *testing.T) {
	_, cs := testCharts(t)

	bars := ProjectedBars(cs[0])
	if len(bars) != 1 {
		t.Fatalf("len(ProjectedBars(coal)) = %d, want 1", len(bars))
	}
	if bars[0].Label != "2030" {
		t.Errorf("bars[0].Label = %q, want 2030", bars[0].Label)
	}
	if len(bars[0].Values) != 2 {
		t.Fatalf("len(bars[0].Values) = %d, want 2 (no production)", len(bars[0].Values))
	}
	for i, want := range []struct {
		name  string
		value float64
	}{{"Coal|Electricity", 0.5}, {"Coal|Other", 0.7}} {
		got := bars[0].Values[i]
		if got.Name != want.name || got.Value != want.value {
			t.Errorf("Values[%d] = {%s %v}, want {%s %v}", i, got.Name, got.Value, want.name, want.value)
		}
	}

	if got := ProjectedBars(cs[2]); len(got) != 0 {
		t.Errorf("oil has no projected years, got %d bars", len(got))
	}
}

func TestYearLabelFormatter(t *testing.T) {
	format := YearLabelFormatter(series.DefaultTickSet())
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"start of year", yearTime(2010), "2010"},
		{"late in the previous year rounds up", time.Date(2019, time.November, 3, 0, 0, 0, 0, time.UTC), "2020"},
		{"hidden tick", yearTime(2015), ""},
		{"hidden tick outside the tick list", yearTime(2025), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := format(0, float64(tt.at.Unix())); got != tt.want {
				t.Errorf("format(%v) = %q, want %q", tt.at, got, tt.want)
			}
		})
	}
}

func TestYTop(t *testing.T) {
	cfg, cs := testCharts(t)
	if got := YTop(cfg, cs[0]); got != 10 {
		t.Errorf("YTop(coal) = %v, want the last y tick 10", got)
	}

	cfg.YTicks = nil
	if got := YTop(cfg, cs[1]); got != 5 {
		t.Errorf("YTop(gas) without ticks = %v, want 5", got)
	}
}

func TestTerminalGrid(t *testing.T) {
	cfg, cs := testCharts(t)

	tests := []struct {
		name   string
		width  int
		narrow bool
	}{
		{"wide", 150, false},
		{"narrow", 60, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := NewTerminal(cfg, tt.width, tt.narrow)
			sess := interaction.NewSession(cfg.Ticks.Min, cfg.Ticks.Max)
			view, containers := term.Grid(cs, sess, nil)

			for _, title := range []string{"COAL", "GAS", "OIL"} {
				if !strings.Contains(view, title) {
					t.Errorf("view does not contain %q", title)
				}
			}
			if len(containers) != energy.NumSources {
				t.Fatalf("len(containers) = %d, want %d", len(containers), energy.NumSources)
			}
			for i := 1; i < len(containers); i++ {
				prev, cur := containers[i-1].Bounds, containers[i].Bounds
				if tt.narrow && cur.Y < prev.Y+prev.Height {
					t.Errorf("container %d overlaps the one above it", i)
				}
				if !tt.narrow && cur.X < prev.X+prev.Width {
					t.Errorf("container %d overlaps the one left of it", i)
				}
			}
			for _, c := range containers {
				if c.Plot.X < c.Bounds.X || c.Plot.X+c.Plot.Width > c.Bounds.X+c.Bounds.Width {
					t.Errorf("%s plot %+v outside bounds %+v", c.Source, c.Plot, c.Bounds)
				}
			}
		})
	}
}

func TestTerminalGridShowsSharedTooltip(t *testing.T) {
	cfg, cs := testCharts(t)
	b, _ := series.NewBuilder(cfg)
	ds := energy.Dataset{
		energy.Coal: {energy.Point(2025, energy.Float(3.2), energy.Float(1.1), nil)},
	}
	tips := map[energy.Source]series.Tooltip{}
	for _, src := range energy.Sources {
		tips[src] = b.Tooltip(ds, src, 2025)
	}

	term := NewTerminal(cfg, 150, false)
	sess := interaction.NewSession(cfg.Ticks.Min, cfg.Ticks.Max).Jump(2025)
	view, _ := term.Grid(cs, sess, tips)

	if got := strings.Count(view, "Year: 2025"); got != energy.NumSources {
		t.Errorf("tooltip headers = %d, want one per chart", got)
	}
	for _, want := range []string{"Production: 3.20", "Coal|Electricity: 1.10"} {
		if !strings.Contains(view, want) {
			t.Errorf("view does not contain %q", want)
		}
	}
	if strings.Contains(view, "Coal|Other: ") {
		t.Error("tooltip shows the missing other value")
	}
}

func TestTerminalErrorPanel(t *testing.T) {
	cfg, cs := testCharts(t)
	cs[1].Err = errors.New("no data")

	view, containers := NewTerminal(cfg, 150, false).Grid(cs, interaction.NewSession(2000, 2035), nil)
	if !strings.Contains(view, "GAS: no data") {
		t.Errorf("view does not contain the gas error")
	}
	if !strings.Contains(view, "COAL") || !strings.Contains(view, "OIL") {
		t.Error("a failed chart hid its siblings")
	}
	if len(containers) != energy.NumSources {
		t.Errorf("len(containers) = %d, want %d", len(containers), energy.NumSources)
	}
}

func TestTerminalLegend(t *testing.T) {
	cfg := series.DefaultConfig()
	for _, narrow := range []bool{false, true} {
		legend := NewTerminal(cfg, 150, narrow).Legend(cfg.Palette)
		for _, want := range []string{"Fossil use", "Domestic Supply", "Gas|Other", "Production"} {
			if !strings.Contains(legend, want) {
				t.Errorf("Legend(narrow=%v) does not contain %q", narrow, want)
			}
		}
	}
}

func TestNewRenderer(t *testing.T) {
	cfg := series.DefaultConfig()
	for _, backend := range []string{BackendTerminal, BackendHTML, BackendPNG, BackendSVG} {
		r, err := NewRenderer(backend, cfg, 120, false)
		if err != nil {
			t.Errorf("NewRenderer(%q) returned error: %v", backend, err)
			continue
		}
		if r.Backend() != backend {
			t.Errorf("Backend() = %q, want %q", r.Backend(), backend)
		}
	}
	if _, err := NewRenderer("pdf", cfg, 120, false); err == nil {
		t.Error("NewRenderer(pdf) returned nil error")
	}
}

func TestHTMLRender(t *testing.T) {
	cfg, cs := testCharts(t)
	cs[2].Err = errors.New("broken")

	var buf bytes.Buffer
	if err := NewHTML(cfg).Render(&buf, cs); err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{PageTitle, `"text":"COAL"`, `"text":"GAS"`, "High Ambition", "Coal|Electricity", "3.20"} {
		if !strings.Contains(out, want) {
			t.Errorf("page does not contain %q", want)
		}
	}
	if strings.Contains(out, `"text":"OIL"`) {
		t.Error("page contains the failed oil chart")
	}
}

func TestHTMLTooltipFormatter(t *testing.T) {
	cfg, cs := testCharts(t)

	var buf bytes.Buffer
	if err := NewHTML(cfg).Render(&buf, cs[:1]); err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "function (params)") {
		t.Fatal("page has no tooltip formatter")
	}
	if got := strings.Count(out, `"name":"Coal|Electricity"`); got != 1 {
		t.Errorf("series named Coal|Electricity = %d, want 1", got)
	}

	row := tooltipRow(t, out, 2025)
	if !strings.HasPrefix(row, "Year: 2025<br/>") {
		t.Errorf("row = %q, want the year header first", row)
	}
	for _, want := range []string{"Production: 3.20", "Coal|Electricity: 1.10"} {
		if !strings.Contains(row, want) {
			t.Errorf("row %q does not contain %q", row, want)
		}
	}
	if strings.Contains(row, "Coal|Other") {
		t.Errorf("row %q lists the missing other value", row)
	}
}

func TestTooltipFormatterFollowsLabelOrder(t *testing.T) {
	cfg := series.DefaultConfig()
	cfg.LabelOrder = series.LabelOrder{energy.Other, energy.Electricity, energy.Production}
	b, err := series.NewBuilder(cfg)
	if err != nil {
		t.Fatalf("NewBuilder() returned error: %v", err)
	}
	c := b.Build(energy.Gas, []energy.DataPoint{
		energy.Point(2010, energy.Float(2), energy.Float(0.5), energy.Float(1)),
	})

	row := tooltipRow(t, string(TooltipFormatter(c)), 2010)
	other := strings.Index(row, "Gas|Other: 1.00")
	elec := strings.Index(row, "Gas|Electricity: 0.50")
	prod := strings.Index(row, "Production: 2.00")
	if other < 0 || elec < 0 || prod < 0 {
		t.Fatalf("row %q is missing entries", row)
	}
	if !(other < elec && elec < prod) {
		t.Errorf("row %q not in the configured order", row)
	}
}

// tooltipRow extracts the formatter row of year from rendered output.
func tooltipRow(t *testing.T, out string, year int) string {
	t.Helper()
	key := fmt.Sprintf("'%d': '", year)
	i := strings.Index(out, key)
	if i < 0 {
		t.Fatalf("no tooltip row for %d", year)
	}
	rest := out[i+len(key):]
	end := strings.Index(rest, "'")
	if end < 0 {
		t.Fatalf("unterminated tooltip row for %d", year)
	}
	return rest[:end]
}

func TestImageRender(t *testing.T) {
	cfg, cs := testCharts(t)

	t.Run("png", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewImage(cfg, BackendPNG).Render(&buf, cs[:1]); err != nil {
			t.Fatalf("Render() returned error: %v", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
			t.Error("output is not a PNG")
		}
	})

	t.Run("svg", func(t *testing.T) {
		im := NewImage(cfg, BackendSVG)
		var buf bytes.Buffer
		if err := im.Render(&buf, cs[:1]); err != nil {
			t.Fatalf("Render() returned error: %v", err)
		}
		if !strings.Contains(buf.String(), "<svg") {
			t.Error("output is not an SVG")
		}
		if im.ContentType() != "image/svg+xml" {
			t.Errorf("ContentType() = %q", im.ContentType())
		}
	})

	t.Run("source without records", func(t *testing.T) {
		b, _ := series.NewBuilder(cfg)
		var buf bytes.Buffer
		if err := NewImage(cfg, BackendPNG).Render(&buf, []series.Chart{b.Build(energy.Gas, nil)}); err != nil {
			t.Fatalf("Render(empty gas) returned error: %v", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
			t.Error("output is not a PNG")
		}
	})

	t.Run("several charts", func(t *testing.T) {
		err := NewImage(cfg, BackendPNG).Render(&bytes.Buffer{}, cs)
		if !errors.Is(err, ErrSingleChart) {
			t.Errorf("Render(3 charts) = %v, want ErrSingleChart", err)
		}
	})

	t.Run("failed chart", func(t *testing.T) {
		broken := cs[0]
		broken.Err = errors.New("broken")
		if err := NewImage(cfg, BackendPNG).Render(&bytes.Buffer{}, []series.Chart{broken}); err == nil {
			t.Error("Render(failed chart) returned nil error")
		}
	})
}

func TestImageGraphStacksTallestFirst(t *testing.T) {
	cfg, cs := testCharts(t)
	g := NewImage(cfg, BackendPNG).Graph(cs[0])

	if len(g.Series) < 2 {
		t.Fatalf("len(Series) = %d", len(g.Series))
	}
	if got := g.Series[0].GetName(); got != "Coal|Other" {
		t.Errorf("first series = %q, want the top layer Coal|Other", got)
	}
	if got := g.Series[1].GetName(); got != "Coal|Electricity" {
		t.Errorf("second series = %q, want Coal|Electricity", got)
	}
}

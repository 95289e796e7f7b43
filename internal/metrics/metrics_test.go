package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder(false)

	r.Rendered("coal", "terminal")
	r.Rendered("coal", "terminal")
	r.Rendered("gas", "html")
	r.Failed("oil")
	r.Excluded("coal", 2)
	r.Excluded("coal", 0)
	r.Tooltip()

	if got := testutil.ToFloat64(r.renders.WithLabelValues("coal", "terminal")); got != 2 {
		t.Errorf("coal terminal renders = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.failures.WithLabelValues("oil")); got != 1 {
		t.Errorf("oil failures = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.excluded.WithLabelValues("coal")); got != 2 {
		t.Errorf("coal excluded = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.hovers); got != 1 {
		t.Errorf("tooltips = %v, want 1", got)
	}

	expected := `
# HELP fossil_render_errors_total Charts that failed to build or render, by source.
# TYPE fossil_render_errors_total counter
fossil_render_errors_total{source="oil"} 1
`
	if err := testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected), "fossil_render_errors_total"); err != nil {
		t.Errorf("GatherAndCompare() = %v", err)
	}
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	r.Rendered("coal", "terminal")
	r.Failed("coal")
	r.Excluded("coal", 3)
	r.Tooltip()
	if r.Registry() == nil {
		t.Error("nil recorder returned nil registry")
	}
}

func TestRuntimeCollectors(t *testing.T) {
	r := NewRecorder(true)
	families, err := r.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather() returned error: %v", err)
	}
	found := false
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), "go_") {
			found = true
			break
		}
	}
	if !found {
		t.Error("runtime collectors not registered")
	}
}

package charts

import (
	"errors"
	"fmt"
	"io"

	"github.com/K25anjali/fossil-energy-graph/internal/series"
)

// ErrSingleChart is returned by backends that draw one chart per output.
var ErrSingleChart = errors.New("backend renders a single chart")

// Renderer writes charts in one output format.
type Renderer interface {
	Render(w io.Writer, cs []series.Chart) error
	Backend() string
}

// NewRenderer returns the renderer for backend. width is only used by the
// terminal backend.
func NewRenderer(backend string, cfg series.Config, width int, narrow bool) (Renderer, error) {
	switch backend {
	case BackendTerminal:
		return NewTerminal(cfg, width, narrow), nil
	case BackendHTML:
		return NewHTML(cfg), nil
	case BackendPNG, BackendSVG:
		return NewImage(cfg, backend), nil
	default:
		return nil, fmt.Errorf("unsupported backend: %s (supported: %s, %s, %s, %s)",
			backend, BackendTerminal, BackendHTML, BackendPNG, BackendSVG)
	}
}

// Drawable drops the charts that failed to build.
func Drawable(cs []series.Chart) (ok []series.Chart, failed []series.Chart) {
	for _, c := range cs {
		if c.Err != nil {
			failed = append(failed, c)
			continue
		}
		ok = append(ok, c)
	}
	return ok, failed
}

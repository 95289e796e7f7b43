package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/K25anjali/fossil-energy-graph/internal/charts"
	"github.com/K25anjali/fossil-energy-graph/internal/energy"
	"github.com/K25anjali/fossil-energy-graph/internal/series"
	"github.com/K25anjali/fossil-energy-graph/internal/viewport"
)

// selectCharts narrows cs to source when it is set.
func selectCharts(cs []series.Chart, source string) ([]series.Chart, error) {
	if source == "" {
		return cs, nil
	}
	src, err := energy.ParseSource(source)
	if err != nil {
		return nil, err
	}
	c, err := chartFor(cs, src)
	if err != nil {
		return nil, err
	}
	return []series.Chart{c}, nil
}

type RenderCmd struct {
	Source string `name:"source" short:"s" help:"Only render this source (coal, gas or oil)."`
	Width  int    `name:"width" short:"w" help:"Output width in columns. Defaults to the terminal width."`
}

func (r *RenderCmd) Run(ctx *Context) error {
	cs, _, err := ctx.Charts()
	if err != nil {
		return err
	}
	cs, err = selectCharts(cs, r.Source)
	if err != nil {
		return err
	}

	width := r.Width
	if width <= 0 {
		width = terminalWidth()
	}
	narrow := width < viewport.DefaultNarrowWidth
	if err := charts.NewTerminal(ctx.Builder.Config(), width, narrow).Render(ctx.Out, cs); err != nil {
		return err
	}
	ctx.rendered(charts.BackendTerminal, cs...)
	return nil
}

type ExportCmd struct {
	Format string `name:"format" short:"f" help:"Export format." default:"html" enum:"html,png,svg"`
	Out    string `name:"out" short:"o" help:"Output file. Images of several sources get the source name appended." required:"" type:"path"`
	Source string `name:"source" short:"s" help:"Only export this source (coal, gas or oil)."`
}

func (e *ExportCmd) Run(ctx *Context) error {
	cs, _, err := ctx.Charts()
	if err != nil {
		return err
	}
	cs, err = selectCharts(cs, e.Source)
	if err != nil {
		return err
	}

	r, err := charts.NewRenderer(e.Format, ctx.Builder.Config(), 0, false)
	if err != nil {
		return err
	}
	if e.Format == charts.BackendHTML || len(cs) == 1 {
		if err := writeFile(e.Out, r, cs); err != nil {
			return err
		}
		ctx.rendered(e.Format, cs...)
		return nil
	}

	// One image per source; a failed chart does not stop the others.
	drawable, failed := charts.Drawable(cs)
	for _, c := range failed {
		ctx.Logger.Warn("skipping chart", "source", c.Source, "err", c.Err)
	}
	var errs []error
	for _, c := range drawable {
		path := sourcePath(e.Out, c.Source)
		if err := writeFile(path, r, []series.Chart{c}); err != nil {
			ctx.Metrics.Failed(c.Source.String())
			ctx.Logger.Error("exporting chart", "source", c.Source, "path", path, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", c.Source, err))
			continue
		}
		ctx.rendered(e.Format, c)
		ctx.Logger.Info("exported chart", "source", c.Source, "path", path)
	}
	return errors.Join(errs...)
}

// sourcePath turns charts.png into charts-coal.png.
func sourcePath(path string, src energy.Source) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + src.String() + ext
}

// writeFile renders cs to path. A failed render leaves no file behind.
func writeFile(path string, r charts.Renderer, cs []series.Chart) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return r.Render(f, cs)
}

package commands

import (
	"fmt"

	"github.com/K25anjali/fossil-energy-graph/internal/energy"
)

type TooltipCmd struct {
	Source string `arg:"" name:"source" help:"Source (coal, gas or oil)." required:"true"`
	Year   int    `arg:"" name:"year" help:"Year to describe." required:"true"`
	Output string `name:"output" short:"o" help:"Output format." default:"text" enum:"text,json,yaml"`
}

func (t *TooltipCmd) Run(ctx *Context) error {
	src, err := energy.ParseSource(t.Source)
	if err != nil {
		return err
	}
	ds, err := ctx.Dataset()
	if err != nil {
		return err
	}

	tip := ctx.Builder.Tooltip(ds, src, t.Year)
	ctx.Metrics.Tooltip()
	if t.Output == OutputText {
		_, err := fmt.Fprintln(ctx.Out, tip.String())
		return err
	}
	return writeStructured(ctx.Out, t.Output, tip)
}

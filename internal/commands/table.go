package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/K25anjali/fossil-energy-graph/internal/charts"
	"github.com/K25anjali/fossil-energy-graph/internal/energy"
	"github.com/K25anjali/fossil-energy-graph/internal/tables"
)

type TableCmd struct {
	Source string `arg:"" name:"source" help:"Source to show (coal, gas or oil)." required:"true"`
	Output string `name:"output" short:"o" help:"Output format." default:"table" enum:"table,json,yaml"`
}

func (t *TableCmd) Run(ctx *Context) error {
	src, err := energy.ParseSource(t.Source)
	if err != nil {
		return err
	}
	cs, _, err := ctx.Charts()
	if err != nil {
		return err
	}
	c, err := chartFor(cs, src)
	if err != nil {
		return err
	}
	if c.Err != nil {
		return c.Err
	}

	if t.Output != OutputTable {
		err = writeStructured(ctx.Out, t.Output, c.Frames)
	} else {
		_, err = tea.NewProgram(tables.Frames(c)).Run()
	}
	if err != nil {
		return err
	}
	ctx.rendered(charts.BackendTerminal, c)
	return nil
}

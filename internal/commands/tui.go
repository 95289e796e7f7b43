package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/K25anjali/fossil-energy-graph/internal/viewport"
)

// TUICmd is the Kong command for the interactive TUI mode.
type TUICmd struct {
	NarrowWidth int `name:"narrow-width" help:"Terminal width below which the charts stack vertically." default:"120" env:"FOSSIL_NARROW_WIDTH"`
}

// Run starts the interactive TUI.
func (t *TUICmd) Run(ctx *Context) error {
	observer := viewport.NewObserver(t.NarrowWidth)

	model := NewTUIModel(TUIOptions{
		Builder:  ctx.Builder,
		Load:     ctx.Dataset,
		Metrics:  ctx.Metrics,
		Logger:   ctx.Logger,
		Observer: observer,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	// Send blocks until the event loop reads the message, and the observer
	// is updated from inside Update. Deliveries may arrive out of order, so
	// the message only asks the model to re-read the observer.
	unsubscribe := observer.Subscribe(func(bool) {
		go p.Send(narrowMsg{})
	})
	defer unsubscribe()

	_, err := p.Run()
	return err
}

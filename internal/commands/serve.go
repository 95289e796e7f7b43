package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/K25anjali/fossil-energy-graph/internal/server"
)

type ServeCmd struct {
	Addr string `name:"addr" short:"a" help:"Listen address." default:":8080" env:"FOSSIL_ADDR"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	ds, err := ctx.Dataset()
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(ctx.Builder, ds, ctx.Metrics, ctx.Logger)
	return srv.ListenAndServe(sigCtx, s.Addr)
}

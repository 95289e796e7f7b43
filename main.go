package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/K25anjali/fossil-energy-graph/internal/commands"
)

func main() {
	// A missing .env is fine; flags and the real environment still apply.
	_ = godotenv.Load()

	ctx := kong.Parse(&commands.Cli,
		kong.Name("fossil"),
		kong.Description("Australian fossil energy production and use, as small multiples with a shared tooltip."),
		kong.UsageOnError(),
	)

	appCtx, closer, err := commands.NewContext(ctx.Command())
	ctx.FatalIfErrorf(err)

	err = ctx.Run(appCtx)
	// FatalIfErrorf exits, so flush the log file first.
	closer.Close()
	ctx.FatalIfErrorf(err)
}

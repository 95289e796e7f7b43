package commands

type ConfigCmd struct {
	Output string `name:"output" short:"o" help:"Output format." default:"yaml" enum:"yaml,json"`
}

func (c *ConfigCmd) Run(ctx *Context) error {
	return writeStructured(ctx.Out, c.Output, ctx.Builder.Config().ToFile())
}

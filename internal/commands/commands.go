package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/K25anjali/fossil-energy-graph/internal/energy"
	"github.com/K25anjali/fossil-energy-graph/internal/logging"
	"github.com/K25anjali/fossil-energy-graph/internal/metrics"
	"github.com/K25anjali/fossil-energy-graph/internal/series"
)

// Context carries what every command needs once the flags are parsed.
type Context struct {
	Logger   *slog.Logger
	Builder  *series.Builder
	Metrics  *metrics.Recorder
	DataPath string
	Out      io.Writer
}

var Cli struct {
	Data     string `help:"Dataset file (YAML, or JSON by extension). Defaults to the embedded dataset." env:"FOSSIL_DATA" type:"path"`
	Config   string `help:"Chart configuration file (YAML)." env:"FOSSIL_CONFIG" type:"path"`
	LogFile  string `name:"log-file" help:"Write logs to this file, rotated." env:"FOSSIL_LOG_FILE" type:"path"`
	LogLevel string `name:"log-level" help:"Log level." default:"info" enum:"debug,info,warn,error" env:"FOSSIL_LOG_LEVEL"`

	TUI        TUICmd     `cmd:"" name:"tui" default:"withargs" help:"Interactive small multiples with a shared tooltip."`
	Render     RenderCmd  `cmd:"" help:"Print the charts to stdout."`
	Export     ExportCmd  `cmd:"" help:"Export the charts as an HTML page or images."`
	Table      TableCmd   `cmd:"" help:"Show the yearly frames of a source."`
	Tooltip    TooltipCmd `cmd:"" help:"Print the tooltip of a source for a year."`
	ShowConfig ConfigCmd  `cmd:"" name:"config" help:"Print the effective chart configuration."`
	Serve      ServeCmd   `cmd:"" help:"Serve the charts over HTTP."`
}

// NewContext builds the shared context from the global flags. command is
// the selected kong command; the TUI owns the terminal so its logs only go
// to the log file.
func NewContext(command string) (*Context, io.Closer, error) {
	var fallback io.Writer = os.Stderr
	if command == "" || strings.HasPrefix(command, "tui") {
		fallback = nil
	}
	logger, closer, err := logging.New(logging.Options{
		File:     Cli.LogFile,
		Level:    Cli.LogLevel,
		Fallback: fallback,
	})
	if err != nil {
		return nil, nil, err
	}

	cfg, err := series.LoadConfig(Cli.Config)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	builder, err := series.NewBuilder(cfg)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}

	return &Context{
		Logger:   logger,
		Builder:  builder,
		Metrics:  metrics.NewRecorder(strings.HasPrefix(command, "serve")),
		DataPath: Cli.Data,
		Out:      os.Stdout,
	}, closer, nil
}

// Dataset loads the configured dataset.
func (c *Context) Dataset() (energy.Dataset, error) {
	ds, err := energy.Load(c.DataPath)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	return ds, nil
}

// Charts loads the dataset and builds every chart. Failed charts are
// logged and returned with their error set.
func (c *Context) Charts() ([]series.Chart, energy.Dataset, error) {
	ds, err := c.Dataset()
	if err != nil {
		return nil, nil, err
	}
	cs := c.Builder.BuildAll(ds)
	for _, ch := range cs {
		src := ch.Source.String()
		if ch.Err != nil {
			c.Metrics.Failed(src)
			c.Logger.Error("building chart", "source", src, "err", ch.Err)
			continue
		}
		c.Metrics.Excluded(src, ch.Excluded)
		if ch.Excluded > 0 {
			c.Logger.Warn("points without a year skipped", "source", src, "count", ch.Excluded)
		}
	}
	return cs, ds, nil
}

// rendered counts the charts of cs that reached the output.
func (c *Context) rendered(backend string, cs ...series.Chart) {
	for _, ch := range cs {
		if ch.Err == nil {
			c.Metrics.Rendered(ch.Source.String(), backend)
		}
	}
}

// chartFor returns the chart of src from cs.
func chartFor(cs []series.Chart, src energy.Source) (series.Chart, error) {
	for _, c := range cs {
		if c.Source == src {
			return c, nil
		}
	}
	return series.Chart{}, fmt.Errorf("no chart for %s", src)
}

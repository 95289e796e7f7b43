package commands

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/K25anjali/fossil-energy-graph/internal/charts"
	"github.com/K25anjali/fossil-energy-graph/internal/energy"
	"github.com/K25anjali/fossil-energy-graph/internal/interaction"
	"github.com/K25anjali/fossil-energy-graph/internal/metrics"
	"github.com/K25anjali/fossil-energy-graph/internal/series"
	"github.com/K25anjali/fossil-energy-graph/internal/tables"
	"github.com/K25anjali/fossil-energy-graph/internal/viewport"
)

// TUIOptions wires the TUI model to its collaborators.
type TUIOptions struct {
	Builder *series.Builder
	Load    func() (energy.Dataset, error)
	Metrics *metrics.Recorder
	Logger  *slog.Logger

	// Observer receives every width change. When nil the model derives the
	// narrow flag itself.
	Observer *viewport.Observer
}

// TUIModel is the main Bubble Tea model for the interactive TUI.
type TUIModel struct {
	builder  *series.Builder
	load     func() (energy.Dataset, error)
	metrics  *metrics.Recorder
	logger   *slog.Logger
	observer *viewport.Observer

	state        TUIState
	err          error
	loadDuration time.Duration
	warning      string

	// Data
	dataset energy.Dataset
	charts  []series.Chart

	// Shared hover state and the tooltips it selects.
	session interaction.Session
	tips    map[energy.Source]series.Tooltip

	// Rendered content
	gridContent string
	table       tables.Model

	// UI state
	width                int
	height               int
	narrow               bool
	focusedPane          FocusedPane
	yearInput            textinput.Model
	spinner              spinner.Model
	showShortcutsOverlay bool
}

// NewTUIModel creates a new TUI model in the loading state.
func NewTUIModel(opts TUIOptions) TUIModel {
	ti := textinput.New()
	ti.Placeholder = "Jump to year..."
	ti.CharLimit = 4
	ti.Width = 12

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	cfg := opts.Builder.Config()
	return TUIModel{
		builder:     opts.Builder,
		load:        opts.Load,
		metrics:     opts.Metrics,
		logger:      logger,
		observer:    opts.Observer,
		state:       StateLoading,
		session:     interaction.NewSession(cfg.Ticks.Min, cfg.Ticks.Max),
		width:       DefaultTerminalWidth,
		height:      DefaultTerminalHeight,
		focusedPane: PaneCharts,
		yearInput:   ti,
		spinner:     NewLoadingSpinner(),
	}
}

func (m TUIModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadDataset(),
	)
}

// loadDataset runs the loader off the event loop.
func (m TUIModel) loadDataset() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		start := time.Now()
		ds, err := load()
		return datasetLoadedMsg{dataset: ds, err: err, duration: time.Since(start)}
	}
}

// applyDataset builds the charts of a freshly loaded dataset.
func (m TUIModel) applyDataset(msg datasetLoadedMsg) TUIModel {
	m.loadDuration = msg.duration
	if msg.err != nil {
		m.state = StateError
		m.err = fmt.Errorf("loading dataset: %w", msg.err)
		m.logger.Error("loading dataset", "err", msg.err)
		return m
	}

	m.state = StateReady
	m.err = nil
	m.dataset = msg.dataset
	m.charts = m.builder.BuildAll(msg.dataset)
	for _, c := range m.charts {
		src := c.Source.String()
		if c.Err != nil {
			m.metrics.Failed(src)
			m.logger.Error("building chart", "source", src, "err", c.Err)
			continue
		}
		m.metrics.Rendered(src, charts.BackendTerminal)
		m.metrics.Excluded(src, c.Excluded)
	}
	m = m.refreshTooltips()
	return m.relayout()
}

// refreshTooltips recomputes the tooltip of every chart for the hovered
// year. All charts follow the same year.
func (m TUIModel) refreshTooltips() TUIModel {
	if !m.session.Active || m.dataset == nil {
		m.tips = nil
		return m
	}
	m.tips = make(map[energy.Source]series.Tooltip, len(m.charts))
	for _, c := range m.charts {
		m.tips[c.Source] = m.builder.Tooltip(m.dataset, c.Source, m.session.Year)
	}
	m.metrics.Tooltip()
	return m
}

// relayout redraws the chart grid and registers the chart regions with
// the session.
func (m TUIModel) relayout() TUIModel {
	if m.state != StateReady {
		return m
	}
	term := charts.NewTerminal(m.builder.Config(), m.width, m.narrow)
	grid, containers := term.Grid(m.charts, m.session, m.tips)
	for i := range containers {
		containers[i] = containers[i].Translate(0, ChromeHeight)
	}
	m.gridContent = grid
	m.session = m.session.SetContainers(containers)

	if m.focusedPane == PaneTable {
		m.table = m.tableFor(m.session.Source)
	}
	return m
}

// tableFor builds the frames table of src, highlighting the hovered year.
func (m TUIModel) tableFor(src energy.Source) tables.Model {
	c, err := chartFor(m.charts, src)
	if err != nil {
		return tables.Model{}
	}
	t := tables.Frames(c)
	if m.session.Active {
		t = t.WithYear(m.session.Year)
	}
	return t
}

// setSession applies a new hover state.
func (m TUIModel) setSession(s interaction.Session) TUIModel {
	changed := s.Active != m.session.Active || s.Year != m.session.Year || s.Source != m.session.Source
	m.session = s
	if !changed {
		return m
	}
	m = m.refreshTooltips()
	return m.relayout()
}

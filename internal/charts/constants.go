package charts

const (
	// ChartHeightRatio determines chart height as width/ChartHeightRatio.
	ChartHeightRatio = 4

	// MinChartHeight is the floor for the historical chart height.
	MinChartHeight = 8

	// BarHeight is the height of the projected bar chart.
	BarHeight = 6

	// MinPanelWidth keeps narrow terminals from collapsing a chart.
	MinPanelWidth = 32

	// PanelGap is the number of columns between side-by-side charts.
	PanelGap = 1

	// YLabelWidth is the fixed width of y-axis labels so every chart has
	// the same plot geometry, with or without a visible axis.
	YLabelWidth = 4

	// AreaOpacity is the fill opacity of stacked areas and bars.
	AreaOpacity = 0.8
)

// Backend names, also used as metric labels and file extensions.
const (
	BackendTerminal = "terminal"
	BackendHTML     = "html"
	BackendPNG      = "png"
	BackendSVG      = "svg"
)

package charts

import (
	"strconv"

	"github.com/NimbleMarkets/ntcharts/barchart"

	"github.com/K25anjali/fossil-energy-graph/internal/series"
)

// ProjectedBars returns the stacked electricity and other values of every
// projected frame. Production is never part of a bar.
func ProjectedBars(c series.Chart) []barchart.BarData {
	barData := make([]barchart.BarData, 0)
	for _, f := range c.Frames {
		if !f.Projected() {
			continue
		}
		values := make([]barchart.BarValue, 0, len(c.Stacked))
		for i, ch := range c.Stacked {
			values = append(values, barchart.BarValue{
				Name:  ch.Label,
				Value: f.Bars[i],
				Style: ChannelStyle(ch),
			})
		}
		barData = append(barData, barchart.BarData{
			Label:  strconv.Itoa(f.Year),
			Values: values,
		})
	}
	return barData
}

// Barchart draws the projected regime of c as stacked bars on the same
// scale as the historical chart.
func Barchart(cfg series.Config, c series.Chart, width, height int) string {
	barData := ProjectedBars(c)
	if len(barData) == 0 {
		return ""
	}

	bc := barchart.New(width, height,
		barchart.WithDataSet(barData),
		barchart.WithMaxValue(YTop(cfg, c)),
		barchart.WithStyles(axisStyle, labelStyle),
	)
	bc.Draw()

	return bc.View()
}

package plot

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/danielpatrickdp/noisyfit/internal/synth"
)

// #region config

// Default pixel dimensions for rendered charts.
const (
	DefaultWidth  = 800
	DefaultHeight = 480
)

const chartTitle = "Linear relationship with controllable noise"

// #endregion config

// #region styles

// pointStyle renders points only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    3,
		DotColor:    col,
	}
}

// lineStyle renders a continuous line with no dots.
func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
	}
}

// #endregion styles

// #region spec

// Spec builds the chart specification: the observed points as markers and the
// fitted line over them, titled and axis-labeled, with a horizontal legend
// along the top. Purely declarative; nothing is computed here.
func Spec(ds synth.Dataset, yhat []float64) *chart.Chart {
	observations := chart.ContinuousSeries{
		Name:    "observations",
		Style:   pointStyle(chart.ColorBlue),
		XValues: ds.X,
		YValues: ds.Y,
	}
	fitLine := chart.ContinuousSeries{
		Name:    "fit",
		Style:   lineStyle(chart.ColorRed),
		XValues: ds.X,
		YValues: yhat,
	}

	c := &chart.Chart{
		Title:  chartTitle,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		XAxis:  chart.XAxis{Name: "x"},
		YAxis:  chart.YAxis{Name: "y"},
		Series: []chart.Series{observations, fitLine},
	}
	c.Elements = []chart.Renderable{chart.LegendThin(c)}
	return c
}

// #endregion spec

// #region render

// RenderPNG rasterizes a chart spec to PNG bytes.
func RenderPNG(c *chart.Chart) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// #endregion render

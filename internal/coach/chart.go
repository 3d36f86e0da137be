package coach

import (
	"errors"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"speechcoach/models"
)

// ErrNoProgressData means the gateway reported an empty history; callers
// show the empty-state message instead of a chart.
var ErrNoProgressData = errors.New("coach: no progress data")

// RenderProgressChart draws the three score lines against the date labels
// and writes a PNG. A series with the empty flag (or no points) returns
// ErrNoProgressData without constructing a chart.
func RenderProgressChart(series *models.ProgressSeries, w io.Writer) error {
	if series.Empty || len(series.Dates) == 0 {
		return ErrNoProgressData
	}

	ticks := make([]chart.Tick, len(series.Dates))
	for i, label := range series.Dates {
		ticks[i] = chart.Tick{Value: float64(i), Label: label}
	}

	graph := chart.Chart{
		Title: "Speaking progress",
		XAxis: chart.XAxis{Ticks: ticks},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: []chart.Series{
			scoreLine("Confidence", series.Confidence, chart.ColorBlue),
			scoreLine("Clarity", series.Clarity, chart.ColorGreen),
			scoreLine("Nervousness", series.Nervousness, chart.ColorRed),
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}

// scoreLine builds one series; a single data point is doubled so the
// renderer has a drawable range.
func scoreLine(name string, values []float64, color drawing.Color) chart.Series {
	xs := make([]float64, len(values))
	for i := range values {
		xs[i] = float64(i)
	}
	if len(values) == 1 {
		xs = append(xs, 1)
		values = append(values, values[0])
	}
	return chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: values,
		Style: chart.Style{
			StrokeColor: color,
			StrokeWidth: 2,
		},
	}
}

package chart

import (
	"errors"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Geetheshwar420/RandomWalk/internal/model"
)

// DefaultFilename is the download base name when the title is blank.
const DefaultFilename = "random_walk"

// DefaultTitle is the chart title when the user supplied none.
const DefaultTitle = "Random Walk of Stock Price"

// RenderPNG draws the series as a PNG line chart: blue line, red
// markers.
func RenderPNG(series model.Series, title string, width, height int, w io.Writer) error {
	if len(series) == 0 {
		return errors.New("no data to chart")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}

	xs := make([]float64, len(series))
	ys := make([]float64, len(series))
	for i, p := range series {
		xs[i] = float64(p.Time)
		ys[i] = p.Price
	}

	graph := chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Name: "Time"},
		YAxis:  chart.YAxis{Name: "Price"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeColor: drawing.ColorBlue,
					StrokeWidth: 2,
					DotColor:    drawing.ColorRed,
					DotWidth:    4,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return graph.Render(chart.PNG, w)
}

// Filename derives the download base name from the user title: trim,
// collapse whitespace runs to underscores, fall back to
// DefaultFilename when nothing is left.
func Filename(title string) string {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return DefaultFilename
	}
	return strings.Join(fields, "_")
}

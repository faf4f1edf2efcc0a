package chart

import (
	"errors"
	"io"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/leopardracer/network-app/internal/era"
)

var ErrNotEnoughPoints = errors.New("at least two points are required to draw a line")

// RenderPNG draws both series as a line chart.
func RenderPNG(w io.Writer, d *Data) error {
	if len(d.Series) != 2 || len(d.Series[0]) < 2 {
		return ErrNotEnoughPoints
	}

	n := len(d.Series[0])
	dates := d.Dates
	if len(dates) > n {
		dates = dates[:n]
	}
	if len(dates) < n {
		return ErrNotEnoughPoints
	}

	graph := gochart.Chart{
		Title:  d.Title,
		Width:  1024,
		Height: 480,
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeValueFormatterWithFormat(era.LabelLayout),
		},
		YAxis: gochart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return FormatNumber(f)
				}
				return ""
			},
		},
		Series: []gochart.Series{
			lineSeries(d.Dimensions[0], dates, d.Series[0]),
			lineSeries(d.Dimensions[1], dates, d.Series[1]),
		},
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	return graph.Render(gochart.PNG, w)
}

func lineSeries(name string, dates []time.Time, values []float64) gochart.TimeSeries {
	return gochart.TimeSeries{
		Name:    name,
		XValues: dates,
		YValues: values,
	}
}

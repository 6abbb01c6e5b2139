// Package charts renders the analytics charts as PNG images.
package charts

import (
	"bytes"
	"errors"

	"price-predictor/internal/dto/response"

	chart "github.com/wcharczuk/go-chart"
	"github.com/wcharczuk/go-chart/drawing"
)

const (
	width  = 800
	height = 400
)

var (
	barFill     = drawing.Color{R: 76, G: 114, B: 176, A: 160}
	barStroke   = drawing.Color{R: 76, G: 114, B: 176, A: 255}
	densityLine = drawing.Color{R: 221, G: 132, B: 82, A: 255}
)

// Histogram draws the binned counts as a filled step outline with the density curve on top
func Histogram(h response.Histogram, xLabel, yLabel string) ([]byte, error) {
	if len(h.Counts) == 0 || len(h.Edges) != len(h.Counts)+1 {
		return nil, errors.New("histogram has no bins")
	}

	xs := make([]float64, 0, 2*len(h.Counts)+2)
	ys := make([]float64, 0, 2*len(h.Counts)+2)
	xs, ys = append(xs, h.Edges[0]), append(ys, 0)
	top := 0.0
	for i, c := range h.Counts {
		xs = append(xs, h.Edges[i], h.Edges[i+1])
		ys = append(ys, float64(c), float64(c))
		if float64(c) > top {
			top = float64(c)
		}
	}
	xs, ys = append(xs, h.Edges[len(h.Edges)-1]), append(ys, 0)

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "count",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				Show:        true,
				StrokeColor: barStroke,
				StrokeWidth: 1,
				FillColor:   barFill,
			},
		},
	}

	if len(h.DensityX) > 1 && len(h.DensityX) == len(h.DensityY) {
		for _, y := range h.DensityY {
			if y > top {
				top = y
			}
		}
		series = append(series, chart.ContinuousSeries{
			Name:    "density",
			XValues: h.DensityX,
			YValues: h.DensityY,
			Style: chart.Style{
				Show:        true,
				StrokeColor: densityLine,
				StrokeWidth: 2,
			},
		})
	}

	graph := chart.Chart{
		Width:      width,
		Height:     height,
		Title:      "Probability Distribution",
		TitleStyle: chart.StyleShow(),
		XAxis: chart.XAxis{
			Name:      xLabel,
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
			Range: &chart.ContinuousRange{
				Min: h.Edges[0],
				Max: h.Edges[len(h.Edges)-1],
			},
		},
		YAxis: chart.YAxis{
			Name:      yLabel,
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: top * 1.1,
			},
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Counts draws one bar per distinct prediction value
func Counts(counts []response.ValueCount, title string) ([]byte, error) {
	if len(counts) == 0 {
		return nil, errors.New("no prediction values to chart")
	}

	top := 0.0
	bars := make([]chart.Value, len(counts))
	for i, c := range counts {
		bars[i] = chart.Value{
			Label: c.Label,
			Value: float64(c.Count),
			Style: chart.Style{
				Show:        true,
				FillColor:   barStroke,
				StrokeColor: barStroke,
			},
		}
		if float64(c.Count) > top {
			top = float64(c.Count)
		}
	}

	graph := chart.BarChart{
		Title:      title,
		TitleStyle: chart.StyleShow(),
		Width:      width,
		Height:     height,
		BarWidth:   120,
		XAxis:      chart.StyleShow(),
		YAxis: chart.YAxis{
			Style: chart.StyleShow(),
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: top * 1.1,
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

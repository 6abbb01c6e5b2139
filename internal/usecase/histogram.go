package usecase

import (
	"math"

	"price-predictor/internal/dto/response"

	"github.com/montanaflynn/stats"
)

// BuildHistogram bins values into equal-width bins over [min, max]. When all
// values are equal the range is widened by 0.5 on each side. The density
// overlay is a Gaussian KDE with Scott's bandwidth, scaled to bin counts.
func BuildHistogram(values []float64, bins int) response.Histogram {
	h := response.Histogram{Samples: len(values)}
	if len(values) == 0 || bins < 1 {
		return h
	}

	lo, _ := stats.Min(values)
	hi, _ := stats.Max(values)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	width := (hi - lo) / float64(bins)

	h.Edges = make([]float64, bins+1)
	for i := range h.Edges {
		h.Edges[i] = lo + float64(i)*width
	}
	h.Edges[bins] = hi

	h.Counts = make([]int, bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		h.Counts[idx]++
	}

	sd, err := stats.StdDevS(values)
	if err != nil || sd == 0 || math.IsNaN(sd) {
		return h
	}

	n := float64(len(values))
	bw := sd * math.Pow(n, -0.2)
	scale := n * width
	norm := 1 / (n * bw * math.Sqrt(2*math.Pi))

	h.DensityX = make([]float64, densityPoints)
	h.DensityY = make([]float64, densityPoints)
	step := (hi - lo) / float64(densityPoints-1)
	for i := 0; i < densityPoints; i++ {
		x := lo + float64(i)*step
		var sum float64
		for _, v := range values {
			z := (x - v) / bw
			sum += math.Exp(-0.5 * z * z)
		}
		h.DensityX[i] = x
		h.DensityY[i] = sum * norm * scale
	}

	return h
}

package response

// AnalyticsReport holds everything the analytics page renders
type AnalyticsReport struct {
	Rows int `json:"rows"`

	// ContinuationPercent is nil when no row carries a prediction
	ContinuationPercent *float64 `json:"continuation_percent"`
	ContinuationLabel   string   `json:"continuation_label"`
	TrueCount           int      `json:"true_count"`
	NonNullPredictions  int      `json:"non_null_predictions"`

	Histogram        Histogram    `json:"histogram"`
	PredictionCounts []ValueCount `json:"prediction_counts"`

	Preview TablePreview `json:"preview"`
}

// Histogram is a binned distribution of probability values with an optional density overlay
type Histogram struct {
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
	// DensityX/DensityY trace the kernel density estimate scaled to counts.
	// Both are empty when fewer than two distinct samples exist.
	DensityX []float64 `json:"density_x,omitempty"`
	DensityY []float64 `json:"density_y,omitempty"`
	Samples  int       `json:"samples"`
}

// ValueCount is one bar of the prediction count chart
type ValueCount struct {
	Value bool   `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AnalyticsCharts are the rendered PNG charts
type AnalyticsCharts struct {
	Histogram []byte
	Counts    []byte
}

package response

import "fmt"

// PredictionResult is the subset of the endpoint response this app consumes
type PredictionResult struct {
	WillBuyAfterPriceIncrease bool    `json:"will_buy_after_price_increase"`
	Probability               float64 `json:"probability"`
}

const (
	LabelWillBuy    = "✅ Will Buy"
	LabelWillNotBuy = "❌ Will Not Buy"
)

// PredictionView is what the single-record flow presents
type PredictionView struct {
	WillBuy     bool    `json:"will_buy_after_price_increase"`
	Probability float64 `json:"probability"`
	Label       string  `json:"label"`
	Percentage  string  `json:"percentage"`
}

func PredictionToView(result *PredictionResult) PredictionView {
	label := LabelWillNotBuy
	if result.WillBuyAfterPriceIncrease {
		label = LabelWillBuy
	}

	return PredictionView{
		WillBuy:     result.WillBuyAfterPriceIncrease,
		Probability: result.Probability,
		Label:       label,
		Percentage:  FormatPercent(result.Probability),
	}
}

// FormatPercent renders a fraction as a percentage with two decimals (0.73 -> "73.00%")
func FormatPercent(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*100)
}

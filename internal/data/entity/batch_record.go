package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"price-predictor/internal/dto/request"
)

const (
	ColumnPrediction  = "Prediction"
	ColumnProbability = "Probability"
)

// RequestColumns are the headers a batch upload must carry, matching the request field names
var RequestColumns = []string{
	"total_spent",
	"avg_order_value",
	"avg_purchase_frequency",
	"days_since_last_purchase",
	"discount_behavior",
	"loyalty_program_member",
	"days_in_advance",
	"flight_type",
	"cabin_class",
}

// BatchRecord is one uploaded row mapped to its request and, once sent, its outputs.
// Prediction and Probability stay nil when the call for the row failed.
type BatchRecord struct {
	Row         int
	Request     request.PredictionRequest
	Prediction  *bool
	Probability *float64
}

// Succeeded reports whether the row received a prediction
func (r *BatchRecord) Succeeded() bool {
	return r.Prediction != nil && r.Probability != nil
}

// AugmentedTable is the uploaded table with Prediction and Probability attached row by row.
// Existing columns of the same name are overwritten in place, otherwise both are appended.
type AugmentedTable struct {
	Headers       []string
	base          *Table
	predCol       int
	probCol       int
	Predictions   []*bool
	Probabilities []*float64
}

func NewAugmentedTable(base *Table, predictions []*bool, probabilities []*float64) *AugmentedTable {
	headers := append([]string(nil), base.Headers...)

	predCol := base.ColumnIndex(ColumnPrediction)
	if predCol < 0 {
		headers = append(headers, ColumnPrediction)
		predCol = len(headers) - 1
	}
	probCol := base.ColumnIndex(ColumnProbability)
	if probCol < 0 {
		headers = append(headers, ColumnProbability)
		probCol = len(headers) - 1
	}

	return &AugmentedTable{
		Headers:       headers,
		base:          base,
		predCol:       predCol,
		probCol:       probCol,
		Predictions:   predictions,
		Probabilities: probabilities,
	}
}

// Len returns the number of data rows
func (t *AugmentedTable) Len() int {
	return len(t.base.Rows)
}

// Value returns the typed cell at row/col: bool or float64 for the output
// columns, nil for an absent output, float64 for cells that were numeric in
// the upload, string otherwise.
func (t *AugmentedTable) Value(row, col int) any {
	switch col {
	case t.predCol:
		if row < len(t.Predictions) && t.Predictions[row] != nil {
			return *t.Predictions[row]
		}
		return nil
	case t.probCol:
		if row < len(t.Probabilities) && t.Probabilities[row] != nil {
			return *t.Probabilities[row]
		}
		return nil
	}
	cells := t.base.Rows[row]
	if col >= len(cells) {
		return ""
	}
	if t.base.IsNumeric(row, col) {
		if f, err := strconv.ParseFloat(strings.TrimSpace(cells[col]), 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
	return cells[col]
}

// Table flattens the augmented table back into string cells
func (t *AugmentedTable) Table() *Table {
	out := &Table{Headers: t.Headers, Rows: make([][]string, t.Len())}
	for r := range out.Rows {
		row := make([]string, len(t.Headers))
		for c := range t.Headers {
			row[c] = FormatCell(t.Value(r, c))
		}
		out.Rows[r] = row
	}
	return out
}

// FormatCell renders a typed cell the way spreadsheet tools display it
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

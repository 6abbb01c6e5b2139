package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"price-predictor/internal/data/entity"
	"price-predictor/internal/data/repository"
	"price-predictor/internal/dto/request"
)

// BuildRecords maps every table row to a request. Integer fields are truncated
// from whatever numeric form the sheet stored them in ("1.0" -> 1).
func BuildRecords(t *entity.Table) ([]entity.BatchRecord, error) {
	if missing := t.MissingColumns(entity.RequestColumns...); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", repository.ErrInvalidFile, strings.Join(missing, ", "))
	}

	col := make(map[string]int, len(entity.RequestColumns))
	for _, name := range entity.RequestColumns {
		col[name] = t.ColumnIndex(name)
	}

	records := make([]entity.BatchRecord, len(t.Rows))
	for i := range t.Rows {
		p := rowParser{table: t, row: i, col: col}

		req := request.PredictionRequest{
			TotalSpent:            p.number("total_spent"),
			AvgOrderValue:         p.number("avg_order_value"),
			AvgPurchaseFrequency:  p.number("avg_purchase_frequency"),
			DaysSinceLastPurchase: p.integer("days_since_last_purchase"),
			DiscountBehavior:      p.number("discount_behavior"),
			LoyaltyProgramMember:  p.integer("loyalty_program_member"),
			DaysInAdvance:         p.integer("days_in_advance"),
			FlightType:            p.text("flight_type"),
			CabinClass:            p.text("cabin_class"),
		}
		if p.err != nil {
			return nil, p.err
		}

		records[i] = entity.BatchRecord{Row: i + 1, Request: req}
	}

	return records, nil
}

// rowParser keeps the first parse error of a row
type rowParser struct {
	table *entity.Table
	row   int
	col   map[string]int
	err   error
}

func (p *rowParser) cell(name string) string {
	return p.table.Cell(p.row, p.col[name])
}

func (p *rowParser) fail(name, value, kind string) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: row %d column %s: cannot read %q as %s",
			repository.ErrInvalidFile, p.row+1, name, value, kind)
	}
}

func (p *rowParser) number(name string) float64 {
	v := p.cell(name)
	f, ok := ParseNumber(v)
	if !ok {
		p.fail(name, v, "a number")
	}
	return f
}

func (p *rowParser) integer(name string) int {
	v := p.cell(name)
	f, ok := ParseNumber(v)
	if !ok {
		p.fail(name, v, "a number")
		return 0
	}
	f = math.Trunc(f)
	if f < math.MinInt || f >= math.MaxInt {
		p.fail(name, v, "a whole number in range")
		return 0
	}
	return int(f)
}

func (p *rowParser) text(name string) string {
	return p.cell(name)
}

// ParseNumber reads a sheet cell as a finite number; TRUE/FALSE read as 1/0
func ParseNumber(v string) (float64, bool) {
	switch strings.ToUpper(v) {
	case "TRUE":
		return 1, true
	case "FALSE":
		return 0, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

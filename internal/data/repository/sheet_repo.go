package repository

import (
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"price-predictor/internal/data/entity"

	"github.com/dustin/go-humanize"
	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	OutputFileName  = "predictions.xlsx"
	OutputSheetName = "Sheet1"

	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type SheetRepository interface {
	// ReadTable parses an .xlsx (first sheet) or .csv upload, picked by file extension
	ReadTable(name string, r io.Reader) (*entity.Table, error)
	// WriteWorkbook encodes the augmented table as an .xlsx workbook
	WriteWorkbook(t *entity.AugmentedTable) ([]byte, error)
}

type sheetRepository struct {
	log *zap.Logger
}

func NewSheetRepository(log *zap.Logger) SheetRepository {
	return &sheetRepository{
		log: log.With(zap.String("repository", "sheet")),
	}
}

func (r *sheetRepository) ReadTable(name string, rd io.Reader) (*entity.Table, error) {
	var (
		table *entity.Table
		err   error
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		table, err = r.readXLSX(rd)
	case ".csv":
		table, err = r.readCSV(rd)
	default:
		return nil, invalidFile("unsupported file type %q, upload an .xlsx or .csv file", filepath.Ext(name))
	}
	if err != nil {
		r.log.Warn("Failed to read uploaded table",
			zap.String("file", name),
			zap.Error(err),
		)
		return nil, err
	}

	r.log.Debug("Uploaded table read",
		zap.String("file", name),
		zap.Int("rows", len(table.Rows)),
		zap.Int("columns", len(table.Headers)),
	)

	return table, nil
}

// readXLSX reads stored cell values, not the text a number format would
// display ("1,234.50", "50%"). Boolean cells read as TRUE/FALSE.
func (r *sheetRepository) readXLSX(rd io.Reader) (*entity.Table, error) {
	f, err := excelize.OpenReader(rd)
	if err != nil {
		return nil, invalidFile("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, invalidFile("workbook has no sheets")
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, invalidFile("read sheet %q: %v", sheet, err)
	}

	numeric := make([][]bool, len(rows))
	for i, row := range rows {
		numeric[i] = make([]bool, len(row))
		for j, v := range row {
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, invalidFile("read sheet %q: %v", sheet, err)
			}
			kind, err := f.GetCellType(sheet, cell)
			if err != nil {
				return nil, invalidFile("read cell %s: %v", cell, err)
			}
			switch kind {
			case excelize.CellTypeBool:
				row[j] = boolText(v)
			case excelize.CellTypeUnset, excelize.CellTypeNumber:
				numeric[i][j] = isNumber(v)
			}
		}
	}

	return toTable(rows, numeric)
}

// readCSV carries no cell types, so a column counts as numeric when every
// non-empty cell in it parses as a number.
func (r *sheetRepository) readCSV(rd io.Reader) (*entity.Table, error) {
	records, err := gocsv.LazyCSVReader(rd).ReadAll()
	if err != nil {
		return nil, invalidFile("read csv: %v", err)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}

	table, err := toTable(records, nil)
	if err != nil {
		return nil, err
	}
	table.Numeric = numericColumns(table)
	return table, nil
}

// toTable trims the header row and drops blank rows; numeric, when given,
// is aligned with records and filtered the same way.
func toTable(records [][]string, numeric [][]bool) (*entity.Table, error) {
	if len(records) == 0 {
		return nil, invalidFile("file is empty")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}
	for len(headers) > 0 && headers[len(headers)-1] == "" {
		headers = headers[:len(headers)-1]
	}
	if len(headers) == 0 {
		return nil, invalidFile("header row is empty")
	}

	table := &entity.Table{Headers: headers, Rows: make([][]string, 0, len(records)-1)}
	for i, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		row := make([]string, len(headers))
		copy(row, rec)
		table.Rows = append(table.Rows, row)

		if numeric != nil {
			kinds := make([]bool, len(headers))
			copy(kinds, numeric[i+1])
			table.Numeric = append(table.Numeric, kinds)
		}
	}

	return table, nil
}

func numericColumns(t *entity.Table) [][]bool {
	numericCol := make([]bool, len(t.Headers))
	for c := range t.Headers {
		seen := false
		numericCol[c] = true
		for r := range t.Rows {
			v := t.Cell(r, c)
			if v == "" {
				continue
			}
			seen = true
			if !isNumber(v) {
				numericCol[c] = false
				break
			}
		}
		numericCol[c] = numericCol[c] && seen
	}

	numeric := make([][]bool, len(t.Rows))
	for r := range t.Rows {
		numeric[r] = make([]bool, len(t.Headers))
		for c := range t.Headers {
			numeric[r][c] = numericCol[c] && t.Cell(r, c) != ""
		}
	}
	return numeric
}

func isNumber(v string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}

func boolText(v string) string {
	switch strings.TrimSpace(v) {
	case "1":
		return "TRUE"
	case "0":
		return "FALSE"
	}
	return v
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (r *sheetRepository) WriteWorkbook(t *entity.AugmentedTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for c, h := range t.Headers {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStr(OutputSheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for row := 0; row < t.Len(); row++ {
		for c := range t.Headers {
			v := t.Value(row, c)
			if v == nil || v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(OutputSheetName, cell, v); err != nil {
				r.log.Error("Failed to write cell", zap.String("cell", cell), zap.Error(err))
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		r.log.Error("Failed to encode workbook", zap.Error(err))
		return nil, err
	}

	r.log.Debug("Workbook encoded",
		zap.Int("rows", t.Len()),
		zap.String("size", humanize.Bytes(uint64(buf.Len()))),
	)

	return buf.Bytes(), nil
}

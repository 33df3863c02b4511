package excel

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"kastelo.dev/ina219"
)

// Table is the first sheet of a workbook: a header row and the data rows
// below it, as raw cell text.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadFile loads the first sheet of the workbook at path.
func ReadFile(path string) (*Table, error) {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ina219.FileAccessError{Op: "open", Path: path, Err: err}
	}
	defer xlsx.Close()

	t, err := readTable(xlsx)
	if err != nil {
		return nil, &ina219.FileAccessError{Op: "read", Path: path, Err: err}
	}
	return t, nil
}

// ReadTable loads the first sheet of the workbook read from r.
func ReadTable(r io.Reader) (*Table, error) {
	xlsx, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer xlsx.Close()
	return readTable(xlsx)
}

func readTable(xlsx *excelize.File) (*Table, error) {
	sheets := xlsx.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := xlsx.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	var t Table
	if len(rows) > 0 {
		t.Header = rows[0]
		t.Rows = rows[1:]
	}
	return &t, nil
}

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	return slices.Index(t.Header, name)
}

// Floats returns the named column as numbers, in row order. Empty or
// non-numeric cells become NaN.
func (t *Table) Floats(name string) ([]float64, error) {
	idx := t.Index(name)
	if idx < 0 {
		return nil, &ina219.SchemaError{Column: name}
	}

	res := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		res[i] = math.NaN()
		if idx >= len(row) {
			continue
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64); err == nil {
			res[i] = v
		}
	}
	return res, nil
}

package excel

import (
	"os"
	"slices"

	"github.com/xuri/excelize/v2"
	"kastelo.dev/ina219"
)

// Options control optional extras in the generated workbook. The table
// itself is the same regardless.
type Options struct {
	// Chart embeds a Current vs Calibration line chart next to the table.
	Chart bool
}

// Window sizes are in twips. A table column is 16 characters wide; the
// chart takes a spacer column and its own 720 pixels.
const (
	columnTwips = 1800
	chartTwips  = 12000
)

var columnFormats = []struct {
	name   string
	format string
}{
	{"Imax_A", "0.000"},
	{"LSB_A", "0.000E+00"},
}

// RecordsXLSX returns a workbook with a single sheet holding the header row
// and one row per record, in order.
func RecordsXLSX(recs []ina219.Record, opts Options) ([]byte, error) {
	xlsx := excelize.NewFile()
	defer xlsx.Close()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "kastelo.dev/ina219",
	})

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if err := writeRecordsSheet(xlsx, sheet, recs); err != nil {
		return nil, err
	}

	if opts.Chart && len(recs) > 0 {
		if err := addCurrentChart(xlsx, sheet, len(recs)); err != nil {
			return nil, err
		}
	}

	width, height := windowSize(opts.Chart && len(recs) > 0)
	for i := range xlsx.WorkBook.BookViews.WorkBookView {
		view := &xlsx.WorkBook.BookViews.WorkBookView[i]
		view.WindowWidth = width
		view.WindowHeight = height
	}

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the records workbook to path, replacing any existing
// file.
func WriteFile(path string, recs []ina219.Record, opts Options) error {
	bs, err := RecordsXLSX(recs, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, bs, 0o644); err != nil {
		return &ina219.FileAccessError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func writeRecordsSheet(xlsx *excelize.File, sheet string, recs []ina219.Record) error {
	header := slices.Clone(ina219.Columns)
	if err := xlsx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	row := 2
	for _, rec := range recs {
		vals := rec.Values()
		if err := xlsx.SetSheetRow(sheet, cell(1, row), &vals); err != nil {
			return err
		}
		row++
	}

	last := lastColumn()
	_ = xlsx.SetColWidth(sheet, colName(1), colName(last), 16)

	style, _ := xlsx.NewStyle(headerStyle())
	_ = xlsx.SetCellStyle(sheet, cell(1, 1), cell(last, 1), style)

	_ = xlsx.SetPanes(sheet, &excelize.Panes{
		ActivePane:  "bottomLeft",
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	})

	if len(recs) > 0 {
		for _, cf := range columnFormats {
			col := column(cf.name)
			style, _ := xlsx.NewStyle(numberFormat(cf.format))
			_ = xlsx.SetCellStyle(sheet, cell(col, 2), cell(col, row-1), style)
		}
	}

	return nil
}

// column returns the 1-based sheet column of the named record column.
func column(name string) int {
	return slices.Index(ina219.Columns, name) + 1
}

func lastColumn() int {
	return len(ina219.Columns)
}

// windowSize returns the workbook window width and height that show the
// whole table, and the chart beside it if there is one.
func windowSize(chart bool) (width, height int) {
	width = (len(ina219.Columns) + 1) * columnTwips
	if chart {
		width += chartTwips
	}
	return width, width * 2 / 3
}

package excel

import (
	"dario.cat/mergo"
	"github.com/xuri/excelize/v2"
)

// cell returns the A1 reference for a 1-based column and row.
func cell(col, row int) string {
	ref, _ := excelize.CoordinatesToCellName(col, row)
	return ref
}

// absCell is like cell but returns an absolute reference ($A$1), as chart
// ranges need.
func absCell(col, row int) string {
	ref, _ := excelize.CoordinatesToCellName(col, row, true)
	return ref
}

func colName(col int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return name
}

// headerStyle is bold, centered and underlined with a thin rule.
func headerStyle() *excelize.Style {
	return mergeStyles(
		&excelize.Style{Font: &excelize.Font{Bold: true}},
		&excelize.Style{Alignment: &excelize.Alignment{Horizontal: "center"}},
		&excelize.Style{Border: []excelize.Border{{Type: "bottom", Color: "#000000", Style: 1}}},
	)
}

func numberFormat(format string) *excelize.Style {
	return &excelize.Style{CustomNumFmt: &format}
}

// mergeStyles folds ext into base, later styles winning.
func mergeStyles(base *excelize.Style, ext ...*excelize.Style) *excelize.Style {
	for _, e := range ext {
		_ = mergo.Merge(base, e, mergo.WithOverride)
	}
	return base
}

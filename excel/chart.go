package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// addCurrentChart places a line chart of Current_mA over Calibration to the
// right of the table. Calibration values are used as categories, so points
// are spaced in row order.
func addCurrentChart(xlsx *excelize.File, sheet string, rows int) error {
	first, last := 2, rows+1
	calCol, curCol := column("Calibration"), column("Current_mA")

	return xlsx.AddChart(sheet, cell(lastColumn()+2, 2), &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{
				Name:       sheet + "!" + absCell(curCol, 1),
				Categories: fmt.Sprintf("%s!%s:%s", sheet, absCell(calCol, first), absCell(calCol, last)),
				Values:     fmt.Sprintf("%s!%s:%s", sheet, absCell(curCol, first), absCell(curCol, last)),
				Line:       excelize.ChartLine{Width: 1.5},
				Marker:     excelize.ChartMarker{Symbol: "circle", Size: 5},
			},
		},
		Title:  []excelize.RichTextRun{{Text: "Current vs Calibration"}},
		Legend: excelize.ChartLegend{Position: "none"},
		XAxis: excelize.ChartAxis{
			MajorGridLines: true,
			Title:          []excelize.RichTextRun{{Text: "Calibration"}},
		},
		YAxis: excelize.ChartAxis{
			MajorGridLines: true,
			Title:          []excelize.RichTextRun{{Text: "Current (mA)"}},
		},
		Dimension: excelize.ChartDimension{Width: 720, Height: 432},
	})
}

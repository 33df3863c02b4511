package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kingpin"
	"kastelo.dev/ina219/chart"
)

func main() {
	inFile := kingpin.Arg("input", "Excel file produced by ina219-parse").Default("ina219_results.xlsx").String()
	save := kingpin.Flag("save", "Save the chart to this file (png, svg, pdf) instead of displaying it").String()
	kingpin.Parse()

	var viewer chart.Viewer = chart.SystemViewer{}
	if *save != "" {
		viewer = chart.FileViewer{Path: *save}
	}

	if err := chart.Render(*inFile, viewer); err != nil {
		slog.Error("Error rendering chart", "error", err)
		os.Exit(1)
	}
}

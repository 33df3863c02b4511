package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kingpin"
	"kastelo.dev/ina219/excel"
)

func main() {
	logFile := kingpin.Arg("log", "INA219 calibration log").Default("ina219_log.txt").String()
	outFile := kingpin.Arg("output", "Excel file to write").Default("ina219_results.xlsx").String()
	chart := kingpin.Flag("chart", "Embed a Current vs Calibration chart in the workbook").Bool()
	kingpin.Parse()

	if _, err := excel.Convert(*logFile, *outFile, excel.Options{Chart: *chart}); err != nil {
		slog.Error("Error converting log", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Parsing complete, data saved to: %s\n", *outFile)
}

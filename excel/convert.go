package excel

import "kastelo.dev/ina219"

// Convert parses the log at logPath and writes the matching records to a
// workbook at outputPath. It returns the number of data rows written.
func Convert(logPath, outputPath string, opts Options) (int, error) {
	recs, err := ina219.ParseFile(logPath)
	if err != nil {
		return 0, err
	}
	if err := WriteFile(outputPath, recs, opts); err != nil {
		return 0, err
	}
	return len(recs), nil
}

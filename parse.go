package ina219

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var dataLineExp = regexp.MustCompile(`DATA: READ(\d+), Imax=(\d+) mA \(([\d.]+) A\), LSB=([\d.eE+-]+) A, Scale=(\d+), CAL=(\d+) \(0x[0-9A-Fa-f]+\), Bus=(\d+) mV, Current=(-?\d+) mA, Shunt=(\d+) mV`)

// ParseFile reads the log at path and returns the records of all matching
// lines.
func ParseFile(path string) ([]Record, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Op: "open", Path: path, Err: err}
	}
	defer fd.Close()

	recs, err := Parse(fd)
	if err != nil {
		return nil, &FileAccessError{Op: "read", Path: path, Err: err}
	}
	return recs, nil
}

// Parse scans r line by line and returns a Record for every line
// containing a DATA entry, in input order. Other lines are skipped. Lines
// end at \n, \r\n or a lone \r and may be of any length.
func Parse(r io.Reader) ([]Record, error) {
	// UTF-8 unless a byte order mark says otherwise.
	r = transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	var recs []Record

	br := bufio.NewReader(r)
	for {
		chunk, err := br.ReadString('\n')
		// A bare \r also ends a line, as in serial terminal captures.
		for _, line := range strings.Split(chunk, "\r") {
			if rec, ok := ParseLine(line); ok {
				recs = append(recs, rec)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading log: %w", err)
		}
	}

	return recs, nil
}

// ParseLine extracts a Record from the first DATA entry in line. It returns
// false if there is none, or if a captured number does not convert.
func ParseLine(line string) (Record, bool) {
	m := dataLineExp.FindStringSubmatch(line)
	if m == nil {
		return Record{}, false
	}

	var p numParser
	rec := Record{
		Read:           p.parseInt(m[1]),
		ImaxMA:         p.parseInt(m[2]),
		ImaxA:          p.parseFloat(m[3]),
		LSBA:           p.parseFloat(m[4]),
		Scale:          p.parseInt(m[5]),
		Calibration:    p.parseInt(m[6]),
		BusVoltageMV:   p.parseInt(m[7]),
		CurrentMA:      p.parseInt(m[8]),
		ShuntVoltageMV: p.parseInt(m[9]),
	}
	if p.err != nil {
		return Record{}, false
	}
	return rec, true
}

// numParser keeps the first conversion error so a row of fields can be
// converted without checking each one.
type numParser struct {
	err error
}

func (p *numParser) parseInt(s string) int {
	if p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(s)
	p.err = err
	return v
}

func (p *numParser) parseFloat(s string) float64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	p.err = err
	return v
}

package ina219

import (
	"errors"
	"io/fs"
	"os"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	_, err := os.Open("testdata/missing.txt")
	cases := []struct {
		err error
		out string
	}{
		{&FileAccessError{Op: "open", Path: "testdata/missing.txt", Err: err}, "open testdata/missing.txt: no such file or directory"},
		{&FileAccessError{Op: "write", Path: "out.xlsx", Err: errors.New("disk full")}, "write out.xlsx: disk full"},
		{&SchemaError{Column: "Calibration"}, "missing column: Calibration"},
	}

	for _, c := range cases {
		if msg := c.err.Error(); msg != c.out {
			t.Errorf("%q, expected %q", msg, c.out)
		}
	}

	if !errors.Is(cases[0].err, fs.ErrNotExist) {
		t.Error("cause not unwrapped")
	}
}

package ina219

import (
	"errors"
	"fmt"
	"io/fs"
)

// FileAccessError is returned when an input file cannot be read or an
// output file cannot be written.
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	err := e.Err
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// SchemaError names a required column missing from a table.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing column: %s", e.Column)
}

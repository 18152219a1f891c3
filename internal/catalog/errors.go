package catalog

import (
	"errors"
	"fmt"
)

// ErrDataFormat marks fatal structural problems with a bulk dataset file.
// Match with errors.Is; the concrete *DataFormatError names the column.
var ErrDataFormat = errors.New("data format error")

// DataFormatError reports a required column absent from a source schema.
// It aborts the load entirely; no partial catalog is published.
type DataFormatError struct {
	File   string
	Column string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("%s: required column %q missing from header", e.File, e.Column)
}

func (e *DataFormatError) Is(target error) bool { return target == ErrDataFormat }

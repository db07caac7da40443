package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyFile is returned when a tabular file has no rows at all.
var ErrEmptyFile = errors.New("empty file: no rows found")

// SchemaError reports required columns missing from a tabular file.
// It is terminal for the request that triggered it: callers must stop
// processing and surface the error, producing no partial results.
type SchemaError struct {
	File    string   // source description, e.g. "reference data" or an upload filename
	Missing []string // column names that were not found
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required column %s",
		e.File, strings.Join(e.Missing, ", "))
}

// IsSchemaError reports whether err is (or wraps) a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

package catalog

import (
	"errors"
	"fmt"
)

// LoadError reports that the catalog could not be fetched or parsed.
// The application continues with an empty catalog.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadFailure reports whether err is (or wraps) a LoadError
func IsLoadFailure(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr)
}

// ErrNotArray is returned when the catalog document is not a list of records
var ErrNotArray = errors.New("catalog document is not an array")

package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownAlgorithm indicates a name that is not in the registry.
	ErrUnknownAlgorithm = errors.New("catalog: unknown algorithm")

	// ErrInvalidParams indicates parameters that fail the algorithm's schema
	// or cannot be decoded into its input type.
	ErrInvalidParams = errors.New("catalog: invalid params")
)

// ParamError lists why a parameter document was rejected.
type ParamError struct {
	Algorithm  string
	Violations []string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid params for %s: %s", e.Algorithm, strings.Join(e.Violations, "; "))
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParams
}

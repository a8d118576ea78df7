package resolver

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingConfigSource is returned when the target is absent and neither a private nor an example source exists.
	ErrMissingConfigSource = errors.New("no config source found")
)

// MissingSourceError lists the paths an operator could create to satisfy the resolver.
type MissingSourceError struct {
	Candidates []string
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("%s: create one of %s", ErrMissingConfigSource, strings.Join(e.Candidates, ", "))
}

func (e *MissingSourceError) Unwrap() error {
	return ErrMissingConfigSource
}

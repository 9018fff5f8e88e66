package unitig

import (
	"fmt"

	"github.com/pkg/errors"
)

// Rejection is returned by Merge when a fragment can't be merged with its
// right neighbor. Nothing in the graph is changed
type Rejection string

func (r Rejection) Error() string {
	return string(r)
}

const (
	// ErrNotUnambiguous means the right end has zero or several neighbors
	ErrNotUnambiguous Rejection = "right end does not have exactly one neighbor"

	// ErrTargetMissing means the neighbor's tip id isn't in the tip index
	ErrTargetMissing Rejection = "neighbor tip is not indexed"

	// ErrTargetNotUnambiguous means the neighbor's end has zero or several neighbors
	ErrTargetNotUnambiguous Rejection = "neighbor end does not have exactly one neighbor"

	// ErrSelfLoop means the right end's neighbor is the fragment itself
	ErrSelfLoop Rejection = "neighbor is the same fragment"
)

// IsRejection returns whether the error is a merge rejection rather than a failure
func IsRejection(err error) bool {
	var r Rejection
	return errors.As(err, &r)
}

// InvariantError is a fatal inconsistency between a fragment and the
// graph's metadata (the tip index or the overlap annotations)
type InvariantError struct {
	// Handle is the position of the offending fragment
	Handle int

	// Tip is the tip id involved
	Tip uint64

	// Reason describes the broken invariant
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("fragment %d, tip %d: %s", e.Handle, e.Tip, e.Reason)
}

// invariantf returns an InvariantError with a stack trace
func invariantf(handle int, tip uint64, format string, args ...interface{}) error {
	return errors.WithStack(&InvariantError{
		Handle: handle,
		Tip:    tip,
		Reason: fmt.Sprintf(format, args...),
	})
}

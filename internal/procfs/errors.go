package procfs

import "errors"

var (
	// ErrUnavailable marks a file that is missing or not readable. The
	// affected field keeps its default value.
	ErrUnavailable = errors.New("unavailable")

	// ErrReadFailure marks a read that failed after a successful open.
	// The descriptor is still released and the affected field is left
	// partial.
	ErrReadFailure = errors.New("read failure")

	// ErrInvalidRoot marks a procfs root that cannot be opened as a
	// directory. It is the only failure that stops a run.
	ErrInvalidRoot = errors.New("invalid procfs root")
)

// Error records the operation and path behind a procfs failure. Kind is
// one of the sentinel errors above; errors.Is matches both Kind and the
// underlying cause.
type Error struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	return e.Op + " " + e.Path + ": " + e.Kind.Error() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() []error { return []error{e.Kind, e.Err} }

// IsSoft reports whether err only degrades a snapshot rather than
// invalidating the run.
func IsSoft(err error) bool {
	return err != nil && !errors.Is(err, ErrInvalidRoot)
}

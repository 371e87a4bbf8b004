package advanced

import "github.com/pkg/errors"

// Threading errors through every predicate and insertion step would make the
// core loop much harder to read. Instead, fatal conditions panic with a
// BuildError, and the public API recovers to convert the panic back into an
// error. Anything else that panics (a nil dereference, say) is a real bug and
// keeps panicking.

type BuildError struct {
	Err error
}

func (e BuildError) Error() string {
	return e.Err.Error()
}

func (e BuildError) Unwrap() error {
	return e.Err
}

// Panic with an error built from a format string.
func fatalf(format string, args ...interface{}) {
	panic(BuildError{errors.Errorf(format, args...)})
}

// Panic with a typed error, so callers can still match it with errors.As
// after recovery.
func throw(err error) {
	panic(BuildError{errors.WithStack(err)})
}

func HandleBuildPanicRecover(r interface{}) error {
	if r != nil {
		if buildError, ok := r.(BuildError); ok {
			return buildError.Err
		}
		panic(r)
	}
	return nil
}

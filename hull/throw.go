package hull

import "github.com/pkg/errors"

// HullError marks a broken invariant inside a job. Jobs have no failure modes
// a caller can act on: bad inputs and bad configurations degrade to the convex
// hull. Only fatalf raises a HullError, and only Build turns one back into an
// error. Every other panic keeps unwinding.
type HullError struct {
	err error
}

func (e *HullError) Error() string {
	return e.err.Error()
}

func (e *HullError) Cause() error {
	return e.err
}

func (e *HullError) Unwrap() error {
	return e.err
}

func fatalf(format string, args ...interface{}) {
	panic(&HullError{err: errors.Errorf(format, args...)})
}

// HandlePanicRecover converts a recovered HullError into an error. Nil stays
// nil, and anything else is re-panicked.
func HandlePanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if hullErr, ok := r.(*HullError); ok {
		return hullErr
	}
	panic(r)
}

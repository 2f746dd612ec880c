package amoebot

import (
	"fmt"

	"github.com/pkg/errors"
)

// FatalError reports a precondition violation or unreachable-state dispatch
// (§7): an invariant the algorithm depends on no longer holds, so the
// simulation cannot make progress and must abort rather than paper over the
// violation. The wrapped error carries a stack trace via
// github.com/pkg/errors, preserved through Unwrap for %+v formatting at the
// CLI boundary.
type FatalError struct {
	err error
}

func (e *FatalError) Error() string { return e.err.Error() }

// Unwrap exposes the underlying stack-trace-carrying error.
func (e *FatalError) Unwrap() error { return e.err }

// Format delegates to the wrapped error so %+v prints the stack trace
// github.com/pkg/errors attaches at the point of failure.
func (e *FatalError) Format(s fmt.State, verb rune) {
	if f, ok := e.err.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	fmt.Fprint(s, e.err.Error())
}

func fatalf(format string, args ...interface{}) *FatalError {
	return &FatalError{err: errors.Errorf(format, args...)}
}

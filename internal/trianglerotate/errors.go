package trianglerotate

import "github.com/pkg/errors"

// fatalf builds a stack-traced diagnostic for unreachable-state dispatch
// (§4.7): a rule group invoked outside the states it handles indicates a
// scheduling or state-machine bug, and is reported rather than silently
// ignored, the same way the original's findCenter/bend/move default cases
// print a diagnostic and throw.
func fatalf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

package evaluator

import "fmt"

// FaultKind classifies recoverable runtime failures. A '?' expression turns
// a classified fault raised inside its operand into a [value, ok] pair;
// everything else (FaultNone) aborts the script.
type FaultKind int

const (
	FaultNone FaultKind = iota
	FaultKeyNotFound
	FaultIndexOutOfBounds
	FaultTypeMismatch
	FaultArithmeticOverflow
	FaultProcessNonZeroExit
)

func (k FaultKind) String() string {
	switch k {
	case FaultKeyNotFound:
		return "key not found"
	case FaultIndexOutOfBounds:
		return "index out of bounds"
	case FaultTypeMismatch:
		return "type mismatch"
	case FaultArithmeticOverflow:
		return "arithmetic overflow"
	case FaultProcessNonZeroExit:
		return "process exited with non-zero code"
	default:
		return "fatal"
	}
}

func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

func newFault(kind FaultKind, format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...), Fault: kind}
}

func isError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}

// isFault reports whether obj is an error a '?' expression may intercept.
func isFault(obj Object) bool {
	err, ok := obj.(*Error)
	return ok && err.Fault != FaultNone
}

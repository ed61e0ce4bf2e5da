package lang

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the conditions EvalEnv cannot recover from.
type ErrorKind int

const (
	ErrUnbound ErrorKind = iota
	ErrNotClosure
	ErrNotNumber
	ErrUnknownExp
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnbound:
		return "unbound variable"
	case ErrNotClosure:
		return "application of non-closure"
	case ErrNotNumber:
		return "addition of non-number"
	case ErrUnknownExp:
		return "unknown expression"
	default:
		return "unknown error"
	}
}

// FatalError is the panic value raised by EvalEnv. It is never returned
// as an ordinary result.
type FatalError struct {
	Kind   ErrorKind
	Pos    Pos
	Detail string
}

func (e *FatalError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%d:%d: %s: %s", e.Pos.Line, e.Pos.Column, e.Kind, e.Detail)
}

func fatal(kind ErrorKind, pos Pos, format string, args ...interface{}) {
	panic(&FatalError{Kind: kind, Pos: pos, Detail: fmt.Sprintf(format, args...)})
}

// AsFatal reports whether a recovered panic value is a FatalError.
func AsFatal(recovered interface{}) (*FatalError, bool) {
	err, ok := recovered.(error)
	if !ok {
		return nil, false
	}
	var ferr *FatalError
	if errors.As(err, &ferr) {
		return ferr, true
	}
	return nil, false
}

package runtime

import (
	"errors"
	"fmt"

	"github.com/sergev/lambda/lang"
)

// Mode selects one of the evaluators.
type Mode int

const (
	ModeSubst  Mode = iota // lang.Eval
	ModeEnv                // lang.EvalEnv; failures are fatal
	ModeEnvOpt             // lang.EvalEnvOpt
)

var modeNames = map[string]Mode{
	"eval":   ModeSubst,
	"env":    ModeEnv,
	"envopt": ModeEnvOpt,
}

func (m Mode) String() string {
	for name, mode := range modeNames {
		if mode == m {
			return name
		}
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a command word to a Mode.
func ParseMode(s string) (Mode, error) {
	if m, ok := modeNames[s]; ok {
		return m, nil
	}
	return 0, newUnknownError("unknown evaluator: %s", s)
}

// NoResult is how an absent evaluation result is rendered.
const NoResult = "<none>"

// Evaluate runs e with the evaluator selected by mode and renders the
// result. Under ModeEnv a failure panics with *lang.FatalError; the
// panic is not recovered here.
func Evaluate(mode Mode, e lang.Exp) (string, error) {
	switch mode {
	case ModeSubst:
		if res, ok := lang.Eval(e).Get(); ok {
			return res.String(), nil
		}
		return NoResult, nil
	case ModeEnv:
		return lang.RunEnv(e, nil).String(), nil
	case ModeEnvOpt:
		if res, ok := lang.RunEnvOpt(e, nil).Get(); ok {
			return res.String(), nil
		}
		return NoResult, nil
	}
	return "", fmt.Errorf("evaluate: %w", newUnknownError("unknown evaluator: %s", mode))
}

// Error reports a runtime lookup or argument problem.
type Error struct {
	Err     error
	Unknown bool
}

func (e *Error) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newUnknownError(format string, args ...interface{}) error {
	return &Error{Err: fmt.Errorf(format, args...), Unknown: true}
}

func newArgError(format string, args ...interface{}) error {
	return &Error{Err: fmt.Errorf(format, args...)}
}

// IsUnknown reports whether err names something the runtime does not
// know about, such as a missing program or evaluator.
func IsUnknown(err error) bool {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Unknown
	}
	return false
}

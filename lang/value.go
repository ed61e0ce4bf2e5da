package lang

import "fmt"

// ValueType enumerates the runtime value categories.
type ValueType int

// The zero Value has TypeEmpty and is what a failed lookup yields.
const (
	TypeEmpty ValueType = iota
	TypeNum
	TypeClosure
)

// Value is the result of environment-based evaluation.
type Value struct {
	Type    ValueType
	payload interface{}
}

// Closure pairs a function with the environment captured when it was
// created.
type Closure struct {
	Env   *Env
	Param string
	Body  Exp
}

// NumValue constructs a number Value.
func NumValue(n int64) Value {
	return Value{Type: TypeNum, payload: n}
}

// ClosureValue wraps a closure over env.
func ClosureValue(env *Env, param string, body Exp) Value {
	return Value{
		Type:    TypeClosure,
		payload: &Closure{Env: env, Param: param, Body: body},
	}
}

func (v Value) Int() int64 {
	if n, ok := v.payload.(int64); ok {
		return n
	}
	return 0
}

func (v Value) Closure() *Closure {
	if c, ok := v.payload.(*Closure); ok {
		return c
	}
	return nil
}

func (v Value) String() string {
	switch v.Type {
	case TypeEmpty:
		return "<empty>"
	case TypeNum:
		return fmt.Sprintf("VNum(%d)", v.Int())
	case TypeClosure:
		c := v.Closure()
		if c == nil {
			return "VClo(<nil>)"
		}
		return fmt.Sprintf("VClo(%s, %q, %s)", c.Env, c.Param, Format(c.Body))
	default:
		return "<unknown>"
	}
}

// ValuesEqual compares values structurally. Closure bodies are compared
// with Equal, so positions are ignored there as well.
func ValuesEqual(a, b Value) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case TypeEmpty:
		return true
	case TypeNum:
		return a.Int() == b.Int()
	case TypeClosure:
		ca, cb := a.Closure(), b.Closure()
		if ca == nil || cb == nil {
			return ca == cb
		}
		return ca.Param == cb.Param && Equal(ca.Body, cb.Body) && envsEqual(ca.Env, cb.Env)
	}
	return false
}

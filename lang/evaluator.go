package lang

import (
	"fmt"

	"github.com/sergev/lambda/effect/option"
	"github.com/sergev/lambda/effect/reader"
	"github.com/sergev/lambda/effect/readeropt"
)

// Eval reduces e by substitution. Results are expressions in weak head
// normal form. There is no environment, so every free variable fails, as
// does applying a non-abstraction or adding non-numbers.
func Eval(e Exp) option.Option[Exp] {
	switch e := e.(type) {
	case *Var:
		return option.Fail[Exp]()
	case *Abs, *Num:
		return option.Some(e)
	case *App:
		return option.Bind(Eval(e.Fn), func(fn Exp) option.Option[Exp] {
			abs, ok := fn.(*Abs)
			if !ok {
				return option.Fail[Exp]()
			}
			return option.Bind(Eval(e.Arg), func(arg Exp) option.Option[Exp] {
				return Eval(Subst(abs.Param, arg, abs.Body))
			})
		})
	case *Add:
		return option.Bind(Eval(e.Left), func(left Exp) option.Option[Exp] {
			l, ok := left.(*Num)
			if !ok {
				return option.Fail[Exp]()
			}
			return option.Bind(Eval(e.Right), func(right Exp) option.Option[Exp] {
				r, ok := right.(*Num)
				if !ok {
					return option.Fail[Exp]()
				}
				return option.Some[Exp](&Num{Value: l.Value + r.Value, Posn: e.Posn})
			})
		})
	}
	return option.Fail[Exp]()
}

// EvalEnv evaluates e against the ambient environment. It has no failure
// channel: an unbound variable, applying a non-closure, or adding a
// non-number panics with a *FatalError.
func EvalEnv(e Exp) reader.Reader[*Env, Value] {
	switch e := e.(type) {
	case *Var:
		return reader.Asks(func(env *Env) Value {
			val, ok := env.Lookup(e.Name)
			if !ok {
				fatal(ErrUnbound, e.Posn, "%s", e.Name)
			}
			return val
		})
	case *Abs:
		return reader.Map(reader.Ask[*Env](), func(env *Env) Value {
			return ClosureValue(env, e.Param, e.Body)
		})
	case *Num:
		return reader.Pure[*Env](NumValue(e.Value))
	case *App:
		return reader.Bind(EvalEnv(e.Fn), func(fn Value) reader.Reader[*Env, Value] {
			clo := fn.Closure()
			if fn.Type != TypeClosure || clo == nil {
				fatal(ErrNotClosure, e.Posn, "%s", fn)
			}
			return reader.Bind(EvalEnv(e.Arg), func(arg Value) reader.Reader[*Env, Value] {
				return reader.Local(func(*Env) *Env {
					return clo.Env.Extend(clo.Param, arg)
				}, EvalEnv(clo.Body))
			})
		})
	case *Add:
		return reader.Map2(func(l, r Value) Value {
			if l.Type != TypeNum {
				fatal(ErrNotNumber, e.Posn, "%s", l)
			}
			if r.Type != TypeNum {
				fatal(ErrNotNumber, e.Posn, "%s", r)
			}
			return NumValue(l.Int() + r.Int())
		}, EvalEnv(e.Left), EvalEnv(e.Right))
	}
	var pos Pos
	if e != nil {
		pos = e.Pos()
	}
	panic(&FatalError{Kind: ErrUnknownExp, Pos: pos, Detail: fmt.Sprintf("%T", e)})
}

// EvalEnvOpt evaluates e like EvalEnv, but reports every failure as an
// absent result instead of panicking.
func EvalEnvOpt(e Exp) readeropt.ReaderOpt[*Env, Value] {
	switch e := e.(type) {
	case *Var:
		return readeropt.Asks(func(env *Env) option.Option[Value] {
			val, ok := env.Lookup(e.Name)
			if !ok {
				return option.Fail[Value]()
			}
			return option.Some(val)
		})
	case *Abs:
		return readeropt.Map(readeropt.Ask[*Env](), func(env *Env) Value {
			return ClosureValue(env, e.Param, e.Body)
		})
	case *Num:
		return readeropt.Pure[*Env](NumValue(e.Value))
	case *App:
		return readeropt.Bind(EvalEnvOpt(e.Fn), func(fn Value) readeropt.ReaderOpt[*Env, Value] {
			clo := fn.Closure()
			if fn.Type != TypeClosure || clo == nil {
				return readeropt.Fail[*Env, Value]()
			}
			return readeropt.Bind(EvalEnvOpt(e.Arg), func(arg Value) readeropt.ReaderOpt[*Env, Value] {
				return readeropt.Local(func(*Env) *Env {
					return clo.Env.Extend(clo.Param, arg)
				}, EvalEnvOpt(clo.Body))
			})
		})
	case *Add:
		sum := readeropt.Map2(func(l, r Value) [2]Value { return [2]Value{l, r} },
			EvalEnvOpt(e.Left), EvalEnvOpt(e.Right))
		return readeropt.Bind(sum, func(operands [2]Value) readeropt.ReaderOpt[*Env, Value] {
			l, r := operands[0], operands[1]
			if l.Type != TypeNum || r.Type != TypeNum {
				return readeropt.Fail[*Env, Value]()
			}
			return readeropt.Pure[*Env](NumValue(l.Int() + r.Int()))
		})
	}
	return readeropt.Fail[*Env, Value]()
}

// RunEnv evaluates e in env with EvalEnv. It panics on the same
// conditions EvalEnv does.
func RunEnv(e Exp, env *Env) Value {
	return reader.Run(EvalEnv(e), env)
}

// RunEnvOpt evaluates e in env with EvalEnvOpt.
func RunEnvOpt(e Exp, env *Env) option.Option[Value] {
	return readeropt.Run(EvalEnvOpt(e), env)
}

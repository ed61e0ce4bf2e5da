// Package readeropt combines the reader and option effects: a reader
// computation whose result, when run, is itself optional.
package readeropt

import (
	"github.com/sergev/lambda/effect/option"
	"github.com/sergev/lambda/effect/reader"
)

// ReaderOpt is a reader over R that may fail to produce an A.
type ReaderOpt[R, A any] = reader.Reader[R, option.Option[A]]

// Run supplies the environment and returns the optional result.
func Run[R, A any](m ReaderOpt[R, A], env R) option.Option[A] {
	return reader.Run(m, env)
}

// Pure yields a present a.
func Pure[R, A any](a A) ReaderOpt[R, A] {
	return reader.Pure[R](option.Some(a))
}

// Fail yields nothing, whatever the environment.
func Fail[R, A any]() ReaderOpt[R, A] {
	return reader.Pure[R](option.None[A]())
}

// Lift turns a plain option into a computation that ignores the
// environment.
func Lift[R, A any](o option.Option[A]) ReaderOpt[R, A] {
	return reader.Pure[R](o)
}

// LiftReader turns an infallible reader into one whose result is always
// present.
func LiftReader[R, A any](m reader.Reader[R, A]) ReaderOpt[R, A] {
	return reader.Map(m, option.Some[A])
}

// Ask yields the environment itself.
func Ask[R any]() ReaderOpt[R, R] {
	return LiftReader(reader.Ask[R]())
}

// Asks yields f applied to the environment; f may fail.
func Asks[R, A any](f func(R) option.Option[A]) ReaderOpt[R, A] {
	return reader.Asks(f)
}

// Local runs m against modify(env) instead of the ambient environment.
func Local[R, A any](modify func(R) R, m ReaderOpt[R, A]) ReaderOpt[R, A] {
	return reader.Local(modify, m)
}

// Bind runs m and, if it produced a value, runs the computation returned
// by k against the same environment. A failed m skips k entirely.
func Bind[R, A, B any](m ReaderOpt[R, A], k func(A) ReaderOpt[R, B]) ReaderOpt[R, B] {
	return reader.New(func(env R) option.Option[B] {
		a, ok := reader.Run(m, env).Get()
		if !ok {
			return option.None[B]()
		}
		return reader.Run(k(a), env)
	})
}

// Map applies f to the result of m, if any.
func Map[R, A, B any](m ReaderOpt[R, A], f func(A) B) ReaderOpt[R, B] {
	return Bind(m, func(a A) ReaderOpt[R, B] {
		return Pure[R](f(a))
	})
}

// Map2 runs ma then mb and combines their results with f. When ma fails,
// mb is never run.
func Map2[R, A, B, C any](f func(A, B) C, ma ReaderOpt[R, A], mb ReaderOpt[R, B]) ReaderOpt[R, C] {
	return Bind(ma, func(a A) ReaderOpt[R, C] {
		return Map(mb, func(b B) C { return f(a, b) })
	})
}

// Sequence runs ms in order and collects the results. It stops at the
// first failure, and the elements after it are not run.
func Sequence[R, A any](ms []ReaderOpt[R, A]) ReaderOpt[R, []A] {
	return reader.New(func(env R) option.Option[[]A] {
		out := make([]A, 0, len(ms))
		for _, m := range ms {
			a, ok := reader.Run(m, env).Get()
			if !ok {
				return option.None[[]A]()
			}
			out = append(out, a)
		}
		return option.Some(out)
	})
}

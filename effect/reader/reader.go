// Package reader models computations that consult a shared read-only
// environment.
package reader

// Reader is a deferred computation over an environment of type R.
type Reader[R, A any] struct {
	run func(R) A
}

// New wraps fn as a Reader.
func New[R, A any](fn func(R) A) Reader[R, A] {
	return Reader[R, A]{run: fn}
}

// Run supplies the environment and returns the result.
func Run[R, A any](m Reader[R, A], env R) A {
	return m.run(env)
}

// Pure ignores the environment and yields a.
func Pure[R, A any](a A) Reader[R, A] {
	return New(func(R) A { return a })
}

// Ask yields the environment itself.
func Ask[R any]() Reader[R, R] {
	return New(func(env R) R { return env })
}

// Asks yields f applied to the environment.
func Asks[R, A any](f func(R) A) Reader[R, A] {
	return New(f)
}

// Local runs m against modify(env) instead of the ambient environment.
// The caller's environment is not affected.
func Local[R, A any](modify func(R) R, m Reader[R, A]) Reader[R, A] {
	return New(func(env R) A {
		return m.run(modify(env))
	})
}

// Bind runs m, then runs the computation returned by k against the same
// ambient environment.
func Bind[R, A, B any](m Reader[R, A], k func(A) Reader[R, B]) Reader[R, B] {
	return New(func(env R) B {
		return k(m.run(env)).run(env)
	})
}

// Map applies f to the result of m.
func Map[R, A, B any](m Reader[R, A], f func(A) B) Reader[R, B] {
	return Bind(m, func(a A) Reader[R, B] {
		return Pure[R](f(a))
	})
}

// Map2 runs ma then mb and combines their results with f.
func Map2[R, A, B, C any](f func(A, B) C, ma Reader[R, A], mb Reader[R, B]) Reader[R, C] {
	return Bind(ma, func(a A) Reader[R, C] {
		return Map(mb, func(b B) C { return f(a, b) })
	})
}

// Sequence runs ms in order and collects the results.
func Sequence[R, A any](ms []Reader[R, A]) Reader[R, []A] {
	return New(func(env R) []A {
		out := make([]A, 0, len(ms))
		for _, m := range ms {
			out = append(out, m.run(env))
		}
		return out
	})
}

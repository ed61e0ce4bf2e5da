// Package state models computations that thread a single value through a
// sequence of steps.
package state

// Unit is the result of steps run only for their effect on the state.
type Unit struct{}

// State is a deferred computation from an input state to an output state
// and a result.
type State[S, A any] struct {
	run func(S) (S, A)
}

// New wraps fn as a State.
func New[S, A any](fn func(S) (S, A)) State[S, A] {
	return State[S, A]{run: fn}
}

// Run supplies the initial state and returns the final state and result.
func Run[S, A any](m State[S, A], initial S) (S, A) {
	return m.run(initial)
}

// Eval runs m and returns only the result.
func Eval[S, A any](m State[S, A], initial S) A {
	_, a := m.run(initial)
	return a
}

// Exec runs m and returns only the final state.
func Exec[S, A any](m State[S, A], initial S) S {
	s, _ := m.run(initial)
	return s
}

// Pure yields a and leaves the state alone.
func Pure[S, A any](a A) State[S, A] {
	return New(func(s S) (S, A) { return s, a })
}

// Get yields the current state.
func Get[S any]() State[S, S] {
	return New(func(s S) (S, S) { return s, s })
}

// Put replaces the state.
func Put[S any](next S) State[S, Unit] {
	return New(func(S) (S, Unit) { return next, Unit{} })
}

// Modify replaces the state with f applied to it.
func Modify[S any](f func(S) S) State[S, Unit] {
	return New(func(s S) (S, Unit) { return f(s), Unit{} })
}

// Gets yields f applied to the current state.
func Gets[S, A any](f func(S) A) State[S, A] {
	return New(func(s S) (S, A) { return s, f(s) })
}

// Bind runs m, then runs the computation returned by k on the state m
// left behind.
func Bind[S, A, B any](m State[S, A], k func(A) State[S, B]) State[S, B] {
	return New(func(s S) (S, B) {
		next, a := m.run(s)
		return k(a).run(next)
	})
}

// Then runs m, discards its result, and runs n.
func Then[S, A, B any](m State[S, A], n State[S, B]) State[S, B] {
	return Bind(m, func(A) State[S, B] { return n })
}

// Map applies f to the result of m.
func Map[S, A, B any](m State[S, A], f func(A) B) State[S, B] {
	return Bind(m, func(a A) State[S, B] {
		return Pure[S](f(a))
	})
}

// Map2 runs ma then mb and combines their results with f.
func Map2[S, A, B, C any](f func(A, B) C, ma State[S, A], mb State[S, B]) State[S, C] {
	return Bind(ma, func(a A) State[S, C] {
		return Map(mb, func(b B) C { return f(a, b) })
	})
}

// Sequence runs ms in order, threading the state, and collects the
// results.
func Sequence[S, A any](ms []State[S, A]) State[S, []A] {
	return New(func(s S) (S, []A) {
		out := make([]A, 0, len(ms))
		for _, m := range ms {
			var a A
			s, a = m.run(s)
			out = append(out, a)
		}
		return s, out
	})
}

// Repeat runs m n times in a row, threading the state, and yields the
// last result. It runs nothing when n <= 0 and yields the zero A.
func Repeat[S, A any](n int, m State[S, A]) State[S, A] {
	return New(func(s S) (S, A) {
		var a A
		for i := 0; i < n; i++ {
			s, a = m.run(s)
		}
		return s, a
	})
}

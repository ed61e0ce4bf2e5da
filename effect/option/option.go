// Package option models computations that yield a value or nothing.
package option

import "fmt"

// Option holds either a value or nothing.
type Option[A any] struct {
	value A
	ok    bool
}

// Some wraps a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{value: a, ok: true}
}

// None returns the absent option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// Fail is the failing computation. It is the same as None and exists so
// evaluators read as "fail here".
func Fail[A any]() Option[A] {
	return None[A]()
}

// Get returns the wrapped value and whether it is present.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[A]) IsSome() bool {
	return o.ok
}

// OrElse returns the wrapped value, or def when absent.
func (o Option[A]) OrElse(def A) A {
	if o.ok {
		return o.value
	}
	return def
}

func (o Option[A]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Bind feeds the value of m into k. An absent m short-circuits and k is
// not called.
func Bind[A, B any](m Option[A], k func(A) Option[B]) Option[B] {
	if !m.ok {
		return None[B]()
	}
	return k(m.value)
}

// Map applies f to the value of m, if any.
func Map[A, B any](m Option[A], f func(A) B) Option[B] {
	return Bind(m, func(a A) Option[B] {
		return Some(f(a))
	})
}

// Map2 combines the values of ma and mb with f. ma is inspected first.
func Map2[A, B, C any](f func(A, B) C, ma Option[A], mb Option[B]) Option[C] {
	return Bind(ma, func(a A) Option[C] {
		return Bind(mb, func(b B) Option[C] {
			return Some(f(a, b))
		})
	})
}

// Sequence collects the values of ms in order. The result is absent if
// any element is absent; no partial slice is returned.
func Sequence[A any](ms []Option[A]) Option[[]A] {
	out := make([]A, 0, len(ms))
	for _, m := range ms {
		a, ok := m.Get()
		if !ok {
			return None[[]A]()
		}
		out = append(out, a)
	}
	return Some(out)
}

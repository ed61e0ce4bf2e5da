package option

import (
	"reflect"
	"strconv"
	"testing"
)

func half(n int) Option[int] {
	if n%2 != 0 {
		return None[int]()
	}
	return Some(n / 2)
}

func TestOptionLeftIdentity(t *testing.T) {
	for _, n := range []int{0, 3, 8, -4} {
		got := Bind(Some(n), half)
		want := half(n)
		if got != want {
			t.Fatalf("Bind(Some(%d), half) = %v, want %v", n, got, want)
		}
	}
}

func TestOptionRightIdentity(t *testing.T) {
	for _, m := range []Option[int]{Some(7), None[int]()} {
		if got := Bind(m, Some[int]); got != m {
			t.Fatalf("Bind(%v, Some) = %v", m, got)
		}
	}
}

func TestOptionAssociativity(t *testing.T) {
	for _, n := range []int{0, 2, 4, 6, 12, 40} {
		m := Some(n)
		left := Bind(Bind(m, half), half)
		right := Bind(m, func(x int) Option[int] { return Bind(half(x), half) })
		if left != right {
			t.Fatalf("associativity broken for %d: %v vs %v", n, left, right)
		}
	}
}

func TestOptionBindShortCircuits(t *testing.T) {
	called := false
	got := Bind(None[int](), func(int) Option[int] {
		called = true
		return Some(1)
	})
	if got.IsSome() {
		t.Fatalf("expected None, got %v", got)
	}
	if called {
		t.Fatalf("continuation must not run after None")
	}
	if Fail[int]().IsSome() {
		t.Fatalf("Fail must be absent")
	}
}

func TestOptionAccessors(t *testing.T) {
	if v, ok := Some("x").Get(); !ok || v != "x" {
		t.Fatalf("Get on Some = %q, %v", v, ok)
	}
	if v, ok := None[string]().Get(); ok || v != "" {
		t.Fatalf("Get on None = %q, %v", v, ok)
	}
	if got := None[int]().OrElse(9); got != 9 {
		t.Fatalf("OrElse fallback = %d", got)
	}
	if got := Some(1).OrElse(9); got != 1 {
		t.Fatalf("OrElse present = %d", got)
	}
	if s := Some(3).String(); s != "Some(3)" {
		t.Fatalf("String = %q", s)
	}
	if s := None[int]().String(); s != "None" {
		t.Fatalf("String = %q", s)
	}
}

func TestOptionMapAndMap2(t *testing.T) {
	if got := Map(Some(41), func(n int) string { return strconv.Itoa(n + 1) }); got != Some("42") {
		t.Fatalf("Map = %v", got)
	}
	if got := Map(None[int](), strconv.Itoa); got.IsSome() {
		t.Fatalf("Map over None = %v", got)
	}

	add := func(a, b int) int { return a + b }
	tests := []struct {
		name string
		a, b Option[int]
		want Option[int]
	}{
		{"both", Some(1), Some(2), Some(3)},
		{"left-missing", None[int](), Some(2), None[int]()},
		{"right-missing", Some(1), None[int](), None[int]()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Map2(add, tt.a, tt.b); got != tt.want {
				t.Fatalf("Map2 = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOptionSequence(t *testing.T) {
	got, ok := Sequence([]Option[int]{Some(1), Some(2), Some(3)}).Get()
	if !ok || !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("Sequence = %v, %v", got, ok)
	}
	if res := Sequence([]Option[int]{Some(1), None[int](), Some(3)}); res.IsSome() {
		t.Fatalf("expected failure, got %v", res)
	}
	empty, ok := Sequence[int](nil).Get()
	if !ok || len(empty) != 0 {
		t.Fatalf("Sequence(nil) = %v, %v", empty, ok)
	}
}

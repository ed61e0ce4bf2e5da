package reader

import (
	"reflect"
	"testing"
)

type config struct {
	scale int
	name  string
}

func scaled(n int) Reader[config, int] {
	return Asks(func(c config) int { return n * c.scale })
}

func TestReaderLaws(t *testing.T) {
	env := config{scale: 3}

	if got, want := Run(Bind(Pure[config](5), scaled), env), Run(scaled(5), env); got != want {
		t.Fatalf("left identity: %d vs %d", got, want)
	}

	m := scaled(4)
	if got, want := Run(Bind(m, Pure[config, int]), env), Run(m, env); got != want {
		t.Fatalf("right identity: %d vs %d", got, want)
	}

	left := Bind(Bind(m, scaled), scaled)
	right := Bind(m, func(x int) Reader[config, int] { return Bind(scaled(x), scaled) })
	if Run(left, env) != Run(right, env) {
		t.Fatalf("associativity: %d vs %d", Run(left, env), Run(right, env))
	}
}

func TestReaderAskAndLocal(t *testing.T) {
	env := config{scale: 2, name: "outer"}

	if got := Run(Ask[config](), env); got != env {
		t.Fatalf("Ask = %+v", got)
	}

	inner := Local(func(c config) config {
		c.name = "inner"
		return c
	}, Asks(func(c config) string { return c.name }))

	both := Map2(func(a, b string) []string { return []string{a, b} },
		inner,
		Asks(func(c config) string { return c.name }))

	got := Run(both, env)
	if !reflect.DeepEqual(got, []string{"inner", "outer"}) {
		t.Fatalf("Local leaked into caller: %v", got)
	}
	if env.name != "outer" {
		t.Fatalf("environment mutated: %+v", env)
	}
}

func TestReaderBindUsesSameEnvironment(t *testing.T) {
	var seen []int
	probe := Asks(func(c config) int {
		seen = append(seen, c.scale)
		return c.scale
	})
	m := Bind(probe, func(int) Reader[config, int] { return probe })
	Run(m, config{scale: 7})
	if !reflect.DeepEqual(seen, []int{7, 7}) {
		t.Fatalf("continuation saw %v", seen)
	}
}

func TestReaderMapAndSequence(t *testing.T) {
	env := config{scale: 10}
	if got := Run(Map(scaled(2), func(n int) int { return n + 1 }), env); got != 21 {
		t.Fatalf("Map = %d", got)
	}

	var order []int
	step := func(n int) Reader[config, int] {
		return New(func(c config) int {
			order = append(order, n)
			return n * c.scale
		})
	}
	got := Run(Sequence([]Reader[config, int]{step(1), step(2), step(3)}), env)
	if !reflect.DeepEqual(got, []int{10, 20, 30}) {
		t.Fatalf("Sequence = %v", got)
	}
	if !reflect.DeepEqual(order, []int{1, 2, 3}) {
		t.Fatalf("Sequence order = %v", order)
	}
}

func TestReaderMap2Order(t *testing.T) {
	var order []string
	tag := func(s string) Reader[config, string] {
		return New(func(config) string {
			order = append(order, s)
			return s
		})
	}
	got := Run(Map2(func(a, b string) string { return a + b }, tag("a"), tag("b")), config{})
	if got != "ab" {
		t.Fatalf("Map2 = %q", got)
	}
	if !reflect.DeepEqual(order, []string{"a", "b"}) {
		t.Fatalf("Map2 ran out of order: %v", order)
	}
}

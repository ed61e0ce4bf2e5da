package runtime

import (
	"math/big"
	"strconv"

	"github.com/sergev/lambda/effect/state"
)

// Upper bounds accepted from the command line. Fibonacci terms grow by
// about 0.7 bits per step, so fib is held to a smaller range than count.
const (
	MaxCount    = 10_000_000
	MaxFibIndex = 100_000
)

// Count increments a counter n times with Get and Put and returns the
// final count.
func Count(n int) int {
	incr := state.Bind(state.Get[int](), func(c int) state.State[int, state.Unit] {
		return state.Put(c + 1)
	})
	return state.Eval(state.Then(state.Repeat(n, incr), state.Get[int]()), 0)
}

type fibPair struct {
	cur, next *big.Int
}

// Fib returns the n-th Fibonacci number, Fib(0) = 0, by stepping a pair
// of consecutive terms through the state effect. Each step allocates a
// fresh term, so earlier pairs are never modified.
func Fib(n int) *big.Int {
	step := state.Bind(state.Get[fibPair](), func(p fibPair) state.State[fibPair, state.Unit] {
		return state.Put(fibPair{cur: p.next, next: new(big.Int).Add(p.cur, p.next)})
	})
	current := state.Gets(func(p fibPair) *big.Int { return p.cur })
	return state.Eval(state.Then(state.Repeat(n, step), current), fibPair{cur: big.NewInt(0), next: big.NewInt(1)})
}

// ParseCount parses a repetition count in [0, MaxCount].
func ParseCount(s string) (int, error) {
	return parseBounded("count", s, MaxCount)
}

// ParseFibIndex parses a Fibonacci index in [0, MaxFibIndex].
func ParseFibIndex(s string) (int, error) {
	return parseBounded("fib index", s, MaxFibIndex)
}

func parseBounded(what, s string, limit int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, newArgError("invalid %s %q: %w", what, s, err)
	}
	if n < 0 {
		return 0, newArgError("%s must be non-negative, got %d", what, n)
	}
	if n > limit {
		return 0, newArgError("%s must be at most %d, got %d", what, limit, n)
	}
	return n, nil
}

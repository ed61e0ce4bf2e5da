package runtime

import (
	"sort"

	"github.com/sergev/lambda/lang"
)

// Program is a named, prebuilt expression. Source is the conventional
// notation the expression was laid out from; positions in Exp refer to
// columns of Source on line 1.
type Program struct {
	Name   string
	Source string
	Exp    lang.Exp
}

func at(col int) lang.Pos { return lang.Pos{Line: 1, Column: col} }

func variable(col int, name string) lang.Exp { return &lang.Var{Name: name, Posn: at(col)} }

func number(col int, n int64) lang.Exp { return &lang.Num{Value: n, Posn: at(col)} }

func lambda(col int, param string, body lang.Exp) lang.Exp {
	return &lang.Abs{Param: param, Body: body, Posn: at(col)}
}

func apply(col int, fn, arg lang.Exp) lang.Exp {
	return &lang.App{Fn: fn, Arg: arg, Posn: at(col)}
}

func plus(col int, left, right lang.Exp) lang.Exp {
	return &lang.Add{Left: left, Right: right, Posn: at(col)}
}

var library = []Program{
	{
		Name:   "identity",
		Source: `(\z. z) 5`,
		Exp:    apply(1, lambda(2, "z", variable(6, "z")), number(9, 5)),
	},
	{
		Name:   "add",
		Source: `1 + 2`,
		Exp:    plus(3, number(1, 1), number(5, 2)),
	},
	{
		Name:   "const",
		Source: `(\x. \y. x) 1 2`,
		Exp: apply(1,
			apply(1, lambda(2, "x", lambda(6, "y", variable(10, "x"))), number(13, 1)),
			number(15, 2)),
	},
	{
		Name:   "twice",
		Source: `(\f. \x. f (f x)) (\n. n + 1) 3`,
		Exp: apply(1,
			apply(1,
				lambda(2, "f", lambda(6, "x", apply(10, variable(10, "f"), apply(13, variable(13, "f"), variable(15, "x"))))),
				lambda(20, "n", plus(26, variable(24, "n"), number(28, 1)))),
			number(31, 3)),
	},
	{
		Name:   "shadow",
		Source: `(\x. \x. x) 1 2`,
		Exp: apply(1,
			apply(1, lambda(2, "x", lambda(6, "x", variable(10, "x"))), number(13, 1)),
			number(15, 2)),
	},
	{
		Name:   "nested",
		Source: `(\a. \b. a + b) 20 22`,
		Exp: apply(1,
			apply(1, lambda(2, "a", lambda(6, "b", plus(12, variable(10, "a"), variable(14, "b")))), number(17, 20)),
			number(20, 22)),
	},
	{
		Name:   "closure",
		Source: `\k. k + 1`,
		Exp:    lambda(1, "k", plus(7, variable(5, "k"), number(9, 1))),
	},
	{
		Name:   "unbound",
		Source: `unbound`,
		Exp:    variable(1, "unbound"),
	},
	{
		Name:   "apply-number",
		Source: `1 2`,
		Exp:    apply(1, number(1, 1), number(3, 2)),
	},
	{
		Name:   "add-closure",
		Source: `(\x. x) + 1`,
		Exp:    plus(9, lambda(2, "x", variable(6, "x")), number(11, 1)),
	},
}

// Programs returns the catalog sorted by name.
func Programs() []Program {
	out := append([]Program(nil), library...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup finds a program by name.
func Lookup(name string) (Program, error) {
	for _, p := range library {
		if p.Name == name {
			return p, nil
		}
	}
	return Program{}, newUnknownError("unknown program: %s", name)
}

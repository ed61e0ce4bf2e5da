package lang

import (
	"fmt"
	"strings"
)

// Pos tracks the source location an expression was built from. It is
// carried for diagnostics only and takes no part in equality.
type Pos struct {
	Line   int // one-based line number
	Column int // one-based column number
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Line, p.Column)
}

// Exp is a lambda-calculus expression. Expressions are immutable once
// built.
type Exp interface {
	Pos() Pos
	String() string
	expNode()
}

// Var refers to a variable.
type Var struct {
	Name string
	Posn Pos
}

// App applies Fn to Arg.
type App struct {
	Fn   Exp
	Arg  Exp
	Posn Pos
}

// Abs is a one-parameter function.
type Abs struct {
	Param string
	Body  Exp
	Posn  Pos
}

// Num is an integer literal.
type Num struct {
	Value int64
	Posn  Pos
}

// Add sums two numeric expressions.
type Add struct {
	Left  Exp
	Right Exp
	Posn  Pos
}

func (e *Var) Pos() Pos { return e.Posn }
func (e *App) Pos() Pos { return e.Posn }
func (e *Abs) Pos() Pos { return e.Posn }
func (e *Num) Pos() Pos { return e.Posn }
func (e *Add) Pos() Pos { return e.Posn }

func (*Var) expNode() {}
func (*App) expNode() {}
func (*Abs) expNode() {}
func (*Num) expNode() {}
func (*Add) expNode() {}

func (e *Var) String() string { return Format(e) }
func (e *App) String() string { return Format(e) }
func (e *Abs) String() string { return Format(e) }
func (e *Num) String() string { return Format(e) }
func (e *Add) String() string { return Format(e) }

// Format renders an expression structurally, positions included.
func Format(e Exp) string {
	var sb strings.Builder
	writeExp(&sb, e)
	return sb.String()
}

func writeExp(sb *strings.Builder, e Exp) {
	switch e := e.(type) {
	case *Var:
		fmt.Fprintf(sb, "Var(%s, %q)", e.Posn, e.Name)
	case *App:
		fmt.Fprintf(sb, "App(%s, ", e.Posn)
		writeExp(sb, e.Fn)
		sb.WriteString(", ")
		writeExp(sb, e.Arg)
		sb.WriteString(")")
	case *Abs:
		fmt.Fprintf(sb, "Abs(%s, %q, ", e.Posn, e.Param)
		writeExp(sb, e.Body)
		sb.WriteString(")")
	case *Num:
		fmt.Fprintf(sb, "Num(%s, %d)", e.Posn, e.Value)
	case *Add:
		fmt.Fprintf(sb, "Add(%s, ", e.Posn)
		writeExp(sb, e.Left)
		sb.WriteString(", ")
		writeExp(sb, e.Right)
		sb.WriteString(")")
	case nil:
		sb.WriteString("<nil>")
	default:
		sb.WriteString("<unknown>")
	}
}

// Equal compares two expressions structurally, ignoring positions.
func Equal(a, b Exp) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *App:
		b, ok := b.(*App)
		return ok && Equal(a.Fn, b.Fn) && Equal(a.Arg, b.Arg)
	case *Abs:
		b, ok := b.(*Abs)
		return ok && a.Param == b.Param && Equal(a.Body, b.Body)
	case *Num:
		b, ok := b.(*Num)
		return ok && a.Value == b.Value
	case *Add:
		b, ok := b.(*Add)
		return ok && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case nil:
		return b == nil
	}
	return false
}

package lang

import (
	"sort"
	"strings"
)

// Env is a persistent environment: a chain of single-binding frames. The
// nil *Env is the empty environment. Frames are never modified, so an
// Env may be captured by closures and shared freely.
type Env struct {
	name   string
	value  Value
	parent *Env
}

// Extend returns a new environment binding name to val on top of e. The
// receiver is left untouched.
func (e *Env) Extend(name string, val Value) *Env {
	return &Env{name: name, value: val, parent: e}
}

// Lookup returns the innermost binding for name.
func (e *Env) Lookup(name string) (Value, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.name == name {
			return cur.value, true
		}
	}
	return Value{}, false
}

// Names returns the visible variable names, each once, sorted.
func (e *Env) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for cur := e; cur != nil; cur = cur.parent {
		if !seen[cur.name] {
			seen[cur.name] = true
			names = append(names, cur.name)
		}
	}
	sort.Strings(names)
	return names
}

// Len reports the number of visible bindings.
func (e *Env) Len() int {
	return len(e.Names())
}

func (e *Env) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, name := range e.Names() {
		if i > 0 {
			sb.WriteString(", ")
		}
		val, _ := e.Lookup(name)
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(val.String())
	}
	sb.WriteString("}")
	return sb.String()
}

func envsEqual(a, b *Env) bool {
	if a == b {
		return true
	}
	an, bn := a.Names(), b.Names()
	if len(an) != len(bn) {
		return false
	}
	for i, name := range an {
		if bn[i] != name {
			return false
		}
		av, _ := a.Lookup(name)
		bv, _ := b.Lookup(name)
		if !ValuesEqual(av, bv) {
			return false
		}
	}
	return true
}

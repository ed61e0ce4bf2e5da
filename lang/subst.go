package lang

// Subst replaces free occurrences of name in e with repl. Subtrees that
// contain no such occurrence are shared with the input rather than
// copied. Bound variables are not renamed, so repl may be captured by an
// enclosing abstraction; SubstSafe avoids that.
func Subst(name string, repl, e Exp) Exp {
	switch e := e.(type) {
	case *Var:
		if e.Name == name {
			return repl
		}
		return e
	case *Abs:
		if e.Param == name {
			return e
		}
		body := Subst(name, repl, e.Body)
		if body == e.Body {
			return e
		}
		return &Abs{Param: e.Param, Body: body, Posn: e.Posn}
	case *App:
		fn := Subst(name, repl, e.Fn)
		arg := Subst(name, repl, e.Arg)
		if fn == e.Fn && arg == e.Arg {
			return e
		}
		return &App{Fn: fn, Arg: arg, Posn: e.Posn}
	case *Add:
		left := Subst(name, repl, e.Left)
		right := Subst(name, repl, e.Right)
		if left == e.Left && right == e.Right {
			return e
		}
		return &Add{Left: left, Right: right, Posn: e.Posn}
	}
	return e
}

// FreeVars returns the set of variables occurring free in e.
func FreeVars(e Exp) map[string]bool {
	free := make(map[string]bool)
	collectFree(e, map[string]int{}, free)
	return free
}

func collectFree(e Exp, bound map[string]int, free map[string]bool) {
	switch e := e.(type) {
	case *Var:
		if bound[e.Name] == 0 {
			free[e.Name] = true
		}
	case *Abs:
		bound[e.Param]++
		collectFree(e.Body, bound, free)
		bound[e.Param]--
	case *App:
		collectFree(e.Fn, bound, free)
		collectFree(e.Arg, bound, free)
	case *Add:
		collectFree(e.Left, bound, free)
		collectFree(e.Right, bound, free)
	}
}

// SubstSafe is Subst with capture avoidance: an abstraction whose
// parameter occurs free in repl is renamed to a fresh name first.
func SubstSafe(name string, repl, e Exp) Exp {
	return substSafe(name, repl, FreeVars(repl), e)
}

func substSafe(name string, repl Exp, replFree map[string]bool, e Exp) Exp {
	switch e := e.(type) {
	case *Var:
		if e.Name == name {
			return repl
		}
		return e
	case *Abs:
		if e.Param == name {
			return e
		}
		bodyFree := FreeVars(e.Body)
		if !bodyFree[name] {
			return e
		}
		param, body := e.Param, e.Body
		if replFree[param] {
			param = freshName(param, replFree, bodyFree, name)
			body = SubstSafe(e.Param, &Var{Name: param, Posn: e.Posn}, body)
		}
		return &Abs{Param: param, Body: substSafe(name, repl, replFree, body), Posn: e.Posn}
	case *App:
		fn := substSafe(name, repl, replFree, e.Fn)
		arg := substSafe(name, repl, replFree, e.Arg)
		if fn == e.Fn && arg == e.Arg {
			return e
		}
		return &App{Fn: fn, Arg: arg, Posn: e.Posn}
	case *Add:
		left := substSafe(name, repl, replFree, e.Left)
		right := substSafe(name, repl, replFree, e.Right)
		if left == e.Left && right == e.Right {
			return e
		}
		return &Add{Left: left, Right: right, Posn: e.Posn}
	}
	return e
}

// freshName primes base until it clashes with nothing in avoid or name.
func freshName(base string, avoid, bodyFree map[string]bool, name string) string {
	candidate := base + "'"
	for avoid[candidate] || bodyFree[candidate] || candidate == name {
		candidate += "'"
	}
	return candidate
}

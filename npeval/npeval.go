// SPDX-License-Identifier: MIT

package npeval

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"

	"github.com/katalvlaran/nputil/nperr"
)

var (
	// ErrExponent rejects "^" and "**".
	ErrExponent = fmt.Errorf("npeval: direct exponentiation is not supported; use pow: %w", nperr.ErrValue)

	// ErrCharacters rejects characters outside the expression alphabet.
	ErrCharacters = fmt.Errorf("npeval: invalid characters in expression: %w", nperr.ErrValue)

	// ErrSyntax reports an expression the grammar does not accept.
	ErrSyntax = fmt.Errorf("npeval: invalid expression: %w", nperr.ErrValue)

	// ErrUnknownFunction reports a call to a function outside the allow-list.
	ErrUnknownFunction = fmt.Errorf("npeval: unknown function: %w", nperr.ErrValue)

	// ErrArity reports a call with the wrong number of arguments.
	ErrArity = fmt.Errorf("npeval: wrong number of arguments: %w", nperr.ErrValue)

	// ErrUnknownName reports a name that is neither a variable nor a constant.
	ErrUnknownName = fmt.Errorf("npeval: unknown name: %w", nperr.ErrValue)

	// ErrLength reports operands whose lengths cannot be broadcast together.
	ErrLength = fmt.Errorf("npeval: operand lengths do not broadcast: %w", nperr.ErrShape)
)

var alphabet = regexp.MustCompile(`^[A-Za-z0-9_ \t\n\r.,+\-*/%()]*$`)

// Expr is a compiled expression. It is immutable and safe for concurrent use.
type Expr struct {
	src  string
	root *sumNode
}

// Compile checks and parses expr.
//
// Implementation:
//   - Stage 1: reject "^" or "**", then any character outside the alphabet.
//   - Stage 2: parse with the expression grammar.
//   - Stage 3: resolve every call against the function table and check arity.
//
// Errors:
//   - ErrExponent, ErrCharacters, ErrSyntax, ErrUnknownFunction, ErrArity.
func Compile(expr string) (*Expr, error) {
	if strings.Contains(expr, "^") || strings.Contains(expr, "**") {
		return nil, fmt.Errorf("Compile(%q): %w", expr, ErrExponent)
	}
	if !alphabet.MatchString(expr) {
		return nil, fmt.Errorf("Compile(%q): %w", expr, ErrCharacters)
	}

	root, err := exprParser.ParseString("", expr)
	if err != nil {
		return nil, fmt.Errorf("Compile(%q): %w: %w", expr, ErrSyntax, err)
	}
	if err = checkCalls(root); err != nil {
		return nil, fmt.Errorf("Compile(%q): %w", expr, err)
	}

	return &Expr{src: expr, root: root}, nil
}

// Eval compiles expr and evaluates it against vars.
func Eval(expr string, vars map[string][]float64) ([]float64, error) {
	e, err := Compile(expr)
	if err != nil {
		return nil, err
	}

	return e.Eval(vars)
}

// Eval evaluates e elementwise. Names resolve to vars first, then to the
// built-in constants. vars is never modified.
//
// Errors:
//   - ErrUnknownName for an unresolved name.
//   - ErrLength when two operands have different lengths, neither being 1.
func (e *Expr) Eval(vars map[string][]float64) ([]float64, error) {
	out, err := e.root.eval(vars)
	if err != nil {
		return nil, fmt.Errorf("Eval(%q): %w", e.src, err)
	}

	return out, nil
}

// String returns the source text of e.
func (e *Expr) String() string { return e.src }

// Vars returns the sorted, de-duplicated names e reads that are not
// built-in constants.
func (e *Expr) Vars() []string {
	var names []string
	walkNames(e.root, func(name string) {
		if _, ok := constants[name]; !ok {
			names = append(names, name)
		}
	})
	slices.Sort(names)

	return slices.Compact(names)
}

// ---------- evaluation ----------

func (n *sumNode) eval(vars map[string][]float64) ([]float64, error) {
	acc, err := n.Left.eval(vars)
	if err != nil {
		return nil, err
	}
	for _, t := range n.Rest {
		rhs, err := t.Right.eval(vars)
		if err != nil {
			return nil, err
		}
		if acc, err = broadcast2(acc, rhs, binaryOps[t.Op]); err != nil {
			return nil, fmt.Errorf("operator %q: %w", t.Op, err)
		}
	}

	return acc, nil
}

func (n *productNode) eval(vars map[string][]float64) ([]float64, error) {
	acc, err := n.Left.eval(vars)
	if err != nil {
		return nil, err
	}
	for _, t := range n.Rest {
		rhs, err := t.Right.eval(vars)
		if err != nil {
			return nil, err
		}
		if acc, err = broadcast2(acc, rhs, binaryOps[t.Op]); err != nil {
			return nil, fmt.Errorf("operator %q: %w", t.Op, err)
		}
	}

	return acc, nil
}

func (n *unaryNode) eval(vars map[string][]float64) ([]float64, error) {
	if n.Primary != nil {
		return n.Primary.eval(vars)
	}

	v, err := n.Operand.eval(vars)
	if err != nil || n.Op == "+" {
		return v, err
	}

	return apply1(v, func(x float64) float64 { return -x }), nil
}

func (n *primaryNode) eval(vars map[string][]float64) ([]float64, error) {
	switch {
	case n.Number != nil:
		return []float64{*n.Number}, nil
	case n.Call != nil:
		return n.Call.eval(vars)
	case n.Name != nil:
		if v, ok := vars[*n.Name]; ok {
			return slices.Clone(v), nil
		}
		if c, ok := constants[*n.Name]; ok {
			return []float64{c}, nil
		}

		return nil, fmt.Errorf("%q: %w", *n.Name, ErrUnknownName)
	}

	return n.Group.eval(vars)
}

func (n *callNode) eval(vars map[string][]float64) ([]float64, error) {
	fn := functions[n.Func]
	args := make([][]float64, len(n.Args))
	for i, a := range n.Args {
		v, err := a.eval(vars)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if fn.unary != nil {
		return apply1(args[0], fn.unary), nil
	}
	out, err := broadcast2(args[0], args[1], fn.binary)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", n.Func, err)
	}

	return out, nil
}

// apply1 maps f over v into a fresh slice.
func apply1(v []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = f(x)
	}

	return out
}

// broadcast2 applies f pairwise, stretching length-1 operands.
func broadcast2(a, b []float64, f func(x, y float64) float64) ([]float64, error) {
	n := len(a)
	switch {
	case len(a) == len(b):
	case len(a) == 1:
		n = len(b)
	case len(b) == 1:
	default:
		return nil, fmt.Errorf("lengths %d and %d: %w", len(a), len(b), ErrLength)
	}

	out := make([]float64, n)
	for i := range out {
		x, y := a[0], b[0]
		if len(a) > 1 {
			x = a[i]
		}
		if len(b) > 1 {
			y = b[i]
		}
		out[i] = f(x, y)
	}

	return out, nil
}

// ---------- static checks ----------

// checkCalls verifies that every call names a known function with the right arity.
func checkCalls(root *sumNode) error {
	var err error
	walk(root, func(c *callNode) {
		if err != nil {
			return
		}
		fn, ok := functions[c.Func]
		switch {
		case !ok:
			err = fmt.Errorf("%q: %w", c.Func, ErrUnknownFunction)
		case len(c.Args) != fn.arity():
			err = fmt.Errorf("%s takes %d, got %d: %w", c.Func, fn.arity(), len(c.Args), ErrArity)
		}
	})

	return err
}

// walk visits every call in the tree, outermost first.
func walk(n *sumNode, visit func(*callNode)) {
	walkPrimaries(n, func(p *primaryNode) {
		if p.Call != nil {
			visit(p.Call)
		}
	})
}

// walkNames visits every bare name in the tree.
func walkNames(n *sumNode, visit func(string)) {
	walkPrimaries(n, func(p *primaryNode) {
		if p.Name != nil {
			visit(*p.Name)
		}
	})
}

func walkPrimaries(n *sumNode, visit func(*primaryNode)) {
	var (
		sum     func(*sumNode)
		product func(*productNode)
		unary   func(*unaryNode)
	)
	sum = func(s *sumNode) {
		product(s.Left)
		for _, t := range s.Rest {
			product(t.Right)
		}
	}
	product = func(p *productNode) {
		unary(p.Left)
		for _, t := range p.Rest {
			unary(t.Right)
		}
	}
	unary = func(u *unaryNode) {
		for u.Primary == nil {
			u = u.Operand
		}
		p := u.Primary
		visit(p)
		switch {
		case p.Call != nil:
			for _, a := range p.Call.Args {
				sum(a)
			}
		case p.Group != nil:
			sum(p.Group)
		}
	}
	sum(n)
}

// floorMod is the remainder with the sign of the divisor.
func floorMod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}

	return r
}

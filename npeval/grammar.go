// SPDX-License-Identifier: MIT

package npeval

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `//|[-+*/%(),]`},
	{Name: "Whitespace", Pattern: `[ \t\n\r]+`},
})

var exprParser = participle.MustBuild[sumNode](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// sumNode is a left-associative chain of additions and subtractions.
type sumNode struct {
	Left *productNode `parser:"@@"`
	Rest []*sumTail   `parser:"@@*"`
}

type sumTail struct {
	Op    string       `parser:"@('+' | '-')"`
	Right *productNode `parser:"@@"`
}

// productNode is a left-associative chain of *, /, // and %.
type productNode struct {
	Left *unaryNode     `parser:"@@"`
	Rest []*productTail `parser:"@@*"`
}

type productTail struct {
	Op    string     `parser:"@('*' | '//' | '/' | '%')"`
	Right *unaryNode `parser:"@@"`
}

type unaryNode struct {
	Op      string       `parser:"( @('-' | '+')"`
	Operand *unaryNode   `parser:"  @@ )"`
	Primary *primaryNode `parser:"| @@"`
}

type primaryNode struct {
	Number *float64  `parser:"  @Number"`
	Call   *callNode `parser:"| @@"`
	Name   *string   `parser:"| @Ident"`
	Group  *sumNode  `parser:"| '(' @@ ')'"`
}

type callNode struct {
	Func string     `parser:"@Ident '('"`
	Args []*sumNode `parser:"( @@ ( ',' @@ )* )? ')'"`
}

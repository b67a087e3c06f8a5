// Package npeval evaluates small arithmetic expressions over named float64
// arrays, such as the source terms and initial conditions found in solver
// configuration files.
//
// The language is deliberately narrow:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/" | "//" | "%") unary }
//	unary   = ("+" | "-") unary | primary
//	primary = number | call | name | "(" expr ")"
//	call    = name "(" [ expr { "," expr } ] ")"
//
// Only the functions exp, log, sin, asin, cos, acos, tan, atan, atan2, abs,
// pow, sqrt, tanh, max and min are callable, and pi is the only constant.
// Exponentiation must be written pow(x, y); "^" and "**" are rejected up
// front, as is any character outside letters, digits, "_", whitespace and
// ".,+-*/%()". There is no attribute access, indexing or comparison.
//
// Every operation is elementwise. Operands of length one broadcast against
// longer operands; other length mismatches fail. Division follows IEEE 754
// (x/0 is ±Inf or NaN), "%" takes the sign of the divisor and "//" floors.
//
//	out, err := npeval.Eval("0.5*(1 + tanh(x/delta))", map[string][]float64{
//		"x":     xs,
//		"delta": {0.1},
//	})
//
// Compile parses once for repeated evaluation against different variables.
package npeval

// SPDX-License-Identifier: MIT

package npeval

import "math"

// function is one allow-listed callable; exactly one field is set.
type function struct {
	unary  func(float64) float64
	binary func(x, y float64) float64
}

func (f function) arity() int {
	if f.unary != nil {
		return 1
	}

	return 2
}

// functions is the complete set of callable names.
var functions = map[string]function{
	"exp":   {unary: math.Exp},
	"log":   {unary: math.Log},
	"sin":   {unary: math.Sin},
	"asin":  {unary: math.Asin},
	"cos":   {unary: math.Cos},
	"acos":  {unary: math.Acos},
	"tan":   {unary: math.Tan},
	"atan":  {unary: math.Atan},
	"atan2": {binary: math.Atan2},
	"abs":   {unary: math.Abs},
	"pow":   {binary: math.Pow},
	"sqrt":  {unary: math.Sqrt},
	"tanh":  {unary: math.Tanh},
	"max":   {binary: math.Max},
	"min":   {binary: math.Min},
}

// constants are names resolved when no variable shadows them.
var constants = map[string]float64{
	"pi": math.Pi,
}

var binaryOps = map[string]func(x, y float64) float64{
	"+":  func(x, y float64) float64 { return x + y },
	"-":  func(x, y float64) float64 { return x - y },
	"*":  func(x, y float64) float64 { return x * y },
	"/":  func(x, y float64) float64 { return x / y },
	"//": func(x, y float64) float64 { return math.Floor(x / y) },
	"%":  floorMod,
}

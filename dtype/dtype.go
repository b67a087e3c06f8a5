// SPDX-License-Identifier: MIT

// Package dtype maps numeric element types to their native C and Go
// representations, for code generation and foreign-memory interop.
//
// Supported element types:
//
//	DType    C type          Go kind
//	Int32    int             reflect.Int32
//	Uint32   unsigned int    reflect.Uint32
//	Int64    int64_t         reflect.Int64
//	Uint64   uint64_t        reflect.Uint64
//	Float32  float           reflect.Float32
//	Float64  double          reflect.Float64
//
// None is the "no type" marker: it has no C spelling, and its Go kind is
// reflect.Invalid without an error.
package dtype

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/nputil/nperr"
)

// ErrUnsupported is returned for element types outside the supported table.
var ErrUnsupported = fmt.Errorf("dtype: unsupported element type: %w", nperr.ErrValue)

// DType enumerates the supported numeric element types.
type DType int

const (
	None DType = iota
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
)

// entry is one row of the type table.
type entry struct {
	name  string
	ctype string
	kind  reflect.Kind
	size  int
}

var table = map[DType]entry{
	Int32:   {"int32", "int", reflect.Int32, 4},
	Uint32:  {"uint32", "unsigned int", reflect.Uint32, 4},
	Int64:   {"int64", "int64_t", reflect.Int64, 8},
	Uint64:  {"uint64", "uint64_t", reflect.Uint64, 8},
	Float32: {"float32", "float", reflect.Float32, 4},
	Float64: {"float64", "double", reflect.Float64, 8},
}

// aliases accepts the numpy short codes next to the canonical names.
var aliases = map[string]DType{
	"i4": Int32, "u4": Uint32, "i8": Int64, "u8": Uint64, "f4": Float32, "f8": Float64,
	"single": Float32, "double": Float64,
}

// Parse resolves a canonical name ("float64") or numpy short code ("f8").
func Parse(name string) (DType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for dt, e := range table {
		if e.name == name {
			return dt, nil
		}
	}
	if dt, ok := aliases[name]; ok {
		return dt, nil
	}

	return None, fmt.Errorf("Parse(%q): %w", name, ErrUnsupported)
}

// Of returns the DType of the Go element type T.
// int and uint follow the platform word size.
func Of[T constraints.Integer | constraints.Float]() (DType, error) {
	kind := reflect.TypeFor[T]().Kind()
	switch kind {
	case reflect.Int:
		kind = reflect.Int32
		if strconv.IntSize == 64 {
			kind = reflect.Int64
		}
	case reflect.Uint:
		kind = reflect.Uint32
		if strconv.IntSize == 64 {
			kind = reflect.Uint64
		}
	}
	for dt, e := range table {
		if e.kind == kind {
			return dt, nil
		}
	}

	return None, fmt.Errorf("Of[%s]: %w", reflect.TypeFor[T](), ErrUnsupported)
}

// CType returns the C spelling of dt.
func (dt DType) CType() (string, error) {
	e, ok := table[dt]
	if !ok {
		return "", fmt.Errorf("CType(%s): %w", dt, ErrUnsupported)
	}

	return e.ctype, nil
}

// Kind returns the reflect.Kind of dt; None maps to reflect.Invalid.
func (dt DType) Kind() (reflect.Kind, error) {
	if dt == None {
		return reflect.Invalid, nil
	}
	e, ok := table[dt]
	if !ok {
		return reflect.Invalid, fmt.Errorf("Kind(%s): %w", dt, ErrUnsupported)
	}

	return e.kind, nil
}

// Size returns the element size in bytes, or 0 for None and unknown values.
func (dt DType) Size() int { return table[dt].size }

// Bits returns the element width in bits.
func (dt DType) Bits() int { return 8 * dt.Size() }

// String implements fmt.Stringer.
func (dt DType) String() string {
	if dt == None {
		return "none"
	}
	if e, ok := table[dt]; ok {
		return e.name
	}

	return "DType(" + strconv.Itoa(int(dt)) + ")"
}

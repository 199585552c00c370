// Package predicate builds keep-predicates from short expressions like
// "le 2", "odd" or "not eq 0".
package predicate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

var ErrInvalid = errors.New("invalid predicate")

type Func[T constraints.Integer] func(t T) bool

type Predicate[T constraints.Integer] struct {
	expr string
	fn   Func[T]
}

func (p Predicate[T]) String() string {
	return p.expr
}

func (p Predicate[T]) Keep(t T) bool {
	return p.fn(t)
}

func (p Predicate[T]) Func() Func[T] {
	return p.fn
}

func Parse[T constraints.Integer](expr string) (Predicate[T], error) {
	fields := strings.Fields(expr)
	fn, err := parseFields[T](fields)
	if err != nil {
		return Predicate[T]{}, fmt.Errorf("%w: %q: %v", ErrInvalid, expr, err)
	}
	return Predicate[T]{
		expr: strings.Join(fields, " "),
		fn:   fn,
	}, nil
}

func MustParse[T constraints.Integer](expr string) Predicate[T] {
	p, err := Parse[T](expr)
	if err != nil {
		panic(err)
	}
	return p
}

func parseFields[T constraints.Integer](fields []string) (Func[T], error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty expression")
	}
	op, args := strings.ToLower(fields[0]), fields[1:]
	if op == "not" {
		fn, err := parseFields[T](args)
		if err != nil {
			return nil, err
		}
		return func(t T) bool { return !fn(t) }, nil
	}

	switch op {
	case "all", "none", "even", "odd":
		if len(args) != 0 {
			return nil, fmt.Errorf("%q takes no operand", op)
		}
	case "eq", "ne", "lt", "le", "gt", "ge":
		if len(args) != 1 {
			return nil, fmt.Errorf("%q takes exactly one operand", op)
		}
	default:
		return nil, fmt.Errorf("unknown operator %q", op)
	}

	switch op {
	case "all":
		return func(T) bool { return true }, nil
	case "none":
		return func(T) bool { return false }, nil
	case "even":
		return func(t T) bool { return t%2 == 0 }, nil
	case "odd":
		return func(t T) bool { return t%2 != 0 }, nil
	}

	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("operand %q: %w", args[0], err)
	}
	v := T(n)
	if int64(v) != n {
		return nil, fmt.Errorf("operand %d overflows", n)
	}
	switch op {
	case "eq":
		return func(t T) bool { return t == v }, nil
	case "ne":
		return func(t T) bool { return t != v }, nil
	case "lt":
		return func(t T) bool { return t < v }, nil
	case "le":
		return func(t T) bool { return t <= v }, nil
	case "gt":
		return func(t T) bool { return t > v }, nil
	default:
		return func(t T) bool { return t >= v }, nil
	}
}

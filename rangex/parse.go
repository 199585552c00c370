package rangex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrSyntax = errors.New("invalid range syntax")

// Parse parses one of the forms a..b, a..=b, a.., ..b, ..=b and ..
func Parse(s string) (Range, error) {
	s = strings.TrimSpace(s)
	lhs, rhs, ok := strings.Cut(s, "..")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q: missing \"..\"", ErrSyntax, s)
	}

	var r Range
	lhs = strings.TrimSpace(lhs)
	if lhs != "" {
		n, err := parseIndex(lhs)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q: start: %v", ErrSyntax, s, err)
		}
		r.Start = Incl(n)
	}

	inclusive := false
	if strings.HasPrefix(rhs, "=") {
		inclusive = true
		rhs = strings.TrimPrefix(rhs, "=")
	}
	rhs = strings.TrimSpace(rhs)
	switch {
	case rhs == "" && inclusive:
		return Range{}, fmt.Errorf("%w: %q: inclusive range needs an end", ErrSyntax, s)
	case rhs == "":
		r.End = Unbound()
	default:
		n, err := parseIndex(rhs)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q: end: %v", ErrSyntax, s, err)
		}
		if inclusive {
			r.End = Incl(n)
		} else {
			r.End = Excl(n)
		}
	}
	return r, nil
}

func MustParse(s string) Range {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parseIndex(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 0)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative index %d", n)
	}
	return int(n), nil
}

func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Range) UnmarshalText(b []byte) error {
	pr, err := Parse(string(b))
	if err != nil {
		return err
	}
	*r = pr
	return nil
}

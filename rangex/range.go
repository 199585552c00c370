// Package rangex describes index ranges over sequences, the way they are
// written as start..end, start..=end, start.., ..end, ..=end and ..
package rangex

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds = errors.New("range out of bounds")
	ErrInverted    = errors.New("range start after end")
)

type BoundKind int

const (
	Unbounded BoundKind = iota
	Included
	Excluded
)

func (k BoundKind) String() string {
	switch k {
	case Unbounded:
		return "unbounded"
	case Included:
		return "included"
	case Excluded:
		return "excluded"
	default:
		return fmt.Sprintf("bound-kind(%d)", int(k))
	}
}

type Bound struct {
	Kind  BoundKind
	Index int
}

func Unbound() Bound {
	return Bound{Kind: Unbounded}
}

func Incl(i int) Bound {
	return Bound{Kind: Included, Index: i}
}

func Excl(i int) Bound {
	return Bound{Kind: Excluded, Index: i}
}

func New(start, end Bound) Range {
	return Range{
		Start: start,
		End:   end,
	}
}

// Range is a pair of bounds. The zero value is the full range.
type Range struct {
	Start Bound
	End   Bound
}

// Span is start..end
func Span(start, end int) Range {
	return New(Incl(start), Excl(end))
}

// SpanIncl is start..=end
func SpanIncl(start, end int) Range {
	return New(Incl(start), Incl(end))
}

// From is start..
func From(start int) Range {
	return New(Incl(start), Unbound())
}

// To is ..end
func To(end int) Range {
	return New(Unbound(), Excl(end))
}

// ToIncl is ..=end
func ToIncl(end int) Range {
	return New(Unbound(), Incl(end))
}

// Full is ..
func Full() Range {
	return New(Unbound(), Unbound())
}

// Resolve normalizes r into the half-open index pair [start, end) for a
// sequence of the given length. An unbounded end resolves to length.
// The result is not validated, see Check.
func (r Range) Resolve(length int) (start, end int) {
	switch r.Start.Kind {
	case Included:
		start = r.Start.Index
	case Excluded:
		start = r.Start.Index + 1
	default:
		start = 0
	}
	switch r.End.Kind {
	case Included:
		end = r.End.Index + 1
	case Excluded:
		end = r.End.Index
	default:
		end = length
	}
	return start, end
}

// Check reports whether r selects a valid part of a sequence with the given length.
func (r Range) Check(length int) error {
	start, end := r.Resolve(length)
	switch {
	case start < 0 || end < 0:
		return fmt.Errorf("%w: %s resolves to [%d, %d)", ErrOutOfBounds, r, start, end)
	case start > end:
		return fmt.Errorf("%w: %s resolves to [%d, %d)", ErrInverted, r, start, end)
	case end > length:
		return fmt.Errorf("%w: %s resolves to [%d, %d) with length %d", ErrOutOfBounds, r, start, end, length)
	}
	return nil
}

// Len returns the number of indices r selects in a sequence of the given
// length, or 0 if r is not valid for it.
func (r Range) Len(length int) int {
	if r.Check(length) != nil {
		return 0
	}
	start, end := r.Resolve(length)
	return end - start
}

func (r Range) Contains(i int, length int) bool {
	start, end := r.Resolve(length)
	return i >= start && i < end
}

func (r Range) String() string {
	var s string
	switch r.Start.Kind {
	case Included:
		s = fmt.Sprintf("%d", r.Start.Index)
	case Excluded:
		s = fmt.Sprintf("%d", r.Start.Index+1)
	}
	switch r.End.Kind {
	case Included:
		s += fmt.Sprintf("..=%d", r.End.Index)
	case Excluded:
		s += fmt.Sprintf("..%d", r.End.Index)
	default:
		s += ".."
	}
	return s
}

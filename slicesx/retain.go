package slicesx

import (
	"fmt"

	"github.com/mazzegi/retain/rangex"
)

// RetainRange removes all elements within r from *s for which keep returns
// false. Kept elements stay in order, elements outside r are not touched and
// only move left by the number of removed elements. Capacity is unchanged.
//
// RetainRange panics if r is not valid for len(*s). If keep (or a discard hook)
// panics, *s is repaired before the panic propagates: already discarded
// elements are gone and all others, including not yet examined ones, remain.
func RetainRange[S ~[]E, E any](s *S, r rangex.Range, keep func(e E) bool, opts ...Option[E]) {
	RetainRangeMut(s, r, func(e *E) bool {
		return keep(*e)
	}, opts...)
}

// RetainRangeMut is like RetainRange, but keep may modify the element.
func RetainRangeMut[S ~[]E, E any](s *S, r rangex.Range, keep func(e *E) bool, opts ...Option[E]) {
	if err := r.Check(len(*s)); err != nil {
		panic(fmt.Errorf("slicesx: retain-range: %w", err))
	}
	start, end := r.Resolve(len(*s))
	g := newBackshiftGuard(s, start, end, buildOptions(opts))
	g.run(func(e *E) (bool, error) {
		return keep(e), nil
	})
}

// TryRetainRange is like RetainRangeMut, but returns an invalid range as error
// and stops at the first error of keep. The element keep failed on and all
// following ones are preserved.
func TryRetainRange[S ~[]E, E any](s *S, r rangex.Range, keep func(e *E) (bool, error), opts ...Option[E]) error {
	if err := r.Check(len(*s)); err != nil {
		return fmt.Errorf("retain-range: %w", err)
	}
	start, end := r.Resolve(len(*s))
	g := newBackshiftGuard(s, start, end, buildOptions(opts))
	if err := g.run(keep); err != nil {
		return fmt.Errorf("retain-range: at index %d: %w", g.processedLen, err)
	}
	return nil
}

func Retain[S ~[]E, E any](s *S, keep func(e E) bool, opts ...Option[E]) {
	RetainRange(s, rangex.Full(), keep, opts...)
}

func RetainMut[S ~[]E, E any](s *S, keep func(e *E) bool, opts ...Option[E]) {
	RetainRangeMut(s, rangex.Full(), keep, opts...)
}

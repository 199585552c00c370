package slicesx

import "slices"

// Filter returns a copy of ts with the accepted elements; ts is not modified.
func Filter[S ~[]E, E any](ts S, accept func(t E) bool) []E {
	fts := []E(slices.Clone(ts))
	Retain(&fts, accept)
	return fts
}

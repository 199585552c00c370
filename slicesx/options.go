package slicesx

// Report describes a finished retain call, see WithReport.
type Report struct {
	// Start and End are the resolved range [Start, End).
	Start int
	End   int
	// Examined counts the in-range elements the predicate classified.
	Examined    int
	Discarded   int
	OriginalLen int
	Len         int
	// Completed is false if the scan was cut short by a panic or an error.
	Completed bool
}

func (r Report) Kept() int {
	return r.Examined - r.Discarded
}

type options[E any] struct {
	discard func(*E)
	report  *Report
}

type Option[E any] func(o *options[E])

// WithDiscard sets a hook, which is called exactly once for every discarded
// element, before the next element is examined. The slot is zeroed afterwards.
func WithDiscard[E any](fn func(e *E)) Option[E] {
	return func(o *options[E]) {
		o.discard = fn
	}
}

// WithReport makes the call fill r when it returns, also when it panics.
func WithReport[E any](r *Report) Option[E] {
	return func(o *options[E]) {
		o.report = r
	}
}

func buildOptions[E any](opts []Option[E]) options[E] {
	var o options[E]
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

package errorx

import "strings"

// Group collects errors, e.g. all validation problems of a document.
type Group struct {
	errs []error
}

func NewGroup(errs ...error) *Group {
	g := &Group{}
	g.Append(errs...)
	return g
}

func (g *Group) Append(errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		g.errs = append(g.errs, err)
	}
}

// Error returns nil for an empty group. Otherwise the returned error matches
// every collected error with errors.Is and errors.As.
func (g *Group) Error() error {
	if len(g.errs) == 0 {
		return nil
	}
	return &groupError{errs: append([]error(nil), g.errs...)}
}

func (g *Group) IsEmpty() bool {
	return len(g.errs) == 0
}

func (g *Group) Len() int {
	return len(g.errs)
}

// Do runs fn only while the group is still empty.
func (g *Group) Do(fn func() error) {
	if len(g.errs) > 0 {
		return
	}
	g.Append(fn())
}

type groupError struct {
	errs []error
}

func (e *groupError) Error() string {
	sl := make([]string, len(e.errs))
	for i, err := range e.errs {
		sl[i] = err.Error()
	}
	return strings.Join(sl, " | ")
}

func (e *groupError) Unwrap() []error {
	return e.errs
}

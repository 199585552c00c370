package slicesx

// backshiftGuard tracks an in-flight retain over buf, the full original view
// of the caller's slice.
//
//	buf: [kept, kept, hole, hole, hole, unchecked, unchecked]
//	     |<-     processedLen       ->| ^ next to check
//	                 |<- deletedCnt ->|
//	     |<-              originalLen                     ->|
//
// finalize must run on every exit path. It moves the unchecked tail over the
// holes and publishes the new length through s.
type backshiftGuard[S ~[]E, E any] struct {
	s            *S
	buf          []E
	processedLen int
	deletedCnt   int
	originalLen  int
	start        int
	end          int
	discard      func(*E)
	report       *Report
	completed    bool
}

func newBackshiftGuard[S ~[]E, E any](s *S, start, end int, o options[E]) *backshiftGuard[S, E] {
	buf := []E(*s)
	// the caller's slice appears empty until finalize restores a length
	*s = (*s)[:0]
	return &backshiftGuard[S, E]{
		s:            s,
		buf:          buf,
		processedLen: start,
		originalLen:  len(buf),
		start:        start,
		end:          end,
		discard:      o.discard,
		report:       o.report,
	}
}

func (g *backshiftGuard[S, E]) finalize() {
	if g.deletedCnt > 0 {
		copy(g.buf[g.processedLen-g.deletedCnt:], g.buf[g.processedLen:g.originalLen])
		clear(g.buf[g.originalLen-g.deletedCnt : g.originalLen])
	}
	newLen := g.originalLen - g.deletedCnt
	*g.s = S(g.buf[:newLen])

	if g.report != nil {
		*g.report = Report{
			Start:       g.start,
			End:         g.end,
			Examined:    g.processedLen - g.start,
			Discarded:   g.deletedCnt,
			OriginalLen: g.originalLen,
			Len:         newLen,
			Completed:   g.completed,
		}
	}
}

// scan visits buf[processedLen:end]. Without compacting it stops at the first
// discard, since up to there every kept element is already in place.
func (g *backshiftGuard[S, E]) scan(keep func(*E) (bool, error), compacting bool) error {
	for g.processedLen != g.end {
		cur := &g.buf[g.processedLen]
		ok, err := keep(cur)
		if err != nil {
			return err
		}
		if !ok {
			// advance first, a panicking discard must not see cur again
			g.processedLen++
			g.deletedCnt++
			g.drop(cur)
			if compacting {
				continue
			}
			return nil
		}
		if compacting {
			g.buf[g.processedLen-g.deletedCnt] = *cur
		}
		g.processedLen++
	}
	return nil
}

func (g *backshiftGuard[S, E]) drop(e *E) {
	if g.discard != nil {
		g.discard(e)
	}
	var zero E
	*e = zero
}

func (g *backshiftGuard[S, E]) run(keep func(*E) (bool, error)) error {
	defer g.finalize()

	if err := g.scan(keep, false); err != nil {
		return err
	}
	if err := g.scan(keep, true); err != nil {
		return err
	}
	g.completed = true
	return nil
}

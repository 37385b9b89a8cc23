package eorzea

// Span is a window of game time: a start instant plus a duration.
// The zero value is an empty span at the epoch.
type Span struct {
	start Time
	dur   Duration
}

// NewSpan returns the span beginning at start and lasting d.
func NewSpan(start Time, d Duration) Span {
	return Span{start: start, dur: d}
}

// SpanBetween returns the span from start to end. It fails with
// ErrNegativeDuration when end precedes start; a shared instant is a
// valid zero-duration span.
func SpanBetween(start, end Time) (Span, error) {
	d, err := end.Since(start)
	if err != nil {
		return Span{}, err
	}
	return Span{start: start, dur: d}, nil
}

// Start returns the first instant of the span.
func (s Span) Start() Time { return s.start }

// End returns the instant the span closes, start plus duration.
func (s Span) End() Time { return s.start.Add(s.dur) }

// Duration returns the length of the span.
func (s Span) Duration() Duration { return s.dur }

// Contains reports whether t falls within the span, boundaries
// included.
func (s Span) Contains(t Time) bool {
	return !t.Before(s.start) && !t.After(s.End())
}

// Overlap intersects two spans as [max of starts, min of ends]. The
// second result is false when the spans do not overlap; callers treat
// that as a normal miss during search, not a fault. Touching spans
// overlap in a single zero-duration instant. Overlap is commutative.
func (s Span) Overlap(o Span) (Span, bool) {
	start := s.start
	if o.start.After(start) {
		start = o.start
	}
	end := s.End()
	if o.End().Before(end) {
		end = o.End()
	}
	out, err := SpanBetween(start, end)
	if err != nil {
		return Span{}, false
	}
	return out, true
}

// String formats the span as "start .. end".
func (s Span) String() string {
	return s.start.String() + " .. " + s.End().String()
}

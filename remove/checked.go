package remove

// SpanError describes a span sequence that breaks the Iterator contract.
type SpanError struct {
	Span    Span
	Prev    Span
	TextLen int
	Message string
}

// Error implements the error interface.
func (e *SpanError) Error() string {
	return "remove: invalid span " + e.Span.String() + " after " + e.Prev.String() + ": " + e.Message
}

// Checked wraps it so that every span is validated against a text of length
// textLen and against the previous span. A violation panics with a
// *SpanError; it is a bug in the span producer, not a runtime condition.
func Checked(it Iterator, textLen int) Iterator {
	return &checkedIterator{inner: it, textLen: textLen}
}

type checkedIterator struct {
	inner   Iterator
	textLen int
	prev    Span
}

func (c *checkedIterator) Next() (Span, bool) {
	s, ok := c.inner.Next()
	if !ok {
		return s, false
	}

	var msg string
	switch {
	case s.Start < 0 || s.End > c.textLen:
		msg = "out of range"
	case s.Start > s.End:
		msg = "start after end"
	case s.Start < c.prev.End:
		msg = "overlaps or precedes previous span"
	}
	if msg != "" {
		panic(&SpanError{Span: s, Prev: c.prev, TextLen: c.textLen, Message: msg})
	}

	c.prev = s
	return s, true
}

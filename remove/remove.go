package remove

import "github.com/coregx/lazyregex/internal/conv"

// cut describes a removal before it is bound to a concrete text type:
// either the window text[lo:hi] of the input, or an owned buffer.
type cut struct {
	lo, hi int
	buf    []byte
	owned  bool
}

func borrow(lo, hi int) cut {
	return cut{lo: lo, hi: hi}
}

func own(buf []byte) cut {
	return cut{buf: buf, owned: true}
}

func (c cut) inString(s string) Result[string] {
	if c.owned {
		return Result[string]{text: conv.BytesView(c.buf), owned: true}
	}
	return Result[string]{text: s[c.lo:c.hi]}
}

func (c cut) inBytes(b []byte) Result[[]byte] {
	if c.owned {
		return Result[[]byte]{text: c.buf, owned: true}
	}
	return Result[[]byte]{text: b[c.lo:c.hi]}
}

// First removes the first span produced by it from s.
//
// No span, or an empty first span, returns s unchanged. A span touching
// either end of s returns a substring. Only an interior span allocates,
// once, exactly len(s)-span.Len() bytes.
func First(it Iterator, s string) Result[string] {
	return first(it, s).inString(s)
}

// FirstBytes is the []byte variant of First.
func FirstBytes(it Iterator, b []byte) Result[[]byte] {
	return first(it, b).inBytes(b)
}

// All removes every span produced by it from s.
//
// The result borrows from s whenever the spans, once adjacent ones are
// merged, form at most one run anchored at the start and one anchored at
// the end. Otherwise the kept segments are copied, in order, into a single
// allocation that never grows. Empty spans remove nothing and are ignored.
//
// All runs in time linear in len(s) plus the number of spans.
func All(it Iterator, s string) Result[string] {
	return all(it, s).inString(s)
}

// AllBytes is the []byte variant of All.
func AllBytes(it Iterator, b []byte) Result[[]byte] {
	return all(it, b).inBytes(b)
}

func first[T Text](it Iterator, text T) cut {
	m, ok := it.Next()
	switch {
	case !ok, m.IsEmpty():
		return borrow(0, len(text))
	case m.Start == 0:
		return borrow(m.End, len(text))
	case m.End == len(text):
		return borrow(0, m.Start)
	}

	buf := make([]byte, 0, len(text)-m.Len())
	buf = append(buf, text[:m.Start]...)
	buf = append(buf, text[m.End:]...)
	return own(buf)
}

// nextHole returns the next non-empty span.
func nextHole(it Iterator) (Span, bool) {
	for {
		m, ok := it.Next()
		if !ok || !m.IsEmpty() {
			return m, ok
		}
	}
}

// all accumulates the run of holes glued to the start of text. The first
// hole that leaves a gap hands over to scanTail.
func all[T Text](it Iterator, text T) cut {
	trim := 0
	for {
		m, ok := nextHole(it)
		if !ok {
			return borrow(trim, len(text))
		}
		if m.Start != trim {
			return scanTail(it, text, trim, m)
		}
		trim = m.End
	}
}

// scanTail knows text[trim:hole.Start] survives. It merges the holes that
// follow hole end to end, and stays on the borrow path only if that merged
// hole reaches the end of text.
func scanTail[T Text](it Iterator, text T, trim int, hole Span) cut {
	kept := hole.Start
	for {
		m, ok := nextHole(it)
		if !ok {
			if hole.End == len(text) {
				return borrow(trim, kept)
			}
			buf := make([]byte, 0, (kept-trim)+(len(text)-hole.End))
			buf = append(buf, text[trim:kept]...)
			buf = append(buf, text[hole.End:]...)
			return own(buf)
		}
		if m.Start != hole.End {
			return copyRest(it, text, trim, kept, hole.End, m)
		}
		hole.End = m.End
	}
}

// copyRest handles two or more kept segments. Everything after trim fits in
// len(text)-trim bytes, so buf is allocated once and never grows.
func copyRest[T Text](it Iterator, text T, trim, kept, lastEnd int, m Span) cut {
	buf := make([]byte, 0, len(text)-trim)
	buf = append(buf, text[trim:kept]...)
	for {
		buf = append(buf, text[lastEnd:m.Start]...)
		lastEnd = m.End

		var ok bool
		if m, ok = nextHole(it); !ok {
			break
		}
	}
	buf = append(buf, text[lastEnd:]...)
	return own(buf)
}

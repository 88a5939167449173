package lazyregex

import (
	"iter"
	"unicode/utf8"

	"github.com/coregx/lazyregex/internal/conv"
	"github.com/coregx/lazyregex/remove"
)

// Matcher finds pattern occurrences in a byte buffer.
//
// FindAt returns the leftmost match in b starting at or after at, with
// offsets relative to b. Implementations must see the whole buffer so that
// context-sensitive assertions (^, \b) behave the same at any at.
// *Regex, *Lazy and *Literals implement Matcher.
type Matcher interface {
	FindAt(b []byte, at int) (start, end int, ok bool)
}

var (
	_ Matcher = (*Regex)(nil)
	_ Matcher = (*Literals)(nil)
	_ Matcher = (*Lazy)(nil)
)

// spanIter walks a buffer with the same rules as stdlib FindAll: after an
// empty match the search resumes one rune later, and an empty match right
// after the previous match is dropped.
type spanIter struct {
	m       Matcher
	b       []byte
	pos     int
	prevEnd int
}

func newSpanIter(m Matcher, b []byte) spanIter {
	return spanIter{m: m, b: b, prevEnd: -1}
}

// Next implements remove.Iterator.
func (it *spanIter) Next() (remove.Span, bool) {
	for it.pos <= len(it.b) {
		start, end, ok := it.m.FindAt(it.b, it.pos)
		if !ok {
			break
		}

		accept := true
		if end == it.pos {
			// empty match at the cursor
			if start == it.prevEnd {
				accept = false
			}
			it.pos += it.width()
		} else {
			it.pos = end
		}
		it.prevEnd = end

		if accept {
			return remove.Span{Start: start, End: end}, true
		}
	}
	it.pos = len(it.b) + 1
	return remove.Span{}, false
}

// width is the size of the rune at the cursor, or 1 at the end of input.
func (it *spanIter) width() int {
	if it.pos >= len(it.b) {
		return 1
	}
	_, w := utf8.DecodeRune(it.b[it.pos:])
	return w
}

// Spans returns a lazy iterator over the non-overlapping matches of m in b.
// The iterator is forward-only and is exhausted after one traversal.
func Spans(m Matcher, b []byte) remove.Iterator {
	it := newSpanIter(m, b)
	return &it
}

// SpansString is the string variant of Spans. s is not copied.
func SpansString(m Matcher, s string) remove.Iterator {
	return Spans(m, conv.StringView(s))
}

func all(m Matcher, b []byte) iter.Seq[remove.Span] {
	return func(yield func(remove.Span) bool) {
		it := newSpanIter(m, b)
		for s, ok := it.Next(); ok; s, ok = it.Next() {
			if !yield(s) {
				return
			}
		}
	}
}

// RemoveFirstMatch removes the first match of m from b.
func RemoveFirstMatch(m Matcher, b []byte) remove.Result[[]byte] {
	it := newSpanIter(m, b)
	return remove.FirstBytes(&it, b)
}

// RemoveFirstMatchString removes the first match of m from s.
func RemoveFirstMatchString(m Matcher, s string) remove.Result[string] {
	it := newSpanIter(m, conv.StringView(s))
	return remove.First(&it, s)
}

// RemoveAllMatches removes every match of m from b.
func RemoveAllMatches(m Matcher, b []byte) remove.Result[[]byte] {
	it := newSpanIter(m, b)
	return remove.AllBytes(&it, b)
}

// RemoveAllMatchesString removes every match of m from s.
func RemoveAllMatchesString(m Matcher, s string) remove.Result[string] {
	it := newSpanIter(m, conv.StringView(s))
	return remove.All(&it, s)
}

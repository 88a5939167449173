// Package remove deletes match spans from text while avoiding copies.
//
// The removers consume a lazy, ascending, non-overlapping sequence of spans
// (an Iterator) and return a Result that is either a view into the input
// or a single freshly allocated buffer:
//
//	it := remove.NewSliceIterator(remove.Span{Start: 0, End: 6}, remove.Span{Start: 12, End: 17})
//	res := remove.All(it, "154681string63731")
//	fmt.Println(res.Text(), res.Borrowed()) // "string true"
//
// Removing spans that only touch the two ends of the text is a pure offset
// adjustment. Only when a kept run has to be joined with another one is the
// surviving content copied, and then exactly once.
//
// The package knows nothing about regular expressions. Spans usually come
// from a compiled pattern (see the lazyregex package), but any producer that
// honors the ordering contract works.
package remove

import "strconv"

// Span is a half-open byte range [Start, End) into a text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// String returns the span as "[start:end]".
func (s Span) String() string {
	return "[" + strconv.Itoa(s.Start) + ":" + strconv.Itoa(s.End) + "]"
}

// Iterator produces spans over one text, one at a time.
//
// Spans must be ascending and non-overlapping: for successive spans a and b,
// a.End <= b.Start, and every span lies within the text. The removers trust
// this contract and do not re-check it; wrap an iterator with Checked to
// assert it. An iterator is consumed once and is not safe for concurrent use.
type Iterator interface {
	// Next returns the next span, or false when the sequence is exhausted.
	Next() (Span, bool)
}

// SliceIterator yields a fixed list of spans.
type SliceIterator struct {
	spans []Span
	pos   int
}

// NewSliceIterator returns an iterator over spans. The slice is not copied.
func NewSliceIterator(spans ...Span) *SliceIterator {
	return &SliceIterator{spans: spans}
}

// Next implements Iterator.
func (it *SliceIterator) Next() (Span, bool) {
	if it.pos >= len(it.spans) {
		return Span{}, false
	}
	s := it.spans[it.pos]
	it.pos++
	return s, true
}

// Reset rewinds the iterator to the first span.
func (it *SliceIterator) Reset() {
	it.pos = 0
}

package remove

import "github.com/coregx/lazyregex/internal/conv"

// Replace substitutes repl(s[span]) for the first n spans produced by it,
// or for all of them when n < 0.
//
// Unlike removal, empty spans count: repl's result is inserted there. When
// it produces no span, or n is 0, s is returned borrowed. Otherwise the
// result is owned.
func Replace(it Iterator, s string, n int, repl func(string) string) Result[string] {
	buf, ok := replace(it, s, n, repl)
	if !ok {
		return Result[string]{text: s}
	}
	return Result[string]{text: conv.BytesView(buf), owned: true}
}

// ReplaceBytes is the []byte variant of Replace.
func ReplaceBytes(it Iterator, b []byte, n int, repl func([]byte) []byte) Result[[]byte] {
	buf, ok := replace(it, b, n, repl)
	if !ok {
		return Result[[]byte]{text: b}
	}
	return Result[[]byte]{text: buf, owned: true}
}

// replace sizes buf for the input alone; replacements longer than their
// match make it grow.
func replace[T Text](it Iterator, text T, n int, repl func(T) T) ([]byte, bool) {
	if n == 0 {
		return nil, false
	}
	m, ok := it.Next()
	if !ok {
		return nil, false
	}

	buf := make([]byte, 0, len(text))
	lastEnd := 0
	for done := 0; ok; m, ok = it.Next() {
		buf = append(buf, text[lastEnd:m.Start]...)
		buf = append(buf, repl(text[m.Start:m.End])...)
		lastEnd = m.End

		if done++; n > 0 && done == n {
			break
		}
	}
	buf = append(buf, text[lastEnd:]...)
	return buf, true
}

package lazyregex

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/lazyregex/internal/conv"
	"github.com/coregx/lazyregex/remove"
)

// Literals matches any of a fixed set of words using an Aho-Corasick
// automaton. It suits word lists too large to write as an alternation,
// such as stop words or banned tokens.
//
// A Literals is safe for concurrent use by multiple goroutines.
type Literals struct {
	automaton *ahocorasick.Automaton
	words     []string
}

// CompileLiterals builds a matcher for words. Words are matched as raw
// bytes, with no case folding. Among words that can match at the same
// position, the automaton's leftmost match wins.
func CompileLiterals(words ...string) (*Literals, error) {
	if len(words) == 0 {
		return nil, ErrNoLiterals
	}

	builder := ahocorasick.NewBuilder()
	for _, w := range words {
		if w == "" {
			return nil, ErrEmptyLiteral
		}
		builder.AddPattern([]byte(w))
	}

	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return &Literals{
		automaton: automaton,
		words:     append([]string(nil), words...),
	}, nil
}

// MustCompileLiterals is like CompileLiterals but panics on error.
func MustCompileLiterals(words ...string) *Literals {
	l, err := CompileLiterals(words...)
	if err != nil {
		panic(err)
	}
	return l
}

// Words returns a copy of the words the matcher was built from.
func (l *Literals) Words() []string {
	return append([]string(nil), l.words...)
}

// FindAt implements Matcher.
func (l *Literals) FindAt(b []byte, at int) (start, end int, ok bool) {
	// words are never empty, so nothing can match at the end of input
	if at >= len(b) {
		return -1, -1, false
	}
	m := l.automaton.Find(b, at)
	if m == nil {
		return -1, -1, false
	}
	return m.Start, m.End, true
}

// Match reports whether b contains any of the words.
func (l *Literals) Match(b []byte) bool {
	return l.automaton.IsMatch(b)
}

// MatchString reports whether s contains any of the words.
func (l *Literals) MatchString(s string) bool {
	return l.automaton.IsMatch(conv.StringView(s))
}

// RemoveAll removes every occurrence of the words from b.
func (l *Literals) RemoveAll(b []byte) remove.Result[[]byte] {
	return RemoveAllMatches(l, b)
}

// RemoveAllString removes every occurrence of the words from s.
func (l *Literals) RemoveAllString(s string) remove.Result[string] {
	return RemoveAllMatchesString(l, s)
}

// RemoveFirst removes the leftmost occurrence from b.
func (l *Literals) RemoveFirst(b []byte) remove.Result[[]byte] {
	return RemoveFirstMatch(l, b)
}

// RemoveFirstString removes the leftmost occurrence from s.
func (l *Literals) RemoveFirstString(s string) remove.Result[string] {
	return RemoveFirstMatchString(l, s)
}

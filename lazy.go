package lazyregex

import (
	"sync"

	"github.com/coregx/lazyregex/remove"
)

// Lazy is a regular expression compiled on first use and reused afterwards.
//
// It is meant for package-level variables: declaring one costs nothing, and
// the pattern is compiled exactly once even when the first uses race.
// An invalid pattern panics on first use, like MustCompile.
//
// Example:
//
//	var digits = lazyregex.New(`\d+`, lazyregex.Flags{})
//
//	func clean(s string) string {
//	    return digits.RemoveAllString(s).Text()
//	}
type Lazy struct {
	pattern string
	flags   Flags
	regex   func() *Regex
}

// New returns a Lazy for pattern. Nothing is compiled until first use.
func New(pattern string, flags Flags) *Lazy {
	l := &Lazy{pattern: pattern, flags: flags}
	l.regex = sync.OnceValue(func() *Regex {
		return MustCompileWithFlags(l.pattern, l.flags)
	})
	return l
}

// Regex compiles the pattern if needed and returns it.
func (l *Lazy) Regex() *Regex {
	return l.regex()
}

// String returns the pattern text without compiling it.
func (l *Lazy) String() string {
	return l.pattern
}

// FindAt implements Matcher.
func (l *Lazy) FindAt(b []byte, at int) (start, end int, ok bool) {
	return l.Regex().FindAt(b, at)
}

// MatchString reports whether s contains any match of the pattern.
func (l *Lazy) MatchString(s string) bool {
	return l.Regex().MatchString(s)
}

// RemoveFirst removes the leftmost match from b.
func (l *Lazy) RemoveFirst(b []byte) remove.Result[[]byte] {
	return l.Regex().RemoveFirst(b)
}

// RemoveFirstString removes the leftmost match from s.
func (l *Lazy) RemoveFirstString(s string) remove.Result[string] {
	return l.Regex().RemoveFirstString(s)
}

// RemoveAll removes every match from b.
func (l *Lazy) RemoveAll(b []byte) remove.Result[[]byte] {
	return l.Regex().RemoveAll(b)
}

// RemoveAllString removes every match from s.
func (l *Lazy) RemoveAllString(s string) remove.Result[string] {
	return l.Regex().RemoveAllString(s)
}

// FindString returns the leftmost match in s, or "" if there is none.
func (l *Lazy) FindString(s string) string {
	return l.Regex().FindString(s)
}

// ReplaceStringFunc replaces the leftmost match in s with repl applied to it.
func (l *Lazy) ReplaceStringFunc(s string, repl func(string) string) remove.Result[string] {
	return l.Regex().ReplaceStringFunc(s, repl)
}

// ReplaceAllStringFunc replaces every match in s with repl applied to it.
func (l *Lazy) ReplaceAllStringFunc(s string, repl func(string) string) remove.Result[string] {
	return l.Regex().ReplaceAllStringFunc(s, repl)
}

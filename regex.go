// Package lazyregex removes pattern matches from text without copying
// whenever it can.
//
// Patterns are compiled once by the coregex engine and reused for any number
// of texts. Removal returns a view into the input when the matches only
// touch its two ends, and a single fresh allocation otherwise:
//
//	re := lazyregex.MustCompile(`\d+`)
//
//	res := re.RemoveAllString("154681string63731")
//	fmt.Println(res.Text())     // "string"
//	fmt.Println(res.Borrowed()) // true, no allocation
//
//	res = re.RemoveAllString("a1b2c3")
//	fmt.Println(res.Text())  // "abc"
//	fmt.Println(res.Owned()) // true, one allocation
//
// Package-level regular expressions are usually declared with New, which
// defers compilation to first use:
//
//	var trailingSpace = lazyregex.New(`[ \t]+$`, lazyregex.MustParseFlags("m"))
//
// Both a string and a []byte variant exist for every operation. Offsets are
// byte offsets in both.
//
// Besides regular expressions, CompileLiterals builds an Aho-Corasick
// matcher for a fixed set of words. Any type with a FindAt method can be
// used with RemoveFirstMatch and RemoveAllMatches.
package lazyregex

import (
	"iter"

	"github.com/coregx/coregex/meta"
	"github.com/coregx/lazyregex/internal/conv"
	"github.com/coregx/lazyregex/remove"
)

// Regex is a compiled regular expression.
//
// A Regex is safe for concurrent use by multiple goroutines.
type Regex struct {
	engine  *meta.Engine
	pattern string
	flags   Flags
}

// Compile compiles a regular expression pattern.
//
// Syntax is the same as Go's stdlib regexp. Returns a *CompileError if the
// pattern is invalid.
//
// Example:
//
//	re, err := lazyregex.Compile(`\s+$`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithFlags compiles pattern with the given flags and the default
// engine configuration.
//
// Example:
//
//	re, err := lazyregex.CompileWithFlags(`
//	    \d{4} - \d{2}   # year and month
//	`, lazyregex.Flags{IgnoreWhitespace: true})
func CompileWithFlags(pattern string, flags Flags) (*Regex, error) {
	config := DefaultConfig()
	config.Flags = flags
	return CompileWithConfig(pattern, config)
}

// CompileWithConfig compiles pattern with a custom configuration.
// An invalid configuration is reported before the pattern is looked at.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	engine, err := meta.CompileWithConfig(config.Flags.expand(pattern), config.Engine)
	if err != nil {
		return nil, &CompileError{
			Pattern: pattern,
			Flags:   config.Flags,
			Err:     err,
		}
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
		flags:   config.Flags,
	}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
// It simplifies safe initialization of global variables.
func MustCompile(pattern string) *Regex {
	return MustCompileWithFlags(pattern, Flags{})
}

// MustCompileWithFlags is like CompileWithFlags but panics on error.
func MustCompileWithFlags(pattern string, flags Flags) *Regex {
	re, err := CompileWithFlags(pattern, flags)
	if err != nil {
		panic("lazyregex: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// String returns the pattern text used to compile the regular expression,
// without its flags.
func (r *Regex) String() string {
	return r.pattern
}

// Flags returns the flags the regular expression was compiled with.
func (r *Regex) Flags() Flags {
	return r.flags
}

// FindAt reports the leftmost match in b that starts at or after at.
// Anchors and word boundaries see all of b, not just b[at:].
func (r *Regex) FindAt(b []byte, at int) (start, end int, ok bool) {
	return r.engine.FindIndicesAt(b, at)
}

// Match reports whether b contains any match of the pattern.
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(b)
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.engine.IsMatch(conv.StringView(s))
}

// FindIndex returns the location of the leftmost match in b as b[loc[0]:loc[1]],
// or nil if there is none.
func (r *Regex) FindIndex(b []byte) []int {
	start, end, ok := r.engine.FindIndices(b)
	if !ok {
		return nil
	}
	return []int{start, end}
}

// FindStringIndex is the string variant of FindIndex.
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex(conv.StringView(s))
}

// Find returns the leftmost match in b, or nil if there is none.
// The result is a sub-slice of b.
func (r *Regex) Find(b []byte) []byte {
	start, end, ok := r.engine.FindIndices(b)
	if !ok {
		return nil
	}
	return b[start:end:end]
}

// FindString returns the leftmost match in s, or "" if there is none.
// Use FindStringIndex to tell an empty match from no match.
func (r *Regex) FindString(s string) string {
	start, end, ok := r.engine.FindIndices(conv.StringView(s))
	if !ok {
		return ""
	}
	return s[start:end]
}

// All returns the successive non-overlapping matches in b, in order.
// Matching is lazy: each span is searched for when the loop asks for it.
func (r *Regex) All(b []byte) iter.Seq[remove.Span] {
	return all(r, b)
}

// AllString is the string variant of All.
func (r *Regex) AllString(s string) iter.Seq[remove.Span] {
	return all(r, conv.StringView(s))
}

// Count returns the number of non-overlapping matches in b.
func (r *Regex) Count(b []byte) int {
	n := 0
	it := Spans(r, b)
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return n
}

// RemoveFirst removes the leftmost match from b.
// See remove.First for when the result borrows from b.
func (r *Regex) RemoveFirst(b []byte) remove.Result[[]byte] {
	return RemoveFirstMatch(r, b)
}

// RemoveFirstString removes the leftmost match from s.
//
// Example:
//
//	re := lazyregex.MustCompile(`^\d+`)
//	re.RemoveFirstString("154681string").Text() // "string", borrowed
func (r *Regex) RemoveFirstString(s string) remove.Result[string] {
	return RemoveFirstMatchString(r, s)
}

// RemoveAll removes every match from b.
// See remove.All for when the result borrows from b.
func (r *Regex) RemoveAll(b []byte) remove.Result[[]byte] {
	return RemoveAllMatches(r, b)
}

// RemoveAllString removes every match from s.
//
// Example:
//
//	re := lazyregex.MustCompile(`\d`)
//	re.RemoveAllString("a11b22c33").Text() // "abc", owned
func (r *Regex) RemoveAllString(s string) remove.Result[string] {
	return RemoveAllMatchesString(r, s)
}

// ReplaceFunc replaces the leftmost match in b with repl applied to it.
// b is returned borrowed when there is no match.
func (r *Regex) ReplaceFunc(b []byte, repl func([]byte) []byte) remove.Result[[]byte] {
	return remove.ReplaceBytes(Spans(r, b), b, 1, repl)
}

// ReplaceStringFunc is the string variant of ReplaceFunc.
//
// Example:
//
//	re := lazyregex.MustCompileWithFlags(`fu*`, lazyregex.Flags{CaseInsensitive: true})
//	re.ReplaceStringFunc("Fuu fuuu", strings.ToUpper).Text() // "FUU fuuu"
func (r *Regex) ReplaceStringFunc(s string, repl func(string) string) remove.Result[string] {
	return remove.Replace(SpansString(r, s), s, 1, repl)
}

// ReplaceAllFunc replaces every match in b with repl applied to it.
// Empty matches are replaced too, as with regexp.ReplaceAllFunc.
func (r *Regex) ReplaceAllFunc(b []byte, repl func([]byte) []byte) remove.Result[[]byte] {
	return remove.ReplaceBytes(Spans(r, b), b, -1, repl)
}

// ReplaceAllStringFunc is the string variant of ReplaceAllFunc.
func (r *Regex) ReplaceAllStringFunc(s string, repl func(string) string) remove.Result[string] {
	return remove.Replace(SpansString(r, s), s, -1, repl)
}

package lazyregex

import (
	"strconv"
	"strings"
)

// Flags are the pattern-level options accepted at compile time.
//
// The single-letter form used by ParseFlags and String is the familiar one:
//
//	i  CaseInsensitive
//	m  MultiLine          (^ and $ match at line boundaries)
//	s  DotMatchesNewline  (. matches \n)
//	x  IgnoreWhitespace   (whitespace and # comments ignored, inside [...] too)
//	U  SwapGreed          (x* is lazy, x*? is greedy)
type Flags struct {
	CaseInsensitive   bool
	MultiLine         bool
	DotMatchesNewline bool
	IgnoreWhitespace  bool
	SwapGreed         bool
}

// FlagError reports an unknown flag letter.
type FlagError struct {
	Flag rune
	Pos  int
}

// Error implements the error interface.
func (e *FlagError) Error() string {
	return "lazyregex: unrecognized regex flag " + strconv.QuoteRune(e.Flag) + " at offset " + strconv.Itoa(e.Pos)
}

// ParseFlags parses a flag suffix such as "im" or "xU".
// Letters may repeat; order does not matter.
func ParseFlags(s string) (Flags, error) {
	var f Flags
	for i, c := range s {
		switch c {
		case 'i':
			f.CaseInsensitive = true
		case 'm':
			f.MultiLine = true
		case 's':
			f.DotMatchesNewline = true
		case 'x':
			f.IgnoreWhitespace = true
		case 'U':
			f.SwapGreed = true
		default:
			return Flags{}, &FlagError{Flag: c, Pos: i}
		}
	}
	return f, nil
}

// MustParseFlags is like ParseFlags but panics on an unknown letter.
func MustParseFlags(s string) Flags {
	f, err := ParseFlags(s)
	if err != nil {
		panic(err)
	}
	return f
}

// String returns the flags in canonical "imsxU" order.
func (f Flags) String() string {
	var sb strings.Builder
	if f.CaseInsensitive {
		sb.WriteByte('i')
	}
	if f.MultiLine {
		sb.WriteByte('m')
	}
	if f.DotMatchesNewline {
		sb.WriteByte('s')
	}
	if f.IgnoreWhitespace {
		sb.WriteByte('x')
	}
	if f.SwapGreed {
		sb.WriteByte('U')
	}
	return sb.String()
}

// expand rewrites pattern into plain Go syntax carrying the flags.
// i, m, s and U become a leading inline group; x is applied to the text
// since Go's syntax has no verbose mode.
func (f Flags) expand(pattern string) string {
	if f.IgnoreWhitespace {
		pattern = stripVerbose(pattern)
	}

	var inline []byte
	if f.CaseInsensitive {
		inline = append(inline, 'i')
	}
	if f.MultiLine {
		inline = append(inline, 'm')
	}
	if f.DotMatchesNewline {
		inline = append(inline, 's')
	}
	if f.SwapGreed {
		inline = append(inline, 'U')
	}
	if len(inline) == 0 {
		return pattern
	}
	return "(?" + string(inline) + ")" + pattern
}

// stripVerbose removes unescaped whitespace and #-comments everywhere in
// the pattern, character classes included, so `[a b]` is the class [ab].
// An escaped space becomes \x20 because Go rejects `\ `.
func stripVerbose(p string) string {
	var sb strings.Builder
	sb.Grow(len(p))

	inClass := false
	for i := 0; i < len(p); i++ {
		c := p[i]
		switch {
		case c == '\\' && i+1 < len(p):
			i++
			if p[i] == ' ' {
				sb.WriteString(`\x20`)
			} else {
				sb.WriteByte(c)
				sb.WriteByte(p[i])
			}
		case isSpace(c) || c == '#':
			i = skipVerbose(p, i) - 1
		case inClass:
			switch {
			case c == '[' && i+1 < len(p) && p[i+1] == ':':
				// [:alpha:] inside a class
				end := strings.Index(p[i:], ":]")
				if end < 0 {
					sb.WriteString(p[i:])
					return sb.String()
				}
				sb.WriteString(p[i : i+end+2])
				i += end + 1
			case c == ']':
				inClass = false
				sb.WriteByte(c)
			default:
				sb.WriteByte(c)
			}
		case c == '[':
			inClass = true
			sb.WriteByte(c)
			i = skipVerbose(p, i+1) - 1
			if i+1 < len(p) && p[i+1] == '^' {
				sb.WriteByte('^')
				i = skipVerbose(p, i+2) - 1
			}
			// a ] right after [ or [^ is a literal
			if i+1 < len(p) && p[i+1] == ']' {
				sb.WriteByte(']')
				i++
			}
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// skipVerbose returns the index of the first byte at or after i that is
// neither whitespace nor part of a # comment.
func skipVerbose(p string, i int) int {
	for i < len(p) {
		switch {
		case isSpace(p[i]):
			i++
		case p[i] == '#':
			for i < len(p) && p[i] != '\n' {
				i++
			}
		default:
			return i
		}
	}
	return i
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

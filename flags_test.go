package lazyregex

import (
	"errors"
	"testing"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		input string
		want  Flags
	}{
		{"", Flags{}},
		{"i", Flags{CaseInsensitive: true}},
		{"ms", Flags{MultiLine: true, DotMatchesNewline: true}},
		{"xU", Flags{IgnoreWhitespace: true, SwapGreed: true}},
		{"Uxsmi", Flags{true, true, true, true, true}},
		{"ii", Flags{CaseInsensitive: true}},
	}

	for _, tt := range tests {
		got, err := ParseFlags(tt.input)
		if err != nil {
			t.Errorf("ParseFlags(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFlags(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestParseFlagsError(t *testing.T) {
	_, err := ParseFlags("imB")

	var flagErr *FlagError
	if !errors.As(err, &flagErr) {
		t.Fatalf("ParseFlags error = %v, want *FlagError", err)
	}
	if flagErr.Flag != 'B' || flagErr.Pos != 2 {
		t.Errorf("FlagError = {%q, %d}, want {'B', 2}", flagErr.Flag, flagErr.Pos)
	}
	if want := `lazyregex: unrecognized regex flag 'B' at offset 2`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestMustParseFlagsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustParseFlags did not panic")
		}
	}()
	MustParseFlags("q")
}

func TestFlagsString(t *testing.T) {
	for _, s := range []string{"", "i", "im", "imsxU", "sU", "x"} {
		if got := MustParseFlags(s).String(); got != s {
			t.Errorf("ParseFlags(%q).String() = %q", s, got)
		}
	}
}

func TestFlagsExpand(t *testing.T) {
	tests := []struct {
		flags   string
		pattern string
		want    string
	}{
		{"", `\d+`, `\d+`},
		{"i", `abc`, `(?i)abc`},
		{"msU", `a.b`, `(?msU)a.b`},
		{"x", `\d+ # digits`, `\d+`},
		{"ix", "a b\n c", `(?i)abc`},
	}

	for _, tt := range tests {
		if got := MustParseFlags(tt.flags).expand(tt.pattern); got != tt.want {
			t.Errorf("expand(%q, %q) = %q, want %q", tt.flags, tt.pattern, got, tt.want)
		}
	}
}

func TestStripVerbose(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`a b c`, `abc`},
		{"a\tb\nc\r\n", `abc`},
		{`a\ b`, `a\x20b`},
		{`a\#b # comment`, `a\#b`},
		{"a # one\nb # two\n", `ab`},
		{`[a b]`, `[ab]`},
		{`[a\ b]`, `[a\x20b]`},
		{`[ ^ a]`, `[^a]`},
		{`[\#] x`, `[\#]x`},
		{"[a # comment\nb]", `[ab]`},
		{`[] ] x`, `[]]x`},
		{`[^] ] x`, `[^]]x`},
		{`[[:alpha:] ] x`, `[[:alpha:]]x`},
		{`\d + \s *`, `\d+\s*`},
		{`# only a comment`, ``},
	}

	for _, tt := range tests {
		if got := stripVerbose(tt.input); got != tt.want {
			t.Errorf("stripVerbose(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFlagsRemoval(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		flags   string
		input   string
		want    string
	}{
		{"case insensitive", `hello`, "i", "HeLLo world", " world"},
		{"case sensitive", `hello`, "", "HeLLo world", "HeLLo world"},
		{"multi line", `^\s+`, "m", "  a\n  b", "a\nb"},
		{"single line", `^\s+`, "", "  a\n  b", "a\n  b"},
		{"dot matches newline", `a.b`, "s", "a\nb c", " c"},
		{"dot stops at newline", `a.b`, "", "a\nb c", "a\nb c"},
		{"swap greed", `a+`, "U", "xaaa", "x"},
		{"verbose", `\d+   # a number`, "x", "abc123", "abc"},
		{"verbose escaped space", `a\ b`, "x", "xa by", "xy"},
		{"verbose class", `[a b]+`, "x", "a b", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := MustCompileWithFlags(tt.pattern, MustParseFlags(tt.flags))
			if got := re.RemoveAllString(tt.input).Text(); got != tt.want {
				t.Errorf("RemoveAllString(%q/%s, %q) = %q, want %q",
					tt.pattern, tt.flags, tt.input, got, tt.want)
			}
		})
	}
}

// Non-greedy matching splits one greedy hole into abutting matches that
// merge back into a single hole.
func TestSwapGreedMatches(t *testing.T) {
	re := MustCompileWithFlags(`a+`, Flags{SwapGreed: true})
	n := 0
	for s := range re.AllString("xaaa") {
		if s.Len() != 1 {
			t.Errorf("span %v has length %d, want 1", s, s.Len())
		}
		n++
	}
	if n != 3 {
		t.Errorf("got %d matches, want 3", n)
	}
}

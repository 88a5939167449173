package remove

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckedPanics(t *testing.T) {
	tests := []struct {
		name  string
		spans []Span
		msg   string
	}{
		{"past end", []Span{{2, 9}}, "out of range"},
		{"negative", []Span{{-1, 2}}, "out of range"},
		{"reversed", []Span{{3, 2}}, "start after end"},
		{"overlapping", []Span{{0, 3}, {2, 4}}, "overlaps"},
		{"descending", []Span{{4, 5}, {1, 2}}, "overlaps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("expected panic for %v", tt.spans)
				}
				err, ok := r.(error)
				if !ok {
					t.Fatalf("panic value %v is not an error", r)
				}
				var spanErr *SpanError
				if !errors.As(err, &spanErr) {
					t.Fatalf("panic value %T, want *SpanError", r)
				}
				if !strings.Contains(spanErr.Error(), tt.msg) {
					t.Errorf("error %q does not mention %q", spanErr.Error(), tt.msg)
				}
			}()
			_ = All(Checked(NewSliceIterator(tt.spans...), 6), "abcdef")
		})
	}
}

func TestCheckedPassesValidSpans(t *testing.T) {
	spans := []Span{{0, 0}, {0, 2}, {2, 2}, {3, 4}, {6, 6}}
	got := All(Checked(NewSliceIterator(spans...), 6), "abcdef")
	if got.Text() != "cef" {
		t.Errorf("All = %q, want %q", got.Text(), "cef")
	}
}

func BenchmarkAll(b *testing.B) {
	text := strings.Repeat("abc1", 1024)
	var spaced []Span
	for i := 3; i < len(text); i += 4 {
		spaced = append(spaced, Span{Start: i, End: i + 1})
	}

	benchmarks := []struct {
		name  string
		spans []Span
	}{
		{"none", nil},
		{"ends", []Span{{0, 3}, {len(text) - 1, len(text)}}},
		{"spaced", spaced},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			it := NewSliceIterator(bm.spans...)
			b.SetBytes(int64(len(text)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				it.Reset()
				_ = All(it, text)
			}
		})
	}
}

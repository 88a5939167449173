// Package conv provides zero-copy conversions between strings and byte slices.
//
// Both directions share memory with their argument. Callers must not mutate
// a byte slice obtained from StringView, and must not mutate a byte slice
// after handing it to BytesView. Misuse breaks the immutability of Go strings.
package conv

import "unsafe"

// StringView returns the bytes of s without copying.
// The result must be treated as read-only.
//
//go:inline
func StringView(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BytesView returns b as a string without copying.
// b must not be modified afterwards.
//
//go:inline
func BytesView(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Within reports whether sub points into the memory of s.
// Empty strings never point anywhere and report false.
func Within(sub, s string) bool {
	if sub == "" || s == "" {
		return false
	}
	base := uintptr(unsafe.Pointer(unsafe.StringData(s)))
	p := uintptr(unsafe.Pointer(unsafe.StringData(sub)))
	return p >= base && p+uintptr(len(sub)) <= base+uintptr(len(s))
}

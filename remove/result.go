package remove

// Text is the element representation a remover works on.
// Offsets are byte offsets for both kinds.
type Text interface {
	string | []byte
}

// Result is the outcome of a removal.
//
// A borrowed Result is a sub-slice (or substring) of the input and shares its
// memory. An owned Result was freshly allocated and has no relation to the
// input. Callers holding a borrowed []byte must not modify it unless they
// also own the input.
type Result[T Text] struct {
	text  T
	owned bool
}

// Text returns the surviving content.
func (r Result[T]) Text() T {
	return r.text
}

// Owned reports whether the content was copied into a new buffer.
func (r Result[T]) Owned() bool {
	return r.owned
}

// Borrowed reports whether the content is a view into the input.
func (r Result[T]) Borrowed() bool {
	return !r.owned
}

// Len returns the length of the surviving content in bytes.
func (r Result[T]) Len() int {
	return len(r.text)
}

// String returns the content as a string. For a []byte result this copies.
func (r Result[T]) String() string {
	return string(r.text)
}

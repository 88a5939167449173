package lazyregex

import "errors"

// ErrEmptyLiteral is returned by CompileLiterals for an empty word, which
// would match everywhere and remove nothing.
var ErrEmptyLiteral = errors.New("lazyregex: empty literal")

// ErrNoLiterals is returned by CompileLiterals when no word is given.
var ErrNoLiterals = errors.New("lazyregex: no literals")

// CompileError reports a pattern that could not be compiled.
//
// Pattern is the text passed by the caller, before flags were applied.
// Err is the engine's error; syntax errors keep the stdlib wording
// ("error parsing regexp: ...").
type CompileError struct {
	Pattern string
	Flags   Flags
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

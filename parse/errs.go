package parse

import (
	"errors"
	"fmt"
)

// The sentinel errors below carry the fixed diagnostic messages of the
// parser. Callers match them with errors.Is against a returned *Error.
var (
	ErrExpectedValue     = errors.New("Expected value")
	ErrExpectedKey       = errors.New("Expected key")
	ErrExpectedColon     = errors.New("Expected colon")
	ErrExpectedSeparator = errors.New("Expected separator")
	ErrEmptyValue        = errors.New("Value must not be empty")

	ErrUnterminatedString = errors.New("Unterminated string")
	ErrUnterminatedArray  = errors.New("Unterminated array")
	ErrUnterminatedObject = errors.New("Unterminated object")

	ErrIncompleteEscape = errors.New("Incomplete character escape")
	ErrInvalidEscape    = errors.New("Invalid character escape")
	ErrUnicodeEscape    = errors.New("Unicode escapes are not implemented yet")
	ErrInvalidNumber    = errors.New("Invalid number")
)

// Error is a parse failure at a byte offset in the input buffer. It carries
// no source snippet; Context renders one from the buffer and the cursor.
type Error struct {
	Cursor int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err, e.Cursor)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message is the diagnostic text without the offset.
func (e *Error) Message() string {
	return e.Err.Error()
}

func errAt(cursor int, err error) *Error {
	return &Error{Cursor: cursor, Err: err}
}

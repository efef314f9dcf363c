package token

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnexpectedToken is matched by every *UnexpectedTokenError.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrMalformedNumber is matched by every *NumberError.
	ErrMalformedNumber = errors.New("malformed number")
	// ErrSyntax is matched by every *SyntaxError.
	ErrSyntax = errors.New("syntax error")
)

// UnexpectedTokenError reports a token of the wrong kind at a required position.
type UnexpectedTokenError struct {
	Expected []Kind
	Actual   Kind
	Field    string
	Offset   int
}

func (e *UnexpectedTokenError) Error() string {
	expected := make([]string, len(e.Expected))
	for i, k := range e.Expected {
		expected[i] = k.String()
	}
	msg := fmt.Sprintf("unexpected token %s at %d, expected %s", e.Actual, e.Offset, strings.Join(expected, " or "))
	if e.Field != "" {
		msg += fmt.Sprintf(" for field %q", e.Field)
	}
	return msg
}

func (e *UnexpectedTokenError) Is(target error) bool { return target == ErrUnexpectedToken }

// NumberError reports a value that could not be read as a 64-bit integer.
//
// The strconv error (if any) can be accessed via errors.Unwrap.
type NumberError struct {
	Field  string
	Text   string
	Offset int
	cause  error
}

func (e *NumberError) Error() string {
	msg := fmt.Sprintf("malformed number %q at %d", e.Text, e.Offset)
	if e.Field != "" {
		msg += fmt.Sprintf(" for field %q", e.Field)
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *NumberError) Unwrap() error { return e.cause }

func (e *NumberError) Is(target error) bool { return target == ErrMalformedNumber }

// SyntaxError reports input that does not form a valid token stream.
type SyntaxError struct {
	Msg    string
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Offset, e.Msg)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// Expect returns an *UnexpectedTokenError unless actual matches one of expected.
func Expect(c Cursor, actual Kind, expected ...Kind) error {
	for _, k := range expected {
		if k == actual {
			return nil
		}
	}
	return Unexpected(c, actual, expected...)
}

// Unexpected builds an *UnexpectedTokenError positioned at the cursor.
func Unexpected(c Cursor, actual Kind, expected ...Kind) error {
	return &UnexpectedTokenError{
		Expected: expected,
		Actual:   actual,
		Field:    c.Name(),
		Offset:   c.Offset(),
	}
}

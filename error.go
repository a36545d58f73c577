package getopt

import (
	"errors"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
//
// Every error returned by a parse call wraps exactly one of these, so
// callers can classify failures with [errors.Is]. All of them abort the
// whole parse; there is no partial result.
var (
	// ErrConfiguration reports a malformed option list: an option declaring
	// no short or long form, or two options sharing a form. It is detected
	// before scanning begins.
	ErrConfiguration = NewError("invalid option configuration")

	// ErrUnknownOption reports a token that matches no declared form.
	ErrUnknownOption = NewError("unrecognized option")

	// ErrArgumentNotAllowed reports a value supplied to an option that
	// accepts none.
	ErrArgumentNotAllowed = NewError("option does not accept an argument")

	// ErrMissingArgument reports a required argument that was absent,
	// whether inline or at end of input.
	ErrMissingArgument = NewError("option requires an argument")

	// ErrExhausted reports a second traversal of a single-use event
	// sequence returned by [Events].
	ErrExhausted = NewError("event sequence already consumed")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is matches any Error derived from the same sentinel, regardless of
// attributes or wrapped cause.
func (e *Error) Is(target error) bool {
	t := &Error{}

	return errors.As(target, &t) && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

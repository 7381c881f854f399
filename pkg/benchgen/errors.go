package benchgen

import "fmt"

// Kind classifies why a benchgen call failed, so a caller can branch on
// the failure category without string-matching an error message.
type Kind int

const (
	// KindInvalid marks a bad caller input: an unknown suite or column
	// name, a non-positive chunk size, a negative start row.
	KindInvalid Kind = iota
	// KindParse marks a malformed distribution source: a .dst file that
	// doesn't tokenize, a .idx file that fails its trailer checks.
	KindParse
	// KindMissing marks a resource the caller asked for that isn't
	// there: an unresolved distribution name, a table not in a suite.
	KindMissing
	// KindIO marks a failure reading or opening a file.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindParse:
		return "parse"
	case KindMissing:
		return "missing"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is the error type every fallible benchgen entry point returns.
// Cause, when set, is the underlying error this one wraps; Unwrap exposes
// it so callers can still errors.Is/errors.As through to it.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("benchgen: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("benchgen: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func invalidf(format string, args ...any) error {
	return &Error{Kind: KindInvalid, Message: fmt.Sprintf(format, args...)}
}

func missingf(format string, args ...any) error {
	return &Error{Kind: KindMissing, Message: fmt.Sprintf(format, args...)}
}

func wrapIO(cause error, format string, args ...any) error {
	return &Error{Kind: KindIO, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func wrapParse(cause error, format string, args ...any) error {
	return &Error{Kind: KindParse, Message: fmt.Sprintf(format, args...), Cause: cause}
}

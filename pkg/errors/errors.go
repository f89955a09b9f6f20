package errors

import (
	"errors"
	"fmt"
)

// Standard error types
var (
	ErrUsage          = errors.New("usage error")
	ErrConfiguration  = errors.New("configuration error")
	ErrAuthentication = errors.New("authentication error")
	ErrHTTPRequest    = errors.New("HTTP request error")
	ErrHTTPResponse   = errors.New("HTTP response error")
	ErrGraphQL        = errors.New("GraphQL error")
	ErrDecode         = errors.New("response decode error")
)

// Kind groups error types by how the process reacts to them.
type Kind int

const (
	KindNone Kind = iota
	KindUsage
	KindRequest
)

// String returns the label used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindRequest:
		return "request"
	default:
		return "none"
	}
}

// Exit codes for each Kind.
const (
	ExitOK      = 0
	ExitUsage   = 1
	ExitRequest = 2
)

// WrapError wraps an error with a standard error type
func WrapError(err error, errType error, message string) error {
	return fmt.Errorf("%w: %s: %w", errType, message, err)
}

// KindOf classifies err. Anything that is not a usage error is a request error,
// including configuration problems, since they only surface when talking to the store.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrUsage):
		return KindUsage
	default:
		return KindRequest
	}
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	switch KindOf(err) {
	case KindUsage:
		return ExitUsage
	case KindRequest:
		return ExitRequest
	default:
		return ExitOK
	}
}

// Is provides a convenience wrapper around errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As provides a convenience wrapper around errors.As
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

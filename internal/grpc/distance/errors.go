package distance

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorKind classifies distance worker failures into the closed set the
// REST layer maps to HTTP status codes.
type ErrorKind int

const (
	// KindUnavailable means the worker transport is unreachable.
	KindUnavailable ErrorKind = iota
	// KindValidation means the worker rejected the input or the
	// requested job does not exist.
	KindValidation
	// KindInternal covers every other worker failure.
	KindInternal
)

// String returns the metric/log label for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// Error is the typed error surfaced by the client. It carries the
// classified kind, a caller-facing message, and the wrapped transport
// error for diagnostics.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// AsError extracts a *Error from err, if present.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsUnavailable reports whether err is a worker-unreachable error.
func IsUnavailable(err error) bool {
	de, ok := AsError(err)
	return ok && de.Kind == KindUnavailable
}

// IsValidation reports whether err is a validation/not-found error.
func IsValidation(err error) bool {
	de, ok := AsError(err)
	return ok && de.Kind == KindValidation
}

// translateError converts a transport-level gRPC error into the client
// error taxonomy. It never returns nil for a non-nil input.
func translateError(endpoint string, err error) error {
	st, _ := status.FromError(err)

	switch st.Code() {
	case codes.Unavailable:
		return &Error{
			Kind:    KindUnavailable,
			Message: fmt.Sprintf("distance service unreachable at %s: %s", endpoint, st.Message()),
			cause:   err,
		}
	case codes.InvalidArgument, codes.NotFound:
		return &Error{
			Kind:    KindValidation,
			Message: fmt.Sprintf("invalid request: %s", st.Message()),
			cause:   err,
		}
	default:
		return &Error{
			Kind:    KindInternal,
			Message: fmt.Sprintf("grpc error (%s): %s", st.Code(), st.Message()),
			cause:   err,
		}
	}
}

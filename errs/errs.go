// Package errs defines the error taxonomy shared by every layer of the
// argus-pep client: the object model, the TagFmt codec, the marshaller,
// the transport adapter, the dispatch engine and the client facade.
package errs

import (
	"errors"
	"fmt"
)

// Kind identifies which layer of the client produced an error and how a
// caller should react to it (retry, fail fast, surface to the operator).
type Kind int

const (
	// OK is the zero value; it is never wrapped in an Error.
	OK Kind = iota
	// NullPointer marks a contract violation from the caller (nil argument
	// where the model API requires one).
	NullPointer
	// Memory marks an allocation failure.
	Memory
	// OptionInvalid marks an unknown SetOption key or an ill-typed value.
	OptionInvalid
	// Marshal marks a failure encoding a well-formed model into TagFmt
	// bytes; always a bug, never caused by user input.
	Marshal
	// UnmarshalIO marks bytes that are not a well-formed TagFmt stream.
	UnmarshalIO
	// UnmarshalModel marks a TagFmt stream that parses but does not match
	// the expected class tags, required keys, or value types.
	UnmarshalModel
	// EndpointURL marks a syntactically invalid endpoint URL.
	EndpointURL
	// AuthzRequest marks a nil or structurally invalid Request at submit
	// time.
	AuthzRequest
	// Transport marks a non-2xx HTTP status, TLS failure, or connect/DNS
	// failure.
	Transport
	// Timeout marks a transport call that exceeded its per-endpoint
	// timeout.
	Timeout
	// EndpointExhausted marks that every configured endpoint failed; the
	// wrapped error is the last endpoint's failure.
	EndpointExhausted
	// Cancelled marks an authorize call aborted by the caller.
	Cancelled
)

// String returns the lowercase, hyphenated token used in log lines and in
// Strerror's human-readable text.
func (k Kind) String() string {
	switch k {
	case OK:
		return "ok"
	case NullPointer:
		return "null-pointer"
	case Memory:
		return "memory"
	case OptionInvalid:
		return "option-invalid"
	case Marshal:
		return "marshal"
	case UnmarshalIO:
		return "unmarshal-io"
	case UnmarshalModel:
		return "unmarshal-model"
	case EndpointURL:
		return "endpoint-url"
	case AuthzRequest:
		return "authz-request"
	case Transport:
		return "transport"
	case Timeout:
		return "timeout"
	case EndpointExhausted:
		return "endpoint-exhausted"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Error is the error type returned across every package boundary in this
// module. It carries a Kind for programmatic dispatch (errors.Is /
// errors.As) plus a human message and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// New builds an Error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds an Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error that wraps cause; cause is reachable via errors.Is
// and errors.As through Unwrap.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, errs.New(errs.Timeout, "")) without caring
// about the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Kind == t.Kind
}

// KindOf extracts the Kind from err if it is (or wraps) an *Error, or OK
// if err is nil, or UnmarshalIO if err is some other error type.
func KindOf(err error) Kind {
	if err == nil {
		return OK
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return UnmarshalIO // foreign error with no Kind: treat conservatively
}

// Strerror returns a fixed human-readable string for kind, mirroring the
// C API's strerror(pep_error_t) entry point (spec §7).
func Strerror(kind Kind) string {
	switch kind {
	case OK:
		return "success"
	case NullPointer:
		return "null pointer argument"
	case Memory:
		return "memory allocation failure"
	case OptionInvalid:
		return "invalid or unknown option"
	case Marshal:
		return "failed to marshal request into wire format"
	case UnmarshalIO:
		return "malformed wire data"
	case UnmarshalModel:
		return "wire data does not match the expected object model"
	case EndpointURL:
		return "invalid endpoint URL"
	case AuthzRequest:
		return "invalid or missing authorization request"
	case Transport:
		return "transport failure contacting endpoint"
	case Timeout:
		return "endpoint timed out"
	case EndpointExhausted:
		return "all endpoints failed"
	case Cancelled:
		return "operation cancelled by caller"
	default:
		return "unknown error"
	}
}

package assistant

import (
	"errors"

	"solar_cli/pkg/ai"
)

// ErrorPrefix starts the display string of every failed result.
const ErrorPrefix = "Error: "

// Result is the outcome of one chat round trip: either a reply or an
// error, never both.
type Result struct {
	text string
	err  error
}

// Success wraps a reply.
func Success(text string) Result {
	return Result{text: text}
}

// Failure wraps an error. A nil error is replaced with a generic one.
func Failure(err error) Result {
	if err == nil {
		err = errors.New("unknown failure")
	}
	return Result{err: err}
}

// OK reports whether the result is a success.
func (r Result) OK() bool { return r.err == nil }

// Text is the reply of a successful result.
func (r Result) Text() string { return r.text }

// Err is the failure cause, or nil.
func (r Result) Err() error { return r.err }

// Display is the string shown to the user in place of the reply.
func (r Result) Display() string {
	if r.err != nil {
		return ErrorPrefix + r.err.Error()
	}
	return r.text
}

// Kind names the failure class for logs and the status bar.
func (r Result) Kind() string {
	var (
		transportErr *ai.TransportError
		protocolErr  *ai.ProtocolError
		formatErr    *ai.FormatError
	)
	switch {
	case r.err == nil:
		return "success"
	case errors.As(r.err, &transportErr):
		if transportErr.Timeout() {
			return "timeout"
		}
		return "transport"
	case errors.As(r.err, &protocolErr):
		return "protocol"
	case errors.As(r.err, &formatErr):
		return "format"
	default:
		return "error"
	}
}

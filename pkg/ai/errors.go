package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// TransportError means no HTTP response was received: DNS, refused or
// reset connections, TLS failures and timeouts.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.TypeName(), e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// TypeName is the Go type of the underlying error, e.g. "*net.OpError".
func (e *TransportError) TypeName() string {
	return fmt.Sprintf("%T", e.Cause)
}

// Timeout reports whether the request deadline expired.
func (e *TransportError) Timeout() bool {
	return isTimeout(e.Cause)
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// ProtocolError means the endpoint answered with a status other than 200.
type ProtocolError struct {
	StatusCode int
	Body       string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("API request failed with status code %d\nResponse: %s", e.StatusCode, e.Body)
}

// FormatError means a 200 response did not carry a usable reply.
type FormatError struct {
	Raw string
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("Unexpected response format: %s", e.Raw)
}

func (e *FormatError) Unwrap() error { return e.Err }

package errors

import (
	stderr "errors"
	"fmt"
)

// TransportError indicates that a conversion service could not be reached, or the connection to it failed mid-call.
type TransportError struct {
	Address string
	Method  string
	// Timeout is set when the call was abandoned because the configured wait expired.
	Timeout bool
	Err     error
}

// Error is an implementation of the error interface.
func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("calling %q on %s: timed out: %v", e.Method, e.Address, e.Err)
	}
	return fmt.Sprintf("calling %q on %s: %v", e.Method, e.Address, e.Err)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError indicates that a conversion service was reachable but reported an application failure.
type RemoteError struct {
	Address string
	Method  string
	Code    int64
	Message string
}

// Error is an implementation of the error interface.
func (e *RemoteError) Error() string {
	return fmt.Sprintf("%q on %s failed: %s", e.Method, e.Address, e.Message)
}

// StaleResponseError describes a response that was discarded because a newer request for the same syntax was issued.
// It is never surfaced to the user.
type StaleResponseError struct {
	Syntax string
	Method string
	Seq    uint64
	Latest uint64
}

// Error is an implementation of the error interface.
func (e *StaleResponseError) Error() string {
	return fmt.Sprintf("dropped stale %q response for %s: sequence %d superseded by %d", e.Method, e.Syntax, e.Seq, e.Latest)
}

// IsTransport returns the TransportError and true if one is part of the error chain.
func IsTransport(e error) (*TransportError, bool) {
	var te *TransportError
	if !stderr.As(e, &te) {
		return nil, false
	}
	return te, true
}

// IsRemote returns the RemoteError and true if one is part of the error chain.
func IsRemote(e error) (*RemoteError, bool) {
	var re *RemoteError
	if !stderr.As(e, &re) {
		return nil, false
	}
	return re, true
}

package errors

import (
	stderr "errors"
	"fmt"

	"github.com/gofrs/uuid"
)

// UnknownSyntaxError indicates that a syntax name or id is not part of the supported set.
type UnknownSyntaxError struct {
	Name string
}

// Error is an implementation of the error interface.
func (n *UnknownSyntaxError) Error() string {
	return fmt.Sprintf("unknown syntax %q", n.Name)
}

// ClientNotFoundError indicates that no UI client is registered under the given UUID.
type ClientNotFoundError struct {
	UUID uuid.UUID
}

// Error is an implementation of the error interface.
func (n *ClientNotFoundError) Error() string {
	return fmt.Sprintf("UI client %q not found", n.UUID)
}

// NotFoundClient returns an UUID and true if ClientNotFoundError is part of the
// error chain.
func NotFoundClient(e error) (_ uuid.UUID, ok bool) {
	var nf *ClientNotFoundError
	if !stderr.As(e, &nf) {
		return uuid.Nil, false
	}
	return nf.UUID, true
}

// NoClientConnectedError indicates that no UI client is connected to receive a render or provide surface text.
type NoClientConnectedError struct{}

// Error is an implementation of the error interface.
func (n *NoClientConnectedError) Error() string {
	return "no UI client connected"
}

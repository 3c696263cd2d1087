package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// ControllerStoppedError reports that the synchronization controller no longer accepts work.
	ControllerStoppedError = New("synchronization controller stopped")
	// NoActiveSyntaxError reports that an operation needs an active syntax but none is selected.
	NoActiveSyntaxError = New("no active syntax")
)

// IsStopped reports whether the error was caused by a stopped controller.
func IsStopped(e error) bool {
	return stderr.Is(e, ControllerStoppedError)
}

// Package entity contains the domain logic for the polysync editor service.
package entity

import (
	"encoding/json"
	"fmt"
)

// SyntaxID identifies one of the textual representations supported by the editor.
// The set is closed and known at compile time; descriptors are indexed directly by id.
type SyntaxID int

const (
	// SyntaxOpenAPI is the API-schema representation.
	SyntaxOpenAPI SyntaxID = iota
	// SyntaxTypeScript is the typed-interface representation.
	SyntaxTypeScript
	numSyntaxes
)

// SyntaxNone indicates that no syntax is active.
const SyntaxNone SyntaxID = -1

// NumSyntaxes is the number of supported syntaxes.
const NumSyntaxes = int(numSyntaxes)

var _syntaxNames = [NumSyntaxes]string{
	SyntaxOpenAPI:    "openapi",
	SyntaxTypeScript: "typescript",
}

// AllSyntaxes returns every supported syntax in enumeration order.
func AllSyntaxes() []SyntaxID {
	ids := make([]SyntaxID, 0, NumSyntaxes)
	for i := 0; i < NumSyntaxes; i++ {
		ids = append(ids, SyntaxID(i))
	}
	return ids
}

// Valid reports whether s is one of the supported syntaxes.
func (s SyntaxID) Valid() bool {
	return s >= 0 && int(s) < NumSyntaxes
}

// String implements fmt.Stringer.
func (s SyntaxID) String() string {
	if !s.Valid() {
		return ""
	}
	return _syntaxNames[s]
}

// ParseSyntaxID returns the SyntaxID for the given name.
func ParseSyntaxID(name string) (SyntaxID, error) {
	for i, n := range _syntaxNames {
		if n == name {
			return SyntaxID(i), nil
		}
	}
	return SyntaxNone, fmt.Errorf("unknown syntax %q", name)
}

// MarshalText encodes the syntax by name. SyntaxNone encodes as an empty string.
func (s SyntaxID) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a syntax name.
func (s *SyntaxID) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = SyntaxNone
		return nil
	}
	id, err := ParseSyntaxID(string(text))
	if err != nil {
		return err
	}
	*s = id
	return nil
}

// SyncState is the synchronization state of a single syntax.
type SyncState int

const (
	// SyncStateIdle indicates no round-trip is outstanding for the syntax.
	SyncStateIdle SyncState = iota
	// SyncStateParsing indicates a parse request is outstanding for the syntax.
	SyncStateParsing
	// SyncStateRegenerating indicates a template or update request is outstanding for the syntax.
	SyncStateRegenerating
)

// String implements fmt.Stringer.
func (s SyncState) String() string {
	switch s {
	case SyncStateIdle:
		return "idle"
	case SyncStateParsing:
		return "parsing"
	case SyncStateRegenerating:
		return "regenerating"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s SyncState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// SyntaxDescriptor holds everything known about one syntax for the lifetime of a session.
type SyntaxDescriptor struct {
	ID          SyntaxID `json:"id"`
	Address     string   `json:"address"`
	Mode        string   `json:"mode"`
	DisplayName string   `json:"displayName"`
	Text        string   `json:"text"`
}

// SessionState is an immutable snapshot of the editor session.
type SessionState struct {
	Active   SyntaxID           `json:"active"`
	Project  Project            `json:"project"`
	Syntaxes []SyntaxDescriptor `json:"syntaxes"`
	States   []SyncState        `json:"states"`
}

// ActiveDescriptor returns the descriptor of the active syntax, if any.
func (s SessionState) ActiveDescriptor() (SyntaxDescriptor, bool) {
	if !s.Active.Valid() || int(s.Active) >= len(s.Syntaxes) {
		return SyntaxDescriptor{}, false
	}
	return s.Syntaxes[s.Active], true
}

// NoticeType is the severity of a notice surfaced to the user.
type NoticeType int

const (
	// NoticeError is shown for failed user-driven operations.
	NoticeError NoticeType = iota + 1
	// NoticeWarning is shown for degraded but working states.
	NoticeWarning
	// NoticeInfo is informational.
	NoticeInfo
)

// Notice is a non-fatal message surfaced to the user.
type Notice struct {
	Type    NoticeType `json:"type"`
	Message string     `json:"message"`
}

// String implements fmt.Stringer.
func (n Notice) String() string {
	return n.Message
}

func toJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}

// String implements fmt.Stringer.
func (s SessionState) String() string {
	return toJSON(s)
}

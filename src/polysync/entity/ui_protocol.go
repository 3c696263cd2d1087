package entity

// Methods received from the UI client.
const (
	// MethodDidChange mirrors the full text of the live editing surface.
	MethodDidChange = "polysync/didChange"
	// MethodTabClick selects a syntax tab.
	MethodTabClick = "polysync/tabClick"
	// MethodSave commits the active buffer and triggers synchronization.
	MethodSave = "polysync/save"
	// MethodState returns the current SessionState.
	MethodState = "polysync/state"
)

// Notifications sent to the UI client.
const (
	// MethodSetActiveTab highlights the active tab.
	MethodSetActiveTab = "polysync/setActiveTab"
	// MethodRenderBuffer replaces the text and mode of the editing surface.
	MethodRenderBuffer = "polysync/renderBuffer"
	// MethodRenderEntities replaces the content of a sidebar list.
	MethodRenderEntities = "polysync/renderEntities"
)

// DidChangeParams carries the full text of the editing surface.
type DidChangeParams struct {
	Text string `json:"text"`
}

// TabClickParams identifies the clicked tab.
type TabClickParams struct {
	Syntax SyntaxID `json:"syntax"`
}

// SaveParams optionally carries the surface text at the moment of the keystroke.
type SaveParams struct {
	Text *string `json:"text,omitempty"`
}

// SetActiveTabParams is sent with MethodSetActiveTab.
type SetActiveTabParams struct {
	Syntax SyntaxID `json:"syntax"`
}

// RenderBufferParams is sent with MethodRenderBuffer.
// Patch is a diff-match-patch patch from the previously rendered text, for clients that apply edits incrementally.
type RenderBufferParams struct {
	Text  string `json:"text"`
	Mode  string `json:"mode"`
	Patch string `json:"patch,omitempty"`
}

// RenderEntitiesParams is sent with MethodRenderEntities.
type RenderEntitiesParams struct {
	Kind     EntityKind `json:"kind"`
	Entities []Entity   `json:"entities"`
}

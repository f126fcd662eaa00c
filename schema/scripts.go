package schema

// ScriptList is the stored script revision listing (GET /apps/{appId}/scripts).
type ScriptList struct {
	Scripts []ScriptVersion `json:"scripts"`
}

// ScriptVersion is one stored script revision.
type ScriptVersion struct {
	ScriptID       string `json:"scriptId"`
	VersionMessage string `json:"versionMessage,omitempty"`
	ModifiedTime   string `json:"modifiedTime,omitempty"`
}

// ScriptRecord carries the full script text of one revision
// (GET /apps/{appId}/scripts/{scriptId}).
type ScriptRecord struct {
	Script string `json:"script"`
}

// ScriptUpdate is the payload for POST /apps/{appId}/scripts.
type ScriptUpdate struct {
	Script         string `json:"script"`
	VersionMessage string `json:"versionMessage"`
}

// ScriptValidation is the payload for POST /apps/validatescript.
type ScriptValidation struct {
	Script string `json:"script"`
}

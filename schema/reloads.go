package schema

// ReloadRequest submits an app reload (POST /reloads).
type ReloadRequest struct {
	AppID   string `json:"appId"`
	Weight  int    `json:"weight"`
	Partial bool   `json:"partial"`
}

// Reload is the reload record returned by POST /reloads and
// GET /reloads/{reloadId}. Log is cumulative: each poll returns the full
// log so far, not a delta.
type Reload struct {
	ID     string `json:"id"`
	AppID  string `json:"appId,omitempty"`
	Status string `json:"status"`
	Log    string `json:"log"`
}

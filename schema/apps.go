package schema

// AppRecord is the app metadata envelope (GET /apps/{appId} and
// PUT /apps/{appId}/publish).
type AppRecord struct {
	Attributes AppAttributes `json:"attributes"`
}

// AppAttributes is the subset of app attributes this tool cares about.
type AppAttributes struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	Owner        string `json:"owner,omitempty"`
	SpaceID      string `json:"spaceId,omitempty"`
	CreatedDate  string `json:"createdDate,omitempty"`
	ModifiedDate string `json:"modifiedDate,omitempty"`
	Published    bool   `json:"published,omitempty"`
	PublishTime  string `json:"publishTime,omitempty"`
}

// PublishRequest moves an app onto its published counterpart
// (PUT /apps/{appId}/publish).
type PublishRequest struct {
	TargetID string `json:"targetId"`
}

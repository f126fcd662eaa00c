package schema

// ItemsPage is one page of a catalog items search (GET /items).
type ItemsPage struct {
	Data []Item `json:"data"`
}

// Item is a single catalog entry. For apps, ID is the catalog item id and
// ResourceID is the app id; the two are distinct identifiers.
type Item struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ResourceID   string `json:"resourceId"`
	ResourceType string `json:"resourceType,omitempty"`
	SpaceID      string `json:"spaceId,omitempty"`
}

// Space describes a workspace (GET /spaces/{spaceId}).
type Space struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

package qlik

import (
	"context"
	"fmt"
	"net/url"

	"github.com/qlikctl/qlikctl/internal/tabs"
	"github.com/qlikctl/qlikctl/schema"
)

// App is the canonical record a human-supplied app name resolves to.
type App struct {
	SanitizedName string
	Name          string
	ID            string // app id (resourceId in the catalog)
	ItemID        string // catalog item id; distinct from the app id
	SpaceID       string
	SpaceType     string
	SpaceName     string
}

// ResolveApp resolves an app name (optionally pinned to an explicit app id)
// to its canonical record. Zero matches yield a NotFoundError; more than one
// match without an explicit id yields an AmbiguousError listing every
// candidate.
func (c *Client) ResolveApp(ctx context.Context, name, appID string) (App, error) {
	query := url.Values{}
	query.Set("resourceType", "app")
	query.Set("spaceType", "shared")
	query.Set("name", name)
	if appID != "" {
		query.Set("resourceId", appID)
	}

	var page schema.ItemsPage
	if err := c.getJSON(ctx, "/items", query, &page); err != nil {
		return App{}, err
	}
	if len(page.Data) == 0 {
		return App{}, &NotFoundError{Msg: fmt.Sprintf("no app found with name %q", name)}
	}
	if len(page.Data) > 1 {
		ambiguous := &AmbiguousError{Name: name}
		for _, item := range page.Data {
			ambiguous.Candidates = append(ambiguous.Candidates, Candidate{Name: item.Name, ID: item.ResourceID})
		}
		return App{}, ambiguous
	}

	item := page.Data[0]
	app := App{
		SanitizedName: tabs.SanitizeName(item.Name),
		Name:          item.Name,
		ID:            item.ResourceID,
		ItemID:        item.ID,
		SpaceID:       item.SpaceID,
	}
	if item.SpaceID != "" {
		space, err := c.GetSpace(ctx, item.SpaceID)
		if err != nil {
			return App{}, err
		}
		app.SpaceType = space.Type
		app.SpaceName = space.Name
	}
	return app, nil
}

// GetSpace fetches workspace metadata.
func (c *Client) GetSpace(ctx context.Context, spaceID string) (schema.Space, error) {
	var space schema.Space
	err := c.getJSON(ctx, "/spaces/"+spaceID, nil, &space)
	return space, err
}

// GetAppInfo fetches the app metadata record.
func (c *Client) GetAppInfo(ctx context.Context, appID string) (schema.AppRecord, error) {
	var record schema.AppRecord
	err := c.getJSON(ctx, "/apps/"+appID, nil, &record)
	return record, err
}

// PublishedAppID resolves the app id of an app's already-published
// counterpart in a managed space. Apps that have never been published yield
// a NotFoundError; this tool cannot create the first publish record.
func (c *Client) PublishedAppID(ctx context.Context, app App) (string, error) {
	itemID := app.ItemID
	if itemID == "" {
		query := url.Values{}
		query.Set("resourceId", app.ID)
		query.Set("resourceType", "app")
		var page schema.ItemsPage
		if err := c.getJSON(ctx, "/items", query, &page); err != nil {
			return "", err
		}
		if len(page.Data) == 0 {
			return "", &NotFoundError{Msg: fmt.Sprintf("no catalog item found for app %q", app.Name)}
		}
		itemID = page.Data[0].ID
	}

	var page schema.ItemsPage
	if err := c.getJSON(ctx, "/items/"+itemID+"/publisheditems", nil, &page); err != nil {
		return "", err
	}
	if len(page.Data) == 0 || page.Data[0].ResourceID == "" {
		return "", &NotFoundError{
			Msg: fmt.Sprintf("app %q has no published counterpart; publish it once from the UI first", app.Name),
		}
	}
	return page.Data[0].ResourceID, nil
}

// PublishToManagedSpace republishes the app onto its published counterpart
// and returns the resulting app name.
func (c *Client) PublishToManagedSpace(ctx context.Context, app App) (string, error) {
	targetID, err := c.PublishedAppID(ctx, app)
	if err != nil {
		return "", err
	}
	var record schema.AppRecord
	if err := c.putJSON(ctx, "/apps/"+app.ID+"/publish", schema.PublishRequest{TargetID: targetID}, &record); err != nil {
		return "", err
	}
	name := record.Attributes.Name
	if name == "" {
		name = app.Name
	}
	return name, nil
}

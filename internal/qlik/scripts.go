package qlik

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/qlikctl/qlikctl/schema"
)

// FetchScript retrieves the full text of the app's most recent stored script
// revision.
func (c *Client) FetchScript(ctx context.Context, appID string) (string, error) {
	var list schema.ScriptList
	if err := c.getJSON(ctx, "/apps/"+appID+"/scripts", nil, &list); err != nil {
		return "", err
	}
	if len(list.Scripts) == 0 {
		return "", &NotFoundError{Msg: fmt.Sprintf("no stored scripts found for app %s", appID)}
	}
	scriptID := list.Scripts[0].ScriptID
	if scriptID == "" {
		return "", &NotFoundError{Msg: fmt.Sprintf("first script revision for app %s has no scriptId", appID)}
	}

	var record schema.ScriptRecord
	if err := c.getJSON(ctx, "/apps/"+appID+"/scripts/"+scriptID, nil, &record); err != nil {
		return "", err
	}
	return record.Script, nil
}

// PublishScript submits the full script text with a version annotation.
func (c *Client) PublishScript(ctx context.Context, appID, script, versionMessage string) error {
	_, err := c.do(ctx, http.MethodPost, "/apps/"+appID+"/scripts", nil, schema.ScriptUpdate{
		Script:         script,
		VersionMessage: versionMessage,
	})
	return err
}

// ValidateScript submits script text to the syntax-check endpoint and
// surfaces the decoded response body without interpreting it; the endpoint
// itself determines pass/fail semantics.
func (c *Client) ValidateScript(ctx context.Context, script string) (string, error) {
	data, err := c.do(ctx, http.MethodPost, "/apps/validatescript", nil, schema.ScriptValidation{Script: script})
	if err != nil {
		return "", err
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		return strings.TrimSpace(string(data)), nil
	}
	return pretty.String(), nil
}

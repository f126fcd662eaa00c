package qlik

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"strings"
	"time"

	"github.com/qlikctl/qlikctl/schema"
)

// StatusError is the synthetic status carried by the single update emitted
// when a poll fails at the transport level.
const StatusError = "ERROR"

// ReloadUpdate is one observation of a running reload.
type ReloadUpdate struct {
	Status   string // upper-cased remote status, or StatusError
	Log      string // cumulative log (full mode) or newly-appended suffix (delta mode)
	New      bool   // whether the cumulative log grew since the last poll
	Complete bool   // whether Status is terminal; the stream ends after this update
}

// StreamOptions controls the reload log polling loop.
type StreamOptions struct {
	// Interval between polls; defaults to one second.
	Interval time.Duration
	// Delta emits only the newly-appended log suffix per update instead of
	// the whole cumulative log.
	Delta bool
}

// StartReload submits a reload request and returns the assigned reload id.
func (c *Client) StartReload(ctx context.Context, appID string, weight int, partial bool) (string, error) {
	var reload schema.Reload
	err := c.postJSON(ctx, "/reloads", schema.ReloadRequest{
		AppID:   appID,
		Weight:  weight,
		Partial: partial,
	}, &reload)
	if err != nil {
		return "", err
	}
	if reload.ID == "" {
		return "", &RemoteError{
			Method: http.MethodPost,
			Path:   "/reloads",
			Status: http.StatusOK,
			Body:   "reload response carries no id",
		}
	}
	return reload.ID, nil
}

// GetReload fetches the current status and cumulative log of a reload.
func (c *Client) GetReload(ctx context.Context, reloadID string) (schema.Reload, error) {
	var reload schema.Reload
	err := c.getJSON(ctx, "/reloads/"+reloadID, nil, &reload)
	return reload, err
}

// IsTerminalStatus reports whether a reload status ends the lifecycle.
// Matching is case-insensitive.
func IsTerminalStatus(status string) bool {
	switch strings.ToUpper(status) {
	case "SUCCEEDED", "FAILED", "CANCELLED":
		return true
	}
	return false
}

// StreamReloadLog polls a reload at a fixed interval and yields one update
// per poll until a terminal status has been yielded. A poll error yields
// exactly one synthetic StatusError update and ends the stream; it is not
// retried. Context cancellation ends the stream cleanly after the current
// iteration without a further yield.
func (c *Client) StreamReloadLog(ctx context.Context, reloadID string, o StreamOptions) iter.Seq[ReloadUpdate] {
	interval := o.Interval
	if interval <= 0 {
		interval = time.Second
	}
	return func(yield func(ReloadUpdate) bool) {
		lastLen := 0
		for {
			if ctx.Err() != nil {
				return
			}
			reload, err := c.GetReload(ctx, reloadID)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				yield(ReloadUpdate{
					Status:   StatusError,
					Log:      fmt.Sprintf("error polling reload status: %v\n", err),
					New:      true,
					Complete: true,
				})
				return
			}

			status := strings.ToUpper(reload.Status)
			grew := len(reload.Log) > lastLen
			update := ReloadUpdate{
				Status:   status,
				New:      grew,
				Complete: IsTerminalStatus(status),
			}
			if o.Delta {
				if grew {
					update.Log = reload.Log[lastLen:]
				}
			} else {
				update.Log = reload.Log
			}
			if grew {
				lastLen = len(reload.Log)
			}

			if !yield(update) || update.Complete {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(interval):
			}
		}
	}
}

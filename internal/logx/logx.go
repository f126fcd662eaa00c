package logx

import (
	"context"

	"pkt.systems/pslog"
)

// Ctx returns the logger bound to the provided context.
func Ctx(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// WithApp annotates the context logger with app name and id when present.
func WithApp(ctx context.Context, name, id string) pslog.Logger {
	log := pslog.Ctx(ctx)
	if name != "" {
		log = log.With("app", name)
	}
	if id != "" {
		log = log.With("app_id", id)
	}
	return log
}

// WithReload annotates a logger with the reload identifier.
func WithReload(log pslog.Logger, reloadID string) pslog.Logger {
	if reloadID == "" {
		return log
	}
	return log.With("reload_id", reloadID)
}

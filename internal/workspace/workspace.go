// Package workspace manages the local script directory tree
// (<root>/<sanitized-app-name>/<app-id>).
package workspace

import (
	"os"
	"path/filepath"
)

// Dir returns the script directory for one app.
func Dir(root, sanitizedName, appID string) string {
	return filepath.Join(root, sanitizedName, appID)
}

// Reset removes an app's script directory and prunes the app-name parent
// when it ends up empty. A missing directory is not an error.
func Reset(root, sanitizedName, appID string) error {
	if err := os.RemoveAll(Dir(root, sanitizedName, appID)); err != nil {
		return err
	}
	parent := filepath.Join(root, sanitizedName)
	entries, err := os.ReadDir(parent)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(entries) == 0 {
		return os.Remove(parent)
	}
	return nil
}

package util

import (
	"os"
	"path/filepath"
	"strings"
)

func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ExpandHome replaces a leading ~ or $HOME with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") && !strings.Contains(path, "$HOME") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, "~/") || path == "~" {
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return strings.ReplaceAll(path, "$HOME", home)
}

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~/ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	return path, nil
}

// WriteFile writes data to path, expanding ~ and creating parent
// directories as needed. It returns the resolved path for reporting.
func WriteFile(path string, data []byte) (string, error) {
	resolved, err := ExpandPath(path)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(resolved); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(resolved, data, 0644); err != nil {
		return "", fmt.Errorf("writing calendar file: %w", err)
	}

	return resolved, nil
}

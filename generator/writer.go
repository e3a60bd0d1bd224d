package generator

import (
	"os"
	"path/filepath"
)

// WriteFile writes f under root, creating its folder if absent. It returns
// the path written. Existing files are overwritten.
func WriteFile(root string, f File) (string, error) {
	fullPath := filepath.Join(root, f.Path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", &WriteError{Path: filepath.Dir(fullPath), Err: err}
	}
	if err := os.WriteFile(fullPath, f.Content, 0o644); err != nil {
		return "", &WriteError{Path: fullPath, Err: err}
	}

	return fullPath, nil
}

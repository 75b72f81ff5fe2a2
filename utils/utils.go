package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetProjectRoot walks up from the working directory looking for go.mod.
// Relative config and profile paths resolve against this so the binary
// works the same from the repo root and from a subdirectory.
func GetProjectRoot() (string, error) {
	startDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	currentDir := absDir
	for {
		if fileExists(filepath.Join(currentDir, "go.mod")) {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("go.mod not found above %s", absDir)
}

// ResolvePath anchors a relative path at the project root. Absolute
// paths and paths that cannot be anchored come back unchanged.
func ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	root, err := GetProjectRoot()
	if err != nil {
		return path
	}
	return filepath.Join(root, path)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

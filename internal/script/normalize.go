// Package script maps watched files onto in-game script names and patches
// transformed code so it runs inside the game's sandbox.
package script

import (
	"errors"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

var ErrInvalidName = errors.New("invalid file name")

var allowedExtensions = []string{".js", ".script", ".ns", ".txt"}

// Normalize maps a path relative to the watched root to the canonical
// in-game filename.
func Normalize(relPath string) (string, error) {
	if strings.Contains(relPath, " ") {
		return "", ErrInvalidName
	}

	name := filepath.ToSlash(relPath)
	if strings.Contains(name, "/") && !strings.HasPrefix(name, "/") {
		name = "/" + name
	}

	switch {
	case strings.HasSuffix(name, ".tsx"):
		name = strings.TrimSuffix(name, ".tsx") + ".js"
	case strings.HasSuffix(name, ".ts"):
		name = strings.TrimSuffix(name, ".ts") + ".js"
	}

	return name, nil
}

// Allowed reports whether the game accepts a file with this canonical name.
func Allowed(filename string) bool {
	return slices.Contains(allowedExtensions, path.Ext(filename))
}

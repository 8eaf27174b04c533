package pipeline

import (
	"bbsync/internal/model"
	"path/filepath"
	"strings"
)

// Filter passes on events that should start a sync: modifications with at
// least one path, outside the ignore list.
func Filter(inCh <-chan model.ChangeEvent, root string, ignoreList []string) <-chan model.ChangeEvent {
	outCh := make(chan model.ChangeEvent, cap(inCh))

	go func() {
		defer close(outCh)

		for event := range inCh {
			if !event.Triggers() {
				continue
			}

			rel, err := filepath.Rel(root, event.Path())
			if err != nil {
				rel = event.Path()
			}

			if Ignored(rel, ignoreList) {
				continue
			}
			outCh <- event
		}
	}()

	return outCh
}

// Ignored reports whether any component of path matches a glob in
// ignoreList.
func Ignored(path string, ignoreList []string) bool {
	parts := strings.Split(filepath.ToSlash(path), "/")

	for _, part := range parts {
		for _, pattern := range ignoreList {
			matched, err := filepath.Match(pattern, part)
			if err == nil && matched {
				return true
			}
		}
	}

	return false
}

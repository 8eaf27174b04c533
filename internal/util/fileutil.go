package util

import (
	"fmt"
	"os"
)

// TempDir resolves the OS temp directory from TMPDIR, TMP or TEMP, falling
// back to /tmp.
func TempDir() string {
	for _, key := range []string{"TMPDIR", "TMP", "TEMP"} {
		if dir := os.Getenv(key); dir != "" {
			return dir
		}
	}

	return "/tmp"
}

func ReadAndRemove(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		_ = RemoveIfExists(path)
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := RemoveIfExists(path); err != nil {
		return nil, err
	}

	return data, nil
}

// WriteInPlace overwrites an existing file without replacing its inode, so
// editors holding it open and the watcher both see a plain modification.
func WriteInPlace(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func RemoveIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}

	return nil
}

// Package fileutil provides the file-system operations the transpilation
// pipeline depends on: ordered directory listings, whole-file reads and
// writes, and recursive template-directory cloning.
package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// ListFiles returns the regular files directly inside dir, sorted by name
// so processing order is deterministic across runs and platforms.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// ReadFileString reads a whole file as a string.
func ReadFileString(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- paths come from CLI-supplied directories
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// WriteFileString writes content to path, creating parent directories as
// needed.
func WriteFileString(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), FilePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// CloneDir recursively copies the contents of src into dst, creating dst if
// needed. Used to seed the output directory with the LaTeX template tree.
func CloneDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			if err := os.MkdirAll(target, DirPermissions); err != nil {
				return fmt.Errorf("creating directory %s: %w", target, err)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil // skip symlinks and specials
		}

		data, err := os.ReadFile(path) // #nosec G304 -- walking a CLI-supplied template dir
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if err := os.WriteFile(target, data, FilePermissions); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
		return nil
	})
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

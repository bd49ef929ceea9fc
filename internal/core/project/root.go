package project

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
)

// cleanRoot normalizes a target directory relative to the filesystem root.
// It rejects paths leaving the filesystem.
func cleanRoot(root string) (string, error) {
	cleaned := path.Clean(filepath.ToSlash(root))
	if cleaned == "." || cleaned == "/" || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("invalid project root %q", root)
	}
	return strings.TrimPrefix(cleaned, "/"), nil
}

// checkTarget reports whether root already exists. An existing root must
// be an empty directory.
func checkTarget(fsys billy.Filesystem, root string) (existed bool, err error) {
	info, err := fsys.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return true, fmt.Errorf("%w: %s is a file", ErrProjectExists, root)
	}

	entries, err := fsys.ReadDir(root)
	if err != nil {
		return true, fmt.Errorf("read %s: %w", root, err)
	}
	if len(entries) > 0 {
		return true, fmt.Errorf("%w: %s", ErrProjectExists, root)
	}
	return true, nil
}

// HostPath returns the host path of root when fsys is backed by the OS
// filesystem, e.g. for running the package manager inside the project.
func HostPath(fsys billy.Filesystem, root string) string {
	return filepath.Join(fsys.Root(), filepath.FromSlash(root))
}

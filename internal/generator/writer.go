package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Writer persists rendered units below a project root.
type Writer interface {
	// Write writes units in order and returns the paths it created,
	// relative to the filesystem. On failure the returned slice holds the
	// files written before the error so the caller can roll them back.
	Write(ctx context.Context, units []FileUnit) ([]string, error)
}

// fsWriter is the concrete implementation of Writer.
type fsWriter struct {
	fs     billy.Filesystem
	root   string
	logger *slog.Logger
}

// NewWriter creates a Writer placing files under root on fsys.
func NewWriter(fsys billy.Filesystem, root string, logger *slog.Logger) Writer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &fsWriter{fs: fsys, root: root, logger: logger}
}

func (w *fsWriter) Write(ctx context.Context, units []FileUnit) ([]string, error) {
	var created []string
	for _, u := range units {
		select {
		case <-ctx.Done():
			return created, ctx.Err()
		default:
		}

		if err := validateUnitPath(u.Path); err != nil {
			return created, err
		}
		dest := w.fs.Join(w.root, u.Path)

		if _, err := w.fs.Stat(dest); err == nil {
			return created, fmt.Errorf("%w: %s", ErrFileExists, u.Path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return created, fmt.Errorf("stat %q: %w", dest, err)
		}

		if dir := path.Dir(u.Path); dir != "." {
			if err := w.fs.MkdirAll(w.fs.Join(w.root, dir), 0o755); err != nil {
				return created, fmt.Errorf("mkdir %q: %w", dir, err)
			}
		}
		if err := util.WriteFile(w.fs, dest, u.Content, os.FileMode(0o644)); err != nil {
			return created, fmt.Errorf("write %q: %w", dest, err)
		}
		created = append(created, dest)
		w.logger.Debug("wrote file", "path", dest, "bytes", len(u.Content))
	}
	return created, nil
}

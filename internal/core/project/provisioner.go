package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/go-git/go-billy/v5"
)

// DefaultWorkers bounds concurrent directory creation.
const DefaultWorkers = 4

// dirPerm is the permission of provisioned directories.
const dirPerm = 0o755

// Provisioner creates the directory set of a project.
type Provisioner interface {
	// Ensure creates every directory in dirs with MkdirAll semantics.
	// Existing directories are not an error. Any failure is returned after
	// all workers finished.
	Ensure(ctx context.Context, fsys billy.Filesystem, dirs []string) error
}

// poolProvisioner creates directories on a bounded worker pool. With more
// than one worker the filesystem must be safe for concurrent use.
type poolProvisioner struct {
	workers int
	logger  *slog.Logger
}

// NewProvisioner creates a Provisioner running at most workers MkdirAll
// calls at once. A non-positive value selects DefaultWorkers.
func NewProvisioner(workers int, logger *slog.Logger) Provisioner {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &poolProvisioner{workers: workers, logger: logger}
}

func (p *poolProvisioner) Ensure(ctx context.Context, fsys billy.Filesystem, dirs []string) error {
	sem := make(chan struct{}, p.workers)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	record := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	for _, dir := range dirs {
		wg.Go(func() {
			sem <- struct{}{}
			defer func() { <-sem }()

			if err := ctx.Err(); err != nil {
				record(err)
				return
			}
			if err := fsys.MkdirAll(dir, dirPerm); err != nil {
				record(fmt.Errorf("mkdir %s: %w", dir, err))
				return
			}
			p.logger.Debug("directory ensured", "path", dir)
		})
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

// Package cli provides the Cobra command tree and dependency injection
// wiring for the type3 CLI. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"io"
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/type3-dev/type3/internal/generator"
	"github.com/type3-dev/type3/internal/install"
	"github.com/type3-dev/type3/internal/ui"
)

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together. All CLI commands access
// dependencies through interfaces only.
type Dependencies struct {
	Generator  generator.Generator
	Installer  install.Installer
	Filesystem func(dir string) billy.Filesystem // Filesystem rooted at the parent directory of new projects
	Headless   *ui.HeadlessManager
	Logger     *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
// CLI commands access this through the package-level variable.
var deps *Dependencies

// InitDependencies creates and wires all domain dependencies.
// It should be called once during application startup.
// Generator and Installer are initialized lazily by EnsureServices so
// that they pick up the logger chosen by the command flags.
func InitDependencies() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	deps = &Dependencies{
		Filesystem: func(dir string) billy.Filesystem {
			return osfs.New(dir)
		},
		Headless: ui.NewHeadlessManager(),
		Logger:   logger,
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// EnsureServices lazily initializes the generator from the embedded
// templates and the package manager installer. Services already set are
// kept.
func (d *Dependencies) EnsureServices() error {
	if d.Generator == nil {
		gen, err := generator.NewEmbedded(d.Logger)
		if err != nil {
			return err
		}
		d.Generator = gen
	}
	if d.Installer == nil {
		d.Installer = install.NewExecInstaller(d.Logger)
	}
	return nil
}

// EnableVerbose sends debug logs to w. Call it before EnsureServices.
func (d *Dependencies) EnableVerbose(w io.Writer) {
	d.Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

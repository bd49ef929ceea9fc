package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/type3-dev/type3/internal/config"
	"github.com/type3-dev/type3/internal/dependency"
	"github.com/type3-dev/type3/internal/generator"
	"github.com/type3-dev/type3/internal/install"
	"github.com/type3-dev/type3/internal/template"
)

// RunOptions configures one generation run.
type RunOptions struct {
	Root        string // Target directory relative to the filesystem. Defaults to the project name.
	DryRun      bool   // Plan and resolve only; touch neither the filesystem nor the installer.
	SkipInstall bool   // Stop after resolving dependencies.
}

// RunResult summarizes a run.
type RunResult struct {
	Root          string          // Target directory relative to the filesystem.
	State         State           // Final state.
	Directories   []string        // Directory set, relative to Root.
	Files         []string        // Generated files in write order, relative to Root.
	Dependencies  dependency.List // Resolved packages.
	ManualInstall string          // Command that repeats the installation by hand.
	Installed     bool            // Whether the installer succeeded.
	InstallError  error           // Non-nil when installation failed; wraps ErrInstallation.
	Warnings      []string        // Non-fatal problems.
}

// Orchestrator drives a generation run through its states.
type Orchestrator interface {
	// Run generates the project described by p. Configuration,
	// provisioning and generation failures and interrupts are returned as
	// errors and leave no files behind. An installation failure is not
	// an error: it is recorded in the result.
	Run(ctx context.Context, p config.Project, opts RunOptions) (*RunResult, error)
}

// orchestrator is the concrete implementation of Orchestrator.
type orchestrator struct {
	fs          billy.Filesystem
	generator   generator.Generator
	provisioner Provisioner
	installer   install.Installer
	reporter    Reporter
	logger      *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*orchestrator)

// WithReporter sets the transition observer.
func WithReporter(r Reporter) Option {
	return func(o *orchestrator) {
		if r != nil {
			o.reporter = r
		}
	}
}

// WithProvisioner replaces the default provisioner.
func WithProvisioner(p Provisioner) Option {
	return func(o *orchestrator) {
		if p != nil {
			o.provisioner = p
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewOrchestrator creates an Orchestrator writing to fsys. installer may be
// nil when every run uses DryRun or SkipInstall.
func NewOrchestrator(fsys billy.Filesystem, gen generator.Generator, installer install.Installer, opts ...Option) Orchestrator {
	o := &orchestrator{
		fs:        fsys,
		generator: gen,
		installer: installer,
		reporter:  nopReporter{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.provisioner == nil {
		o.provisioner = NewProvisioner(DefaultWorkers, o.logger)
	}
	return o
}

// run tracks one execution: its state and what it created.
type run struct {
	o           *orchestrator
	result      *RunResult
	rootExisted bool
	dirs        []string // created directories, fs paths
	files       []string // created files, fs paths
}

func (r *run) enter(s State) {
	from := r.result.State
	r.result.State = s
	r.o.reporter.Transition(from, s)
	r.o.logger.Debug("state transition", "from", from, "to", s)
}

// fail moves to Failed and wraps cause in class.
func (r *run) fail(class, cause error) (*RunResult, error) {
	r.enter(StateFailed)
	if cause == nil || errors.Is(cause, class) {
		return r.result, class
	}
	return r.result, fmt.Errorf("%w: %w", class, cause)
}

// abort rolls back what this run created, then fails. A cancelled context
// turns any class into ErrInterrupted.
func (r *run) abort(ctx context.Context, class, cause error) (*RunResult, error) {
	if err := r.rollback(); err != nil {
		r.o.logger.Warn("rollback incomplete", "root", r.result.Root, "error", err)
		r.result.Warnings = append(r.result.Warnings, fmt.Sprintf("rollback incomplete: %s", err))
	}
	if ctx.Err() != nil {
		return r.fail(ErrInterrupted, cause)
	}
	return r.fail(class, cause)
}

// rollback removes the root when this run created it, otherwise every
// tracked file and directory in reverse creation order.
func (r *run) rollback() error {
	fsys := r.o.fs
	if !r.rootExisted {
		return util.RemoveAll(fsys, r.result.Root)
	}

	var errs []error
	remove := func(name string) {
		if err := fsys.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	for i := len(r.files) - 1; i >= 0; i-- {
		remove(r.files[i])
	}
	for i := len(r.dirs) - 1; i >= 0; i-- {
		remove(r.dirs[i])
	}
	return errors.Join(errs...)
}

// Run executes Idle → Provisioning → Generating → Resolving → Installing → Done.
func (o *orchestrator) Run(ctx context.Context, p config.Project, opts RunOptions) (*RunResult, error) {
	r := &run{o: o, result: &RunResult{State: StateIdle}}

	// Step 1: Validate the record before any I/O
	if !p.Valid() {
		return r.fail(ErrConfiguration, errors.New("record was not built by config.New"))
	}
	root := opts.Root
	if root == "" {
		root = p.Name()
	}
	root, err := cleanRoot(root)
	if err != nil {
		return r.fail(ErrConfiguration, err)
	}
	r.result.Root = root
	r.result.Directories = generator.Directories(p)

	plan, err := o.generator.Plan(p)
	if err != nil {
		return r.fail(ErrGeneration, err)
	}

	o.logger.Info("generating project",
		"root", root,
		"language", p.Language(),
		"packageManager", p.PackageManager(),
		"database", p.Database(),
		"auth", p.Auth(),
		"log", p.Log(),
	)

	if opts.DryRun {
		for _, v := range plan {
			r.result.Files = append(r.result.Files, template.TargetPath(v.Unit, v.Key))
		}
		r.enter(StateResolving)
		o.resolve(r, p)
		r.enter(StateDone)
		return r.result, nil
	}

	if err := ctx.Err(); err != nil {
		return r.fail(ErrInterrupted, err)
	}

	// Step 2: Refuse a non-empty target
	r.enter(StateProvisioning)
	existed, err := checkTarget(o.fs, root)
	if err != nil {
		return r.fail(ErrProvisioning, err)
	}
	r.rootExisted = existed

	// Step 3: Provision the directory set
	dirs := make([]string, 0, len(r.result.Directories)+1)
	if !existed {
		dirs = append(dirs, root)
	}
	for _, d := range r.result.Directories {
		dirs = append(dirs, path.Join(root, d))
	}
	r.dirs = dirs
	if err := o.provisioner.Ensure(ctx, o.fs, dirs); err != nil {
		return r.abort(ctx, ErrProvisioning, err)
	}

	// Step 4: Render everything, then write in order
	if err := ctx.Err(); err != nil {
		return r.abort(ctx, ErrInterrupted, err)
	}
	r.enter(StateGenerating)
	units, err := o.generator.Render(ctx, p)
	if err != nil {
		return r.abort(ctx, ErrGeneration, err)
	}
	created, err := generator.NewWriter(o.fs, root, o.logger).Write(ctx, units)
	r.files = created
	if err != nil {
		return r.abort(ctx, ErrGeneration, err)
	}
	for _, u := range units {
		r.result.Files = append(r.result.Files, u.Path)
	}

	// Step 5: Resolve dependencies
	if err := ctx.Err(); err != nil {
		return r.abort(ctx, ErrInterrupted, err)
	}
	r.enter(StateResolving)
	req := o.resolve(r, p)

	if opts.SkipInstall || o.installer == nil {
		r.enter(StateDone)
		return r.result, nil
	}

	// Step 6: Install. The tree is complete from here on and is kept.
	r.enter(StateInstalling)
	if err := o.installer.Install(ctx, req); err != nil {
		r.result.InstallError = fmt.Errorf("%w: %w", ErrInstallation, err)
		if ctx.Err() != nil {
			return r.fail(ErrInterrupted, r.result.InstallError)
		}
		o.logger.Warn("dependency installation failed", "error", err)
		r.result.Warnings = append(r.result.Warnings,
			fmt.Sprintf("dependency installation failed: %s", err),
			fmt.Sprintf("run manually: %s", r.result.ManualInstall),
		)
		r.enter(StateDone)
		return r.result, nil
	}
	r.result.Installed = true
	r.enter(StateDone)

	o.logger.Info("project generated",
		"root", root,
		"dirs", len(r.result.Directories),
		"files", len(r.result.Files),
	)
	return r.result, nil
}

// resolve fills the dependency fields of the result and returns the
// installer request.
func (o *orchestrator) resolve(r *run, p config.Project) install.Request {
	deps := dependency.Resolve(p)
	req := install.Request{
		Dir:     HostPath(o.fs, r.result.Root),
		Manager: p.PackageManager(),
		Runtime: deps.Runtime,
		Dev:     deps.Dev,
	}
	r.result.Dependencies = deps
	o.logger.Debug("resolved dependencies", "packages", deps.All())
	r.result.ManualInstall = fmt.Sprintf("cd %s && %s", r.result.Root, install.ManualCommand(req))
	return req
}

// Package install runs the package manager of a generated project.
package install

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/type3-dev/type3/pkg/models"
)

// Sentinel errors for the install package.
var (
	// ErrManagerNotFound indicates the package manager binary is not on PATH.
	ErrManagerNotFound = errors.New("install: package manager not found")

	// ErrUnsupportedManager indicates a package manager without a command table.
	ErrUnsupportedManager = errors.New("install: unsupported package manager")

	// ErrCommandFailed indicates the package manager exited unsuccessfully.
	ErrCommandFailed = errors.New("install: command failed")
)

// Request describes one installation.
type Request struct {
	Dir     string // project directory on the host filesystem
	Manager models.PackageManager
	Runtime []string
	Dev     []string
}

// Installer installs the packages of a generated project.
type Installer interface {
	// Install blocks until the package manager finishes. It is never
	// retried; the caller decides how to report a failure.
	Install(ctx context.Context, req Request) error
}

// execFunc runs name with args in dir. Replaced in tests.
type execFunc func(ctx context.Context, dir, name string, args ...string) error

// execInstaller implements Installer by invoking the package manager binary.
type execInstaller struct {
	logger *slog.Logger
	lookFn func(string) (string, error)
	execFn execFunc
}

// Compile-time interface compliance check.
var _ Installer = (*execInstaller)(nil)

// NewExecInstaller creates an Installer running real package manager commands.
func NewExecInstaller(logger *slog.Logger) Installer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &execInstaller{
		logger: logger,
		lookFn: exec.LookPath,
		execFn: runCommand,
	}
}

// Command is one package manager invocation.
type Command struct {
	Name string
	Args []string
}

// String renders the command as a shell line.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Commands returns the invocations needed for req: one for runtime
// packages and one for dev packages. Empty groups are skipped.
func Commands(req Request) ([]Command, error) {
	var add, devFlag []string
	switch req.Manager {
	case models.PackageManagerNPM:
		add, devFlag = []string{"install"}, []string{"--save-dev"}
	case models.PackageManagerYarn:
		add, devFlag = []string{"add"}, []string{"--dev"}
	case models.PackageManagerPNPM:
		add, devFlag = []string{"add"}, []string{"--save-dev"}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedManager, req.Manager)
	}

	name := string(req.Manager)
	var cmds []Command
	if len(req.Runtime) > 0 {
		args := append(append([]string{}, add...), req.Runtime...)
		cmds = append(cmds, Command{Name: name, Args: args})
	}
	if len(req.Dev) > 0 {
		args := append(append(append([]string{}, add...), devFlag...), req.Dev...)
		cmds = append(cmds, Command{Name: name, Args: args})
	}
	return cmds, nil
}

// ManualCommand returns the shell line a user can run to repeat the
// installation by hand.
func ManualCommand(req Request) string {
	cmds, err := Commands(req)
	if err != nil || len(cmds) == 0 {
		return ""
	}
	lines := make([]string, len(cmds))
	for i, c := range cmds {
		lines[i] = c.String()
	}
	return strings.Join(lines, " && ")
}

func (i *execInstaller) Install(ctx context.Context, req Request) error {
	cmds, err := Commands(req)
	if err != nil {
		return err
	}
	if len(cmds) == 0 {
		return nil
	}

	bin, err := i.lookFn(string(req.Manager))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrManagerNotFound, req.Manager)
	}

	for _, c := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		i.logger.Info("installing packages", "dir", req.Dir, "command", c.String())
		if err := i.execFn(ctx, req.Dir, bin, c.Args...); err != nil {
			return fmt.Errorf("%s: %w", c.String(), err)
		}
	}
	return nil
}

// runCommand executes a package manager command, capturing stderr for the
// error message.
func runCommand(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return fmt.Errorf("%w: %s", ErrCommandFailed, lastLine(errMsg))
	}
	return nil
}

// lastLine keeps the final line of noisy package manager output.
func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}

// Package project composes a generated Express project on a filesystem:
// it provisions directories, writes the rendered files, resolves the npm
// dependencies and hands them to an installer. It implements the core
// domain logic of the "type3 init" command.
package project

import "errors"

// Sentinel errors for the project package. Every error returned by Run
// wraps exactly one of the class errors below.
var (
	// ErrConfiguration indicates the record is invalid. Nothing was touched.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrProvisioning indicates the directory tree could not be created.
	ErrProvisioning = errors.New("provisioning failed")

	// ErrGeneration indicates a file could not be rendered or written.
	ErrGeneration = errors.New("generation failed")

	// ErrInstallation indicates the package manager failed. The tree is
	// complete; the caller reports it as a warning.
	ErrInstallation = errors.New("dependency installation failed")

	// ErrInterrupted indicates the run was cancelled.
	ErrInterrupted = errors.New("interrupted")

	// ErrProjectExists indicates the target directory exists and is not
	// empty. Reported as a provisioning failure.
	ErrProjectExists = errors.New("target directory already exists and is not empty")
)

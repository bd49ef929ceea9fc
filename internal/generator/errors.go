// Package generator turns a validated configuration record into the files
// of an Express project. Rendering is pure and happens entirely in memory;
// the Writer is the only part that touches a filesystem.
package generator

import "errors"

// Sentinel errors for the generator package.
var (
	// ErrInvalidProject indicates the record was not produced by config.New.
	ErrInvalidProject = errors.New("generator: invalid project record")

	// ErrRender indicates one or more units failed to render.
	ErrRender = errors.New("generator: render failed")

	// ErrInvalidJSON indicates a rendered JSON file does not parse.
	ErrInvalidJSON = errors.New("generator: invalid JSON")

	// ErrPathTraversal indicates a target path escapes the project root.
	ErrPathTraversal = errors.New("generator: path traversal")

	// ErrFileExists indicates the writer would overwrite an existing file.
	ErrFileExists = errors.New("generator: file already exists")
)

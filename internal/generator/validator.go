package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// PathError describes a rejected target path.
type PathError struct {
	Path   string
	Reason string
}

func (e PathError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e PathError) Unwrap() error {
	return ErrPathTraversal
}

// Validator checks rendered units before anything is written.
type Validator interface {
	// ValidateJSON reports whether data is well-formed JSON.
	ValidateJSON(data []byte) error

	// ValidatePaths returns one PathError per path escaping the root.
	ValidatePaths(paths []string) []PathError

	// Validate runs all checks over units and joins the failures.
	Validate(units []FileUnit) error
}

type validator struct{}

// NewValidator creates a Validator.
func NewValidator() Validator {
	return validator{}
}

func (validator) ValidateJSON(data []byte) error {
	if !json.Valid(data) {
		return ErrInvalidJSON
	}
	return nil
}

func (validator) ValidatePaths(paths []string) []PathError {
	var errs []PathError
	for _, p := range paths {
		if err := validateUnitPath(p); err != nil {
			var pe PathError
			if errors.As(err, &pe) {
				errs = append(errs, pe)
			}
		}
	}
	return errs
}

func (v validator) Validate(units []FileUnit) error {
	paths := make([]string, len(units))
	for i, u := range units {
		paths[i] = u.Path
	}

	var errs []error
	rejected := make(map[string]bool)
	for _, pe := range v.ValidatePaths(paths) {
		errs = append(errs, pe)
		rejected[pe.Path] = true
	}

	seen := make(map[string]bool, len(units))
	for _, u := range units {
		if rejected[u.Path] {
			continue
		}
		if seen[u.Path] {
			errs = append(errs, fmt.Errorf("%s: duplicate path", u.Path))
		}
		seen[u.Path] = true
		if strings.HasSuffix(u.Path, ".json") {
			if err := v.ValidateJSON(u.Content); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", u.Path, err))
			}
		}
	}
	return errors.Join(errs...)
}

// validateUnitPath ensures a slash-separated target path stays below the
// project root.
func validateUnitPath(relPath string) error {
	if relPath == "" {
		return PathError{Path: relPath, Reason: "empty path"}
	}
	if path.IsAbs(relPath) || filepath.IsAbs(relPath) || strings.Contains(relPath, `\`) {
		return PathError{Path: relPath, Reason: "absolute or non-portable path"}
	}
	cleaned := path.Clean(relPath)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return PathError{Path: relPath, Reason: "escapes project root"}
	}
	return nil
}

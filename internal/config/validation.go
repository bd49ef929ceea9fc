package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/type3-dev/type3/pkg/models"
)

// namePattern restricts project names to a single portable path segment
// that npm also accepts as a new package name.
var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// New validates opts and returns the immutable configuration record.
// Unset fields fall back to Defaults. All field problems are reported
// together as *ValidationErrors.
func New(opts Options) (Project, error) {
	opts = Merge(Defaults(), opts)

	var errs []ValidationError
	p := Project{
		name: strings.TrimSpace(opts.Name),
		auth: *opts.Auth,
		log:  *opts.Log,
	}

	errs = append(errs, validateName(p.name)...)

	if l, err := models.ParseLanguage(opts.Language); err != nil {
		errs = append(errs, unknownValue("language", opts.Language, joinValues(models.ValidLanguages())))
	} else {
		p.language = l
	}

	if m, err := models.ParsePackageManager(opts.PackageManager); err != nil {
		errs = append(errs, unknownValue("package_manager", opts.PackageManager, joinValues(models.ValidPackageManagers())))
	} else {
		p.packageManager = m
	}

	if d, err := models.ParseDatabase(opts.Database); err != nil {
		errs = append(errs, unknownValue("database", opts.Database, joinValues(models.ValidDatabases())))
	} else {
		p.database = d
	}

	if len(errs) > 0 {
		return Project{}, &ValidationErrors{Errors: errs}
	}
	p.valid = true
	return p, nil
}

// validateName checks that name is usable as both a directory name and a
// package manifest name.
func validateName(name string) []ValidationError {
	switch {
	case name == "":
		return []ValidationError{{
			Field:   "name",
			Message: "required field is empty",
			Wrapped: ErrInvalidName,
		}}
	case name == "." || name == "..":
		return []ValidationError{{
			Field:   "name",
			Message: "must not be a relative directory reference",
			Value:   name,
			Wrapped: ErrInvalidName,
		}}
	case len(name) > MaxNameLength:
		return []ValidationError{{
			Field:   "name",
			Message: fmt.Sprintf("must be at most %d characters", MaxNameLength),
			Value:   len(name),
			Wrapped: ErrInvalidName,
		}}
	case strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_"):
		return []ValidationError{{
			Field:   "name",
			Message: "must not start with '.' or '_'",
			Value:   name,
			Wrapped: ErrInvalidName,
		}}
	case strings.ToLower(name) != name:
		return []ValidationError{{
			Field:   "name",
			Message: "must be lowercase",
			Value:   name,
			Wrapped: ErrInvalidName,
		}}
	case !namePattern.MatchString(name):
		return []ValidationError{{
			Field:   "name",
			Message: "may only contain lowercase letters, digits, '.', '_' and '-'",
			Value:   name,
			Wrapped: ErrInvalidName,
		}}
	}
	return nil
}

func unknownValue(field, value, allowed string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: "must be one of: " + allowed,
		Value:   value,
		Wrapped: ErrUnknownValue,
	}
}

func joinValues[T ~string](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = string(v)
	}
	return strings.Join(s, ", ")
}

// Package template selects and renders the embedded source templates that
// make up a generated Express project.
//
// Every generated file belongs to a Unit. A Unit declares which fields of
// the configuration record it depends on; Select masks the record down to
// those fields (the VariantKey) and maps the key to exactly one embedded
// template. Rendering data is derived from the key alone, so two records
// that agree on a unit's key always produce byte-identical content.
package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the requested template does not exist.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates template execution failed, typically
	// because the data has no value for a referenced key.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates a template action survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token")

	// ErrUnknownVariant indicates a unit or key value has no template.
	ErrUnknownVariant = errors.New("template: unknown variant")
)

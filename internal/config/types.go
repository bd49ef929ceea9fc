package config

import "github.com/type3-dev/type3/pkg/models"

// Options is the unvalidated input form of a project configuration.
// Empty strings and nil switches mean "not set" so that several sources
// can be layered with Merge.
type Options struct {
	Name           string `yaml:"name"`
	Language       string `yaml:"language"`
	PackageManager string `yaml:"package_manager"`
	Database       string `yaml:"database"`
	Auth           *bool  `yaml:"auth"`
	Log            *bool  `yaml:"log"`
}

// Merge returns base with every field that is set in overlay replaced.
func Merge(base, overlay Options) Options {
	out := base
	if overlay.Name != "" {
		out.Name = overlay.Name
	}
	if overlay.Language != "" {
		out.Language = overlay.Language
	}
	if overlay.PackageManager != "" {
		out.PackageManager = overlay.PackageManager
	}
	if overlay.Database != "" {
		out.Database = overlay.Database
	}
	if overlay.Auth != nil {
		out.Auth = Bool(*overlay.Auth)
	}
	if overlay.Log != nil {
		out.Log = Bool(*overlay.Log)
	}
	return out
}

// Bool returns a pointer to a copy of b.
func Bool(b bool) *bool {
	return &b
}

// Project is the validated, immutable configuration record. Every
// generation decision is a pure function of a Project. The zero value is
// not a valid record; use New.
type Project struct {
	name           string
	language       models.Language
	packageManager models.PackageManager
	database       models.Database
	auth           bool
	log            bool
	valid          bool
}

// Name returns the project name, also used as the directory name.
func (p Project) Name() string { return p.name }

// Language returns the source language.
func (p Project) Language() models.Language { return p.language }

// PackageManager returns the dependency installer.
func (p Project) PackageManager() models.PackageManager { return p.packageManager }

// Database returns the persistence backend.
func (p Project) Database() models.Database { return p.database }

// Auth reports whether authentication code is generated.
func (p Project) Auth() bool { return p.auth }

// Log reports whether logging code is generated.
func (p Project) Log() bool { return p.log }

// Ext returns the source file extension, "js" or "ts".
func (p Project) Ext() string { return p.language.Ext() }

// Valid reports whether p was produced by New.
func (p Project) Valid() bool { return p.valid }

// Options converts the record back to its input form.
func (p Project) Options() Options {
	return Options{
		Name:           p.name,
		Language:       string(p.language),
		PackageManager: string(p.packageManager),
		Database:       string(p.database),
		Auth:           Bool(p.auth),
		Log:            Bool(p.log),
	}
}

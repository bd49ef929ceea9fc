package template

import (
	"strings"

	"github.com/type3-dev/type3/pkg/models"
)

// TemplateContext provides data for rendering one unit.
// All fields are exported for use with Go's text/template package.
type TemplateContext struct {
	// Project
	ProjectName string

	// Language
	TypeScript bool
	Ext        string // "js" or "ts"
	Language   string // display name

	// Package manager commands
	PackageManager string
	RunDev         string // e.g. "npm run dev"
	RunBuild       string
	RunStart       string

	// Database
	Database   string // display name, e.g. "PostgreSQL"
	Persistent bool
	Family     string // "document", "relational", "none"
	Dialect    string // Sequelize dialect
	ORM        string
	DBURL      string // example connection string

	// Features
	Auth bool
	Log  bool

	// Endpoints
	Service    string // service class name
	Operations []Operation

	// Modules
	Paths map[string]string // module path of every scheduled unit
	Self  string            // module path of the unit being rendered
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext derives the rendering data from a variant key, then
// applies any provided options. Only key fields feed the context.
func NewTemplateContext(key VariantKey, opts ...ContextOption) *TemplateContext {
	profile := key.Database.Profile()
	ctx := &TemplateContext{
		ProjectName:    key.Name,
		TypeScript:     key.Language == models.LanguageTypeScript,
		Ext:            key.Language.Ext(),
		Language:       key.Language.Label(),
		PackageManager: string(key.PackageManager),
		RunDev:         key.PackageManager.RunScript("dev"),
		RunBuild:       key.PackageManager.RunScript("build"),
		RunStart:       key.PackageManager.RunScript("start"),
		Database:       key.Database.Label(),
		Persistent:     key.persistent(),
		Family:         string(key.Family),
		Dialect:        profile.Dialect,
		ORM:            profile.ORM,
		DBURL:          profile.URLExample,
		Auth:           key.Auth,
		Log:            key.Log,
		Service:        "HelloService",
		Operations:     Operations(key),
		Paths:          Layout(key),
	}
	if ctx.Persistent {
		ctx.Service = "UserService"
		if ctx.ORM == "" {
			ctx.ORM = ormForFamily(key.Family)
		}
	}

	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// ormForFamily names the ORM when only the family is part of the key.
func ormForFamily(f models.Family) string {
	switch f {
	case models.FamilyDocument:
		return "Mongoose"
	case models.FamilyRelational:
		return "Sequelize"
	}
	return ""
}

// WithSelf sets the module path of the unit being rendered.
func WithSelf(module string) ContextOption {
	return func(c *TemplateContext) {
		c.Self = module
	}
}

// Handlers returns the comma-separated controller handler names.
func (c *TemplateContext) Handlers() string {
	names := make([]string, len(c.Operations))
	for i, op := range c.Operations {
		names[i] = op.Name
	}
	return strings.Join(names, ", ")
}

// Protected reports whether any operation requires authentication.
func (c *TemplateContext) Protected() bool {
	for _, op := range c.Operations {
		if op.Protected {
			return true
		}
	}
	return false
}

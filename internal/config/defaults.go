package config

import "github.com/type3-dev/type3/pkg/models"

// Default value constants.
const (
	DefaultProjectName    = "my-express-project"
	DefaultLanguage       = models.LanguageJavaScript
	DefaultPackageManager = models.PackageManagerNPM
	DefaultDatabase       = models.DatabaseNone
	DefaultAuth           = false
	DefaultLog            = true

	// MaxNameLength is the npm package name limit.
	MaxNameLength = 214
)

// Defaults returns Options with every field set to its default value.
func Defaults() Options {
	return Options{
		Name:           DefaultProjectName,
		Language:       string(DefaultLanguage),
		PackageManager: string(DefaultPackageManager),
		Database:       string(DefaultDatabase),
		Auth:           Bool(DefaultAuth),
		Log:            Bool(DefaultLog),
	}
}

package models

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnknownChoice is returned by the Parse* functions for unrecognized input.
var ErrUnknownChoice = errors.New("models: unknown choice")

// Language selects the source language of the generated project.
type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
)

// ValidLanguages returns all valid language values.
func ValidLanguages() []Language {
	return []Language{LanguageJavaScript, LanguageTypeScript}
}

// IsValid checks if the language is a valid value.
func (l Language) IsValid() bool {
	switch l {
	case LanguageJavaScript, LanguageTypeScript:
		return true
	}
	return false
}

// Ext returns the source file extension without the leading dot.
func (l Language) Ext() string {
	if l == LanguageTypeScript {
		return "ts"
	}
	return "js"
}

// Label returns the display name.
func (l Language) Label() string {
	switch l {
	case LanguageJavaScript:
		return "JavaScript"
	case LanguageTypeScript:
		return "TypeScript"
	}
	return string(l)
}

// PackageManager selects the tool used to install dependencies.
type PackageManager string

const (
	PackageManagerNPM  PackageManager = "npm"
	PackageManagerYarn PackageManager = "yarn"
	PackageManagerPNPM PackageManager = "pnpm"
)

// ValidPackageManagers returns all valid package manager values.
func ValidPackageManagers() []PackageManager {
	return []PackageManager{PackageManagerNPM, PackageManagerYarn, PackageManagerPNPM}
}

// IsValid checks if the package manager is a valid value.
func (m PackageManager) IsValid() bool {
	switch m {
	case PackageManagerNPM, PackageManagerYarn, PackageManagerPNPM:
		return true
	}
	return false
}

// RunScript returns the command that runs a manifest script, e.g. "npm run dev".
func (m PackageManager) RunScript(script string) string {
	if m == PackageManagerNPM {
		return "npm run " + script
	}
	return string(m) + " " + script
}

var languageAliases = map[string]Language{
	"javascript": LanguageJavaScript,
	"js":         LanguageJavaScript,
	"typescript": LanguageTypeScript,
	"ts":         LanguageTypeScript,
}

var packageManagerAliases = map[string]PackageManager{
	"npm":  PackageManagerNPM,
	"yarn": PackageManagerYarn,
	"pnpm": PackageManagerPNPM,
}

var databaseAliases = map[string]Database{
	"mongodb":    DatabaseMongoDB,
	"mongo":      DatabaseMongoDB,
	"mysql":      DatabaseMySQL,
	"postgresql": DatabasePostgreSQL,
	"postgres":   DatabasePostgreSQL,
	"pg":         DatabasePostgreSQL,
	"none":       DatabaseNone,
}

// fold normalizes user input for alias lookup.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// ParseLanguage converts user input such as "TypeScript" or "ts" to a Language.
func ParseLanguage(s string) (Language, error) {
	if l, ok := languageAliases[fold(s)]; ok {
		return l, nil
	}
	return "", fmt.Errorf("%w: language %q", ErrUnknownChoice, s)
}

// ParsePackageManager converts user input such as "PNPM" to a PackageManager.
func ParsePackageManager(s string) (PackageManager, error) {
	if m, ok := packageManagerAliases[fold(s)]; ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: package manager %q", ErrUnknownChoice, s)
}

// ParseDatabase converts user input such as "Postgres" or "mongo" to a Database.
func ParseDatabase(s string) (Database, error) {
	if d, ok := databaseAliases[fold(s)]; ok {
		return d, nil
	}
	return "", fmt.Errorf("%w: database %q", ErrUnknownChoice, s)
}

package template

import "github.com/type3-dev/type3/pkg/models"

// Unit names one logical generated artifact.
type Unit string

const (
	UnitManifest       Unit = "manifest"
	UnitTSConfig       Unit = "tsconfig"
	UnitEnv            Unit = "env"
	UnitGitignore      Unit = "gitignore"
	UnitReadme         Unit = "readme"
	UnitDatabase       Unit = "database"
	UnitModel          Unit = "model"
	UnitAuthUtils      Unit = "authUtils"
	UnitLogger         Unit = "logger"
	UnitService        Unit = "service"
	UnitController     Unit = "controller"
	UnitAuthMiddleware Unit = "authMiddleware"
	UnitRequestLogger  Unit = "requestLogger"
	UnitRouter         Unit = "router"
	UnitServer         Unit = "server"
)

// Units returns every unit in write order. Leaf modules come before the
// modules importing them and the entry point is last.
func Units() []Unit {
	return []Unit{
		UnitManifest,
		UnitTSConfig,
		UnitEnv,
		UnitGitignore,
		UnitReadme,
		UnitDatabase,
		UnitModel,
		UnitAuthUtils,
		UnitLogger,
		UnitService,
		UnitController,
		UnitAuthMiddleware,
		UnitRequestLogger,
		UnitRouter,
		UnitServer,
	}
}

// Axis is one configuration field a unit may depend on.
type Axis uint8

const (
	AxisName Axis = 1 << iota
	AxisLanguage
	AxisPackageManager
	AxisDatabase
	AxisFamily
	AxisAuth
	AxisLog
)

// unitSpec describes how a unit is scheduled, addressed and named.
type unitSpec struct {
	axes       Axis
	byLanguage bool // one template per language
	byFamily   bool // one template per database family
	// module is the slash-separated target path. Source modules omit the
	// extension; the key's language supplies it.
	module    func(k VariantKey) string
	source    bool
	scheduled func(k VariantKey) bool
}

func always(VariantKey) bool { return true }

func fixed(p string) func(VariantKey) string {
	return func(VariantKey) string { return p }
}

// resource returns the basename shared by the service, controller and
// router of a key: "user" with a database, "hello" without.
func resource(k VariantKey) string {
	if k.persistent() {
		return "user"
	}
	return "hello"
}

var unitSpecs = map[Unit]unitSpec{
	UnitManifest: {
		axes:      AxisName | AxisLanguage | AxisPackageManager,
		module:    fixed("package.json"),
		scheduled: always,
	},
	UnitTSConfig: {
		axes:   AxisLanguage,
		module: fixed("tsconfig.json"),
		scheduled: func(k VariantKey) bool {
			return k.Language == models.LanguageTypeScript
		},
	},
	UnitEnv: {
		axes:      AxisDatabase | AxisAuth | AxisLog,
		module:    fixed(".env"),
		scheduled: always,
	},
	UnitGitignore: {
		axes:      AxisLanguage,
		module:    fixed(".gitignore"),
		scheduled: always,
	},
	UnitReadme: {
		axes:      AxisName | AxisLanguage | AxisPackageManager | AxisDatabase | AxisFamily | AxisAuth | AxisLog,
		module:    fixed("README.md"),
		scheduled: always,
	},
	UnitDatabase: {
		axes:       AxisLanguage | AxisDatabase | AxisFamily,
		byLanguage: true,
		byFamily:   true,
		module:     fixed("src/config/dbConfig"),
		source:     true,
		scheduled:  VariantKey.persistent,
	},
	UnitModel: {
		axes:       AxisLanguage | AxisFamily | AxisAuth,
		byLanguage: true,
		byFamily:   true,
		module:     fixed("src/models/User"),
		source:     true,
		scheduled:  VariantKey.persistent,
	},
	UnitAuthUtils: {
		axes:       AxisLanguage | AxisAuth,
		byLanguage: true,
		module:     fixed("src/utils/auth.utils"),
		source:     true,
		scheduled:  func(k VariantKey) bool { return k.Auth },
	},
	UnitLogger: {
		axes:       AxisLanguage | AxisLog,
		byLanguage: true,
		module:     fixed("src/utils/logger"),
		source:     true,
		scheduled:  func(k VariantKey) bool { return k.Log },
	},
	UnitService: {
		axes:       AxisLanguage | AxisFamily | AxisAuth,
		byLanguage: true,
		byFamily:   true,
		module:     func(k VariantKey) string { return "src/services/" + resource(k) + ".service" },
		source:     true,
		scheduled:  always,
	},
	UnitController: {
		axes:       AxisLanguage | AxisFamily | AxisAuth,
		byLanguage: true,
		module:     func(k VariantKey) string { return "src/controllers/" + resource(k) + ".controller" },
		source:     true,
		scheduled:  always,
	},
	UnitAuthMiddleware: {
		axes:       AxisLanguage | AxisAuth,
		byLanguage: true,
		module:     fixed("src/middleware/auth.middleware"),
		source:     true,
		scheduled:  func(k VariantKey) bool { return k.Auth },
	},
	UnitRequestLogger: {
		axes:       AxisLanguage | AxisLog,
		byLanguage: true,
		module:     fixed("src/middleware/requestLogger"),
		source:     true,
		scheduled:  func(k VariantKey) bool { return k.Log },
	},
	UnitRouter: {
		axes:       AxisLanguage | AxisFamily | AxisAuth,
		byLanguage: true,
		module:     func(k VariantKey) string { return "src/routes/" + resource(k) + ".routes" },
		source:     true,
		scheduled:  always,
	},
	UnitServer: {
		axes:       AxisLanguage | AxisFamily | AxisAuth | AxisLog,
		byLanguage: true,
		module:     fixed("src/server"),
		source:     true,
		scheduled:  always,
	},
}

// IsValid reports whether u is a known unit.
func (u Unit) IsValid() bool {
	_, ok := unitSpecs[u]
	return ok
}

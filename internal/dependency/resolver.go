// Package dependency computes the npm packages a generated project needs.
package dependency

import (
	"github.com/type3-dev/type3/internal/config"
	"github.com/type3-dev/type3/pkg/models"
)

// List holds the packages to install, split by manifest section.
type List struct {
	Runtime []string
	Dev     []string
}

// All returns runtime packages followed by dev packages.
func (l List) All() []string {
	all := make([]string, 0, len(l.Runtime)+len(l.Dev))
	all = append(all, l.Runtime...)
	return append(all, l.Dev...)
}

var (
	baseRuntime = []string{"express", "dotenv", "cors", "cookie-parser", "helmet"}
	authRuntime = []string{"jsonwebtoken", "bcryptjs"}
	logRuntime  = []string{"winston", "morgan"}

	baseDev       = []string{"nodemon", "eslint"}
	typescriptDev = []string{
		"typescript",
		"ts-node",
		"@types/node",
		"@types/express",
		"@types/cors",
		"@types/cookie-parser",
	}
	authTypes = []string{"@types/jsonwebtoken", "@types/bcryptjs"}
	logTypes  = []string{"@types/morgan"}
)

// Resolve returns the packages for p. Order is fixed: base, database, auth,
// logging for runtime; base tooling, TypeScript tooling, then typings for
// auth and logging. Database drivers ship their own typings. Duplicates keep
// their first position.
func Resolve(p config.Project) List {
	runtime := [][]string{baseRuntime, p.Database().Profile().Packages}
	dev := [][]string{baseDev}

	ts := p.Language() == models.LanguageTypeScript
	if ts {
		dev = append(dev, typescriptDev)
	}
	if p.Auth() {
		runtime = append(runtime, authRuntime)
		if ts {
			dev = append(dev, authTypes)
		}
	}
	if p.Log() {
		runtime = append(runtime, logRuntime)
		if ts {
			dev = append(dev, logTypes)
		}
	}

	return List{
		Runtime: dedupe(runtime...),
		Dev:     dedupe(dev...),
	}
}

// dedupe concatenates groups, dropping repeated names.
func dedupe(groups ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, g := range groups {
		for _, name := range g {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

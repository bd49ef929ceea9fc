package wizard

import (
	"slices"
	"strconv"

	"github.com/type3-dev/type3/internal/config"
	"github.com/type3-dev/type3/pkg/models"
)

// Question IDs, also the keys accepted by saveAnswer.
const (
	IDProjectName    = "project_name"
	IDLanguage       = "language"
	IDPackageManager = "package_manager"
	IDDatabase       = "database"
	IDAuth           = "auth"
	IDLog            = "log"
)

// DefaultQuestions returns the project questions in asking order. Fields
// already set in known (from flags or a preset) are not asked. Defaults
// are taken from defaults, normally config.Defaults().
func DefaultQuestions(defaults, known config.Options) []Question {
	var qs []Question

	if known.Name == "" {
		qs = append(qs, Question{
			ID:          IDProjectName,
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Also used as the directory name.",
			Default:     defaults.Name,
			Required:    true,
			Validate:    validateName,
		})
	}

	if known.Language == "" {
		opts := make([]Option, 0, 2)
		for _, l := range models.ValidLanguages() {
			opts = append(opts, Option{Label: l.Label(), Value: string(l)})
		}
		qs = append(qs, Question{
			ID:      IDLanguage,
			Type:    QuestionTypeSelect,
			Title:   "Language",
			Options: defaultFirst(opts, defaults.Language),
			Default: defaults.Language,
		})
	}

	if known.PackageManager == "" {
		opts := make([]Option, 0, 3)
		for _, m := range models.ValidPackageManagers() {
			opts = append(opts, Option{Label: string(m), Value: string(m)})
		}
		qs = append(qs, Question{
			ID:          IDPackageManager,
			Type:        QuestionTypeSelect,
			Title:       "Package manager",
			Description: "Installs the dependencies after generation.",
			Options:     defaultFirst(opts, defaults.PackageManager),
			Default:     defaults.PackageManager,
		})
	}

	if known.Database == "" {
		opts := make([]Option, 0, 4)
		for _, d := range models.ValidDatabases() {
			o := Option{Label: d.Label(), Value: string(d)}
			if orm := d.Profile().ORM; orm != "" {
				o.Desc = "via " + orm
			}
			opts = append(opts, o)
		}
		qs = append(qs, Question{
			ID:      IDDatabase,
			Type:    QuestionTypeSelect,
			Title:   "Database",
			Options: defaultFirst(opts, defaults.Database),
			Default: defaults.Database,
		})
	}

	if known.Auth == nil {
		qs = append(qs, Question{
			ID:          IDAuth,
			Type:        QuestionTypeConfirm,
			Title:       "Include authentication?",
			Description: "JWT login and registration routes with a protected route guard.",
			Default:     formatBool(defaults.Auth),
		})
	}

	if known.Log == nil {
		qs = append(qs, Question{
			ID:          IDLog,
			Type:        QuestionTypeConfirm,
			Title:       "Include logging?",
			Description: "Structured logger and HTTP request logging.",
			Default:     formatBool(defaults.Log),
		})
	}

	return qs
}

// defaultFirst moves the option matching def to the front.
// Default option must be first to avoid the huh v0.8.0 viewport YOffset
// bug: the viewport scrolls to the selected index and hides earlier options.
func defaultFirst(opts []Option, def string) []Option {
	i := slices.IndexFunc(opts, func(o Option) bool { return o.Value == def })
	if i <= 0 {
		return opts
	}
	out := make([]Option, 0, len(opts))
	out = append(out, opts[i])
	out = append(out, opts[:i]...)
	return append(out, opts[i+1:]...)
}

func validateName(name string) error {
	_, err := config.New(config.Options{Name: name})
	return err
}

func formatBool(b *bool) string {
	if b == nil {
		return "false"
	}
	return strconv.FormatBool(*b)
}

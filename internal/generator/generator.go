package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"sort"
	"sync"

	"github.com/type3-dev/type3/internal/config"
	"github.com/type3-dev/type3/internal/template"
)

// FileUnit is one rendered file.
type FileUnit struct {
	Unit    template.Unit
	Path    string // slash-separated, relative to the project root
	Content []byte
}

// Generator plans and renders the files of a project.
type Generator interface {
	// Plan returns the variant of every unit scheduled for p in write order.
	// It performs no I/O.
	Plan(p config.Project) ([]template.Variant, error)

	// Render renders every planned unit. Units render concurrently but the
	// result keeps the Plan order. Nothing is returned unless all units
	// rendered.
	Render(ctx context.Context, p config.Project) ([]FileUnit, error)
}

// projectGenerator is the concrete implementation of Generator.
type projectGenerator struct {
	renderer  template.Renderer
	validator Validator
	logger    *slog.Logger
}

// New creates a Generator rendering through renderer.
func New(renderer template.Renderer, logger *slog.Logger) Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &projectGenerator{
		renderer:  renderer,
		validator: NewValidator(),
		logger:    logger,
	}
}

// NewEmbedded creates a Generator backed by the built-in templates.
func NewEmbedded(logger *slog.Logger) (Generator, error) {
	fsys, err := template.EmbeddedTemplates()
	if err != nil {
		return nil, fmt.Errorf("load embedded templates: %w", err)
	}
	names := template.ListTemplates(fsys)
	if len(names) == 0 {
		return nil, fmt.Errorf("load embedded templates: %w", template.ErrTemplateNotFound)
	}
	if logger != nil {
		logger.Debug("loaded templates", "count", len(names))
	}
	return New(template.NewRenderer(fsys), logger), nil
}

// Plan returns the variant of every scheduled unit in write order.
func (g *projectGenerator) Plan(p config.Project) ([]template.Variant, error) {
	if !p.Valid() {
		return nil, ErrInvalidProject
	}
	full := template.FullKey(p)

	var plan []template.Variant
	for _, u := range template.Units() {
		if !template.Scheduled(u, full) {
			continue
		}
		v, err := template.Select(u, p)
		if err != nil {
			return nil, fmt.Errorf("plan %s: %w", u, err)
		}
		plan = append(plan, v)
	}
	return plan, nil
}

// Render renders all planned units.
func (g *projectGenerator) Render(ctx context.Context, p config.Project) ([]FileUnit, error) {
	plan, err := g.Plan(p)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	units := make([]FileUnit, len(plan))
	errs := make([]error, len(plan))

	var wg sync.WaitGroup
	for i, v := range plan {
		wg.Go(func() {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			unit, err := g.renderVariant(v)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", v.Unit, err)
				return
			}
			units[i] = unit
		})
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	if err := g.validator.Validate(units); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	g.logger.Debug("rendered project", "name", p.Name(), "files", len(units))
	return units, nil
}

// renderVariant renders one unit from its masked key.
func (g *projectGenerator) renderVariant(v template.Variant) (FileUnit, error) {
	module := template.Module(v.Unit, v.Key)
	data := template.NewTemplateContext(v.Key, template.WithSelf(module))

	content, err := g.renderer.Render(v.Template, data)
	if err != nil {
		return FileUnit{}, err
	}
	return FileUnit{
		Unit:    v.Unit,
		Path:    template.TargetPath(v.Unit, v.Key),
		Content: content,
	}, nil
}

// baseDirectories are provisioned for every project.
var baseDirectories = []string{"src", "logs"}

// Directories returns the directory set of p: the parents of every
// scheduled file plus src and logs, sorted so parents precede children.
func Directories(p config.Project) []string {
	full := template.FullKey(p)

	seen := make(map[string]bool)
	var add func(dir string)
	add = func(dir string) {
		if dir == "." || dir == "/" || dir == "" || seen[dir] {
			return
		}
		seen[dir] = true
		add(path.Dir(dir))
	}
	for _, d := range baseDirectories {
		add(d)
	}
	for _, u := range template.Units() {
		if template.Scheduled(u, full) {
			add(path.Dir(template.TargetPath(u, full)))
		}
	}

	dirs := make([]string, 0, len(seen))
	for d := range seen {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

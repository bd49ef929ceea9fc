package template

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"strings"
	"text/template"
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// jsonEscape escapes a string for safe embedding in JSON values.
	// It handles backslashes, quotes, and control characters by leveraging
	// encoding/json.Marshal, then stripping the surrounding quotes.
	"jsonEscape": func(s string) string {
		b, err := json.Marshal(s)
		if err != nil {
			return s
		}
		return string(b[1 : len(b)-1])
	},
	// rel returns the relative import specifier from module "from" to
	// module "to", e.g. rel "src/server" "src/routes/user.routes" is
	// "./routes/user.routes".
	"rel":   relImport,
	"upper": strings.ToUpper,
	// fail aborts rendering; used for cases a template does not handle.
	"fail": func(msg string, args ...any) (string, error) {
		return "", fmt.Errorf("%s %v", msg, args)
	},
}

// relImport computes a Node.js relative module specifier between two
// slash-separated module paths.
func relImport(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", errors.New("rel: empty module path")
	}
	var base []string
	if dir := path.Dir(from); dir != "." {
		base = strings.Split(dir, "/")
	}
	target := strings.Split(to, "/")

	i := 0
	for i < len(base) && i < len(target)-1 && base[i] == target[i] {
		i++
	}
	parts := make([]string, 0, len(base)-i+len(target)-i)
	for range base[i:] {
		parts = append(parts, "..")
	}
	parts = append(parts, target[i:]...)

	rel := strings.Join(parts, "/")
	if !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}
	return rel, nil
}

// unexpandedTokenPattern detects template actions left in rendered output.
// JavaScript template literals (${...}) are legitimate output and are not
// matched.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{[^}]*\}\}`)

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the template FS and executes
	// it with the given data. Returns ErrMissingTemplateKey if a key is
	// missing and ErrUnexpandedToken if tokens remain after rendering.
	Render(templateName string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q", ErrUnexpandedToken, string(loc))
	}

	return result, nil
}

package template

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed templates
var embedded embed.FS

// EmbeddedTemplates returns the built-in template filesystem rooted so that
// names match Variant.Template.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embedded, "templates")
}

// ListTemplates returns the sorted paths of all .tmpl files in fsys.
func ListTemplates(fsys fs.FS) []string {
	var list []string
	_ = fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip errors during listing
		}
		if entry.IsDir() || !strings.HasSuffix(p, ".tmpl") {
			return nil
		}
		list = append(list, p)
		return nil
	})
	sort.Strings(list)
	return list
}

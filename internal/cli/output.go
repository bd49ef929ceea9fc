package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/type3-dev/type3/internal/config"
	"github.com/type3-dev/type3/internal/core/project"
	"github.com/type3-dev/type3/internal/ui"
)

// outputTheme picks a theme for w. Colors are off for non-terminals and
// when NO_COLOR is set.
func outputTheme(w io.Writer) *ui.Theme {
	return ui.NewTheme(ui.ThemeConfig{
		NoColor: !ui.IsTerminal(w) || os.Getenv("NO_COLOR") != "",
	})
}

// errorLine formats a command error for stderr.
func errorLine(err error) string {
	theme := outputTheme(os.Stderr)
	return theme.Error.Render("✗ Error:") + " " + err.Error()
}

type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines aligns values after the longest key.
func renderKeyValueLines(theme *ui.Theme, pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p.key))
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = theme.Muted.Render(fmt.Sprintf("%-*s", width, p.key)) + "  " + p.value
	}
	return strings.Join(lines, "\n")
}

// renderSuccessCard boxes a title and detail blocks.
func renderSuccessCard(theme *ui.Theme, title string, details ...string) string {
	body := theme.Success.Render("✓") + " " + theme.Title.Render(title)
	for _, d := range details {
		body += "\n\n" + d
	}
	return theme.Card.Render(body)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// configPairs describes the record.
func configPairs(p config.Project) []kvPair {
	return []kvPair{
		{"Language", p.Language().Label()},
		{"Package manager", string(p.PackageManager())},
		{"Database", p.Database().Label()},
		{"Authentication", yesNo(p.Auth())},
		{"Logging", yesNo(p.Log())},
	}
}

// printSummary writes the success card, warnings and next steps.
func printSummary(w io.Writer, theme *ui.Theme, p config.Project, r *project.RunResult) {
	install := "installed"
	if !r.Installed {
		install = "not installed"
	}
	pairs := append([]kvPair{{"Location", "./" + r.Root}}, configPairs(p)...)
	pairs = append(pairs,
		kvPair{"Files", fmt.Sprintf("%d written", len(r.Files))},
		kvPair{"Dependencies", fmt.Sprintf("%d runtime, %d dev, %s", len(r.Dependencies.Runtime), len(r.Dependencies.Dev), install)},
	)

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, renderSuccessCard(theme, fmt.Sprintf("Project %s created", p.Name()), renderKeyValueLines(theme, pairs)))
	for _, warn := range r.Warnings {
		_, _ = fmt.Fprintln(w, theme.Warning.Render("! "+warn))
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprint(w, ui.RenderMarkdown(nextSteps(p, r), theme))
}

// nextSteps is the markdown list of what to do after generation.
func nextSteps(p config.Project, r *project.RunResult) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n")
	step := 1
	add := func(format string, args ...any) {
		fmt.Fprintf(&b, "%d. "+format+"\n", append([]any{step}, args...)...)
		step++
	}

	if r.Installed {
		add("Enter the project: `cd %s`", r.Root)
	} else {
		add("Install dependencies: `%s`", r.ManualInstall)
	}
	if p.Database().Persistent() {
		add("Point `DB_URL` in `.env` at your %s server", p.Database().Label())
	}
	if p.Auth() {
		add("Replace `JWT_SECRET` in `.env` with a long random value")
	}
	add("Start the development server: `%s`", p.PackageManager().RunScript("dev"))
	return b.String()
}

// printPlan writes what a dry run would generate.
func printPlan(w io.Writer, theme *ui.Theme, p config.Project, r *project.RunResult) {
	_, _ = fmt.Fprintln(w, theme.Title.Render(fmt.Sprintf("Dry run for %s: nothing was written", p.Name())))
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, renderKeyValueLines(theme, configPairs(p)))

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, theme.Title.Render("Directories"))
	for _, d := range r.Directories {
		_, _ = fmt.Fprintf(w, "  %s/%s/\n", r.Root, d)
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, theme.Title.Render("Files"))
	for _, f := range r.Files {
		_, _ = fmt.Fprintf(w, "  %s/%s\n", r.Root, f)
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, theme.Title.Render("Dependencies"))
	_, _ = fmt.Fprintf(w, "  runtime: %s\n", strings.Join(r.Dependencies.Runtime, " "))
	_, _ = fmt.Fprintf(w, "  dev:     %s\n", strings.Join(r.Dependencies.Dev, " "))
	_, _ = fmt.Fprintf(w, "  install: %s\n", r.ManualInstall)
}

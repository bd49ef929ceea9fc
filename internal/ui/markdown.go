package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownWidth is the word wrap column for rendered markdown.
const markdownWidth = 80

// RenderMarkdown renders md for the terminal. Without color it uses the
// plain "notty" style. On a renderer error the source is returned as is.
func RenderMarkdown(md string, theme *Theme) string {
	style := glamour.WithAutoStyle()
	if theme.NoColor {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(markdownWidth))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n") + "\n"
}

// Package ui provides terminal output components: a theme, an animated
// spinner with a plain-text fallback, and markdown rendering.
package ui

import "github.com/charmbracelet/lipgloss"

// ThemeConfig selects the theme variant.
type ThemeConfig struct {
	NoColor bool   // Disable all colors
	Mode    string // "dark" or "light"; anything else adapts to the terminal
}

// Colors holds the hex colors of a theme.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Text      string
	Muted     string
	Border    string
	Surface   string
}

// Theme carries colors and derived lipgloss styles.
type Theme struct {
	NoColor bool
	Colors  Colors

	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Card    lipgloss.Style
}

var (
	darkColors = Colors{
		Primary:   "#38BDF8",
		Secondary: "#A78BFA",
		Success:   "#10B981",
		Warning:   "#F59E0B",
		Error:     "#EF4444",
		Text:      "#E5E7EB",
		Muted:     "#9CA3AF",
		Border:    "#4B5563",
		Surface:   "#374151",
	}
	lightColors = Colors{
		Primary:   "#0369A1",
		Secondary: "#5B21B6",
		Success:   "#059669",
		Warning:   "#D97706",
		Error:     "#DC2626",
		Text:      "#111827",
		Muted:     "#6B7280",
		Border:    "#D1D5DB",
		Surface:   "#E5E7EB",
	}
)

// NewTheme builds a Theme from cfg.
func NewTheme(cfg ThemeConfig) *Theme {
	t := &Theme{NoColor: cfg.NoColor}
	if cfg.Mode == "light" {
		t.Colors = lightColors
	} else {
		t.Colors = darkColors
	}

	if cfg.NoColor {
		plain := lipgloss.NewStyle()
		t.Title = plain.Bold(true)
		t.Success, t.Warning, t.Error, t.Muted = plain, plain, plain, plain
		t.Card = plain.Border(lipgloss.NormalBorder()).Padding(0, 1)
		return t
	}

	color := func(dark, light string) lipgloss.TerminalColor {
		switch cfg.Mode {
		case "dark":
			return lipgloss.Color(dark)
		case "light":
			return lipgloss.Color(light)
		}
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(color(darkColors.Primary, lightColors.Primary))
	t.Success = lipgloss.NewStyle().Foreground(color(darkColors.Success, lightColors.Success))
	t.Warning = lipgloss.NewStyle().Foreground(color(darkColors.Warning, lightColors.Warning))
	t.Error = lipgloss.NewStyle().Foreground(color(darkColors.Error, lightColors.Error))
	t.Muted = lipgloss.NewStyle().Foreground(color(darkColors.Muted, lightColors.Muted))
	t.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color(darkColors.Border, lightColors.Border)).
		Padding(0, 2)
	return t
}

// Palette holds one color per role that follows the terminal background.
type Palette struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Surface   lipgloss.AdaptiveColor
}

// AdaptivePalette pairs the light and dark theme colors, for components
// such as huh forms that style themselves.
func AdaptivePalette() Palette {
	pair := func(role func(Colors) string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: role(lightColors), Dark: role(darkColors)}
	}
	return Palette{
		Primary:   pair(func(c Colors) string { return c.Primary }),
		Secondary: pair(func(c Colors) string { return c.Secondary }),
		Success:   pair(func(c Colors) string { return c.Success }),
		Warning:   pair(func(c Colors) string { return c.Warning }),
		Error:     pair(func(c Colors) string { return c.Error }),
		Text:      pair(func(c Colors) string { return c.Text }),
		Muted:     pair(func(c Colors) string { return c.Muted }),
		Border:    pair(func(c Colors) string { return c.Border }),
		Surface:   pair(func(c Colors) string { return c.Surface }),
	}
}

// Spinner is an indeterminate activity indicator.
type Spinner interface {
	// SetTitle replaces the text next to the spinner.
	SetTitle(title string)
	// Stop halts the spinner. It is safe to call more than once.
	Stop()
}

// Progress creates activity indicators.
type Progress interface {
	// Spinner starts a spinner showing title.
	Spinner(title string) Spinner
}

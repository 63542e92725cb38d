package ui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
)

// TermProfile holds the detected terminal color profile. Computed once at
// package init so every style helper can branch without re-detecting.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// ThemeBg returns the given hex color for TrueColor terminals and
// lipgloss.NoColor{} otherwise, so 16/256-color terminals keep their own
// background instead of a down-converted approximation.
func ThemeBg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.TrueColor {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

// ThemeFg returns the given hex color for ANSI256+ terminals and a safe
// ANSI white (color 7) for 16-color or lower terminals.
func ThemeFg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.ANSI256 {
		return lipgloss.ANSIColor(7)
	}
	return lipgloss.Color(hex)
}

// Theme mode names accepted by NewTheme and the config file.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme bundles the adaptive palette and the styles built from it. Styles are
// bound to Renderer, whose dark-background flag selects the palette side.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary lipgloss.AdaptiveColor
	Accent  lipgloss.AdaptiveColor
	Subtext lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor
	Danger  lipgloss.AdaptiveColor

	WhiteKey  lipgloss.AdaptiveColor
	SharpKey  lipgloss.AdaptiveColor
	WhiteText lipgloss.AdaptiveColor
	SharpText lipgloss.AdaptiveColor
	Pressed   lipgloss.AdaptiveColor

	Base       lipgloss.Style
	Name       lipgloss.Style
	Headline   lipgloss.Style
	Muted      lipgloss.Style
	Chip       lipgloss.Style
	ChipKey    lipgloss.Style
	Title      lipgloss.Style
	Status     lipgloss.Style
	StatusErr  lipgloss.Style
	Footer     lipgloss.Style
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	Panel      lipgloss.Style
	Gate       lipgloss.Style
}

// NewTheme builds the theme for mode. "dark" and "light" force the renderer's
// background flag; anything else keeps what the renderer detected.
func NewTheme(r *lipgloss.Renderer, mode string) Theme {
	switch mode {
	case ThemeDark:
		r.SetHasDarkBackground(true)
	case ThemeLight:
		r.SetHasDarkBackground(false)
	}

	t := Theme{
		Renderer: r,

		Primary: lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"},
		Accent:  lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"},
		Subtext: lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BFBFBF"},
		Border:  lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#44475A"},
		Danger:  lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"},

		WhiteKey:  lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#F8F8F2"},
		SharpKey:  lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#1E1F29"},
		WhiteText: lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#282A36"},
		SharpText: lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#F8F8F2"},
		Pressed:   lipgloss.AdaptiveColor{Light: "#B06800", Dark: "#FFB86C"},
	}

	t.Base = r.NewStyle().Foreground(ColorText)
	t.Name = r.NewStyle().Foreground(t.Primary).Bold(true)
	t.Headline = r.NewStyle().Foreground(ColorText)
	t.Muted = r.NewStyle().Foreground(t.Subtext)
	t.Chip = r.NewStyle().Foreground(ColorText).Background(ColorBgSubtle)
	t.ChipKey = r.NewStyle().Foreground(t.Primary).Background(ColorBgSubtle).Bold(true)
	t.Title = r.NewStyle().Foreground(t.Accent).Bold(true)
	t.Status = r.NewStyle().Foreground(ColorSuccess)
	t.StatusErr = r.NewStyle().Foreground(t.Danger)
	t.Footer = r.NewStyle().Foreground(t.Subtext)

	t.Modal = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1)
	t.ModalTitle = r.NewStyle().Foreground(t.Primary).Bold(true)
	t.Panel = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
	t.Gate = r.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Accent).
		Padding(1, 2).
		Align(lipgloss.Center)

	return t
}

// IsDark reports which side of the adaptive palette is in use.
func (t Theme) IsDark() bool {
	return t.Renderer.HasDarkBackground()
}

// Toggled returns the theme rebuilt for the opposite background.
func (t Theme) Toggled() Theme {
	if t.IsDark() {
		return NewTheme(t.Renderer, ThemeLight)
	}
	return NewTheme(t.Renderer, ThemeDark)
}

// KeyStyle returns the box style for a key of the given kind.
func (t Theme) KeyStyle(sharp, pressed bool) lipgloss.Style {
	bg, fg := t.WhiteKey, t.WhiteText
	if sharp {
		bg, fg = t.SharpKey, t.SharpText
	}
	border := t.Border
	if pressed {
		bg, fg, border = t.Pressed, t.WhiteText, t.Pressed
	}
	st := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(ThemeBg(pick(t, bg))).
		Foreground(ThemeFg(pick(t, fg))).
		Align(lipgloss.Center)
	if pressed {
		// Without truecolor the background is dropped; reverse video keeps
		// the press visible.
		st = st.Bold(true).Reverse(TermProfile < colorprofile.TrueColor)
	}
	return st
}

// pick resolves an adaptive color against the renderer's background flag.
// ThemeBg and ThemeFg need a plain hex value.
func pick(t Theme, c lipgloss.AdaptiveColor) string {
	if t.IsDark() {
		return c.Dark
	}
	return c.Light
}

// TestTheme returns a dark theme bound to a renderer without a terminal.
func TestTheme() Theme {
	return NewTheme(lipgloss.NewRenderer(os.Stdout), ThemeDark)
}

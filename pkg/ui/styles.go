package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS
// ══════════════════════════════════════════════════════════════════════════════

// Spacing in cells.
const (
	SpaceXS = 1
	SpaceSM = 2
)

// Fixed rows of the screen. Mouse hit-testing depends on these, so the
// header always renders exactly HeaderHeight lines.
const (
	HeaderHeight   = 3
	chipRow        = HeaderHeight - 1
	titleRow       = HeaderHeight + 1
	hintRow        = HeaderHeight + 2
	KeyboardTop    = HeaderHeight + 4
	keyboardMargin = SpaceSM
	minModalHeight = 8
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Adaptive colors for light and dark terminals
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorBg       = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282A36"}
	ColorBgSubtle = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#363949"}
	ColorText     = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#F8F8F2"}
	ColorMuted    = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#6272A4"}
	ColorSuccess  = lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}
)

// ══════════════════════════════════════════════════════════════════════════════
// CHIPS - clickable header controls
// ══════════════════════════════════════════════════════════════════════════════

type chipAction int

const (
	chipCopyPhone chipAction = iota
	chipCopyEmail
	chipCopyLink
	chipTheme
	chipMute
	chipKeys
)

// chip is one header control with its horizontal cell span on chipRow.
type chip struct {
	key    string
	text   string
	action chipAction
	x0, x1 int // [x0, x1)
}

// layoutChips assigns spans left to right starting at one cell in, with one
// cell between chips. Widths are measured on the unstyled text, which is what
// renderChip pads around.
func layoutChips(chips []chip) []chip {
	x := SpaceXS
	for i := range chips {
		w := lipgloss.Width(chipLabel(chips[i]))
		chips[i].x0, chips[i].x1 = x, x+w
		x += w + SpaceXS
	}
	return chips
}

func chipLabel(c chip) string {
	return " " + c.key + " " + c.text + " "
}

func renderChip(t Theme, c chip) string {
	return t.Chip.Render(" ") + t.ChipKey.Render(c.key) + t.Chip.Render(" "+c.text+" ")
}

func renderChipRow(t Theme, chips []chip) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", SpaceXS))
	for i, c := range chips {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", SpaceXS))
		}
		b.WriteString(renderChip(t, c))
	}
	return b.String()
}

func chipAt(chips []chip, x int) (chip, bool) {
	for _, c := range chips {
		if x >= c.x0 && x < c.x1 {
			return c, true
		}
	}
	return chip{}, false
}

// RenderKeyHint renders "key action" pairs for the footer.
func RenderKeyHint(t Theme, key, action string) string {
	return t.ChipKey.UnsetBackground().Render(key) + " " + t.Footer.Render(action)
}

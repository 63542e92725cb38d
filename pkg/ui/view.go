package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/pianofolio/pkg/metrics"
	"github.com/vanderheijden86/pianofolio/pkg/resume"
)

func (m Model) View() string {
	defer metrics.Timer(metrics.UIRender)()

	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	lines := make([]string, 0, m.height)
	lines = append(lines, m.renderHeader()...)
	lines = append(lines, "", m.renderTitle(), m.renderHint(), "")

	switch {
	case m.gateShown():
		lines = append(lines, m.renderGate()...)
	case m.keyboardShown():
		lines = append(lines, m.renderKeyboard()...)
	default:
		lines = append(lines, "  "+m.theme.Muted.Render("♪ Keyboard hidden. Press tab or click ♪ Keys to play."))
	}

	body := m.height - 1
	for len(lines) < body {
		lines = append(lines, "")
	}
	lines = lines[:body]

	if m.state.IsOpen() {
		top, rows := m.modalRect()
		modal := m.renderModal(rows)
		x := centerOffset(m.width, lipgloss.Width(modal))
		for i, l := range indent(modal, x) {
			if top+i >= body {
				break
			}
			lines[top+i] = l
		}
	}

	lines = append(lines, m.renderFooter())
	for i := range lines {
		lines[i] = clipLine(lines[i], m.width)
	}
	return strings.Join(lines, "\n")
}

// renderHeader returns exactly HeaderHeight lines: identity, tagline, chips.
func (m Model) renderHeader() []string {
	p := m.profile
	return []string{
		" " + m.theme.Name.Render(p.Name) + "  " + m.theme.Headline.Render(p.Headline),
		" " + m.theme.Muted.Render(p.Tagline),
		renderChipRow(m.theme, m.chips()),
	}
}

func (m Model) renderTitle() string {
	return "  " + m.theme.Title.Render("♪ Play the résumé") +
		m.theme.Muted.Render("  keys c d e f g a b · shift for sharps · or click a key")
}

// renderHint shows the search input while it has focus, else the latest
// status message.
func (m Model) renderHint() string {
	switch {
	case m.search.Focused():
		return "  " + m.search.View()
	case m.statusMsg != "" && m.statusIsError:
		return "  " + m.theme.StatusErr.Render(truncate(m.statusMsg, m.width-4))
	case m.statusMsg != "":
		return "  " + m.theme.Status.Render(truncate(m.statusMsg, m.width-4))
	}
	return ""
}

func (m Model) renderKeyboard() []string {
	geom := m.fitter.Geometry()
	rects := geom.Keys(m.fitter.Scale())

	blocks := make([]string, 0, 2*len(rects))
	for i, r := range rects {
		key, _ := resume.KeyAt(i)
		if i > 0 {
			blocks = append(blocks, strings.Repeat(" ", geom.Gap))
		}
		blocks = append(blocks, m.renderKey(key, i, r.W, r.H))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)

	x, _ := m.keyboardOrigin()
	if m.inPanel() {
		return indent(m.theme.Panel.Render(row), x-1)
	}
	return indent(row, x)
}

// renderKey draws one key at its outer size: note name on the first inner
// line, label on the last.
func (m Model) renderKey(key resume.PianoKey, i, w, h int) string {
	innerW, innerH := max(1, w-2), max(1, h-2)
	content := make([]string, innerH)
	content[innerH-1] = clip(m.fitter.Label(i), innerW)
	if innerH > 1 {
		content[0] = clip(key.Note.String(), innerW)
	}
	style := m.theme.KeyStyle(key.IsSharp, m.state.IsPressed(key.Note)).
		Width(innerW).
		Height(innerH)
	return style.Render(strings.Join(content, "\n"))
}

func (m Model) renderGate() []string {
	msg := m.theme.Gate.Render("Widen your terminal\n\nThe keyboard needs a landscape window.\nResize, or press a letter c–b to play.")
	return indent(msg, centerOffset(m.width, lipgloss.Width(msg)))
}

// renderModal draws the section box within rows lines.
func (m Model) renderModal(rows int) string {
	w := m.modalWidth()
	inner := w - 4

	title := "Content not available"
	glyph := resume.IconUser.Glyph()
	if id, ok := m.state.Active(); ok {
		if s, ok := resume.SectionByID(id); ok {
			glyph = s.Icon.Glyph()
		}
		if c, ok := m.registry.Lookup(id); ok {
			title = c.Title
		}
	}
	closeBtn := "[x]"
	head := truncate(glyph+" "+title, inner-lipgloss.Width(closeBtn)-1)
	gap := max(1, inner-lipgloss.Width(head)-lipgloss.Width(closeBtn))
	header := m.theme.ModalTitle.Render(head) + strings.Repeat(" ", gap) + m.theme.Muted.Render(closeBtn)

	body := m.body.View()
	if rows < 5 {
		body = ""
	}
	box := m.theme.Modal.Width(w - 2).Render(header + "\n\n" + body)
	return box
}

func (m Model) renderFooter() string {
	hints := []string{
		RenderKeyHint(m.theme, "c–b", "play"),
		RenderKeyHint(m.theme, "C–A", "sharps"),
		RenderKeyHint(m.theme, "/", "search"),
	}
	if m.state.IsOpen() {
		hints = append(hints, RenderKeyHint(m.theme, "esc", "close"))
	}
	if m.isSmall() {
		hints = append(hints, RenderKeyHint(m.theme, "tab", "keys"))
	}
	hints = append(hints,
		RenderKeyHint(m.theme, "t", "theme"),
		RenderKeyHint(m.theme, "m", "mute"),
		RenderKeyHint(m.theme, "q", "quit"),
	)
	return " " + strings.Join(hints, m.theme.Footer.Render(" · "))
}

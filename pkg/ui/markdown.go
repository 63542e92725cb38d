package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/pianofolio/pkg/debug"
	"github.com/vanderheijden86/pianofolio/pkg/resume"
)

// markdownRenderer renders section bodies with glamour. The term renderer is
// rebuilt only when the wrap width or the background changes.
type markdownRenderer struct {
	width int
	dark  bool
	r     *glamour.TermRenderer
}

func (mr *markdownRenderer) render(c resume.Content, width int, dark bool) string {
	if mr.r == nil || mr.width != width || mr.dark != dark {
		style := "light"
		if dark {
			style = "dark"
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			debug.Log("ui: glamour renderer unavailable: %v", err)
			return plainBody(c, width)
		}
		mr.r, mr.width, mr.dark = r, width, dark
	}

	out, err := mr.r.Render(bodyMarkdown(c))
	if err != nil {
		debug.Log("ui: rendering %q failed: %v", c.Title, err)
		return plainBody(c, width)
	}
	return strings.Trim(out, "\n")
}

// bodyMarkdown turns a bullet-delimited body into a markdown list, or a
// single paragraph when there is only one segment.
func bodyMarkdown(c resume.Content) string {
	if !c.IsList() {
		return escapeMarkdown(strings.TrimSpace(c.Body)) + "\n"
	}
	var b strings.Builder
	for _, item := range c.Items() {
		b.WriteString("- ")
		b.WriteString(escapeMarkdown(item))
		b.WriteString("\n")
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// plainBody is the fallback when glamour fails.
func plainBody(c resume.Content, width int) string {
	text := strings.TrimSpace(c.Body)
	if c.IsList() {
		items := c.Items()
		for i, it := range items {
			items[i] = "• " + it
		}
		text = strings.Join(items, "\n")
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}

package ui

import (
	"fmt"
	rtdebug "runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/pianofolio/pkg/debug"
)

// Boundary wraps the screen model and turns panics into a recovery screen.
// Reset builds a fresh model from the factory; interaction state is lost.
type Boundary struct {
	factory func() tea.Model
	inner   tea.Model
	err     error
	size    *tea.WindowSizeMsg
}

// NewBoundary returns a boundary around factory().
func NewBoundary(factory func() tea.Model) *Boundary {
	return &Boundary{factory: factory, inner: factory()}
}

// Err returns the recovered error, or nil while the wrapped model is healthy.
func (b *Boundary) Err() error {
	return b.err
}

func (b *Boundary) Init() tea.Cmd {
	return b.safeInit()
}

func (b *Boundary) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		b.size = &size
	}

	if b.err != nil {
		return b, b.updateFailed(msg)
	}
	return b, b.safeUpdate(msg)
}

func (b *Boundary) updateFailed(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "r":
		return b.reset()
	}
	return nil
}

// reset replaces the failed model and replays the last known size. Init is
// not run again: commands started by the first Init, such as the content
// watch, are still in flight and deliver their results to the new model.
func (b *Boundary) reset() tea.Cmd {
	b.err = nil
	b.inner = b.factory()
	if b.size == nil {
		return nil
	}
	return b.safeUpdate(*b.size)
}

func (b *Boundary) safeInit() (cmd tea.Cmd) {
	defer b.recoverPanic("init")
	return b.inner.Init()
}

func (b *Boundary) safeUpdate(msg tea.Msg) (cmd tea.Cmd) {
	defer b.recoverPanic("update")
	next, cmd := b.inner.Update(msg)
	b.inner = next
	return cmd
}

func (b *Boundary) View() (out string) {
	if b.err == nil {
		out = b.safeView()
	}
	if b.err != nil {
		return b.errorView()
	}
	return out
}

func (b *Boundary) safeView() (out string) {
	defer b.recoverPanic("view")
	return b.inner.View()
}

func (b *Boundary) recoverPanic(where string) {
	r := recover()
	if r == nil {
		return
	}
	b.err = fmt.Errorf("%s: %v", where, r)
	debug.Log("ui: recovered panic in %s: %v\n%s", where, r, rtdebug.Stack())
}

func (b *Boundary) errorView() string {
	var sb strings.Builder
	sb.WriteString("\n  Something went wrong\n\n")
	sb.WriteString("  " + b.err.Error() + "\n\n")
	sb.WriteString("  r reset · q quit\n")
	return sb.String()
}

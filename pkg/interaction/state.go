// Package interaction owns the transient piano state: which notes are
// currently pressed and which section, if any, is open in the modal.
//
// State is a plain value mutated only through its methods. Timers live in
// the caller; State only hands out press ids and consumes them.
package interaction

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/pianofolio/pkg/input"
	"github.com/vanderheijden86/pianofolio/pkg/resume"
)

// ReleaseDelay is how long a key stays highlighted after a press.
const ReleaseDelay = 200 * time.Millisecond

// Press identifies one press of one note. The id is monotonic across all
// notes.
type Press struct {
	Note resume.Note
	ID   uint64
}

// State is the pressed-note set plus the modal, which is either closed or
// open on one section.
type State struct {
	pressed map[resume.Note]uint64
	active  resume.SectionID
	open    bool
	seq     uint64
}

// New returns the initial state: modal closed, nothing pressed.
func New() *State {
	return &State{pressed: make(map[resume.Note]uint64)}
}

// Press marks the note pressed and, when the play names a section, opens the
// modal on it whatever was open before.
func (s *State) Press(p input.Play) Press {
	s.seq++
	s.pressed[p.Note] = s.seq
	if p.HasSection {
		s.active = p.Section
		s.open = true
	}
	return Press{Note: p.Note, ID: s.seq}
}

// Release clears the note. It does not check that pr is the latest press of
// the note: a stale timer still clears a note that was pressed again since.
func (s *State) Release(pr Press) {
	delete(s.pressed, pr.Note)
}

// Dismiss closes the modal.
func (s *State) Dismiss() {
	s.open = false
	s.active = 0
}

// IsPressed reports whether n is highlighted.
func (s *State) IsPressed(n resume.Note) bool {
	_, ok := s.pressed[n]
	return ok
}

// PressedNotes returns the pressed notes in chromatic order.
func (s *State) PressedNotes() []resume.Note {
	var out []resume.Note
	for _, n := range resume.AllNotes() {
		if s.IsPressed(n) {
			out = append(out, n)
		}
	}
	return out
}

// Active returns the open section.
func (s *State) Active() (resume.SectionID, bool) {
	return s.active, s.open
}

// IsOpen reports whether the modal is open.
func (s *State) IsOpen() bool {
	return s.open
}

// PrimaryDismisses reports whether a press of button closes an open modal.
// Only the primary button does.
func PrimaryDismisses(button tea.MouseButton) bool {
	return button == tea.MouseButtonLeft
}

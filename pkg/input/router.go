// Package input turns key presses and key clicks into a single play event.
//
// Both paths end in Play, which names the note to sound and the section to
// open. The keyboard path additionally filters auto-repeat and keys aimed at
// an editable field.
package input

import (
	"unicode"

	"github.com/vanderheijden86/pianofolio/pkg/resume"
)

// Natural note for each letter. Sharps are derived with shift.
var letterNotes = map[rune]resume.Note{
	'c': resume.NoteC,
	'd': resume.NoteD,
	'e': resume.NoteE,
	'f': resume.NoteF,
	'g': resume.NoteG,
	'a': resume.NoteA,
	'b': resume.NoteB,
}

// MapKey resolves a letter to a note. Case is ignored; shift selects the
// sharp for every letter except e and b, which have none.
func MapKey(letter rune, shift bool) (resume.Note, bool) {
	n, ok := letterNotes[unicode.ToLower(letter)]
	if !ok {
		return 0, false
	}
	if shift && n != resume.NoteE && n != resume.NoteB {
		n++
	}
	return n, true
}

// KeyEvent is one key-down as the router sees it.
type KeyEvent struct {
	Rune     rune
	Shift    bool
	Repeat   bool
	Editable bool // aimed at a text field
}

// FromRune builds a KeyEvent from a terminal rune. Terminals only report shift
// through the letter's case, so an upper-case letter means shift is held.
func FromRune(r rune) KeyEvent {
	return KeyEvent{Rune: r, Shift: unicode.IsUpper(r)}
}

// Play is the logical event produced by either input path.
type Play struct {
	Note       resume.Note
	Section    resume.SectionID
	HasSection bool
}

// Router converts input into Play events.
type Router struct{}

// NewRouter returns a router over the static key table.
func NewRouter() *Router {
	return &Router{}
}

// Key routes a keyboard event. Repeats, editable targets, and letters outside
// the note table produce nothing.
func (r *Router) Key(ev KeyEvent) (Play, bool) {
	if ev.Repeat || ev.Editable {
		return Play{}, false
	}
	n, ok := MapKey(ev.Rune, ev.Shift)
	if !ok {
		return Play{}, false
	}
	key, ok := resume.KeyForNote(n)
	if !ok {
		return Play{}, false
	}
	return resolve(key), true
}

// Click routes a press on the rendered key at index.
func (r *Router) Click(index int) (Play, bool) {
	key, ok := resume.KeyAt(index)
	if !ok {
		return Play{}, false
	}
	return resolve(key), true
}

func resolve(key resume.PianoKey) Play {
	p := Play{Note: key.Note}
	if id, ok := resume.ResolveKey(key); ok {
		p.Section = id
		p.HasSection = true
	}
	return p
}

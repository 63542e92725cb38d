// Package resume holds the static tables behind the piano: the twelve notes,
// the sections they open, and the copy shown for each section.
//
// Everything here is immutable for the lifetime of the process. Callers get
// copies of the tables, never the backing arrays.
package resume

// Note is one of the twelve chromatic pitch names, C through B.
type Note int

const (
	NoteC Note = iota
	NoteCSharp
	NoteD
	NoteDSharp
	NoteE
	NoteF
	NoteFSharp
	NoteG
	NoteGSharp
	NoteA
	NoteASharp
	NoteB

	noteCount = 12
)

var noteNames = [noteCount]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Equal-tempered, A4 = 440 Hz. Fixed table, not computed.
var noteFrequencies = [noteCount]float64{
	261.63, // C
	277.18, // C#
	293.66, // D
	311.13, // D#
	329.63, // E
	349.23, // F
	369.99, // F#
	392.00, // G
	415.30, // G#
	440.00, // A
	466.16, // A#
	493.88, // B
}

// AllNotes returns the twelve notes in chromatic order.
func AllNotes() []Note {
	notes := make([]Note, noteCount)
	for i := range notes {
		notes[i] = Note(i)
	}
	return notes
}

// Valid reports whether n is one of the twelve defined notes.
func (n Note) Valid() bool {
	return n >= NoteC && n <= NoteB
}

func (n Note) String() string {
	if !n.Valid() {
		return "?"
	}
	return noteNames[n]
}

// IsSharp reports whether n is a black key.
func (n Note) IsSharp() bool {
	switch n {
	case NoteCSharp, NoteDSharp, NoteFSharp, NoteGSharp, NoteASharp:
		return true
	}
	return false
}

// Frequency returns the carrier frequency in Hz. ok is false for values
// outside the enum.
func (n Note) Frequency() (hz float64, ok bool) {
	if !n.Valid() {
		return 0, false
	}
	return noteFrequencies[n], true
}

// ParseNote parses names like "C" or "F#".
func ParseNote(s string) (Note, bool) {
	for i, name := range noteNames {
		if name == s {
			return Note(i), true
		}
	}
	return 0, false
}

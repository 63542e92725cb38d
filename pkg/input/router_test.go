package input

import (
	"testing"
	"time"
	"unicode"

	"pgregory.net/rapid"

	"github.com/vanderheijden86/pianofolio/pkg/resume"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		letter rune
		shift  bool
		want   resume.Note
	}{
		{'c', false, resume.NoteC},
		{'c', true, resume.NoteCSharp},
		{'d', false, resume.NoteD},
		{'d', true, resume.NoteDSharp},
		{'e', false, resume.NoteE},
		{'e', true, resume.NoteE},
		{'f', true, resume.NoteFSharp},
		{'g', true, resume.NoteGSharp},
		{'a', true, resume.NoteASharp},
		{'b', false, resume.NoteB},
		{'b', true, resume.NoteB},
		{'D', false, resume.NoteD},
	}
	for _, tt := range tests {
		got, ok := MapKey(tt.letter, tt.shift)
		if !ok {
			t.Errorf("MapKey(%q, %v): expected match", tt.letter, tt.shift)
			continue
		}
		if got != tt.want {
			t.Errorf("MapKey(%q, %v) = %s, want %s", tt.letter, tt.shift, got, tt.want)
		}
	}
}

func TestMapKeyIgnoresOtherLetters(t *testing.T) {
	for _, r := range "hijklmnopqrstuvwxyz0123456789 /?" {
		if n, ok := MapKey(r, false); ok {
			t.Errorf("MapKey(%q) unexpectedly matched %s", r, n)
		}
	}
}

func TestMapKeyTotality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := rapid.Rune().Draw(t, "rune")
		shift := rapid.Bool().Draw(t, "shift")
		n, ok := MapKey(r, shift)
		if !ok {
			return
		}
		if !n.Valid() {
			t.Fatalf("MapKey(%q, %v) returned invalid note %d", r, shift, n)
		}
		if _, ok := resume.KeyForNote(n); !ok {
			t.Fatalf("note %s has no key", n)
		}
	})
}

func TestFromRune(t *testing.T) {
	if ev := FromRune('d'); ev.Shift {
		t.Error("lower-case letter should not imply shift")
	}
	if ev := FromRune('D'); !ev.Shift {
		t.Error("upper-case letter should imply shift")
	}
	if ev := FromRune('/'); ev.Shift {
		t.Error("punctuation should not imply shift")
	}
}

func TestRouterKey(t *testing.T) {
	r := NewRouter()

	p, ok := r.Key(FromRune('d'))
	if !ok {
		t.Fatal("expected d to route")
	}
	if p.Note != resume.NoteD || !p.HasSection || p.Section != resume.SectionTech {
		t.Errorf("d: expected D/tech, got %+v", p)
	}

	p, ok = r.Key(FromRune('D'))
	if !ok {
		t.Fatal("expected D to route")
	}
	if p.Note != resume.NoteDSharp || p.Section != resume.SectionProjects {
		t.Errorf("D: expected D#/projects, got %+v", p)
	}
}

func TestRouterKeyFilters(t *testing.T) {
	r := NewRouter()
	tests := []struct {
		name string
		ev   KeyEvent
	}{
		{"repeat", KeyEvent{Rune: 'c', Repeat: true}},
		{"editable", KeyEvent{Rune: 'c', Editable: true}},
		{"unmapped", KeyEvent{Rune: 'z'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p, ok := r.Key(tt.ev); ok {
				t.Errorf("expected no play, got %+v", p)
			}
		})
	}
}

func TestRouterClickMatchesKeyPath(t *testing.T) {
	r := NewRouter()
	for i, key := range resume.Keys() {
		click, ok := r.Click(i)
		if !ok {
			t.Fatalf("click %d did not route", i)
		}
		if click.Note != key.Note {
			t.Errorf("click %d: expected note %s, got %s", i, key.Note, click.Note)
		}
		if !click.HasSection {
			t.Errorf("click %d: expected a section", i)
		}

		letter := []rune(key.Note.String())[0]
		if key.IsSharp {
			letter = unicode.ToUpper(letter)
		} else {
			letter = unicode.ToLower(letter)
		}
		pressed, ok := r.Key(FromRune(letter))
		if !ok {
			t.Fatalf("key %q did not route", letter)
		}
		if pressed != click {
			t.Errorf("key %q and click %d diverge: %+v vs %+v", letter, i, pressed, click)
		}
	}
}

func TestRouterClickOutOfRange(t *testing.T) {
	r := NewRouter()
	for _, i := range []int{-1, 12, 100} {
		if _, ok := r.Click(i); ok {
			t.Errorf("expected click %d to be ignored", i)
		}
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestRepeatDetector(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := NewRepeatDetector(600*time.Millisecond, 90*time.Millisecond)
	d.SetClock(clock.now)

	if d.Observe('c') {
		t.Fatal("first press is never a repeat")
	}
	clock.advance(30 * time.Millisecond)
	if !d.Observe('c') {
		t.Fatal("fast identical press should be a repeat")
	}
	// Held key: each repeat slides the window.
	for i := 0; i < 10; i++ {
		clock.advance(40 * time.Millisecond)
		if !d.Observe('c') {
			t.Fatalf("held key repeat %d not suppressed", i)
		}
	}
	clock.advance(200 * time.Millisecond)
	if d.Observe('c') {
		t.Error("press after the window should not be a repeat")
	}
	clock.advance(10 * time.Millisecond)
	if d.Observe('d') {
		t.Error("a different key is never a repeat")
	}
	clock.advance(10 * time.Millisecond)
	if d.Observe('D') {
		t.Error("shifted letter is a different key")
	}
}

func TestRepeatDetectorReset(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := NewRepeatDetector(0, 0)
	d.SetClock(clock.now)
	if d.Window() != DefaultRepeatWindow || d.InitialDelay() != DefaultInitialRepeatDelay {
		t.Errorf("expected defaults, got %v/%v", d.InitialDelay(), d.Window())
	}

	d.Observe('a')
	d.Reset()
	clock.advance(time.Millisecond)
	if d.Observe('a') {
		t.Error("expected reset to forget the previous key")
	}
}

// A held key repeats first after the OS initial delay, then at the repeat
// rate. Only the initial key-down may play.
func TestHeldKeyPlaysOnce(t *testing.T) {
	tests := []struct {
		name string
		gaps []time.Duration
	}{
		{"500ms delay then 30Hz", []time.Duration{0, 500, 33, 33, 33, 33}},
		{"250ms delay then 25Hz", []time.Duration{0, 250, 40, 40, 40}},
		{"600ms delay just inside", []time.Duration{0, 599, 33, 33}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Unix(0, 0)}
			d := NewRepeatDetector(0, 0)
			d.SetClock(clock.now)
			r := NewRouter()

			plays := 0
			for _, gap := range tt.gaps {
				clock.advance(gap * time.Millisecond)
				ev := FromRune('e')
				ev.Repeat = d.Observe(ev.Rune)
				if _, ok := r.Key(ev); ok {
					plays++
				}
			}
			if plays != 1 {
				t.Errorf("held key played %d times, want 1", plays)
			}
		})
	}
}

func TestRepeatDetectorTapsAfterInitialDelay(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := NewRepeatDetector(0, 0)
	d.SetClock(clock.now)

	d.Observe('g')
	clock.advance(DefaultInitialRepeatDelay)
	if d.Observe('g') {
		t.Error("a tap after the initial delay is a new press")
	}

	// Same-key double taps faster than the initial delay look like a hold.
	clock.advance(300 * time.Millisecond)
	if !d.Observe('g') {
		t.Error("a second tap inside the initial delay is folded into a hold")
	}

	// Releasing ends the hold: the next gap exceeds the repeat window, and a
	// press after that starts over with the initial delay.
	clock.advance(150 * time.Millisecond)
	if d.Observe('g') {
		t.Error("a gap longer than the repeat window ends the hold")
	}
	clock.advance(DefaultInitialRepeatDelay + time.Millisecond)
	if d.Observe('g') {
		t.Error("expected a fresh press")
	}
}

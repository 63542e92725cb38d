package interaction

import (
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/pianofolio/pkg/input"
	"github.com/vanderheijden86/pianofolio/pkg/resume"
)

func play(n resume.Note, id resume.SectionID) input.Play {
	return input.Play{Note: n, Section: id, HasSection: true}
}

func TestInitialState(t *testing.T) {
	s := New()
	if s.IsOpen() {
		t.Error("expected modal closed")
	}
	if len(s.PressedNotes()) != 0 {
		t.Errorf("expected no pressed notes, got %v", s.PressedNotes())
	}
	if _, ok := s.Active(); ok {
		t.Error("expected no active section")
	}
}

func TestPressOpensSection(t *testing.T) {
	s := New()
	pr := s.Press(play(resume.NoteD, resume.SectionTech))

	if pr.Note != resume.NoteD || pr.ID == 0 {
		t.Errorf("unexpected press %+v", pr)
	}
	if !s.IsPressed(resume.NoteD) {
		t.Error("expected D pressed immediately")
	}
	id, ok := s.Active()
	if !ok || id != resume.SectionTech {
		t.Errorf("expected tech open, got %v %v", id, ok)
	}
}

func TestPressWithoutSectionKeepsModal(t *testing.T) {
	s := New()
	s.Press(play(resume.NoteC, resume.SectionSummary))
	s.Press(input.Play{Note: resume.NoteE})

	id, ok := s.Active()
	if !ok || id != resume.SectionSummary {
		t.Errorf("expected summary still open, got %v %v", id, ok)
	}
}

func TestSwitchSectionDirectly(t *testing.T) {
	s := New()
	s.Press(play(resume.NoteC, resume.SectionSummary))
	s.Press(play(resume.NoteB, resume.SectionStrategy))

	id, ok := s.Active()
	if !ok || id != resume.SectionStrategy {
		t.Errorf("expected Open(strategy), got %v %v", id, ok)
	}
}

func TestReleaseIsNotCoalesced(t *testing.T) {
	s := New()
	first := s.Press(play(resume.NoteA, resume.SectionTechnical))
	second := s.Press(play(resume.NoteA, resume.SectionTechnical))
	if second.ID <= first.ID {
		t.Fatalf("expected monotonic ids, got %d then %d", first.ID, second.ID)
	}

	// The earlier timer fires while the note is logically re-pressed.
	s.Release(first)
	if s.IsPressed(resume.NoteA) {
		t.Error("expected stale release to clear the note")
	}
	s.Release(second)
	if s.IsPressed(resume.NoteA) {
		t.Error("expected note to stay released")
	}
}

func TestPressedNotesOrder(t *testing.T) {
	s := New()
	s.Press(input.Play{Note: resume.NoteB})
	s.Press(input.Play{Note: resume.NoteC})
	s.Press(input.Play{Note: resume.NoteFSharp})

	want := []resume.Note{resume.NoteC, resume.NoteFSharp, resume.NoteB}
	if got := s.PressedNotes(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestDismiss(t *testing.T) {
	s := New()
	s.Press(play(resume.NoteG, resume.SectionAchievements))
	s.Dismiss()
	if s.IsOpen() {
		t.Error("expected modal closed")
	}
	if !s.IsPressed(resume.NoteG) {
		t.Error("dismiss should not touch the pressed set")
	}
	s.Dismiss()
	if s.IsOpen() {
		t.Error("dismiss on a closed modal stays closed")
	}
}

func TestPrimaryDismisses(t *testing.T) {
	tests := []struct {
		button tea.MouseButton
		want   bool
	}{
		{tea.MouseButtonLeft, true},
		{tea.MouseButtonRight, false},
		{tea.MouseButtonMiddle, false},
		{tea.MouseButtonWheelUp, false},
	}
	for _, tt := range tests {
		if got := PrimaryDismisses(tt.button); got != tt.want {
			t.Errorf("PrimaryDismisses(%v) = %v, want %v", tt.button, got, tt.want)
		}
	}
}

func TestReleaseDelay(t *testing.T) {
	if ReleaseDelay != 200*time.Millisecond {
		t.Errorf("expected 200ms, got %v", ReleaseDelay)
	}
}

package audio

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vanderheijden86/pianofolio/pkg/resume"
	"github.com/vanderheijden86/pianofolio/pkg/testutil"
)

func fakeOpener(out Output, calls *atomic.Int32) Opener {
	return func(int) (Output, error) {
		if calls != nil {
			calls.Add(1)
		}
		return out, nil
	}
}

func activate(t *testing.T, s *Synth) {
	t.Helper()
	select {
	case <-s.Activate():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for audio activation")
	}
}

func TestSynthPlayBeforeActivateIsSilent(t *testing.T) {
	fake := testutil.NewFakeOutput()
	s := NewSynth(WithOpener(fakeOpener(fake, nil)))

	s.Play(resume.NoteA)
	if n := len(fake.Plays()); n != 0 {
		t.Errorf("expected no playback before activation, got %d", n)
	}
	if s.Ready() {
		t.Error("expected synth not ready before activation")
	}
}

func TestSynthActivateOpensOnce(t *testing.T) {
	var calls atomic.Int32
	fake := testutil.NewFakeOutput()
	s := NewSynth(WithOpener(fakeOpener(fake, &calls)), WithSampleRate(8000))

	activate(t, s)
	activate(t, s)
	s.Activate()

	if got := calls.Load(); got != 1 {
		t.Errorf("expected opener called once, got %d", got)
	}
	if !s.Ready() {
		t.Error("expected synth ready after activation")
	}
}

func TestSynthOverlappingPlays(t *testing.T) {
	fake := testutil.NewFakeOutput()
	s := NewSynth(WithOpener(fakeOpener(fake, nil)), WithSampleRate(8000))
	activate(t, s)

	s.Play(resume.NoteC)
	s.Play(resume.NoteC)
	s.Play(resume.NoteE)

	plays := fake.Plays()
	if len(plays) != 3 {
		t.Fatalf("expected 3 independent plays, got %d", len(plays))
	}
	want := SampleCount(8000) * 4
	for i, p := range plays {
		if len(p) != want {
			t.Errorf("play %d: expected %d bytes, got %d", i, want, len(p))
		}
	}
}

func TestSynthInvalidNoteIsIgnored(t *testing.T) {
	fake := testutil.NewFakeOutput()
	s := NewSynth(WithOpener(fakeOpener(fake, nil)), WithSampleRate(8000))
	activate(t, s)

	s.Play(resume.Note(99))
	if n := len(fake.Plays()); n != 0 {
		t.Errorf("expected no playback for invalid note, got %d", n)
	}
}

func TestSynthMute(t *testing.T) {
	fake := testutil.NewFakeOutput()
	s := NewSynth(WithOpener(fakeOpener(fake, nil)), WithSampleRate(8000))
	activate(t, s)

	s.SetMuted(true)
	if !s.Muted() {
		t.Fatal("expected muted")
	}
	s.Play(resume.NoteG)
	if n := len(fake.Plays()); n != 0 {
		t.Errorf("expected no playback while muted, got %d", n)
	}

	s.SetMuted(false)
	s.Play(resume.NoteG)
	if n := len(fake.Plays()); n != 1 {
		t.Errorf("expected playback after unmute, got %d", n)
	}
}

func TestSynthDisabledNeverOpens(t *testing.T) {
	var calls atomic.Int32
	fake := testutil.NewFakeOutput()
	s := NewSynth(WithOpener(fakeOpener(fake, &calls)), WithDisabled(true))

	activate(t, s)
	s.Play(resume.NoteA)

	if calls.Load() != 0 {
		t.Error("expected disabled synth to never open output")
	}
	if len(fake.Plays()) != 0 {
		t.Error("expected disabled synth to stay silent")
	}
}

func TestSynthOpenFailureDegradesToSilence(t *testing.T) {
	s := NewSynth(WithOpener(func(int) (Output, error) {
		return nil, errors.New("no device")
	}))
	activate(t, s)

	if s.Ready() {
		t.Error("expected synth not ready after failed open")
	}
	s.Play(resume.NoteA)
	if err := s.Close(); err != nil {
		t.Errorf("expected nil close error, got %v", err)
	}
}

func TestSynthOpenPanicIsRecovered(t *testing.T) {
	s := NewSynth(WithOpener(func(int) (Output, error) {
		panic("driver exploded")
	}))
	activate(t, s)
	if s.Ready() {
		t.Error("expected synth not ready after panic")
	}
}

func TestSynthResumesSuspendedOutput(t *testing.T) {
	fake := testutil.NewFakeOutput()
	s := NewSynth(WithOpener(fakeOpener(fake, nil)), WithSampleRate(8000))
	activate(t, s)

	s.Suspend()
	if !fake.Suspended() {
		t.Fatal("expected output suspended")
	}

	s.Play(resume.NoteB)
	select {
	case <-fake.Resumed():
	case <-time.After(2 * time.Second):
		t.Fatal("expected resume to be requested")
	}
	if len(fake.Plays()) != 1 {
		t.Errorf("expected the tone to be scheduled while resuming, got %d", len(fake.Plays()))
	}
}

func TestSynthResumeErrorIgnored(t *testing.T) {
	fake := testutil.NewFakeOutput()
	fake.ResumeErr = errors.New("resume refused")
	s := NewSynth(WithOpener(fakeOpener(fake, nil)), WithSampleRate(8000))
	activate(t, s)

	s.Suspend()
	s.Play(resume.NoteF)
	select {
	case <-fake.Resumed():
	case <-time.After(2 * time.Second):
		t.Fatal("expected resume attempt")
	}
}

func TestSynthPlayErrorIsSwallowed(t *testing.T) {
	fake := testutil.NewFakeOutput()
	fake.PlayErr = errors.New("device gone")
	s := NewSynth(WithOpener(fakeOpener(fake, nil)), WithSampleRate(8000))
	activate(t, s)

	s.Play(resume.NoteD)
}

func TestSynthClose(t *testing.T) {
	fake := testutil.NewFakeOutput()
	s := NewSynth(WithOpener(fakeOpener(fake, nil)), WithSampleRate(8000))
	activate(t, s)

	if err := s.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	if !fake.Closed() {
		t.Error("expected output closed")
	}
	s.Play(resume.NoteA)
	if len(fake.Plays()) != 0 {
		t.Error("expected no playback after close")
	}
}

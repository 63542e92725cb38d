package audio

import (
	"sync"

	"github.com/vanderheijden86/pianofolio/pkg/debug"
	"github.com/vanderheijden86/pianofolio/pkg/metrics"
	"github.com/vanderheijden86/pianofolio/pkg/resume"
)

// Synth plays one tone per note press. The output is opened lazily, on the
// first user gesture, and shared by every subsequent tone. All failures
// degrade to silence.
type Synth struct {
	open       Opener
	sampleRate int
	disabled   bool

	once sync.Once
	done chan struct{}

	mu    sync.Mutex
	out   Output
	muted bool
	tones map[resume.Note][]byte
}

// Option configures a Synth.
type Option func(*Synth)

// WithOpener replaces the oto-backed opener.
func WithOpener(open Opener) Option {
	return func(s *Synth) {
		s.open = open
	}
}

// WithSampleRate sets the output sample rate.
func WithSampleRate(rate int) Option {
	return func(s *Synth) {
		if rate > 0 {
			s.sampleRate = rate
		}
	}
}

// WithDisabled turns the synth into a permanent no-op.
func WithDisabled(disabled bool) Option {
	return func(s *Synth) {
		s.disabled = disabled
	}
}

// NewSynth returns an inactive synth. Nothing touches the audio device until
// Activate is called.
func NewSynth(opts ...Option) *Synth {
	s := &Synth{
		open:       OpenOto,
		sampleRate: DefaultSampleRate,
		done:       make(chan struct{}),
		tones:      make(map[resume.Note][]byte),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Activate opens the output in the background the first time it is called.
// Later calls reuse the same attempt. The returned channel closes once the
// attempt has finished, successfully or not.
func (s *Synth) Activate() <-chan struct{} {
	s.once.Do(func() {
		if s.disabled {
			close(s.done)
			return
		}
		go s.openOutput()
	})
	return s.done
}

func (s *Synth) openOutput() {
	defer close(s.done)
	defer func() {
		if r := recover(); r != nil {
			debug.Log("audio: opening output panicked: %v", r)
		}
	}()

	out, err := s.open(s.sampleRate)
	if err != nil {
		debug.Log("audio: output unavailable, continuing silently: %v", err)
		return
	}
	s.mu.Lock()
	s.out = out
	s.mu.Unlock()
	debug.Log("audio: output ready at %d Hz", s.sampleRate)
}

// Ready reports whether the output has been opened.
func (s *Synth) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out != nil
}

// Play starts a new tone for n. Overlapping calls overlap audibly. It never
// blocks on the device and never panics.
func (s *Synth) Play(n resume.Note) {
	defer func() {
		if r := recover(); r != nil {
			debug.Log("audio: play %s panicked: %v", n, r)
		}
	}()

	s.mu.Lock()
	out, muted := s.out, s.muted
	s.mu.Unlock()
	if out == nil || muted {
		return
	}

	pcm, ok := s.tone(n)
	if !ok {
		return
	}

	if out.Suspended() {
		go func() {
			if err := out.Resume(); err != nil {
				debug.Log("audio: resume failed: %v", err)
			}
		}()
	}
	if err := out.Play(pcm); err != nil {
		debug.Log("audio: play %s failed: %v", n, err)
	}
}

// tone returns the cached PCM for n, rendering it on first use.
func (s *Synth) tone(n resume.Note) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pcm, ok := s.tones[n]; ok {
		return pcm, true
	}
	hz, ok := n.Frequency()
	if !ok {
		return nil, false
	}
	done := metrics.Timer(metrics.ToneSynthesis)
	pcm := EncodeFloat32LE(Synthesize(hz, s.sampleRate), nil)
	done()
	s.tones[n] = pcm
	return pcm, true
}

// Suspend pauses the output, e.g. when the terminal loses focus. The next
// Play resumes it.
func (s *Synth) Suspend() {
	s.mu.Lock()
	out := s.out
	s.mu.Unlock()
	if out == nil {
		return
	}
	if err := out.Suspend(); err != nil {
		debug.Log("audio: suspend failed: %v", err)
	}
}

// SetMuted silences or restores tones without releasing the device.
func (s *Synth) SetMuted(m bool) {
	s.mu.Lock()
	s.muted = m
	s.mu.Unlock()
}

// Muted reports the mute state.
func (s *Synth) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Close releases the output, if one was opened.
func (s *Synth) Close() error {
	s.mu.Lock()
	out := s.out
	s.out = nil
	s.mu.Unlock()
	if out == nil {
		return nil
	}
	return out.Close()
}

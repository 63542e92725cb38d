package audio

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Output is a process-wide audio sink that can play PCM buffers
// concurrently. Play must not block for the duration of the sound.
type Output interface {
	Play(pcm []byte) error
	Suspended() bool
	Suspend() error
	Resume() error
	Close() error
}

// Opener creates the Output. It is called at most once per Synth.
type Opener func(sampleRate int) (Output, error)

// ErrClosed is returned by Play after Close.
var ErrClosed = errors.New("audio output closed")

type otoOutput struct {
	mu        sync.Mutex
	ctx       *oto.Context
	players   []*oto.Player
	suspended bool
	closed    bool
}

// OpenOto creates the oto context (mono float32) and waits until the device
// is ready. oto allows a single context per process.
func OpenOto(sampleRate int) (Output, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &otoOutput{ctx: ctx}, nil
}

// Play starts a fresh player for pcm. Players that finished since the last
// call are closed first.
func (o *otoOutput) Play(pcm []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return ErrClosed
	}
	if err := o.ctx.Err(); err != nil {
		return fmt.Errorf("oto context: %w", err)
	}
	o.reapLocked()

	p := o.ctx.NewPlayer(bytes.NewReader(pcm))
	p.Play()
	o.players = append(o.players, p)
	return nil
}

func (o *otoOutput) reapLocked() {
	live := o.players[:0]
	for _, p := range o.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	for i := len(live); i < len(o.players); i++ {
		o.players[i] = nil
	}
	o.players = live
}

func (o *otoOutput) Suspended() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.suspended
}

func (o *otoOutput) Suspend() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.suspended || o.closed {
		return nil
	}
	if err := o.ctx.Suspend(); err != nil {
		return fmt.Errorf("cannot suspend oto context: %w", err)
	}
	o.suspended = true
	return nil
}

func (o *otoOutput) Resume() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.suspended || o.closed {
		return nil
	}
	if err := o.ctx.Resume(); err != nil {
		return fmt.Errorf("cannot resume oto context: %w", err)
	}
	o.suspended = false
	return nil
}

// Close stops every player. The oto context itself lives until the process
// exits.
func (o *otoOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return nil
	}
	o.closed = true

	var errs []error
	for _, p := range o.players {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	o.players = nil
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("cannot close oto players: %w", err)
	}
	return nil
}

// Package testutil provides fakes and message builders shared by the
// package tests.
package testutil

import (
	"errors"
	"sync"
)

// FakeOutput records what a Synth asks the audio device to do.
type FakeOutput struct {
	mu        sync.Mutex
	plays     [][]byte
	suspended bool
	resumes   int
	closed    bool

	// PlayErr, ResumeErr are returned from the matching calls when set.
	PlayErr   error
	ResumeErr error

	resumed chan struct{}
}

// NewFakeOutput returns an idle fake.
func NewFakeOutput() *FakeOutput {
	return &FakeOutput{resumed: make(chan struct{}, 16)}
}

func (f *FakeOutput) Play(pcm []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return errors.New("closed")
	}
	if f.PlayErr != nil {
		return f.PlayErr
	}
	f.plays = append(f.plays, pcm)
	return nil
}

func (f *FakeOutput) Suspended() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.suspended
}

func (f *FakeOutput) Suspend() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suspended = true
	return nil
}

func (f *FakeOutput) Resume() error {
	f.mu.Lock()
	f.resumes++
	err := f.ResumeErr
	if err == nil {
		f.suspended = false
	}
	f.mu.Unlock()
	f.resumed <- struct{}{}
	return err
}

func (f *FakeOutput) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// Plays returns the buffers played so far.
func (f *FakeOutput) Plays() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.plays))
	copy(out, f.plays)
	return out
}

// Resumes returns how many resume attempts were made.
func (f *FakeOutput) Resumes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resumes
}

// Resumed delivers one value per Resume call.
func (f *FakeOutput) Resumed() <-chan struct{} {
	return f.resumed
}

// Closed reports whether Close was called.
func (f *FakeOutput) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

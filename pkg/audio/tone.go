// Package audio synthesizes the short bell-like tone played for each key.
//
// Tones are rendered ahead of time into float32 PCM and handed to an Output.
// The real Output is backed by oto; tests substitute their own.
package audio

import (
	"encoding/binary"
	"math"
)

// Envelope parameters, in seconds and linear gain.
const (
	ToneDuration = 0.8
	AttackTime   = 0.01
	PeakGain     = 0.2
	DecayFloor   = 0.01
)

// DefaultSampleRate is used when no rate is configured.
const DefaultSampleRate = 44100

// Gain returns the envelope value t seconds into the tone: a linear ramp from
// 0 to PeakGain over AttackTime, then an exponential ramp toward DecayFloor
// at ToneDuration. Outside [0, ToneDuration] the tone is silent.
func Gain(t float64) float64 {
	switch {
	case t < 0 || t > ToneDuration:
		return 0
	case t < AttackTime:
		return PeakGain * t / AttackTime
	default:
		frac := (t - AttackTime) / (ToneDuration - AttackTime)
		return PeakGain * math.Pow(DecayFloor/PeakGain, frac)
	}
}

// SampleCount returns the number of samples in one tone at sampleRate.
func SampleCount(sampleRate int) int {
	if sampleRate <= 0 {
		return 0
	}
	return int(math.Round(ToneDuration * float64(sampleRate)))
}

// Synthesize renders a mono sine tone at freq Hz shaped by Gain.
func Synthesize(freq float64, sampleRate int) []float32 {
	n := SampleCount(sampleRate)
	if n == 0 || freq <= 0 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return nil
	}
	out := make([]float32, n)
	step := 2 * math.Pi * freq / float64(sampleRate)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = float32(Gain(t) * math.Sin(step*float64(i)))
	}
	return out
}

// EncodeFloat32LE converts samples to little-endian float32 PCM, reusing dst
// when it has enough capacity.
func EncodeFloat32LE(samples []float32, dst []byte) []byte {
	need := len(samples) * 4
	if cap(dst) < need {
		dst = make([]byte, need)
	}
	dst = dst[:need]
	for i, v := range samples {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
	}
	return dst
}

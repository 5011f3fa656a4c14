// Package audio produces all game sound procedurally with gopxl/beep, so
// the repo ships no sound assets. Effects are short synthesized tones; the
// background music is a small looping note pattern.
package audio

import (
	"math"

	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(44100)

// tone synthesizes a sine wave of the given frequency and duration in
// seconds, with a short attack/release envelope to avoid clicks.
func tone(freq, seconds, gain float64) []float64 {
	n := int(seconds * float64(sampleRate))
	buf := make([]float64, n)
	phase := 0.0
	inc := freq / float64(sampleRate)
	for i := range buf {
		buf[i] = gain * math.Sin(2*math.Pi*phase)
		phase += inc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	applyEnvelope(buf, 0.005, 0.03)
	return buf
}

// applyEnvelope shapes the buffer with linear attack and release ramps,
// in place.
func applyEnvelope(buf []float64, attackSec, releaseSec float64) {
	total := len(buf)
	attack := int(attackSec * float64(sampleRate))
	release := int(releaseSec * float64(sampleRate))
	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}
	for i := range buf {
		switch {
		case i < attack && attack > 0:
			buf[i] *= float64(i) / float64(attack)
		case i >= releaseStart && release > 0:
			buf[i] *= float64(total-i) / float64(release)
		}
	}
}

// sequence concatenates tone buffers into one clip.
func sequence(parts ...[]float64) []float64 {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]float64, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// clipStreamer streams a mono sample buffer to both channels. It
// implements beep.StreamSeeker so music clips can be wrapped in
// beep.Loop.
type clipStreamer struct {
	samples []float64
	pos     int
}

func newClip(samples []float64) *clipStreamer {
	return &clipStreamer{samples: samples}
}

func (c *clipStreamer) Stream(out [][2]float64) (int, bool) {
	if c.pos >= len(c.samples) {
		return 0, false
	}
	n := 0
	for i := range out {
		if c.pos >= len(c.samples) {
			break
		}
		v := c.samples[c.pos]
		out[i][0] = v
		out[i][1] = v
		c.pos++
		n++
	}
	return n, true
}

func (c *clipStreamer) Err() error { return nil }

func (c *clipStreamer) Len() int { return len(c.samples) }

func (c *clipStreamer) Position() int { return c.pos }

func (c *clipStreamer) Seek(p int) error {
	c.pos = p
	return nil
}

// --- Clip recipes ---

func captureClip() []float64 {
	return tone(880, 0.07, 0.35)
}

func speedClip() []float64 {
	return sequence(tone(523.25, 0.08, 0.35), tone(659.25, 0.08, 0.35), tone(783.99, 0.10, 0.35))
}

func attackClip() []float64 {
	return sequence(tone(196, 0.10, 0.45), tone(155.56, 0.14, 0.45))
}

func winClip() []float64 {
	return sequence(tone(523.25, 0.12, 0.4), tone(659.25, 0.12, 0.4),
		tone(783.99, 0.12, 0.4), tone(1046.5, 0.25, 0.4))
}

func loseClip() []float64 {
	return sequence(tone(392, 0.15, 0.4), tone(311.13, 0.15, 0.4), tone(233.08, 0.3, 0.4))
}

func drawClip() []float64 {
	return sequence(tone(440, 0.15, 0.4), tone(440, 0.15, 0.4))
}

// musicClip is one bar of the background loop: a slow four-note arpeggio
// kept quiet under the effects.
func musicClip() []float64 {
	return sequence(
		tone(220, 0.5, 0.08), tone(277.18, 0.5, 0.08),
		tone(329.63, 0.5, 0.08), tone(277.18, 0.5, 0.08),
	)
}

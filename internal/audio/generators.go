package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// toneGenerator produces a plain sine tone with a short attack ramp.
type toneGenerator struct {
	sr   beep.SampleRate
	freq float64
	amp  float64
	pos  int
}

func newTone(sr beep.SampleRate, freq, amp float64) *toneGenerator {
	return &toneGenerator{sr: sr, freq: freq, amp: amp}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Min(t/0.005, 1.0)
		sample := g.amp * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}

// chirpGenerator sweeps linearly from one frequency to another over its
// sweep window and decays exponentially.
type chirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	amp      float64
	sweepSec float64
	phase    float64
	pos      int
}

func newChirp(sr beep.SampleRate, from, to, amp float64) *chirpGenerator {
	return &chirpGenerator{sr: sr, from: from, to: to, amp: amp, sweepSec: 0.3}
}

func (g *chirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		frac := math.Min(t/g.sweepSec, 1.0)
		freq := g.from + (g.to-g.from)*frac
		// Integrated phase keeps the sweep free of clicks.
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		envelope := math.Exp(-t * 6)
		sample := g.amp * envelope * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *chirpGenerator) Err() error {
	return nil
}

// buzzGenerator stacks the first three harmonics of a square-ish buzz.
type buzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	amp  float64
	pos  int
}

func newBuzz(sr beep.SampleRate, freq, amp float64) *buzzGenerator {
	return &buzzGenerator{sr: sr, freq: freq, amp: amp}
}

func (g *buzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.0
		sample += 0.6 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*3*t)
		envelope := math.Min(t/0.01, 1.0)
		s := g.amp * envelope * sample
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *buzzGenerator) Err() error {
	return nil
}

// noiseBurst mixes filtered noise with a low rumble under a fast decay.
type noiseBurst struct {
	sr   beep.SampleRate
	amp  float64
	seed int64
	pos  int
}

func newNoiseBurst(sr beep.SampleRate, amp float64) *noiseBurst {
	return &noiseBurst{sr: sr, amp: amp, seed: 0x5eed}
}

func (g *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 10)
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.4 * math.Sin(2*math.Pi*70*t)
		s := g.amp * envelope * (0.6*noise + rumble)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *noiseBurst) Err() error {
	return nil
}

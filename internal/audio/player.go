// Package audio plays short synthesized effects for gameplay cues.
// Every effect is generated in memory; there are no sound assets.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/halcyonix/typestorm/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Player routes gameplay sound cues to the speaker. A Player that
// failed to initialize, or was created disabled, swallows every cue.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer(volume float64) *Player {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the audio device. On failure the player stays silent and
// the error is returned for logging; gameplay is unaffected.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences the player. The speaker itself has no close in beep;
// clearing the mixer stops all playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// Play schedules the effect for a gameplay cue.
func (p *Player) Play(cue game.SoundCue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.volume == 0 {
		return
	}
	p.mixer.Add(p.effect(cue))
}

// effect maps a cue to a bounded streamer. Caller holds the lock.
func (p *Player) effect(cue game.SoundCue) beep.Streamer {
	v := p.volume
	switch cue {
	case game.CueType:
		return take(8*time.Millisecond, newTone(sampleRate, 880, 0.10*v))
	case game.CueCorrect:
		return take(120*time.Millisecond, newChirp(sampleRate, 520, 1040, 0.22*v))
	case game.CueWrong:
		return take(110*time.Millisecond, newBuzz(sampleRate, 110, 0.25*v))
	case game.CueDestroy:
		return take(180*time.Millisecond, newNoiseBurst(sampleRate, 0.25*v))
	case game.CueBoss:
		return take(450*time.Millisecond, newChirp(sampleRate, 220, 55, 0.30*v))
	case game.CueLevel:
		return take(300*time.Millisecond, newChirp(sampleRate, 440, 1760, 0.25*v))
	case game.CueCollision:
		return take(250*time.Millisecond, newNoiseBurst(sampleRate, 0.35*v))
	case game.CueAchievement:
		return take(350*time.Millisecond, newChirp(sampleRate, 660, 1320, 0.25*v))
	case game.CueMissile:
		return take(200*time.Millisecond, newChirp(sampleRate, 1400, 500, 0.18*v))
	default:
		return take(50*time.Millisecond, newTone(sampleRate, 440, 0.10*v))
	}
}

func take(d time.Duration, s beep.Streamer) beep.Streamer {
	return beep.Take(sampleRate.N(d), s)
}

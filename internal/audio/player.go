package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player owns the speaker, a mixer for one-shot effects and the paused/
// playing background music loop. A zero-value Player is safe to use: if
// Init was never called (or failed, e.g. no audio device) every method is
// a no-op, so headless runs and tests need no special casing.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewPlayer returns an uninitialized player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker, starts the mixer and begins the background
// music loop in the given paused/playing state.
func (p *Player) Init(musicOn bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	p.music = &beep.Ctrl{
		Streamer: beep.Loop(-1, newClip(musicClip())),
		Paused:   !musicOn,
	}
	p.mixer.Add(p.music)
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMusic pauses or resumes the background loop.
func (p *Player) SetMusic(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.music.Paused = !on
	speaker.Unlock()
}

// MusicOn reports whether the background loop is playing.
func (p *Player) MusicOn() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return false
	}
	speaker.Lock()
	on := !p.music.Paused
	speaker.Unlock()
	return on
}

func (p *Player) play(samples []float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(newClip(samples))
	speaker.Unlock()
}

// Capture plays the ordinary-capture blip.
func (p *Player) Capture() { p.play(captureClip()) }

// Speed plays the speed-impulse arpeggio.
func (p *Player) Speed() { p.play(speedClip()) }

// Attack plays the attack-impulse tone.
func (p *Player) Attack() { p.play(attackClip()) }

// Win plays the victory jingle.
func (p *Player) Win() { p.play(winClip()) }

// Lose plays the defeat jingle.
func (p *Player) Lose() { p.play(loseClip()) }

// Draw plays the draw jingle.
func (p *Player) Draw() { p.play(drawClip()) }

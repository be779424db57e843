package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate used for all cues
const SampleRate = beep.SampleRate(44100)

// Player mixes cues into the speaker; a closed or uninitialized player drops them
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	played      [cueCount]int
}

// NewPlayer returns an uninitialized player at volume in [0,1]
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: min(max(volume, 0), 1),
	}
}

// Init opens the speaker, failure leaves the player silent
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues cue on the mixer
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cue < 0 || cue >= cueCount {
		return
	}
	p.played[cue]++
	if !p.initialized {
		return
	}
	s := Build(cue, SampleRate, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Played returns how many times cue was requested
func (p *Player) Played(cue Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cue < 0 || cue >= cueCount {
		return 0
	}
	return p.played[cue]
}

// Close clears pending cues and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

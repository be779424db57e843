package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/roadgen/vmath"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a fixed-length oscillator with linear attack and release
type tone struct {
	freq  float64
	wave  Wave
	rate  beep.SampleRate
	rng   *vmath.FastRand
	phase float64

	pos     int
	total   int
	attack  int
	release int
}

// Tone returns a finite streamer of one note
// Attack and release are clamped to the note length
func Tone(rate beep.SampleRate, wave Wave, freq float64, length, attack, release time.Duration) beep.Streamer {
	total := rate.N(length)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	t := &tone{
		freq:    freq,
		wave:    wave,
		rate:    rate,
		total:   total,
		attack:  att,
		release: rel,
	}
	if wave == WaveNoise {
		t.rng = vmath.NewFastRand(uint64(total) + 1)
	}
	return t
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		v := t.sample() * t.gain()
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func (t *tone) sample() float64 {
	switch t.wave {
	case WaveSquare:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (t.phase - 0.5)
	case WaveNoise:
		return t.rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}

func (t *tone) gain() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if t.release > 0 {
		left := t.total - t.pos
		if left < t.release {
			return float64(left) / float64(t.release)
		}
	}
	return 1
}

// scaled applies a linear volume; zero or less is silent
func scaled(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

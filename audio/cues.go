package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Build returns the streamer for cue at rate, scaled by volume in [0,1]
// Unknown cues return nil
func Build(cue Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CueSpawn:
		s = Tone(rate, WaveSine, 660, 30*time.Millisecond, 2*time.Millisecond, 20*time.Millisecond)
	case CueRetire:
		s = Tone(rate, WaveSine, 220, 60*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond)
	case CueCrossroad:
		s = beep.Seq(
			Tone(rate, WaveSquare, 523.25, 70*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond),
			Tone(rate, WaveSquare, 659.25, 70*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond),
		)
	case CueResolve:
		s = beep.Mix(
			scaled(Tone(rate, WaveSine, 880, 150*time.Millisecond, 5*time.Millisecond, 120*time.Millisecond), 0.7),
			scaled(Tone(rate, WaveSine, 1760, 150*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond), 0.3),
		)
	case CueEdge:
		s = Tone(rate, WaveSaw, 110, 120*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond)
	case CuePortal:
		s = Tone(rate, WaveNoise, 0, 250*time.Millisecond, 80*time.Millisecond, 150*time.Millisecond)
	case CueFault:
		s = Tone(rate, WaveSquare, 90, 300*time.Millisecond, 5*time.Millisecond, 100*time.Millisecond)
	case CueClear:
		sine, err := generators.SineTone(rate, 440)
		if err != nil {
			return nil
		}
		s = beep.Take(rate.N(80*time.Millisecond), sine)
	default:
		return nil
	}
	return scaled(s, volume)
}

package audio

import (
	"math"
	"testing"
	"time"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestTone_Length(t *testing.T) {
	tests := []struct {
		name string
		wave Wave
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Tone(SampleRate, tt.wave, 440, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond)
			n, peak := drain(t, s)
			if want := SampleRate.N(100 * time.Millisecond); n != want {
				t.Errorf("samples = %d, want %d", n, want)
			}
			if peak > 1 || peak == 0 {
				t.Errorf("peak = %v, want in (0,1]", peak)
			}
		})
	}
}

func TestTone_EnvelopeEdgesAreQuiet(t *testing.T) {
	s := Tone(SampleRate, WaveSquare, 440, 50*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond)
	buf := make([][2]float64, SampleRate.N(50*time.Millisecond))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d of %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want silent attack start", buf[0][0])
	}
	if math.Abs(buf[n-1][0]) > 0.01 {
		t.Errorf("last sample = %v, want near-silent release end", buf[n-1][0])
	}
	mid := buf[n/2][0]
	if math.Abs(mid) != 1 {
		t.Errorf("sustain sample = %v, want full square amplitude", mid)
	}
}

func TestTone_LongEnvelopeClamped(t *testing.T) {
	s := Tone(SampleRate, WaveSine, 440, 10*time.Millisecond, time.Second, time.Second)
	n, _ := drain(t, s)
	if want := SampleRate.N(10 * time.Millisecond); n != want {
		t.Errorf("samples = %d, want %d", n, want)
	}
}

func TestBuild_AllCuesFinite(t *testing.T) {
	for c := Cue(0); c < cueCount; c++ {
		t.Run(c.String(), func(t *testing.T) {
			s := Build(c, SampleRate, 0.5)
			if s == nil {
				t.Fatal("nil streamer")
			}
			if n, _ := drain(t, s); n == 0 {
				t.Error("empty cue")
			}
		})
	}
	if Build(cueCount, SampleRate, 1) != nil {
		t.Error("unknown cue must build nil")
	}
}

func TestPlayer_UninitializedCounts(t *testing.T) {
	p := NewPlayer(2)
	p.Play(CueSpawn)
	p.Play(CueSpawn)
	p.Play(Cue(-1))
	p.Close()
	if got := p.Played(CueSpawn); got != 2 {
		t.Errorf("Played(spawn) = %d, want 2", got)
	}
	if p.volume != 1 {
		t.Errorf("volume = %v, want clamped to 1", p.volume)
	}
}

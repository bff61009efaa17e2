package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
)

// unitStreamer emits a constant 1.0 on both channels.
type unitStreamer struct{}

func (unitStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i][0] = 1
		samples[i][1] = 1
	}
	return len(samples), true
}

func (unitStreamer) Err() error { return nil }

func stream(s beep.Streamer, n int) [][2]float64 {
	buf := make([][2]float64, n)
	s.Stream(buf)
	return buf
}

func TestGainStartsSilent(t *testing.T) {
	g := newGain(unitStreamer{})
	for _, s := range stream(g, 256) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("unramped gain leaked signal: %v", s)
		}
	}
}

func TestGainRampConverges(t *testing.T) {
	g := newGain(unitStreamer{})
	g.setTarget(0.5, 1000)

	buf := stream(g, 2000)

	// monotonic rise over the ramp
	for i := 1; i < 1000; i++ {
		if buf[i][0] < buf[i-1][0]-1e-12 {
			t.Fatalf("ramp not monotonic at sample %d: %v -> %v", i, buf[i-1][0], buf[i][0])
		}
	}
	if math.Abs(g.volume()-0.5) > 1e-9 {
		t.Fatalf("volume = %v after ramp, want 0.5", g.volume())
	}
	// settled samples hold the target
	if math.Abs(buf[1500][0]-0.5) > 1e-9 {
		t.Fatalf("post-ramp sample = %v, want 0.5", buf[1500][0])
	}
}

func TestGainRampDown(t *testing.T) {
	g := newGain(unitStreamer{})
	g.setTarget(0.8, 0)
	if g.volume() != 0.8 {
		t.Fatalf("zero-length ramp should jump, volume = %v", g.volume())
	}

	g.setTarget(0.2, 100)
	stream(g, 200)
	if math.Abs(g.volume()-0.2) > 1e-9 {
		t.Fatalf("volume = %v after down-ramp, want 0.2", g.volume())
	}
}

func TestGainClampsTarget(t *testing.T) {
	cases := []struct {
		name   string
		target float64
		want   float64
	}{
		{"above_one", 1.7, 1},
		{"below_zero", -0.3, 0},
		{"in_range", 0.4, 0.4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := newGain(unitStreamer{})
			g.setTarget(c.target, 0)
			if g.volume() != c.want {
				t.Fatalf("volume = %v, want %v", g.volume(), c.want)
			}
		})
	}
}

func TestGainRetarget(t *testing.T) {
	g := newGain(unitStreamer{})
	g.setTarget(1, 1000)
	stream(g, 500)
	mid := g.volume()
	if mid <= 0 || mid >= 1 {
		t.Fatalf("mid-ramp volume = %v", mid)
	}

	// retarget mid-ramp: new ramp runs from the current volume
	g.setTarget(0, 500)
	stream(g, 600)
	if g.volume() != 0 {
		t.Fatalf("volume = %v after retargeted ramp, want 0", g.volume())
	}
}

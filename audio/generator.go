package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// The four layer generators are endless procedural streamers. They always
// fill the whole buffer and never error; audibility is controlled entirely
// by the gain stage above them.

const twoPi = 2 * math.Pi

// padDrone is two detuned sines with a slow amplitude swell.
type padDrone struct {
	sr     beep.SampleRate
	phaseA float64
	phaseB float64
	lfo    float64
}

func newPadDrone(sr beep.SampleRate) *padDrone {
	return &padDrone{sr: sr}
}

func (g *padDrone) Stream(samples [][2]float64) (n int, ok bool) {
	dt := 1.0 / float64(g.sr)
	for i := range samples {
		v := 0.5*math.Sin(twoPi*g.phaseA) + 0.5*math.Sin(twoPi*g.phaseB)
		swell := 0.6 + 0.4*math.Sin(twoPi*g.lfo)
		v *= 0.35 * swell

		samples[i][0] = v
		samples[i][1] = v

		g.phaseA = advance(g.phaseA, 110.0*dt)
		g.phaseB = advance(g.phaseB, 110.7*dt)
		g.lfo = advance(g.lfo, 0.1*dt)
	}
	return len(samples), true
}

func (g *padDrone) Err() error { return nil }

// bassPulse is a low sine gated by a slow pulse envelope.
type bassPulse struct {
	sr    beep.SampleRate
	phase float64
	env   float64
}

func newBassPulse(sr beep.SampleRate) *bassPulse {
	return &bassPulse{sr: sr}
}

func (g *bassPulse) Stream(samples [][2]float64) (n int, ok bool) {
	dt := 1.0 / float64(g.sr)
	for i := range samples {
		pulse := math.Sin(twoPi * g.env)
		if pulse < 0 {
			pulse = 0
		}
		v := 0.5 * pulse * math.Sin(twoPi*g.phase)

		samples[i][0] = v
		samples[i][1] = v

		g.phase = advance(g.phase, 55.0*dt)
		g.env = advance(g.env, 2.0*dt)
	}
	return len(samples), true
}

func (g *bassPulse) Err() error { return nil }

// arpeggio steps through a pentatonic figure with a per-step decay.
type arpeggio struct {
	sr       beep.SampleRate
	phase    float64
	step     int
	stepPos  int
	stepLen  int
	notes    []float64
	decayLen float64
}

func newArpeggio(sr beep.SampleRate) *arpeggio {
	stepLen := int(sr) / 6
	return &arpeggio{
		sr:       sr,
		stepLen:  stepLen,
		notes:    []float64{329.63, 392.0, 440.0, 523.25, 440.0, 392.0},
		decayLen: float64(stepLen),
	}
}

func (g *arpeggio) Stream(samples [][2]float64) (n int, ok bool) {
	dt := 1.0 / float64(g.sr)
	for i := range samples {
		freq := g.notes[g.step%len(g.notes)]
		decay := 1.0 - float64(g.stepPos)/g.decayLen
		if decay < 0 {
			decay = 0
		}
		v := 0.4 * decay * math.Sin(twoPi*g.phase)

		samples[i][0] = v
		samples[i][1] = v

		g.phase = advance(g.phase, freq*dt)
		g.stepPos++
		if g.stepPos >= g.stepLen {
			g.stepPos = 0
			g.step++
		}
	}
	return len(samples), true
}

func (g *arpeggio) Err() error { return nil }

// chimeShimmer layers high partials whose amplitudes drift against each
// other for a glassy shimmer.
type chimeShimmer struct {
	sr      beep.SampleRate
	phases  [3]float64
	drift   float64
	partial [3]float64
}

func newChimeShimmer(sr beep.SampleRate) *chimeShimmer {
	return &chimeShimmer{sr: sr, partial: [3]float64{1046.5, 1318.5, 1568.0}}
}

func (g *chimeShimmer) Stream(samples [][2]float64) (n int, ok bool) {
	dt := 1.0 / float64(g.sr)
	for i := range samples {
		var v float64
		for p := range g.phases {
			amp := 0.5 + 0.5*math.Sin(twoPi*(g.drift+float64(p)/3))
			v += amp * math.Sin(twoPi*g.phases[p])
			g.phases[p] = advance(g.phases[p], g.partial[p]*dt)
		}
		v *= 0.18

		samples[i][0] = v
		samples[i][1] = v

		g.drift = advance(g.drift, 0.13*dt)
	}
	return len(samples), true
}

func (g *chimeShimmer) Err() error { return nil }

func advance(phase, delta float64) float64 {
	phase += delta
	return phase - math.Floor(phase)
}

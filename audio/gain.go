package audio

import "github.com/gopxl/beep"

// gain scales a streamer by a volume that eases linearly toward a target.
// This is the mix's volume-ramp primitive: setTarget starts a ramp, and
// every streamed sample advances the current volume one step until the
// target is reached.
type gain struct {
	streamer beep.Streamer
	current  float64
	target   float64
	step     float64
}

func newGain(s beep.Streamer) *gain {
	return &gain{streamer: s}
}

// setTarget ramps toward target over rampSamples samples. A non-positive
// ramp jumps immediately.
func (g *gain) setTarget(target float64, rampSamples int) {
	if target < 0 {
		target = 0
	}
	if target > 1 {
		target = 1
	}
	g.target = target
	if rampSamples <= 0 {
		g.current = target
		g.step = 0
		return
	}
	g.step = (target - g.current) / float64(rampSamples)
}

func (g *gain) volume() float64 { return g.current }

func (g *gain) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if g.step != 0 {
			g.current += g.step
			if (g.step > 0 && g.current >= g.target) || (g.step < 0 && g.current <= g.target) {
				g.current = g.target
				g.step = 0
			}
		}
		samples[i][0] *= g.current
		samples[i][1] *= g.current
	}
	return n, ok
}

func (g *gain) Err() error {
	if g.streamer == nil {
		return nil
	}
	return g.streamer.Err()
}

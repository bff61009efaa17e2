package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// NumLayers is the size of the procedural mix: pad, bass, arpeggio,
	// shimmer, keyed by note index.
	NumLayers = 4

	ticksPerSecond = 60
)

// Engine owns the four-layer procedural mix. All layers stream from the
// moment the speaker starts, muted; collecting notes ramps them up.
// Start must wait for a user keypress so the mix begins on an explicit
// gesture.
type Engine struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	layers  [NumLayers]*gain
	started bool
}

func NewEngine() *Engine {
	e := &Engine{mixer: &beep.Mixer{}}
	generators := [NumLayers]beep.Streamer{
		newPadDrone(sampleRate),
		newBassPulse(sampleRate),
		newArpeggio(sampleRate),
		newChimeShimmer(sampleRate),
	}
	for i, g := range generators {
		e.layers[i] = newGain(g)
		e.mixer.Add(e.layers[i])
	}
	return e
}

// Start initializes the speaker and begins playback of the (muted) mix.
// Safe to call more than once.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(e.mixer)
	e.started = true
	return nil
}

// Started reports whether the speaker is running.
func (e *Engine) Started() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.started
}

// RampLayer ramps one layer toward target over the given number of game
// ticks. Layers outside the mix are ignored, which is how collecting a
// note with no matching layer stays a no-op.
func (e *Engine) RampLayer(layer int, target float64, frames int) {
	if layer < 0 || layer >= NumLayers {
		return
	}
	rampSamples := frames * int(sampleRate) / ticksPerSecond

	e.mu.Lock()
	started := e.started
	e.mu.Unlock()

	if started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	e.layers[layer].setTarget(target, rampSamples)
}

// Silence ramps every layer back down, used when the level resets.
func (e *Engine) Silence() {
	for i := 0; i < NumLayers; i++ {
		e.RampLayer(i, 0, ticksPerSecond/2)
	}
}

// LayerVolume returns the current volume of a layer.
func (e *Engine) LayerVolume(layer int) float64 {
	if layer < 0 || layer >= NumLayers {
		return 0
	}
	e.mu.Lock()
	started := e.started
	e.mu.Unlock()
	if started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return e.layers[layer].volume()
}

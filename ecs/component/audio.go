package component

// AudioRampRequest asks the audio system to ramp one layer of the mix to
// a target volume. Requests are one-shot entities consumed by the audio
// system on its next update.
type AudioRampRequest struct {
	Layer  int
	Target float64
	Frames int
}

var AudioRampRequestComponent = NewComponent[AudioRampRequest]()

package speakers

import "fmt"

// AudioLib names an output back-end for the console's audio stream.
type AudioLib string

const (
	Nil       = "nil"
	Beep      = "beep"
	PortAudio = "portaudio"
	Oto       = "oto"
)

// DspSampleRate is the fixed rate the console's audio unit emits
// samples at. Every back-end opens its device at this rate so the
// stream goes out without resampling.
const DspSampleRate = 32000

// AudioSpeaker drains the console's mono sample stream. Sample is
// called from the emulation thread and must never block it.
type AudioSpeaker interface {
	Reset()
	Stop()
	Play()
	Sample(float64) bool
	SampleRate() int
	BufferReady() bool
}

var speakerMakers = map[AudioLib]func() (AudioSpeaker, error){
	Nil:       newSpeakerNil,
	Beep:      newSpeakerBeep,
	PortAudio: newSpeakerPort,
	Oto:       newSpeakerOto,
}

// NewSpeaker builds and initialises the requested back-end; device
// failures surface as errors rather than taking the console down.
func NewSpeaker(lib AudioLib) (AudioSpeaker, error) {
	maker, ok := speakerMakers[lib]
	if !ok {
		return nil, fmt.Errorf("unknown audio library %q", lib)
	}
	return maker()
}

package speakers

import (
	"github.com/gordonklaus/portaudio"
)

type SpeakerPort struct {
	sampleChan chan float64
	sampleRate int

	stream *portaudio.Stream
}

func newSpeakerPort() (AudioSpeaker, error) {
	s := &SpeakerPort{}

	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	h, err := portaudio.DefaultHostApi()
	if err != nil {
		return nil, err
	}

	p := portaudio.HighLatencyParameters(nil, h.DefaultOutputDevice)
	p.Output.Channels = 1
	p.SampleRate = DspSampleRate

	s.stream, err = portaudio.OpenStream(p, s.processAudio)
	if err != nil {
		return nil, err
	}
	s.sampleRate = int(p.SampleRate)
	s.sampleChan = make(chan float64, s.sampleRate)
	return s, nil
}

func (s *SpeakerPort) Play() {
	chk(s.stream.Start())
}

func (s *SpeakerPort) Reset() {}
func (s *SpeakerPort) Stop() {
	chk(s.stream.Stop())
	chk(portaudio.Terminate())
}

func (s *SpeakerPort) Sample(sample float64) bool {
	select {
	case s.sampleChan <- sample:
		return true
	default:
		return false
	}
}

func (s *SpeakerPort) processAudio(out []float32) {
	sample := float32(0.0)
	for i := range out {
		select {
		case apuSample := <-s.sampleChan:
			sample = float32(apuSample)
		default:
		}
		out[i] = sample
	}
}

func chk(err error) {
	if err != nil {
		panic(err)
	}
}

func (s *SpeakerPort) SampleRate() int {
	return s.sampleRate
}

func (s *SpeakerPort) BufferReady() bool {
	return len(s.sampleChan) < cap(s.sampleChan)/2
}

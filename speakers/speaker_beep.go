package speakers

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

type SpeakerBeep struct {
	sampleChan chan float64
	sampleRate beep.SampleRate

	playing bool
}

func newSpeakerBeep() (AudioSpeaker, error) {
	s := &SpeakerBeep{sampleRate: beep.SampleRate(DspSampleRate)}
	s.sampleChan = make(chan float64, s.sampleRate.N(time.Second/10))
	return s, nil
}

func (s *SpeakerBeep) Play() {
	if s.playing {
		return
	}
	if err := speaker.Init(s.sampleRate, s.sampleRate.N(time.Second/10)); err != nil {
		panic(err)
	}
	speaker.Play(s.stream())
	s.playing = true
}

func (s *SpeakerBeep) Reset() {}
func (s *SpeakerBeep) Stop() {
	if s.playing {
		speaker.Close()
		s.playing = false
	}
}

func (s *SpeakerBeep) Sample(sample float64) bool {
	select {
	case s.sampleChan <- sample:
		return true
	default:
		// consumer is behind, drop
		return false
	}
}

func (s *SpeakerBeep) SampleRate() int {
	return int(s.sampleRate)
}

func (s *SpeakerBeep) BufferReady() bool {
	return len(s.sampleChan) < cap(s.sampleChan)/2
}

func (s *SpeakerBeep) stream() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			sample := 0.0
			select {
			case sample = <-s.sampleChan:
			default:
			}
			samples[i][0] = sample
			samples[i][1] = sample
		}
		return len(samples), true
	})
}

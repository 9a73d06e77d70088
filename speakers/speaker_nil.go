package speakers

// SpeakerNil swallows the stream; used headless and in tests.
type SpeakerNil struct{}

func newSpeakerNil() (AudioSpeaker, error) {
	return &SpeakerNil{}, nil
}

func (s *SpeakerNil) Reset() {}
func (s *SpeakerNil) Play()  {}
func (s *SpeakerNil) Stop()  {}

func (s *SpeakerNil) Sample(float64) bool {
	return true
}
func (s *SpeakerNil) SampleRate() int {
	return DspSampleRate
}
func (s *SpeakerNil) BufferReady() bool {
	return true
}

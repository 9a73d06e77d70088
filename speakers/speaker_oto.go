package speakers

import (
	"time"

	"github.com/hajimehoshi/oto"

	"github.com/konstantinos193/gosnes/snes/common"
)

// SpeakerOto plays through oto. The emulation thread drops mono
// samples into a ring; a drain goroutine pulls them out in fixed
// chunks and hands the device the interleaved little-endian 16-bit
// stereo frames the dsp output stage produces.
type SpeakerOto struct {
	buffer *common.CircularBuffer

	chunk  int
	mono   []float64
	frames []byte

	context *oto.Context
	player  *oto.Player
	done    chan struct{}
}

func newSpeakerOto() (AudioSpeaker, error) {
	s := &SpeakerOto{}

	// a quarter second of headroom between the core and the device
	s.buffer = common.NewCircularBuffer(DspSampleRate / 4)
	// 20ms chunks keep latency low without starving the player
	s.chunk = DspSampleRate / 50
	s.mono = make([]float64, s.chunk)
	s.frames = make([]byte, s.chunk*4)

	context, err := oto.NewContext(DspSampleRate, 2, 2, s.chunk*4)
	if err != nil {
		return nil, err
	}
	s.context = context
	return s, nil
}

func (s *SpeakerOto) Play() {
	if s.player != nil {
		return
	}
	s.player = s.context.NewPlayer()
	s.done = make(chan struct{})
	go s.drain()
}

func (s *SpeakerOto) Reset() {}

func (s *SpeakerOto) Stop() {
	if s.player != nil {
		close(s.done)
		s.player.Close()
		s.player = nil
	}
	s.context.Close()
}

func (s *SpeakerOto) Sample(sample float64) bool {
	if s.buffer.Write(sample, false) == nil {
		return true
	}
	// full ring: drop the oldest sample rather than grow latency
	_, _ = s.buffer.Read()
	_ = s.buffer.Write(sample, false)
	return false
}

func (s *SpeakerOto) BufferReady() bool {
	return s.buffer.Available() >= s.chunk
}

func (s *SpeakerOto) SampleRate() int {
	return DspSampleRate
}

func (s *SpeakerOto) drain() {
	for {
		select {
		case <-s.done:
			return
		default:
		}

		got := s.buffer.ReadInto(s.mono)
		if got == 0 {
			time.Sleep(4 * time.Millisecond)
			continue
		}

		for i := 0; i < got; i++ {
			val := s.mono[i]
			if val > 1 {
				val = 1
			} else if val < -1 {
				val = -1
			}
			frame := int16(val * (1<<15 - 1))
			s.frames[i*4+0] = byte(frame)
			s.frames[i*4+1] = byte(frame >> 8)
			s.frames[i*4+2] = byte(frame)
			s.frames[i*4+3] = byte(frame >> 8)
		}
		s.player.Write(s.frames[:got*4])
	}
}

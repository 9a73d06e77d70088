package snes

import (
	"github.com/konstantinos193/gosnes/snes/common"
)

// The audio co-processor is a stub: the four communication ports are
// live so boot handshakes make progress, the mixer output is silence.
// A real dsp can slot in behind produceSamples later.
type Apu struct {
	// cpu facing ports 0x2140-0x2143
	inPorts  [4]uint8 // written by the cpu
	outPorts [4]uint8 // read back by the cpu

	// internal dsp register mirror of the ports
	dspMirror [4]uint8

	buffer *common.CircularBuffer

	clock   uint64
	verbose bool
}

const apuRingSeconds = 4

func (a *Apu) init(verbose bool) {
	a.verbose = verbose
	a.buffer = common.NewCircularBuffer(SnesAudioSampleRate / apuRingSeconds)
	a.resetPorts()
}

func (a *Apu) reset() {
	a.resetPorts()
	a.clock = 0
	a.buffer.Reset(SnesAudioSampleRate / apuRingSeconds)
}

func (a *Apu) resetPorts() {
	a.inPorts = [4]uint8{}
	a.outPorts = [4]uint8{}
	a.dspMirror = [4]uint8{}
}

func (a *Apu) writePort(port uint8, val uint8) {
	a.inPorts[port&3] = val
	a.dspMirror[port&3] = val

	// echo the write straight back; enough for the common
	// wait-for-ack handshake loops
	a.outPorts[port&3] = val
}

func (a *Apu) readPort(port uint8) uint8 {
	return a.outPorts[port&3]
}

// produceSamples feeds one frame worth of silence into the ring the
// audio thread drains; drops when the consumer is behind
func (a *Apu) produceSamples(n int) {
	for i := 0; i < n; i++ {
		if a.buffer.Write(0.0, false) != nil {
			return
		}
	}
	a.clock += uint64(n)
}

// FillAudio hands samples to the embedder's audio side; short reads
// pad with silence
func (a *Apu) FillAudio(left, right []float32) {
	tmp := make([]float64, len(left))
	got := a.buffer.ReadInto(tmp)
	for i := range left {
		if i < got {
			left[i] = float32(tmp[i])
		} else {
			left[i] = 0
		}
	}
	for i := range right {
		if i < len(left) {
			right[i] = left[i]
		} else {
			right[i] = 0
		}
	}
}

func (a *Apu) Serialise(s common.Serialiser) error {
	return s.Serialise(a.inPorts, a.outPorts, a.dspMirror, a.clock)
}
func (a *Apu) DeSerialise(s common.Serialiser) error {
	var clock uint64
	if err := s.DeSerialise(&a.inPorts, &a.outPorts, &a.dspMirror, &clock); err != nil {
		return err
	}
	a.clock = clock
	return nil
}

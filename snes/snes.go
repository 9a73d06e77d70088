package snes

import (
	"fmt"
	"time"

	"github.com/konstantinos193/gosnes/snes/common"
	"github.com/konstantinos193/gosnes/speakers"
)

// one frame worth of audio at the dsp output rate
const samplesPerFrame = SnesAudioSampleRate * masterCyclesPerFrame / SnesBaseFrequency

type Snes struct {
	cpu  Cpu
	mmu  Mmu
	ppu  Ppu
	apu  Apu
	dma  Dma
	cart Cartridge
	ctrl controllers

	fb        common.Framebuffer
	frameSink func(frame []uint8)
	sinkBuf   []uint8

	speaker speakers.AudioSpeaker

	running bool
	// master cycles still owed to the current stepping slice
	clkBudget int
	frames    uint64

	opRequests uint

	// Options
	verbose  bool
	cartPath string
	freeRun  bool
	audioLib speakers.AudioLib
}

func NewSnes(options ...func(*Snes) error) (*Snes, error) {
	n := &Snes{audioLib: speakers.Nil}

	if err := n.setOptions(options...); err != nil {
		return nil, err
	}
	if err := n.init(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Snes) init() error {
	n.fb.Init()

	n.mmu.init(n)
	n.dma.init()
	n.ppu.init(&n.fb, n.verbose)
	n.apu.init(n.verbose)
	n.ctrl.init()

	if n.cartPath != "" {
		if err := n.cart.initFile(n.cartPath); err != nil {
			return fmt.Errorf("failed to initialise the cartridge: %w", err)
		}
	}

	n.cpu.init(&n.mmu, n.verbose)

	speaker, err := speakers.NewSpeaker(n.audioLib)
	if err != nil {
		return fmt.Errorf("failed to initialise the audio backend: %w", err)
	}
	n.speaker = speaker
	n.speaker.Play()

	return nil
}

// LoadCartridge parses and installs a cartridge image, then resets
// the machine around it.
func (n *Snes) LoadCartridge(image []byte) error {
	cart := Cartridge{}
	if err := cart.init(image); err != nil {
		return err
	}
	n.cart = cart
	n.Reset()
	return nil
}

// Reset resets every component; the cartridge and its battery ram
// are retained.
func (n *Snes) Reset() {
	n.mmu.reset()
	n.ppu.reset()
	n.apu.reset()
	n.dma.reset()
	n.ctrl.reset()
	n.cart.reset()
	n.cpu.reset()
	n.clkBudget = 0
}

// Run drives frames until Stop is called, pacing them to the wall
// clock unless the free-run option is set.
func (n *Snes) Run() {
	n.running = true

	frameTime := time.Second * masterCyclesPerFrame / SnesBaseFrequency
	tmr := time.Tick(frameTime)

	for n.running {
		n.RunFrame()
		if !n.freeRun {
			<-tmr
		}
	}

	n.cart.saveBattery()
	n.speaker.Stop()
}

func (n *Snes) Stop() {
	n.running = false
}

func (n *Snes) Running() bool {
	return n.running
}

// RunFrame advances the machine by exactly one video frame and
// returns to the caller.
func (n *Snes) RunFrame() {
	// visible scanlines
	n.stepCycles(masterCyclesPerVisible)

	// vertical blank entry: flag up, interrupt out, frame drawn
	n.mmu.setVBlank(true)
	if n.mmu.nmiEnable() {
		n.cpu.raise(cpuIntNMI)
	}

	n.ppu.renderFrame()
	n.emitFrame()
	n.apu.produceSamples(samplesPerFrame)
	n.feedSpeaker()

	// remaining blanking scanlines
	n.stepCycles(masterCyclesPerFrame - masterCyclesPerVisible)
	n.mmu.setVBlank(false)

	n.frames++
	n.processOpRequests()
}

// stepCycles batches cpu instructions until the slice of master
// cycles is spent; dma stalls bill against the same budget
func (n *Snes) stepCycles(cycles int) {
	n.clkBudget += cycles
	for n.clkBudget > 0 {
		ticks := n.cpu.step()
		n.clkBudget -= ticks * masterCyclesPerCpuCycle
		n.clkBudget -= n.dma.drainStall()
	}
}

func (n *Snes) emitFrame() {
	if n.frameSink == nil {
		return
	}
	if n.sinkBuf == nil {
		n.sinkBuf = make([]uint8, frameXWidth*frameYHeight*4)
	}
	front := n.fb.Front()
	for i, c := range front {
		n.sinkBuf[i*4+0] = c.R
		n.sinkBuf[i*4+1] = c.G
		n.sinkBuf[i*4+2] = c.B
		n.sinkBuf[i*4+3] = c.A
	}
	n.frameSink(n.sinkBuf)
}

func (n *Snes) feedSpeaker() {
	for {
		val, err := n.apu.buffer.Read()
		if err != nil {
			return
		}
		if !n.speaker.Sample(val) {
			return
		}
	}
}

// SetButton reflects an embedder button change into pad 1.
func (n *Snes) SetButton(id Button, pressed bool) {
	n.ctrl.poke(0, id, pressed)
}

// Poke reaches any pad; the ui uses it directly.
func (n *Snes) Poke(padId uint8, id Button, pressed bool) {
	n.ctrl.poke(padId, id, pressed)
}

// SetFrameSink registers the callback receiving each finished frame
// as rgba bytes. The slice is reused between frames.
func (n *Snes) SetFrameSink(sink func(frame []uint8)) {
	n.frameSink = sink
}

// Framebuffer exposes the double buffer for presenters that want the
// pixels without a copy.
func (n *Snes) Framebuffer() *common.Framebuffer {
	return &n.fb
}

// FillAudio hands stereo samples to the embedder's audio thread.
func (n *Snes) FillAudio(left, right []float32) {
	n.apu.FillAudio(left, right)
}

func (n *Snes) Cartridge() *Cartridge {
	return &n.cart
}

// DecodeMisses reports how many unimplemented opcodes were skipped.
func (n *Snes) DecodeMisses() uint64 {
	return n.cpu.decodeMisses
}

// MappingMisses reports reads or writes the bus could not resolve.
func (n *Snes) MappingMisses() uint64 {
	return n.mmu.mappingMisses
}

// Request queues an operation to be handled at the next frame
// boundary.
func (n *Snes) Request(request common.OpRequest) {
	n.opRequests |= 1 << request
}

func (n *Snes) processOpRequests() {
	switch {
	case n.opRequests&(1<<common.ResetRequest) != 0:
		n.Reset()
		n.opRequests &^= 1 << common.ResetRequest
	case n.opRequests&(1<<common.SaveRequest) != 0:
		n.saveState()
		n.opRequests &^= 1 << common.SaveRequest
	case n.opRequests&(1<<common.LoadRequest) != 0:
		n.loadState()
		n.opRequests &^= 1 << common.LoadRequest
	case n.opRequests&(1<<common.StopRequest) != 0:
		n.Stop()
		n.opRequests &^= 1 << common.StopRequest
	}
}

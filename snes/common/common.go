package common

import "image/color"

const (
	FrameXWidth  = 256
	FrameYHeight = 224
)

type IiInterrupt interface {
	Raise(uint8)
	Clear(uint8)
}

type Framebuffer struct {
	Buffer0 []color.RGBA
	Buffer1 []color.RGBA

	// 0 - backBuffer, 1 - frontBuffer
	FrameIndex   int
	FrameUpdated chan bool

	// number of frames
	Frames int
}

func (f *Framebuffer) Init() {
	f.Buffer0 = make([]color.RGBA, FrameXWidth*FrameYHeight)
	f.Buffer1 = make([]color.RGBA, FrameXWidth*FrameYHeight)
	f.FrameIndex = 0
	f.FrameUpdated = make(chan bool, 1)
	f.Frames = 0
}

// Back returns the buffer the renderer should draw into.
func (f *Framebuffer) Back() []color.RGBA {
	if f.FrameIndex == 0 {
		return f.Buffer0
	}
	return f.Buffer1
}

// Front returns the last completed frame.
func (f *Framebuffer) Front() []color.RGBA {
	if f.FrameIndex == 0 {
		return f.Buffer1
	}
	return f.Buffer0
}

func (f *Framebuffer) Flip() {
	f.FrameIndex ^= 1
	f.Frames++

	select {
	case f.FrameUpdated <- true:
	default:
	}
}

type OpRequest int

const (
	ResetRequest OpRequest = iota
	SaveRequest
	LoadRequest
	StopRequest
)

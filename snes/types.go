package snes

const (
	frameXWidth  = 256
	frameYHeight = 224
)

// NTSC master clock and frame geometry
const (
	SnesBaseFrequency = 21477272 // master cycles per second

	masterCyclesPerLine = 1364
	totalScanLines      = 262
	visibleScanLines    = 224

	masterCyclesPerFrame   = masterCyclesPerLine * totalScanLines // 357368
	masterCyclesPerVisible = masterCyclesPerLine * visibleScanLines

	// the cpu runs off the master clock divided down; memory speed
	// variations are ignored, which is fine at this level of accuracy
	masterCyclesPerCpuCycle = 6
)

const SnesAudioSampleRate = 32000

// 24-bit machine bus
type busInt interface {
	// Data Operations
	read8(uint32) uint8
	write8(uint32, uint8)
}

type busExtInt interface {
	// Data Operations
	read8(uint32) uint8
	write8(uint32, uint8)
	read16(uint32) uint16
	write16(uint32, uint16)
}

const (
	cpuIntNMI = 1
	cpuIntIRQ = 2
)

type iInterrupt interface {
	raise(uint8)
	clear(uint8)
}

// Button ids as exposed to the embedder.
type Button uint8

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA
	ButtonB
	ButtonX
	ButtonY
	ButtonL
	ButtonR
	ButtonStart
	ButtonSelect

	buttonCount
)

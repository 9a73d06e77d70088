package snes

import (
	"github.com/konstantinos193/gosnes/snes/common"
)

// general purpose dma: eight channels copying between the A bus
// (machine memory) and the B bus (the 0x21xx register window)
type Dma struct {
	// master cycles owed to the scheduler for completed transfers
	stallCycles int

	transfers uint64
}

// the eight canonical B-bus offset patterns, indexed by mode
var dmaPatterns = [8][]uint8{
	{0},
	{0, 1},
	{0, 0},
	{0, 0, 1, 1},
	{0, 1, 2, 3},
	{0, 1, 0, 1},
	{0, 0},
	{0, 0, 1, 1},
}

const (
	dmaChannelBase   = 0x4300
	dmaChannelStride = 0x10

	dmaRegControl = 0x0
	dmaRegDest    = 0x2
	dmaRegAddrLo  = 0x3
	dmaRegAddrHi  = 0x4
	dmaRegBank    = 0x5
	dmaRegSizeLo  = 0x8
	dmaRegSizeHi  = 0x9

	dmaMasterCyclesPerByte = 8
)

func (d *Dma) init() {
	d.stallCycles = 0
}

func (d *Dma) reset() {
	d.init()
}

// start runs every selected channel to completion, in channel order
func (d *Dma) start(m *Mmu, mask uint8) {
	for ch := uint(0); ch < 8; ch++ {
		if mask&(1<<ch) == 0 {
			continue
		}
		d.runChannel(m, ch)
		m.regs[0x420B-0x2000] &^= 1 << ch
	}
}

func (d *Dma) runChannel(m *Mmu, ch uint) {
	base := uint16(dmaChannelBase + ch*dmaChannelStride)

	control := m.dmaReg(base + dmaRegControl)
	dest := m.dmaReg(base + dmaRegDest)
	aOff := uint16(m.dmaReg(base+dmaRegAddrLo)) | uint16(m.dmaReg(base+dmaRegAddrHi))<<8
	aBank := m.dmaReg(base + dmaRegBank)

	count := int(uint16(m.dmaReg(base+dmaRegSizeLo)) | uint16(m.dmaReg(base+dmaRegSizeHi))<<8)
	if count == 0 {
		count = 0x10000
	}

	bToA := control&0x80 != 0
	fixed := control&0x08 != 0
	pattern := dmaPatterns[control&0x7]

	for i := 0; i < count; i++ {
		bAddr := 0x2100 + uint16(dest) + uint16(pattern[i%len(pattern)])
		aAddr := uint32(aBank)<<16 | uint32(aOff)

		if bToA {
			m.write8(aAddr, m.readReg(bAddr))
		} else {
			m.writeReg(bAddr, m.read8(aAddr))
		}

		if !fixed {
			aOff++
		}
	}

	// the engine leaves the live registers behind it: address walked,
	// size drained
	m.regs[base+dmaRegAddrLo-0x2000] = uint8(aOff)
	m.regs[base+dmaRegAddrHi-0x2000] = uint8(aOff >> 8)
	m.regs[base+dmaRegSizeLo-0x2000] = 0
	m.regs[base+dmaRegSizeHi-0x2000] = 0

	d.stallCycles += count * dmaMasterCyclesPerByte
	d.transfers++
}

// drainStall hands the accumulated transfer cost to the scheduler
func (d *Dma) drainStall() int {
	cycles := d.stallCycles
	d.stallCycles = 0
	return cycles
}

func (d *Dma) Serialise(s common.Serialiser) error {
	return s.Serialise(d.stallCycles, d.transfers)
}
func (d *Dma) DeSerialise(s common.Serialiser) error {
	var stallCycles int
	var transfers uint64
	if err := s.DeSerialise(&stallCycles, &transfers); err != nil {
		return err
	}
	d.stallCycles = stallCycles
	d.transfers = transfers
	return nil
}

package snes

import (
	"github.com/konstantinos193/gosnes/snes/common"
)

// Machine Mapping Table (low-mapped cartridges)
// Bank		 	Offset		Device
// 0x00-0x3F	0x0000-0x1FFF	work ram (low 8 KiB mirror)
// 0x00-0x3F	0x2000-0x5FFF	register file
// 0x00-0x3F	0x8000-0xFFFF	cartridge rom
// 0x40-0x6F	0x0000-0xFFFF	cartridge rom
// 0x70-0x7D	0x0000-0x7FFF	save ram
// 0x7E-0x7F	0x0000-0xFFFF	work ram (full 128 KiB)
// 0x80-0xBF	   mirrors of 0x00-0x3F
// 0xC0-0xFF	0x0000-0xFFFF	cartridge rom
//
// High-mapped cartridges use full 64 KiB banks at 0x40-0x7D/0xC0-0xFF
// and tuck save ram into 0x20-0x3F:0x6000-0x7FFF.
type Mmu struct {
	wram common.Ram

	// flat projection of 0x2000-0x5FFF; side effects ride on top
	regs [0x4000]uint8

	console *Snes

	nmiEnabled bool
	inVBlank   bool
	nmiFlag    bool

	// non-fatal fault counters
	mappingMisses uint64
	sramMisses    uint64
}

const wramSize = 0x20000 // 128 KiB

func (m *Mmu) init(console *Snes) {
	m.console = console
	m.wram.Init(wramSize)
	m.resetState()
}

func (m *Mmu) reset() {
	m.wram.Zero()
	m.resetState()
}

func (m *Mmu) resetState() {
	m.regs = [0x4000]uint8{}
	m.nmiEnabled = false
	m.inVBlank = false
	m.nmiFlag = false
}

func (m *Mmu) setVBlank(active bool) {
	m.inVBlank = active
	if active {
		m.nmiFlag = true
	}
}

func (m *Mmu) nmiEnable() bool {
	return m.nmiEnabled
}

// BusInt
func (m *Mmu) read8(addr uint32) uint8 {
	bank := uint8(addr >> 16)
	off := uint16(addr)
	cart := &m.console.cart

	// work ram proper lives in its own two banks on either mapping
	if bank == 0x7E || bank == 0x7F {
		return m.wram.Read8(uint32(bank&1)<<16 | uint32(off))
	}

	if cart.mapping == HighMapped {
		return m.readHigh(bank, off)
	}
	return m.readLow(bank, off)
}

func (m *Mmu) write8(addr uint32, val uint8) {
	bank := uint8(addr >> 16)
	off := uint16(addr)
	cart := &m.console.cart

	if bank == 0x7E || bank == 0x7F {
		m.wram.Write8(uint32(bank&1)<<16|uint32(off), val)
		return
	}

	if cart.mapping == HighMapped {
		m.writeHigh(bank, off, val)
		return
	}
	m.writeLow(bank, off, val)
}

func (m *Mmu) read16(addr uint32) uint16 {
	return uint16(m.read8(addr)) | uint16(m.read8(addr+1))<<8
}
func (m *Mmu) write16(addr uint32, val uint16) {
	m.write8(addr, uint8(val&0xFF))
	m.write8(addr+1, uint8(val>>8))
}

func (m *Mmu) readLow(bank uint8, off uint16) uint8 {
	systemBank := bank <= 0x3F || (bank >= 0x80 && bank <= 0xBF)

	switch {
	case systemBank && off < 0x2000:
		// low 8 KiB mirror
		return m.wram.Read8(uint32(off))
	case systemBank && off < 0x6000:
		return m.readReg(off)
	case systemBank && off < 0x8000:
		m.mappingMisses++
		return 0
	case bank >= 0x70 && bank <= 0x7D && off < 0x8000:
		return m.readSram(uint32(bank-0x70)<<15 | uint32(off))
	default:
		return m.console.cart.readMapped(loRomOffset(bank, off))
	}
}

func (m *Mmu) writeLow(bank uint8, off uint16, val uint8) {
	systemBank := bank <= 0x3F || (bank >= 0x80 && bank <= 0xBF)

	switch {
	case systemBank && off < 0x2000:
		m.wram.Write8(uint32(off), val)
	case systemBank && off < 0x6000:
		m.writeReg(off, val)
	case systemBank && off < 0x8000:
		m.mappingMisses++
	case bank >= 0x70 && bank <= 0x7D && off < 0x8000:
		m.writeSram(uint32(bank-0x70)<<15|uint32(off), val)
	default:
		// rom writes drop silently
	}
}

func loRomOffset(bank uint8, off uint16) uint32 {
	return uint32(bank&0x7F)<<15 | uint32(off&0x7FFF)
}

func (m *Mmu) readHigh(bank uint8, off uint16) uint8 {
	switch {
	case bank >= 0xC0 || (bank >= 0x40 && bank <= 0x7D):
		return m.console.cart.readMapped((uint32(bank)<<16 | uint32(off)) & 0x3FFFFF)
	case bank >= 0x20 && bank <= 0x3F && off >= 0x6000 && off < 0x8000 && m.console.cart.hasSaveRam:
		return m.readSram(uint32(bank-0x20)<<13 | uint32(off-0x6000))
	case off < 0x2000:
		return m.wram.Read8(uint32(off))
	case off < 0x6000:
		return m.readReg(off)
	case off >= 0x8000:
		return m.console.cart.readMapped((uint32(bank&0x3F)<<15 | uint32(off&0x7FFF)) & 0x3FFFFF)
	default:
		m.mappingMisses++
		return 0
	}
}

func (m *Mmu) writeHigh(bank uint8, off uint16, val uint8) {
	switch {
	case bank >= 0xC0 || (bank >= 0x40 && bank <= 0x7D):
		// rom writes drop silently
	case bank >= 0x20 && bank <= 0x3F && off >= 0x6000 && off < 0x8000 && m.console.cart.hasSaveRam:
		m.writeSram(uint32(bank-0x20)<<13|uint32(off-0x6000), val)
	case off < 0x2000:
		m.wram.Write8(uint32(off), val)
	case off < 0x6000:
		m.writeReg(off, val)
	case off >= 0x8000:
		// rom writes drop silently
	default:
		m.mappingMisses++
	}
}

func (m *Mmu) readSram(offset uint32) uint8 {
	val, ok := m.console.cart.readSram(offset)
	if !ok {
		m.sramMisses++
	}
	return val
}

func (m *Mmu) writeSram(offset uint32, val uint8) {
	if !m.console.cart.writeSram(offset, val) {
		m.sramMisses++
	}
}

// register file: reads
func (m *Mmu) readReg(addr uint16) uint8 {
	switch {
	case addr >= 0x2138 && addr <= 0x213B:
		// oam, vram and palette data read ports
		return m.console.ppu.readReg(addr)
	case addr >= 0x2140 && addr <= 0x217F:
		// the four ports mirror across the window
		return m.console.apu.readPort(uint8(addr & 3))
	case addr == 0x4016 || addr == 0x4017:
		return m.console.ctrl.read8(addr)
	case addr == 0x4210:
		val := uint8(0)
		if m.nmiFlag {
			val = 0x80
		}
		m.nmiFlag = false
		return val
	case addr == 0x4212:
		if m.inVBlank {
			return 0x80
		}
		return 0
	default:
		return m.regs[addr-0x2000]
	}
}

// register file: writes
func (m *Mmu) writeReg(addr uint16, val uint8) {
	m.regs[addr-0x2000] = val

	switch {
	case addr >= 0x2100 && addr <= 0x213F:
		m.console.ppu.writeReg(addr, val)
	case addr >= 0x2140 && addr <= 0x217F:
		m.console.apu.writePort(uint8(addr&3), val)
	case addr == 0x4016:
		m.console.ctrl.write8(addr, val)
	case addr == 0x4200:
		m.nmiEnabled = val&0x80 != 0
	case addr == 0x420B:
		m.console.dma.start(m, val)
	}
}

// dmaReg reads raw channel configuration without side effects
func (m *Mmu) dmaReg(addr uint16) uint8 {
	return m.regs[addr-0x2000]
}

func (m *Mmu) Serialise(s common.Serialiser) error {
	return s.Serialise(&m.wram, m.regs, m.nmiEnabled, m.inVBlank, m.nmiFlag,
		m.mappingMisses, m.sramMisses)
}
func (m *Mmu) DeSerialise(s common.Serialiser) error {
	var nmiEnabled, inVBlank, nmiFlag bool
	var mappingMisses, sramMisses uint64
	if err := s.DeSerialise(&m.wram, &m.regs, &nmiEnabled, &inVBlank, &nmiFlag,
		&mappingMisses, &sramMisses); err != nil {
		return err
	}
	m.nmiEnabled = nmiEnabled
	m.inVBlank = inVBlank
	m.nmiFlag = nmiFlag
	m.mappingMisses = mappingMisses
	m.sramMisses = sramMisses
	return nil
}

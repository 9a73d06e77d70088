package snes

import (
	"github.com/konstantinos193/gosnes/snes/common"
)

const (
	vramWords  = 0x8000 // 64 KiB of 16-bit words
	cgramWords = 256
	oamBytes   = 544 // 128 sprites * 4 + the high attribute table
)

type bgLayer struct {
	Tile16   bool
	MapBase  uint16 // word address
	MapSize  uint8
	CharBase uint16 // word address
}

type Ppu struct {
	vram  []uint16
	cgram []uint16
	oam   []uint8

	forcedBlank bool
	brightness  uint8
	bgMode      uint8
	layers      [4]bgLayer
	mainMask    uint8
	subMask     uint8

	// vram access state
	vramAddr  uint16
	vramStep  uint16
	incOnHigh bool
	readLatch uint16

	// palette access state: two writes commit one entry
	cgAddr      uint8
	cgLow       uint8
	cgPhase     bool
	cgReadPhase bool

	// oam access state
	oamAddr uint16

	fb *common.Framebuffer

	verbose bool
}

func (p *Ppu) init(fb *common.Framebuffer, verbose bool) {
	p.fb = fb
	p.verbose = verbose
	p.vram = make([]uint16, vramWords)
	p.cgram = make([]uint16, cgramWords)
	p.oam = make([]uint8, oamBytes)
	p.resetState()
}

func (p *Ppu) reset() {
	for i := range p.vram {
		p.vram[i] = 0
	}
	for i := range p.cgram {
		p.cgram[i] = 0
	}
	for i := range p.oam {
		p.oam[i] = 0
	}
	p.resetState()
}

func (p *Ppu) resetState() {
	p.forcedBlank = true
	p.brightness = 0
	p.bgMode = 0
	p.layers = [4]bgLayer{}
	p.mainMask = 0
	p.subMask = 0
	p.vramAddr = 0
	p.vramStep = 1
	p.incOnHigh = false
	p.readLatch = 0
	p.cgAddr = 0
	p.cgLow = 0
	p.cgPhase = false
	p.cgReadPhase = false
	p.oamAddr = 0
}

var vramSteps = [4]uint16{1, 32, 128, 128}

func (p *Ppu) writeReg(addr uint16, val uint8) {
	switch addr {
	// display control: brightness and forced blank
	case 0x2100:
		p.brightness = val & 0x0F
		p.forcedBlank = val&0x80 != 0

	// oam address, word granularity
	case 0x2102:
		p.oamAddr = (p.oamAddr & 0x0200) | uint16(val)<<1
	case 0x2103:
		p.oamAddr = (p.oamAddr & 0x01FE) | uint16(val&1)<<9
	case 0x2104:
		p.oam[p.oamAddr%oamBytes] = val
		p.oamAddr = (p.oamAddr + 1) % oamBytes

	// background mode and tile sizes
	case 0x2105:
		p.bgMode = val & 0x07
		for i := range p.layers {
			p.layers[i].Tile16 = val&(0x10<<i) != 0
		}

	// per layer tilemap base and size
	case 0x2107, 0x2108, 0x2109, 0x210A:
		layer := &p.layers[addr-0x2107]
		layer.MapBase = uint16(val>>2) * 0x400
		layer.MapSize = val & 0x3

	// character data bases, packed two layers per register
	case 0x210B:
		p.layers[0].CharBase = uint16(val&0x0F) * 0x1000
		p.layers[1].CharBase = uint16(val>>4) * 0x1000
	case 0x210C:
		p.layers[2].CharBase = uint16(val&0x0F) * 0x1000
		p.layers[3].CharBase = uint16(val>>4) * 0x1000

	// vram access mode
	case 0x2115:
		p.vramStep = vramSteps[val&0x3]
		p.incOnHigh = val&0x80 != 0

	// vram word address
	case 0x2116:
		p.vramAddr = (p.vramAddr & 0xFF00) | uint16(val)
		p.readLatch = p.vram[p.vramAddr%vramWords]
	case 0x2117:
		p.vramAddr = (p.vramAddr & 0x00FF) | uint16(val)<<8
		p.readLatch = p.vram[p.vramAddr%vramWords]

	// vram data, auto-increment per 0x2115
	case 0x2118:
		word := &p.vram[p.vramAddr%vramWords]
		*word = (*word & 0xFF00) | uint16(val)
		if !p.incOnHigh {
			p.vramAddr += p.vramStep
		}
	case 0x2119:
		word := &p.vram[p.vramAddr%vramWords]
		*word = (*word & 0x00FF) | uint16(val)<<8
		if p.incOnHigh {
			p.vramAddr += p.vramStep
		}

	// palette address resets the write latch
	case 0x2121:
		p.cgAddr = val
		p.cgPhase = false
		p.cgReadPhase = false

	// palette data: low byte first, then high byte commits
	case 0x2122:
		if !p.cgPhase {
			p.cgLow = val
			p.cgPhase = true
		} else {
			p.cgram[p.cgAddr] = uint16(val&0x7F)<<8 | uint16(p.cgLow)
			p.cgAddr++
			p.cgPhase = false
		}

	// screen layer masks
	case 0x212C:
		p.mainMask = val & 0x1F
	case 0x212D:
		p.subMask = val & 0x1F
	}
}

func (p *Ppu) readReg(addr uint16) uint8 {
	switch addr {
	case 0x2138:
		val := p.oam[p.oamAddr%oamBytes]
		p.oamAddr = (p.oamAddr + 1) % oamBytes
		return val

	// vram data reads go through the prefetch latch
	case 0x2139:
		val := uint8(p.readLatch)
		if !p.incOnHigh {
			p.readLatch = p.vram[p.vramAddr%vramWords]
			p.vramAddr += p.vramStep
		}
		return val
	case 0x213A:
		val := uint8(p.readLatch >> 8)
		if p.incOnHigh {
			p.readLatch = p.vram[p.vramAddr%vramWords]
			p.vramAddr += p.vramStep
		}
		return val

	// palette reads mirror the two-phase write latch
	case 0x213B:
		entry := p.cgram[p.cgAddr]
		if !p.cgReadPhase {
			p.cgReadPhase = true
			return uint8(entry)
		}
		p.cgReadPhase = false
		p.cgAddr++
		return uint8(entry >> 8)
	}
	return 0
}

func (p *Ppu) Serialise(s common.Serialiser) error {
	return s.Serialise(p.vram, p.cgram, p.oam,
		p.forcedBlank, p.brightness, p.bgMode, p.layers, p.mainMask, p.subMask,
		p.vramAddr, p.vramStep, p.incOnHigh, p.readLatch,
		p.cgAddr, p.cgLow, p.cgPhase, p.cgReadPhase, p.oamAddr)
}
func (p *Ppu) DeSerialise(s common.Serialiser) error {
	var forcedBlank, incOnHigh, cgPhase, cgReadPhase bool
	var brightness, bgMode, mainMask, subMask, cgAddr, cgLow uint8
	var layers [4]bgLayer
	var vramAddr, vramStep, readLatch, oamAddr uint16
	if err := s.DeSerialise(&p.vram, &p.cgram, &p.oam,
		&forcedBlank, &brightness, &bgMode, &layers, &mainMask, &subMask,
		&vramAddr, &vramStep, &incOnHigh, &readLatch,
		&cgAddr, &cgLow, &cgPhase, &cgReadPhase, &oamAddr); err != nil {
		return err
	}
	p.forcedBlank = forcedBlank
	p.brightness = brightness
	p.bgMode = bgMode
	p.layers = layers
	p.mainMask = mainMask
	p.subMask = subMask
	p.vramAddr = vramAddr
	p.vramStep = vramStep
	p.incOnHigh = incOnHigh
	p.readLatch = readLatch
	p.cgAddr = cgAddr
	p.cgLow = cgLow
	p.cgPhase = cgPhase
	p.cgReadPhase = cgReadPhase
	p.oamAddr = oamAddr
	return nil
}

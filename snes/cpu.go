package snes

import (
	"log"

	"github.com/konstantinos193/gosnes/snes/common"
)

// interrupt vectors
const (
	vecCopNative = 0xFFE4
	vecBrkNative = 0xFFE6
	vecNmiNative = 0xFFEA
	vecIrqNative = 0xFFEE

	vecCopEmu   = 0xFFF4
	vecNmiEmu   = 0xFFFA
	vecResetEmu = 0xFFFC
	vecIrqEmu   = 0xFFFE
	vecBrkEmu   = 0xFFFE
)

type Instruction struct {
	opCycles uint8

	opCode uint8
	opName string

	// evaluator function
	eval func()
	// false when the table entry has no evaluator
	implemented bool
}

type Cpu struct {
	busInt

	ins [256]Instruction

	rg Registers

	clk int

	interrupts uint8
	waiting    bool
	stopped    bool

	// opcodes hit that the table has no evaluator for
	decodeMisses uint64

	verbose bool
}

// interrupt
func (c *Cpu) raise(flag uint8) {
	c.interrupts |= flag
}

func (c *Cpu) clear(flag uint8) {
	c.interrupts &= flag ^ 0xFF
}

func (c *Cpu) init(busInt busInt, verbose bool) {
	c.verbose = verbose
	c.busInt = busInt

	c.setupIns()
	c.reset()
}

func (c *Cpu) reset() {
	c.rg.Init()
	c.rg.Pc = c.read16(vecResetEmu)
	c.interrupts = 0
	c.waiting = false
	c.stopped = false
	c.clk = 0
}

func (c *Cpu) Logf(format string, a ...interface{}) {
	if c.verbose {
		log.Printf(format, a...)
	}
}

// step executes one instruction (or services one interrupt) and
// returns the cpu cycles it consumed
func (c *Cpu) step() int {
	clk := c.clk

	if c.stopped {
		c.clk += 2
		return c.clk - clk
	}

	if c.interrupts&cpuIntNMI != 0 {
		// edge triggered: taking it clears it
		c.interrupts &^= cpuIntNMI
		c.waiting = false
		c.interrupt(vecNmiNative, vecNmiEmu)
		return c.clk - clk
	} else if c.interrupts&cpuIntIRQ != 0 && !c.rg.Ps.has(bI) {
		// level triggered: the device keeps the line up
		c.waiting = false
		c.interrupt(vecIrqNative, vecIrqEmu)
		return c.clk - clk
	}

	if c.waiting {
		c.clk += 2
		return c.clk - clk
	}

	opCode := c.fetch8()
	ins := &c.ins[opCode]

	if !ins.implemented {
		// silent no-op per the failure contract; counted so the
		// embedder can see it happened
		c.decodeMisses++
		c.Logf("0x%02x:%04x: unimplemented opcode 0x%02x (%s)", c.rg.Pb, c.rg.Pc-1, opCode, ins.opName)
		c.clk += 2
		return c.clk - clk
	}

	if c.verbose {
		c.Logf("0x%02x:%04x: 0x%02x - %s", c.rg.Pb, c.rg.Pc-1, opCode, ins.opName)
	}

	ins.eval()
	c.clk += int(ins.opCycles)

	return c.clk - clk
}

func (c *Cpu) interrupt(vecNative, vecEmu uint16) {
	if !c.rg.E {
		c.push8(c.rg.Pb)
		c.push16(c.rg.Pc)
		c.push8(c.rg.Ps.read())
		c.rg.Ps.set(bI)
		c.rg.Ps.clr(bD)
		c.rg.Pb = 0
		c.rg.Pc = c.read16(uint32(vecNative))
	} else {
		c.push16(c.rg.Pc)
		c.push8(c.rg.Ps.read())
		c.rg.Ps.set(bI)
		c.rg.Ps.clr(bD)
		c.rg.Pb = 0
		c.rg.Pc = c.read16(uint32(vecEmu))
	}
	c.clk += 7
}

// bus helpers; 16/24-bit reads walk the 24-bit address space
func (c *Cpu) read16(addr uint32) uint16 {
	return uint16(c.read8(addr&0xFFFFFF)) | uint16(c.read8((addr+1)&0xFFFFFF))<<8
}
func (c *Cpu) read24(addr uint32) uint32 {
	return uint32(c.read16(addr)) | uint32(c.read8((addr+2)&0xFFFFFF))<<16
}
func (c *Cpu) write16(addr uint32, val uint16) {
	c.write8(addr&0xFFFFFF, uint8(val))
	c.write8((addr+1)&0xFFFFFF, uint8(val>>8))
}

// program fetches come from the program bank
func (c *Cpu) fetch8() uint8 {
	val := c.read8(uint32(c.rg.Pb)<<16 | uint32(c.rg.Pc))
	c.rg.Pc++
	return val
}
func (c *Cpu) fetch16() uint16 {
	return uint16(c.fetch8()) | uint16(c.fetch8())<<8
}
func (c *Cpu) fetch24() uint32 {
	return uint32(c.fetch16()) | uint32(c.fetch8())<<16
}

// width discipline
func (c *Cpu) m8() bool {
	return c.rg.E || c.rg.Ps.has(bM)
}
func (c *Cpu) x8() bool {
	return c.rg.E || c.rg.Ps.has(bX)
}

// accumulator and index access honoring the width flags
func (c *Cpu) getA() uint16 {
	if c.m8() {
		return c.rg.A & 0xFF
	}
	return c.rg.A
}
func (c *Cpu) setA(val uint16) {
	if c.m8() {
		c.rg.A = c.rg.A&0xFF00 | val&0xFF
	} else {
		c.rg.A = val
	}
}
func (c *Cpu) getX() uint16 {
	if c.x8() {
		return c.rg.X & 0xFF
	}
	return c.rg.X
}
func (c *Cpu) setX(val uint16) {
	if c.x8() {
		c.rg.X = val & 0xFF
	} else {
		c.rg.X = val
	}
}
func (c *Cpu) getY() uint16 {
	if c.x8() {
		return c.rg.Y & 0xFF
	}
	return c.rg.Y
}
func (c *Cpu) setY(val uint16) {
	if c.x8() {
		c.rg.Y = val & 0xFF
	} else {
		c.rg.Y = val
	}
}

// enforceWidths applies the emulation and index width invariants after
// any write to the status register or the emulation flag
func (c *Cpu) enforceWidths() {
	if c.rg.E {
		c.rg.Ps.set(bM | bX)
		c.rg.Sp = 0x0100 | c.rg.Sp&0xFF
	}
	if c.x8() {
		// narrowing truncates and the high byte stays gone
		c.rg.X &= 0xFF
		c.rg.Y &= 0xFF
	}
}

// operand access by the memory width
func (c *Cpu) loadM(addr uint32) uint16 {
	if c.m8() {
		return uint16(c.read8(addr))
	}
	return c.read16(addr)
}
func (c *Cpu) storeM(addr uint32, val uint16) {
	if c.m8() {
		c.write8(addr, uint8(val))
	} else {
		c.write16(addr, val)
	}
}
func (c *Cpu) loadX(addr uint32) uint16 {
	if c.x8() {
		return uint16(c.read8(addr))
	}
	return c.read16(addr)
}
func (c *Cpu) storeX(addr uint32, val uint16) {
	if c.x8() {
		c.write8(addr, uint8(val))
	} else {
		c.write16(addr, val)
	}
}

// flag helpers: zero on the full effective-width result, negative on
// its top bit
func (c *Cpu) setZN(val uint16, eightBit bool) {
	if eightBit {
		val &= 0xFF
		c.rg.Ps.setIf(bN, val&0x80 != 0)
	} else {
		c.rg.Ps.setIf(bN, val&0x8000 != 0)
	}
	c.rg.Ps.setIf(bZ, val == 0)
}
func (c *Cpu) setZNm(val uint16) {
	c.setZN(val, c.m8())
}
func (c *Cpu) setZNx(val uint16) {
	c.setZN(val, c.x8())
}

// stack; in emulation mode the pointer is pinned to page 1
func (c *Cpu) push8(val uint8) {
	c.write8(uint32(c.rg.Sp), val)
	c.rg.Sp--
	if c.rg.E {
		c.rg.Sp = 0x0100 | c.rg.Sp&0xFF
	}
}
func (c *Cpu) push16(val uint16) {
	c.push8(uint8(val >> 8))
	c.push8(uint8(val))
}
func (c *Cpu) pull8() uint8 {
	c.rg.Sp++
	if c.rg.E {
		c.rg.Sp = 0x0100 | c.rg.Sp&0xFF
	}
	return c.read8(uint32(c.rg.Sp))
}
func (c *Cpu) pull16() uint16 {
	return uint16(c.pull8()) | uint16(c.pull8())<<8
}

func (c *Cpu) Serialise(s common.Serialiser) error {
	return s.Serialise(&c.rg, c.clk, c.interrupts, c.waiting, c.stopped, c.decodeMisses)
}
func (c *Cpu) DeSerialise(s common.Serialiser) error {
	var rg Registers
	var clk int
	var interrupts uint8
	var waiting, stopped bool
	var decodeMisses uint64
	if err := s.DeSerialise(&rg, &clk, &interrupts, &waiting, &stopped, &decodeMisses); err != nil {
		return err
	}
	c.rg = rg
	c.clk = clk
	c.interrupts = interrupts
	c.waiting = waiting
	c.stopped = stopped
	c.decodeMisses = decodeMisses
	return nil
}

package snes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetVector(t *testing.T) {
	console := programConsole(t, []byte{0xEA})

	rg := &console.cpu.rg
	assert.Equal(t, uint16(0x8000), rg.Pc)
	assert.Equal(t, uint8(0), rg.Pb)
	assert.Equal(t, uint16(0x01FF), rg.Sp)
	assert.True(t, rg.E)
	assert.True(t, rg.Ps.has(bM|bX|bI))
	assert.False(t, rg.Ps.has(bD))
}

func TestLdaStaDisplayRegister(t *testing.T) {
	// LDA #$42; STA $2100
	console := programConsole(t, []byte{0xA9, 0x42, 0x8D, 0x00, 0x21})

	step(console, 2)
	assert.Equal(t, uint8(2), console.ppu.brightness)
	assert.False(t, console.ppu.forcedBlank)
}

func TestWidthSwitchTruncatesStore(t *testing.T) {
	// CLC; XCE; REP #$20; LDA #$1234; SEP #$20; STA $10
	console := programConsole(t, []byte{
		0x18, 0xFB, 0xC2, 0x20, 0xA9, 0x34, 0x12, 0xE2, 0x20, 0x85, 0x10,
	})

	step(console, 6)
	assert.Equal(t, uint8(0x34), console.mmu.wram.Read8(0x10))
	assert.Equal(t, uint8(0x00), console.mmu.wram.Read8(0x11))
}

func TestIndexWidthTruncates(t *testing.T) {
	// CLC; XCE; REP #$10; LDX #$1234; SEP #$10
	console := programConsole(t, []byte{
		0x18, 0xFB, 0xC2, 0x10, 0xA2, 0x34, 0x12, 0xE2, 0x10,
	})

	step(console, 4)
	require.Equal(t, uint16(0x1234), console.cpu.rg.X)
	step(console, 1)
	// narrowing drops the high byte for good
	assert.Equal(t, uint16(0x0034), console.cpu.rg.X)
}

func TestRepInEmulationCannotWiden(t *testing.T) {
	// REP #$30 straight out of reset: the widths stay pinned
	console := programConsole(t, []byte{0xC2, 0x30})

	step(console, 1)
	assert.True(t, console.cpu.rg.Ps.has(bM|bX))
}

func TestEmulationStackStaysInPageOne(t *testing.T) {
	// LDX #$00; TXS; PHA; PHA; PLA
	console := programConsole(t, []byte{0xA2, 0x00, 0x9A, 0x48, 0x48, 0x68})

	step(console, 2)
	require.Equal(t, uint16(0x0100), console.cpu.rg.Sp)

	for i := 0; i < 3; i++ {
		step(console, 1)
		assert.Equal(t, uint8(0x01), uint8(console.cpu.rg.Sp>>8))
	}
}

func TestXceSwapsCarryAndEmulation(t *testing.T) {
	// CLC; XCE; SEC; XCE
	console := programConsole(t, []byte{0x18, 0xFB, 0x38, 0xFB})

	step(console, 2)
	rg := &console.cpu.rg
	assert.False(t, rg.E)
	assert.True(t, rg.Ps.has(bC)) // old emulation flag
	assert.True(t, rg.Ps.has(bM|bX))

	step(console, 2)
	assert.True(t, rg.E)
	assert.False(t, rg.Ps.has(bC))
	assert.Equal(t, uint8(0x01), uint8(rg.Sp>>8))
}

func TestAdcOverflow(t *testing.T) {
	// LDA #$7F; CLC; ADC #$01
	console := programConsole(t, []byte{0xA9, 0x7F, 0x18, 0x69, 0x01})

	step(console, 3)
	rg := &console.cpu.rg
	assert.Equal(t, uint16(0x80), rg.A&0xFF)
	assert.True(t, rg.Ps.has(bV))
	assert.True(t, rg.Ps.has(bN))
	assert.False(t, rg.Ps.has(bC))
	assert.False(t, rg.Ps.has(bZ))
}

func TestAdc16Bit(t *testing.T) {
	// CLC; XCE; REP #$20; LDA #$FFFF; CLC; ADC #$0001
	console := programConsole(t, []byte{
		0x18, 0xFB, 0xC2, 0x20, 0xA9, 0xFF, 0xFF, 0x18, 0x69, 0x01, 0x00,
	})

	step(console, 6)
	rg := &console.cpu.rg
	assert.Equal(t, uint16(0x0000), rg.A)
	assert.True(t, rg.Ps.has(bZ))
	assert.True(t, rg.Ps.has(bC))
	assert.False(t, rg.Ps.has(bN))
}

func TestAdcDecimal(t *testing.T) {
	// SED; LDA #$09; CLC; ADC #$01
	console := programConsole(t, []byte{0xF8, 0xA9, 0x09, 0x18, 0x69, 0x01})

	step(console, 4)
	assert.Equal(t, uint16(0x10), console.cpu.rg.A&0xFF)
}

func TestSbcDecimal(t *testing.T) {
	// SED; LDA #$10; SEC; SBC #$01
	console := programConsole(t, []byte{0xF8, 0xA9, 0x10, 0x38, 0xE9, 0x01})

	step(console, 4)
	rg := &console.cpu.rg
	assert.Equal(t, uint16(0x09), rg.A&0xFF)
	assert.True(t, rg.Ps.has(bC)) // no borrow
}

func TestSbcBinary(t *testing.T) {
	// LDA #$10; SEC; SBC #$20
	console := programConsole(t, []byte{0xA9, 0x10, 0x38, 0xE9, 0x20})

	step(console, 3)
	rg := &console.cpu.rg
	assert.Equal(t, uint16(0xF0), rg.A&0xFF)
	assert.False(t, rg.Ps.has(bC)) // borrow happened
	assert.True(t, rg.Ps.has(bN))
}

func TestCompareSetsFlags(t *testing.T) {
	// LDA #$40; CMP #$40; CMP #$50
	console := programConsole(t, []byte{0xA9, 0x40, 0xC9, 0x40, 0xC9, 0x50})

	step(console, 2)
	rg := &console.cpu.rg
	assert.True(t, rg.Ps.has(bZ))
	assert.True(t, rg.Ps.has(bC))

	step(console, 1)
	assert.False(t, rg.Ps.has(bZ))
	assert.False(t, rg.Ps.has(bC))
	assert.True(t, rg.Ps.has(bN))
}

func TestBranchesAndLoops(t *testing.T) {
	// LDX #$03; loop: DEX; BNE loop; STX $20
	console := programConsole(t, []byte{0xA2, 0x03, 0xCA, 0xD0, 0xFD, 0x86, 0x20})

	step(console, 8)
	assert.Equal(t, uint16(0), console.cpu.rg.X)
	assert.Equal(t, uint8(0), console.mmu.wram.Read8(0x20))
	assert.Equal(t, uint16(0x8007), console.cpu.rg.Pc)
}

func TestJsrRts(t *testing.T) {
	program := make([]byte, 0x20)
	// JSR $8010; STA $30
	copy(program, []byte{0x20, 0x10, 0x80, 0x85, 0x30})
	// sub: LDA #$77; RTS
	copy(program[0x10:], []byte{0xA9, 0x77, 0x60})

	console := programConsole(t, program)
	step(console, 3)
	assert.Equal(t, uint16(0x8003), console.cpu.rg.Pc)
	step(console, 1)
	assert.Equal(t, uint8(0x77), console.mmu.wram.Read8(0x30))
}

func TestJslRtl(t *testing.T) {
	program := make([]byte, 0x20)
	// CLC; XCE; JSL $008010; STA $30
	copy(program, []byte{0x18, 0xFB, 0x22, 0x10, 0x80, 0x00, 0x85, 0x30})
	// sub: LDA #$66; RTL
	copy(program[0x10:], []byte{0xA9, 0x66, 0x6B})

	console := programConsole(t, program)
	step(console, 5)
	assert.Equal(t, uint16(0x8006), console.cpu.rg.Pc)
	assert.Equal(t, uint8(0), console.cpu.rg.Pb)
	step(console, 1)
	assert.Equal(t, uint8(0x66), console.mmu.wram.Read8(0x30))
}

func TestShiftsAndRotates(t *testing.T) {
	// LDA #$81; ASL; ROL
	console := programConsole(t, []byte{0xA9, 0x81, 0x0A, 0x2A})

	step(console, 2)
	rg := &console.cpu.rg
	assert.Equal(t, uint16(0x02), rg.A&0xFF)
	assert.True(t, rg.Ps.has(bC))

	step(console, 1)
	// the carry rotates back in
	assert.Equal(t, uint16(0x05), rg.A&0xFF)
	assert.False(t, rg.Ps.has(bC))
}

func TestDirectPageIndexing(t *testing.T) {
	// LDX #$04; LDA #$99; STA $10,X; LDA $14
	console := programConsole(t, []byte{
		0xA2, 0x04, 0xA9, 0x99, 0x95, 0x10, 0xA5, 0x14,
	})

	step(console, 4)
	assert.Equal(t, uint16(0x99), console.cpu.rg.A&0xFF)
	assert.Equal(t, uint8(0x99), console.mmu.wram.Read8(0x14))
}

func TestBlockMove(t *testing.T) {
	// CLC; XCE; REP #$30; LDA #$0003; LDX #$0200; LDY #$0300; MVN $00,$00
	console := programConsole(t, []byte{
		0x18, 0xFB, 0xC2, 0x30,
		0xA9, 0x03, 0x00,
		0xA2, 0x00, 0x02,
		0xA0, 0x00, 0x03,
		0x54, 0x00, 0x00,
	})

	for i := uint32(0); i < 4; i++ {
		console.mmu.wram.Write8(0x200+i, uint8(0xD0+i))
	}

	step(console, 7)
	rg := &console.cpu.rg
	for i := uint32(0); i < 4; i++ {
		require.Equal(t, uint8(0xD0+i), console.mmu.wram.Read8(0x300+i))
	}
	assert.Equal(t, uint16(0xFFFF), rg.A)
	assert.Equal(t, uint16(0x0204), rg.X)
	assert.Equal(t, uint16(0x0304), rg.Y)
}

func TestUnknownOpcodeIsSilent(t *testing.T) {
	console := programConsole(t, []byte{0xEA})

	// force a hole into the table and hit it
	console.cpu.ins[0xEA] = Instruction{opCode: 0xEA, opName: "???"}

	pc := console.cpu.rg.Pc
	cycles := console.cpu.step()

	assert.Equal(t, 2, cycles)
	assert.Equal(t, pc+1, console.cpu.rg.Pc)
	assert.Equal(t, uint64(1), console.cpu.decodeMisses)
}

func TestBrkVector(t *testing.T) {
	program := make([]byte, 0x20)
	copy(program, []byte{0x00, 0x00}) // BRK + signature

	image := programImage(program)
	// emulation brk vector at 0x00:FFFE -> offset 0x7FFE
	image[0x7FFE] = 0x10
	image[0x7FFF] = 0x80
	fixChecksum(image, loHeaderBase)

	console := testConsole(t, image)
	step(console, 1)

	rg := &console.cpu.rg
	assert.Equal(t, uint16(0x8010), rg.Pc)
	assert.True(t, rg.Ps.has(bI))

	// the pushed status carries the break bit
	pushed := console.mmu.wram.Read8(uint32(rg.Sp) + 1)
	assert.NotZero(t, pushed&bX)
}

func TestWaiWakesOnInterrupt(t *testing.T) {
	program := []byte{0xCB, 0xEA} // WAI; NOP

	image := programImage(program)
	image[0x7FFA] = 0x10 // emulation nmi vector
	image[0x7FFB] = 0x80
	fixChecksum(image, loHeaderBase)

	console := testConsole(t, image)
	step(console, 1)
	require.True(t, console.cpu.waiting)

	// idles while nothing is pending
	console.cpu.step()
	require.True(t, console.cpu.waiting)

	console.cpu.raise(cpuIntNMI)
	console.cpu.step()
	assert.False(t, console.cpu.waiting)
	assert.Equal(t, uint16(0x8010), console.cpu.rg.Pc)
}

func TestStackOpsRoundTrip(t *testing.T) {
	// LDA #$5A; PHA; LDA #$00; PLA
	console := programConsole(t, []byte{0xA9, 0x5A, 0x48, 0xA9, 0x00, 0x68})

	step(console, 4)
	rg := &console.cpu.rg
	assert.Equal(t, uint16(0x5A), rg.A&0xFF)
	assert.Equal(t, uint16(0x01FF), rg.Sp)
	assert.False(t, rg.Ps.has(bZ))
}

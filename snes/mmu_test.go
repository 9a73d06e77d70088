package snes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWramMirror(t *testing.T) {
	console := testConsole(t, buildImage(0x10000, loHeaderBase, 0x20, nil))

	console.mmu.write8(0x7E0010, 0xAB)
	assert.Equal(t, uint8(0xAB), console.mmu.read8(0x000010))

	// the low 8 KiB of every system bank aliases the same bytes
	writes := []uint32{0x000000, 0x3F1FFF, 0x801234, 0xBF0777}
	for i, addr := range writes {
		console.mmu.write8(addr, uint8(0x40+i))
	}
	for _, addr := range writes {
		assert.Equal(t, console.mmu.read8(addr&0x1FFF), console.mmu.read8(addr), "addr 0x%06x", addr)
	}
}

func TestWramFullBanks(t *testing.T) {
	console := testConsole(t, buildImage(0x10000, loHeaderBase, 0x20, nil))

	// above the mirror window only banks 0x7E/0x7F see work ram
	console.mmu.write8(0x7F8000, 0x12)
	assert.Equal(t, uint8(0x12), console.mmu.read8(0x7F8000))
	assert.NotEqual(t, uint8(0x12), console.mmu.read8(0x7E8000))
}

func TestDisplayRegisterRouting(t *testing.T) {
	console := testConsole(t, buildImage(0x10000, loHeaderBase, 0x20, nil))

	console.mmu.write8(0x002100, 0x02)
	assert.Equal(t, uint8(2), console.ppu.brightness)
	assert.False(t, console.ppu.forcedBlank)

	console.mmu.write8(0x002100, 0x8F)
	assert.Equal(t, uint8(15), console.ppu.brightness)
	assert.True(t, console.ppu.forcedBlank)
}

func TestNmiFlagClearsOnRead(t *testing.T) {
	console := testConsole(t, buildImage(0x10000, loHeaderBase, 0x20, nil))

	console.mmu.setVBlank(true)
	assert.Equal(t, uint8(0x80), console.mmu.read8(0x004210))
	assert.Equal(t, uint8(0x00), console.mmu.read8(0x004210))

	// the h/v status bit tracks the blanking interval itself
	assert.Equal(t, uint8(0x80), console.mmu.read8(0x004212))
	console.mmu.setVBlank(false)
	assert.Equal(t, uint8(0x00), console.mmu.read8(0x004212))
}

func TestUnmappedReads(t *testing.T) {
	console := testConsole(t, buildImage(0x10000, loHeaderBase, 0x20, nil))

	misses := console.mmu.mappingMisses
	assert.Equal(t, uint8(0), console.mmu.read8(0x006123))
	assert.Equal(t, misses+1, console.mmu.mappingMisses)
}

func TestApuPortEcho(t *testing.T) {
	console := testConsole(t, buildImage(0x10000, loHeaderBase, 0x20, nil))

	console.mmu.write8(0x002140, 0xCC)
	assert.Equal(t, uint8(0xCC), console.mmu.read8(0x002140))
	// the four ports mirror through the whole window
	assert.Equal(t, uint8(0xCC), console.mmu.read8(0x002178))
}

func TestControllerShiftRegister(t *testing.T) {
	console := testConsole(t, buildImage(0x10000, loHeaderBase, 0x20, nil))

	console.SetButton(ButtonB, true)
	console.SetButton(ButtonStart, true)

	// strobe, then shift the 16-bit report out of 0x4016
	console.mmu.write8(0x004016, 1)
	console.mmu.write8(0x004016, 0)

	var report []uint8
	for i := 0; i < 12; i++ {
		report = append(report, console.mmu.read8(0x004016))
	}
	require.Equal(t, []uint8{1, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0}, report)

	// drained pads report high
	for i := 0; i < 4; i++ {
		console.mmu.read8(0x004016)
	}
	assert.Equal(t, uint8(1), console.mmu.read8(0x004016))
}

package snes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTooSmall(t *testing.T) {
	cart := Cartridge{}
	err := cart.init(make([]byte, 0x4000))
	assert.ErrorIs(t, err, ErrTooSmall)
}

func TestLoadHeaderless(t *testing.T) {
	// a plausible size full of zeros is still not a cartridge
	cart := Cartridge{}
	err := cart.init(make([]byte, 0x8000))
	assert.ErrorIs(t, err, ErrUnreadableHeader)
}

func TestLoadLowMapped(t *testing.T) {
	image := buildImage(0x10000, loHeaderBase, 0x20, nil)

	cart := Cartridge{}
	require.NoError(t, cart.init(image))

	assert.Equal(t, LowMapped, cart.Mapping())
	assert.Equal(t, "TEST", cart.Title())
	assert.True(t, cart.checksumOk)
	assert.False(t, cart.hasSaveRam)
}

func TestLoadHighMapped(t *testing.T) {
	image := buildImage(0x10000, hiHeaderBase, 0x21, nil)

	cart := Cartridge{}
	require.NoError(t, cart.init(image))

	assert.Equal(t, HighMapped, cart.Mapping())
	assert.Equal(t, "TEST", cart.Title())
}

func TestChecksumDetection(t *testing.T) {
	image := buildImage(0x10000, loHeaderBase, 0x20, nil)

	cart := Cartridge{}
	require.NoError(t, cart.init(image))
	require.True(t, cart.checksumOk)

	// a single byte flip in either field breaks the invariant but
	// never the load
	for _, off := range []int{headerChecksumOff, headerChecksumOff + 1,
		headerComplementOff, headerComplementOff + 1} {
		flipped := make([]byte, len(image))
		copy(flipped, image)
		flipped[loHeaderBase+off] ^= 0x01

		cart := Cartridge{}
		require.NoError(t, cart.init(flipped))
		assert.False(t, cart.checksumOk, "flip at header offset 0x%02x", off)
	}
}

func TestCopierHeaderStrip(t *testing.T) {
	image := buildImage(0x10000, loHeaderBase, 0x20, nil)
	prefixed := append(make([]byte, copierHeaderSize), image...)

	cart := Cartridge{}
	require.NoError(t, cart.init(prefixed))

	assert.Equal(t, "TEST", cart.Title())
	assert.Equal(t, uint32(0x10000), cart.romSize())
}

func TestSaveRamSizing(t *testing.T) {
	image := buildImage(0x10000, loHeaderBase, 0x20, nil)
	image[loHeaderBase+headerSramSizeOff] = 0x03 // 8 KiB
	fixChecksum(image, loHeaderBase)

	cart := Cartridge{}
	require.NoError(t, cart.init(image))
	assert.True(t, cart.hasSaveRam)
	assert.Equal(t, uint32(0x2000), cart.sram.Size())

	// the size code clamps at 512 KiB
	image[loHeaderBase+headerSramSizeOff] = 0x1F
	fixChecksum(image, loHeaderBase)
	require.NoError(t, cart.init(image))
	assert.Equal(t, uint32(maxSaveRamSize), cart.sram.Size())
}

// every machine address that maps into cartridge space must surface
// the byte the mapping formula names
func TestLowMappedRoundTrip(t *testing.T) {
	image := buildImage(0x40000, loHeaderBase, 0x20, func(i int) byte {
		return byte(i * 31)
	})
	fixChecksum(image, loHeaderBase)
	console := testConsole(t, image)

	samples := []struct {
		addr   uint32
		offset uint32
	}{
		{0x008000, 0x0000},
		{0x00FFFF, 0x7FFF},
		{0x018000, 0x8000},
		{0x808000, 0x0000}, // mirror bank
		{0x428000, 0x10000 | 0x0000},
		{0x07ABCD, (0x07 << 15) | 0x2BCD},
	}
	for _, s := range samples {
		expect := image[s.offset%uint32(len(image))]
		assert.Equal(t, expect, console.mmu.read8(s.addr), "addr 0x%06x", s.addr)
	}
}

func TestHighMappedRoundTrip(t *testing.T) {
	image := buildImage(0x40000, hiHeaderBase, 0x21, func(i int) byte {
		return byte(i * 31)
	})
	fixChecksum(image, hiHeaderBase)
	console := testConsole(t, image)

	samples := []struct {
		addr   uint32
		offset uint32
	}{
		{0xC00000, 0x00000},
		{0xC01234, 0x01234},
		{0xC28000, 0x28000},
		{0x400000, 0x00000},
		{0x008000, 0x0000}, // upper half mirror
		{0x018000, (0x01 << 15) | 0x0000},
	}
	for _, s := range samples {
		expect := image[s.offset%uint32(len(image))]
		assert.Equal(t, expect, console.mmu.read8(s.addr), "addr 0x%06x", s.addr)
	}
}

func TestRomWritesDropped(t *testing.T) {
	image := buildImage(0x10000, loHeaderBase, 0x20, nil)
	console := testConsole(t, image)

	before := console.mmu.read8(0x008000)
	console.mmu.write8(0x008000, before^0xFF)
	assert.Equal(t, before, console.mmu.read8(0x008000))
}

func TestSaveRamWindow(t *testing.T) {
	image := buildImage(0x10000, loHeaderBase, 0x20, nil)
	image[loHeaderBase+headerSramSizeOff] = 0x01 // 2 KiB
	fixChecksum(image, loHeaderBase)
	console := testConsole(t, image)

	console.mmu.write8(0x700123, 0x5A)
	assert.Equal(t, uint8(0x5A), console.mmu.read8(0x700123))

	// out of the declared size: reads zero, write dropped, counted
	misses := console.mmu.sramMisses
	console.mmu.write8(0x700000+0x1000, 0x77)
	assert.Equal(t, uint8(0), console.mmu.read8(0x700000+0x1000))
	assert.Equal(t, misses+2, console.mmu.sramMisses)
}

package snes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildImage assembles a synthetic cartridge image with a valid
// header at the requested base and a fixed-up checksum.
func buildImage(size int, base int, mapMode byte, fill func(i int) byte) []byte {
	image := make([]byte, size)
	if fill != nil {
		for i := range image {
			image[i] = fill(i)
		}
	}

	title := "TEST                 "
	copy(image[base+headerTitleOff:], title)
	image[base+headerRomTypeOff] = 0x00
	image[base+headerMapModeOff] = mapMode
	image[base+headerRomSizeOff] = 0x06
	image[base+headerSramSizeOff] = 0x00

	fixChecksum(image, base)
	return image
}

func fixChecksum(image []byte, base int) {
	sum := computeChecksum(image, base)
	complement := 0xFFFF ^ sum
	image[base+headerChecksumOff] = uint8(sum)
	image[base+headerChecksumOff+1] = uint8(sum >> 8)
	image[base+headerComplementOff] = uint8(complement)
	image[base+headerComplementOff+1] = uint8(complement >> 8)
}

// programImage builds a 64 KiB low-mapped image whose reset vector
// lands on the program at 0x00:8000
func programImage(program []byte) []byte {
	image := make([]byte, 0x10000)
	copy(image, program)

	// reset vector: 0x00:FFFC maps to offset 0x7FFC
	image[0x7FFC] = 0x00
	image[0x7FFD] = 0x80

	title := "CPU TEST             "
	copy(image[loHeaderBase+headerTitleOff:], title)
	image[loHeaderBase+headerRomTypeOff] = 0x00
	image[loHeaderBase+headerMapModeOff] = 0x20
	image[loHeaderBase+headerRomSizeOff] = 0x06
	image[loHeaderBase+headerSramSizeOff] = 0x03

	fixChecksum(image, loHeaderBase)
	return image
}

func testConsole(t *testing.T, image []byte) *Snes {
	t.Helper()

	console, err := NewSnes(Verbose(false))
	require.NoError(t, err)
	require.NoError(t, console.LoadCartridge(image))
	return console
}

func programConsole(t *testing.T, program []byte) *Snes {
	t.Helper()
	return testConsole(t, programImage(program))
}

// step executes n instructions
func step(console *Snes, n int) {
	for i := 0; i < n; i++ {
		console.cpu.step()
	}
}

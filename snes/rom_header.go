package snes

import (
	"strings"
)

// The cartridge image carries no magic number; instead a header block may
// live at either of two fixed offsets depending on how the address space
// is wired. Both candidates get scored and the better one wins.
const (
	loHeaderBase = 0x7FB0
	hiHeaderBase = 0xFFB0

	headerTitleOff      = 0x00
	headerTitleLen      = 21
	headerRomTypeOff    = 0x25
	headerMapModeOff    = 0x26
	headerRomSizeOff    = 0x27
	headerSramSizeOff   = 0x28
	headerChecksumOff   = 0x2C
	headerComplementOff = 0x2E

	headerSize = 0x30
)

const maxSaveRamSize = 0x80000

type romHeader struct {
	base int

	title      string
	rawTitle   [headerTitleLen]byte
	romType    byte
	mapMode    byte
	romSize    byte
	sramSize   byte
	checksum   uint16
	complement uint16
}

func parseHeader(image []byte, base int) (romHeader, bool) {
	if base+headerSize > len(image) {
		return romHeader{}, false
	}

	h := romHeader{base: base}
	copy(h.rawTitle[:], image[base+headerTitleOff:])
	h.romType = image[base+headerRomTypeOff]
	h.mapMode = image[base+headerMapModeOff]
	h.romSize = image[base+headerRomSizeOff]
	h.sramSize = image[base+headerSramSizeOff]
	h.checksum = uint16(image[base+headerChecksumOff]) | uint16(image[base+headerChecksumOff+1])<<8
	h.complement = uint16(image[base+headerComplementOff]) | uint16(image[base+headerComplementOff+1])<<8

	// ISO-8859-1, space or NUL padded
	h.title = strings.TrimRight(strings.TrimRight(string(h.rawTitle[:]), "\x00"), " ")
	return h, true
}

// map-mode bytes actually seen in the wild: 0x20/0x21 plus their
// fast-rom variants
func plausibleMapMode(mode byte) bool {
	switch mode {
	case 0x20, 0x21, 0x22, 0x23, 0x30, 0x31:
		return true
	}
	return false
}

func (h *romHeader) titlePrintable() bool {
	for _, b := range h.rawTitle {
		if b != 0x00 && (b < 0x20 || b > 0x7E) {
			return false
		}
	}
	return true
}

// score rates how much this candidate looks like a real header.
// An implausible map byte zeroes the candidate outright, which is what
// rejects headerless images full of zeros or code bytes.
func (h *romHeader) score(image []byte) int {
	if !plausibleMapMode(h.mapMode) {
		return 0
	}

	score := 2
	if h.romType < 0x10 {
		score++
	}
	if h.checksum+h.complement == 0xFFFF {
		score += 2
	}
	if h.checksum == computeChecksum(image, h.base) {
		score += 2
	}
	if h.titlePrintable() {
		score++
	}
	// the map byte low bit names the mapping its offset implies
	if (h.base == loHeaderBase && h.mapMode&1 == 0) ||
		(h.base == hiHeaderBase && h.mapMode&1 == 1) {
		score++
	}
	return score
}

func (h *romHeader) checksumValid(image []byte) bool {
	return h.checksum+h.complement == 0xFFFF &&
		h.checksum == computeChecksum(image, h.base)
}

func (h *romHeader) romSizeBytes() int {
	if h.romSize <= 0x0F {
		return 1024 << h.romSize
	}
	return 0
}

func (h *romHeader) saveRamSizeBytes() int {
	if h.sramSize == 0 {
		return 0
	}
	size := 1024 << h.sramSize
	if size > maxSaveRamSize {
		size = maxSaveRamSize
	}
	return size
}

// 16-bit sum of every image byte except the 4-byte checksum/complement
// region of the header being tested
func computeChecksum(image []byte, headerBase int) uint16 {
	sum := uint16(0)
	skipLo := headerBase + headerChecksumOff
	skipHi := skipLo + 4
	for i, b := range image {
		if i >= skipLo && i < skipHi {
			continue
		}
		sum += uint16(b)
	}
	return sum
}

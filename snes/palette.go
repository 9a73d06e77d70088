package snes

import "image/color"

// palette entries are 15-bit, blue in the high bits:
// 0bbbbbgggggrrrrr
func rgbaFromEntry(entry uint16, brightness uint8) color.RGBA {
	r := expand5(uint8(entry & 0x1F))
	g := expand5(uint8((entry >> 5) & 0x1F))
	b := expand5(uint8((entry >> 10) & 0x1F))

	return color.RGBA{
		R: scaleBrightness(r, brightness),
		G: scaleBrightness(g, brightness),
		B: scaleBrightness(b, brightness),
		A: 0xFF,
	}
}

// replicate the high 5 bits into the low 3 so full intensity
// reaches 0xFF
func expand5(c uint8) uint8 {
	return c<<3 | c>>2
}

func scaleBrightness(v, brightness uint8) uint8 {
	return uint8(uint16(v) * uint16(brightness) / 15)
}

var rgbaBlack = color.RGBA{A: 0xFF}

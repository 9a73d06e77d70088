package snes

import "image/color"

// bits per pixel per layer, indexed by background mode; 0 means the
// layer does not exist in that mode
var modeBpp = [8][4]uint8{
	{2, 2, 2, 2}, // mode 0
	{4, 4, 2, 0}, // mode 1
	// the remaining modes fall back to the two primary layers of the
	// mode 1 pipeline; layers that fallback cannot express stay black
	{4, 4, 0, 0},
	{4, 4, 0, 0},
	{4, 4, 0, 0},
	{4, 4, 0, 0},
	{4, 4, 0, 0},
	{4, 4, 0, 0},
}

const (
	tilesPerRow    = frameXWidth / 8  // 32
	tilesPerColumn = frameYHeight / 8 // 28
)

// renderFrame decodes the enabled background layers into the back
// buffer and flips it
func (p *Ppu) renderFrame() {
	buffer := p.fb.Back()

	for i := range buffer {
		buffer[i] = rgbaBlack
	}

	if !p.forcedBlank && p.mainMask != 0 {
		// back to front so the lowest numbered layer wins
		for layer := 3; layer >= 0; layer-- {
			if p.mainMask&(1<<layer) == 0 {
				continue
			}
			bpp := modeBpp[p.bgMode][layer]
			if bpp == 0 {
				continue
			}
			p.renderLayer(buffer, layer, bpp)
		}
	}

	p.fb.Flip()
}

func (p *Ppu) renderLayer(buffer []color.RGBA, layer int, bpp uint8) {
	l := &p.layers[layer]

	for ty := 0; ty < tilesPerColumn; ty++ {
		for tx := 0; tx < tilesPerRow; tx++ {
			p.renderCell(buffer, l, bpp, tx, ty)
		}
	}
}

// renderCell draws one 8x8 screen cell; with 16x16 tiles four cells
// share a tilemap entry and pick their quadrant from it
func (p *Ppu) renderCell(buffer []color.RGBA, l *bgLayer, bpp uint8, tx, ty int) {
	mx, my := tx, ty
	if l.Tile16 {
		mx, my = tx/2, ty/2
	}

	entry := p.vram[(uint32(l.MapBase)+uint32(my)*32+uint32(mx))%vramWords]

	tile := entry & 0x03FF
	palGroup := (entry >> 10) & 0x7
	hFlip := entry&0x4000 != 0
	vFlip := entry&0x8000 != 0

	if l.Tile16 {
		sx, sy := tx&1, ty&1
		if hFlip {
			sx ^= 1
		}
		if vFlip {
			sy ^= 1
		}
		tile = (tile + uint16(sx) + uint16(sy)*16) & 0x03FF
	}

	colorsPerGroup := uint16(4)
	wordsPerTile := uint32(8)
	if bpp == 4 {
		colorsPerGroup = 16
		wordsPerTile = 16
	}

	for row := 0; row < 8; row++ {
		srcRow := row
		if vFlip {
			srcRow = 7 - row
		}

		base := uint32(l.CharBase) + uint32(tile)*wordsPerTile + uint32(srcRow)
		plane01 := p.vram[base%vramWords]
		plane23 := uint16(0)
		if bpp == 4 {
			plane23 = p.vram[(base+8)%vramWords]
		}

		for col := 0; col < 8; col++ {
			bit := uint(7 - col)
			if hFlip {
				bit = uint(col)
			}

			index := ((plane01 >> bit) & 1) |
				((plane01>>(bit+8))&1)<<1 |
				((plane23>>bit)&1)<<2 |
				((plane23>>(bit+8))&1)<<3

			// index 0 is transparent in every sub-palette
			if index == 0 {
				continue
			}

			entry := p.cgram[(uint16(palGroup)*colorsPerGroup+index)%cgramWords]
			buffer[(ty*8+row)*frameXWidth+tx*8+col] = rgbaFromEntry(entry, p.brightness)
		}
	}
}

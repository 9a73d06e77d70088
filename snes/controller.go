package snes

import (
	"github.com/konstantinos193/gosnes/snes/common"
)

// serial report order on the pad shift register
var padReportOrder = [12]Button{
	ButtonB, ButtonY, ButtonSelect, ButtonStart,
	ButtonUp, ButtonDown, ButtonLeft, ButtonRight,
	ButtonA, ButtonX, ButtonL, ButtonR,
}

type snesPad struct {
	Buttons   [buttonCount]uint8
	TargetBit uint8
}

func (p *snesPad) Serialise(s common.Serialiser) error {
	return s.Serialise(p.Buttons, p.TargetBit)
}
func (p *snesPad) DeSerialise(s common.Serialiser) error {
	var targetBit uint8
	if err := s.DeSerialise(&p.Buttons, &targetBit); err != nil {
		return err
	}
	p.TargetBit = targetBit
	return nil
}

type controllers struct {
	pads   [2]snesPad
	strobe uint8
}

func (c *controllers) init() {
	c.pads = [2]snesPad{}
	c.strobe = 0
}

func (c *controllers) reset() {
	c.init()
}

func (c *controllers) poke(padId uint8, button Button, pressed bool) {
	if padId > 1 || button >= buttonCount {
		return
	}
	if pressed {
		c.pads[padId].Buttons[button] = 1
	} else {
		c.pads[padId].Buttons[button] = 0
	}
}

func (c *controllers) readButton(padId uint8) uint8 {
	pad := &c.pads[padId]

	if c.strobe&1 == 1 {
		// while strobed the first bit keeps getting re-latched
		return pad.Buttons[padReportOrder[0]]
	}

	if pad.TargetBit < uint8(len(padReportOrder)) {
		active := pad.Buttons[padReportOrder[pad.TargetBit]]
		pad.TargetBit++
		return active
	}
	if pad.TargetBit < 16 {
		// the four bits after the buttons read low
		pad.TargetBit++
		return 0
	}
	// a real pad reports 1 once the 16-bit frame is drained
	return 1
}

// serial port reads and writes, addressed by register offset
func (c *controllers) read8(addr uint16) uint8 {
	switch addr {
	case 0x4016:
		return c.readButton(0)
	case 0x4017:
		return c.readButton(1)
	}
	return 0
}

func (c *controllers) write8(addr uint16, val uint8) {
	switch addr {
	case 0x4016:
		// strobe latches the buttons and rewinds the shift registers
		c.strobe = val & 0x1
		for i := range c.pads {
			c.pads[i].TargetBit = 0
		}
	}
}

func (c *controllers) Serialise(s common.Serialiser) error {
	for i := range c.pads {
		if err := c.pads[i].Serialise(s); err != nil {
			return err
		}
	}
	return s.Serialise(c.strobe)
}
func (c *controllers) DeSerialise(s common.Serialiser) error {
	for i := range c.pads {
		if err := c.pads[i].DeSerialise(s); err != nil {
			return err
		}
	}
	var strobe uint8
	if err := s.DeSerialise(&strobe); err != nil {
		return err
	}
	c.strobe = strobe
	return nil
}

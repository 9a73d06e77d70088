package snes

import (
	"fmt"

	"github.com/konstantinos193/gosnes/snes/common"
)

// status flag bit positions (native mode layout)
const (
	C = 0 // Carry
	Z = 1 // Zero Result
	I = 2 // Interrupt Disable
	D = 3 // Decimal Mode
	X = 4 // Index Width (break bit whilst in emulation mode)
	M = 5 // Memory Width
	V = 6 // Overflow
	N = 7 // Negative Result

	bC = 1 << C
	bZ = 1 << Z
	bI = 1 << I
	bD = 1 << D
	bX = 1 << X
	bM = 1 << M
	bV = 1 << V
	bN = 1 << N
)

type psRegister struct {
	Val uint8
}

func (psr *psRegister) read() uint8 {
	return psr.Val
}
func (psr *psRegister) write(val uint8) {
	psr.Val = val
}
func (psr *psRegister) set(flags uint8) {
	psr.Val |= flags
}
func (psr *psRegister) clr(flags uint8) {
	psr.Val &^= flags
}
func (psr *psRegister) has(flags uint8) bool {
	return psr.Val&flags == flags
}
func (psr *psRegister) setIf(flags uint8, cond bool) {
	if cond {
		psr.set(flags)
	} else {
		psr.clr(flags)
	}
}

func (psr psRegister) String() string {
	return fmt.Sprintf("Ps: 0x%02x (N:%d V:%d M:%d X:%d D:%d I:%d Z:%d C:%d)",
		psr.Val,
		psr.Val>>N&1, psr.Val>>V&1, psr.Val>>M&1, psr.Val>>X&1,
		psr.Val>>D&1, psr.Val>>I&1, psr.Val>>Z&1, psr.Val>>C&1)
}

// Registers is the full 65816 register file. A is the 16-bit
// accumulator; when the memory width flag selects 8-bit operation only
// the low byte takes part and the high byte is preserved.
type Registers struct {
	A  uint16
	X  uint16
	Y  uint16
	Sp uint16
	Pc uint16
	Dp uint16
	Pb uint8
	Db uint8
	Ps psRegister
	E  bool
}

func (r *Registers) Init() {
	r.A = 0
	r.X = 0
	r.Y = 0
	r.Sp = 0x01FF
	r.Pc = 0
	r.Dp = 0
	r.Pb = 0
	r.Db = 0
	// memory and index widths start 8-bit, interrupts disabled
	r.Ps.write(bM | bX | bI)
	r.E = true
}

func (r Registers) String() string {
	e := 0
	if r.E {
		e = 1
	}
	return fmt.Sprintf("Pc: 0x%02x:%04x, Sp: 0x%04x, %s, E:%d, A: 0x%04x, X: 0x%04x, Y: 0x%04x, Dp: 0x%04x, Db: 0x%02x",
		r.Pb, r.Pc, r.Sp, r.Ps, e, r.A, r.X, r.Y, r.Dp, r.Db)
}

func (r *Registers) Serialise(s common.Serialiser) error {
	return s.Serialise(r.A, r.X, r.Y, r.Sp, r.Pc, r.Dp, r.Pb, r.Db, r.Ps.Val, r.E)
}
func (r *Registers) DeSerialise(s common.Serialiser) error {
	// decode into a fresh value: gob omits zero values at the top
	// level, so the destination has to start from zero
	fresh := Registers{}
	if err := s.DeSerialise(&fresh.A, &fresh.X, &fresh.Y, &fresh.Sp, &fresh.Pc,
		&fresh.Dp, &fresh.Pb, &fresh.Db, &fresh.Ps.Val, &fresh.E); err != nil {
		return err
	}
	*r = fresh
	return nil
}

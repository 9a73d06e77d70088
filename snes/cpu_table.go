package snes

func (c *Cpu) setIns(opCode uint8, opName string, opCycles uint8, eval func()) {
	c.ins[opCode] = Instruction{
		opCode:      opCode,
		opName:      opName,
		opCycles:    opCycles,
		eval:        eval,
		implemented: eval != nil,
	}
}

// the full opcode map; cycle counts are the documented base numbers,
// width and page penalties are not modelled
func (c *Cpu) setupIns() {
	c.setIns(0x00, "BRK", 7, c.brk)
	c.setIns(0x01, "ORA", 6, func() { c.ora(c.admDpIndX()) })
	c.setIns(0x02, "COP", 7, c.cop)
	c.setIns(0x03, "ORA", 4, func() { c.ora(c.admSr()) })
	c.setIns(0x04, "TSB", 5, func() { c.tsb(c.admDp()) })
	c.setIns(0x05, "ORA", 3, func() { c.ora(c.admDp()) })
	c.setIns(0x06, "ASL", 5, func() { c.asl(c.admDp()) })
	c.setIns(0x07, "ORA", 6, func() { c.ora(c.admDpIndLong()) })
	c.setIns(0x08, "PHP", 3, c.php)
	c.setIns(0x09, "ORA", 2, func() { c.ora(c.admImmM()) })
	c.setIns(0x0A, "ASL", 2, c.aslA)
	c.setIns(0x0B, "PHD", 4, c.phd)
	c.setIns(0x0C, "TSB", 6, func() { c.tsb(c.admAbs()) })
	c.setIns(0x0D, "ORA", 4, func() { c.ora(c.admAbs()) })
	c.setIns(0x0E, "ASL", 6, func() { c.asl(c.admAbs()) })
	c.setIns(0x0F, "ORA", 5, func() { c.ora(c.admAbsLong()) })
	c.setIns(0x10, "BPL", 2, c.bpl)
	c.setIns(0x11, "ORA", 5, func() { c.ora(c.admDpIndY()) })
	c.setIns(0x12, "ORA", 5, func() { c.ora(c.admDpInd()) })
	c.setIns(0x13, "ORA", 7, func() { c.ora(c.admSrY()) })
	c.setIns(0x14, "TRB", 5, func() { c.trb(c.admDp()) })
	c.setIns(0x15, "ORA", 4, func() { c.ora(c.admDpX()) })
	c.setIns(0x16, "ASL", 6, func() { c.asl(c.admDpX()) })
	c.setIns(0x17, "ORA", 6, func() { c.ora(c.admDpIndLongY()) })
	c.setIns(0x18, "CLC", 2, c.clc)
	c.setIns(0x19, "ORA", 4, func() { c.ora(c.admAbsY()) })
	c.setIns(0x1A, "INC", 2, c.incA)
	c.setIns(0x1B, "TCS", 2, c.tcs)
	c.setIns(0x1C, "TRB", 6, func() { c.trb(c.admAbs()) })
	c.setIns(0x1D, "ORA", 4, func() { c.ora(c.admAbsX()) })
	c.setIns(0x1E, "ASL", 7, func() { c.asl(c.admAbsX()) })
	c.setIns(0x1F, "ORA", 5, func() { c.ora(c.admAbsLongX()) })
	c.setIns(0x20, "JSR", 6, c.jsr)
	c.setIns(0x21, "AND", 6, func() { c.and(c.admDpIndX()) })
	c.setIns(0x22, "JSL", 8, c.jsl)
	c.setIns(0x23, "AND", 4, func() { c.and(c.admSr()) })
	c.setIns(0x24, "BIT", 3, func() { c.bit(c.admDp()) })
	c.setIns(0x25, "AND", 3, func() { c.and(c.admDp()) })
	c.setIns(0x26, "ROL", 5, func() { c.rol(c.admDp()) })
	c.setIns(0x27, "AND", 6, func() { c.and(c.admDpIndLong()) })
	c.setIns(0x28, "PLP", 4, c.plp)
	c.setIns(0x29, "AND", 2, func() { c.and(c.admImmM()) })
	c.setIns(0x2A, "ROL", 2, c.rolA)
	c.setIns(0x2B, "PLD", 5, c.pld)
	c.setIns(0x2C, "BIT", 4, func() { c.bit(c.admAbs()) })
	c.setIns(0x2D, "AND", 4, func() { c.and(c.admAbs()) })
	c.setIns(0x2E, "ROL", 6, func() { c.rol(c.admAbs()) })
	c.setIns(0x2F, "AND", 5, func() { c.and(c.admAbsLong()) })
	c.setIns(0x30, "BMI", 2, c.bmi)
	c.setIns(0x31, "AND", 5, func() { c.and(c.admDpIndY()) })
	c.setIns(0x32, "AND", 5, func() { c.and(c.admDpInd()) })
	c.setIns(0x33, "AND", 7, func() { c.and(c.admSrY()) })
	c.setIns(0x34, "BIT", 4, func() { c.bit(c.admDpX()) })
	c.setIns(0x35, "AND", 4, func() { c.and(c.admDpX()) })
	c.setIns(0x36, "ROL", 6, func() { c.rol(c.admDpX()) })
	c.setIns(0x37, "AND", 6, func() { c.and(c.admDpIndLongY()) })
	c.setIns(0x38, "SEC", 2, c.sec)
	c.setIns(0x39, "AND", 4, func() { c.and(c.admAbsY()) })
	c.setIns(0x3A, "DEC", 2, c.decA)
	c.setIns(0x3B, "TSC", 2, c.tsc)
	c.setIns(0x3C, "BIT", 4, func() { c.bit(c.admAbsX()) })
	c.setIns(0x3D, "AND", 4, func() { c.and(c.admAbsX()) })
	c.setIns(0x3E, "ROL", 7, func() { c.rol(c.admAbsX()) })
	c.setIns(0x3F, "AND", 5, func() { c.and(c.admAbsLongX()) })
	c.setIns(0x40, "RTI", 6, c.rti)
	c.setIns(0x41, "EOR", 6, func() { c.eor(c.admDpIndX()) })
	c.setIns(0x42, "WDM", 2, c.wdm)
	c.setIns(0x43, "EOR", 4, func() { c.eor(c.admSr()) })
	c.setIns(0x44, "MVP", 7, c.mvp)
	c.setIns(0x45, "EOR", 3, func() { c.eor(c.admDp()) })
	c.setIns(0x46, "LSR", 5, func() { c.lsr(c.admDp()) })
	c.setIns(0x47, "EOR", 6, func() { c.eor(c.admDpIndLong()) })
	c.setIns(0x48, "PHA", 3, c.pha)
	c.setIns(0x49, "EOR", 2, func() { c.eor(c.admImmM()) })
	c.setIns(0x4A, "LSR", 2, c.lsrA)
	c.setIns(0x4B, "PHK", 3, c.phk)
	c.setIns(0x4C, "JMP", 3, c.jmpAbs)
	c.setIns(0x4D, "EOR", 4, func() { c.eor(c.admAbs()) })
	c.setIns(0x4E, "LSR", 6, func() { c.lsr(c.admAbs()) })
	c.setIns(0x4F, "EOR", 5, func() { c.eor(c.admAbsLong()) })
	c.setIns(0x50, "BVC", 2, c.bvc)
	c.setIns(0x51, "EOR", 5, func() { c.eor(c.admDpIndY()) })
	c.setIns(0x52, "EOR", 5, func() { c.eor(c.admDpInd()) })
	c.setIns(0x53, "EOR", 7, func() { c.eor(c.admSrY()) })
	c.setIns(0x54, "MVN", 7, c.mvn)
	c.setIns(0x55, "EOR", 4, func() { c.eor(c.admDpX()) })
	c.setIns(0x56, "LSR", 6, func() { c.lsr(c.admDpX()) })
	c.setIns(0x57, "EOR", 6, func() { c.eor(c.admDpIndLongY()) })
	c.setIns(0x58, "CLI", 2, c.cli)
	c.setIns(0x59, "EOR", 4, func() { c.eor(c.admAbsY()) })
	c.setIns(0x5A, "PHY", 3, c.phy)
	c.setIns(0x5B, "TCD", 2, c.tcd)
	c.setIns(0x5C, "JML", 4, c.jmpLong)
	c.setIns(0x5D, "EOR", 4, func() { c.eor(c.admAbsX()) })
	c.setIns(0x5E, "LSR", 7, func() { c.lsr(c.admAbsX()) })
	c.setIns(0x5F, "EOR", 5, func() { c.eor(c.admAbsLongX()) })
	c.setIns(0x60, "RTS", 6, c.rts)
	c.setIns(0x61, "ADC", 6, func() { c.adc(c.admDpIndX()) })
	c.setIns(0x62, "PER", 6, c.per)
	c.setIns(0x63, "ADC", 4, func() { c.adc(c.admSr()) })
	c.setIns(0x64, "STZ", 3, func() { c.stz(c.admDp()) })
	c.setIns(0x65, "ADC", 3, func() { c.adc(c.admDp()) })
	c.setIns(0x66, "ROR", 5, func() { c.ror(c.admDp()) })
	c.setIns(0x67, "ADC", 6, func() { c.adc(c.admDpIndLong()) })
	c.setIns(0x68, "PLA", 4, c.pla)
	c.setIns(0x69, "ADC", 2, func() { c.adc(c.admImmM()) })
	c.setIns(0x6A, "ROR", 2, c.rorA)
	c.setIns(0x6B, "RTL", 6, c.rtl)
	c.setIns(0x6C, "JMP", 5, c.jmpInd)
	c.setIns(0x6D, "ADC", 4, func() { c.adc(c.admAbs()) })
	c.setIns(0x6E, "ROR", 6, func() { c.ror(c.admAbs()) })
	c.setIns(0x6F, "ADC", 5, func() { c.adc(c.admAbsLong()) })
	c.setIns(0x70, "BVS", 2, c.bvs)
	c.setIns(0x71, "ADC", 5, func() { c.adc(c.admDpIndY()) })
	c.setIns(0x72, "ADC", 5, func() { c.adc(c.admDpInd()) })
	c.setIns(0x73, "ADC", 7, func() { c.adc(c.admSrY()) })
	c.setIns(0x74, "STZ", 4, func() { c.stz(c.admDpX()) })
	c.setIns(0x75, "ADC", 4, func() { c.adc(c.admDpX()) })
	c.setIns(0x76, "ROR", 6, func() { c.ror(c.admDpX()) })
	c.setIns(0x77, "ADC", 6, func() { c.adc(c.admDpIndLongY()) })
	c.setIns(0x78, "SEI", 2, c.sei)
	c.setIns(0x79, "ADC", 4, func() { c.adc(c.admAbsY()) })
	c.setIns(0x7A, "PLY", 4, c.ply)
	c.setIns(0x7B, "TDC", 2, c.tdc)
	c.setIns(0x7C, "JMP", 6, c.jmpIndX)
	c.setIns(0x7D, "ADC", 4, func() { c.adc(c.admAbsX()) })
	c.setIns(0x7E, "ROR", 7, func() { c.ror(c.admAbsX()) })
	c.setIns(0x7F, "ADC", 5, func() { c.adc(c.admAbsLongX()) })
	c.setIns(0x80, "BRA", 3, c.bra)
	c.setIns(0x81, "STA", 6, func() { c.sta(c.admDpIndX()) })
	c.setIns(0x82, "BRL", 4, c.brl)
	c.setIns(0x83, "STA", 4, func() { c.sta(c.admSr()) })
	c.setIns(0x84, "STY", 3, func() { c.sty(c.admDp()) })
	c.setIns(0x85, "STA", 3, func() { c.sta(c.admDp()) })
	c.setIns(0x86, "STX", 3, func() { c.stx(c.admDp()) })
	c.setIns(0x87, "STA", 6, func() { c.sta(c.admDpIndLong()) })
	c.setIns(0x88, "DEY", 2, c.dey)
	c.setIns(0x89, "BIT", 2, c.bitImm)
	c.setIns(0x8A, "TXA", 2, c.txa)
	c.setIns(0x8B, "PHB", 3, c.phb)
	c.setIns(0x8C, "STY", 4, func() { c.sty(c.admAbs()) })
	c.setIns(0x8D, "STA", 4, func() { c.sta(c.admAbs()) })
	c.setIns(0x8E, "STX", 4, func() { c.stx(c.admAbs()) })
	c.setIns(0x8F, "STA", 5, func() { c.sta(c.admAbsLong()) })
	c.setIns(0x90, "BCC", 2, c.bcc)
	c.setIns(0x91, "STA", 6, func() { c.sta(c.admDpIndY()) })
	c.setIns(0x92, "STA", 5, func() { c.sta(c.admDpInd()) })
	c.setIns(0x93, "STA", 7, func() { c.sta(c.admSrY()) })
	c.setIns(0x94, "STY", 4, func() { c.sty(c.admDpX()) })
	c.setIns(0x95, "STA", 4, func() { c.sta(c.admDpX()) })
	c.setIns(0x96, "STX", 4, func() { c.stx(c.admDpY()) })
	c.setIns(0x97, "STA", 6, func() { c.sta(c.admDpIndLongY()) })
	c.setIns(0x98, "TYA", 2, c.tya)
	c.setIns(0x99, "STA", 5, func() { c.sta(c.admAbsY()) })
	c.setIns(0x9A, "TXS", 2, c.txs)
	c.setIns(0x9B, "TXY", 2, c.txy)
	c.setIns(0x9C, "STZ", 4, func() { c.stz(c.admAbs()) })
	c.setIns(0x9D, "STA", 5, func() { c.sta(c.admAbsX()) })
	c.setIns(0x9E, "STZ", 5, func() { c.stz(c.admAbsX()) })
	c.setIns(0x9F, "STA", 5, func() { c.sta(c.admAbsLongX()) })
	c.setIns(0xA0, "LDY", 2, func() { c.ldy(c.admImmX()) })
	c.setIns(0xA1, "LDA", 6, func() { c.lda(c.admDpIndX()) })
	c.setIns(0xA2, "LDX", 2, func() { c.ldx(c.admImmX()) })
	c.setIns(0xA3, "LDA", 4, func() { c.lda(c.admSr()) })
	c.setIns(0xA4, "LDY", 3, func() { c.ldy(c.admDp()) })
	c.setIns(0xA5, "LDA", 3, func() { c.lda(c.admDp()) })
	c.setIns(0xA6, "LDX", 3, func() { c.ldx(c.admDp()) })
	c.setIns(0xA7, "LDA", 6, func() { c.lda(c.admDpIndLong()) })
	c.setIns(0xA8, "TAY", 2, c.tay)
	c.setIns(0xA9, "LDA", 2, func() { c.lda(c.admImmM()) })
	c.setIns(0xAA, "TAX", 2, c.tax)
	c.setIns(0xAB, "PLB", 4, c.plb)
	c.setIns(0xAC, "LDY", 4, func() { c.ldy(c.admAbs()) })
	c.setIns(0xAD, "LDA", 4, func() { c.lda(c.admAbs()) })
	c.setIns(0xAE, "LDX", 4, func() { c.ldx(c.admAbs()) })
	c.setIns(0xAF, "LDA", 5, func() { c.lda(c.admAbsLong()) })
	c.setIns(0xB0, "BCS", 2, c.bcs)
	c.setIns(0xB1, "LDA", 5, func() { c.lda(c.admDpIndY()) })
	c.setIns(0xB2, "LDA", 5, func() { c.lda(c.admDpInd()) })
	c.setIns(0xB3, "LDA", 7, func() { c.lda(c.admSrY()) })
	c.setIns(0xB4, "LDY", 4, func() { c.ldy(c.admDpX()) })
	c.setIns(0xB5, "LDA", 4, func() { c.lda(c.admDpX()) })
	c.setIns(0xB6, "LDX", 4, func() { c.ldx(c.admDpY()) })
	c.setIns(0xB7, "LDA", 6, func() { c.lda(c.admDpIndLongY()) })
	c.setIns(0xB8, "CLV", 2, c.clv)
	c.setIns(0xB9, "LDA", 4, func() { c.lda(c.admAbsY()) })
	c.setIns(0xBA, "TSX", 2, c.tsx)
	c.setIns(0xBB, "TYX", 2, c.tyx)
	c.setIns(0xBC, "LDY", 4, func() { c.ldy(c.admAbsX()) })
	c.setIns(0xBD, "LDA", 4, func() { c.lda(c.admAbsX()) })
	c.setIns(0xBE, "LDX", 4, func() { c.ldx(c.admAbsY()) })
	c.setIns(0xBF, "LDA", 5, func() { c.lda(c.admAbsLongX()) })
	c.setIns(0xC0, "CPY", 2, func() { c.cpy(c.admImmX()) })
	c.setIns(0xC1, "CMP", 6, func() { c.cmp(c.admDpIndX()) })
	c.setIns(0xC2, "REP", 3, c.rep)
	c.setIns(0xC3, "CMP", 4, func() { c.cmp(c.admSr()) })
	c.setIns(0xC4, "CPY", 3, func() { c.cpy(c.admDp()) })
	c.setIns(0xC5, "CMP", 3, func() { c.cmp(c.admDp()) })
	c.setIns(0xC6, "DEC", 5, func() { c.dec(c.admDp()) })
	c.setIns(0xC7, "CMP", 6, func() { c.cmp(c.admDpIndLong()) })
	c.setIns(0xC8, "INY", 2, c.iny)
	c.setIns(0xC9, "CMP", 2, func() { c.cmp(c.admImmM()) })
	c.setIns(0xCA, "DEX", 2, c.dex)
	c.setIns(0xCB, "WAI", 3, c.wai)
	c.setIns(0xCC, "CPY", 4, func() { c.cpy(c.admAbs()) })
	c.setIns(0xCD, "CMP", 4, func() { c.cmp(c.admAbs()) })
	c.setIns(0xCE, "DEC", 6, func() { c.dec(c.admAbs()) })
	c.setIns(0xCF, "CMP", 5, func() { c.cmp(c.admAbsLong()) })
	c.setIns(0xD0, "BNE", 2, c.bne)
	c.setIns(0xD1, "CMP", 5, func() { c.cmp(c.admDpIndY()) })
	c.setIns(0xD2, "CMP", 5, func() { c.cmp(c.admDpInd()) })
	c.setIns(0xD3, "CMP", 7, func() { c.cmp(c.admSrY()) })
	c.setIns(0xD4, "PEI", 6, c.pei)
	c.setIns(0xD5, "CMP", 4, func() { c.cmp(c.admDpX()) })
	c.setIns(0xD6, "DEC", 6, func() { c.dec(c.admDpX()) })
	c.setIns(0xD7, "CMP", 6, func() { c.cmp(c.admDpIndLongY()) })
	c.setIns(0xD8, "CLD", 2, c.cld)
	c.setIns(0xD9, "CMP", 4, func() { c.cmp(c.admAbsY()) })
	c.setIns(0xDA, "PHX", 3, c.phx)
	c.setIns(0xDB, "STP", 3, c.stp)
	c.setIns(0xDC, "JML", 6, c.jmpIndLong)
	c.setIns(0xDD, "CMP", 4, func() { c.cmp(c.admAbsX()) })
	c.setIns(0xDE, "DEC", 7, func() { c.dec(c.admAbsX()) })
	c.setIns(0xDF, "CMP", 5, func() { c.cmp(c.admAbsLongX()) })
	c.setIns(0xE0, "CPX", 2, func() { c.cpx(c.admImmX()) })
	c.setIns(0xE1, "SBC", 6, func() { c.sbc(c.admDpIndX()) })
	c.setIns(0xE2, "SEP", 3, c.sep)
	c.setIns(0xE3, "SBC", 4, func() { c.sbc(c.admSr()) })
	c.setIns(0xE4, "CPX", 3, func() { c.cpx(c.admDp()) })
	c.setIns(0xE5, "SBC", 3, func() { c.sbc(c.admDp()) })
	c.setIns(0xE6, "INC", 5, func() { c.inc(c.admDp()) })
	c.setIns(0xE7, "SBC", 6, func() { c.sbc(c.admDpIndLong()) })
	c.setIns(0xE8, "INX", 2, c.inx)
	c.setIns(0xE9, "SBC", 2, func() { c.sbc(c.admImmM()) })
	c.setIns(0xEA, "NOP", 2, c.nop)
	c.setIns(0xEB, "XBA", 3, c.xba)
	c.setIns(0xEC, "CPX", 4, func() { c.cpx(c.admAbs()) })
	c.setIns(0xED, "SBC", 4, func() { c.sbc(c.admAbs()) })
	c.setIns(0xEE, "INC", 6, func() { c.inc(c.admAbs()) })
	c.setIns(0xEF, "SBC", 5, func() { c.sbc(c.admAbsLong()) })
	c.setIns(0xF0, "BEQ", 2, c.beq)
	c.setIns(0xF1, "SBC", 5, func() { c.sbc(c.admDpIndY()) })
	c.setIns(0xF2, "SBC", 5, func() { c.sbc(c.admDpInd()) })
	c.setIns(0xF3, "SBC", 7, func() { c.sbc(c.admSrY()) })
	c.setIns(0xF4, "PEA", 5, c.pea)
	c.setIns(0xF5, "SBC", 4, func() { c.sbc(c.admDpX()) })
	c.setIns(0xF6, "INC", 6, func() { c.inc(c.admDpX()) })
	c.setIns(0xF7, "SBC", 6, func() { c.sbc(c.admDpIndLongY()) })
	c.setIns(0xF8, "SED", 2, c.sed)
	c.setIns(0xF9, "SBC", 4, func() { c.sbc(c.admAbsY()) })
	c.setIns(0xFA, "PLX", 4, c.plx)
	c.setIns(0xFB, "XCE", 2, c.xce)
	c.setIns(0xFC, "JSR", 8, c.jsrIndX)
	c.setIns(0xFD, "SBC", 4, func() { c.sbc(c.admAbsX()) })
	c.setIns(0xFE, "INC", 7, func() { c.inc(c.admAbsX()) })
	c.setIns(0xFF, "SBC", 5, func() { c.sbc(c.admAbsLongX()) })
}

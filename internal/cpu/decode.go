package cpu

// dispatch maps the fetched opcode's nibbles to one of the ~50 operation
// families and executes it, returning the PC delta to apply once dispatch
// returns. Patterns are checked in priority order — several general
// patterns (LD r8,r8; ALU A,r8) would otherwise swallow opcodes handled
// more specifically first (HALT).
func (c *CPU) dispatch(b Bus, hi, lo uint8) uint16 {
	opcode := hi<<4 | lo

	switch {
	case hi == 0x0 && lo == 0x0: // NOP
		return 1
	case hi == 0x0 && lo == 0x8: // LD (u16),SP
		return c.ldU16pSP(b)
	case hi == 0x1 && lo == 0x0: // STOP
		return c.stop()
	case hi == 0x1 && lo == 0x8: // JR i8
		return c.jr(b)
	case (hi == 0x2 || hi == 0x3) && (lo == 0x0 || lo == 0x8): // JR cc,i8
		return c.jrCond(b)
	case hi <= 0x3 && lo == 0x1: // LD r16,u16
		return c.ldR16U16(b)
	case hi <= 0x3 && lo == 0x9: // ADD HL,r16
		return c.addHLR16(b)
	case hi <= 0x3 && lo == 0x2: // LD (r16),A
		return c.ldR16pA(b)
	case hi <= 0x3 && lo == 0xA: // LD A,(r16)
		return c.ldAR16p(b)
	case hi <= 0x3 && lo == 0x3: // INC r16
		return c.incR16(b)
	case hi <= 0x3 && lo == 0xB: // DEC r16
		return c.decR16(b)
	case hi <= 0x3 && (lo == 0x4 || lo == 0xC): // INC r8
		return c.incR8(b)
	case hi <= 0x3 && (lo == 0x5 || lo == 0xD): // DEC r8
		return c.decR8(b)
	case hi <= 0x3 && (lo == 0x6 || lo == 0xE): // LD r8,u8
		return c.ldR8U8(b)
	case hi <= 0x3 && (lo == 0x7 || lo == 0xF): // AF-row misc
		return c.afOps()
	case hi == 0x7 && lo == 0x6: // HALT
		return c.unimplemented("HALT", opcode)
	case hi >= 0x4 && hi <= 0x7: // LD r8,r8
		return c.ldR8R8(b)
	case hi >= 0x8 && hi <= 0xB: // ALU A,r8
		return c.aluAR8(b)
	case (hi == 0xC || hi == 0xD) && (lo == 0x0 || lo == 0x8): // RET cc
		return c.retCond(b)
	case hi == 0xE && lo == 0x0: // LD (FF00+u8),A
		return c.ldIOu8A(b)
	case hi == 0xE && lo == 0x8: // ADD SP,i8
		return c.addSPi8(b)
	case hi == 0xF && lo == 0x0: // LD A,(FF00+u8)
		return c.ldAIOu8(b)
	case hi == 0xF && lo == 0x8: // LD HL,SP+i8
		return c.ldHLSPi8(b)
	case hi >= 0xC && lo == 0x1: // POP r16
		return c.popR16(b)
	case hi == 0xC && lo == 0x9: // RET
		return c.ret(b)
	case hi == 0xD && lo == 0x9: // RETI
		return c.reti(b)
	case hi == 0xE && lo == 0x9: // JP HL
		return c.jpHL()
	case hi == 0xF && lo == 0x9: // LD SP,HL
		return c.ldSPHL(b)
	case (hi == 0xC || hi == 0xD) && (lo == 0x2 || lo == 0xA): // JP cc,u16
		return c.jpCond(b)
	case hi == 0xE && lo == 0x2: // LD (FF00+C),A
		return c.ldIOCA(b)
	case hi == 0xE && lo == 0xA: // LD (u16),A
		return c.ldU16pA(b)
	case hi == 0xF && lo == 0x2: // LD A,(FF00+C)
		return c.ldAIOC(b)
	case hi == 0xF && lo == 0xA: // LD A,(u16)
		return c.ldAU16p(b)
	case hi == 0xC && lo == 0x3: // JP u16
		return c.jpU16(b)
	case hi == 0xC && lo == 0xB: // CB prefix
		return c.cb(b)
	case hi == 0xF && lo == 0x3: // DI
		return c.di()
	case hi == 0xF && lo == 0xB: // EI
		return c.ei()
	case (hi == 0xC || hi == 0xD) && (lo == 0x4 || lo == 0xC): // CALL cc,u16
		return c.callCond(b)
	case hi >= 0xC && lo == 0x5: // PUSH r16
		return c.pushR16(b)
	case hi == 0xC && lo == 0xD: // CALL u16
		return c.callU16(b)
	case hi >= 0xC && (lo == 0x6 || lo == 0xE): // ALU A,u8
		return c.aluAU8(b)
	case hi >= 0xC && (lo == 0x7 || lo == 0xF): // RST n
		return c.rst(b)
	default:
		return c.illegal(opcode)
	}
}

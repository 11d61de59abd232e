package cpu

import "github.com/kestrelcore/gbcpu/internal/types"

// alu8 implements the eight-way ALU family selected by r8High() of the
// major opcode: ADD, ADC, SUB, SBC, AND, XOR, OR, CP. It updates flags and
// returns the result (CP returns the unchanged accumulator; callers decide
// whether to write it back).
func (c *CPU) alu8(rhs uint8) uint8 {
	a := c.AF.Hi
	kind := c.r8High()

	switch kind {
	case 0: // ADD
		res := uint16(a) + uint16(rhs)
		c.setFlag(types.FlagZero, uint8(res) == 0)
		c.setFlag(types.FlagSubtract, false)
		c.setFlag(types.FlagHalfCarry, (a&0xF)+(rhs&0xF) > 0xF)
		c.setFlag(types.FlagCarry, res > 0xFF)
		return uint8(res)
	case 1: // ADC
		carry := c.carryBit()
		res := uint16(a) + uint16(rhs) + uint16(carry)
		c.setFlag(types.FlagZero, uint8(res) == 0)
		c.setFlag(types.FlagSubtract, false)
		c.setFlag(types.FlagHalfCarry, (a&0xF)+(rhs&0xF)+carry > 0xF)
		c.setFlag(types.FlagCarry, res > 0xFF)
		return uint8(res)
	case 2: // SUB
		res := a - rhs
		c.setFlag(types.FlagZero, res == 0)
		c.setFlag(types.FlagSubtract, true)
		c.setFlag(types.FlagHalfCarry, (a&0xF) < (rhs&0xF))
		c.setFlag(types.FlagCarry, a < rhs)
		return res
	case 3: // SBC
		carry := c.carryBit()
		res := uint16(a) - uint16(rhs) - uint16(carry)
		c.setFlag(types.FlagZero, uint8(res) == 0)
		c.setFlag(types.FlagSubtract, true)
		c.setFlag(types.FlagHalfCarry, (a&0xF) < (rhs&0xF)+carry)
		c.setFlag(types.FlagCarry, uint16(a) < uint16(rhs)+uint16(carry))
		return uint8(res)
	case 4: // AND
		res := a & rhs
		c.setFlag(types.FlagZero, res == 0)
		c.setFlag(types.FlagSubtract, false)
		c.setFlag(types.FlagHalfCarry, true)
		c.setFlag(types.FlagCarry, false)
		return res
	case 5: // XOR
		res := a ^ rhs
		c.setFlag(types.FlagZero, res == 0)
		c.setFlag(types.FlagSubtract, false)
		c.setFlag(types.FlagHalfCarry, false)
		c.setFlag(types.FlagCarry, false)
		return res
	case 6: // OR
		res := a | rhs
		c.setFlag(types.FlagZero, res == 0)
		c.setFlag(types.FlagSubtract, false)
		c.setFlag(types.FlagHalfCarry, false)
		c.setFlag(types.FlagCarry, false)
		return res
	case 7: // CP
		res := a - rhs
		c.setFlag(types.FlagZero, res == 0)
		c.setFlag(types.FlagSubtract, true)
		c.setFlag(types.FlagHalfCarry, (a&0xF) < (rhs&0xF))
		c.setFlag(types.FlagCarry, a < rhs)
		return a // A is preserved
	default:
		panic("cpu: invalid ALU kind")
	}
}

func (c *CPU) carryBit() uint8 {
	if c.flagSet(types.FlagCarry) {
		return 1
	}
	return 0
}

// aluAR8 implements ALU A,r8 (opcodes 0x80-0xBF).
func (c *CPU) aluAR8(b Bus) uint16 {
	rhs := c.getR8(b, c.r8Low())
	c.AF.Hi = c.alu8(rhs)
	return 1
}

// aluAU8 implements ALU A,u8 (opcodes 0xC6,0xCE,0xD6,...,0xFE).
func (c *CPU) aluAU8(b Bus) uint16 {
	rhs := c.fetchOperand(b, 1)
	c.AF.Hi = c.alu8(rhs)
	return 2
}

// incR8 implements INC r8 (and INC (HL)); C is untouched.
func (c *CPU) incR8(b Bus) uint16 {
	sel := c.r8High()
	val := c.getR8(b, sel)
	c.setFlag(types.FlagZero, val == 0xFF)
	c.setFlag(types.FlagSubtract, false)
	c.setFlag(types.FlagHalfCarry, val&0xF == 0xF)
	c.setR8(b, sel, val+1)
	return 1
}

// decR8 implements DEC r8 (and DEC (HL)); C is untouched.
func (c *CPU) decR8(b Bus) uint16 {
	sel := c.r8High()
	val := c.getR8(b, sel)
	c.setFlag(types.FlagZero, val == 0x01)
	c.setFlag(types.FlagSubtract, true)
	c.setFlag(types.FlagHalfCarry, val&0xF == 0x0)
	c.setR8(b, sel, val-1)
	return 1
}

// incR16 implements INC r16 (group 1); no flags affected. One extra
// internal machine cycle is spent, since 16-bit ALU work happens on an
// internal adder separate from the 8-bit path.
func (c *CPU) incR16(b Bus) uint16 {
	sel := c.r16Sel()
	c.setR16Group1(sel, c.getR16Group1(sel)+1)
	b.InternalCycle()
	return 1
}

// decR16 implements DEC r16 (group 1); no flags affected.
func (c *CPU) decR16(b Bus) uint16 {
	sel := c.r16Sel()
	c.setR16Group1(sel, c.getR16Group1(sel)-1)
	b.InternalCycle()
	return 1
}

// addHLR16 implements ADD HL,r16: N clears, H/C reflect an 11-bit and
// 15-bit carry respectively, Z is untouched.
func (c *CPU) addHLR16(b Bus) uint16 {
	hl := c.HL.Uint16()
	rhs := c.getR16Group1(c.r16Sel())

	c.setFlag(types.FlagSubtract, false)
	c.setFlag(types.FlagHalfCarry, (hl&0x0FFF)+(rhs&0x0FFF) >= 0x1000)
	res := uint32(hl) + uint32(rhs)
	c.setFlag(types.FlagCarry, res > 0xFFFF)
	c.HL.SetUint16(uint16(res))
	b.InternalCycle()
	return 1
}

// addSPi8 implements ADD SP,i8. The operand is a signed byte; H/C are
// computed from the low byte of SP exactly as for an 8-bit add, per the
// documented hardware quirk shared with LD HL,SP+i8.
func (c *CPU) addSPi8(b Bus) uint16 {
	res, half, carry := c.spPlusSigned(b)
	c.setFlag(types.FlagZero, false)
	c.setFlag(types.FlagSubtract, false)
	c.setFlag(types.FlagHalfCarry, half)
	c.setFlag(types.FlagCarry, carry)
	c.SP = res
	b.InternalCycle()
	b.InternalCycle()
	return 2
}

// ldHLSPi8 implements LD HL,SP+i8, sharing ADD SP,i8's flag semantics but
// writing the result to HL instead of SP and costing one fewer internal
// cycle (no second SP write-back stage).
func (c *CPU) ldHLSPi8(b Bus) uint16 {
	res, half, carry := c.spPlusSigned(b)
	c.setFlag(types.FlagZero, false)
	c.setFlag(types.FlagSubtract, false)
	c.setFlag(types.FlagHalfCarry, half)
	c.setFlag(types.FlagCarry, carry)
	c.HL.SetUint16(res)
	b.InternalCycle()
	return 2
}

// spPlusSigned computes SP + sign-extend(operand) and the flags an 8-bit
// add of SP's low byte and the operand would produce.
func (c *CPU) spPlusSigned(b Bus) (result uint16, half, carry bool) {
	operand := int8(c.fetchOperand(b, 1))
	val := uint16(int16(operand))
	half = (c.SP&0xF)+(val&0xF) > 0xF
	carry = (c.SP&0xFF)+(val&0xFF) > 0xFF
	return c.SP + val, half, carry
}

package cpu

import "github.com/kestrelcore/gbcpu/internal/types"

// afOps implements the AF-row misc family (opcodes 0x07/0x0F/0x17/0x1F/
// 0x27/0x2F/0x37/0x3F), indexed by r8High(): RLCA, RRCA, RLA, RRA, DAA,
// CPL, SCF, CCF.
func (c *CPU) afOps() uint16 {
	a := c.AF.Hi
	switch c.r8High() {
	case 0: // RLCA
		c.setFlag(types.FlagZero, false)
		c.setFlag(types.FlagSubtract, false)
		c.setFlag(types.FlagHalfCarry, false)
		c.setFlag(types.FlagCarry, a&0x80 != 0)
		c.AF.Hi = a<<1 | a>>7
	case 1: // RRCA
		c.setFlag(types.FlagZero, false)
		c.setFlag(types.FlagSubtract, false)
		c.setFlag(types.FlagHalfCarry, false)
		c.setFlag(types.FlagCarry, a&0x01 != 0)
		c.AF.Hi = a>>1 | a<<7
	case 2: // RLA
		carryIn := c.carryBit()
		c.setFlag(types.FlagZero, false)
		c.setFlag(types.FlagSubtract, false)
		c.setFlag(types.FlagHalfCarry, false)
		c.setFlag(types.FlagCarry, a&0x80 != 0)
		c.AF.Hi = a<<1 | carryIn
	case 3: // RRA
		carryIn := c.carryBit()
		c.setFlag(types.FlagZero, false)
		c.setFlag(types.FlagSubtract, false)
		c.setFlag(types.FlagHalfCarry, false)
		c.setFlag(types.FlagCarry, a&0x01 != 0)
		c.AF.Hi = a>>1 | carryIn<<7
	case 4: // DAA
		c.daa()
	case 5: // CPL
		c.AF.Hi = ^a
		c.setFlag(types.FlagSubtract, true)
		c.setFlag(types.FlagHalfCarry, true)
	case 6: // SCF
		c.setFlag(types.FlagSubtract, false)
		c.setFlag(types.FlagHalfCarry, false)
		c.setFlag(types.FlagCarry, true)
	case 7: // CCF
		c.setFlag(types.FlagSubtract, false)
		c.setFlag(types.FlagHalfCarry, false)
		c.setFlag(types.FlagCarry, !c.flagSet(types.FlagCarry))
	default:
		panic("cpu: invalid AF-row selector")
	}
	return 1
}

// daa adjusts A into packed BCD after an 8-bit add/subtract, using the
// standard "u adjustment" table: N (preserved) tells us whether the prior
// operation added or subtracted, H and C (and, for addition, A's raw
// value) tell us whether a nibble needs correcting.
func (c *CPU) daa() {
	a := c.AF.Hi
	subtract := c.flagSet(types.FlagSubtract)
	halfCarry := c.flagSet(types.FlagHalfCarry)
	carry := c.flagSet(types.FlagCarry)

	var adjust uint8
	if halfCarry || (!subtract && a&0xF > 0x9) {
		adjust = 0x06
	}
	if carry || (!subtract && a > 0x99) {
		adjust |= 0x60
		carry = true
	}

	if subtract {
		a -= adjust
	} else {
		a += adjust
	}

	c.setFlag(types.FlagZero, a == 0)
	c.setFlag(types.FlagHalfCarry, false)
	c.setFlag(types.FlagCarry, carry)
	c.AF.Hi = a
}

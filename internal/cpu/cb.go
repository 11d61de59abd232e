package cpu

import "github.com/kestrelcore/gbcpu/internal/types"

// cb implements the 0xCB prefix: PC is advanced past the prefix byte
// immediately so the inner opcode's nibbles land in currentInstr, the
// sub-opcode's top two bits select rotate/shift/swap vs BIT vs RES vs SET,
// and the remaining six bits split into a 3-bit op/bit-index field and a
// 3-bit r8 target (r8Low()). The caller's PC += delta then advances past
// the inner opcode byte, so a CB instruction's total length is 2.
func (c *CPU) cb(b Bus) uint16 {
	c.PC++
	inner := c.fetchOperand(b, 0)
	c.currentInstr = [2]uint8{inner >> 4, inner & 0xF}

	group := inner >> 6
	switch group {
	case 0:
		c.rotShiftSwap(b)
	case 1:
		c.bit(b)
	case 2:
		c.setR8(b, c.r8Low(), c.getR8(b, c.r8Low())&^(1<<c.r8High()))
	case 3:
		c.setR8(b, c.r8Low(), c.getR8(b, c.r8Low())|(1<<c.r8High()))
	}
	return 1
}

// rotShiftSwap implements the CB 0x00-0x3F block: RLC, RRC, RL, RR, SLA,
// SRA, SWAP, SRL, selected by r8High() (the op selector in this block's
// layout) over the r8Low() target.
func (c *CPU) rotShiftSwap(b Bus) {
	sel := c.r8Low()
	val := c.getR8(b, sel)
	var res uint8
	var carry bool

	switch c.r8High() {
	case 0: // RLC
		carry = val&0x80 != 0
		res = val<<1 | val>>7
	case 1: // RRC
		carry = val&0x01 != 0
		res = val>>1 | val<<7
	case 2: // RL
		carry = val&0x80 != 0
		res = val<<1 | c.carryBit()
	case 3: // RR
		carry = val&0x01 != 0
		res = val>>1 | c.carryBit()<<7
	case 4: // SLA
		carry = val&0x80 != 0
		res = val << 1
	case 5: // SRA
		carry = val&0x01 != 0
		res = val>>1 | val&0x80
	case 6: // SWAP
		res = val<<4 | val>>4
		carry = false
	case 7: // SRL
		carry = val&0x01 != 0
		res = val >> 1
	default:
		panic("cpu: invalid rotate/shift selector")
	}

	c.setFlag(types.FlagZero, res == 0)
	c.setFlag(types.FlagSubtract, false)
	c.setFlag(types.FlagHalfCarry, false)
	c.setFlag(types.FlagCarry, carry)
	c.setR8(b, sel, res)
}

// bit implements BIT n,r8: Z reflects the tested bit, H is always set, C
// is untouched, and (unlike RES/SET/the rotate group) nothing is written
// back — (HL) is still read through the bus for its access-timing effect.
func (c *CPU) bit(b Bus) {
	val := c.getR8(b, c.r8Low())
	c.setFlag(types.FlagZero, val&(1<<c.r8High()) == 0)
	c.setFlag(types.FlagSubtract, false)
	c.setFlag(types.FlagHalfCarry, true)
}

package cpu

// jr implements JR i8: PC is computed from its pre-fetch value (PC, not
// PC+2) plus the sign-extended offset, then Step's unconditional PC += 2
// lands it on the correct target — PC + offset + instructionLength.
func (c *CPU) jr(b Bus) uint16 {
	offset := int8(c.fetchOperand(b, 1))
	b.InternalCycle()
	c.PC = uint16(int32(c.PC) + int32(offset))
	return 2
}

// jrCond implements JR cc,i8: the branch is only taken — and only then does
// it cost the extra internal cycle — when the condition holds.
func (c *CPU) jrCond(b Bus) uint16 {
	offset := int8(c.fetchOperand(b, 1))
	if c.evalCond(c.cond()) {
		b.InternalCycle()
		c.PC = uint16(int32(c.PC) + int32(offset))
	}
	return 2
}

// jpU16 implements JP u16: an absolute jump sets PC directly, so dispatch
// returns 0 and Step's PC += 0 is a no-op.
func (c *CPU) jpU16(b Bus) uint16 {
	target := c.fetchOperand16(b, 1)
	b.InternalCycle()
	c.PC = target
	return 0
}

// jpCond implements JP cc,u16. The operand is always fetched (and PC
// advanced past it) regardless of whether the branch is taken; only a
// taken branch spends the extra internal cycle and overwrites PC.
func (c *CPU) jpCond(b Bus) uint16 {
	target := c.fetchOperand16(b, 1)
	if c.evalCond(c.cond()) {
		b.InternalCycle()
		c.PC = target
		return 0
	}
	return 3
}

// jpHL implements JP HL: unlike every other absolute jump, it costs no
// extra internal cycle — HL is already loaded, there's no bus fetch to
// wait on.
func (c *CPU) jpHL() uint16 {
	c.PC = c.HL.Uint16()
	return 0
}

// callU16 implements CALL u16: the return address (the instruction after
// this one) is pushed, then PC is set to the target.
func (c *CPU) callU16(b Bus) uint16 {
	target := c.fetchOperand16(b, 1)
	b.InternalCycle()
	c.push(b, c.PC+3)
	c.PC = target
	return 0
}

// callCond implements CALL cc,u16, with the same fetch-regardless/
// branch-conditional cost discipline as jpCond.
func (c *CPU) callCond(b Bus) uint16 {
	target := c.fetchOperand16(b, 1)
	if c.evalCond(c.cond()) {
		b.InternalCycle()
		c.push(b, c.PC+3)
		c.PC = target
		return 0
	}
	return 3
}

// ret implements RET: the return address is popped straight into PC.
func (c *CPU) ret(b Bus) uint16 {
	c.PC = c.pop(b)
	b.InternalCycle()
	return 0
}

// retCond implements RET cc. Evaluating the condition costs its own
// internal cycle regardless of outcome; a taken return costs a further one
// popping the address, matching documented RET cc timing (20/8 T-states).
func (c *CPU) retCond(b Bus) uint16 {
	b.InternalCycle()
	if c.evalCond(c.cond()) {
		c.PC = c.pop(b)
		b.InternalCycle()
		return 0
	}
	return 1
}

// reti implements RETI: identical to RET, plus IME is unconditionally set.
// Interrupt delivery itself is out of scope; this only restores the flag.
func (c *CPU) reti(b Bus) uint16 {
	c.PC = c.pop(b)
	b.InternalCycle()
	c.IME = true
	return 0
}

// rst implements RST n: pushes the return address and jumps to one of the
// eight fixed vectors encoded in r8High() * 8.
func (c *CPU) rst(b Bus) uint16 {
	vector := uint16(c.r8High()) * 8
	b.InternalCycle()
	c.push(b, c.PC+1)
	c.PC = vector
	return 0
}

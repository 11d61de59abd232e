package cpu

// ldR8R8 implements LD r8,r8 (opcodes 0x40-0x7F, minus HALT at 0x76, which
// dispatch intercepts before this is reached).
func (c *CPU) ldR8R8(b Bus) uint16 {
	val := c.getR8(b, c.r8Low())
	c.setR8(b, c.r8High(), val)
	return 1
}

// ldR8U8 implements LD r8,u8 (and LD (HL),u8).
func (c *CPU) ldR8U8(b Bus) uint16 {
	val := c.fetchOperand(b, 1)
	c.setR8(b, c.r8High(), val)
	return 2
}

// ldR16U16 implements LD r16,u16 over the BC/DE/HL/SP group.
func (c *CPU) ldR16U16(b Bus) uint16 {
	val := c.fetchOperand16(b, 1)
	c.setR16Group1(c.r16Sel(), val)
	return 3
}

// ldR16pA implements LD (r16),A over the BC/DE/HL+/HL- group.
func (c *CPU) ldR16pA(b Bus) uint16 {
	addr := c.r16Group2Addr(c.r16Sel())
	b.WriteByte(addr, c.AF.Hi)
	return 1
}

// ldAR16p implements LD A,(r16) over the BC/DE/HL+/HL- group.
func (c *CPU) ldAR16p(b Bus) uint16 {
	addr := c.r16Group2Addr(c.r16Sel())
	c.AF.Hi = b.ReadByte(addr)
	return 1
}

// ldU16pSP implements LD (u16),SP: SP is written out low byte first.
func (c *CPU) ldU16pSP(b Bus) uint16 {
	addr := c.fetchOperand16(b, 1)
	b.WriteByte(addr, uint8(c.SP))
	b.WriteByte(addr+1, uint8(c.SP>>8))
	return 3
}

// ldIOu8A implements LD (FF00+u8),A.
func (c *CPU) ldIOu8A(b Bus) uint16 {
	offset := c.fetchOperand(b, 1)
	b.WriteByte(0xFF00+uint16(offset), c.AF.Hi)
	return 2
}

// ldAIOu8 implements LD A,(FF00+u8).
func (c *CPU) ldAIOu8(b Bus) uint16 {
	offset := c.fetchOperand(b, 1)
	c.AF.Hi = b.ReadByte(0xFF00 + uint16(offset))
	return 2
}

// ldIOCA implements LD (FF00+C),A.
func (c *CPU) ldIOCA(b Bus) uint16 {
	b.WriteByte(0xFF00+uint16(c.BC.Lo), c.AF.Hi)
	return 1
}

// ldAIOC implements LD A,(FF00+C).
func (c *CPU) ldAIOC(b Bus) uint16 {
	c.AF.Hi = b.ReadByte(0xFF00 + uint16(c.BC.Lo))
	return 1
}

// ldU16pA implements LD (u16),A.
func (c *CPU) ldU16pA(b Bus) uint16 {
	addr := c.fetchOperand16(b, 1)
	b.WriteByte(addr, c.AF.Hi)
	return 3
}

// ldAU16p implements LD A,(u16).
func (c *CPU) ldAU16p(b Bus) uint16 {
	addr := c.fetchOperand16(b, 1)
	c.AF.Hi = b.ReadByte(addr)
	return 3
}

// ldSPHL implements LD SP,HL. SP's internal adder ties up the bus for one
// extra machine cycle, the same as other SP-manipulating stack ops.
func (c *CPU) ldSPHL(b Bus) uint16 {
	c.SP = c.HL.Uint16()
	b.InternalCycle()
	return 1
}

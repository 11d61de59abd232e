package cpu

// push writes a 16-bit value to the stack, high byte first, then low byte,
// predecrementing SP before each byte — the order real hardware uses, and
// the reason PUSH costs one more machine cycle than POP.
func (c *CPU) push(b Bus, val uint16) {
	c.SP--
	b.WriteByte(c.SP, uint8(val>>8))
	c.SP--
	b.WriteByte(c.SP, uint8(val))
}

// pop reads a 16-bit value off the stack, low byte first, then high byte,
// postincrementing SP after each byte.
func (c *CPU) pop(b Bus) uint16 {
	lo := uint16(b.ReadByte(c.SP))
	c.SP++
	hi := uint16(b.ReadByte(c.SP))
	c.SP++
	return hi<<8 | lo
}

// pushR16 implements PUSH r16 over the BC/DE/HL/AF group. The internal
// cycle models the extra bus-idle cycle real PUSH spends decrementing SP
// before the first byte write.
func (c *CPU) pushR16(b Bus) uint16 {
	val := c.getR16Group3(c.r16Sel())
	b.InternalCycle()
	c.push(b, val)
	return 1
}

// popR16 implements POP r16 over the BC/DE/HL/AF group; writing AF masks F's
// low nibble via setR16Group3.
func (c *CPU) popR16(b Bus) uint16 {
	val := c.pop(b)
	c.setR16Group3(c.r16Sel(), val)
	return 1
}

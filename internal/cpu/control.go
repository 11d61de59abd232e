package cpu

// stop implements STOP: treated as a 2-byte no-op stub. Real hardware uses
// STOP to halt the CPU and system clock pending a button press; that
// behavior is out of scope here (no input, no low-power modeling), so this
// only accounts for its documented instruction length.
func (c *CPU) stop() uint16 {
	c.Stopped = true
	return 2
}

// di implements DI: IME clears immediately (no one-instruction delay, per
// DESIGN.md's resolution of the EI/DI timing open question).
func (c *CPU) di() uint16 {
	c.IME = false
	return 1
}

// ei implements EI: IME sets immediately.
func (c *CPU) ei() uint16 {
	c.IME = true
	return 1
}

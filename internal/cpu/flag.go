package cpu

import "github.com/kestrelcore/gbcpu/internal/types"

// setFlag sets or clears a single flag bit of F, re-masking the low
// nibble to zero on every write — the low nibble of F is never live.
func (c *CPU) setFlag(flag types.Flag, value bool) {
	if value {
		c.AF.Lo |= flag
	} else {
		c.AF.Lo &^= flag
	}
	c.AF.Lo &= 0xF0
}

// flagSet reports whether the given flag bit is currently set.
func (c *CPU) flagSet(flag types.Flag) bool {
	return c.AF.Lo&flag == flag
}

// Package cpu implements the DMG CPU: an instruction-decode dispatcher
// over a compact opcode table, a register file with overlapped 8-bit and
// 16-bit views, flag semantics for arithmetic/logic/rotate operations, an
// interrupt/jump/call control path, and a micro-step scheduling discipline
// in which each memory access yields control to the driving loop so
// peripherals can run between sub-instruction cycles.
package cpu

import (
	"fmt"

	"github.com/kestrelcore/gbcpu/internal/types"
)

// Bus is everything the CPU needs from the memory map. *bus.Bus satisfies
// it structurally; tests substitute a lighter fake. Every ReadByte/
// WriteByte call, and every InternalCycle call, is a suspension point: the
// implementation is free to run peripherals there before returning.
type Bus interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, val uint8)
	InternalCycle()
}

// CPU holds the DMG register file and control state.
type CPU struct {
	AF, BC, DE, HL types.RegisterPair
	SP, PC         uint16

	// IME is the master interrupt-enable flag. Actual interrupt
	// vectoring is out of scope; IME only gates DI/EI/RETI bookkeeping.
	IME bool

	// currentInstr caches the two nibbles of the opcode (or, after a CB
	// prefix, the two nibbles of the CB sub-opcode) currently being
	// executed, so operand-selector helpers can recompute r8/r16/cond
	// fields on demand instead of threading them through every call.
	currentInstr [2]uint8

	// Halted and Stopped are reserved for the HALT/STOP opcodes. HALT
	// (0x76) panics as unimplemented in dispatch and never sets Halted;
	// STOP (0x10) is a 2-byte no-op stub that only sets Stopped.
	Halted  bool
	Stopped bool
}

// New returns a CPU initialized to the documented post-boot-ROM register
// values. This assumes DMG boot ROM completion; see DESIGN.md for the
// open question this resolves.
func New() *CPU {
	c := &CPU{
		SP:  0xFFFE,
		PC:  0x0100,
		IME: false,
	}
	c.AF.SetUint16(0x01B0)
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	return c
}

// A returns the accumulator.
func (c *CPU) A() uint8 { return c.AF.Hi }

// F returns the flag byte; its low nibble is always zero.
func (c *CPU) F() uint8 { return c.AF.Lo }

// Step fetches, decodes and executes exactly one instruction, including
// any CB-prefixed sub-opcode, then advances PC by the instruction's
// documented length. Every byte the CPU reads or writes through b, and
// every additional machine cycle a family consumes, is one suspension
// point a driving loop can step peripherals from.
func (c *CPU) Step(b Bus) {
	opcode := b.ReadByte(c.PC)
	hi, lo := opcode>>4, opcode&0xF
	c.currentInstr = [2]uint8{hi, lo}

	delta := c.dispatch(b, hi, lo)
	c.PC += delta
}

// fetchOperand reads the byte at PC+offset (1 or 2), the usual location of
// an instruction's immediate operand.
func (c *CPU) fetchOperand(b Bus, offset uint16) uint8 {
	return b.ReadByte(c.PC + offset)
}

// fetchOperand16 reads a little-endian 16-bit immediate starting at
// PC+offset, as two sequential byte accesses (low byte first).
func (c *CPU) fetchOperand16(b Bus, offset uint16) uint16 {
	lo := uint16(b.ReadByte(c.PC + offset))
	hi := uint16(b.ReadByte(c.PC + offset + 1))
	return hi<<8 | lo
}

// r8High extracts the r8 destination selector used by INC/DEC/LD r8,u8 in
// the 0x0-0x3 opcode row and as every CB-prefix op selector/bit index
// (the CB target itself is r8Low).
func (c *CPU) r8High() uint8 {
	return ((c.currentInstr[0] & 0x3) << 1) | ((c.currentInstr[1] & 0x8) >> 3)
}

// r8Low extracts the r8 source selector used as the rhs of LD r8,r8 and
// ALU-A,r8.
func (c *CPU) r8Low() uint8 {
	return c.currentInstr[1] & 0x7
}

// r16Sel extracts the selector choosing within r16 groups 1/2/3.
func (c *CPU) r16Sel() uint8 {
	return c.currentInstr[0] & 0x3
}

// cond extracts the condition-code selector (NZ, Z, NC, C).
func (c *CPU) cond() uint8 {
	return ((c.currentInstr[0] & 0x1) << 1) | ((c.currentInstr[1] & 0x8) >> 3)
}

// evalCond resolves the condition selected by cond() against current flags.
func (c *CPU) evalCond(sel uint8) bool {
	switch sel {
	case 0:
		return !c.flagSet(types.FlagZero)
	case 1:
		return c.flagSet(types.FlagZero)
	case 2:
		return !c.flagSet(types.FlagCarry)
	case 3:
		return c.flagSet(types.FlagCarry)
	default:
		panic("cpu: invalid condition selector")
	}
}

// getR8 reads the register selected by the 3-bit r8 field; selector 6
// means "indirect via HL through the bus" and costs a bus access.
func (c *CPU) getR8(b Bus, sel uint8) uint8 {
	switch sel {
	case 0:
		return c.BC.Hi
	case 1:
		return c.BC.Lo
	case 2:
		return c.DE.Hi
	case 3:
		return c.DE.Lo
	case 4:
		return c.HL.Hi
	case 5:
		return c.HL.Lo
	case 6:
		return b.ReadByte(c.HL.Uint16())
	case 7:
		return c.AF.Hi
	default:
		panic("cpu: invalid r8 selector")
	}
}

// setR8 writes the register selected by the 3-bit r8 field.
func (c *CPU) setR8(b Bus, sel uint8, val uint8) {
	switch sel {
	case 0:
		c.BC.Hi = val
	case 1:
		c.BC.Lo = val
	case 2:
		c.DE.Hi = val
	case 3:
		c.DE.Lo = val
	case 4:
		c.HL.Hi = val
	case 5:
		c.HL.Lo = val
	case 6:
		b.WriteByte(c.HL.Uint16(), val)
	case 7:
		c.AF.Hi = val
	default:
		panic("cpu: invalid r8 selector")
	}
}

// getR16Group1 resolves the "standard pairs" family: BC, DE, HL, SP.
func (c *CPU) getR16Group1(sel uint8) uint16 {
	switch sel {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	case 3:
		return c.SP
	default:
		panic("cpu: invalid r16 selector")
	}
}

// setR16Group1 writes the "standard pairs" family: BC, DE, HL, SP.
func (c *CPU) setR16Group1(sel uint8, v uint16) {
	switch sel {
	case 0:
		c.BC.SetUint16(v)
	case 1:
		c.DE.SetUint16(v)
	case 2:
		c.HL.SetUint16(v)
	case 3:
		c.SP = v
	default:
		panic("cpu: invalid r16 selector")
	}
}

// r16Group2Addr resolves the "post-indexed HL" family used by
// LD (r16),A / LD A,(r16): BC, DE, HL+ (post-increment), HL- (post-
// decrement). It returns the address to access and applies HL's side
// effect immediately.
func (c *CPU) r16Group2Addr(sel uint8) uint16 {
	switch sel {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		addr := c.HL.Uint16()
		c.HL.SetUint16(addr + 1)
		return addr
	case 3:
		addr := c.HL.Uint16()
		c.HL.SetUint16(addr - 1)
		return addr
	default:
		panic("cpu: invalid r16 selector")
	}
}

// getR16Group3 resolves the push/pop family: BC, DE, HL, AF.
func (c *CPU) getR16Group3(sel uint8) uint16 {
	switch sel {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	case 3:
		return c.AF.Uint16()
	default:
		panic("cpu: invalid r16 selector")
	}
}

// setR16Group3 writes the push/pop family: BC, DE, HL, AF. Writing AF
// masks the low nibble of F to zero (the POP AF edge case).
func (c *CPU) setR16Group3(sel uint8, v uint16) {
	switch sel {
	case 0:
		c.BC.SetUint16(v)
	case 1:
		c.DE.SetUint16(v)
	case 2:
		c.HL.SetUint16(v)
	case 3:
		c.AF.SetUint16(v)
		c.AF.Lo &= 0xF0
	default:
		panic("cpu: invalid r16 selector")
	}
}

// illegal aborts execution with a diagnostic naming the offending opcode.
func (c *CPU) illegal(opcode uint8) uint16 {
	panic(fmt.Sprintf("cpu: illegal opcode %#02X at PC=%#04X", opcode, c.PC))
}

// unimplemented aborts execution with a diagnostic naming an opcode that
// is recognized but deliberately not implemented (HALT).
func (c *CPU) unimplemented(name string, opcode uint8) uint16 {
	panic(fmt.Sprintf("cpu: unimplemented opcode %s (%#02X) at PC=%#04X", name, opcode, c.PC))
}

package cpu

import (
	"testing"

	"github.com/kestrelcore/gbcpu/internal/types"
)

func TestRlcaRotatesCircularlyIntoCarry(t *testing.T) {
	c := New()
	c.AF.Hi = 0x85 // 1000_0101
	c.currentInstr = [2]uint8{0x0, 0x7}
	c.afOps()
	if c.AF.Hi != 0x0B { // 0000_1011
		t.Errorf("A after RLCA = %#02X, want 0x0B", c.AF.Hi)
	}
	if !c.flagSet(types.FlagCarry) {
		t.Error("RLCA should set C from the bit that wrapped")
	}
}

func TestCbSwapTwiceIsIdentity(t *testing.T) {
	c := New()
	b := &fakeBus{}
	c.BC.Hi = 0xAB
	b.load(0x0100, 0xCB, 0x30) // SWAP B
	b.load(0x0102, 0xCB, 0x30) // SWAP B again

	c.Step(b)
	if c.BC.Hi != 0xBA {
		t.Fatalf("B after first SWAP = %#02X, want 0xBA", c.BC.Hi)
	}
	c.Step(b)
	if c.BC.Hi != 0xAB {
		t.Fatalf("B after second SWAP = %#02X, want 0xAB", c.BC.Hi)
	}
}

func TestCbInstructionLengthIsTwo(t *testing.T) {
	c := New()
	b := &fakeBus{}
	b.load(0x0100, 0xCB, 0x30) // SWAP B
	c.Step(b)
	if c.PC != 0x0102 {
		t.Errorf("PC after CB-prefixed instruction = %#04X, want 0x0102", c.PC)
	}
}

func TestCbBitSetsZeroWithoutWriteback(t *testing.T) {
	c := New()
	b := &fakeBus{}
	c.DE.Hi = 0x00 // D
	b.load(0x0100, 0xCB, 0x42) // BIT 0,D
	c.Step(b)
	if !c.flagSet(types.FlagZero) {
		t.Error("BIT 0,D with D=0 should set Z")
	}
	if c.DE.Hi != 0x00 {
		t.Error("BIT must not modify its operand")
	}
	if !c.flagSet(types.FlagHalfCarry) {
		t.Error("BIT always sets H")
	}
}

func TestCbResClearsBit(t *testing.T) {
	c := New()
	b := &fakeBus{}
	c.HL.SetUint16(0xC000)
	b.mem[0xC000] = 0xFF
	b.load(0x0100, 0xCB, 0x86) // RES 0,(HL)
	c.Step(b)
	if b.mem[0xC000] != 0xFE {
		t.Errorf("(HL) after RES 0,(HL) = %#02X, want 0xFE", b.mem[0xC000])
	}
}

func TestCbSetBit(t *testing.T) {
	c := New()
	b := &fakeBus{}
	c.BC.Lo = 0x00
	b.load(0x0100, 0xCB, 0xC1) // SET 0,C
	c.Step(b)
	if c.BC.Lo != 0x01 {
		t.Errorf("C after SET 0,C = %#02X, want 0x01", c.BC.Lo)
	}
}

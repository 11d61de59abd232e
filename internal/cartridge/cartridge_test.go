package cartridge

import "testing"

func makeRom(size int, headerType Type, title string) []byte {
	rom := make([]byte, size)
	copy(rom[0x134:], title)
	rom[0x147] = byte(headerType)
	return rom
}

func TestLoadRejectsShortRom(t *testing.T) {
	if _, ok := Load(make([]byte, 0x10), nil); ok {
		t.Error("Load should reject a ROM shorter than the header")
	}
}

func TestLoadRejectsUnknownType(t *testing.T) {
	rom := makeRom(0x8000, 0x04, "UNKNOWN") // 0x04 is not an assigned MBC byte
	if _, ok := Load(rom, nil); ok {
		t.Error("Load should reject an unrecognized cartridge type byte")
	}
}

func TestLoadAcceptsRomOnly(t *testing.T) {
	rom := makeRom(0x8000, ROMOnly, "TETRIS")
	c, ok := Load(rom, nil)
	if !ok {
		t.Fatal("Load rejected a well-formed ROM-only header")
	}
	if c.Title() != "TETRIS" {
		t.Errorf("Title() = %q, want TETRIS", c.Title())
	}
}

func TestRomOnlyReadsDirect(t *testing.T) {
	rom := makeRom(0x8000, ROMOnly, "")
	rom[0x4000] = 0x42
	c, _ := Load(rom, nil)
	if got := c.Read(0x4000); got != 0x42 {
		t.Errorf("Read(0x4000) = %#02X, want 0x42", got)
	}
}

func TestRomOnlyWritePanics(t *testing.T) {
	rom := makeRom(0x8000, ROMOnly, "")
	c, _ := Load(rom, nil)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic writing to a ROM-only cartridge")
		}
	}()
	c.Write(0x2000, 0x01)
}

func TestMBC1BankSwitching(t *testing.T) {
	rom := makeRom(0x40000, MBC1, "") // 16 banks of 0x4000
	rom[0x4000*2] = 0xAA              // bank 2, offset 0
	c, ok := Load(rom, nil)
	if !ok {
		t.Fatal("Load rejected a well-formed MBC1 header")
	}

	c.Write(0x2000, 0x02) // select bank 2
	if got := c.Read(0x4000); got != 0xAA {
		t.Errorf("Read(0x4000) after bank switch = %#02X, want 0xAA", got)
	}
}

func TestMBC1FixedBankUnaffectedBySwitch(t *testing.T) {
	rom := makeRom(0x40000, MBC1, "")
	rom[0x0000] = 0x11
	c, _ := Load(rom, nil)
	c.Write(0x2000, 0x03)
	if got := c.Read(0x0000); got != 0x11 {
		t.Errorf("Read(0x0000) = %#02X, want 0x11 (fixed bank unaffected)", got)
	}
}

func TestUnimplementedMBCPanicsOnAccessNotLoad(t *testing.T) {
	rom := makeRom(0x8000, MBC5, "")
	c, ok := Load(rom, nil)
	if !ok {
		t.Fatal("Load should accept a recognized-but-unimplemented MBC type")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on first MBC5 access")
		}
	}()
	c.Read(0x0000)
}

func TestRomByteOutOfRangeReturnsFF(t *testing.T) {
	rom := makeRom(0x8000, ROMOnly, "")
	c, _ := Load(rom, nil)
	if got := c.romByte(0x10000); got != 0xFF {
		t.Errorf("out-of-range romByte = %#02X, want 0xFF", got)
	}
}

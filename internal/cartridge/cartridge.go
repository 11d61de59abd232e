// Package cartridge decodes a ROM image's header and services the bus's
// 0x0000-0x7FFF and 0xA000-0xBFFF windows, implementing bank switching for
// the MBC families the bus actually needs to run CPU test ROMs.
package cartridge

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/kestrelcore/gbcpu/pkg/log"
)

// Cartridge holds the immutable ROM image, the detected MBC type, and the
// current ROM bank index (1 after Load; a bank-switch write stores the low
// five bits as-is, so writing 0 maps the switched window onto bank 0, the
// same bytes the fixed window serves).
type Cartridge struct {
	typ  Type
	rom  []byte
	bank uint8

	log log.Logger
}

// Load inspects the MBC-type byte at header offset 0x0147 and returns a
// Cartridge if it names a recognized family. It returns (nil, false) for an
// unknown byte or a ROM too short to carry a header, never for a
// recognized-but-unimplemented family — those fail lazily on first access.
func Load(rom []byte, logger log.Logger) (*Cartridge, bool) {
	if logger == nil {
		logger = log.NewNull()
	}
	if len(rom) < 0x148 {
		return nil, false
	}
	typ := Type(rom[0x147])
	if !typ.known() {
		return nil, false
	}
	return &Cartridge{typ: typ, rom: rom, bank: 1, log: logger}, true
}

// Type returns the cartridge's detected MBC family.
func (c *Cartridge) Type() Type {
	return c.typ
}

// Title returns the ASCII title stored at 0x0134-0x0143.
func (c *Cartridge) Title() string {
	return headerTitle(c.rom)
}

// Filename returns a filesystem-safe identifier for this cartridge, an MD5
// hash of its title — suitable for naming a (currently unimplemented)
// battery save file.
func (c *Cartridge) Filename() string {
	sum := md5.Sum([]byte(c.Title()))
	return hex.EncodeToString(sum[:])
}

// Fingerprint returns a fast 64-bit hash of the whole ROM image, cheap
// enough to use as a map key when a harness wants to recognize a
// previously-seen ROM without re-hashing it with MD5 every run.
func (c *Cartridge) Fingerprint() uint64 {
	return xxhash.Sum64(c.rom)
}

// Read services a bus access in 0x0000-0x7FFF or 0xA000-0xBFFF.
func (c *Cartridge) Read(addr uint16) uint8 {
	switch c.typ {
	case ROMOnly:
		return c.romByte(int(addr))
	case MBC1, MBC1RAM, MBC1RAMBattery:
		if addr <= 0x3FFF {
			return c.romByte(int(addr))
		}
		return c.romByte(int(addr) + 0x4000*(int(c.bank)-1))
	default:
		panic(fmt.Sprintf("cartridge: unimplemented MBC type %s read at %#04X", c.typ, addr))
	}
}

// Write services a bus write in 0x0000-0x7FFF or 0xA000-0xBFFF.
func (c *Cartridge) Write(addr uint16, val uint8) {
	switch c.typ {
	case ROMOnly:
		c.log.Errorf("cartridge: write-to-read-only-ROM at %#04X = %#02X", addr, val)
		panic(fmt.Sprintf("cartridge: write to read-only ROM at %#04X = %#02X", addr, val))
	case MBC1, MBC1RAM, MBC1RAMBattery:
		if addr >= 0x2000 && addr <= 0x3FFF {
			c.bank = val & 0x1F
			return
		}
		c.log.Errorf("cartridge: unimplemented MBC1 write at %#04X = %#02X", addr, val)
		panic(fmt.Sprintf("cartridge: unimplemented MBC1 write at %#04X = %#02X", addr, val))
	default:
		panic(fmt.Sprintf("cartridge: unimplemented MBC type %s write at %#04X", c.typ, addr))
	}
}

// romByte reads a ROM offset, returning 0xFF for an out-of-range bank
// access past the end of a short/synthetic ROM image rather than panicking
// — real hardware floats the bus in this case, and test ROMs routinely pad
// out to a power-of-two size the loader may not have bothered to match.
func (c *Cartridge) romByte(offset int) uint8 {
	if offset < 0 || offset >= len(c.rom) {
		return 0xFF
	}
	return c.rom[offset]
}

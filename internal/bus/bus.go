// Package bus implements the DMG's single addressable 16-bit bus: the only
// coupling point between the CPU and the rest of the machine. It owns
// video RAM, both work-RAM banks and their echo mirror, high RAM, the
// interrupt-enable byte, the I/O register block, and a reference to the
// cartridge, plus the monotonically increasing T-state counter the CPU and
// any attached peripherals share.
package bus

import (
	"github.com/kestrelcore/gbcpu/internal/cartridge"
	"github.com/kestrelcore/gbcpu/pkg/log"
)

// Bus is the DMG's single addressable 16-bit memory map.
type Bus struct {
	cart *cartridge.Cartridge

	vram  [0x2000]uint8
	wram0 [0x1000]uint8
	wramN [0x1000]uint8
	hram  [0x7F]uint8
	ie    uint8

	io *ioRegs

	cycles uint64

	// OnTick, when set, is invoked after every advance of the cycle
	// counter — once per bus byte access and once per CPU-internal
	// machine-cycle delay. A driving loop installs it to step peripherals
	// between CPU micro-cycles.
	OnTick func(cycles uint64)

	log log.Logger
}

// New constructs a Bus over the given cartridge. onSerial, if non-nil, is
// invoked with each byte written to the 0xFF01 serial register.
func New(cart *cartridge.Cartridge, onSerial func(byte), logger log.Logger) *Bus {
	if logger == nil {
		logger = log.NewNull()
	}
	return &Bus{
		cart: cart,
		io:   newIoRegs(onSerial, logger),
		log:  logger,
	}
}

// Cycles returns the accumulated T-state count.
func (b *Bus) Cycles() uint64 {
	return b.cycles
}

// tick advances the T-state counter by one machine cycle (4 T-states) and
// invokes OnTick, realizing one suspension point.
func (b *Bus) tick() {
	b.cycles += 4
	if b.OnTick != nil {
		b.OnTick(b.cycles)
	}
}

// InternalCycle accounts for a machine cycle the CPU spends without a
// matching bus access (a taken conditional jump, 16-bit inc/dec, ADD
// HL,r16, PUSH, an SP-manipulating stack op, RET/RETI/RST/CALL's extra
// cycle, and so on).
func (b *Bus) InternalCycle() {
	b.tick()
}

// ReadByte reads one byte and ticks the bus once.
func (b *Bus) ReadByte(addr uint16) uint8 {
	v := b.readRaw(addr)
	b.tick()
	return v
}

// WriteByte writes one byte and ticks the bus once.
func (b *Bus) WriteByte(addr uint16, val uint8) {
	b.writeRaw(addr, val)
	b.tick()
}

// ReadWord reads a little-endian 16-bit value as two sequential byte
// accesses (low byte at addr, high byte at addr+1), each ticking the bus.
func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := uint16(b.ReadByte(addr))
	hi := uint16(b.ReadByte(addr + 1))
	return hi<<8 | lo
}

// WriteWord writes a little-endian 16-bit value as two sequential byte
// accesses (low byte at addr, high byte at addr+1), each ticking the bus.
func (b *Bus) WriteWord(addr uint16, val uint16) {
	b.WriteByte(addr, uint8(val))
	b.WriteByte(addr+1, uint8(val>>8))
}

func (b *Bus) readRaw(addr uint16) uint8 {
	switch {
	case addr <= 0x7FFF:
		return b.cart.Read(addr)
	case addr >= 0x8000 && addr <= 0x9FFF:
		return b.vram[addr-0x8000]
	case addr >= 0xA000 && addr <= 0xBFFF:
		return b.cart.Read(addr)
	case addr >= 0xC000 && addr <= 0xCFFF:
		return b.wram0[addr-0xC000]
	case addr >= 0xD000 && addr <= 0xDFFF:
		return b.wramN[addr-0xD000]
	case addr >= 0xE000 && addr <= 0xFDFF:
		off := (addr - 0xE000) % 0x1E00
		if off < 0x1000 {
			return b.wram0[off]
		}
		return b.wramN[off-0x1000]
	case addr >= 0xFE00 && addr <= 0xFE9F:
		b.log.Debugf("bus: read from OAM at %#04X (unimplemented)", addr)
		return 0
	case addr >= 0xFEA0 && addr <= 0xFEFF:
		b.log.Debugf("bus: read from prohibited memory at %#04X", addr)
		return 0
	case addr >= 0xFF00 && addr <= 0xFF7F:
		return b.io.read(addr)
	case addr >= 0xFF80 && addr <= 0xFFFE:
		return b.hram[addr-0xFF80]
	case addr == 0xFFFF:
		return b.ie
	default:
		panic("bus: unreachable address range")
	}
}

func (b *Bus) writeRaw(addr uint16, val uint8) {
	switch {
	case addr <= 0x7FFF:
		b.cart.Write(addr, val)
	case addr >= 0x8000 && addr <= 0x9FFF:
		b.vram[addr-0x8000] = val
	case addr >= 0xA000 && addr <= 0xBFFF:
		b.cart.Write(addr, val)
	case addr >= 0xC000 && addr <= 0xCFFF:
		b.wram0[addr-0xC000] = val
	case addr >= 0xD000 && addr <= 0xDFFF:
		b.wramN[addr-0xD000] = val
	case addr >= 0xE000 && addr <= 0xFDFF:
		off := (addr - 0xE000) % 0x1E00
		if off < 0x1000 {
			b.wram0[off] = val
		} else {
			b.wramN[off-0x1000] = val
		}
	case addr >= 0xFE00 && addr <= 0xFE9F:
		b.log.Debugf("bus: write %#02X to OAM at %#04X (unimplemented)", val, addr)
	case addr >= 0xFEA0 && addr <= 0xFEFF:
		b.log.Debugf("bus: write %#02X to prohibited memory at %#04X", val, addr)
	case addr >= 0xFF00 && addr <= 0xFF7F:
		b.io.write(addr, val)
	case addr >= 0xFF80 && addr <= 0xFFFE:
		b.hram[addr-0xFF80] = val
	case addr == 0xFFFF:
		b.ie = val
	default:
		panic("bus: unreachable address range")
	}
}

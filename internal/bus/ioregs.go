package bus

import "github.com/kestrelcore/gbcpu/pkg/log"

// ioRegs services the 0xFF00-0xFF7F I/O register block. Only the subset
// CPU test ROMs actually depend on is implemented: the four-byte
// divider/timer window, the interrupt-request byte, the serial
// side-channel, and a read-only LY hardwired to 0x90. Everything else logs
// and degrades to read-0/write-ignored.
type ioRegs struct {
	timDiv [4]uint8 // 0xFF04 DIV, 0xFF05 TIMA, 0xFF06 TMA, 0xFF07 TAC
	intF   uint8    // 0xFF0F

	serialData uint8 // 0xFF01 SB
	onSerial   func(byte)

	log log.Logger
}

func newIoRegs(onSerial func(byte), logger log.Logger) *ioRegs {
	return &ioRegs{onSerial: onSerial, log: logger}
}

func (r *ioRegs) read(addr uint16) uint8 {
	switch {
	case addr == 0xFF01:
		return r.serialData
	case addr == 0xFF02:
		return 0x7E
	case addr >= 0xFF04 && addr <= 0xFF07:
		return r.timDiv[addr-0xFF04]
	case addr == 0xFF0F:
		return r.intF
	case addr == 0xFF44:
		// Stubbed "scanline at VBlank" so boot-ROM-less busy-waits on LY
		// terminate immediately.
		return 0x90
	default:
		r.log.Debugf("bus: read from unimplemented I/O register %#04X", addr)
		return 0
	}
}

func (r *ioRegs) write(addr uint16, val uint8) {
	switch {
	case addr == 0xFF01:
		r.serialData = val
		if r.onSerial != nil {
			r.onSerial(val)
		}
	case addr == 0xFF02:
		// no-op: serial transfer control/clock is not modeled.
	case addr >= 0xFF04 && addr <= 0xFF07:
		r.timDiv[addr-0xFF04] = val
	case addr == 0xFF0F:
		r.intF = val
	default:
		r.log.Debugf("bus: write %#02X to unimplemented I/O register %#04X", val, addr)
	}
}

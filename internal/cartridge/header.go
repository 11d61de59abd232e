package cartridge

import "fmt"

// Type is the MBC-type byte read from header offset 0x0147. Families beyond
// ROM-only and MBC1 are recognized so Load never rejects a cartridge header
// a real ROM would carry, but only ROM-only and MBC1 are actually wired up
// for reads/writes — every other family panics with an unimplemented-MBC
// diagnostic the first time the bus touches it.
type Type uint8

const (
	ROMOnly                    Type = 0x00
	MBC1                       Type = 0x01
	MBC1RAM                    Type = 0x02
	MBC1RAMBattery             Type = 0x03
	MBC2                       Type = 0x05
	MBC2Battery                Type = 0x06
	ROMRAM                     Type = 0x08
	ROMRAMBattery              Type = 0x09
	MMM01                      Type = 0x0B
	MMM01RAM                   Type = 0x0C
	MMM01RAMBattery            Type = 0x0D
	MBC3TimerBattery           Type = 0x0F
	MBC3TimerRAMBattery        Type = 0x10
	MBC3                       Type = 0x11
	MBC3RAM                    Type = 0x12
	MBC3RAMBattery             Type = 0x13
	MBC5                       Type = 0x19
	MBC5RAM                    Type = 0x1A
	MBC5RAMBattery             Type = 0x1B
	MBC5Rumble                 Type = 0x1C
	MBC5RumbleRAM              Type = 0x1D
	MBC5RumbleRAMBattery       Type = 0x1E
	MBC6                       Type = 0x20
	MBC7SensorRumbleRAMBattery Type = 0x22
	PocketCamera               Type = 0xFC
	BandaiTama5                Type = 0xFD
	HuC3                       Type = 0xFE
	HuC1RAMBattery             Type = 0xFF
)

var typeNames = map[Type]string{
	ROMOnly:                    "ROM only",
	MBC1:                       "MBC1",
	MBC1RAM:                    "MBC1+RAM",
	MBC1RAMBattery:             "MBC1+RAM+BATTERY",
	MBC2:                       "MBC2",
	MBC2Battery:                "MBC2+BATTERY",
	ROMRAM:                     "ROM+RAM",
	ROMRAMBattery:              "ROM+RAM+BATTERY",
	MMM01:                      "MMM01",
	MMM01RAM:                   "MMM01+RAM",
	MMM01RAMBattery:            "MMM01+RAM+BATTERY",
	MBC3TimerBattery:           "MBC3+TIMER+BATTERY",
	MBC3TimerRAMBattery:        "MBC3+TIMER+RAM+BATTERY",
	MBC3:                       "MBC3",
	MBC3RAM:                    "MBC3+RAM",
	MBC3RAMBattery:             "MBC3+RAM+BATTERY",
	MBC5:                       "MBC5",
	MBC5RAM:                    "MBC5+RAM",
	MBC5RAMBattery:             "MBC5+RAM+BATTERY",
	MBC5Rumble:                 "MBC5+RUMBLE",
	MBC5RumbleRAM:              "MBC5+RUMBLE+RAM",
	MBC5RumbleRAMBattery:       "MBC5+RUMBLE+RAM+BATTERY",
	MBC6:                       "MBC6",
	MBC7SensorRumbleRAMBattery: "MBC7+SENSOR+RUMBLE+RAM+BATTERY",
	PocketCamera:               "POCKET CAMERA",
	BandaiTama5:                "BANDAI TAMA5",
	HuC3:                       "HuC3",
	HuC1RAMBattery:             "HuC1+RAM+BATTERY",
}

// String implements fmt.Stringer so diagnostics can name the cartridge type
// instead of printing a bare byte.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%#02x)", uint8(t))
}

// known reports whether t matches one of the enumerated MBC-type bytes.
func (t Type) known() bool {
	_, ok := typeNames[t]
	return ok
}

// wired reports whether Read/Write actually implement this family, as
// opposed to merely recognizing it at load time.
func (t Type) wired() bool {
	switch t {
	case ROMOnly, MBC1, MBC1RAM, MBC1RAMBattery:
		return true
	default:
		return false
	}
}

// headerTitle extracts the 0x0134-0x0143 title field, stopping at the
// first NUL byte and so dropping any NUL padding. A non-zero CGB-flag byte
// at 0x143 is only dropped when a NUL comes before it; a title with no NUL
// in 0x0134-0x0142 keeps that byte.
func headerTitle(rom []byte) string {
	if len(rom) < 0x144 {
		return ""
	}
	end := 0x144
	for i := 0x134; i < 0x144; i++ {
		if rom[i] == 0 {
			end = i
			break
		}
	}
	return string(rom[0x134:end])
}

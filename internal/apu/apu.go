// Package apu is a stub. Sound synthesis is out of scope for this
// repository; this type only gives a driving loop something to tick
// alongside the CPU and PPU stub.
package apu

// Stub stands in for an audio processing unit. Tick only records the
// bus's cycle count.
type Stub struct {
	cycles uint64
}

// New returns an inert APU stub.
func New() *Stub {
	return &Stub{}
}

// Tick advances the stub's internal cycle count.
func (s *Stub) Tick(cycles uint64) {
	s.cycles = cycles
}

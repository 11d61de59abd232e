// Command baremetal is a stub standing in for a no_std microcontroller
// launcher in the shape of the original Rust firmware (netthier/
// stm32-gameboy's main.rs/peripherals.rs: clock init, a static allocator,
// a ROM baked in with include_bytes!, then an infinite gameboy.step()
// loop). A true bare-metal target needs a TinyGo runtime and board
// support package this repository does not carry; this binary only
// demonstrates the wiring a real launcher would do, running entirely
// hosted.
package main

import (
	"fmt"
	"os"

	"github.com/kestrelcore/gbcpu/internal/apu"
	"github.com/kestrelcore/gbcpu/internal/bus"
	"github.com/kestrelcore/gbcpu/internal/cartridge"
	"github.com/kestrelcore/gbcpu/internal/cpu"
	"github.com/kestrelcore/gbcpu/internal/ppu"
	"github.com/kestrelcore/gbcpu/pkg/log"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: baremetal <rom-path>")
		os.Exit(2)
	}

	rom, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "baremetal: %v\n", err)
		os.Exit(1)
	}

	logger := log.New()
	cart, ok := cartridge.Load(rom, logger)
	if !ok {
		fmt.Fprintln(os.Stderr, "baremetal: unrecognized cartridge header")
		os.Exit(1)
	}

	b := bus.New(cart, nil, logger)
	ppuStub := ppu.New()
	apuStub := apu.New()
	b.OnTick = func(cycles uint64) {
		ppuStub.Tick(cycles)
		apuStub.Tick(cycles)
	}

	c := cpu.New()
	for {
		c.Step(b)
	}
}

// Command gbcpu drives the CPU core against a cartridge image, for manual
// testing and for running CPU-focused test ROMs. It owns no rendering,
// audio or input — ppu and apu are wired in only as no-op stubs.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kestrelcore/gbcpu/internal/apu"
	"github.com/kestrelcore/gbcpu/internal/bus"
	"github.com/kestrelcore/gbcpu/internal/cartridge"
	"github.com/kestrelcore/gbcpu/internal/cpu"
	"github.com/kestrelcore/gbcpu/internal/ppu"
	"github.com/kestrelcore/gbcpu/internal/romloader"
	"github.com/kestrelcore/gbcpu/internal/serial"
)

func main() {
	var (
		maxCycles uint64
		verbose   bool
		webSerial bool
	)

	root := &cobra.Command{
		Use:   "gbcpu",
		Short: "DMG CPU core: decode, dispatch, and run a cartridge image",
	}

	runCmd := &cobra.Command{
		Use:   "run <rom>",
		Short: "Load a ROM and run the CPU until it halts, panics, or hits --max-cycles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], maxCycles, verbose, webSerial)
		},
	}
	runCmd.Flags().Uint64Var(&maxCycles, "max-cycles", 0, "stop after this many T-states (0 = unbounded)")
	runCmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug-level logging")
	runCmd.Flags().BoolVar(&webSerial, "web-serial", false, "also broadcast the serial port over a websocket on :6060")

	root.AddCommand(runCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string, maxCycles uint64, verbose, webSerial bool) (err error) {
	logger := logrus.New()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	rom, loadErr := romloader.Load(path)
	if loadErr != nil {
		return fmt.Errorf("gbcpu: loading %s: %w", path, loadErr)
	}

	cart, ok := cartridge.Load(rom, logger)
	if !ok {
		return fmt.Errorf("gbcpu: %s: unrecognized cartridge header", path)
	}
	logger.Infof("loaded %q (%s, fingerprint %#016x)", cart.Title(), cart.Type(), cart.Fingerprint())

	sinks := []serial.Sink{serial.Stdout()}
	if webSerial {
		ws := serial.NewWebSocketSink()
		http.HandleFunc("/serial", func(w http.ResponseWriter, r *http.Request) {
			if err := ws.Upgrade(w, r); err != nil {
				logger.Errorf("serial websocket upgrade failed: %v", err)
			}
		})
		go func() {
			logger.Infof("serial websocket listening on :6060/serial")
			logger.Errorf("serial websocket server exited: %v", http.ListenAndServe(":6060", nil))
		}()
		sinks = append(sinks, ws)
	}

	b := bus.New(cart, func(v byte) {
		for _, s := range sinks {
			s.WriteByte(v)
		}
	}, logger)

	ppuStub := ppu.New()
	apuStub := apu.New()
	b.OnTick = func(cycles uint64) {
		ppuStub.Tick(cycles)
		apuStub.Tick(cycles)
	}

	c := cpu.New()

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("cpu panic at PC=%#04X after %d cycles: %v", c.PC, b.Cycles(), r)
			err = fmt.Errorf("gbcpu: %v", r)
		}
	}()

	for maxCycles == 0 || b.Cycles() < maxCycles {
		c.Step(b)
	}
	return nil
}

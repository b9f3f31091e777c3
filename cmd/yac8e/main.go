// Command yac8e is a terminal CHIP-8 interpreter. It loads a ROM
// from disk, wires the virtual machine in internal/chip8 to a termbox
// display, an azul3d keyboard input source, and the wall clock, then runs
// the tick driver until the F1 key or a fatal machine error ends it.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/hexpwn/yac8e/internal/chip8"
	"github.com/hexpwn/yac8e/internal/clock"
	"github.com/hexpwn/yac8e/internal/display"
	"github.com/hexpwn/yac8e/internal/driver"
	"github.com/hexpwn/yac8e/internal/input"
	"github.com/hexpwn/yac8e/internal/rng"
)

func main() {
	app := &cli.App{
		Name:      "yac8e",
		Usage:     "a terminal CHIP-8 interpreter",
		ArgsUsage: "<rom-path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "show the diagnostic side panel",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: yac8e [--debug] <rom-path>", 2)
	}
	romPath := c.Args().Get(0)
	debug := c.Bool("debug")

	logger, closeLogger := newFileLogger()
	defer closeLogger()

	rom, err := chip8.LoadRomFile(romPath)
	if err != nil {
		logger.Error("failed to load rom", "path", romPath, "err", err)
		return cli.Exit(err, 1)
	}
	logger.Info("rom loaded", "rom", rom.String())

	machine := chip8.New(rng.New(time.Now().UnixNano()))
	if err := machine.LoadROM(rom.Data); err != nil {
		logger.Error("failed to install rom into memory", "err", err)
		return cli.Exit(err, 1)
	}

	sink, err := display.NewTermboxSink(rom.Name)
	if err != nil {
		logger.Error("failed to start display", "err", err)
		return cli.Exit(err, 1)
	}

	keys := input.NewKeyboardSource()

	d := driver.New(machine, sink, keys, clock.Wall{}, debug, logger)

	if err := d.Run(); err != nil {
		logger.Error("machine halted with a fatal error", "err", err)
		return cli.Exit(err, 1)
	}

	logger.Info("shut down gracefully")
	return nil
}

// newFileLogger writes structured logs to yac8e.log instead of stderr,
// since termbox takes over the terminal's alternate screen buffer for the
// program's lifetime (see SPEC_FULL.md, Ambient Stack/Logging).
func newFileLogger() (*log.Logger, func()) {
	f, err := os.OpenFile("yac8e.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		f, err = os.CreateTemp("", "yac8e-*.log")
		if err != nil {
			return log.New(os.Stderr), func() {}
		}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "yac8e",
	})
	return logger, func() { _ = f.Close() }
}

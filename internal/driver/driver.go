// Package driver implements the tick driver: the loop that
// fetches, decodes, and executes one instruction per tick, rate-limits
// itself to the VM clock, decouples the 60Hz timer cadence from the
// instruction rate, and presents the frame buffer to a display sink when
// it is dirty.
package driver

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/hexpwn/yac8e/internal/chip8"
)

const (
	// InstructionRate is the target instruction rate: roughly
	// 600Hz, matching the original's tuned "1.67ms per tick" loop.
	InstructionRate = 600
	// TimerRate is the fixed 60Hz rate the delay/sound timers decrement
	// at, independent of InstructionRate.
	TimerRate = 60

	instructionPeriod = time.Second / InstructionRate
	timerPeriod       = time.Second / TimerRate
)

// Clock is the narrow time source the driver suspends on.
type Clock interface {
	Now() time.Time
	SleepUntil(t time.Time)
}

// DisplaySink is the narrow render target the driver presents to at most
// once per tick. diag is nil unless diagnostics are enabled.
type DisplaySink interface {
	Present(frame [chip8.ScreenSize]byte, soundActive bool, diag *chip8.Snapshot) error
	Close() error
}

// InputSource is the narrow key-state producer the driver polls every
// tick. It runs independently of the interpreter goroutine;
// Snapshot must be safe to call concurrently with the producer's writes.
type InputSource interface {
	Snapshot() [chip8.NumKeys]bool
	ShutdownRequested() bool
	Close() error
}

// Driver owns one Machine and drives it against a set of boundary
// adapters. It is the sole mutator of the Machine.
type Driver struct {
	Machine   *chip8.Machine
	Display   DisplaySink
	Input     InputSource
	Clock     Clock
	Debug     bool
	Logger    *log.Logger
	nextTimer time.Time
}

// New constructs a Driver. Logger defaults to a discarding logger if nil.
func New(m *chip8.Machine, display DisplaySink, input InputSource, clock Clock, debug bool, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		Machine: m,
		Display: display,
		Input:   input,
		Clock:   clock,
		Debug:   debug,
		Logger:  logger,
	}
}

// Step runs one tick: apply the latest input snapshot, execute one
// instruction, advance timers if a 60Hz deadline has elapsed, and present
// the frame if dirty. It returns a non-nil error for a fatal decode or
// stack error, or when the display sink fails to present the frame.
func (d *Driver) Step() error {
	keys := d.Input.Snapshot()
	for k := uint8(0); k < chip8.NumKeys; k++ {
		d.Machine.SetKey(k, keys[k])
	}

	if err := d.Machine.Step(); err != nil {
		return err
	}

	now := d.Clock.Now()
	if d.nextTimer.IsZero() {
		d.nextTimer = now.Add(timerPeriod)
	}
	for !now.Before(d.nextTimer) {
		d.Machine.TickTimers()
		d.nextTimer = d.nextTimer.Add(timerPeriod)
	}

	if d.Machine.Dirty() {
		var diag *chip8.Snapshot
		if d.Debug {
			snap := d.Machine.Snapshot()
			diag = &snap
		}
		if err := d.Display.Present(*d.Machine.Frame(), d.Machine.SoundActive(), diag); err != nil {
			return fmt.Errorf("present frame: %w", err)
		}
		d.Machine.ClearDirty()
	}

	return nil
}

// Run drives Step in a loop paced to InstructionRate until the input
// source signals shutdown (the F1 key) or Step returns a fatal error. On
// either exit it tears down the display and input adapters and returns
// the fatal error if there was one.
func (d *Driver) Run() error {
	next := d.Clock.Now()

	var runErr error
	for {
		if d.Input.ShutdownRequested() {
			d.Logger.Info("shutdown key observed, tearing down")
			break
		}

		if err := d.Step(); err != nil {
			d.Logger.Error("fatal machine error", "err", err)
			runErr = err
			break
		}

		next = next.Add(instructionPeriod)
		d.Clock.SleepUntil(next)
	}

	if err := d.Display.Present(*d.Machine.Frame(), d.Machine.SoundActive(), nil); err != nil {
		d.Logger.Error("final present failed", "err", err)
	}
	if err := d.Display.Close(); err != nil {
		d.Logger.Error("closing display failed", "err", err)
	}
	if err := d.Input.Close(); err != nil {
		d.Logger.Error("closing input failed", "err", err)
	}

	return runErr
}

package driver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hexpwn/yac8e/internal/chip8"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }
func (c *fakeClock) SleepUntil(t time.Time) {
	if t.After(c.now) {
		c.now = t
	}
}

type fakeDisplay struct {
	presents int
	closed   bool
	lastDiag *chip8.Snapshot
}

func (d *fakeDisplay) Present(frame [chip8.ScreenSize]byte, soundActive bool, diag *chip8.Snapshot) error {
	d.presents++
	d.lastDiag = diag
	return nil
}
func (d *fakeDisplay) Close() error { d.closed = true; return nil }

type fakeInput struct {
	keys     [chip8.NumKeys]bool
	shutdown bool
	closed   bool
}

func (i *fakeInput) Snapshot() [chip8.NumKeys]bool { return i.keys }
func (i *fakeInput) ShutdownRequested() bool       { return i.shutdown }
func (i *fakeInput) Close() error                  { i.closed = true; return nil }

type fixedRNG struct{}

func (fixedRNG) NextByte() byte { return 0 }

func TestDriver_StepPresentsOnlyWhenDirty(t *testing.T) {
	m := chip8.New(fixedRNG{})
	require.NoError(t, m.LoadROM([]byte{0x60, 0x01})) // LD V0, 1: no draw

	display := &fakeDisplay{}
	input := &fakeInput{}
	clock := &fakeClock{now: time.Unix(0, 0)}

	d := New(m, display, input, clock, false, nil)
	require.NoError(t, d.Step())
	require.Equal(t, 0, display.presents)
}

func TestDriver_StepPresentsAfterCLS(t *testing.T) {
	m := chip8.New(fixedRNG{})
	require.NoError(t, m.LoadROM([]byte{0x00, 0xE0}))

	display := &fakeDisplay{}
	input := &fakeInput{}
	clock := &fakeClock{now: time.Unix(0, 0)}

	d := New(m, display, input, clock, false, nil)
	require.NoError(t, d.Step())
	require.Equal(t, 1, display.presents)
	require.Nil(t, display.lastDiag)
}

func TestDriver_DebugModeAttachesSnapshot(t *testing.T) {
	m := chip8.New(fixedRNG{})
	require.NoError(t, m.LoadROM([]byte{0x00, 0xE0}))

	display := &fakeDisplay{}
	input := &fakeInput{}
	clock := &fakeClock{now: time.Unix(0, 0)}

	d := New(m, display, input, clock, true, nil)
	require.NoError(t, d.Step())
	require.NotNil(t, display.lastDiag)
}

func TestDriver_RunStopsOnShutdownAndTearsDown(t *testing.T) {
	m := chip8.New(fixedRNG{})
	require.NoError(t, m.LoadROM([]byte{0x12, 0x00})) // JP 0x200, infinite loop

	display := &fakeDisplay{}
	input := &fakeInput{shutdown: true}
	clock := &fakeClock{now: time.Unix(0, 0)}

	d := New(m, display, input, clock, false, nil)
	err := d.Run()

	require.NoError(t, err)
	require.True(t, display.closed)
	require.True(t, input.closed)
	require.Equal(t, 1, display.presents, "final present on graceful shutdown")
}

func TestDriver_RunReturnsFatalDecodeError(t *testing.T) {
	m := chip8.New(fixedRNG{})
	require.NoError(t, m.LoadROM([]byte{0x81, 0x18})) // undefined 8XY8

	display := &fakeDisplay{}
	input := &fakeInput{}
	clock := &fakeClock{now: time.Unix(0, 0)}

	d := New(m, display, input, clock, false, nil)
	err := d.Run()

	require.Error(t, err)
	var decodeErr *chip8.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.True(t, display.closed)
	require.True(t, input.closed)
}

func TestDriver_TimerCadenceDecoupledFromInstructionRate(t *testing.T) {
	m := chip8.New(fixedRNG{})
	rom := make([]byte, 0, 40)
	for i := 0; i < 20; i++ {
		rom = append(rom, 0x70, 0x00) // ADD V0, 0: harmless, repeated
	}
	require.NoError(t, m.LoadROM(rom))

	display := &fakeDisplay{}
	input := &fakeInput{}
	clock := &fakeClock{now: time.Unix(0, 0)}
	d := New(m, display, input, clock, false, nil)

	// First tick initializes the 60Hz deadline without having elapsed it.
	require.NoError(t, d.Step())
	require.False(t, d.nextTimer.IsZero())

	firstDeadline := d.nextTimer
	clock.now = clock.now.Add(timerPeriod * 3)
	require.NoError(t, d.Step())
	require.True(t, d.nextTimer.After(firstDeadline), "deadline advances once the wall clock passes it")
}

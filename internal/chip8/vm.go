// Package chip8 implements the CHIP-8 virtual machine: memory, registers,
// stack, timers, frame buffer, and the decode/execute pipeline that drives
// them. The Machine has no knowledge of terminals or clocks; apart from
// LoadRomFile, which reads a ROM image from disk, the package does no I/O.
// Randomness is lent to the Machine through the RandomSource interface
// defined here and implemented by internal/rng; the display and input
// interfaces are defined by internal/driver.
package chip8

import "encoding/binary"

const (
	// MemSize is the number of addressable bytes of RAM.
	MemSize = 4096

	// EntryPoint is where ROM bytes are loaded and where PC starts.
	EntryPoint = 0x200

	// RomMaxBytes is the largest ROM that fits between EntryPoint and the
	// top of memory.
	RomMaxBytes = MemSize - EntryPoint

	// ScreenWidth and ScreenHeight describe the monochrome frame buffer.
	ScreenWidth  = 64
	ScreenHeight = 32
	ScreenSize   = ScreenWidth * ScreenHeight

	// NumRegisters is the number of general-purpose 8-bit registers, V0-VF.
	NumRegisters = 16

	// NumKeys is the size of the hexadecimal keypad.
	NumKeys = 16

	// StackDepth is the number of nested CALLs the machine can track.
	StackDepth = 16

	// FontGlyphBytes is the size in bytes of one built-in hex-digit glyph.
	FontGlyphBytes = 5
)

// font holds the sixteen built-in 4x5 hex-digit glyphs. Glyph d occupies
// font[d*5 : d*5+5] and is loaded into memory starting at address 0.
var font = [FontGlyphBytes * 16]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// RandomSource supplies uniformly-distributed bytes for the RND
// instruction. It is provided by internal/rng.
type RandomSource interface {
	NextByte() byte
}

// Machine is a single CHIP-8 virtual machine. The zero value is not usable;
// construct one with New. A Machine is not safe for concurrent use — the
// tick driver is its sole mutator.
type Machine struct {
	memory [MemSize]byte
	v      [NumRegisters]byte
	i      uint16
	pc     uint16
	stack  [StackDepth]uint16
	sp     int8 // -1 means empty

	delay uint8
	sound uint8

	fb    [ScreenSize]byte
	dirty bool

	keys [NumKeys]bool

	rng RandomSource

	// lastOpcode/lastMnem/ticks back the diagnostic panel; they
	// have no effect on interpretation.
	lastOpcode uint16
	lastMnem   string
	ticks      uint64
}

// New constructs a Machine with memory zeroed, the font loaded at address
// 0, PC at EntryPoint, and an empty stack.
func New(rng RandomSource) *Machine {
	m := &Machine{
		pc:  EntryPoint,
		sp:  -1,
		rng: rng,
	}
	copy(m.memory[:len(font)], font[:])
	return m
}

// LoadROM copies rom into memory starting at EntryPoint. It is the caller's
// responsibility to have checked len(rom) <= RomMaxBytes beforehand (see
// internal/chip8.Rom); LoadROM still guards against it so a malformed
// caller cannot corrupt memory beyond its bounds.
func (m *Machine) LoadROM(rom []byte) error {
	if len(rom) > RomMaxBytes {
		return &LoadError{Size: len(rom)}
	}
	copy(m.memory[EntryPoint:], rom)
	return nil
}

// SetKey updates the level-triggered state of one key on the 16-key pad.
func (m *Machine) SetKey(key uint8, pressed bool) {
	if key >= NumKeys {
		return
	}
	m.keys[key] = pressed
}

// AnyKeyPressed reports whether any key on the pad is currently pressed,
// used by the FX0A blocking wait.
func (m *Machine) AnyKeyPressed() bool {
	for _, pressed := range m.keys {
		if pressed {
			return true
		}
	}
	return false
}

// Frame returns the current 2048-pixel frame buffer. Callers must not
// retain the returned pointer past the current tick.
func (m *Machine) Frame() *[ScreenSize]byte { return &m.fb }

// Dirty reports whether the frame buffer changed since the last
// ClearDirty. The tick driver uses this to decide whether to present.
func (m *Machine) Dirty() bool { return m.dirty }

// ClearDirty resets the dirty flag after the tick driver has presented.
func (m *Machine) ClearDirty() { m.dirty = false }

// SoundActive reports whether the sound timer is non-zero.
func (m *Machine) SoundActive() bool { return m.sound > 0 }

// TickTimers decrements the delay and sound timers by one step each,
// saturating at zero. The tick driver calls this at a fixed 60Hz cadence,
// decoupled from the instruction rate.
func (m *Machine) TickTimers() {
	if m.delay > 0 {
		m.delay--
	}
	if m.sound > 0 {
		m.sound--
	}
}

// Snapshot is a read-only view of machine state for the diagnostic panel.
// It copies out just enough state to render one frame of the side panel
// without exposing Machine's internals.
type Snapshot struct {
	Ticks      uint64
	PC         uint16
	I          uint16
	V          [3]byte // V0, V1, V2
	StackTop   uint16
	StackEmpty bool
	Keys       [NumKeys]bool
	Opcode     uint16
	Mnemonic   string
}

// Snapshot reports the current state for the diagnostic panel.
func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{
		Ticks:      m.ticks,
		PC:         m.pc,
		I:          m.i,
		V:          [3]byte{m.v[0], m.v[1], m.v[2]},
		StackEmpty: m.sp < 0,
		Keys:       m.keys,
		Opcode:     m.lastOpcode,
		Mnemonic:   m.lastMnem,
	}
	if m.sp >= 0 {
		s.StackTop = m.stack[m.sp]
	}
	return s
}

// fetch reads the big-endian 16-bit word at PC, wrapping PC modulo MemSize.
func (m *Machine) fetch() uint16 {
	pc := int(m.pc) % MemSize
	next := (pc + 1) % MemSize
	return binary.BigEndian.Uint16([]byte{m.memory[pc], m.memory[next]})
}

// Package display implements the display sink boundary adapter with
// github.com/nsf/termbox-go, rendering a 64x32 cell grid.
package display

import (
	"fmt"

	"github.com/nsf/termbox-go"

	"github.com/hexpwn/yac8e/internal/chip8"
)

// diagPanelHeight is the number of rows reserved above the game grid for
// the diagnostic panel: a status line, a register/opcode line, a stack
// line, and a key-vector line (see drawDiagPanel).
const diagPanelHeight = 4

// TermboxSink renders the CHIP-8 frame buffer as a grid of terminal cells,
// with an optional diagnostic panel above it. It satisfies
// internal/driver.DisplaySink.
type TermboxSink struct {
	romName string
}

// NewTermboxSink initializes termbox in its default (output-only) mode.
// It never enables termbox's own input handling — internal/input owns
// keyboard polling independently, so the two adapters never contend for
// the terminal's raw mode.
func NewTermboxSink(romName string) (*TermboxSink, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("init termbox: %w", err)
	}
	termbox.SetOutputMode(termbox.OutputNormal)
	return &TermboxSink{romName: romName}, nil
}

// Present draws one frame. When soundActive is true the on/off cell
// colors invert, matching the original's sound-timer-driven glyph swap
// ("the sink may invert the presentation").
func (s *TermboxSink) Present(frame [chip8.ScreenSize]byte, soundActive bool, diag *chip8.Snapshot) error {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	onColor, offColor := termbox.ColorWhite, termbox.ColorBlack
	if soundActive {
		onColor, offColor = offColor, onColor
	}

	yOffset := 0
	if diag != nil {
		s.drawDiagPanel(*diag)
		yOffset = diagPanelHeight
	}

	for y := 0; y < chip8.ScreenHeight; y++ {
		for x := 0; x < chip8.ScreenWidth; x++ {
			bg := offColor
			if frame[y*chip8.ScreenWidth+x] == 1 {
				bg = onColor
			}
			termbox.SetCell(x, y+yOffset, ' ', termbox.ColorDefault, bg)
		}
	}

	return termbox.Flush()
}

func (s *TermboxSink) drawDiagPanel(snap chip8.Snapshot) {
	printAt(0, 0, fmt.Sprintf("rom=%s ticks=%d pc=0x%03X i=0x%04X", s.romName, snap.Ticks, snap.PC, snap.I))
	printAt(0, 1, fmt.Sprintf("v0=0x%02X v1=0x%02X v2=0x%02X op=0x%04X %s", snap.V[0], snap.V[1], snap.V[2], snap.Opcode, snap.Mnemonic))

	stackTop := "empty"
	if !snap.StackEmpty {
		stackTop = fmt.Sprintf("0x%03X", snap.StackTop)
	}
	printAt(0, 2, fmt.Sprintf("stack_top=%s", stackTop))

	keys := make([]byte, 0, chip8.NumKeys*2)
	for k := 0; k < chip8.NumKeys; k++ {
		if snap.Keys[k] {
			keys = append(keys, []byte(fmt.Sprintf("%X", k))...)
		} else {
			keys = append(keys, '.')
		}
	}
	printAt(0, 3, fmt.Sprintf("keys=%s", keys))
}

func printAt(x, y int, s string) {
	for i, r := range s {
		termbox.SetCell(x+i, y, r, termbox.ColorDefault, termbox.ColorDefault)
	}
}

// Close releases the terminal back to the shell.
func (s *TermboxSink) Close() error {
	termbox.Close()
	return nil
}

// Package input implements the input source boundary adapter with
// azul3d.org/engine/keyboard. It is an independent input producer: a
// goroutine that owns the 16-key vector and the dedicated shutdown key,
// entirely separate from the interpreter goroutine that only ever reads
// them.
package input

import (
	"sync"
	"time"

	"azul3d.org/engine/keyboard"

	"github.com/hexpwn/yac8e/internal/chip8"
)

// pollInterval is how often the producer samples the watcher. Matching
// the timer rate keeps key transitions from being missed between ticks
// without busy-polling the terminal.
const pollInterval = time.Second / 60

// keyMap is the fixed physical-to-CHIP-8 keypad layout,
// carried over from the original's updateKeys thread:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   -->  4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var keyMap = [chip8.NumKeys]keyboard.Key{
	0x1: keyboard.One,
	0x2: keyboard.Two,
	0x3: keyboard.Three,
	0xC: keyboard.Four,
	0x4: keyboard.Q,
	0x5: keyboard.W,
	0x6: keyboard.E,
	0xD: keyboard.R,
	0x7: keyboard.A,
	0x8: keyboard.S,
	0x9: keyboard.D,
	0xE: keyboard.F,
	0xA: keyboard.Z,
	0x0: keyboard.X,
	0xB: keyboard.C,
	0xF: keyboard.V,
}

// shutdownKey is the dedicated key that requests a graceful shutdown
// ("historically F1"), matching the original's KEY_F(1) check.
const shutdownKey = keyboard.F1

// KeyboardSource polls an azul3d keyboard.Watcher on its own goroutine
// and exposes a thread-safe snapshot of the 16-key pad plus the shutdown
// key. It satisfies internal/driver.InputSource.
type KeyboardSource struct {
	watcher *keyboard.Watcher

	mu       sync.RWMutex
	keys     [chip8.NumKeys]bool
	shutdown bool

	stop chan struct{}
	done chan struct{}
}

// NewKeyboardSource starts the producer goroutine and returns immediately.
func NewKeyboardSource() *KeyboardSource {
	s := &KeyboardSource{
		watcher: keyboard.NewWatcher(),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go s.poll()
	return s
}

func (s *KeyboardSource) poll() {
	defer close(s.done)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			var keys [chip8.NumKeys]bool
			for k, physical := range keyMap {
				keys[k] = s.watcher.Down(physical)
			}
			shutdown := s.watcher.Down(shutdownKey)

			s.mu.Lock()
			s.keys = keys
			s.shutdown = s.shutdown || shutdown
			s.mu.Unlock()
		}
	}
}

// Snapshot returns the current key vector. Safe to call concurrently with
// the producer goroutine.
func (s *KeyboardSource) Snapshot() [chip8.NumKeys]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keys
}

// ShutdownRequested reports whether the dedicated shutdown key has been
// observed since startup.
func (s *KeyboardSource) ShutdownRequested() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shutdown
}

// Close stops the producer goroutine and waits for it to exit.
func (s *KeyboardSource) Close() error {
	close(s.stop)
	<-s.done
	return nil
}

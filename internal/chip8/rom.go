package chip8

import (
	"fmt"
	"os"
	"path/filepath"
)

// Rom is a loaded ROM image: a raw byte stream with no header, checksum,
// or metadata, plus the file name it was read from for
// diagnostics.
type Rom struct {
	Name string
	Data []byte
}

// LoadRomFile reads path and validates its length against RomMaxBytes
// before returning. Validation happens here, ahead of Machine
// construction, per the "caller checks length... before invoking the
// VM constructor".
func LoadRomFile(path string) (Rom, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rom{}, &LoadError{Path: path, Err: err}
	}
	if len(data) > RomMaxBytes {
		return Rom{}, &LoadError{Path: path, Size: len(data)}
	}
	return Rom{Name: filepath.Base(path), Data: data}, nil
}

// String renders a short human-readable description, useful in logs.
func (r Rom) String() string {
	return fmt.Sprintf("%s (%d bytes)", r.Name, len(r.Data))
}

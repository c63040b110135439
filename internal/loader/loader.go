// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/chip8vm/internal/arch/chip8"
	"github.com/retroenv/chip8vm/internal/options"
)

var (
	// ErrEmptyROM is returned for a ROM that does not contain any data.
	ErrEmptyROM = errors.New("empty ROM")
	// ErrROMTooLarge is returned for a ROM that does not fit into the program memory.
	ErrROMTooLarge = errors.New("ROM too large")
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the input ROM file of the options.
func (l *Loader) Load(opts options.Program) ([]byte, error) {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}

	rom, err := l.LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading ROM %s: %w", opts.Input, err)
	}
	return rom, nil
}

// LoadFromBytes validates that the data fits into the program memory that starts at
// the program start address.
func (l *Loader) LoadFromBytes(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyROM
	}
	if len(data) > chip8.MaxProgramSize {
		return nil, fmt.Errorf("%w: %d bytes exceed the maximum of %d bytes",
			ErrROMTooLarge, len(data), chip8.MaxProgramSize)
	}
	return data, nil
}

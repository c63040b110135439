// Package detector handles system architecture detection.
package detector

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

var inesMagic = []byte{'N', 'E', 'S', 0x1A}

// Detector handles system architecture detection from ROM headers and file extensions.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the system architecture of a ROM. CHIP-8 programs do not have a header,
// so any ROM that is not identified as a different system is treated as CHIP-8.
func (d *Detector) Detect(filename string, rom []byte) arch.System {
	system := d.detectFromHeader(rom)
	if system == "" {
		system = d.detectFromFile(filename)
	}

	d.logger.Debug("Detected system",
		log.Stringer("system", system),
		log.String("file", filename))
	return system
}

func (d *Detector) detectFromHeader(rom []byte) arch.System {
	if bytes.HasPrefix(rom, inesMagic) {
		return arch.NES
	}
	return ""
}

// detectFromFile determines the system type based on file extension.
func (d *Detector) detectFromFile(filename string) arch.System {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".nes":
		return arch.NES
	default:
		return arch.CHIP8System
	}
}

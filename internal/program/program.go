// Package program represents a disassembled CHIP-8 program.
package program

import (
	"hash/crc32"

	"github.com/retroenv/chip8vm/internal/arch/chip8"
)

// Offset defines the content of an offset in a program that can represent data or code.
type Offset struct {
	// Data contains the data byte or all opcode bytes of the instruction that starts at this
	// offset. It is empty for the second byte of an instruction.
	Data []byte

	Instruction chip8.Instruction // decoded instruction for code offsets
	Type        OffsetType

	Label       string // name of label or subroutine if identified as a branch destination
	Code        string // asm output of this instruction
	Comment     string
	BranchingTo string // label name of the instruction target
}

// Program defines a CHIP-8 program that contains code or data.
type Program struct {
	CodeBaseAddress uint16
	Offsets         []Offset // one offset per ROM byte
	Checksum        uint32   // CRC32 checksum of the ROM
}

// New creates a new program for the given ROM data.
func New(rom []byte) *Program {
	return &Program{
		CodeBaseAddress: chip8.ProgramStart,
		Offsets:         make([]Offset, len(rom)),
		Checksum:        crc32.ChecksumIEEE(rom),
	}
}

// Address returns the memory address of the offset at the given index.
func (p *Program) Address(index int) uint16 {
	return p.CodeBaseAddress + uint16(index)
}

// Index returns the offset index of the memory address and whether it is part of the program.
func (p *Program) Index(address uint16) (int, bool) {
	if address < p.CodeBaseAddress {
		return 0, false
	}
	index := int(address - p.CodeBaseAddress)
	return index, index < len(p.Offsets)
}

// OffsetInfo returns the offset for the memory address or nil if the address is outside
// of the program.
func (p *Program) OffsetInfo(address uint16) *Offset {
	index, ok := p.Index(address)
	if !ok {
		return nil
	}
	return &p.Offsets[index]
}

// LastNonZeroOffset returns the index after the last offset that contains code, a label or
// a non zero data byte.
func (p *Program) LastNonZeroOffset() int {
	for i := len(p.Offsets) - 1; i >= 0; i-- {
		offset := p.Offsets[i]
		if offset.Label != "" || offset.IsType(CodeOffset) {
			return i + 1
		}
		for _, b := range offset.Data {
			if b != 0 {
				return i + 1
			}
		}
	}
	return 0
}

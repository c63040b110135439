package chip8

import "fmt"

// RawInstruction is an undecoded 16-bit CHIP-8 instruction word as fetched from memory.
// It is not necessarily a valid instruction.
type RawInstruction struct {
	word uint16
}

// NewRawInstruction returns a raw instruction for the given word.
func NewRawInstruction(word uint16) RawInstruction {
	return RawInstruction{word: word}
}

// FromBytes combines two bytes fetched from memory into a raw instruction,
// the first byte being the most significant one.
func FromBytes(high, low uint8) RawInstruction {
	return RawInstruction{word: uint16(high)<<8 | uint16(low)}
}

// Value returns the instruction word.
func (r RawInstruction) Value() uint16 {
	return r.word
}

// HighByte returns the most significant byte of the word.
func (r RawInstruction) HighByte() uint8 {
	return uint8(r.word >> 8)
}

// LowByte returns the least significant byte of the word.
func (r RawInstruction) LowByte() uint8 {
	return uint8(r.word)
}

// Nibble returns the 4-bit group at the given position, 0 being the most significant
// nibble. The position is taken modulo 4.
func (r RawInstruction) Nibble(position int) Nibble {
	shift := (3 - uint(position&3)) * 4
	return Nibble{value: uint8(r.word>>shift) & 0xF}
}

// X returns the first register index nibble of the word.
func (r RawInstruction) X() Nibble {
	return r.Nibble(1)
}

// Y returns the second register index nibble of the word.
func (r RawInstruction) Y() Nibble {
	return r.Nibble(2)
}

// N returns the lowest nibble of the word.
func (r RawInstruction) N() Nibble {
	return r.Nibble(3)
}

// NNN returns the lower 12 bits of the word as address.
func (r RawInstruction) NNN() Addr {
	return Addr{value: r.word & MaxAddress}
}

// KK returns the low byte of the word as immediate value.
func (r RawInstruction) KK() uint8 {
	return r.LowByte()
}

func (r RawInstruction) String() string {
	return fmt.Sprintf("$%04X", r.word)
}

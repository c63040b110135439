package chip8

import "fmt"

const maxNibble = 0xF

// Nibble is a 4-bit value in the range [0, 0xF].
type Nibble struct {
	value uint8
}

// NewNibble returns a nibble for the value or an error if it does not fit into 4 bits.
func NewNibble(v uint8) (Nibble, error) {
	if v > maxNibble {
		return Nibble{}, &OperandRangeError{Field: FieldNibble, Value: uint16(v), Max: maxNibble}
	}
	return Nibble{value: v}, nil
}

// Value returns the nibble as integer.
func (n Nibble) Value() uint8 {
	return n.value
}

func (n Nibble) String() string {
	return fmt.Sprintf("$%X", n.value)
}

// Addr is a 12-bit memory address in the range [0, MaxAddress].
type Addr struct {
	value uint16
}

// NewAddr returns an address for the value or an error if it exceeds the 12-bit
// CHIP-8 address space.
func NewAddr(v uint16) (Addr, error) {
	if v > MaxAddress {
		return Addr{}, &OperandRangeError{Field: FieldAddress, Value: v, Max: MaxAddress}
	}
	return Addr{value: v}, nil
}

// Value returns the address as integer.
func (a Addr) Value() uint16 {
	return a.value
}

func (a Addr) String() string {
	return fmt.Sprintf("$%03X", a.value)
}

// Register is one of the 16 general purpose registers V0-VF.
// VF doubles as flag register, the flag semantics are left to the execution engine.
type Register uint8

// General purpose registers.
const (
	V0 Register = iota
	V1
	V2
	V3
	V4
	V5
	V6
	V7
	V8
	V9
	VA
	VB
	VC
	VD
	VE
	VF
)

// RegisterFromNibble returns the register that the nibble indexes.
// Every nibble maps to exactly one register.
func RegisterFromNibble(n Nibble) Register {
	return Register(n.value)
}

// NewRegister returns the register for the index or an error if the index is not
// in the range [0, 0xF].
func NewRegister(index uint8) (Register, error) {
	if index > maxNibble {
		return 0, &OperandRangeError{Field: FieldRegister, Value: uint16(index), Max: maxNibble}
	}
	return Register(index), nil
}

// Index returns the register number to use for indexing a register file.
func (r Register) Index() int {
	return int(r)
}

// Nibble returns the register index as it is encoded in an instruction word.
func (r Register) Nibble() Nibble {
	return Nibble{value: uint8(r) & maxNibble}
}

func (r Register) String() string {
	return fmt.Sprintf("V%X", uint8(r))
}

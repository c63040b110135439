package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOpcode is matched by errors for words that do not map to any instruction.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrOperandOutOfRange is matched by errors for operand values that exceed their field.
	ErrOperandOutOfRange = errors.New("operand out of range")
)

// Field identifies an operand field of an instruction.
type Field uint8

// Operand fields.
const (
	FieldNibble   Field = iota // 4-bit value
	FieldAddress               // 12-bit address
	FieldRegister              // register index
)

var fieldNames = [...]string{
	FieldNibble:   "nibble",
	FieldAddress:  "address",
	FieldRegister: "register",
}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return fmt.Sprintf("field(%d)", uint8(f))
}

// UnknownOpcodeError is returned for a word that does not match any instruction.
type UnknownOpcodeError struct {
	Raw RawInstruction
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %s", e.Raw)
}

// Unwrap returns ErrUnknownOpcode.
func (e *UnknownOpcodeError) Unwrap() error {
	return ErrUnknownOpcode
}

// OperandRangeError is returned for an operand value that does not fit into its field.
type OperandRangeError struct {
	Field Field
	Value uint16
	Max   uint16
}

func (e *OperandRangeError) Error() string {
	return fmt.Sprintf("%s operand $%X exceeds maximum $%X", e.Field, e.Value, e.Max)
}

// Unwrap returns ErrOperandOutOfRange.
func (e *OperandRangeError) Unwrap() error {
	return ErrOperandOutOfRange
}

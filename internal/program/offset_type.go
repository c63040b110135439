package program

import (
	"fmt"
	"strings"
)

// OffsetType defines the type of a program offset.
type OffsetType uint8

// offset types.
const (
	UnknownOffset   OffsetType = 0
	CodeOffset      OffsetType = 1 << iota
	DataOffset                 // data byte or a word that does not decode to an instruction
	CallDestination            // destination of a call, indicating a subroutine
	JumpDestination            // destination of a jump or skip
	DataReference              // address loaded into the index register
)

// IsType returns whether the offset is of given type.
func (o *Offset) IsType(typ OffsetType) bool {
	return o.Type&typ != 0
}

// SetType sets the type of the offset.
func (o *Offset) SetType(typ OffsetType) {
	o.Type |= typ
}

// ClearType unsets the type of the offset.
func (o *Offset) ClearType(typ OffsetType) {
	o.Type &= ^typ
}

// HexCodeComment returns the bytes of the offset as hex string.
func (o *Offset) HexCodeComment() (string, error) {
	buf := &strings.Builder{}

	for i, b := range o.Data {
		if i > 0 {
			if _, err := buf.WriteString(" "); err != nil {
				return "", fmt.Errorf("writing separator: %w", err)
			}
		}
		if _, err := fmt.Fprintf(buf, "%02X", b); err != nil {
			return "", fmt.Errorf("writing hex byte: %w", err)
		}
	}

	return buf.String(), nil
}

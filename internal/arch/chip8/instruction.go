package chip8

import (
	"fmt"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Instruction is a decoded CHIP-8 instruction. The set of implementations is closed,
// every opcode family of the instruction set has exactly one variant type.
type Instruction interface {
	fmt.Stringer

	// Name returns the assembler mnemonic of the instruction.
	Name() string
	// Encode returns the instruction word that decodes to this instruction.
	Encode() RawInstruction

	instruction()
}

// ClearScreen clears the display (00E0).
type ClearScreen struct{}

// Return returns from a subroutine (00EE).
type Return struct{}

// Jump jumps to an address (1nnn).
type Jump struct {
	Addr Addr
}

// Call calls the subroutine at an address (2nnn).
type Call struct {
	Addr Addr
}

// SkipEqualImmediate skips the next instruction if Reg equals Value (3xkk).
type SkipEqualImmediate struct {
	Reg   Register
	Value uint8
}

// SkipNotEqualImmediate skips the next instruction if Reg does not equal Value (4xkk).
type SkipNotEqualImmediate struct {
	Reg   Register
	Value uint8
}

// SkipEqual skips the next instruction if X equals Y (5xyN).
// N is ignored when executing and only kept to encode the original word.
type SkipEqual struct {
	X Register
	Y Register
	N Nibble
}

// LoadImmediate sets Reg to Value (6xkk).
type LoadImmediate struct {
	Reg   Register
	Value uint8
}

// AddImmediate adds Value to Reg without carry (7xkk).
type AddImmediate struct {
	Reg   Register
	Value uint8
}

// Load sets Dst to Src (8xy0).
type Load struct {
	Dst Register
	Src Register
}

// Or sets Dst to Dst OR Src (8xy1).
type Or struct {
	Dst Register
	Src Register
}

// And sets Dst to Dst AND Src (8xy2).
type And struct {
	Dst Register
	Src Register
}

// Xor sets Dst to Dst XOR Src (8xy3).
type Xor struct {
	Dst Register
	Src Register
}

// AddWithCarry adds Src to Dst, VF receives the carry (8xy4).
type AddWithCarry struct {
	Dst Register
	Src Register
}

// Sub subtracts Src from Dst, VF receives NOT borrow (8xy5).
type Sub struct {
	Dst Register
	Src Register
}

// ShiftRight shifts right by one bit, VF receives the shifted out bit (8xy6).
// Interpreters differ in whether Src or Dst is the shifted value.
type ShiftRight struct {
	Dst Register
	Src Register
}

// ReverseSub sets Dst to Src minus Dst, VF receives NOT borrow (8xy7).
type ReverseSub struct {
	Dst Register
	Src Register
}

// ShiftLeft shifts left by one bit, VF receives the shifted out bit (8xyE).
// Interpreters differ in whether Src or Dst is the shifted value.
type ShiftLeft struct {
	Dst Register
	Src Register
}

// SkipNotEqual skips the next instruction if X does not equal Y (9xyN).
// N is ignored when executing and only kept to encode the original word.
type SkipNotEqual struct {
	X Register
	Y Register
	N Nibble
}

// LoadIndex sets the index register I to Addr (Annn).
type LoadIndex struct {
	Addr Addr
}

// JumpOffset jumps to Addr plus V0 (Bnnn).
type JumpOffset struct {
	Addr Addr
}

// Random sets Reg to a random byte masked with Mask (Cxkk).
type Random struct {
	Reg  Register
	Mask uint8
}

// Draw draws a sprite of Height rows from memory at I at the coordinates in X and Y,
// VF receives the collision flag (Dxyn).
type Draw struct {
	X      Register
	Y      Register
	Height Nibble
}

// SkipKeyPressed skips the next instruction if the key in Reg is pressed (Ex9E).
type SkipKeyPressed struct {
	Reg Register
}

// SkipKeyNotPressed skips the next instruction if the key in Reg is not pressed (ExA1).
type SkipKeyNotPressed struct {
	Reg Register
}

// LoadDelayTimer sets Reg to the delay timer value (Fx07).
type LoadDelayTimer struct {
	Reg Register
}

// WaitKey waits for a key press and stores the key in Reg (Fx0A).
type WaitKey struct {
	Reg Register
}

// SetDelayTimer sets the delay timer to Reg (Fx15).
type SetDelayTimer struct {
	Reg Register
}

// SetSoundTimer sets the sound timer to Reg (Fx18).
type SetSoundTimer struct {
	Reg Register
}

// AddIndex adds Reg to the index register I (Fx1E).
type AddIndex struct {
	Reg Register
}

// LoadFont points I at the built-in font sprite for the digit in Reg (Fx29).
type LoadFont struct {
	Reg Register
}

// StoreBCD stores the decimal digits of Reg at I, I+1 and I+2 (Fx33).
type StoreBCD struct {
	Reg Register
}

// StoreRegisters stores V0 through Reg in memory starting at I (Fx55).
type StoreRegisters struct {
	Reg Register
}

// LoadRegisters loads V0 through Reg from memory starting at I (Fx65).
type LoadRegisters struct {
	Reg Register
}

func (ClearScreen) Name() string { return chip8cpu.ClsName }
func (Return) Name() string { return chip8cpu.RetName }
func (Jump) Name() string { return chip8cpu.JpName }
func (Call) Name() string { return chip8cpu.CallName }
func (SkipEqualImmediate) Name() string { return chip8cpu.SeName }
func (SkipNotEqualImmediate) Name() string { return chip8cpu.SneName }
func (SkipEqual) Name() string { return chip8cpu.SeName }
func (LoadImmediate) Name() string { return chip8cpu.LdName }
func (AddImmediate) Name() string { return chip8cpu.AddName }
func (Load) Name() string { return chip8cpu.LdName }
func (Or) Name() string { return chip8cpu.OrName }
func (And) Name() string { return chip8cpu.AndName }
func (Xor) Name() string { return chip8cpu.XorName }
func (AddWithCarry) Name() string { return chip8cpu.AddName }
func (Sub) Name() string { return chip8cpu.SubName }
func (ShiftRight) Name() string { return chip8cpu.ShrName }
func (ReverseSub) Name() string { return chip8cpu.SubnName }
func (ShiftLeft) Name() string { return chip8cpu.ShlName }
func (SkipNotEqual) Name() string { return chip8cpu.SneName }
func (LoadIndex) Name() string { return chip8cpu.LdName }
func (JumpOffset) Name() string { return chip8cpu.JpName }
func (Random) Name() string { return chip8cpu.RndName }
func (Draw) Name() string { return chip8cpu.DrwName }
func (SkipKeyPressed) Name() string { return chip8cpu.SkpName }
func (SkipKeyNotPressed) Name() string { return chip8cpu.SknpName }
func (LoadDelayTimer) Name() string { return chip8cpu.LdName }
func (WaitKey) Name() string { return chip8cpu.LdName }
func (SetDelayTimer) Name() string { return chip8cpu.LdName }
func (SetSoundTimer) Name() string { return chip8cpu.LdName }
func (AddIndex) Name() string { return chip8cpu.AddName }
func (LoadFont) Name() string { return chip8cpu.LdName }
func (StoreBCD) Name() string { return chip8cpu.LdName }
func (StoreRegisters) Name() string { return chip8cpu.LdName }
func (LoadRegisters) Name() string { return chip8cpu.LdName }

func (i ClearScreen) String() string { return i.Name() }
func (i Return) String() string { return i.Name() }
func (i Jump) String() string { return formatCode(i.Name(), i.Addr) }
func (i Call) String() string { return formatCode(i.Name(), i.Addr) }
func (i SkipEqualImmediate) String() string {
	return formatCode(i.Name(), i.Reg, immediate(i.Value))
}
func (i SkipNotEqualImmediate) String() string {
	return formatCode(i.Name(), i.Reg, immediate(i.Value))
}
func (i SkipEqual) String() string { return formatCode(i.Name(), i.X, i.Y) }
func (i LoadImmediate) String() string { return formatCode(i.Name(), i.Reg, immediate(i.Value)) }
func (i AddImmediate) String() string { return formatCode(i.Name(), i.Reg, immediate(i.Value)) }
func (i Load) String() string { return formatCode(i.Name(), i.Dst, i.Src) }
func (i Or) String() string { return formatCode(i.Name(), i.Dst, i.Src) }
func (i And) String() string { return formatCode(i.Name(), i.Dst, i.Src) }
func (i Xor) String() string { return formatCode(i.Name(), i.Dst, i.Src) }
func (i AddWithCarry) String() string { return formatCode(i.Name(), i.Dst, i.Src) }
func (i Sub) String() string { return formatCode(i.Name(), i.Dst, i.Src) }
func (i ShiftRight) String() string { return formatShift(i.Name(), i.Dst, i.Src) }
func (i ReverseSub) String() string { return formatCode(i.Name(), i.Dst, i.Src) }
func (i ShiftLeft) String() string { return formatShift(i.Name(), i.Dst, i.Src) }
func (i SkipNotEqual) String() string { return formatCode(i.Name(), i.X, i.Y) }
func (i LoadIndex) String() string { return formatCode(i.Name(), "I", i.Addr) }
func (i JumpOffset) String() string { return formatCode(i.Name(), V0, i.Addr) }
func (i Random) String() string { return formatCode(i.Name(), i.Reg, immediate(i.Mask)) }
func (i Draw) String() string { return formatCode(i.Name(), i.X, i.Y, i.Height) }
func (i SkipKeyPressed) String() string {
	return formatCode(i.Name(), i.Reg)
}
func (i SkipKeyNotPressed) String() string {
	return formatCode(i.Name(), i.Reg)
}
func (i LoadDelayTimer) String() string { return formatCode(i.Name(), i.Reg, "DT") }
func (i WaitKey) String() string { return formatCode(i.Name(), i.Reg, "K") }
func (i SetDelayTimer) String() string { return formatCode(i.Name(), "DT", i.Reg) }
func (i SetSoundTimer) String() string { return formatCode(i.Name(), "ST", i.Reg) }
func (i AddIndex) String() string { return formatCode(i.Name(), "I", i.Reg) }
func (i LoadFont) String() string { return formatCode(i.Name(), "F", i.Reg) }
func (i StoreBCD) String() string { return formatCode(i.Name(), "B", i.Reg) }
func (i StoreRegisters) String() string { return formatCode(i.Name(), "[I]", i.Reg) }
func (i LoadRegisters) String() string { return formatCode(i.Name(), i.Reg, "[I]") }

func (ClearScreen) Encode() RawInstruction { return NewRawInstruction(0x00E0) }
func (Return) Encode() RawInstruction { return NewRawInstruction(0x00EE) }
func (i Jump) Encode() RawInstruction { return encodeAddr(0x1000, i.Addr) }
func (i Call) Encode() RawInstruction { return encodeAddr(0x2000, i.Addr) }
func (i SkipEqualImmediate) Encode() RawInstruction {
	return encodeRegisterByte(0x3000, i.Reg, i.Value)
}
func (i SkipNotEqualImmediate) Encode() RawInstruction {
	return encodeRegisterByte(0x4000, i.Reg, i.Value)
}
func (i SkipEqual) Encode() RawInstruction {
	return NewRawInstruction(encodeRegisters(0x5000, i.X, i.Y).Value() | uint16(i.N.value))
}
func (i LoadImmediate) Encode() RawInstruction {
	return encodeRegisterByte(0x6000, i.Reg, i.Value)
}
func (i AddImmediate) Encode() RawInstruction {
	return encodeRegisterByte(0x7000, i.Reg, i.Value)
}
func (i Load) Encode() RawInstruction { return encodeRegisters(0x8000, i.Dst, i.Src) }
func (i Or) Encode() RawInstruction { return encodeRegisters(0x8001, i.Dst, i.Src) }
func (i And) Encode() RawInstruction { return encodeRegisters(0x8002, i.Dst, i.Src) }
func (i Xor) Encode() RawInstruction { return encodeRegisters(0x8003, i.Dst, i.Src) }
func (i AddWithCarry) Encode() RawInstruction { return encodeRegisters(0x8004, i.Dst, i.Src) }
func (i Sub) Encode() RawInstruction { return encodeRegisters(0x8005, i.Dst, i.Src) }
func (i ShiftRight) Encode() RawInstruction { return encodeRegisters(0x8006, i.Dst, i.Src) }
func (i ReverseSub) Encode() RawInstruction { return encodeRegisters(0x8007, i.Dst, i.Src) }
func (i ShiftLeft) Encode() RawInstruction { return encodeRegisters(0x800E, i.Dst, i.Src) }
func (i SkipNotEqual) Encode() RawInstruction {
	return NewRawInstruction(encodeRegisters(0x9000, i.X, i.Y).Value() | uint16(i.N.value))
}
func (i LoadIndex) Encode() RawInstruction { return encodeAddr(0xA000, i.Addr) }
func (i JumpOffset) Encode() RawInstruction { return encodeAddr(0xB000, i.Addr) }
func (i Random) Encode() RawInstruction { return encodeRegisterByte(0xC000, i.Reg, i.Mask) }
func (i Draw) Encode() RawInstruction {
	return NewRawInstruction(encodeRegisters(0xD000, i.X, i.Y).Value() | uint16(i.Height.Value()))
}
func (i SkipKeyPressed) Encode() RawInstruction { return encodeRegister(0xE09E, i.Reg) }
func (i SkipKeyNotPressed) Encode() RawInstruction { return encodeRegister(0xE0A1, i.Reg) }
func (i LoadDelayTimer) Encode() RawInstruction { return encodeRegister(0xF007, i.Reg) }
func (i WaitKey) Encode() RawInstruction { return encodeRegister(0xF00A, i.Reg) }
func (i SetDelayTimer) Encode() RawInstruction { return encodeRegister(0xF015, i.Reg) }
func (i SetSoundTimer) Encode() RawInstruction { return encodeRegister(0xF018, i.Reg) }
func (i AddIndex) Encode() RawInstruction { return encodeRegister(0xF01E, i.Reg) }
func (i LoadFont) Encode() RawInstruction { return encodeRegister(0xF029, i.Reg) }
func (i StoreBCD) Encode() RawInstruction { return encodeRegister(0xF033, i.Reg) }
func (i StoreRegisters) Encode() RawInstruction { return encodeRegister(0xF055, i.Reg) }
func (i LoadRegisters) Encode() RawInstruction { return encodeRegister(0xF065, i.Reg) }

func (ClearScreen) instruction() {}
func (Return) instruction() {}
func (Jump) instruction() {}
func (Call) instruction() {}
func (SkipEqualImmediate) instruction() {}
func (SkipNotEqualImmediate) instruction() {}
func (SkipEqual) instruction() {}
func (LoadImmediate) instruction() {}
func (AddImmediate) instruction() {}
func (Load) instruction() {}
func (Or) instruction() {}
func (And) instruction() {}
func (Xor) instruction() {}
func (AddWithCarry) instruction() {}
func (Sub) instruction() {}
func (ShiftRight) instruction() {}
func (ReverseSub) instruction() {}
func (ShiftLeft) instruction() {}
func (SkipNotEqual) instruction() {}
func (LoadIndex) instruction() {}
func (JumpOffset) instruction() {}
func (Random) instruction() {}
func (Draw) instruction() {}
func (SkipKeyPressed) instruction() {}
func (SkipKeyNotPressed) instruction() {}
func (LoadDelayTimer) instruction() {}
func (WaitKey) instruction() {}
func (SetDelayTimer) instruction() {}
func (SetSoundTimer) instruction() {}
func (AddIndex) instruction() {}
func (LoadFont) instruction() {}
func (StoreBCD) instruction() {}
func (StoreRegisters) instruction() {}
func (LoadRegisters) instruction() {}

// immediate is a byte operand that is formatted as hex value.
type immediate uint8

func (i immediate) String() string {
	return fmt.Sprintf("$%02X", uint8(i))
}

// formatCode formats an instruction name with its comma separated operands.
func formatCode(name string, operands ...any) string {
	code := name
	for i, op := range operands {
		if i == 0 {
			code += " "
		} else {
			code += ", "
		}
		code += fmt.Sprint(op)
	}
	return code
}

// formatShift omits the source register if it is the same as the destination,
// which is the common way of writing shifts for interpreters that shift in place.
func formatShift(name string, dst, src Register) string {
	if dst == src {
		return formatCode(name, dst)
	}
	return formatCode(name, dst, src)
}

func encodeAddr(base uint16, addr Addr) RawInstruction {
	return NewRawInstruction(base | addr.value)
}

func encodeRegister(base uint16, x Register) RawInstruction {
	return NewRawInstruction(base | uint16(x.Nibble().value)<<8)
}

func encodeRegisterByte(base uint16, x Register, value uint8) RawInstruction {
	return NewRawInstruction(base | uint16(x.Nibble().value)<<8 | uint16(value))
}

func encodeRegisters(base uint16, x, y Register) RawInstruction {
	return NewRawInstruction(base | uint16(x.Nibble().value)<<8 | uint16(y.Nibble().value)<<4)
}

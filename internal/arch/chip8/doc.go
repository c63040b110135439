// Package chip8 implements the instruction layer of a CHIP-8 virtual machine.
//
// # Overview
//
// CHIP-8 programs are sequences of 16-bit big-endian words. This package turns such a
// word into a validated, typed instruction value that an execution engine or a
// disassembler can consume without any further range checks.
//
// # Data Flow
//
//  1. The host fetches two bytes at the program counter and builds a RawInstruction
//     with FromBytes.
//  2. Decode dispatches on the top nibble of the word and, for the ambiguous classes
//     0x0, 0x8, 0xE and 0xF, on a secondary key.
//  3. Operand fields are extracted and converted into the validated operand types
//     Nibble, Addr and Register.
//  4. The matching Instruction variant is returned, or an error describing why the word
//     could not be decoded.
//
// # Operand Types
//
// Nibble and Addr can only be created through their constructors, which reject values
// outside of [0, 0xF] and [0, 0xFFF]. Register is one of the 16 general registers V0-VF;
// RegisterFromNibble is total because its input is already a valid nibble.
//
// # Instruction Set
//
// Every standard CHIP-8 opcode has its own variant type:
//   - Flow control: ClearScreen, Return, Jump, JumpOffset, Call
//   - Conditional skips: SkipEqualImmediate, SkipNotEqualImmediate, SkipEqual,
//     SkipNotEqual, SkipKeyPressed, SkipKeyNotPressed
//   - Arithmetic and logic: LoadImmediate, AddImmediate, Load, Or, And, Xor,
//     AddWithCarry, Sub, ShiftRight, ReverseSub, ShiftLeft, Random
//   - Memory and index: LoadIndex, AddIndex, LoadFont, StoreBCD, StoreRegisters,
//     LoadRegisters
//   - Devices: Draw, LoadDelayTimer, WaitKey, SetDelayTimer, SetSoundTimer
//
// Instruction is a sealed interface, so a type switch over these variants covers the
// complete instruction set.
//
// # Errors
//
// Decode is total over all 65536 words. A word that matches no opcode returns an
// *UnknownOpcodeError that keeps the offending word, an invalid operand value returns an
// *OperandRangeError that keeps the field and value. Both can be matched with errors.Is
// against ErrUnknownOpcode and ErrOperandOutOfRange.
//
// # Usage Example
//
//	raw := chip8.FromBytes(memory[pc], memory[pc+1])
//	ins, err := chip8.Decode(raw)
//	if err != nil {
//		return fmt.Errorf("decoding instruction at $%03X: %w", pc, err)
//	}
//
//	switch ins := ins.(type) {
//	case chip8.Jump:
//		pc = ins.Addr.Value()
//	case chip8.LoadImmediate:
//		registers[ins.Reg.Index()] = ins.Value
//	}
//
// # Concurrency
//
// All types of this package are immutable values and Decode has no state, it can be
// called concurrently without any synchronization.
package chip8

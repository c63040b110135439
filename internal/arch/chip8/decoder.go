package chip8

// DecodeBytes decodes the instruction made of the two bytes fetched from memory.
func DecodeBytes(high, low uint8) (Instruction, error) {
	return Decode(FromBytes(high, low))
}

// Decode translates a raw instruction word into its instruction variant.
// Words that do not match any instruction return an *UnknownOpcodeError.
// Decode has no side effects and returns the same result for the same word.
func Decode(raw RawInstruction) (Instruction, error) {
	switch raw.Nibble(0).Value() {
	case 0x0:
		return decodeSystem(raw)
	case 0x1:
		return Jump{Addr: raw.NNN()}, nil
	case 0x2:
		return Call{Addr: raw.NNN()}, nil
	case 0x3:
		return SkipEqualImmediate{Reg: registerX(raw), Value: raw.KK()}, nil
	case 0x4:
		return SkipNotEqualImmediate{Reg: registerX(raw), Value: raw.KK()}, nil
	case 0x5:
		return SkipEqual{X: registerX(raw), Y: registerY(raw), N: raw.N()}, nil
	case 0x6:
		return LoadImmediate{Reg: registerX(raw), Value: raw.KK()}, nil
	case 0x7:
		return AddImmediate{Reg: registerX(raw), Value: raw.KK()}, nil
	case 0x8:
		return decodeArithmetic(raw)
	case 0x9:
		return SkipNotEqual{X: registerX(raw), Y: registerY(raw), N: raw.N()}, nil
	case 0xA:
		return LoadIndex{Addr: raw.NNN()}, nil
	case 0xB:
		return JumpOffset{Addr: raw.NNN()}, nil
	case 0xC:
		return Random{Reg: registerX(raw), Mask: raw.KK()}, nil
	case 0xD:
		return Draw{X: registerX(raw), Y: registerY(raw), Height: raw.N()}, nil
	case 0xE:
		return decodeKeypad(raw)
	default: // 0xF
		return decodeMisc(raw)
	}
}

// decodeSystem decodes the 0nnn class. Only 00E0 and 00EE are supported,
// machine code routine calls (SYS addr) are not.
func decodeSystem(raw RawInstruction) (Instruction, error) {
	switch raw.Value() {
	case 0x00E0:
		return ClearScreen{}, nil
	case 0x00EE:
		return Return{}, nil
	default:
		return nil, &UnknownOpcodeError{Raw: raw}
	}
}

// decodeArithmetic decodes the 8xyN register to register operations.
func decodeArithmetic(raw RawInstruction) (Instruction, error) {
	dst, src := registerX(raw), registerY(raw)

	switch raw.N().Value() {
	case 0x0:
		return Load{Dst: dst, Src: src}, nil
	case 0x1:
		return Or{Dst: dst, Src: src}, nil
	case 0x2:
		return And{Dst: dst, Src: src}, nil
	case 0x3:
		return Xor{Dst: dst, Src: src}, nil
	case 0x4:
		return AddWithCarry{Dst: dst, Src: src}, nil
	case 0x5:
		return Sub{Dst: dst, Src: src}, nil
	case 0x6:
		return ShiftRight{Dst: dst, Src: src}, nil
	case 0x7:
		return ReverseSub{Dst: dst, Src: src}, nil
	case 0xE:
		return ShiftLeft{Dst: dst, Src: src}, nil
	default:
		return nil, &UnknownOpcodeError{Raw: raw}
	}
}

// decodeKeypad decodes the ExNN key skip instructions.
func decodeKeypad(raw RawInstruction) (Instruction, error) {
	reg := registerX(raw)

	switch raw.KK() {
	case 0x9E:
		return SkipKeyPressed{Reg: reg}, nil
	case 0xA1:
		return SkipKeyNotPressed{Reg: reg}, nil
	default:
		return nil, &UnknownOpcodeError{Raw: raw}
	}
}

// decodeMisc decodes the FxNN timer, keypad and memory instructions.
func decodeMisc(raw RawInstruction) (Instruction, error) {
	reg := registerX(raw)

	switch raw.KK() {
	case 0x07:
		return LoadDelayTimer{Reg: reg}, nil
	case 0x0A:
		return WaitKey{Reg: reg}, nil
	case 0x15:
		return SetDelayTimer{Reg: reg}, nil
	case 0x18:
		return SetSoundTimer{Reg: reg}, nil
	case 0x1E:
		return AddIndex{Reg: reg}, nil
	case 0x29:
		return LoadFont{Reg: reg}, nil
	case 0x33:
		return StoreBCD{Reg: reg}, nil
	case 0x55:
		return StoreRegisters{Reg: reg}, nil
	case 0x65:
		return LoadRegisters{Reg: reg}, nil
	default:
		return nil, &UnknownOpcodeError{Raw: raw}
	}
}

func registerX(raw RawInstruction) Register {
	return RegisterFromNibble(raw.X())
}

func registerY(raw RawInstruction) Register {
	return RegisterFromNibble(raw.Y())
}

package chip8

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter and font data (512 bytes)
//	0x200-0xFFF: User program space (3584 bytes)
const (
	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	// Programs are loaded at address 0x200 but stored starting at offset 0x0 in ROM files.
	ProgramStart = 0x200

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = 0xFFF

	// MemorySize is the size of the addressable CHIP-8 memory.
	MemorySize = MaxAddress + 1

	// MaxProgramSize is the largest program that fits into memory after ProgramStart.
	MaxProgramSize = MemorySize - ProgramStart

	// OpcodeSize is the size of every CHIP-8 instruction in bytes.
	OpcodeSize = 2

	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16
)

// Flow describes how an instruction changes the program counter.
type Flow uint8

const (
	// FlowNext continues with the following instruction.
	FlowNext Flow = iota
	// FlowJump continues at the instruction target.
	FlowJump
	// FlowCall continues at the instruction target and returns to the following instruction.
	FlowCall
	// FlowReturn continues at the address on top of the stack.
	FlowReturn
	// FlowSkip continues with either the following or the one after it.
	FlowSkip
	// FlowIndirect continues at an address that depends on register state.
	FlowIndirect
)

var flowNames = [...]string{
	FlowNext:     "next",
	FlowJump:     "jump",
	FlowCall:     "call",
	FlowReturn:   "return",
	FlowSkip:     "skip",
	FlowIndirect: "indirect",
}

func (f Flow) String() string {
	if int(f) < len(flowNames) {
		return flowNames[f]
	}
	return "unknown"
}

// FlowOf returns the program counter behavior of the instruction.
func FlowOf(ins Instruction) Flow {
	switch ins.(type) {
	case Jump:
		return FlowJump
	case Call:
		return FlowCall
	case Return:
		return FlowReturn
	case JumpOffset:
		return FlowIndirect
	case SkipEqualImmediate, SkipNotEqualImmediate, SkipEqual, SkipNotEqual,
		SkipKeyPressed, SkipKeyNotPressed:
		return FlowSkip
	default:
		return FlowNext
	}
}

// Target returns the statically known branch destination of a jump or call instruction.
// JumpOffset is not included as its destination depends on V0.
func Target(ins Instruction) (Addr, bool) {
	switch ins := ins.(type) {
	case Jump:
		return ins.Addr, true
	case Call:
		return ins.Addr, true
	default:
		return Addr{}, false
	}
}

// DataReference returns the memory address that the instruction points the index
// register I at.
func DataReference(ins Instruction) (Addr, bool) {
	if ld, ok := ins.(LoadIndex); ok {
		return ld.Addr, true
	}
	return Addr{}, false
}

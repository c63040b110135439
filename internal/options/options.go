// Package options contains the program options.
package options

// Parameters contains file path options. The struct tags define the command line flags
// and positional arguments.
type Parameters struct {
	Input      string `arg:"positional" usage:"CHIP-8 ROM file to disassemble"`
	Output     string `flag:"o" usage:"output .asm file (default: stdout)"`
	Batch      string `flag:"batch" usage:"batch process files matching pattern (e.g. *.ch8)"`
	CPUProfile string `flag:"cpuprofile" usage:"write a CPU profile to the given directory"`
}

// Flags contains behavior options.
type Flags struct {
	Linear       bool `flag:"linear" usage:"decode every word in order instead of following the execution flow"`
	AssembleTest bool `flag:"verify" usage:"verify output by re-encoding and comparing to input"`
	Debug        bool `flag:"debug" usage:"enable debug logging"`
	Quiet        bool `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	NoHexComments bool `flag:"nohexcomments" usage:"omit hex opcode bytes in comments"`
	NoOffsets     bool `flag:"nooffsets" usage:"omit offsets in comments"`
	ZeroBytes     bool `flag:"z" usage:"include trailing zero bytes of the program"`
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	HexComments    bool
	Linear         bool // decode every word instead of following the execution flow
	OffsetComments bool
	ZeroBytes      bool
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		HexComments:    true,
		OffsetComments: true,
	}
}

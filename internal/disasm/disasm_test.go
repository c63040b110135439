package disasm

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/chip8vm/internal/arch/chip8"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/program"
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// testROM clears the screen, loads a sprite address, calls a subroutine and loops forever.
var testROM = []byte{
	0x00, 0xE0, // $200 cls
	0xA2, 0x0A, // $202 ld I, $20A
	0x22, 0x08, // $204 call $208
	0x12, 0x06, // $206 jp $206
	0x00, 0xEE, // $208 ret
	0xF0, 0x90, // $20A sprite data
}

func runDisasm(t *testing.T, rom []byte, opts options.Disassembler) *program.Program {
	t.Helper()

	dis := New(log.NewTestLogger(t), rom, opts)
	app, err := dis.Process(context.Background())
	assert.NoError(t, err)
	return app
}

func TestDisasm_FollowExecutionFlow(t *testing.T) {
	app := runDisasm(t, testROM, options.Disassembler{})

	assert.Equal(t, "Start", app.Offsets[0].Label)
	assert.Equal(t, chip8cpu.ClsName, app.Offsets[0].Code)
	assert.Equal(t, chip8cpu.LdName+" I, _data_020a", app.Offsets[2].Code)
	assert.Equal(t, chip8cpu.CallName+" _func_0208", app.Offsets[4].Code)
	assert.Equal(t, chip8cpu.JpName+" _label_0206", app.Offsets[6].Code)
	assert.Equal(t, "_label_0206", app.Offsets[6].BranchingTo)

	assert.Equal(t, "_label_0206", app.Offsets[6].Label)
	assert.Equal(t, "_func_0208", app.Offsets[8].Label)
	assert.Equal(t, "_data_020a", app.Offsets[10].Label)

	for i := 0; i < 10; i += 2 {
		assert.True(t, app.Offsets[i].IsType(program.CodeOffset), "offset %d", i)
		assert.Len(t, app.Offsets[i].Data, 2)
		assert.True(t, app.Offsets[i+1].IsType(program.CodeOffset), "offset %d", i+1)
		assert.Empty(t, app.Offsets[i+1].Data)
	}

	assert.True(t, app.Offsets[8].IsType(program.CallDestination))
	assert.True(t, app.Offsets[10].IsType(program.DataOffset|program.DataReference))
	assert.Equal(t, []byte{0xF0}, app.Offsets[10].Data)
	assert.Equal(t, []byte{0x90}, app.Offsets[11].Data)
	assert.Empty(t, app.Offsets[10].Comment)
}

func TestDisasm_Linear(t *testing.T) {
	app := runDisasm(t, testROM, options.Disassembler{Linear: true})

	assert.Equal(t, chip8cpu.RetName, app.Offsets[8].Code)
	assert.Equal(t, "_data_020a", app.Offsets[10].Label)
	assert.True(t, app.Offsets[10].IsType(program.DataOffset))
	assert.Equal(t, "unknown opcode $F090", app.Offsets[10].Comment)
	assert.Nil(t, app.Offsets[10].Instruction)
}

func TestDisasm_UnknownOpcode(t *testing.T) {
	rom := []byte{0x00, 0xE0, 0xFF, 0xFF}
	app := runDisasm(t, rom, options.Disassembler{})

	assert.True(t, app.Offsets[0].IsType(program.CodeOffset))
	assert.True(t, app.Offsets[2].IsType(program.DataOffset))
	assert.True(t, app.Offsets[3].IsType(program.DataOffset))
	assert.Equal(t, "unknown opcode $FFFF", app.Offsets[2].Comment)
	assert.Equal(t, []byte{0xFF}, app.Offsets[3].Data)
}

func TestDisasm_BranchIntoInstruction(t *testing.T) {
	rom := []byte{
		0x60, 0x01, // $200 ld V0, $01
		0x30, 0x00, // $202 se V0, $00
		0x12, 0x03, // $204 jp $203
		0x00, 0xEE, // $206 ret
	}
	app := runDisasm(t, rom, options.Disassembler{})

	converted := app.Offsets[2]
	assert.True(t, converted.IsType(program.DataOffset))
	assert.False(t, converted.IsType(program.CodeOffset))
	assert.Nil(t, converted.Instruction)
	assert.Equal(t, []byte{0x30}, converted.Data)
	assert.Equal(t, "branch into instruction detected: "+chip8cpu.SeName+" V0, $00", converted.Comment)

	assert.Equal(t, "_label_0203", app.Offsets[3].Label)
	assert.Equal(t, []byte{0x00}, app.Offsets[3].Data)
	assert.Equal(t, chip8cpu.JpName+" _label_0203", app.Offsets[4].Code)
}

func TestDisasm_DataReferenceIntoInstruction(t *testing.T) {
	rom := []byte{
		0xA2, 0x03, // $200 ld I, $203
		0x12, 0x02, // $202 jp $202
	}
	app := runDisasm(t, rom, options.Disassembler{})

	assert.Equal(t, chip8cpu.LdName+" I, $203", app.Offsets[0].Code)
	assert.Empty(t, app.Offsets[0].BranchingTo)

	jump := app.Offsets[2]
	assert.True(t, jump.IsType(program.CodeOffset))
	assert.NotNil(t, jump.Instruction)
	assert.Equal(t, chip8cpu.JpName+" _label_0202", jump.Code)
	assert.Equal(t, []byte{0x12, 0x02}, jump.Data)
	assert.Empty(t, app.Offsets[3].Label)
}

func TestDisasm_JumpOutsideProgram(t *testing.T) {
	app := runDisasm(t, []byte{0x13, 0x00}, options.Disassembler{})

	assert.Equal(t, chip8cpu.JpName+" $300", app.Offsets[0].Code)
	assert.Empty(t, app.Offsets[0].BranchingTo)
}

func TestDisasm_OddLength(t *testing.T) {
	app := runDisasm(t, []byte{0x00, 0xE0, 0x12}, options.Disassembler{})

	assert.True(t, app.Offsets[0].IsType(program.CodeOffset))
	assert.True(t, app.Offsets[2].IsType(program.DataOffset))
	assert.Equal(t, []byte{0x12}, app.Offsets[2].Data)
}

func TestDisasm_Comments(t *testing.T) {
	opts := options.NewDisassembler()
	app := runDisasm(t, testROM, opts)

	assert.Equal(t, "$0200  00 E0", app.Offsets[0].Comment)
	assert.Equal(t, "$0208  00 EE", app.Offsets[8].Comment)
	assert.Empty(t, app.Offsets[10].Comment)
}

func TestDisasm_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, linear := range []bool{false, true} {
		dis := New(log.NewTestLogger(t), testROM, options.Disassembler{Linear: linear})
		_, err := dis.Process(ctx)
		assert.True(t, errors.Is(err, context.Canceled), "linear %t", linear)
	}
}

func TestDisasm_Empty(t *testing.T) {
	app := runDisasm(t, nil, options.Disassembler{})
	assert.Empty(t, app.Offsets)
}

func TestSuccessors(t *testing.T) {
	target, err := chip8.NewAddr(0x300)
	assert.NoError(t, err)

	tests := []struct {
		name     string
		ins      chip8.Instruction
		expected []uint16
	}{
		{"next", chip8.ClearScreen{}, []uint16{0x202}},
		{"jump", chip8.Jump{Addr: target}, []uint16{0x300}},
		{"call", chip8.Call{Addr: target}, []uint16{0x300, 0x202}},
		{"skip", chip8.SkipKeyPressed{Reg: chip8.V1}, []uint16{0x202, 0x204}},
		{"return", chip8.Return{}, nil},
		{"jump offset", chip8.JumpOffset{Addr: target}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, successors(chip8.ProgramStart, tt.ins))
		})
	}
}

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/chip8vm/internal/loader"
	"github.com/retroenv/chip8vm/internal/options"
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

var testROM = []byte{
	0x00, 0xE0, // cls
	0x22, 0x06, // call $206
	0x12, 0x04, // jp $204
	0x00, 0xEE, // ret
}

func TestNew(t *testing.T) {
	p := New(log.NewTestLogger(t))

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
}

func TestExecute(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(tmpFile, testROM, 0600))

	opts := options.Program{}
	opts.Input = tmpFile
	opts.AssembleTest = true

	var buf bytes.Buffer
	p := New(log.NewTestLogger(t))
	app, err := p.Execute(context.Background(), opts, options.NewDisassembler(), &buf)
	assert.NoError(t, err)
	assert.Len(t, app.Offsets, len(testROM))

	output := buf.String()
	assert.Contains(t, output, ".org $200")
	assert.Contains(t, output, chip8cpu.CallName+" _func_0206")
	assert.Contains(t, output, "_label_0204:")
}

func TestExecute_LoadError(t *testing.T) {
	opts := options.Program{}
	opts.Input = filepath.Join(t.TempDir(), "missing.ch8")

	p := New(log.NewTestLogger(t))
	_, err := p.Execute(context.Background(), opts, options.NewDisassembler(), &bytes.Buffer{})
	assert.ErrorContains(t, err, "loading ROM")
}

func TestExecuteWithROM_Linear(t *testing.T) {
	opts := options.Program{}
	opts.Linear = true
	opts.AssembleTest = true

	disasmOpts := options.NewDisassembler()
	disasmOpts.Linear = true

	var buf bytes.Buffer
	p := New(log.NewTestLogger(t))
	_, err := p.ExecuteWithROM(context.Background(), []byte{0x00, 0xE0, 0xF0, 0x90}, opts, disasmOpts, &buf)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "unknown opcode $F090")
}

func TestExecuteWithROM_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(log.NewTestLogger(t))
	_, err := p.ExecuteWithROM(ctx, testROM, options.Program{}, options.NewDisassembler(), &bytes.Buffer{})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestExecute_EmptyROM(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "empty.ch8")
	assert.NoError(t, os.WriteFile(tmpFile, nil, 0600))

	opts := options.Program{}
	opts.Input = tmpFile

	p := New(log.NewTestLogger(t))
	_, err := p.Execute(context.Background(), opts, options.NewDisassembler(), &bytes.Buffer{})
	assert.True(t, errors.Is(err, loader.ErrEmptyROM))
}

func TestExecuteWithROM_UnsupportedSystem(t *testing.T) {
	opts := options.Program{}
	opts.Input = "game.nes"

	p := New(log.NewTestLogger(t))
	_, err := p.ExecuteWithROM(context.Background(), []byte{'N', 'E', 'S', 0x1A}, opts,
		options.NewDisassembler(), &bytes.Buffer{})
	assert.True(t, errors.Is(err, ErrUnsupportedSystem))
}

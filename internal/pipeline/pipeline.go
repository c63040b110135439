// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/chip8vm/internal/detector"
	"github.com/retroenv/chip8vm/internal/disasm"
	"github.com/retroenv/chip8vm/internal/loader"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/program"
	"github.com/retroenv/chip8vm/internal/verification"
	"github.com/retroenv/chip8vm/internal/writer"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnsupportedSystem is returned for ROMs of a system other than CHIP-8.
var ErrUnsupportedSystem = errors.New("unsupported system")

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete disassembly pipeline for the input file of the options.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler,
	output io.Writer) (*program.Program, error) {

	rom, err := p.loader.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}

	return p.ExecuteWithROM(ctx, rom, opts, disasmOpts, output)
}

// ExecuteWithROM runs the disassembly pipeline with a pre-loaded ROM.
// This is useful for testing and programmatic usage where the ROM is already in memory.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom []byte, opts options.Program,
	disasmOpts options.Disassembler, output io.Writer) (*program.Program, error) {

	if system := p.detector.Detect(opts.Input, rom); system != arch.CHIP8System {
		return nil, fmt.Errorf("%w '%s'", ErrUnsupportedSystem, system)
	}

	p.printInfo(opts, rom)

	dis := disasm.New(p.logger, rom, disasmOpts)
	app, err := dis.Process(ctx)
	if err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}

	w := writer.New(app, output, writer.Options{
		OffsetComments: disasmOpts.OffsetComments,
		ZeroBytes:      disasmOpts.ZeroBytes,
	})
	if err := w.Write(); err != nil {
		return nil, fmt.Errorf("writing program: %w", err)
	}

	if opts.AssembleTest {
		if err := verification.VerifyProgram(p.logger, rom, app); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return app, nil
}

// printInfo prints information about the ROM being processed.
func (p *Pipeline) printInfo(opts options.Program, rom []byte) {
	if opts.Quiet {
		return
	}

	mode := "flow"
	if opts.Linear {
		mode = "linear"
	}

	p.logger.Info("Processing CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", len(rom)),
		log.String("mode", mode),
	)
}

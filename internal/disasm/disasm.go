// Package disasm implements a CHIP-8 disassembler that converts a ROM into a program
// of code and data offsets.
package disasm

import (
	"context"
	"fmt"

	"github.com/retroenv/chip8vm/internal/arch/chip8"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/program"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

const startLabel = "Start"

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler

	rom []byte
	app *program.Program

	branchDestinations set.Set[uint16]    // set of all addresses that are branched to or referenced
	branchFrom         map[uint16][]uint16 // addresses of the instructions referencing a destination

	offsetsToParse      []uint16
	offsetsToParseAdded set.Set[uint16]
	offsetsParsed       set.Set[uint16]
}

// New creates a new disassembler for the given ROM data.
func New(logger *log.Logger, rom []byte, options options.Disassembler) *Disasm {
	return &Disasm{
		logger:              logger,
		options:             options,
		rom:                 rom,
		app:                 program.New(rom),
		branchDestinations:  set.New[uint16](),
		branchFrom:          map[uint16][]uint16{},
		offsetsToParseAdded: set.New[uint16](),
		offsetsParsed:       set.New[uint16](),
	}
}

// Process disassembles the ROM and returns the resulting program.
func (dis *Disasm) Process(ctx context.Context) (*program.Program, error) {
	if len(dis.app.Offsets) == 0 {
		return dis.app, nil
	}

	dis.logger.Debug("Code base address",
		log.Hex("address", dis.app.CodeBaseAddress))
	dis.app.Offsets[0].Label = startLabel

	if dis.options.Linear {
		if err := dis.sweepLinear(ctx); err != nil {
			return nil, err
		}
	} else {
		dis.addAddressToParse(chip8.ProgramStart)
		if err := dis.followExecutionFlow(ctx); err != nil {
			return nil, err
		}
	}

	dis.processJumpDestinations()
	dis.processData()
	if err := dis.setComments(); err != nil {
		return nil, err
	}

	dis.logger.Debug("Disassembly finished",
		log.Int("offsets", len(dis.app.Offsets)),
		log.Int("destinations", len(dis.branchDestinations)))
	return dis.app, nil
}

// followExecutionFlow decodes all instructions reachable from the program start.
func (dis *Disasm) followExecutionFlow(ctx context.Context) error {
	for len(dis.offsetsToParse) > 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("following execution flow: %w", err)
		}

		address := dis.offsetsToParse[0]
		dis.offsetsToParse = dis.offsetsToParse[1:]

		if dis.offsetsParsed.Contains(address) {
			continue
		}
		dis.offsetsParsed.Add(address)

		ins, ok := dis.processOffset(address)
		if !ok {
			continue
		}
		dis.addReferences(address, ins)
		for _, next := range successors(address, ins) {
			dis.addAddressToParse(next)
		}
	}
	return nil
}

// sweepLinear decodes every word of the ROM in order.
func (dis *Disasm) sweepLinear(ctx context.Context) error {
	for index := 0; index+1 < len(dis.app.Offsets); index += chip8.OpcodeSize {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("sweeping program: %w", err)
		}

		address := dis.app.Address(index)
		if ins, ok := dis.processOffset(address); ok {
			dis.addReferences(address, ins)
		}
	}
	return nil
}

// processOffset decodes the instruction at the given address and marks its bytes as code.
// It returns false if no instruction could be decoded at the address.
func (dis *Disasm) processOffset(address uint16) (chip8.Instruction, bool) {
	index, ok := dis.app.Index(address)
	if !ok {
		dis.logger.Debug("Address outside of program",
			log.Hex("address", address))
		return nil, false
	}

	offsetInfo := &dis.app.Offsets[index]
	if offsetInfo.IsType(program.CodeOffset) {
		// branch into the second byte of an instruction, handled when labels are assigned
		return nil, false
	}
	if index+1 >= len(dis.app.Offsets) {
		dis.logger.Debug("Incomplete instruction at end of program",
			log.Hex("address", address))
		return nil, false
	}
	if dis.app.Offsets[index+1].IsType(program.CodeOffset) {
		dis.logger.Debug("Instruction overlaps decoded code",
			log.Hex("address", address))
		return nil, false
	}

	raw := chip8.FromBytes(dis.rom[index], dis.rom[index+1])
	ins, err := chip8.Decode(raw)
	if err != nil {
		dis.logger.Debug("Decoding instruction failed",
			log.Hex("address", address),
			log.Stringer("word", raw),
			log.Err(err))
		offsetInfo.SetType(program.DataOffset)
		offsetInfo.Comment = err.Error()
		return nil, false
	}

	offsetInfo.Data = []byte{raw.HighByte(), raw.LowByte()}
	offsetInfo.Instruction = ins
	offsetInfo.Code = ins.String()
	offsetInfo.ClearType(program.DataOffset)
	offsetInfo.SetType(program.CodeOffset)

	second := &dis.app.Offsets[index+1]
	second.ClearType(program.DataOffset)
	second.SetType(program.CodeOffset)
	return ins, true
}

// addAddressToParse adds an address to the list to be processed if the address has not been
// processed yet.
func (dis *Disasm) addAddressToParse(address uint16) {
	if dis.offsetsToParseAdded.Contains(address) {
		return
	}
	dis.offsetsToParseAdded.Add(address)
	dis.offsetsToParse = append(dis.offsetsToParse, address)
}

// addReferences records the branch destination or data reference of an instruction.
func (dis *Disasm) addReferences(address uint16, ins chip8.Instruction) {
	if target, ok := chip8.Target(ins); ok {
		typ := program.JumpDestination
		if chip8.FlowOf(ins) == chip8.FlowCall {
			typ = program.CallDestination
		}
		dis.addBranchDestination(target.Value(), address, typ)
	}

	if target, ok := chip8.DataReference(ins); ok {
		dis.addBranchDestination(target.Value(), address, program.DataReference)
	}
}

func (dis *Disasm) addBranchDestination(destination, from uint16, typ program.OffsetType) {
	dis.branchDestinations.Add(destination)
	dis.branchFrom[destination] = append(dis.branchFrom[destination], from)

	if offsetInfo := dis.app.OffsetInfo(destination); offsetInfo != nil {
		offsetInfo.SetType(typ)
	}
}

// successors returns the addresses that execution can continue at after the instruction.
func successors(address uint16, ins chip8.Instruction) []uint16 {
	next := address + chip8.OpcodeSize

	switch chip8.FlowOf(ins) {
	case chip8.FlowJump:
		target, _ := chip8.Target(ins)
		return []uint16{target.Value()}

	case chip8.FlowCall:
		target, _ := chip8.Target(ins)
		return []uint16{target.Value(), next}

	case chip8.FlowSkip:
		return []uint16{next, next + chip8.OpcodeSize}

	case chip8.FlowReturn, chip8.FlowIndirect:
		return nil

	default:
		return []uint16{next}
	}
}

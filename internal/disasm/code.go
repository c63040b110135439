package disasm

import (
	"fmt"
	"slices"
	"strings"

	"github.com/retroenv/chip8vm/internal/arch/chip8"
	"github.com/retroenv/chip8vm/internal/program"
)

const (
	dataNaming  = "_data_%04x"
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
)

// processJumpDestinations processes all jump destinations and updates the callers with
// the generated jump destination label name.
func (dis *Disasm) processJumpDestinations() {
	branchDestinations := make([]uint16, 0, len(dis.branchDestinations))
	for dest := range dis.branchDestinations {
		branchDestinations = append(branchDestinations, dest)
	}
	slices.Sort(branchDestinations)

	for _, address := range branchDestinations {
		offsetInfo := dis.app.OffsetInfo(address)
		if offsetInfo == nil { // outside of the program, the address stays numeric
			continue
		}

		// if the offset is marked as code but does not have opcode bytes, the destination
		// is the second byte of an instruction.
		if offsetInfo.IsType(program.CodeOffset) && len(offsetInfo.Data) == 0 {
			if !offsetInfo.IsType(program.JumpDestination) && !offsetInfo.IsType(program.CallDestination) {
				// only referenced as data, the referrer keeps the numeric address
				continue
			}
			dis.handleJumpIntoInstruction(address)
		}

		name := offsetInfo.Label
		if name == "" {
			switch {
			case offsetInfo.IsType(program.CallDestination):
				name = fmt.Sprintf(funcNaming, address)
			case offsetInfo.IsType(program.JumpDestination):
				name = fmt.Sprintf(labelNaming, address)
			default:
				name = fmt.Sprintf(dataNaming, address)
			}
			offsetInfo.Label = name
		}

		for _, from := range dis.branchFrom[address] {
			referrer := dis.app.OffsetInfo(from)
			if referrer.Instruction == nil { // converted to data
				continue
			}
			referrer.BranchingTo = name
			referrer.Code = referenceLabel(referrer.Instruction, address, name)
		}
	}
}

// handleJumpIntoInstruction converts an instruction that has a jump destination label inside
// its second opcode byte into data.
func (dis *Disasm) handleJumpIntoInstruction(address uint16) {
	index, _ := dis.app.Index(address)
	offsetInfo := &dis.app.Offsets[index-1]

	offsetInfo.Comment = "branch into instruction detected: " + offsetInfo.Code
	offsetInfo.Code = ""
	offsetInfo.Instruction = nil
	offsetInfo.Data = offsetInfo.Data[:1]
	offsetInfo.ClearType(program.CodeOffset)
	offsetInfo.SetType(program.DataOffset)

	dis.app.Offsets[index].ClearType(program.CodeOffset)
}

// processData marks all offsets that are not code as data bytes.
func (dis *Disasm) processData() {
	for i := range dis.app.Offsets {
		offsetInfo := &dis.app.Offsets[i]
		if offsetInfo.IsType(program.CodeOffset) {
			continue
		}

		offsetInfo.SetType(program.DataOffset)
		if len(offsetInfo.Data) == 0 {
			offsetInfo.Data = []byte{dis.rom[i]}
		}
	}
}

// setComments generates the address and hex code comments of all code offsets.
func (dis *Disasm) setComments() error {
	for i := range dis.app.Offsets {
		offsetInfo := &dis.app.Offsets[i]
		if !offsetInfo.IsType(program.CodeOffset) || len(offsetInfo.Data) == 0 {
			continue
		}

		var comments []string
		if dis.options.OffsetComments {
			comments = []string{fmt.Sprintf("$%04X", dis.app.Address(i))}
		}

		if dis.options.HexComments {
			hexComment, err := offsetInfo.HexCodeComment()
			if err != nil {
				return fmt.Errorf("generating hex comment: %w", err)
			}
			comments = append(comments, hexComment)
		}

		if offsetInfo.Comment != "" {
			comments = append(comments, offsetInfo.Comment)
		}
		offsetInfo.Comment = strings.Join(comments, "  ")
	}
	return nil
}

// referenceLabel returns the instruction text with the referenced address replaced by
// the label name.
func referenceLabel(ins chip8.Instruction, address uint16, name string) string {
	return strings.Replace(ins.String(), fmt.Sprintf("$%03X", address), name, 1)
}

// Package verification verifies that the disassembled program recreates the input.
package verification

import (
	"fmt"

	"github.com/retroenv/chip8vm/internal/program"
	"github.com/retroenv/retrogolib/log"
)

// VerifyProgram verifies that encoding the disassembled program recreates the exact ROM.
func VerifyProgram(logger *log.Logger, rom []byte, app *program.Program) error {
	output := Encode(app)
	if err := checkBufferEqual(logger, rom, output); err != nil {
		return fmt.Errorf("program mismatch: %w", err)
	}
	return nil
}

// Encode converts the program back to binary form. Code offsets are encoded from their
// decoded instruction, data offsets output their data bytes.
func Encode(app *program.Program) []byte {
	output := make([]byte, 0, len(app.Offsets))

	for _, offset := range app.Offsets {
		if offset.Instruction != nil {
			raw := offset.Instruction.Encode()
			output = append(output, raw.HighByte(), raw.LowByte())
			continue
		}
		output = append(output, offset.Data...)
	}

	return output
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < 10 {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}

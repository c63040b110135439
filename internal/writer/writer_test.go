package writer

import (
	"bytes"
	"context"
	"fmt"
	"hash/crc32"
	"strings"
	"testing"

	"github.com/retroenv/chip8vm/internal/disasm"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/program"
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

var testROM = []byte{
	0x00, 0xE0, // $200 cls
	0xA2, 0x06, // $202 ld I, $206
	0x12, 0x04, // $204 jp $204
	0xF0, 0x90, // $206 sprite data
	0x00, 0x00, // $208 trailing zero bytes
}

func codeLine(code, comment string) string {
	return fmt.Sprintf("  %-30s ; %s\n", code, comment)
}

func disassemble(t *testing.T, rom []byte) *program.Program {
	t.Helper()

	dis := disasm.New(log.NewTestLogger(t), rom, options.NewDisassembler())
	app, err := dis.Process(context.Background())
	assert.NoError(t, err)
	return app
}

func TestWriter_Write(t *testing.T) {
	app := disassemble(t, testROM)

	var buf bytes.Buffer
	w := New(app, &buf, Options{OffsetComments: true})
	assert.NoError(t, w.Write())

	expected := fmt.Sprintf("; CHIP-8 ROM disassembly\n; CRC32 checksum: %08x\n; Code base address: $0200\n\n",
		crc32.ChecksumIEEE(testROM)) +
		".org $200\n\n" +
		"Start:\n" +
		codeLine(chip8cpu.ClsName, "$0200  00 E0") +
		codeLine(chip8cpu.LdName+" I, _data_0206", "$0202  A2 06") +
		"\n_label_0204:\n" +
		codeLine(chip8cpu.JpName+" _label_0204", "$0204  12 04") +
		"\n_data_0206:\n" +
		codeLine(".byte $f0, $90", "$0206")

	assert.Equal(t, expected, buf.String())
}

func TestWriter_ZeroBytes(t *testing.T) {
	app := disassemble(t, testROM)

	var buf bytes.Buffer
	w := New(app, &buf, Options{ZeroBytes: true})
	assert.NoError(t, w.Write())

	assert.True(t, strings.HasSuffix(buf.String(), "  .byte $f0, $90, $00, $00\n"))
}

func TestWriter_BundleDataWrites(t *testing.T) {
	rom := make([]byte, dataBytesPerLine+2)
	app := program.New(rom)
	for i := range app.Offsets {
		app.Offsets[i].SetType(program.DataOffset)
		app.Offsets[i].Data = []byte{byte(i + 1)}
	}
	app.Offsets[0].Comment = "sprite"

	var buf bytes.Buffer
	w := New(app, &buf, Options{OffsetComments: true})
	assert.NoError(t, w.ProcessOffsets(len(app.Offsets)))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "; $0200  sprite"))
	assert.True(t, strings.HasPrefix(lines[0], "  .byte $01, $02,"))
	assert.Equal(t, codeLine(".byte $11, $12", "$0210"), lines[1]+"\n")
}

func TestWriter_DataComment(t *testing.T) {
	rom := []byte{0x00, 0xE0, 0xFF, 0xFF}
	app := disassemble(t, rom)

	var buf bytes.Buffer
	w := New(app, &buf, Options{})
	assert.NoError(t, w.ProcessOffsets(len(app.Offsets)))

	assert.Contains(t, buf.String(), codeLine(".byte $ff, $ff", "unknown opcode $FFFF"))
}

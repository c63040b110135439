package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFromBytes(t *testing.T) {
	tests := []struct {
		name     string
		high     uint8
		low      uint8
		expected uint16
	}{
		{"zero", 0x00, 0x00, 0x0000},
		{"clear screen", 0x00, 0xE0, 0x00E0},
		{"jump", 0x12, 0x34, 0x1234},
		{"all bits set", 0xFF, 0xFF, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := FromBytes(tt.high, tt.low)
			assert.Equal(t, tt.expected, raw.Value())
			assert.Equal(t, tt.high, raw.HighByte())
			assert.Equal(t, tt.low, raw.LowByte())
		})
	}
}

func TestRawInstruction_Nibble(t *testing.T) {
	raw := NewRawInstruction(0xD1A5)

	tests := []struct {
		position int
		expected uint8
	}{
		{0, 0xD},
		{1, 0x1},
		{2, 0xA},
		{3, 0x5},
		{4, 0xD}, // positions wrap around
		{-1, 0x5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, raw.Nibble(tt.position).Value(), "position %d", tt.position)
	}
}

func TestRawInstruction_Fields(t *testing.T) {
	raw := NewRawInstruction(0xD1A5)

	assert.Equal(t, uint8(0x1), raw.X().Value())
	assert.Equal(t, uint8(0xA), raw.Y().Value())
	assert.Equal(t, uint8(0x5), raw.N().Value())
	assert.Equal(t, uint16(0x1A5), raw.NNN().Value())
	assert.Equal(t, uint8(0xA5), raw.KK())
	assert.Equal(t, "$D1A5", raw.String())
}

func TestRawInstruction_AllWordsRoundTripBytes(t *testing.T) {
	for word := range 0x10000 {
		raw := NewRawInstruction(uint16(word))
		back := FromBytes(raw.HighByte(), raw.LowByte())
		if back != raw {
			t.Fatalf("word $%04X changed to %s", word, back)
		}

		var fromNibbles uint16
		for pos := range 4 {
			fromNibbles = fromNibbles<<4 | uint16(raw.Nibble(pos).Value())
		}
		if fromNibbles != raw.Value() {
			t.Fatalf("word $%04X rebuilt from nibbles as $%04X", word, fromNibbles)
		}
	}
}

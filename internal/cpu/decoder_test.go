package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignExtend(t *testing.T) {
	cases := []struct {
		value uint32
		n     uint32
		want  uint32
	}{
		{1, 0, 0xFFFFFFFF},
		{2, 1, 0xFFFFFFFE},
		{0x808, 11, 0xFFFFF808},
		{0x008, 11, 0x00000008},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, signExtend(c.value, c.n))
	}
}

func TestDecodeImmediates(t *testing.T) {
	cases := []struct {
		name  string
		word  uint32
		class Class
		imm   uint32
	}{
		{"lui", 0xFEDCBC37, ClassLui, 0xFEDCB000},
		{"jal", 0xFEDCBC6F, ClassJal, 0xFFFCBFEC},
		{"jalr", 0xABC00067, ClassJalr, 0xFFFFFABC},
		{"branch", 0xDC000A63, ClassBranch, 0xFFFFF5D4},
		{"store", 0x9E000DA3, ClassStore, 0xFFFFF9FB},
		{"slli", 0x01A01013, ClassOpImm, 0xFFFFFFFA},
		{"srai", 0x40A05013, ClassOpImm, 0x0000000A},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in, err := decode(c.word)
			require.NoError(t, err)
			assert.Equal(t, c.class, in.Class)
			assert.Equal(t, c.imm, in.Imm)
		})
	}
}

func TestDecodeZeroWordIsHalt(t *testing.T) {
	in, err := decode(0x00000000)
	require.NoError(t, err)
	assert.True(t, in.IsHalt)
}

func TestDecodeUndefinedOpcode(t *testing.T) {
	_, err := decode(0x0000007F)
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, UndefinedRiscvForm, de.Kind)
}

func TestDecodeStoreRejectsUnsignedWidth(t *testing.T) {
	// funct3 100 (BU) under the STORE opcode (0x23).
	_, err := decode(0x00004023)
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, StoreMustBeSigned, de.Kind)
}

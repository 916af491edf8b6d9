package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlu(t *testing.T) {
	cases := []struct {
		op   AluOp
		lhs  uint32
		rhs  uint32
		want uint32
	}{
		{AluAdd, 1, 15, 16},
		{AluAdd, 0xFFFFFFFF, 2, 1},
		{AluSub, 10, 8, 2},
		{AluSlt, 0xFFFFFFFE, 0, 1},
		{AluSltu, 0xFFFFFFFE, 0, 0},
		{AluSll, 1, 3, 8},
		{AluSrl, 0x80000000, 3, 0x10000000},
		{AluSra, 0x80000000, 3, 0xF0000000},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, alu(c.op, c.lhs, c.rhs), "%s(%#x, %#x)", c.op, c.lhs, c.rhs)
	}
}

func TestBranchPredicates(t *testing.T) {
	assert.True(t, branch(BranchEq, 5, 5))
	assert.False(t, branch(BranchEq, 5, 6))
	assert.True(t, branch(BranchNe, 5, 6))
	assert.True(t, branch(BranchLt, 0xFFFFFFFF, 0))
	assert.False(t, branch(BranchLtu, 0xFFFFFFFF, 0))
	assert.True(t, branch(BranchGe, 0, 0xFFFFFFFF))
	assert.True(t, branch(BranchGeu, 0xFFFFFFFF, 0))
	assert.False(t, branch(BranchGeu, 0, 0xFFFFFFFF))
}

func TestExecuteJalAndAuipc(t *testing.T) {
	pc := uint32(0x2000)
	jal := Instruction{Class: ClassJal, Imm: 0x10}
	rd, next := execute(jal, 0, 0, pc)
	assert.Equal(t, pc+4, rd)
	assert.Equal(t, pc+0x10, next)

	auipc := Instruction{Class: ClassAuipc, Imm: 0x1000}
	rd, next = execute(auipc, 0, 0, pc)
	assert.Equal(t, pc+0x1000, rd)
	assert.Equal(t, pc+4, next)
}

// Package cpu implements the RV32I fetch/decode/execute/memory pipeline:
// a fetcher holding PC and instruction memory, a pure decoder turning raw
// 32-bit words into structured instructions, a flat 32-register file, an
// executer computing (rd_value, next_pc), and a word-addressed data
// memory supporting sub-word load/store. A Processor wires these together
// and a single Step executes one instruction.
package cpu

import "fmt"

// Form identifies which of the five RV32I immediate layouts an
// instruction uses.
type Form int

const (
	FormR Form = iota
	FormI
	FormS
	FormB
	FormU
	FormJ
)

// AluOp identifies an arithmetic/logic unit operation, shared between
// OP (register, register) and OP_IMM (register, immediate) instructions.
type AluOp int

const (
	AluAdd AluOp = iota
	AluSub
	AluSlt
	AluSltu
	AluSll
	AluSrl
	AluSra
	AluXor
	AluOr
	AluAnd
)

func (op AluOp) String() string {
	switch op {
	case AluAdd:
		return "add"
	case AluSub:
		return "sub"
	case AluSlt:
		return "slt"
	case AluSltu:
		return "sltu"
	case AluSll:
		return "sll"
	case AluSrl:
		return "srl"
	case AluSra:
		return "sra"
	case AluXor:
		return "xor"
	case AluOr:
		return "or"
	case AluAnd:
		return "and"
	default:
		return "?alu"
	}
}

// BranchOp identifies a BRANCH comparison.
type BranchOp int

const (
	BranchEq BranchOp = iota
	BranchNe
	BranchLt
	BranchGe
	BranchLtu
	BranchGeu
)

func (op BranchOp) String() string {
	switch op {
	case BranchEq:
		return "beq"
	case BranchNe:
		return "bne"
	case BranchLt:
		return "blt"
	case BranchGe:
		return "bge"
	case BranchLtu:
		return "bltu"
	case BranchGeu:
		return "bgeu"
	default:
		return "?branch"
	}
}

// MemWidth identifies the sub-word width and sign policy of a load or
// store.
type MemWidth int

const (
	WidthB  MemWidth = iota // signed byte
	WidthH                  // signed halfword
	WidthW                  // word
	WidthBU                 // unsigned byte
	WidthHU                 // unsigned halfword
)

func (w MemWidth) String() string {
	switch w {
	case WidthB:
		return "b"
	case WidthH:
		return "h"
	case WidthW:
		return "w"
	case WidthBU:
		return "bu"
	case WidthHU:
		return "hu"
	default:
		return "?width"
	}
}

// Class tags the semantic family of a decoded instruction. At most one
// of Instruction's AluOp/BranchOp/Width fields is meaningful for a given
// Class, matching spec.md's "OP(alu) | OP_IMM(alu) | ... " tagged variant.
type Class int

const (
	ClassLui Class = iota
	ClassAuipc
	ClassJal
	ClassJalr
	ClassBranch
	ClassLoad
	ClassStore
	ClassOp
	ClassOpImm
)

func (c Class) String() string {
	switch c {
	case ClassLui:
		return "lui"
	case ClassAuipc:
		return "auipc"
	case ClassJal:
		return "jal"
	case ClassJalr:
		return "jalr"
	case ClassBranch:
		return "branch"
	case ClassLoad:
		return "load"
	case ClassStore:
		return "store"
	case ClassOp:
		return "op"
	case ClassOpImm:
		return "op-imm"
	default:
		return "?class"
	}
}

// Instruction is a decoded instruction: a pure, transient value whose
// fields are derivatives of Raw. Only the field relevant to Class is
// meaningful (AluOp for ClassOp/ClassOpImm, BranchOp for ClassBranch,
// Width for ClassLoad/ClassStore); the decoder zeroes the others.
type Instruction struct {
	Raw      uint32
	Class    Class
	Form     Form
	AluOp    AluOp
	BranchOp BranchOp
	Width    MemWidth
	Rs1      uint32
	Rs2      uint32
	Rd       uint32
	Imm      uint32
	IsHalt   bool
}

// WritesRegister reports whether this instruction's class writes Rd.
func (in Instruction) WritesRegister() bool {
	switch in.Class {
	case ClassOp, ClassOpImm, ClassLui, ClassAuipc, ClassJal, ClassJalr, ClassLoad:
		return true
	default:
		return false
	}
}

// Mnemonic formats the instruction the way an assembler listing would,
// for trace output.
func (in Instruction) Mnemonic() string {
	imm := int32(in.Imm)
	switch in.Class {
	case ClassLui:
		return fmt.Sprintf("lui x%d, %d", in.Rd, imm)
	case ClassAuipc:
		return fmt.Sprintf("auipc x%d, %d", in.Rd, imm)
	case ClassJal:
		return fmt.Sprintf("jal x%d, %d", in.Rd, imm)
	case ClassJalr:
		return fmt.Sprintf("jalr x%d, x%d, %d", in.Rd, in.Rs1, imm)
	case ClassBranch:
		return fmt.Sprintf("%s x%d, x%d, %d", in.BranchOp, in.Rs1, in.Rs2, imm)
	case ClassLoad:
		return fmt.Sprintf("l%s x%d, %d(x%d)", in.Width, in.Rd, imm, in.Rs1)
	case ClassStore:
		return fmt.Sprintf("s%s x%d, %d(x%d)", in.Width, in.Rs2, imm, in.Rs1)
	case ClassOp:
		return fmt.Sprintf("%s x%d, x%d, x%d", in.AluOp, in.Rd, in.Rs1, in.Rs2)
	case ClassOpImm:
		name := in.AluOp.String() + "i"
		switch in.AluOp {
		case AluSltu:
			name = "sltiu"
		case AluSll, AluSrl, AluSra:
			imm &= 0x1F
		}
		return fmt.Sprintf("%s x%d, x%d, %d", name, in.Rd, in.Rs1, imm)
	default:
		return fmt.Sprintf("<unknown %#010x>", in.Raw)
	}
}

package cpu

import (
	"errors"
	"fmt"
)

// ErrHalted is returned by Step once the processor has already observed
// a halt sentinel; the run loop treats it as a clean stop rather than a
// fault.
var ErrHalted = errors.New("cpu: halted")

// DecodeErrorKind tags the reason decode of a raw instruction word failed.
type DecodeErrorKind int

const (
	// UndefinedRiscvForm means the opcode does not map to any known
	// instruction format.
	UndefinedRiscvForm DecodeErrorKind = iota
	// UndefinedBranchOption means funct3 does not map to a known branch
	// comparison under the BRANCH opcode.
	UndefinedBranchOption
	// UndefinedByteWideOption means funct3 does not map to a known
	// load/store width.
	UndefinedByteWideOption
	// StoreMustBeSigned means a STORE instruction requested an unsigned
	// width, which only loads may request.
	StoreMustBeSigned
	// InvalidAluOperation means (funct7, funct3) does not map to a known
	// ALU operation under OP or OP_IMM.
	InvalidAluOperation
)

func (k DecodeErrorKind) String() string {
	switch k {
	case UndefinedRiscvForm:
		return "undefined riscv form"
	case UndefinedBranchOption:
		return "undefined branch option"
	case UndefinedByteWideOption:
		return "undefined byte-wide option"
	case StoreMustBeSigned:
		return "store must be signed"
	case InvalidAluOperation:
		return "invalid alu operation"
	default:
		return "unknown decode error"
	}
}

// DecodeError reports a failure to decode a raw 32-bit instruction word.
type DecodeError struct {
	Kind  DecodeErrorKind
	Value uint32 // the funct3/funct7/opcode value that triggered the failure
	Raw   uint32 // the raw instruction word being decoded
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode instruction %#010x failed: %s (%#x)", e.Raw, e.Kind, e.Value)
}

// RegisterErrorKind tags the reason a register-file access failed.
type RegisterErrorKind int

const (
	// AddressOutOfBounds means the register index is >= 32.
	AddressOutOfBounds RegisterErrorKind = iota
)

// RegisterError reports an out-of-bounds register-file access.
type RegisterError struct {
	Index uint32
}

func (e *RegisterError) Error() string {
	return fmt.Sprintf("register access failed: index %d out of bounds", e.Index)
}

// MemoryErrorKind tags the reason a data-memory access failed.
type MemoryErrorKind int

const (
	// MemoryAddressOutOfBounds means the word index is >= the memory size.
	MemoryAddressOutOfBounds MemoryErrorKind = iota
)

// MemoryError reports an out-of-bounds data-memory access.
type MemoryError struct {
	Address uint32
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("memory access failed: address %#010x out of bounds", e.Address)
}

package cpu

import (
	"io"

	"github.com/lmarchetti/rv32i/internal/loader"
)

// InstructionMemorySize is the instruction memory size in 32-bit words.
const InstructionMemorySize = 0x10000

// DefaultIMEMBase is the default byte address instructions are loaded at
// and where PC is initialized.
const DefaultIMEMBase = 0x2000

// Fetcher holds the program counter and the instruction memory image.
type Fetcher struct {
	pc   uint32
	imem []uint32
}

// NewFetcher returns a Fetcher with PC initialized to base and a
// zeroed instruction memory of size words. A non-positive size falls
// back to InstructionMemorySize.
func NewFetcher(base uint32, size int) *Fetcher {
	if size <= 0 {
		size = InstructionMemorySize
	}
	return &Fetcher{pc: base, imem: make([]uint32, size)}
}

// PC returns the current program counter.
func (f *Fetcher) PC() uint32 {
	return f.pc
}

// SetPC overwrites the program counter with next.
func (f *Fetcher) SetPC(next uint32) {
	f.pc = next
}

// Fetch returns the instruction word at PC. The instruction memory is
// sized to absorb any word index derived from a 32-bit PC modulo its
// length, so in-bounds programs never observe a fault here.
func (f *Fetcher) Fetch() uint32 {
	index := (f.pc >> 2) % uint32(len(f.imem))
	return f.imem[index]
}

// LoadHex reads hex words from r and writes them sequentially into
// instruction memory starting at word index baseByteOffset>>2.
func (f *Fetcher) LoadHex(r io.Reader, baseByteOffset uint32) error {
	index := baseByteOffset >> 2
	for woe := range loader.StartLoading(r) {
		if woe.Err != nil {
			return woe.Err
		}
		if int(index) >= len(f.imem) {
			return &loader.Error{Err: errOutOfInstructionMemory}
		}
		f.imem[index] = woe.Word
		index++
	}
	return nil
}

var errOutOfInstructionMemory = instructionMemoryOverflow{}

type instructionMemoryOverflow struct{}

func (instructionMemoryOverflow) Error() string {
	return "program exceeds instruction memory capacity"
}

package cpu

// NumRegisters is the number of architectural general-purpose registers.
const NumRegisters = 32

// abiAliases maps register index to its conventional RISC-V ABI name.
var abiAliases = [NumRegisters]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// RegisterFile is the flat 32-entry architectural register file. Index 0
// is hard-wired to zero: writes to it are silently discarded.
type RegisterFile struct {
	regs [NumRegisters]uint32
}

// Read returns the value at index, or a RegisterError if index is out of
// bounds.
func (rf *RegisterFile) Read(index uint32) (uint32, error) {
	if index >= NumRegisters {
		return 0, &RegisterError{Index: index}
	}
	return rf.regs[index], nil
}

// Write stores value at index, discarding writes to index 0, or returns
// a RegisterError if index is out of bounds.
func (rf *RegisterFile) Write(index uint32, value uint32) error {
	if index >= NumRegisters {
		return &RegisterError{Index: index}
	}
	if index == 0 {
		return nil
	}
	rf.regs[index] = value
	return nil
}

// Dump returns a snapshot of every register paired with its ABI alias,
// in index order, for trace/halt reporting.
func (rf *RegisterFile) Dump() []struct {
	Alias string
	Value uint32
} {
	out := make([]struct {
		Alias string
		Value uint32
	}, NumRegisters)
	for i := range rf.regs {
		out[i].Alias = abiAliases[i]
		out[i].Value = rf.regs[i]
	}
	return out
}

package cpu

// DataMemorySize is the data memory size in 32-bit words.
const DataMemorySize = 0x10000

// MainMemory is a word-addressed, byte-accessible data memory: a
// zero-initialized array of 32-bit words, with sub-word load/store
// derived from the low two bits of the byte address.
type MainMemory struct {
	words []uint32
}

// NewMainMemory returns a zero-initialized data memory of size words. A
// non-positive size falls back to DataMemorySize (spec.md §3 default).
func NewMainMemory(size int) *MainMemory {
	if size <= 0 {
		size = DataMemorySize
	}
	return &MainMemory{words: make([]uint32, size)}
}

func wordIndex(address uint32, size int) (uint32, error) {
	idx := address >> 2
	if idx >= uint32(size) {
		return 0, &MemoryError{Address: address}
	}
	return idx, nil
}

// Read fetches the width-wide sub-word at address, sign- or zero-extended
// to 32 bits per width.
func (m *MainMemory) Read(address uint32, width MemWidth) (uint32, error) {
	idx, err := wordIndex(address, len(m.words))
	if err != nil {
		return 0, err
	}
	offset := (address % 4) * 8
	raw := m.words[idx]
	switch width {
	case WidthB:
		return signExtend((raw>>offset)&0xFF, 7), nil
	case WidthBU:
		return (raw >> offset) & 0xFF, nil
	case WidthH:
		return signExtend((raw>>offset)&0xFFFF, 15), nil
	case WidthHU:
		return (raw >> offset) & 0xFFFF, nil
	case WidthW:
		return raw, nil
	default:
		return 0, &MemoryError{Address: address}
	}
}

// overwriteMask computes the mask of bits a write of the given width at
// the given byte offset (0..3) touches within a word.
func overwriteMask(width MemWidth, offset uint32) uint32 {
	switch width {
	case WidthB, WidthBU:
		return uint32(0xFF) << (offset * 8)
	case WidthH, WidthHU:
		return uint32(0xFFFF) << (offset * 8)
	default: // WidthW
		return 0xFFFFFFFF
	}
}

// Write stores value's low width bits into address, leaving the rest of
// the containing word untouched.
func (m *MainMemory) Write(address uint32, value uint32, width MemWidth) error {
	idx, err := wordIndex(address, len(m.words))
	if err != nil {
		return err
	}
	offset := address % 4
	mask := overwriteMask(width, offset)
	shifted := (value << (offset * 8)) & mask
	m.words[idx] = (m.words[idx] &^ mask) | shifted
	return nil
}

// Head returns the first n words of data memory, for halt-time dumps.
func (m *MainMemory) Head(n int) []uint32 {
	if n > len(m.words) {
		n = len(m.words)
	}
	out := make([]uint32, n)
	copy(out, m.words[:n])
	return out
}

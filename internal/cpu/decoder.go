package cpu

// signExtend treats bit n of value as the sign bit and, if set, fills
// every bit above it with 1. Satisfies signExtend(1, 0) == 0xFFFFFFFF,
// signExtend(2, 1) == 0xFFFFFFFE, signExtend(0x808, 11) == 0xFFFFF808,
// signExtend(0x008, 11) == 0x00000008.
func signExtend(value uint32, n uint32) uint32 {
	signBit := uint32(1) << n
	value &= signBit<<1 - 1
	if value&signBit != 0 {
		value |= ^(signBit<<1 - 1)
	}
	return value
}

// decode converts a raw 32-bit instruction word into a structured
// Instruction. It is a pure function: the same word always produces the
// same result or the same error.
func decode(word uint32) (Instruction, error) {
	// The all-zero word is the halt sentinel (spec.md §3/§9): it carries
	// no valid opcode, so it is recognized before opcode mapping rather
	// than failing UndefinedRiscvForm.
	if word == 0x00000000 {
		return Instruction{Raw: word, IsHalt: true}, nil
	}

	opcode := word & 0x7F
	funct3 := (word >> 12) & 0x7
	funct7 := (word >> 25) & 0x7F
	rd := (word >> 7) & 0x1F
	rs1 := (word >> 15) & 0x1F
	rs2 := (word >> 20) & 0x1F

	in := Instruction{
		Raw:    word,
		Rd:     rd,
		Rs1:    rs1,
		Rs2:    rs2,
		IsHalt: word == 0x00000000,
	}

	switch opcode {
	case 0x37:
		in.Class, in.Form = ClassLui, FormU
	case 0x17:
		in.Class, in.Form = ClassAuipc, FormU
	case 0x6F:
		in.Class, in.Form = ClassJal, FormJ
	case 0x67:
		in.Class, in.Form = ClassJalr, FormI
	case 0x63:
		in.Form = FormB
		branchOp, err := decodeBranchOp(funct3)
		if err != nil {
			return Instruction{}, wrapDecodeErr(err, word)
		}
		in.Class, in.BranchOp = ClassBranch, branchOp
	case 0x03:
		in.Form = FormI
		width, err := decodeMemWidth(funct3)
		if err != nil {
			return Instruction{}, wrapDecodeErr(err, word)
		}
		in.Class, in.Width = ClassLoad, width
	case 0x23:
		in.Form = FormS
		width, err := decodeMemWidth(funct3)
		if err != nil {
			return Instruction{}, wrapDecodeErr(err, word)
		}
		if width == WidthBU || width == WidthHU {
			return Instruction{}, &DecodeError{Kind: StoreMustBeSigned, Value: funct3, Raw: word}
		}
		in.Class, in.Width = ClassStore, width
	case 0x13:
		in.Form = FormI
		aluOp, err := decodeAluOp(funct7, funct3, true)
		if err != nil {
			return Instruction{}, wrapDecodeErr(err, word)
		}
		in.Class, in.AluOp = ClassOpImm, aluOp
	case 0x33:
		in.Form = FormR
		aluOp, err := decodeAluOp(funct7, funct3, false)
		if err != nil {
			return Instruction{}, wrapDecodeErr(err, word)
		}
		in.Class, in.AluOp = ClassOp, aluOp
	default:
		return Instruction{}, &DecodeError{Kind: UndefinedRiscvForm, Value: opcode, Raw: word}
	}

	in.Imm = immediate(word, in.Form, funct3)
	return in, nil
}

// wrapDecodeErr fills in Raw on an error already constructed with Kind
// and Value set by a sub-decoder that doesn't know the original word.
func wrapDecodeErr(err error, word uint32) error {
	if de, ok := err.(*DecodeError); ok {
		de.Raw = word
		return de
	}
	return err
}

func decodeBranchOp(funct3 uint32) (BranchOp, error) {
	switch funct3 {
	case 0b000:
		return BranchEq, nil
	case 0b001:
		return BranchNe, nil
	case 0b100:
		return BranchLt, nil
	case 0b101:
		return BranchGe, nil
	case 0b110:
		return BranchLtu, nil
	case 0b111:
		return BranchGeu, nil
	default:
		return 0, &DecodeError{Kind: UndefinedBranchOption, Value: funct3}
	}
}

func decodeMemWidth(funct3 uint32) (MemWidth, error) {
	switch funct3 {
	case 0b000:
		return WidthB, nil
	case 0b001:
		return WidthH, nil
	case 0b010:
		return WidthW, nil
	case 0b100:
		return WidthBU, nil
	case 0b101:
		return WidthHU, nil
	default:
		return 0, &DecodeError{Kind: UndefinedByteWideOption, Value: funct3}
	}
}

func decodeAluOp(funct7, funct3 uint32, isImm bool) (AluOp, error) {
	switch funct3 {
	case 0b000:
		if isImm {
			return AluAdd, nil
		}
		switch funct7 {
		case 0x00:
			return AluAdd, nil
		case 0x20:
			return AluSub, nil
		default:
			return 0, &DecodeError{Kind: InvalidAluOperation, Value: funct7}
		}
	case 0b001:
		return AluSll, nil
	case 0b010:
		return AluSlt, nil
	case 0b011:
		return AluSltu, nil
	case 0b100:
		return AluXor, nil
	case 0b101:
		switch funct7 {
		case 0x00:
			return AluSrl, nil
		case 0x20:
			return AluSra, nil
		default:
			return 0, &DecodeError{Kind: InvalidAluOperation, Value: funct7}
		}
	case 0b110:
		return AluOr, nil
	case 0b111:
		return AluAnd, nil
	default:
		return 0, &DecodeError{Kind: InvalidAluOperation, Value: funct3}
	}
}

// immediate reconstructs the sign-extended 32-bit immediate for the given
// form. Shift-immediates (OP_IMM SLLI/SRLI/SRAI, form I with
// funct3 001/101) only have their low 5 bits architecturally observable;
// the upper bits are don't-care for execution, so the 5-bit-significant
// sign extension here matches spec.md's decode vectors without affecting
// ALU results (the ALU masks the shift amount to 5 bits regardless).
func immediate(word uint32, form Form, funct3 uint32) uint32 {
	switch form {
	case FormI:
		if word&0x7F == 0x13 && (funct3 == 0b001 || funct3 == 0b101) {
			return signExtend(word>>20, 4)
		}
		return signExtend(word>>20, 11)
	case FormS:
		value := ((word >> 25) << 5) | ((word >> 7) & 0x1F)
		return signExtend(value, 11)
	case FormB:
		value := (((word >> 31) & 0x1) << 12) |
			(((word >> 7) & 0x1) << 11) |
			(((word >> 25) & 0x3F) << 5) |
			(((word >> 8) & 0xF) << 1)
		return signExtend(value, 12)
	case FormU:
		return word &^ 0xFFF
	case FormJ:
		value := (((word >> 31) & 0x1) << 20) |
			(((word >> 12) & 0xFF) << 12) |
			(((word >> 20) & 0x1) << 11) |
			(((word >> 21) & 0x3FF) << 1)
		return signExtend(value, 20)
	default:
		return 0
	}
}

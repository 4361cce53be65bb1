package cpu

func reg5(index int) uint32 {
	return uint32(index) & 0x1f
}

// MakeCodeR encodes an R-type instruction word.
func MakeCodeR(opcode CodeOpcode, rd int, funct3 CodeFunct3, rs1, rs2 int, funct7 CodeFunct7) uint32 {
	return (uint32(funct7&0x7f) << 25) | (reg5(rs2) << 20) | (reg5(rs1) << 15) |
		(uint32(funct3&0x7) << 12) | (reg5(rd) << 7) | uint32(opcode&0x7f)
}

// MakeCodeI encodes an I-type instruction word.
func MakeCodeI(opcode CodeOpcode, rd int, funct3 CodeFunct3, rs1 int, imm int32) uint32 {
	return (uint32(imm&0xfff) << 20) | (reg5(rs1) << 15) |
		(uint32(funct3&0x7) << 12) | (reg5(rd) << 7) | uint32(opcode&0x7f)
}

// MakeCodeS encodes an S-type instruction word.
func MakeCodeS(opcode CodeOpcode, funct3 CodeFunct3, rs1, rs2 int, imm int32) uint32 {
	immU := uint32(imm & 0xfff)
	return ((immU >> 5) << 25) | (reg5(rs2) << 20) | (reg5(rs1) << 15) |
		(uint32(funct3&0x7) << 12) | ((immU & 0x1f) << 7) | uint32(opcode&0x7f)
}

// MakeCodeB encodes a B-type instruction word. imm is a byte offset; bit 0 is dropped.
func MakeCodeB(opcode CodeOpcode, funct3 CodeFunct3, rs1, rs2 int, imm int32) uint32 {
	immU := uint32(imm)
	return (((immU >> 12) & 0x1) << 31) | (((immU >> 5) & 0x3f) << 25) |
		(reg5(rs2) << 20) | (reg5(rs1) << 15) | (uint32(funct3&0x7) << 12) |
		(((immU >> 1) & 0xf) << 8) | (((immU >> 11) & 0x1) << 7) | uint32(opcode&0x7f)
}

// MakeCodeU encodes a U-type instruction word. The low 12 bits of imm are dropped.
func MakeCodeU(opcode CodeOpcode, rd int, imm uint32) uint32 {
	return (imm & 0xffff_f000) | (reg5(rd) << 7) | uint32(opcode&0x7f)
}

// MakeCodeJ encodes a J-type instruction word. imm is a byte offset; bit 0 is dropped.
func MakeCodeJ(opcode CodeOpcode, rd int, imm int32) uint32 {
	immU := uint32(imm)
	return (((immU >> 20) & 0x1) << 31) | (((immU >> 1) & 0x3ff) << 21) |
		(((immU >> 11) & 0x1) << 20) | (((immU >> 12) & 0xff) << 12) |
		(reg5(rd) << 7) | uint32(opcode&0x7f)
}

var _operation_encodings = map[Operation]opSelector{}

func init() {
	for sel, op := range _operation_selectors {
		_operation_encodings[op] = sel
	}
}

// MakeCode encodes op with the operands its format uses. Shift operations
// take the shift amount in imm; CSR operations take the CSR number in imm.
// Returns false for OP_INVALID.
func MakeCode(op Operation, rd, rs1, rs2 int, imm int32) (word uint32, ok bool) {
	sel, ok := _operation_encodings[op]
	if !ok {
		return
	}

	switch op.Format() {
	case FORMAT_R:
		word = MakeCodeR(sel.opcode, rd, sel.funct3, rs1, rs2, sel.funct7)
	case FORMAT_I:
		switch op {
		case OP_SLLI, OP_SRLI, OP_SRAI:
			imm = (imm & 0x1f) | int32(sel.funct7)<<5
		case OP_ECALL, OP_EBREAK:
			imm = int32(sel.funct12)
		}
		word = MakeCodeI(sel.opcode, rd, sel.funct3, rs1, imm)
	case FORMAT_S:
		word = MakeCodeS(sel.opcode, sel.funct3, rs1, rs2, imm)
	case FORMAT_B:
		word = MakeCodeB(sel.opcode, sel.funct3, rs1, rs2, imm)
	case FORMAT_U:
		word = MakeCodeU(sel.opcode, rd, uint32(imm))
	case FORMAT_J:
		word = MakeCodeJ(sel.opcode, rd, imm)
	default:
		ok = false
	}

	return
}

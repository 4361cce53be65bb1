package cpu

import (
	"fmt"
)

// Instruction is a decoded RV32I instruction word.
//
// All five immediate encodings are reconstructed for every word; only the
// one matching Format() is meaningful for the operation.
type Instruction struct {
	Word uint32

	Opcode CodeOpcode // bits [6:0]
	Funct3 CodeFunct3 // bits [14:12]
	Funct7 CodeFunct7 // bits [31:25]

	Rd  int // bits [11:7]
	Rs1 int // bits [19:15]
	Rs2 int // bits [24:20]

	ImmI uint32 // imm[11:0]
	ImmS uint32 // imm[11:5|4:0]
	ImmB uint32 // imm[12|10:5|4:1|11], bit 0 zero
	ImmU uint32 // imm[31:12], low 12 bits zero
	ImmJ uint32 // imm[20|10:1|11|19:12], bit 0 zero
}

// Decode splits an instruction word into its fields and immediates.
func Decode(word uint32) (ins Instruction) {
	ins = Instruction{
		Word:   word,
		Opcode: CodeOpcode(Bitrange(word, 6, 0)),
		Funct3: CodeFunct3(Bitrange(word, 14, 12)),
		Funct7: CodeFunct7(Bitrange(word, 31, 25)),
		Rd:     int(Bitrange(word, 11, 7)),
		Rs1:    int(Bitrange(word, 19, 15)),
		Rs2:    int(Bitrange(word, 24, 20)),
	}

	ins.ImmI = SignExt(Bitrange(word, 31, 20), 12)
	ins.ImmS = SignExt((Bitrange(word, 31, 25)<<5)|
		Bitrange(word, 11, 7), 12)
	ins.ImmB = SignExt((Bitrange(word, 31, 31)<<12)|
		(Bitrange(word, 30, 25)<<5)|
		(Bitrange(word, 11, 8)<<1)|
		(Bitrange(word, 7, 7)<<11), 13)
	ins.ImmU = SignExt(Bitrange(word, 31, 12)<<12, 32)
	ins.ImmJ = SignExt((Bitrange(word, 31, 31)<<20)|
		(Bitrange(word, 19, 12)<<12)|
		(Bitrange(word, 20, 20)<<11)|
		(Bitrange(word, 30, 21)<<1), 21)

	return
}

func (ins Instruction) selector() (sel opSelector) {
	sel.opcode = ins.Opcode

	switch ins.Opcode {
	case OPCODE_LUI, OPCODE_AUIPC, OPCODE_JAL:
		// opcode only
	case OPCODE_JALR:
		// jalr is only defined for funct3 0
		if ins.Funct3 != 0 {
			sel.opcode = 0
		}
	case OPCODE_OP:
		sel.funct3 = ins.Funct3
		sel.funct7 = ins.Funct7
	case OPCODE_IMM:
		sel.funct3 = ins.Funct3
		if ins.Funct3 == FUNCT3_SLL || ins.Funct3 == FUNCT3_SRL {
			sel.funct7 = ins.Funct7
		}
	case OPCODE_SYSTEM:
		sel.funct3 = ins.Funct3
		if ins.Funct3 == FUNCT3_PRIV {
			sel.funct12 = Bitrange(ins.Word, 31, 20)
		}
	default:
		sel.funct3 = ins.Funct3
	}

	return
}

// Operation tags the instruction with its RV32I operation, or OP_INVALID.
func (ins Instruction) Operation() Operation {
	return _operation_selectors[ins.selector()]
}

// Format returns the encoding format of the instruction's operation.
func (ins Instruction) Format() Format {
	return ins.Operation().Format()
}

// Immediate returns the immediate of the instruction's encoding format.
// R-type and invalid instructions have no immediate.
func (ins Instruction) Immediate() (imm uint32, ok bool) {
	switch ins.Format() {
	case FORMAT_I:
		return ins.ImmI, true
	case FORMAT_S:
		return ins.ImmS, true
	case FORMAT_B:
		return ins.ImmB, true
	case FORMAT_U:
		return ins.ImmU, true
	case FORMAT_J:
		return ins.ImmJ, true
	}

	return
}

// String returns the disassembly of the instruction.
func (ins Instruction) String() (out string) {
	op := ins.Operation()

	rd := RegisterName(ins.Rd)
	rs1 := RegisterName(ins.Rs1)
	rs2 := RegisterName(ins.Rs2)

	switch op {
	case OP_INVALID:
		out = fmt.Sprintf("%v 0x%08x", op, ins.Word)
	case OP_LUI, OP_AUIPC:
		out = fmt.Sprintf("%v %v, %#x", op, rd, ins.ImmU>>12)
	case OP_JAL:
		out = fmt.Sprintf("%v %v, %d", op, rd, int32(ins.ImmJ))
	case OP_JALR, OP_LB, OP_LH, OP_LW, OP_LBU, OP_LHU:
		out = fmt.Sprintf("%v %v, %d(%v)", op, rd, int32(ins.ImmI), rs1)
	case OP_SB, OP_SH, OP_SW:
		out = fmt.Sprintf("%v %v, %d(%v)", op, rs2, int32(ins.ImmS), rs1)
	case OP_BEQ, OP_BNE, OP_BLT, OP_BGE, OP_BLTU, OP_BGEU:
		out = fmt.Sprintf("%v %v, %v, %d", op, rs1, rs2, int32(ins.ImmB))
	case OP_SLLI, OP_SRLI, OP_SRAI:
		out = fmt.Sprintf("%v %v, %v, %d", op, rd, rs1, ins.Rs2)
	case OP_CSRRW, OP_CSRRS, OP_CSRRC:
		out = fmt.Sprintf("%v %v, %#x, %v", op, rd, Bitrange(ins.Word, 31, 20), rs1)
	case OP_CSRRWI, OP_CSRRSI, OP_CSRRCI:
		out = fmt.Sprintf("%v %v, %#x, %d", op, rd, Bitrange(ins.Word, 31, 20), ins.Rs1)
	case OP_FENCE, OP_FENCEI, OP_ECALL, OP_EBREAK:
		out = op.String()
	default:
		switch op.Format() {
		case FORMAT_R:
			out = fmt.Sprintf("%v %v, %v, %v", op, rd, rs1, rs2)
		case FORMAT_I:
			out = fmt.Sprintf("%v %v, %v, %d", op, rd, rs1, int32(ins.ImmI))
		}
	}

	return
}

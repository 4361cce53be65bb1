package cpu

// CodeOpcode is the major opcode, bits [6:0] of an instruction word.
type CodeOpcode uint32

//go:generate go tool stringer -linecomment -type=CodeOpcode
const (
	OPCODE_LOAD   = CodeOpcode(0b0000011) // load
	OPCODE_MISC   = CodeOpcode(0b0001111) // misc-mem
	OPCODE_IMM    = CodeOpcode(0b0010011) // op-imm
	OPCODE_AUIPC  = CodeOpcode(0b0010111) // auipc
	OPCODE_STORE  = CodeOpcode(0b0100011) // store
	OPCODE_OP     = CodeOpcode(0b0110011) // op
	OPCODE_LUI    = CodeOpcode(0b0110111) // lui
	OPCODE_BRANCH = CodeOpcode(0b1100011) // branch
	OPCODE_JALR   = CodeOpcode(0b1100111) // jalr
	OPCODE_JAL    = CodeOpcode(0b1101111) // jal
	OPCODE_SYSTEM = CodeOpcode(0b1110011) // system
)

// CodeFunct3 is the minor function field, bits [14:12]. Its meaning
// depends on the major opcode, so several names share a value.
type CodeFunct3 uint32

const (
	// OP and IMM
	FUNCT3_ADD  = CodeFunct3(0b000) // add, addi, sub
	FUNCT3_SLL  = CodeFunct3(0b001) // sll, slli
	FUNCT3_SLT  = CodeFunct3(0b010) // slt, slti
	FUNCT3_SLTU = CodeFunct3(0b011) // sltu, sltiu
	FUNCT3_XOR  = CodeFunct3(0b100) // xor, xori
	FUNCT3_SRL  = CodeFunct3(0b101) // srl, srli, sra, srai
	FUNCT3_OR   = CodeFunct3(0b110) // or, ori
	FUNCT3_AND  = CodeFunct3(0b111) // and, andi

	// BRANCH
	FUNCT3_BEQ  = CodeFunct3(0b000)
	FUNCT3_BNE  = CodeFunct3(0b001)
	FUNCT3_BLT  = CodeFunct3(0b100)
	FUNCT3_BGE  = CodeFunct3(0b101)
	FUNCT3_BLTU = CodeFunct3(0b110)
	FUNCT3_BGEU = CodeFunct3(0b111)

	// LOAD and STORE
	FUNCT3_B  = CodeFunct3(0b000) // lb, sb
	FUNCT3_H  = CodeFunct3(0b001) // lh, sh
	FUNCT3_W  = CodeFunct3(0b010) // lw, sw
	FUNCT3_BU = CodeFunct3(0b100) // lbu
	FUNCT3_HU = CodeFunct3(0b101) // lhu

	// MISC
	FUNCT3_FENCE  = CodeFunct3(0b000)
	FUNCT3_FENCEI = CodeFunct3(0b001)

	// SYSTEM
	FUNCT3_PRIV   = CodeFunct3(0b000) // ecall, ebreak
	FUNCT3_CSRRW  = CodeFunct3(0b001)
	FUNCT3_CSRRS  = CodeFunct3(0b010)
	FUNCT3_CSRRC  = CodeFunct3(0b011)
	FUNCT3_CSRRWI = CodeFunct3(0b101)
	FUNCT3_CSRRSI = CodeFunct3(0b110)
	FUNCT3_CSRRCI = CodeFunct3(0b111)
)

// CodeFunct7 is the function field in bits [31:25].
type CodeFunct7 uint32

const (
	FUNCT7_BASE = CodeFunct7(0b0000000)
	FUNCT7_ALT  = CodeFunct7(0b0100000) // sub, sra, srai
)

// Format is the RV32I instruction encoding format.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_INVALID = Format(iota) // ?
	FORMAT_R                      // R
	FORMAT_I                      // I
	FORMAT_S                      // S
	FORMAT_B                      // B
	FORMAT_U                      // U
	FORMAT_J                      // J
)

// Operation is a decoded RV32I instruction kind.
type Operation int

//go:generate go tool stringer -linecomment -type=Operation
const (
	OP_INVALID = Operation(iota) // invalid
	OP_LUI                       // lui
	OP_AUIPC                     // auipc
	OP_JAL                       // jal
	OP_JALR                      // jalr
	OP_BEQ                       // beq
	OP_BNE                       // bne
	OP_BLT                       // blt
	OP_BGE                       // bge
	OP_BLTU                      // bltu
	OP_BGEU                      // bgeu
	OP_LB                        // lb
	OP_LH                        // lh
	OP_LW                        // lw
	OP_LBU                       // lbu
	OP_LHU                       // lhu
	OP_SB                        // sb
	OP_SH                        // sh
	OP_SW                        // sw
	OP_ADDI                      // addi
	OP_SLTI                      // slti
	OP_SLTIU                     // sltiu
	OP_XORI                      // xori
	OP_ORI                       // ori
	OP_ANDI                      // andi
	OP_SLLI                      // slli
	OP_SRLI                      // srli
	OP_SRAI                      // srai
	OP_ADD                       // add
	OP_SUB                       // sub
	OP_SLL                       // sll
	OP_SLT                       // slt
	OP_SLTU                      // sltu
	OP_XOR                       // xor
	OP_SRL                       // srl
	OP_SRA                       // sra
	OP_OR                        // or
	OP_AND                       // and
	OP_FENCE                     // fence
	OP_FENCEI                    // fence.i
	OP_ECALL                     // ecall
	OP_EBREAK                    // ebreak
	OP_CSRRW                     // csrrw
	OP_CSRRS                     // csrrs
	OP_CSRRC                     // csrrc
	OP_CSRRWI                    // csrrwi
	OP_CSRRSI                    // csrrsi
	OP_CSRRCI                    // csrrci
)

var _operation_formats = map[Operation]Format{
	OP_LUI:    FORMAT_U,
	OP_AUIPC:  FORMAT_U,
	OP_JAL:    FORMAT_J,
	OP_JALR:   FORMAT_I,
	OP_BEQ:    FORMAT_B,
	OP_BNE:    FORMAT_B,
	OP_BLT:    FORMAT_B,
	OP_BGE:    FORMAT_B,
	OP_BLTU:   FORMAT_B,
	OP_BGEU:   FORMAT_B,
	OP_LB:     FORMAT_I,
	OP_LH:     FORMAT_I,
	OP_LW:     FORMAT_I,
	OP_LBU:    FORMAT_I,
	OP_LHU:    FORMAT_I,
	OP_SB:     FORMAT_S,
	OP_SH:     FORMAT_S,
	OP_SW:     FORMAT_S,
	OP_ADDI:   FORMAT_I,
	OP_SLTI:   FORMAT_I,
	OP_SLTIU:  FORMAT_I,
	OP_XORI:   FORMAT_I,
	OP_ORI:    FORMAT_I,
	OP_ANDI:   FORMAT_I,
	OP_SLLI:   FORMAT_I,
	OP_SRLI:   FORMAT_I,
	OP_SRAI:   FORMAT_I,
	OP_ADD:    FORMAT_R,
	OP_SUB:    FORMAT_R,
	OP_SLL:    FORMAT_R,
	OP_SLT:    FORMAT_R,
	OP_SLTU:   FORMAT_R,
	OP_XOR:    FORMAT_R,
	OP_SRL:    FORMAT_R,
	OP_SRA:    FORMAT_R,
	OP_OR:     FORMAT_R,
	OP_AND:    FORMAT_R,
	OP_FENCE:  FORMAT_I,
	OP_FENCEI: FORMAT_I,
	OP_ECALL:  FORMAT_I,
	OP_EBREAK: FORMAT_I,
	OP_CSRRW:  FORMAT_I,
	OP_CSRRS:  FORMAT_I,
	OP_CSRRC:  FORMAT_I,
	OP_CSRRWI: FORMAT_I,
	OP_CSRRSI: FORMAT_I,
	OP_CSRRCI: FORMAT_I,
}

// Format returns the encoding format of the operation.
func (op Operation) Format() Format {
	return _operation_formats[op]
}

var _operation_names = func() (names map[string]Operation) {
	names = make(map[string]Operation, len(_operation_formats))
	for op := range _operation_formats {
		names[op.String()] = op
	}
	return
}()

// ParseOperation returns the operation for an assembler mnemonic.
func ParseOperation(name string) (op Operation, ok bool) {
	op, ok = _operation_names[name]
	return
}

// opSelector is the normalised (opcode, funct3, funct7, funct12) key of an
// instruction. Fields that do not select an operation for the opcode are zero.
type opSelector struct {
	opcode  CodeOpcode
	funct3  CodeFunct3
	funct7  CodeFunct7
	funct12 uint32
}

var _operation_selectors = map[opSelector]Operation{
	{opcode: OPCODE_LUI}:   OP_LUI,
	{opcode: OPCODE_AUIPC}: OP_AUIPC,
	{opcode: OPCODE_JAL}:   OP_JAL,
	{opcode: OPCODE_JALR}:  OP_JALR,

	{opcode: OPCODE_BRANCH, funct3: FUNCT3_BEQ}:  OP_BEQ,
	{opcode: OPCODE_BRANCH, funct3: FUNCT3_BNE}:  OP_BNE,
	{opcode: OPCODE_BRANCH, funct3: FUNCT3_BLT}:  OP_BLT,
	{opcode: OPCODE_BRANCH, funct3: FUNCT3_BGE}:  OP_BGE,
	{opcode: OPCODE_BRANCH, funct3: FUNCT3_BLTU}: OP_BLTU,
	{opcode: OPCODE_BRANCH, funct3: FUNCT3_BGEU}: OP_BGEU,

	{opcode: OPCODE_LOAD, funct3: FUNCT3_B}:  OP_LB,
	{opcode: OPCODE_LOAD, funct3: FUNCT3_H}:  OP_LH,
	{opcode: OPCODE_LOAD, funct3: FUNCT3_W}:  OP_LW,
	{opcode: OPCODE_LOAD, funct3: FUNCT3_BU}: OP_LBU,
	{opcode: OPCODE_LOAD, funct3: FUNCT3_HU}: OP_LHU,

	{opcode: OPCODE_STORE, funct3: FUNCT3_B}: OP_SB,
	{opcode: OPCODE_STORE, funct3: FUNCT3_H}: OP_SH,
	{opcode: OPCODE_STORE, funct3: FUNCT3_W}: OP_SW,

	{opcode: OPCODE_IMM, funct3: FUNCT3_ADD}:                      OP_ADDI,
	{opcode: OPCODE_IMM, funct3: FUNCT3_SLT}:                      OP_SLTI,
	{opcode: OPCODE_IMM, funct3: FUNCT3_SLTU}:                     OP_SLTIU,
	{opcode: OPCODE_IMM, funct3: FUNCT3_XOR}:                      OP_XORI,
	{opcode: OPCODE_IMM, funct3: FUNCT3_OR}:                       OP_ORI,
	{opcode: OPCODE_IMM, funct3: FUNCT3_AND}:                      OP_ANDI,
	{opcode: OPCODE_IMM, funct3: FUNCT3_SLL, funct7: FUNCT7_BASE}: OP_SLLI,
	{opcode: OPCODE_IMM, funct3: FUNCT3_SRL, funct7: FUNCT7_BASE}: OP_SRLI,
	{opcode: OPCODE_IMM, funct3: FUNCT3_SRL, funct7: FUNCT7_ALT}:  OP_SRAI,

	{opcode: OPCODE_OP, funct3: FUNCT3_ADD, funct7: FUNCT7_BASE}:  OP_ADD,
	{opcode: OPCODE_OP, funct3: FUNCT3_ADD, funct7: FUNCT7_ALT}:   OP_SUB,
	{opcode: OPCODE_OP, funct3: FUNCT3_SLL, funct7: FUNCT7_BASE}:  OP_SLL,
	{opcode: OPCODE_OP, funct3: FUNCT3_SLT, funct7: FUNCT7_BASE}:  OP_SLT,
	{opcode: OPCODE_OP, funct3: FUNCT3_SLTU, funct7: FUNCT7_BASE}: OP_SLTU,
	{opcode: OPCODE_OP, funct3: FUNCT3_XOR, funct7: FUNCT7_BASE}:  OP_XOR,
	{opcode: OPCODE_OP, funct3: FUNCT3_SRL, funct7: FUNCT7_BASE}:  OP_SRL,
	{opcode: OPCODE_OP, funct3: FUNCT3_SRL, funct7: FUNCT7_ALT}:   OP_SRA,
	{opcode: OPCODE_OP, funct3: FUNCT3_OR, funct7: FUNCT7_BASE}:   OP_OR,
	{opcode: OPCODE_OP, funct3: FUNCT3_AND, funct7: FUNCT7_BASE}:  OP_AND,

	{opcode: OPCODE_MISC, funct3: FUNCT3_FENCE}:  OP_FENCE,
	{opcode: OPCODE_MISC, funct3: FUNCT3_FENCEI}: OP_FENCEI,

	{opcode: OPCODE_SYSTEM, funct3: FUNCT3_PRIV, funct12: 0}: OP_ECALL,
	{opcode: OPCODE_SYSTEM, funct3: FUNCT3_PRIV, funct12: 1}: OP_EBREAK,
	{opcode: OPCODE_SYSTEM, funct3: FUNCT3_CSRRW}:            OP_CSRRW,
	{opcode: OPCODE_SYSTEM, funct3: FUNCT3_CSRRS}:            OP_CSRRS,
	{opcode: OPCODE_SYSTEM, funct3: FUNCT3_CSRRC}:            OP_CSRRC,
	{opcode: OPCODE_SYSTEM, funct3: FUNCT3_CSRRWI}:           OP_CSRRWI,
	{opcode: OPCODE_SYSTEM, funct3: FUNCT3_CSRRSI}:           OP_CSRRSI,
	{opcode: OPCODE_SYSTEM, funct3: FUNCT3_CSRRCI}:           OP_CSRRCI,
}

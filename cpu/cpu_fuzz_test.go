package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzDecode(f *testing.F) {
	for _, word := range []uint32{0, 0xffff_ffff, 0xfff00093, 0xfe000ee3, 0xffdff06f, 0x123452b7} {
		f.Add(word)
	}

	f.Fuzz(func(t *testing.T, word uint32) {
		assert := assert.New(t)

		ins := Decode(word)

		// Register fields are 5 bits.
		assert.Less(ins.Rd, 32)
		assert.Less(ins.Rs1, 32)
		assert.Less(ins.Rs2, 32)

		// Implicit zero low bits.
		assert.Equal(uint32(0), ins.ImmB&1)
		assert.Equal(uint32(0), ins.ImmJ&1)
		assert.Equal(uint32(0), ins.ImmU&0xfff)

		// Every immediate is sign extended from bit 31 of the word, except U.
		sign := word >> 31
		for _, imm := range []uint32{ins.ImmI, ins.ImmS, ins.ImmB, ins.ImmJ} {
			assert.Equal(sign, imm>>31)
		}
		assert.Equal(word&0xffff_f000, ins.ImmU)

		// Re-encoding a valid instruction yields the same word.
		op := ins.Operation()
		if op == OP_INVALID {
			return
		}
		imm, _ := ins.Immediate()

		code, ok := MakeCode(op, ins.Rd, ins.Rs1, ins.Rs2, int32(imm))
		assert.True(ok)

		assert.Equal(word, code, "%v %08x", ins, word)
	})
}

func FuzzEncode(f *testing.F) {
	f.Add(0, 0, 0, int32(0))
	f.Add(31, 31, 31, int32(-1))
	f.Add(1, 2, 3, int32(2048))

	f.Fuzz(func(t *testing.T, rd, rs1, rs2 int, imm int32) {
		assert := assert.New(t)

		rd &= 0x1f
		rs1 &= 0x1f
		rs2 &= 0x1f

		i12 := SignExt(uint32(imm)&0xfff, 12)
		b13 := SignExt(uint32(imm)&0x1ffe, 13)
		j21 := SignExt(uint32(imm)&0x1f_fffe, 21)

		ins := Decode(MakeCodeI(OPCODE_IMM, rd, FUNCT3_ADD, rs1, imm))
		assert.Equal(i12, ins.ImmI)
		assert.Equal(rd, ins.Rd)
		assert.Equal(rs1, ins.Rs1)

		ins = Decode(MakeCodeS(OPCODE_STORE, FUNCT3_W, rs1, rs2, imm))
		assert.Equal(i12, ins.ImmS)
		assert.Equal(rs2, ins.Rs2)

		ins = Decode(MakeCodeB(OPCODE_BRANCH, FUNCT3_BNE, rs1, rs2, imm))
		assert.Equal(b13, ins.ImmB)
		assert.Equal(OP_BNE, ins.Operation())

		ins = Decode(MakeCodeU(OPCODE_LUI, rd, uint32(imm)))
		assert.Equal(uint32(imm)&0xffff_f000, ins.ImmU)

		ins = Decode(MakeCodeJ(OPCODE_JAL, rd, imm))
		assert.Equal(j21, ins.ImmJ)
		assert.Equal(OP_JAL, ins.Operation())

		ins = Decode(MakeCodeR(OPCODE_OP, rd, FUNCT3_SRL, rs1, rs2, FUNCT7_ALT))
		assert.Equal(OP_SRA, ins.Operation())
		assert.Equal(rd, ins.Rd)
		assert.Equal(rs1, ins.Rs1)
		assert.Equal(rs2, ins.Rs2)
	})
}

package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister_Zero(t *testing.T) {
	assert := assert.New(t)

	r := &Register{}
	r.Reset()

	for v := range uint32(32) {
		r.Set(REG_ZERO, v)
		assert.Equal(uint32(0), r.Get(REG_ZERO))
	}
	r.Set(REG_ZERO, 0xffff_ffff)
	assert.Equal(uint32(0), r.Get(REG_ZERO))
	assert.Equal(uint32(0), r.Data[REG_ZERO])
}

func TestRegister_SetGet(t *testing.T) {
	assert := assert.New(t)

	r := &Register{}
	for n := 1; n < 32; n++ {
		r.Set(n, uint32(n)*0x1111)
	}
	for n := 1; n < 32; n++ {
		assert.Equal(uint32(n)*0x1111, r.Get(n), RegisterName(n))
	}
}

func TestRegister_Pc(t *testing.T) {
	assert := assert.New(t)

	r := &Register{}
	r.Set(5, 0x55)
	r.Reset()

	assert.Equal(MEMORY_BASE, r.Pc())
	assert.Equal(uint32(0), r.Get(5))

	r.AdvancePc(INSTRUCTION_SIZE)
	assert.Equal(MEMORY_BASE+4, r.Pc())

	r.SetPc(0x8000_0100)
	assert.Equal(uint32(0x8000_0100), r.Get(REG_PC))
}

func TestRegister_All(t *testing.T) {
	assert := assert.New(t)

	r := &Register{}
	r.Reset()
	r.Set(31, 0x31)

	var names []string
	var last uint32
	for name, value := range r.All() {
		names = append(names, name)
		last = value
	}

	assert.Equal(32, len(names))
	assert.Equal("x0", names[0])
	assert.Equal("x31", names[31])
	assert.Equal(uint32(0x31), last)
	assert.Equal("PC", RegisterName(REG_PC))
}

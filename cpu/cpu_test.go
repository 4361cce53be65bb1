package cpu

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func loadWords(cpu *Cpu, address uint32, words ...uint32) error {
	data := make([]byte, 4*len(words))
	for n, word := range words {
		binary.LittleEndian.PutUint32(data[4*n:], word)
	}
	return cpu.Memory.Load(address, data)
}

func TestCpu(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(MEMORY_SIZE)

	assert.False(cpu.Verbose)
	assert.Equal(MEMORY_BASE, cpu.Register.Pc())
	assert.Equal(MEMORY_SIZE, cpu.Memory.Size())
	assert.Equal(0, cpu.Ticks)
}

func TestCpu_Tick(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(MEMORY_SIZE)
	cpu.Verbose = true

	// addi x1, x0, -1 ; jal x0, -4
	err := loadWords(cpu, MEMORY_BASE, 0xfff00093, 0xffdff06f)
	assert.NoError(err)

	ins, err := cpu.Tick()
	assert.NoError(err)
	assert.Equal(OP_ADDI, ins.Operation())
	assert.Equal(uint32(0x8000_0004), cpu.Register.Pc())
	assert.Equal(1, cpu.Ticks)

	// Decode only: no register is written.
	assert.Equal(uint32(0), cpu.Register.Get(1))

	// The jump is not taken, only the PC advance happens.
	ins, err = cpu.Tick()
	assert.NoError(err)
	assert.Equal(OP_JAL, ins.Operation())
	assert.Equal(uint32(0x8000_0008), cpu.Register.Pc())

	assert.NoError(cpu.Reset())
	assert.Equal(MEMORY_BASE, cpu.Register.Pc())
	assert.Equal(0, cpu.Ticks)

	// Memory survives the reset.
	word, err := cpu.Fetch()
	assert.NoError(err)
	assert.Equal(uint32(0xfff00093), word)
}

func TestCpu_TickOutOfBounds(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(8)
	cpu.Register.SetPc(MEMORY_BASE + 8)

	_, err := cpu.Tick()
	assert.True(errors.Is(err, ErrFetch))
	assert.True(errors.Is(err, ErrMemoryBounds))
	assert.Equal(MEMORY_BASE+8, cpu.Register.Pc())
	assert.Equal(0, cpu.Ticks)
}

func TestCpu_String(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(MEMORY_SIZE)
	cpu.Register.Set(2, 0xcafe)

	text := cpu.String()
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	assert.Equal(33, len(lines))
	assert.Equal("   pc: 80000000", lines[0])
	assert.Equal("   x2: 0000cafe", lines[3])
}

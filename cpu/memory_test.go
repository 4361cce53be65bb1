package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(MEMORY_SIZE)
	assert.Equal(MEMORY_SIZE, mem.Size())
	assert.Equal(uint32(0x8000_0000), mem.Base())

	value, err := mem.Fetch32(MEMORY_BASE)
	assert.NoError(err)
	assert.Equal(uint32(0), value)
}

func TestMemory_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(MEMORY_SIZE)

	table := [](struct {
		address uint32
		data    []byte
		word    uint32
	}){
		{MEMORY_BASE, []byte{0x93, 0x00, 0xf0, 0xff}, 0xfff00093},
		{MEMORY_BASE + 0x100, []byte{0x78, 0x56, 0x34, 0x12}, 0x12345678},
		{MEMORY_BASE + MEMORY_SIZE - 4, []byte{0xef, 0xbe, 0xad, 0xde}, 0xdeadbeef},
	}

	for _, entry := range table {
		err := mem.Load(entry.address, entry.data)
		assert.NoError(err)
		value, err := mem.Fetch32(entry.address)
		assert.NoError(err)
		assert.Equal(entry.word, value)

		data, err := mem.Read(entry.address, len(entry.data))
		assert.NoError(err)
		assert.Equal(entry.data, data)
	}
}

func TestMemory_Bounds(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(MEMORY_SIZE)

	err := mem.Load(MEMORY_BASE-4, []byte{1, 2, 3, 4})
	assert.True(errors.Is(err, ErrMemoryBounds))

	err = mem.Load(MEMORY_BASE+MEMORY_SIZE-2, []byte{1, 2, 3, 4})
	assert.True(errors.Is(err, ErrMemoryBounds))

	var addr_err *ErrAddress
	assert.True(errors.As(err, &addr_err))
	assert.Equal(MEMORY_BASE+MEMORY_SIZE-2, addr_err.Address)
	assert.Equal(4, addr_err.Length)

	_, err = mem.Fetch32(MEMORY_BASE + MEMORY_SIZE)
	assert.True(errors.Is(err, ErrMemoryBounds))

	_, err = mem.Fetch32(0)
	assert.True(errors.Is(err, ErrMemoryBounds))

	_, err = mem.Fetch32(0xffff_fffe)
	assert.True(errors.Is(err, ErrMemoryBounds))

	_, err = mem.Read(MEMORY_BASE, int(MEMORY_SIZE)+1)
	assert.True(errors.Is(err, ErrMemoryBounds))

	// Negative lengths never wrap into the window.
	_, err = mem.Read(MEMORY_BASE+16, -4)
	assert.True(errors.Is(err, ErrMemoryBounds))
	assert.True(errors.As(err, &addr_err))
	assert.Equal(-4, addr_err.Length)

	// Failed loads leave memory untouched.
	value, err := mem.Fetch32(MEMORY_BASE + MEMORY_SIZE - 4)
	assert.NoError(err)
	assert.Equal(uint32(0), value)
}

func TestMemory_Resized(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(16)
	assert.NoError(mem.Load(MEMORY_BASE+12, []byte{1, 0, 0, 0}))
	assert.Error(mem.Load(MEMORY_BASE+16, []byte{1}))

	value, err := mem.Fetch32(MEMORY_BASE + 12)
	assert.NoError(err)
	assert.Equal(uint32(1), value)
}

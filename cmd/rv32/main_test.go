package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rv32/cpu"
)

func TestWindowSize(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		size   uint
		window uint32
		ok     bool
	}){
		{uint(cpu.MEMORY_SIZE), cpu.MEMORY_SIZE, true},
		{16, 16, true},
		{0x8000_0000, 0x8000_0000, true},
		{0, 0, false},
		{0x8000_0001, 0, false},
		{1 << 32, 0, false},
		{1<<32 + 16, 0, false},
	}

	for _, entry := range table {
		window, err := windowSize(entry.size)
		if entry.ok {
			assert.NoError(err, entry.size)
		} else {
			assert.Error(err, entry.size)
		}
		assert.Equal(entry.window, window, entry.size)
	}
}

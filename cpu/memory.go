package cpu

import (
	"encoding/binary"
)

// Memory is a flat byte window mapped at MEMORY_BASE.
type Memory struct {
	Data []byte
}

// NewMemory creates a zeroed memory window of size bytes.
func NewMemory(size uint32) (mem *Memory) {
	mem = &Memory{
		Data: make([]byte, size),
	}

	return
}

// Base returns the virtual address of the first byte of the window.
func (mem *Memory) Base() uint32 {
	return MEMORY_BASE
}

// Size returns the size of the window in bytes.
func (mem *Memory) Size() uint32 {
	return uint32(len(mem.Data))
}

// offset translates a virtual address range to a window offset.
func (mem *Memory) offset(address uint32, length int) (offset int, err error) {
	if address < MEMORY_BASE || length < 0 {
		err = &ErrAddress{Address: address, Length: length, Err: ErrMemoryBounds}
		return
	}

	offset64 := uint64(address - MEMORY_BASE)
	if offset64+uint64(length) > uint64(len(mem.Data)) {
		err = &ErrAddress{Address: address, Length: length, Err: ErrMemoryBounds}
		return
	}

	offset = int(offset64)
	return
}

// Load copies data into the window starting at address.
func (mem *Memory) Load(address uint32, data []byte) (err error) {
	offset, err := mem.offset(address, len(data))
	if err != nil {
		return
	}

	copy(mem.Data[offset:], data)
	return
}

// Read returns a copy of length bytes starting at address.
func (mem *Memory) Read(address uint32, length int) (data []byte, err error) {
	offset, err := mem.offset(address, length)
	if err != nil {
		return
	}

	data = make([]byte, length)
	copy(data, mem.Data[offset:offset+length])
	return
}

// Fetch32 reads the little-endian 32-bit word at address.
func (mem *Memory) Fetch32(address uint32) (value uint32, err error) {
	offset, err := mem.offset(address, 4)
	if err != nil {
		return
	}

	value = binary.LittleEndian.Uint32(mem.Data[offset : offset+4])
	return
}

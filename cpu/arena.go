package cpu

const (
	MEMORY_BASE      = uint32(0x8000_0000) // Virtual origin of the memory window.
	MEMORY_SIZE      = uint32(1 << 18)     // Default memory window size.
	INSTRUCTION_SIZE = uint32(4)           // Width of an RV32I instruction.
)

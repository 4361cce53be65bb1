package cpu

import (
	"fmt"
	"iter"
)

const (
	REG_ZERO  = 0  // Hardwired zero register.
	REG_PC    = 32 // Program counter slot.
	REG_COUNT = 33 // General purpose registers plus the program counter.
)

// Register is the RV32I register file. Slots 0..31 are x0..x31, slot 32
// holds the program counter.
type Register struct {
	Data [REG_COUNT]uint32
}

// RegisterName returns the architectural name of a register slot.
func RegisterName(index int) string {
	if index == REG_PC {
		return "PC"
	}
	return fmt.Sprintf("x%d", index)
}

// Get returns the value of register index. x0 always reads as zero.
func (r *Register) Get(index int) uint32 {
	if index == REG_ZERO {
		return 0
	}
	return r.Data[index]
}

// Set writes register index. Writes to x0 are discarded.
func (r *Register) Set(index int, value uint32) {
	if index == REG_ZERO {
		return
	}
	r.Data[index] = value
}

// Pc returns the program counter.
func (r *Register) Pc() uint32 {
	return r.Data[REG_PC]
}

// SetPc sets the program counter.
func (r *Register) SetPc(value uint32) {
	r.Set(REG_PC, value)
}

// AdvancePc moves the program counter forward by delta bytes.
func (r *Register) AdvancePc(delta uint32) {
	r.SetPc(r.Pc() + delta)
}

// Reset clears all registers and points the program counter at MEMORY_BASE.
func (r *Register) Reset() {
	clear(r.Data[:])
	r.SetPc(MEMORY_BASE)
}

// All returns an iterator over the general-purpose registers x0..x31.
func (r *Register) All() iter.Seq2[string, uint32] {
	return func(yield func(name string, value uint32) bool) {
		for index := range REG_PC {
			if !yield(RegisterName(index), r.Get(index)) {
				return
			}
		}
	}
}

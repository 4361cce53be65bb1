package cpu

import (
	"errors"
	"fmt"
	"log"
)

// Cpu is the simulation context for a single RV32I hart.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register Register // Register file and program counter.
	Memory   *Memory  // Memory window at MEMORY_BASE.

	Ticks int // Instructions stepped since reset.
}

// NewCpu creates a CPU with a zeroed memory window of size bytes.
func NewCpu(size uint32) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: NewMemory(size),
	}

	cpu.Register.Reset()

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("% 5s: %08x\n", "pc", cpu.Register.Pc())
	for name, value := range cpu.Register.All() {
		text += fmt.Sprintf("% 5s: %08x\n", name, value)
	}

	return
}

// Reset the CPU state.
// - Clears the registers.
// - Points the program counter at MEMORY_BASE.
// - Zeros the tick counter.
//
// Memory is left intact, so a loaded program survives a reset.
func (cpu *Cpu) Reset() (err error) {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Ticks = 0

	return
}

// Fetch reads the instruction word at the program counter.
func (cpu *Cpu) Fetch() (word uint32, err error) {
	pc := cpu.Register.Pc()

	word, err = cpu.Memory.Fetch32(pc)
	if err != nil {
		err = errors.Join(ErrFetch, err)
		return
	}

	return
}

// Tick fetches and decodes the instruction at the program counter, then
// advances the program counter past it.
func (cpu *Cpu) Tick() (ins Instruction, err error) {
	pc := cpu.Register.Pc()

	word, err := cpu.Fetch()
	if err != nil {
		return
	}

	ins = Decode(word)

	vs1 := cpu.Register.Get(ins.Rs1)
	vs2 := cpu.Register.Get(ins.Rs2)

	if cpu.Verbose {
		log.Printf("cpu: %08x: %08x %v", pc, word, ins)
		log.Printf("cpu: rs1 %v=%08x rs2 %v=%08x",
			RegisterName(ins.Rs1), vs1, RegisterName(ins.Rs2), vs2)
		log.Printf("cpu: imm_i %032b", ins.ImmI)
		log.Printf("cpu: imm_s %032b", ins.ImmS)
		log.Printf("cpu: imm_b %032b", ins.ImmB)
		log.Printf("cpu: imm_u %032b", ins.ImmU)
		log.Printf("cpu: imm_j %032b", ins.ImmJ)
	}

	cpu.Register.AdvancePc(INSTRUCTION_SIZE)
	cpu.Ticks++

	return
}

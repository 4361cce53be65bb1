// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"io"
	"io/fs"
	"log"

	"github.com/ezrec/rv32/cpu"
	"github.com/ezrec/rv32/dump"
	"github.com/ezrec/rv32/loader"
)

// Emulator state. CPU + memory + loaded program.
type Emulator struct {
	Verbose bool            // If set, enables verbose logging.
	*cpu.Cpu                // Reference to the CPU simulation.
	Program *loader.Program // The most recently loaded program.
}

// NewEmulator creates a new emulator with the default memory window.
func NewEmulator() (emu *Emulator) {
	return NewEmulatorSize(cpu.MEMORY_SIZE)
}

// NewEmulatorSize creates a new emulator with a memory window of size bytes.
func NewEmulatorSize(size uint32) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(size),
		Program: &loader.Program{},
	}

	return
}

// Load maps an ELF image into memory.
func (emu *Emulator) Load(r io.ReaderAt) (err error) {
	ld := &loader.Loader{Verbose: emu.Verbose}

	prog, err := ld.Load(r, emu.Cpu.Memory)
	if err != nil {
		return
	}

	emu.Program = prog
	return
}

// LoadFile maps the named ELF image from filesys into memory.
func (emu *Emulator) LoadFile(filesys fs.FS, name string) (err error) {
	ld := &loader.Loader{Verbose: emu.Verbose}

	prog, err := ld.LoadFile(filesys, name, emu.Cpu.Memory)
	if err != nil {
		return
	}

	emu.Program = prog
	return
}

// Reset the processor state. Loaded memory is kept.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	return emu.Cpu.Reset()
}

// Ticks returns the total instructions stepped since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() uint32 {
	return emu.Cpu.Register.Pc()
}

// Step fetches and decodes one instruction and advances the program counter.
func (emu *Emulator) Step() (ins cpu.Instruction, err error) {
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Pc()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	ins, err = emu.Cpu.Tick()
	return
}

// Run steps until the predicate reports done, a step fails, or ctx is done.
// Returns the number of steps taken by this call.
func (emu *Emulator) Run(ctx context.Context, until Predicate) (steps int, err error) {
	if until == nil {
		err = ErrNoPredicate
		return
	}

	for {
		err = ctx.Err()
		if err != nil {
			return
		}

		var ins cpu.Instruction
		ins, err = emu.Step()
		if err != nil {
			return
		}
		steps++

		var done bool
		done, err = until(emu, ins)
		if err != nil {
			return
		}
		if done {
			if emu.Verbose {
				log.Printf("emulator: stop after %d steps at 0x%08x", steps, emu.Pc())
			}
			return
		}
	}
}

// DumpMemory writes size bytes of memory from the window base.
func (emu *Emulator) DumpMemory(w io.Writer, size int, style dump.Style) error {
	return dump.Memory(w, emu.Cpu.Memory, emu.Cpu.Memory.Base(), size, style)
}

// DumpRegisters writes the register file.
func (emu *Emulator) DumpRegisters(w io.Writer) error {
	return dump.Registers(w, &emu.Cpu.Register)
}

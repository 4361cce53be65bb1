// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"

	"github.com/ezrec/rv32/cpu"
	"github.com/ezrec/rv32/dump"
	"github.com/ezrec/rv32/emulator"
)

// windowSize checks that a memory window of size bytes fits between
// cpu.MEMORY_BASE and the top of the 32-bit address space.
func windowSize(size uint) (window uint32, err error) {
	limit := uint64(math.MaxUint32) - uint64(cpu.MEMORY_BASE) + 1
	if size == 0 || uint64(size) > limit {
		err = fmt.Errorf("memory size %d not in 1..%d", size, limit)
		return
	}

	window = uint32(size)
	return
}

func main() {
	var file string
	var steps int
	var until string
	var dumpSize int
	var binary bool
	var registers bool
	var memorySize uint
	var verbose bool

	flag.StringVar(&file, "f", "", "RV32I ELF executable to load")
	flag.IntVar(&steps, "n", 1, "Maximum instructions to step")
	flag.StringVar(&until, "until", "", "Starlark expression to stop on (pc, steps, word, opcode, op, x0..x31)")
	flag.IntVar(&dumpSize, "d", 0, "Bytes of memory to dump after running")
	flag.BoolVar(&binary, "b", false, "Dump memory words in binary")
	flag.BoolVar(&registers, "r", false, "Dump registers after running")
	flag.UintVar(&memorySize, "m", uint(cpu.MEMORY_SIZE), "Memory window size in bytes")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(file) == 0 {
		log.Fatalf("%v: -f is required", os.Args[0])
	}

	style := dump.STYLE_HEX
	if binary {
		style = dump.STYLE_BIN
	}

	preds := []emulator.Predicate{emulator.MaxSteps(steps)}
	if len(until) != 0 {
		pred, err := emulator.Until(until)
		if err != nil {
			log.Fatalf("-until: %v", err)
		}
		preds = append(preds, pred)
	}

	window, err := windowSize(memorySize)
	if err != nil {
		log.Fatalf("-m: %v", err)
	}

	emu := emulator.NewEmulatorSize(window)
	emu.Verbose = verbose

	inf, err := os.Open(file)
	if err != nil {
		log.Fatalf("%v: %v", file, err)
	}
	defer inf.Close()

	err = emu.Load(inf)
	if err != nil {
		log.Fatalf("%v: %v", file, err)
	}

	err = emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if steps > 0 {
		_, err = emu.Run(ctx, emulator.Any(preds...))
		if err != nil {
			log.Fatal(err)
		}
	}

	if dumpSize > 0 {
		err = emu.DumpMemory(os.Stdout, dumpSize, style)
		if err != nil {
			log.Fatal(err)
		}
	}

	if registers {
		err = emu.DumpRegisters(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
	}
}

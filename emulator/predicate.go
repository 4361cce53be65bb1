package emulator

import (
	"errors"
	"fmt"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/rv32/cpu"
)

// Predicate is evaluated after every step of Run.
// The emulator state is post-step; ins is the instruction just stepped.
type Predicate func(emu *Emulator, ins cpu.Instruction) (done bool, err error)

// MaxSteps stops a run once it has taken count steps.
// The count is kept by the predicate, so use a new one for each run.
// Run always takes one step before asking, so counts below one mean one.
func MaxSteps(count int) Predicate {
	count = max(count, 1)
	steps := 0
	return func(emu *Emulator, ins cpu.Instruction) (bool, error) {
		steps++
		return steps >= count, nil
	}
}

// AtPc stops when the program counter reaches address.
func AtPc(address uint32) Predicate {
	return func(emu *Emulator, ins cpu.Instruction) (bool, error) {
		return emu.Pc() == address, nil
	}
}

// OnOperation stops after an instruction tagged op is stepped.
func OnOperation(op cpu.Operation) Predicate {
	return func(emu *Emulator, ins cpu.Instruction) (bool, error) {
		return ins.Operation() == op, nil
	}
}

// Any stops when any of the predicates is done.
// Every predicate is evaluated on each step.
func Any(preds ...Predicate) Predicate {
	return func(emu *Emulator, ins cpu.Instruction) (done bool, err error) {
		for _, pred := range preds {
			var ok bool
			ok, err = pred(emu, ins)
			if err != nil {
				return
			}
			done = done || ok
		}
		return
	}
}

// _until_params are the names bound for an Until expression.
var _until_params = func() (params []string) {
	params = []string{"pc", "steps", "word", "opcode", "op"}
	for n := range 32 {
		params = append(params, fmt.Sprintf("x%d", n))
	}
	return
}()

// Until compiles a Starlark expression into a predicate.
//
// The expression may refer to pc, steps, word, opcode, op (the mnemonic of the
// stepped instruction) and x0 through x31. The run stops when it is true.
func Until(expr string) (pred Predicate, err error) {
	if strings.TrimSpace(expr) == "" || strings.ContainsAny(expr, "\r\n") {
		err = errors.Join(ErrPredicate, fmt.Errorf("%q", expr))
		return
	}

	thread := starlark.Thread{Name: "until"}
	opts := syntax.FileOptions{}
	prog := "def until(" + strings.Join(_until_params, ", ") + "):\n    return " + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "until", prog, starlark.StringDict{})
	if err != nil {
		err = errors.Join(ErrPredicate, err)
		return
	}

	fn, ok := dict["until"]
	if !ok {
		err = errors.Join(ErrPredicate, fmt.Errorf("%q", expr))
		return
	}

	pred = func(emu *Emulator, ins cpu.Instruction) (done bool, err error) {
		args := starlark.Tuple{
			starlark.MakeUint64(uint64(emu.Pc())),
			starlark.MakeInt(emu.Ticks()),
			starlark.MakeUint64(uint64(ins.Word)),
			starlark.MakeUint64(uint64(ins.Opcode)),
			starlark.String(ins.Operation().String()),
		}
		for _, value := range emu.Cpu.Register.All() {
			args = append(args, starlark.MakeUint64(uint64(value)))
		}

		rc, err := starlark.Call(&starlark.Thread{Name: "until"}, fn, args, nil)
		if err != nil {
			err = errors.Join(ErrPredicate, err)
			return
		}

		st_bool, ok := rc.(starlark.Bool)
		if !ok {
			err = errors.Join(ErrPredicate, fmt.Errorf("%q is %s, not bool", expr, rc.Type()))
			return
		}

		done = bool(st_bool)
		return
	}

	return
}

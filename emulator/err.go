package emulator

import (
	"errors"

	"github.com/ezrec/rv32/translate"
)

var f = translate.From

var (
	ErrNoPredicate = errors.New(f("run requires a termination predicate"))
	ErrPredicate   = errors.New(f("predicate"))
)

// ErrRuntime indicates the program counter of a runtime error.
type ErrRuntime struct {
	Pc  uint32
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%08x %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

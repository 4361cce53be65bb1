package cpu

import (
	"errors"

	"github.com/ezrec/rv32/translate"
)

var f = translate.From

var (
	// Memory errors
	ErrMemoryBounds = errors.New(f("address out of bounds"))

	// Cpu errors
	ErrFetch = errors.New(f("fetch"))
)

// ErrAddress reports the failing access of a memory operation.
type ErrAddress struct {
	Address uint32
	Length  int
	Err     error
}

func (err *ErrAddress) Error() string {
	return f("address 0x%08x length %d %v", err.Address, err.Length, err.Err)
}

func (err *ErrAddress) Unwrap() error {
	return err.Err
}

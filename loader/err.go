package loader

import (
	"errors"

	"github.com/ezrec/rv32/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageMalformed = errors.New(f("malformed image"))
	ErrImageFormat    = errors.New(f("unsupported image format"))
)

// ErrSegment indicates the program header that failed to load.
type ErrSegment struct {
	Index   int
	Address uint32
	Err     error
}

func (err *ErrSegment) Error() string {
	return f("segment %d at 0x%08x %v", err.Index, err.Address, err.Err)
}

func (err *ErrSegment) Unwrap() error {
	return err.Err
}

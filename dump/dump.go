// Package dump renders memory and register state as text for inspection.
package dump

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ezrec/rv32/internal"
	"github.com/ezrec/rv32/translate"
)

var f = translate.From

var (
	ErrStyle = errors.New(f("unknown dump style"))
)

const (
	ROW_SIZE  = 16 // Bytes per memory dump row.
	WORD_SIZE = 4
	REG_LINES = 31 // General-purpose registers listed before the PC.
)

// Style selects the rendering of memory words.
type Style int

//go:generate go tool stringer -linecomment -type=Style
const (
	STYLE_HEX = Style(0) // hex
	STYLE_BIN = Style(1) // bin
)

// ParseStyle returns the style for a name.
func ParseStyle(name string) (style Style, err error) {
	for _, candidate := range []Style{STYLE_HEX, STYLE_BIN} {
		if candidate.String() == name {
			return candidate, nil
		}
	}

	err = fmt.Errorf("%w: %v", ErrStyle, name)
	return
}

// Word renders a memory word in the given style.
func (style Style) Word(value uint32) string {
	switch style {
	case STYLE_BIN:
		return fmt.Sprintf("0b%032b", value)
	default:
		return fmt.Sprintf("0x%08x", value)
	}
}

// Window is a readable memory region.
type Window interface {
	Read(address uint32, length int) ([]byte, error)
}

// Memory writes size bytes of mem starting at address, 16 bytes per row.
// Each row is the row address followed by up to four little-endian words.
// size is rounded up to a whole number of words.
func Memory(w io.Writer, mem Window, address uint32, size int, style Style) (err error) {
	if size > 0 {
		size = (size + WORD_SIZE - 1) &^ (WORD_SIZE - 1)
	}

	data, err := mem.Read(address, size)
	if err != nil {
		return
	}

	for row := 0; row < len(data); row += ROW_SIZE {
		end := min(row+ROW_SIZE, len(data))

		words := make([]string, 0, ROW_SIZE/WORD_SIZE)
		for n := row; n < end; n += WORD_SIZE {
			words = append(words, style.Word(binary.LittleEndian.Uint32(data[n:n+WORD_SIZE])))
		}

		_, err = fmt.Fprintf(w, "0x%08x: %v\n", address+uint32(row), strings.Join(words, " "))
		if err != nil {
			return
		}
	}

	return
}

// RegisterFile is a readable register file.
type RegisterFile interface {
	All() iter.Seq2[string, uint32]
	Pc() uint32
}

// Registers writes a header, then x0..x30 and the PC, one per line.
func Registers(w io.Writer, regs RegisterFile) (err error) {
	_, err = fmt.Fprintf(w, "%-5s %8s\n", "Reg", "Value")
	if err != nil {
		return
	}

	lines := internal.IterSeq2Concat(
		internal.IterSeq2Take(regs.All(), REG_LINES),
		internal.IterSeq2Of("PC", regs.Pc()),
	)

	for name, value := range lines {
		_, err = fmt.Fprintf(w, "%-5s %08x\n", name, value)
		if err != nil {
			return
		}
	}

	return
}

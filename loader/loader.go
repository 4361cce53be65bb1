package loader

import (
	"bytes"
	"debug/elf"
	"errors"
	"io"
	"io/fs"
	"log"

	"github.com/ezrec/rv32/cpu"
)

// Memory is the destination of a program load.
type Memory interface {
	// Base returns the lowest address of the memory window.
	Base() uint32
	// Size returns the size of the memory window in bytes.
	Size() uint32
	// Load copies data into memory at address.
	Load(address uint32, data []byte) error
}

// Loader places ELF program segments into memory.
type Loader struct {
	Verbose bool // If set, logs each segment.
}

// LoadFile loads the named ELF image from filesys into mem.
func (ld *Loader) LoadFile(filesys fs.FS, name string, mem Memory) (prog *Program, err error) {
	data, err := fs.ReadFile(filesys, name)
	if err != nil {
		return
	}

	return ld.Load(bytes.NewReader(data), mem)
}

// Load parses an ELF image and copies each PT_LOAD segment at or above the
// memory base into mem.
func (ld *Loader) Load(r io.ReaderAt, mem Memory) (prog *Program, err error) {
	ef, err := elf.NewFile(r)
	if err != nil {
		err = errors.Join(ErrImageMalformed, err)
		return
	}
	defer ef.Close()

	switch {
	case ef.Class != elf.ELFCLASS32:
		err = errors.Join(ErrImageFormat, errors.New(ef.Class.String()))
		return
	case ef.Data != elf.ELFDATA2LSB:
		err = errors.Join(ErrImageFormat, errors.New(ef.Data.String()))
		return
	case ef.Machine != elf.EM_RISCV:
		err = errors.Join(ErrImageFormat, errors.New(ef.Machine.String()))
		return
	}

	prog = &Program{
		Entry: uint32(ef.Entry),
	}
	defer func() {
		if err != nil {
			prog = nil
		}
	}()

	for index, ph := range ef.Progs {
		if ph.Type != elf.PT_LOAD {
			continue
		}

		seg := Segment{
			Index:    index,
			Address:  uint32(ph.Vaddr),
			Size:     uint32(ph.Memsz),
			FileSize: uint32(ph.Filesz),
			Flags:    ph.Flags,
		}

		if seg.Address < mem.Base() {
			if ld.Verbose {
				log.Printf("loader: skip segment %d at 0x%08x", index, seg.Address)
			}
			seg.Skipped = true
			prog.Segments = append(prog.Segments, seg)
			continue
		}

		if ph.Filesz > ph.Memsz {
			err = &ErrSegment{Index: index, Address: seg.Address, Err: ErrImageMalformed}
			return
		}

		if uint64(seg.Address)+ph.Memsz > uint64(mem.Base())+uint64(mem.Size()) {
			err = &ErrSegment{Index: index, Address: seg.Address, Err: &cpu.ErrAddress{
				Address: seg.Address,
				Length:  int(ph.Memsz),
				Err:     cpu.ErrMemoryBounds,
			}}
			return
		}

		data := make([]byte, ph.Memsz)
		if ph.Filesz > 0 {
			_, err = ph.ReadAt(data[:ph.Filesz], 0)
			if err != nil {
				err = &ErrSegment{Index: index, Address: seg.Address, Err: errors.Join(ErrImageMalformed, err)}
				return
			}
		}

		err = mem.Load(seg.Address, data)
		if err != nil {
			err = &ErrSegment{Index: index, Address: seg.Address, Err: err}
			return
		}

		if ld.Verbose {
			log.Printf("loader: segment %d at 0x%08x size 0x%x (%v)", index, seg.Address, seg.Size, seg.Flags)
		}

		prog.Segments = append(prog.Segments, seg)
	}

	return
}

// Package elftest builds minimal RV32 ELF executables for tests.
package elftest

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
)

// Segment is one PT_LOAD program header and its file contents.
type Segment struct {
	Address uint32
	Data    []byte
	Memsz   uint32 // If zero, len(Data).
	Flags   elf.ProgFlag
}

// Image describes an ELF executable to build.
type Image struct {
	Class    elf.Class   // Defaults to ELFCLASS32.
	Data     elf.Data    // Defaults to ELFDATA2LSB.
	Machine  elf.Machine // Defaults to EM_RISCV.
	Entry    uint32
	Segments []Segment
}

const (
	header32Size = 52
	prog32Size   = 32
	header64Size = 64
	prog64Size   = 56
)

// Build renders the image. Segment data follows the program header table.
// ELFCLASS64 and ELFDATA2MSB images are rendered in their own layout and
// byte order, so only the loader's own checks reject them.
func (img *Image) Build() []byte {
	class := img.Class
	if class == elf.ELFCLASSNONE {
		class = elf.ELFCLASS32
	}
	data := img.Data
	if data == elf.ELFDATANONE {
		data = elf.ELFDATA2LSB
	}
	machine := img.Machine
	if machine == elf.EM_NONE {
		machine = elf.EM_RISCV
	}

	var order binary.ByteOrder = binary.LittleEndian
	if data == elf.ELFDATA2MSB {
		order = binary.BigEndian
	}

	var ident [elf.EI_NIDENT]byte
	copy(ident[:], elf.ELFMAG)
	ident[elf.EI_CLASS] = byte(class)
	ident[elf.EI_DATA] = byte(data)
	ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)

	headerSize, progSize := header32Size, prog32Size
	if class == elf.ELFCLASS64 {
		headerSize, progSize = header64Size, prog64Size
	}

	buf := &bytes.Buffer{}
	if class == elf.ELFCLASS64 {
		hdr := elf.Header64{
			Ident:     ident,
			Type:      uint16(elf.ET_EXEC),
			Machine:   uint16(machine),
			Version:   uint32(elf.EV_CURRENT),
			Entry:     uint64(img.Entry),
			Phoff:     uint64(headerSize),
			Ehsize:    uint16(headerSize),
			Phentsize: uint16(progSize),
			Phnum:     uint16(len(img.Segments)),
			Shentsize: 64,
		}
		binary.Write(buf, order, &hdr)
	} else {
		hdr := elf.Header32{
			Ident:     ident,
			Type:      uint16(elf.ET_EXEC),
			Machine:   uint16(machine),
			Version:   uint32(elf.EV_CURRENT),
			Entry:     img.Entry,
			Phoff:     uint32(headerSize),
			Ehsize:    uint16(headerSize),
			Phentsize: uint16(progSize),
			Phnum:     uint16(len(img.Segments)),
			Shentsize: 40,
		}
		binary.Write(buf, order, &hdr)
	}

	offset := uint32(headerSize + progSize*len(img.Segments))
	for _, seg := range img.Segments {
		memsz := seg.Memsz
		if memsz == 0 {
			memsz = uint32(len(seg.Data))
		}
		flags := seg.Flags
		if flags == 0 {
			flags = elf.PF_R | elf.PF_X
		}
		if class == elf.ELFCLASS64 {
			prog := elf.Prog64{
				Type:   uint32(elf.PT_LOAD),
				Flags:  uint32(flags),
				Off:    uint64(offset),
				Vaddr:  uint64(seg.Address),
				Paddr:  uint64(seg.Address),
				Filesz: uint64(len(seg.Data)),
				Memsz:  uint64(memsz),
				Align:  4,
			}
			binary.Write(buf, order, &prog)
		} else {
			prog := elf.Prog32{
				Type:   uint32(elf.PT_LOAD),
				Off:    offset,
				Vaddr:  seg.Address,
				Paddr:  seg.Address,
				Filesz: uint32(len(seg.Data)),
				Memsz:  memsz,
				Flags:  uint32(flags),
				Align:  4,
			}
			binary.Write(buf, order, &prog)
		}
		offset += uint32(len(seg.Data))
	}

	for _, seg := range img.Segments {
		buf.Write(seg.Data)
	}

	return buf.Bytes()
}

// Words renders instruction words as little-endian bytes.
func Words(words ...uint32) []byte {
	data := make([]byte, 4*len(words))
	for n, word := range words {
		binary.LittleEndian.PutUint32(data[4*n:], word)
	}
	return data
}

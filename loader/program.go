package loader

import (
	"debug/elf"
	"iter"
)

// Segment describes one PT_LOAD program header.
type Segment struct {
	Index    int          // Program header index.
	Address  uint32       // Virtual address.
	Size     uint32       // Size in memory.
	FileSize uint32       // Size in the image; the remainder is zero filled.
	Flags    elf.ProgFlag // Access flags.
	Skipped  bool         // Set if the segment lies below the memory window.
}

// Program is the result of loading an image.
type Program struct {
	Entry    uint32
	Segments []Segment
}

// Loaded returns an iterator over the segments placed in memory.
func (prog *Program) Loaded() iter.Seq2[int, Segment] {
	return func(yield func(index int, seg Segment) bool) {
		for _, seg := range prog.Segments {
			if seg.Skipped {
				continue
			}
			if !yield(seg.Index, seg) {
				return
			}
		}
	}
}

// Lowest returns the loaded segment with the lowest address.
func (prog *Program) Lowest() (lowest Segment, ok bool) {
	for _, seg := range prog.Loaded() {
		if !ok || seg.Address < lowest.Address {
			lowest = seg
			ok = true
		}
	}

	return
}

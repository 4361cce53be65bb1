// Package loader maps the loadable segments of an RV32 ELF executable into
// the emulated memory window.
//
// Segments that start below the window base are skipped; they carry
// metadata that is not part of the emulated address space. Any failure to
// parse the image, or to read or place a segment, aborts the load.
package loader

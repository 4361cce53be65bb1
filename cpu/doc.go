// Package cpu implements the decode and state core of an RV32I processor.
//
// The core consists of a register file of 32 general-purpose registers
// (x0 hardwired to zero) plus the program counter, a flat little-endian
// memory window based at MEMORY_BASE, and an instruction decoder that
// recovers the opcode, function fields, register operands and all five
// immediate encodings (I, S, B, U, J) from a 32-bit instruction word.
//
// A Tick fetches the word at the program counter, decodes it and advances
// the program counter by one instruction. Decoded instructions are tagged
// with their RV32I operation so they can be traced or disassembled, but
// they are not executed.
package cpu

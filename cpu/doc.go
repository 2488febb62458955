// Package cpu implements the LS-8 microprocessor and its assembler.
//
// The CPU consists of a program counter (PC), 256 bytes of memory shared by
// code and stack, eight 8-bit general-purpose registers (r0-r7, with r7 as
// the stack pointer), an ALU, and a tri-state comparison flag. Instructions
// are a single opcode byte followed by up to two operand bytes.
//
// The assembler provides a small assembly language for the LS-8 instruction
// set, supporting macros, labels, equates, and compile-time expression
// evaluation. ReadLs8 reads the classic one-binary-byte-per-line format.
package cpu

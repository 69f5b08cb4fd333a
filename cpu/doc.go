// Package cpu implements the execution engine and assembler for the RS-100 node.
//
// The node consists of a program counter (a byte offset into the program),
// an accumulator (ACC), a backup register (BAK), and two ports, up and down.
// Each instruction is a fixed 4-byte record; the three trailing bytes are
// read either as operand selectors and a literal, or as a packed 24-bit
// absolute jump target, depending on the opcode. The DEST_LAST selector
// resolves to whichever port was most recently read or written.
//
// The assembler provides a line-oriented assembly language for the node,
// supporting labels, equates, and compile-time expression evaluation.
package cpu

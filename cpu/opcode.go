package cpu

import (
	"fmt"

	"github.com/ezrec/rs100/num"
)

// Instruction format
//
//	byte 0: | r r r L o o o o |  o: opcode, L: operand A is literal, r: reserved
//	byte 1: literal high byte, or jump target bits 23..16
//	byte 2: literal low byte, or source selector, or jump target bits 15..8
//	byte 3: destination selector, or jump target bits 7..0
const (
	INSTRUCTION_SIZE = 4           // Bytes per instruction.
	OPCODE_MASK      = 0b0000_1111 // Opcode bits of byte 0.
	FLAG_LITERAL     = 0b0001_0000 // Operand A is a literal in bytes 1..2.
	JUMP_MASK        = 0xff_ffff   // Range of a packed jump target.
)

// Opcode is an instruction operation.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP = Opcode(0)  // nop
	OP_MOV = Opcode(1)  // mov
	OP_SWP = Opcode(2)  // swp
	OP_SAV = Opcode(3)  // sav
	OP_ADD = Opcode(4)  // add
	OP_SUB = Opcode(5)  // sub
	OP_NEG = Opcode(6)  // neg
	OP_JMP = Opcode(7)  // jmp
	OP_JEZ = Opcode(8)  // jez
	OP_JNZ = Opcode(9)  // jnz
	OP_JGZ = Opcode(10) // jgz
	OP_JLZ = Opcode(11) // jlz
	OP_JRO = Opcode(12) // jro
)

// OPCODE_COUNT is the number of defined opcodes.
const OPCODE_COUNT = 13

// IsJump returns true for the opcodes that use a packed jump target.
func (op Opcode) IsJump() bool {
	return op >= OP_JMP && op <= OP_JLZ
}

// Dest is an operand source or destination selector.
type Dest int

//go:generate go tool stringer -linecomment -type=Dest
const (
	DEST_LAST = Dest(0) // last
	DEST_ACC  = Dest(1) // acc
	DEST_UP   = Dest(2) // up
	DEST_DOWN = Dest(3) // down
)

// IsPort returns true if the selector names a port directly.
func (dst Dest) IsPort() bool {
	return dst == DEST_UP || dst == DEST_DOWN
}

// destOf decodes a selector byte. Unknown selectors decode as DEST_LAST.
func destOf(b uint8) Dest {
	if b > uint8(DEST_DOWN) {
		return DEST_LAST
	}
	return Dest(b)
}

// Code is a single encoded instruction.
type Code [INSTRUCTION_SIZE]uint8

// Instruction is a decoded Code. All interpretations of the operand
// bytes are present; the opcode determines which are used.
type Instruction struct {
	Op        Opcode
	Literal   bool    // Operand A is Immediate, otherwise read from Source.
	Immediate num.Num // Literal operand A from bytes 1..2.
	Source    Dest    // Operand A selector from byte 2.
	Target    Dest    // Operand B selector from byte 3.
	Jump      uint32  // Packed jump target from bytes 1..3.
}

// MakeCode creates an instruction with a selector operand A.
func MakeCode(op Opcode, src, dst Dest) Code {
	return Code{uint8(op) & OPCODE_MASK, 0, uint8(src), uint8(dst)}
}

// MakeCodeLiteral creates an instruction with a literal operand A.
func MakeCodeLiteral(op Opcode, value num.Num, dst Dest) Code {
	hi, lo := value.Bytes()
	return Code{(uint8(op) & OPCODE_MASK) | FLAG_LITERAL, hi, lo, uint8(dst)}
}

// MakeCodeJump creates an instruction with a packed jump target.
func MakeCodeJump(op Opcode, target uint32) Code {
	target &= JUMP_MASK
	return Code{uint8(op) & OPCODE_MASK, uint8(target >> 16), uint8(target >> 8), uint8(target)}
}

// Opcode returns the opcode of the instruction.
func (code Code) Opcode() (op Opcode, err error) {
	op = Opcode(code[0] & OPCODE_MASK)
	if op >= OPCODE_COUNT {
		err = ErrOpcode(code[0])
		return
	}
	return
}

// Literal returns true if operand A is a literal.
func (code Code) Literal() bool {
	return (code[0] & FLAG_LITERAL) != 0
}

// Immediate returns the literal interpretation of bytes 1..2.
func (code Code) Immediate() num.Num {
	return num.FromBytes(code[1], code[2])
}

// Source returns the selector interpretation of byte 2.
func (code Code) Source() Dest {
	return destOf(code[2])
}

// Target returns the selector interpretation of byte 3.
func (code Code) Target() Dest {
	return destOf(code[3])
}

// Jump returns the packed jump target in bytes 1..3.
func (code Code) Jump() uint32 {
	return (uint32(code[1]) << 16) | (uint32(code[2]) << 8) | uint32(code[3])
}

// Decode decodes all interpretations of the instruction.
func (code Code) Decode() (ins Instruction, err error) {
	op, err := code.Opcode()
	if err != nil {
		return
	}

	ins = Instruction{
		Op:        op,
		Literal:   code.Literal(),
		Immediate: code.Immediate(),
		Source:    code.Source(),
		Target:    code.Target(),
		Jump:      code.Jump(),
	}

	return
}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	ins, err := code.Decode()
	if err != nil {
		return fmt.Sprintf(".byte 0x%02x, 0x%02x, 0x%02x, 0x%02x", code[0], code[1], code[2], code[3])
	}

	return ins.String()
}

// String returns the assembly language representation of this instruction.
func (ins Instruction) String() (out string) {
	src := ins.Source.String()
	if ins.Literal {
		src = ins.Immediate.String()
	}

	switch ins.Op {
	case OP_MOV:
		out = fmt.Sprintf("%v %v, %v", ins.Op, src, ins.Target)
	case OP_ADD, OP_SUB:
		out = fmt.Sprintf("%v %v", ins.Op, src)
	case OP_JMP, OP_JEZ, OP_JNZ, OP_JGZ, OP_JLZ:
		out = fmt.Sprintf("%v 0x%06x", ins.Op, ins.Jump)
	default:
		out = ins.Op.String()
	}

	return
}

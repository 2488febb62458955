package cpu

import (
	"fmt"
	"iter"
)

// Opcode is an LS-8 instruction byte.
//
// The byte layout is AABCDDDD:
//   - AA: number of operand bytes that follow the opcode.
//   - B: set if the instruction is executed by the ALU.
//   - C: set if the instruction sets the PC directly.
//   - DDDD: instruction identifier.
type Opcode byte

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HLT  = Opcode(0b0000_0001) // HLT
	OP_RET  = Opcode(0b0001_0001) // RET
	OP_PUSH = Opcode(0b0100_0101) // PUSH
	OP_POP  = Opcode(0b0100_0110) // POP
	OP_PRN  = Opcode(0b0100_0111) // PRN
	OP_CALL = Opcode(0b0101_0000) // CALL
	OP_JMP  = Opcode(0b0101_0100) // JMP
	OP_JEQ  = Opcode(0b0101_0101) // JEQ
	OP_JNE  = Opcode(0b0101_0110) // JNE
	OP_LDI  = Opcode(0b1000_0010) // LDI
	OP_ADD  = Opcode(0b1010_0000) // ADD
	OP_MUL  = Opcode(0b1010_0010) // MUL
	OP_CMP  = Opcode(0b1010_0111) // CMP
)

// Opcodes returns all of the implemented opcodes.
func Opcodes() []Opcode {
	return []Opcode{
		OP_HLT, OP_RET,
		OP_PUSH, OP_POP, OP_PRN,
		OP_CALL, OP_JMP, OP_JEQ, OP_JNE,
		OP_LDI,
		OP_ADD, OP_MUL, OP_CMP,
	}
}

// Valid returns true if the opcode has a handler.
func (op Opcode) Valid() bool {
	switch op {
	case OP_HLT, OP_RET,
		OP_PUSH, OP_POP, OP_PRN,
		OP_CALL, OP_JMP, OP_JEQ, OP_JNE,
		OP_LDI,
		OP_ADD, OP_MUL, OP_CMP:
		return true
	}

	return false
}

// Operands returns the number of operand bytes following the opcode.
func (op Opcode) Operands() int {
	return int(op >> 6)
}

// Len returns the encoded length of the instruction, in bytes.
func (op Opcode) Len() int {
	return 1 + op.Operands()
}

// IsAlu returns true if the instruction is executed by the ALU.
func (op Opcode) IsAlu() bool {
	return (op & 0b0010_0000) != 0
}

// SetsPc returns true if the instruction installs the PC directly.
func (op Opcode) SetsPc() bool {
	return (op & 0b0001_0000) != 0
}

// Code is a single decoded instruction.
type Code struct {
	Opcode Opcode
	A      byte // Operand A, usually a register index.
	B      byte // Operand B, a register index or immediate value.
}

// MakeCodeNone creates an instruction without operands.
func MakeCodeNone(op Opcode) Code {
	return Code{Opcode: op}
}

// MakeCodeReg creates an instruction with a single register operand.
func MakeCodeReg(op Opcode, reg byte) Code {
	return Code{Opcode: op, A: reg}
}

// MakeCodeRegReg creates an instruction with two register operands.
func MakeCodeRegReg(op Opcode, reg_a, reg_b byte) Code {
	return Code{Opcode: op, A: reg_a, B: reg_b}
}

// MakeCodeLdi creates a load-immediate instruction.
func MakeCodeLdi(reg byte, value byte) Code {
	return Code{Opcode: OP_LDI, A: reg, B: value}
}

// Len returns the encoded length of the instruction, in bytes.
// Invalid opcodes are a single data byte.
func (code Code) Len() int {
	if !code.Opcode.Valid() {
		return 1
	}

	return code.Opcode.Len()
}

// Bytes returns the encoded instruction.
func (code Code) Bytes() []byte {
	return []byte{byte(code.Opcode), code.A, code.B}[:code.Len()]
}

// Decode reads the instruction at pc. Only the operand bytes the opcode
// encodes are read.
func Decode(mem *Memory, pc int) (code Code, err error) {
	op, err := mem.Read(pc)
	if err != nil {
		return
	}

	code.Opcode = Opcode(op)
	if !code.Opcode.Valid() {
		err = ErrIllegalInstruction{Opcode: code.Opcode, Pc: pc}
		return
	}

	operands := [2](*byte){&code.A, &code.B}
	for n := range code.Opcode.Operands() {
		*operands[n], err = mem.Read(pc + 1 + n)
		if err != nil {
			return
		}
	}

	return
}

// Disassemble walks a binary image, yielding the address and decoded
// instruction. Bytes that are not valid opcodes are yielded as single
// byte codes. Truncated operands at the end of the image read as zero.
func Disassemble(data []byte) iter.Seq2[int, Code] {
	return func(yield func(address int, code Code) bool) {
		for address := 0; address < len(data); {
			code := Code{Opcode: Opcode(data[address])}
			size := code.Len()
			if address+1 < len(data) && size > 1 {
				code.A = data[address+1]
			}
			if address+2 < len(data) && size > 2 {
				code.B = data[address+2]
			}
			if !yield(address, code) {
				return
			}
			address += size
		}
	}
}

// regName returns the assembly name of a register index.
func regName(reg byte) string {
	return fmt.Sprintf("R%d", reg)
}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	op := code.Opcode

	switch {
	case !op.Valid():
		out = fmt.Sprintf(".db 0x%02x", byte(op))
	case op == OP_LDI:
		out = fmt.Sprintf("%v %v,%d", op, regName(code.A), code.B)
	case op.Operands() == 2:
		out = fmt.Sprintf("%v %v,%v", op, regName(code.A), regName(code.B))
	case op.Operands() == 1:
		out = fmt.Sprintf("%v %v", op, regName(code.A))
	default:
		out = op.String()
	}

	return
}

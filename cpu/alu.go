package cpu

// AluOp is an ALU operation type.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp,Flag -output=alu_string.go
const (
	ALU_OP_ADD = AluOp(0) // add
	ALU_OP_MUL = AluOp(1) // mul
	ALU_OP_CMP = AluOp(2) // cmp
)

// Flag is the result of the most recent comparison.
type Flag int

const (
	FLAG_UNSET = Flag(0) // -
	FLAG_LT    = Flag(1) // lt
	FLAG_GT    = Flag(2) // gt
	FLAG_EQ    = Flag(3) // eq
)

// compare returns the flag for a comparison of a against b.
func compare(a, b byte) Flag {
	switch {
	case a < b:
		return FLAG_LT
	case a > b:
		return FLAG_GT
	default:
		return FLAG_EQ
	}
}

// Alu applies an ALU operation to two registers.
// Arithmetic results replace reg_a, wrapping modulo 256.
// Comparisons only update the flags.
func (cpu *Cpu) Alu(op AluOp, reg_a, reg_b byte) (err error) {
	a, err := cpu.GetRegister(reg_a)
	if err != nil {
		return
	}
	b, err := cpu.GetRegister(reg_b)
	if err != nil {
		return
	}

	switch op {
	case ALU_OP_ADD:
		err = cpu.SetRegister(reg_a, a+b)
	case ALU_OP_MUL:
		err = cpu.SetRegister(reg_a, a*b)
	case ALU_OP_CMP:
		cpu.Flags = compare(a, b)
	default:
		err = ErrAluUnsupported
	}

	return
}

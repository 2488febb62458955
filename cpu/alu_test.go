package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlu(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op     AluOp
		a, b   byte
		result byte
		flags  Flag
	}){
		{ALU_OP_ADD, 1, 2, 3, FLAG_UNSET},
		{ALU_OP_ADD, 200, 100, 44, FLAG_UNSET},
		{ALU_OP_ADD, 255, 1, 0, FLAG_UNSET},
		{ALU_OP_MUL, 8, 9, 72, FLAG_UNSET},
		{ALU_OP_MUL, 128, 2, 0, FLAG_UNSET},
		{ALU_OP_CMP, 3, 5, 3, FLAG_LT},
		{ALU_OP_CMP, 5, 3, 5, FLAG_GT},
		{ALU_OP_CMP, 5, 5, 5, FLAG_EQ},
	}

	for _, entry := range table {
		cpu := NewCpu()
		cpu.Register[2] = entry.a
		cpu.Register[4] = entry.b

		err := cpu.Alu(entry.op, 2, 4)
		assert.NoError(err, entry.op.String())
		assert.Equal(entry.result, cpu.Register[2], entry.op.String())
		assert.Equal(entry.b, cpu.Register[4], entry.op.String())
		assert.Equal(entry.flags, cpu.Flags, entry.op.String())
	}
}

func TestAlu_SameRegister(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[0] = 12

	assert.NoError(cpu.Alu(ALU_OP_MUL, 0, 0))
	assert.Equal(byte(144), cpu.Register[0])

	assert.NoError(cpu.Alu(ALU_OP_CMP, 0, 0))
	assert.Equal(FLAG_EQ, cpu.Flags)
}

func TestAlu_Unsupported(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[0] = 1

	err := cpu.Alu(AluOp(99), 0, 0)
	assert.ErrorIs(err, ErrAluUnsupported)
	assert.Equal(byte(1), cpu.Register[0])
	assert.Equal(FLAG_UNSET, cpu.Flags)
	assert.Equal("AluOp(99)", AluOp(99).String())
}

func TestAlu_RegisterInvalid(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.ErrorIs(cpu.Alu(ALU_OP_ADD, 8, 0), ErrRegisterInvalid)
	assert.ErrorIs(cpu.Alu(ALU_OP_ADD, 0, 8), ErrRegisterInvalid)
}

func TestFlag_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("-", FLAG_UNSET.String())
	assert.Equal("lt", FLAG_LT.String())
	assert.Equal("gt", FLAG_GT.String())
	assert.Equal("eq", FLAG_EQ.String())
}

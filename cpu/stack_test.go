package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.True(cpu.Empty())
	assert.False(cpu.Full())

	assert.NoError(cpu.Push(0x12))
	assert.False(cpu.Empty())
	assert.Equal(1, cpu.Depth())
	assert.Equal(byte(STACK_TOP-1), cpu.Register[REG_SP])
	assert.Equal(byte(0x12), cpu.Memory[STACK_TOP-1])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.NoError(cpu.Push(0x12))
	assert.NoError(cpu.Push(0xab))

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(byte(0xab), val)
	assert.Equal(1, cpu.Depth())

	val, err = cpu.Pop()
	assert.NoError(err)
	assert.Equal(byte(0x12), val)
	assert.Equal(0, cpu.Depth())
	assert.Equal(byte(STACK_TOP), cpu.Register[REG_SP])
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	val, err := cpu.Pop()
	assert.ErrorIs(err, ErrStackUnderflow)
	assert.Equal(byte(0), val)
	assert.Equal(byte(STACK_TOP), cpu.Register[REG_SP])
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.NoError(cpu.Push(0x12))
	assert.NoError(cpu.Push(0xab))

	val, ok := cpu.Peek()
	assert.True(ok)
	assert.Equal(byte(0xab), val)
	assert.Equal(2, cpu.Depth())
}

func TestStack_Peek_Empty(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	val, ok := cpu.Peek()
	assert.False(ok)
	assert.Equal(byte(0), val)
}

func TestStack_Capacity(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	for i := range STACK_TOP {
		assert.False(cpu.Full())
		assert.NoError(cpu.Push(byte(i)))
	}

	assert.True(cpu.Full())
	assert.Equal(STACK_TOP, cpu.Depth())

	// Overflow leaves the stack pointer and memory untouched.
	before := cpu.Memory
	assert.ErrorIs(cpu.Push(0xee), ErrStackOverflow)
	assert.Equal(byte(0), cpu.Register[REG_SP])
	assert.Equal(before, cpu.Memory)

	for i := range STACK_TOP {
		val, err := cpu.Pop()
		assert.NoError(err)
		assert.Equal(byte(STACK_TOP-1-i), val)
	}
	assert.True(cpu.Empty())
}

func TestStack_AboveTop(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.NoError(cpu.SetRegister(REG_SP, 0xff))

	assert.True(cpu.Empty())
	assert.Equal(0, cpu.Depth())
	_, err := cpu.Pop()
	assert.ErrorIs(err, ErrStackUnderflow)
	assert.Equal(byte(0xff), cpu.Register[REG_SP])

	assert.NoError(cpu.Push(0x42))
	assert.Equal(byte(0x42), cpu.Memory[0xfe])
	assert.Equal(1, cpu.Depth())

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(byte(0x42), val)
	assert.Equal(byte(0xff), cpu.Register[REG_SP])
	assert.True(cpu.Empty())
}

func TestStack_Rebase(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.NoError(cpu.Push(0x11))

	// Loading the stack pointer starts a new, empty stack.
	assert.NoError(cpu.SetRegister(REG_SP, 0x80))
	assert.True(cpu.Empty())
	_, err := cpu.Pop()
	assert.ErrorIs(err, ErrStackUnderflow)

	// Reset returns to STACK_TOP.
	assert.NoError(cpu.Reset(nil))
	assert.True(cpu.Empty())
	assert.NoError(cpu.Push(0x22))
	assert.Equal(1, cpu.Depth())
}

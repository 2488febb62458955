package cpu

const (
	STACK_TOP = 0xf4 // Initial stack pointer. The stack grows down from here.
)

// Push decrements the stack pointer, then stores value at it.
func (cpu *Cpu) Push(value byte) (err error) {
	if cpu.Full() {
		err = ErrStackOverflow
		return
	}

	sp := cpu.Register[REG_SP] - 1
	err = cpu.Memory.Write(int(sp), value)
	if err != nil {
		return
	}
	cpu.Register[REG_SP] = sp

	return
}

// Pop reads the value at the stack pointer, then increments it.
func (cpu *Cpu) Pop() (value byte, err error) {
	value, ok := cpu.Peek()
	if !ok {
		err = ErrStackUnderflow
		return
	}

	cpu.Register[REG_SP]++
	return
}

// Peek returns the value on the top of the stack, if any.
func (cpu *Cpu) Peek() (value byte, ok bool) {
	if cpu.Empty() {
		return
	}

	return cpu.Memory[cpu.Register[REG_SP]], true
}

// Empty is true when nothing has been pushed since the stack pointer was
// last loaded.
func (cpu *Cpu) Empty() bool {
	return int(cpu.Register[REG_SP]) >= cpu.stackBase
}

// Full is true when the stack pointer has reached address 0.
func (cpu *Cpu) Full() bool {
	return cpu.Register[REG_SP] == 0
}

// Depth returns the number of bytes on the stack.
func (cpu *Cpu) Depth() int {
	if cpu.Empty() {
		return 0
	}

	return cpu.stackBase - int(cpu.Register[REG_SP])
}

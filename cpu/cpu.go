package cpu

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"maps"
)

// Output receives the values printed by PRN.
type Output interface {
	Send(value byte) error
}

// rewinder is implemented by outputs that can be reset to empty.
type rewinder interface {
	Rewind()
}

const (
	REGISTER_COUNT = 8 // Number of general-purpose registers.
	REG_SP         = 7 // Register index of the stack pointer.
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE":    fmt.Sprintf("%v", MEMORY_SIZE),
	"REGISTER_COUNT": fmt.Sprintf("%v", REGISTER_COUNT),
	"REG_SP":         fmt.Sprintf("%v", REG_SP),
	"STACK_TOP":      fmt.Sprintf("0x%x", STACK_TOP),
}

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Memory   Memory               // Code and stack.
	Register [REGISTER_COUNT]byte // Register bank. Register[REG_SP] is the stack pointer.
	Pc       int                  // Current program counter.
	Ir       Opcode               // Most recently fetched opcode.
	Flags    Flag                 // Result of the most recent comparison.
	Running  bool                 // Cleared on halt.

	Budget int // Maximum instructions since reset, or 0 for no limit.
	Ticks  int // Instructions executed since reset.

	Output Output // Receives PRN values. Nil discards them.
	Tracer Tracer // Observes each executed instruction. May be nil.

	stackBase int // Stack pointer value of an empty stack.
}

// NewCpu creates a new, empty, running CPU.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset(nil)

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc", "ir", "flags",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
		"stack",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Pc)
		case "ir":
			strval = cpu.Ir.String()
		case "flags":
			strval = cpu.Flags.String()
		case "r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7":
			strval = fmt.Sprintf("%02X", cpu.Register[reg[1]-'0'])
		case "stack":
			val, ok := cpu.Peek()
			if ok {
				strval = fmt.Sprintf("%02X (depth %d)", val, cpu.Depth())
			} else {
				strval = "--"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Reset the CPU state.
// - Clears memory, registers, and flags.
// - Points the stack pointer at STACK_TOP.
// - Rewinds the output, if it can be rewound.
// - Loads the boot image at address 0.
func (cpu *Cpu) Reset(boot iter.Seq[byte]) (err error) {
	clear(cpu.Memory[:])
	clear(cpu.Register[:])
	cpu.Register[REG_SP] = STACK_TOP
	cpu.stackBase = STACK_TOP
	cpu.Pc = 0
	cpu.Ir = 0
	cpu.Flags = FLAG_UNSET
	cpu.Ticks = 0
	cpu.Running = true

	if output, ok := cpu.Output.(rewinder); ok {
		output.Rewind()
	}

	if boot == nil {
		return
	}

	address := 0
	for value := range boot {
		err = cpu.Memory.Write(address, value)
		if err != nil {
			cpu.Running = false
			err = errors.Join(ErrProgramTooLarge, err)
			return
		}
		address++
	}

	return
}

// GetRegister returns the value of a register.
func (cpu *Cpu) GetRegister(reg byte) (value byte, err error) {
	if int(reg) >= len(cpu.Register) {
		err = ErrRegisterInvalid
		return
	}

	value = cpu.Register[reg]
	return
}

// SetRegister sets the value of a register.
func (cpu *Cpu) SetRegister(reg byte, value byte) (err error) {
	if int(reg) >= len(cpu.Register) {
		err = ErrRegisterInvalid
		return
	}

	cpu.Register[reg] = value
	if reg == REG_SP {
		cpu.stackBase = int(value)
	}

	return
}

// FetchCode fetches and decodes the instruction at the PC.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	code, err = Decode(&cpu.Memory, cpu.Pc)
	cpu.Ir = code.Opcode
	if err != nil && !errors.Is(err, ErrIllegalInstruction{}) {
		err = errors.Join(ErrOpcode{Pc: cpu.Pc, Code: code}, err)
	}

	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	if !cpu.Running {
		err = ErrHalted
		return
	}

	if cpu.Budget > 0 && cpu.Ticks >= cpu.Budget {
		cpu.Running = false
		err = ErrBudgetExceeded
		return
	}

	pc := cpu.Pc

	code, err := cpu.FetchCode()
	if err != nil {
		if errors.Is(err, ErrIllegalInstruction{}) {
			cpu.Running = false
		}
		return
	}

	err = cpu.Execute(code)
	if err != nil {
		return
	}

	cpu.Ticks++

	if cpu.Tracer != nil {
		cpu.Tracer.Trace(Snapshot{
			Pc:       pc,
			Next:     cpu.Pc,
			Ir:       code.Opcode,
			OperandA: code.A,
			OperandB: code.B,
			Register: cpu.Register,
			Flags:    cpu.Flags,
			Ticks:    cpu.Ticks,
		})
	}

	return
}

// Run ticks the CPU until it halts or fails. The CPU is halted on any error.
// Cancellation of ctx halts the CPU with ErrBudgetExceeded.
func (cpu *Cpu) Run(ctx context.Context) (err error) {
	defer func() {
		if err != nil {
			cpu.Running = false
		}
	}()

	for cpu.Running {
		select {
		case <-ctx.Done():
			err = errors.Join(ErrBudgetExceeded, ctx.Err())
			return
		default:
		}

		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single decoded instruction at the current PC.
// The PC is only updated if the instruction succeeds.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode{Pc: cpu.Pc, Code: code}, err)
		}
	}()

	next_pc := cpu.Pc + code.Len()

	// jump installs target as the next PC.
	jump := func(reg byte) {
		var target byte
		target, err = cpu.GetRegister(reg)
		if err == nil {
			next_pc = int(target)
		}
	}

	switch code.Opcode {
	case OP_LDI:
		err = cpu.SetRegister(code.A, code.B)
	case OP_PRN:
		var value byte
		value, err = cpu.GetRegister(code.A)
		if err != nil {
			return
		}
		if cpu.Output != nil {
			err = cpu.Output.Send(value)
		}
	case OP_HLT:
		cpu.Running = false
		next_pc = cpu.Pc
	case OP_MUL:
		err = cpu.Alu(ALU_OP_MUL, code.A, code.B)
	case OP_ADD:
		err = cpu.Alu(ALU_OP_ADD, code.A, code.B)
	case OP_CMP:
		err = cpu.Alu(ALU_OP_CMP, code.A, code.B)
	case OP_PUSH:
		var value byte
		value, err = cpu.GetRegister(code.A)
		if err != nil {
			return
		}
		err = cpu.Push(value)
	case OP_POP:
		_, err = cpu.GetRegister(code.A)
		if err != nil {
			return
		}
		var value byte
		value, err = cpu.Pop()
		if err != nil {
			return
		}
		err = cpu.SetRegister(code.A, value)
	case OP_CALL:
		var target byte
		target, err = cpu.GetRegister(code.A)
		if err != nil {
			return
		}
		if next_pc >= MEMORY_SIZE {
			err = ErrOutOfBounds(next_pc)
			return
		}
		err = cpu.Push(byte(next_pc))
		if err != nil {
			return
		}
		next_pc = int(target)
	case OP_RET:
		var value byte
		value, err = cpu.Pop()
		if err != nil {
			return
		}
		next_pc = int(value)
	case OP_JMP:
		jump(code.A)
	case OP_JEQ, OP_JNE:
		if cpu.Flags == FLAG_UNSET {
			err = ErrFlagsUnset
			return
		}
		_, err = cpu.GetRegister(code.A)
		if err != nil {
			return
		}
		equal := cpu.Flags == FLAG_EQ
		if equal == (code.Opcode == OP_JEQ) {
			jump(code.A)
		}
	default:
		cpu.Running = false
		err = ErrIllegalInstruction{Opcode: code.Opcode, Pc: cpu.Pc}
	}

	if err != nil {
		return
	}

	cpu.Pc = next_pc

	return
}

package cpu

// Snapshot is a copy of the CPU state after an executed instruction.
type Snapshot struct {
	Pc       int    // Address of the executed instruction.
	Next     int    // Address of the next instruction.
	Ir       Opcode // Executed opcode.
	OperandA byte
	OperandB byte
	Register [REGISTER_COUNT]byte
	Flags    Flag
	Ticks    int // Instructions executed since reset, including this one.
}

// Code returns the executed instruction.
func (snap Snapshot) Code() Code {
	return Code{Opcode: snap.Ir, A: snap.OperandA, B: snap.OperandB}
}

// Tracer observes the CPU after each executed instruction.
type Tracer interface {
	Trace(snap Snapshot)
}

// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"maps"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/io"
)

var _emulator_defines = map[string]string{}

func init() {
	for _, op := range cpu.Opcodes() {
		_emulator_defines["OP_"+op.String()] = fmt.Sprintf("0x%02x", byte(op))
	}
}

// Emulator state. CPU + boot ROM + IO channels.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing.

	Rom       io.Rom       // Boot image, loaded at address 0 on reset.
	Tape      io.Tape      // Tape IO channel. Default PRN destination.
	Temporary io.Temporary // Temporary buffer IO channel. PRN destination if it has a capacity.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Temporary.Defines(),
	)
}

// Output returns the channel PRN values are sent to.
func (emu *Emulator) Output() io.Channel {
	if emu.Temporary.Capacity > 0 {
		return &emu.Temporary
	}

	return &emu.Tape
}

// Reset the emulator, and boot the program.
func (emu *Emulator) Reset() (err error) {
	emu.Rom.Data = emu.Program.Binary()
	emu.Cpu.Output = emu.Output()

	err = emu.Cpu.Reset(emu.Rom.Receive())
	if err != nil {
		return
	}

	if emu.Verbose {
		log.WithFields(log.Fields{
			"size":   len(emu.Rom.Data),
			"budget": emu.Cpu.Budget,
		}).Debug("ls8: reset")
	}

	return
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return emu.Cpu.Pc
}

// Code returns the current instruction code.
func (emu *Emulator) Code() cpu.Code {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Line != nil && dbg.Index == 0 && dbg.Data == nil {
		return dbg.Code
	}

	// Not from the listing, so decode it from memory.
	code, _ := cpu.Decode(&emu.Cpu.Memory, emu.Cpu.Pc)

	return code
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
// done is set once the CPU has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	done = !emu.Cpu.Running
	if done && emu.Verbose {
		log.WithFields(log.Fields{
			"pc":    fmt.Sprintf("%02X", emu.Cpu.Pc),
			"line":  lineno,
			"ticks": emu.Cpu.Ticks,
		}).Debug("ls8: halted")
	}

	return
}

// Run ticks the emulator until it halts or fails.
// Cancellation of ctx stops the emulator with cpu.ErrBudgetExceeded.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	defer func() {
		if err != nil {
			emu.Cpu.Running = false
		}
	}()

	for {
		select {
		case <-ctx.Done():
			err = &ErrRuntime{
				LineNo: emu.LineNo(),
				Err:    errors.Join(cpu.ErrBudgetExceeded, ctx.Err()),
			}
			return
		default:
		}

		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}
}

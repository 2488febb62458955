package emulator

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/ls8/cpu"
)

const (
	ansiDim   = "\033[2m"
	ansiReset = "\033[0m"
)

// TextTracer writes one TRACE line per executed instruction.
type TextTracer struct {
	Output io.Writer
	Color  bool // Dim the trace lines with ANSI escapes.
}

var _ cpu.Tracer = (*TextTracer)(nil)

// Trace implements cpu.Tracer.
func (tt *TextTracer) Trace(snap cpu.Snapshot) {
	var sb strings.Builder

	if tt.Color {
		sb.WriteString(ansiDim)
	}

	fmt.Fprintf(&sb, "TRACE: %02X | %02X %02X %02X |",
		snap.Pc, byte(snap.Ir), snap.OperandA, snap.OperandB)
	for _, reg := range snap.Register {
		fmt.Fprintf(&sb, " %02X", reg)
	}

	if tt.Color {
		sb.WriteString(ansiReset)
	}
	sb.WriteByte('\n')

	io.WriteString(tt.Output, sb.String())
}

// LogTracer reports each executed instruction as a debug log entry.
type LogTracer struct {
	Logger *log.Logger // Nil uses the standard logger.
}

var _ cpu.Tracer = (*LogTracer)(nil)

// Trace implements cpu.Tracer.
func (lt *LogTracer) Trace(snap cpu.Snapshot) {
	logger := lt.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	logger.WithFields(log.Fields{
		"pc":    fmt.Sprintf("%02X", snap.Pc),
		"next":  fmt.Sprintf("%02X", snap.Next),
		"regs":  fmt.Sprintf("% X", snap.Register[:]),
		"flags": snap.Flags.String(),
		"ticks": snap.Ticks,
	}).Debug(snap.Code().String())
}

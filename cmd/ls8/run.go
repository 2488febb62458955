package main

import (
	"context"
	"errors"
	"fmt"
	goio "io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/io"
)

// Process exit codes.
const (
	EXIT_OK      = 0 // Program halted.
	EXIT_USAGE   = 1 // Bad command line.
	EXIT_LOAD    = 2 // Program could not be read or assembled.
	EXIT_RUNTIME = 4 // Program failed while running.
)

// Input formats.
const (
	FORMAT_LS8 = "ls8" // One 8-digit binary number per line.
	FORMAT_ASM = "asm" // Assembly source.
	FORMAT_RAW = "raw" // Raw memory image.
)

// options are the command line settings for a single run.
type options struct {
	Format      string
	Budget      int
	Timeout     time.Duration
	Trace       bool
	Output      string
	Disassemble bool
	Defines     []string
	Verbose     bool
	Color       bool
}

// formatOf selects the input format, by name or by file extension.
func formatOf(filename string, format string) (string, error) {
	switch strings.ToLower(format) {
	case FORMAT_LS8, FORMAT_ASM, FORMAT_RAW:
		return strings.ToLower(format), nil
	case "":
	default:
		return "", ErrFormat(format)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".ls8":
		return FORMAT_LS8, nil
	case ".asm", ".s":
		return FORMAT_ASM, nil
	}

	return FORMAT_RAW, nil
}

// parseDefines splits NAME=VALUE pairs.
func parseDefines(defines []string) (pairs [][2]string, err error) {
	for _, define := range defines {
		name, value, ok := strings.Cut(define, "=")
		if !ok || len(name) == 0 {
			err = fmt.Errorf("%w: %v", ErrDefineSyntax, define)
			return
		}
		pairs = append(pairs, [2]string{name, value})
	}

	return
}

// loadProgram reads a program listing in the given format.
func loadProgram(emu *emulator.Emulator, input goio.Reader, format string, opts options) (prog *cpu.Program, err error) {
	switch format {
	case FORMAT_LS8:
		prog, err = cpu.ReadLs8(input)
	case FORMAT_ASM:
		var pairs [][2]string
		pairs, err = parseDefines(opts.Defines)
		if err != nil {
			return
		}
		asm := &cpu.Assembler{Verbose: opts.Verbose}
		for name, value := range emu.Defines() {
			asm.Predefine(name, value)
		}
		for _, pair := range pairs {
			asm.Predefine(pair[0], pair[1])
		}
		prog, err = asm.Parse(input)
	case FORMAT_RAW:
		tape := &io.Tape{Input: input}
		data := slices.Collect(tape.Receive())
		if len(data) > cpu.MEMORY_SIZE {
			err = cpu.ErrProgramTooLarge
			return
		}
		prog = &cpu.Program{}
		if len(data) > 0 {
			prog.Lines = []cpu.Line{{Data: data}}
		}
	default:
		err = ErrFormat(format)
	}

	return
}

// disassemble writes the program image as assembly text.
func disassemble(out goio.Writer, prog *cpu.Program) {
	for address, code := range cpu.Disassemble(prog.Binary()) {
		fmt.Fprintf(out, "%02X: %v\n", address, code)
	}
}

// execute loads and runs a single program, returning the process exit code.
func execute(opts options, filename string, stdin goio.Reader, stdout, stderr goio.Writer) (code int) {
	format, err := formatOf(filename, opts.Format)
	if err != nil {
		fmt.Fprintf(stderr, "ls8: %v\n", err)
		return EXIT_USAGE
	}

	input := stdin
	if filename != "-" {
		inf, err := os.Open(filename)
		if err != nil {
			fmt.Fprintf(stderr, "ls8: %v\n", err)
			return EXIT_LOAD
		}
		defer inf.Close()
		input = inf
	}

	emu := emulator.NewEmulator()
	emu.Verbose = opts.Verbose

	prog, err := loadProgram(emu, input, format, opts)
	if err != nil {
		if errors.Is(err, ErrDefineSyntax) {
			fmt.Fprintf(stderr, "ls8: %v\n", err)
			return EXIT_USAGE
		}
		fmt.Fprintf(stderr, "%v: %v\n", filename, err)
		return EXIT_LOAD
	}

	log.WithFields(log.Fields{
		"file":   filename,
		"format": format,
		"size":   len(prog.Binary()),
	}).Debug("ls8: loaded")

	if opts.Disassemble {
		disassemble(stdout, prog)
		return EXIT_OK
	}

	emu.Program = prog
	emu.Cpu.Budget = opts.Budget

	emu.Tape.Output = stdout
	if opts.Output != "-" && opts.Output != "" {
		ouf, err := os.Create(opts.Output)
		if err != nil {
			fmt.Fprintf(stderr, "ls8: %v\n", err)
			return EXIT_LOAD
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	switch {
	case opts.Trace:
		emu.Cpu.Tracer = &emulator.TextTracer{Output: stderr, Color: opts.Color}
	case opts.Verbose:
		emu.Cpu.Tracer = &emulator.LogTracer{}
	}

	err = emu.Reset()
	if err != nil {
		fmt.Fprintf(stderr, "%v: %v\n", filename, err)
		return EXIT_LOAD
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	err = emu.Run(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "%v: %v\n", filename, err)
		if opts.Verbose {
			fmt.Fprint(stderr, emu.Cpu.String())
		}
		return EXIT_RUNTIME
	}

	log.WithField("ticks", emu.Ticks()).Debug("ls8: done")

	return EXIT_OK
}

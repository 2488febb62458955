package cpu

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Line represents a line of assembled code with its source location and generated bytes.
type Line struct {
	LineNo    int
	Address   int
	Words     []string
	Code      Code   // Instruction, if Data is nil.
	Data      []byte // Raw data bytes.
	LinkLabel string // Label to link into the LDI immediate.
}

// Bytes returns the encoded bytes of the line.
func (line *Line) Bytes() []byte {
	if line.Data != nil {
		return line.Data
	}

	return line.Code.Bytes()
}

// Len returns the number of bytes the line occupies.
func (line *Line) Len() int {
	if line.Data != nil {
		return len(line.Data)
	}

	return line.Code.Len()
}

// Program is an assembled listing.
type Program struct {
	Lines []Line
}

type Debug struct {
	*Line
	Index int
}

// Debug returns the line containing address, and the offset into it.
func (prog *Program) Debug(address int) (dbg Debug) {
	for n, line := range prog.Lines {
		if address >= line.Address && address < line.Address+line.Len() {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: address - line.Address,
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program, starting at address 0.
func (prog *Program) Binary() (bins []byte) {
	for _, line := range prog.Lines {
		end := line.Address + line.Len()
		if end > len(bins) {
			bins = append(bins, make([]byte, end-len(bins))...)
		}
		copy(bins[line.Address:end], line.Bytes())
	}

	return
}

// Codes iterates over the instructions in the program.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(address int, code Code) bool) {
		for _, line := range prog.Lines {
			if line.Data != nil {
				continue
			}
			if !yield(line.Address, line.Code) {
				return
			}
		}
	}
}

// ReadLs8 reads a program in the .ls8 format: one byte per line, written
// as eight binary digits. Text after '#' is a comment, and blank lines are
// ignored.
func ReadLs8(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}
	address := 0

	for scanner.Scan() {
		lineno++
		line = scanner.Text()

		text, _, _ := strings.Cut(line, "#")
		words := strings.Fields(text)
		if len(words) == 0 {
			continue
		}
		if len(words) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}

		word := words[0]
		if len(word) != 8 {
			err = ErrParseBinary
			return
		}

		var value uint64
		value, err = strconv.ParseUint(word, 2, 8)
		if err != nil {
			err = ErrParseBinary
			return
		}

		if address >= MEMORY_SIZE {
			err = ErrProgramTooLarge
			return
		}

		prog.Lines = append(prog.Lines, Line{
			LineNo:  lineno,
			Address: address,
			Words:   words,
			Data:    []byte{byte(value)},
		})
		address++
	}

	err = scanner.Err()

	return
}

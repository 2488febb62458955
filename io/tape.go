package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

// Tape provides sequential I/O operations over byte streams.
// Input is read as raw bytes; output is written as one decimal value per line.
type Tape struct {
	Input  io.Reader
	Output io.Writer
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Receive returns an iterator that yields raw bytes from the input stream
// until it is exhausted.
func (tc *Tape) Receive() iter.Seq[byte] {
	return func(yield func(value byte) bool) {
		if tc.Input == nil {
			return
		}
		in := bufio.NewReader(tc.Input)
		for {
			value, err := in.ReadByte()
			if err != nil {
				return
			}
			if !yield(value) {
				return
			}
		}
	}
}

// Send writes the decimal text of value, followed by a newline.
func (tc *Tape) Send(value byte) (err error) {
	if tc.Output == nil {
		err = ErrChannelNoOutput
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	return
}

// Package io provides I/O channel implementations for the LS-8 emulator.
// It includes byte-level channels for bounded in-memory capture (Temporary),
// formatted stream I/O (Tape), and program images (Rom).
package io

import (
	"iter"
)

// Channel defines the interface for all I/O channels in the LS-8 system.
// Channels carry bytes, and support sequential reading and writing.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields bytes from the channel.
	Receive() iter.Seq[byte]
	// Send writes a single byte to the channel.
	Send(value byte) error
}

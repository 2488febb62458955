package io

import (
	"fmt"
	"iter"
	"maps"
)

// Temporary implements a circular buffer for temporary byte storage.
// It operates as a FIFO queue with a fixed capacity and separate read/write positions.
type Temporary struct {
	Capacity int // Capacity in bytes.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []byte
}

var _ Channel = (*Temporary)(nil)

// Defines returns an iter of defines for the channel.
func (temp *Temporary) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"TEMP_CAPACITY": fmt.Sprintf("%v", temp.Capacity),
	})
}

// Rewind resets the temporary storage to empty, resetting indices and
// reinitializing the data buffer.
func (temp *Temporary) Rewind() {
	temp.ReadIndex = 0
	temp.WriteIndex = 0
	temp.Size = 0
	temp.Data = make([]byte, temp.Capacity)
}

// Receive returns an iterator that yields bytes from the buffer until empty.
// The buffer wraps around at the capacity boundary.
func (temp *Temporary) Receive() iter.Seq[byte] {
	return func(yield func(value byte) bool) {
		for temp.Size > 0 {
			value := temp.Data[temp.ReadIndex]
			temp.ReadIndex++
			if temp.ReadIndex == temp.Capacity {
				temp.ReadIndex = 0
			}
			temp.Size--
			if !yield(value) {
				return
			}
		}
	}
}

// Send writes a byte to the buffer at the current write position.
// Returns ErrChannelFull if the buffer has reached capacity.
func (temp *Temporary) Send(value byte) (err error) {
	if temp.Size >= temp.Capacity {
		err = ErrChannelFull
		return
	}

	if len(temp.Data) != temp.Capacity {
		temp.Data = make([]byte, temp.Capacity)
	}

	temp.Data[temp.WriteIndex] = value

	temp.WriteIndex++
	if temp.WriteIndex == temp.Capacity {
		temp.WriteIndex = 0
	}
	temp.Size++

	return
}

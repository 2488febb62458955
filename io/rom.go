package io

import (
	"iter"
	"slices"
)

// Rom is a read-only program image.
type Rom struct {
	Data []byte
}

var _ Channel = (*Rom)(nil)

// Rewind has nothing to reset; every Receive starts at the first byte.
func (rc *Rom) Rewind() {
}

// Receive yields the image bytes in address order.
func (rc *Rom) Receive() iter.Seq[byte] {
	return slices.Values(rc.Data)
}

// Send always fails.
func (rc *Rom) Send(value byte) error {
	return ErrChannelReadOnly
}

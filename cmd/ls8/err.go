package main

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	ErrDefineSyntax = errors.New(f("define must be NAME=VALUE"))
)

// ErrFormat is an unknown input format name.
type ErrFormat string

func (err ErrFormat) Error() string {
	return f("'%v' is not a known format (ls8, asm, raw)", string(err))
}

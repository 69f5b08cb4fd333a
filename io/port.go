package io

import (
	"io"
	"strings"
)

// Port names understood by NewPort.
const (
	PORT_NONE   = "none"
	PORT_STDIN  = "stdin"
	PORT_STDOUT = "stdout"
	PORT_STACK  = "stack"
	PORT_TEMP   = "temp"
)

// NewPort creates a port by name.
// The console ports read from input and write to output; numeric selects
// the decimal display mode of the output port.
func NewPort(name string, numeric bool, input io.Reader, output io.Writer) (port Port, err error) {
	switch strings.ToLower(name) {
	case PORT_NONE:
		port = &None{}
	case PORT_STDIN:
		port = &Tape{Input: input}
	case PORT_STDOUT:
		port = &Tape{Output: output, Numeric: numeric}
	case PORT_STACK:
		port = &Stack{}
	case PORT_TEMP:
		port = &Temporary{}
	default:
		err = ErrPortUnknown(name)
		return
	}

	port.Rewind()

	return
}

// Package io provides the port implementations for the RS-100 node.
// A node exchanges values with the outside world through two ports,
// conventionally "up" (inbound) and "down" (outbound). This package
// includes a discard port (None), a console port (Tape), a read-only
// replay port (Rom), and bounded LIFO (Stack) and FIFO (Temporary) buffers.
package io

import (
	"github.com/ezrec/rs100/num"
)

// Port defines the interface for all ports attached to a node.
// Reads and writes may block; an error aborts the running program.
type Port interface {
	// Rewind resets the port to its initial state.
	Rewind()
	// Read returns the next value from the port.
	Read() (value num.Num, err error)
	// Write sends a value to the port.
	Write(value num.Num) error
}

package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/ezrec/rs100/num"
)

// Tape provides line-oriented console I/O.
// It wraps an io.Reader for input and io.Writer for output.
//
// Each read consumes one line of input, and yields the first character of
// that line as the value. Each write emits either the raw (high, low) byte
// pair of the value, or when Numeric is set, the decimal text of the value
// followed by a newline.
type Tape struct {
	Input   io.Reader
	Output  io.Writer
	Numeric bool

	reader *bufio.Reader
	source io.Reader
}

var _ Port = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Read returns the first byte of the next input line.
// A tape with no Input reads zeros.
func (tc *Tape) Read() (value num.Num, err error) {
	if tc.Input == nil {
		return
	}

	if tc.reader == nil || tc.source != tc.Input {
		tc.reader = bufio.NewReader(tc.Input)
		tc.source = tc.Input
	}

	line, err := tc.reader.ReadString('\n')
	if len(line) == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			err = ErrEndOfInput
		}
		return
	}

	value = num.FromBytes(0, line[0])
	err = nil

	return
}

// Write sends the value to the output stream.
// A tape with no Output discards writes.
func (tc *Tape) Write(value num.Num) (err error) {
	if tc.Output == nil {
		return
	}

	if tc.Numeric {
		_, err = fmt.Fprintf(tc.Output, "%v\n", value)
		return
	}

	hi, lo := value.Bytes()
	_, err = tc.Output.Write([]byte{hi, lo})

	return
}

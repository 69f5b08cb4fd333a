// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	goio "io"

	"github.com/peterh/liner"

	"github.com/ezrec/rs100/io"
	"github.com/ezrec/rs100/num"
)

const (
	PORT_PROMPT = "prompt" // Interactive line editor port.
)

// prompt is an interactive console port.
//
// Reads are line edited, with history, and yield the first character of
// the line. Writes go to the embedded tape.
type prompt struct {
	io.Tape
	State *liner.State
	Label string
}

var _ io.Port = (*prompt)(nil)

// Read prompts for a line of input.
func (pr *prompt) Read() (value num.Num, err error) {
	line, err := pr.State.Prompt(pr.Label)
	if errors.Is(err, goio.EOF) || errors.Is(err, liner.ErrPromptAborted) {
		err = io.ErrEndOfInput
		return
	}
	if err != nil {
		return
	}

	pr.State.AppendHistory(line)

	if len(line) == 0 {
		value = num.From('\n')
		return
	}

	value = num.FromBytes(0, line[0])

	return
}

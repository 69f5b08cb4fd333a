package io

import (
	"bufio"
	"io"
	"strconv"

	"github.com/ezrec/rs100/num"
)

// Rom is a read-only port that replays a fixed list of values.
type Rom struct {
	Data []num.Num

	index int
}

var _ Port = (*Rom)(nil)

// ParseRom reads whitespace separated decimal (or 0x hex) values.
func ParseRom(input io.Reader) (rom *Rom, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Split(bufio.ScanWords)

	rom = &Rom{}
	for scanner.Scan() {
		word := scanner.Text()
		value, perr := strconv.ParseInt(word, 0, 32)
		if perr != nil {
			err = ErrRomValue(word)
			return
		}
		rom.Data = append(rom.Data, num.From(int(value)))
	}

	err = scanner.Err()

	return
}

// Rewind restarts the replay from the first value.
func (rc *Rom) Rewind() {
	rc.index = 0
}

// Read returns the next value, or ErrEndOfInput once all have been read.
func (rc *Rom) Read() (value num.Num, err error) {
	if rc.index >= len(rc.Data) {
		err = ErrEndOfInput
		return
	}

	value = rc.Data[rc.index]
	rc.index++

	return
}

// Write is not possible on a rom.
func (rc *Rom) Write(value num.Num) error {
	return ErrChannelFull
}

package io

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rs100/num"
)

func TestRom(t *testing.T) {
	assert := assert.New(t)

	rom, err := ParseRom(strings.NewReader("1 -2\n0x10\t5000\n"))
	assert.NoError(err)
	assert.Equal([]num.Num{num.From(1), num.From(-2), num.From(16), num.From(999)}, rom.Data)

	for _, expected := range []int{1, -2, 16, 999} {
		value, err := rom.Read()
		assert.NoError(err)
		assert.Equal(num.From(expected), value)
	}

	_, err = rom.Read()
	assert.ErrorIs(err, ErrEndOfInput)

	assert.ErrorIs(rom.Write(num.From(3)), ErrChannelFull)

	rom.Rewind()
	value, err := rom.Read()
	assert.NoError(err)
	assert.Equal(num.From(1), value)
}

func TestRomParseError(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseRom(strings.NewReader("1 two 3"))
	assert.ErrorIs(err, ErrRomValue("two"))
	assert.Equal("rom: 'two' is not a number", err.Error())

	rom, err := ParseRom(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(rom.Data))
}

package io

import (
	"errors"

	"github.com/ezrec/rs100/translate"
)

var f = translate.From

var (
	// Port errors
	ErrChannelFull = errors.New(f("channel full"))
	ErrUnderflow   = errors.New(f("underflow"))
	ErrEndOfInput  = errors.New(f("end of input"))
)

// ErrPortUnknown is returned when a port name is not registered.
type ErrPortUnknown string

func (err ErrPortUnknown) Error() string {
	return f("'%v' is not a valid port", string(err))
}

// ErrRomValue is returned when a rom image holds a non-numeric word.
type ErrRomValue string

func (err ErrRomValue) Error() string {
	return f("rom: '%v' is not a number", string(err))
}

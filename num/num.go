// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package num implements the saturating value type of the RS-100 node.
//
// Every value moved through the accumulator, the backup register, or a port
// is a Num. Construction and every arithmetic result are clamped to
// [NUM_MIN, NUM_MAX]; nothing wraps and nothing overflows.
package num

import (
	"strconv"
)

const (
	NUM_MAX = 999  // Largest representable value.
	NUM_MIN = -999 // Smallest representable value.
)

// Num is an immutable saturating integer.
// The zero value is 0.
type Num struct {
	value int16
}

// From clamps raw into [NUM_MIN, NUM_MAX].
func From(raw int) Num {
	switch {
	case raw > NUM_MAX:
		raw = NUM_MAX
	case raw < NUM_MIN:
		raw = NUM_MIN
	}

	return Num{value: int16(raw)}
}

// FromBytes decodes a (high, low) 16-bit two's-complement pair.
// The pair may encode values outside the range, so the result is re-clamped.
func FromBytes(hi, lo uint8) Num {
	return From(int(int16(uint16(hi)<<8 | uint16(lo))))
}

// Bytes returns the (high, low) pair of the value.
func (n Num) Bytes() (hi, lo uint8) {
	hi = uint8(uint16(n.value) >> 8)
	lo = uint8(uint16(n.value) & 0xff)
	return
}

// Int returns the value as an int.
func (n Num) Int() int {
	return int(n.value)
}

func (n Num) Add(o Num) Num {
	return From(int(n.value) + int(o.value))
}

func (n Num) Sub(o Num) Num {
	return From(int(n.value) - int(o.value))
}

func (n Num) Neg() Num {
	return From(-int(n.value))
}

// Compare returns -1, 0 or +1 as n is less than, equal to, or greater than o.
func (n Num) Compare(o Num) int {
	switch {
	case n.value < o.value:
		return -1
	case n.value > o.value:
		return 1
	}
	return 0
}

// Sign returns the Compare of n against zero.
func (n Num) Sign() int {
	return n.Compare(Num{})
}

// String returns the decimal text of the value.
func (n Num) String() string {
	return strconv.Itoa(int(n.value))
}

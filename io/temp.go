package io

import (
	"github.com/ezrec/rs100/num"
)

const (
	TEMP_DEFAULT_CAPACITY = 256 // Default queue depth.
)

// Temporary implements a circular buffer for temporary value storage.
// It operates as a FIFO queue with a fixed capacity and separate read/write positions.
type Temporary struct {
	Capacity int // Capacity in values; TEMP_DEFAULT_CAPACITY if zero.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []num.Num
}

var _ Port = (*Temporary)(nil)

// Rewind resets the temporary storage to empty, resetting indices and
// reinitializing the data buffer.
func (temp *Temporary) Rewind() {
	if temp.Capacity == 0 {
		temp.Capacity = TEMP_DEFAULT_CAPACITY
	}
	temp.ReadIndex = 0
	temp.WriteIndex = 0
	temp.Size = 0
	temp.Data = make([]num.Num, temp.Capacity)
}

// Read returns the oldest value in the buffer.
// Returns ErrUnderflow if the buffer is empty.
func (temp *Temporary) Read() (value num.Num, err error) {
	if temp.Size == 0 {
		err = ErrUnderflow
		return
	}

	value = temp.Data[temp.ReadIndex]
	temp.ReadIndex++
	if temp.ReadIndex == temp.Capacity {
		temp.ReadIndex = 0
	}
	temp.Size--

	return
}

// Write appends a value at the current write position.
// Returns ErrChannelFull if the buffer has reached capacity.
func (temp *Temporary) Write(value num.Num) (err error) {
	if temp.Data == nil {
		temp.Rewind()
	}

	if temp.Size >= temp.Capacity {
		err = ErrChannelFull
		return
	}

	temp.Data[temp.WriteIndex] = value

	temp.WriteIndex++
	if temp.WriteIndex == temp.Capacity {
		temp.WriteIndex = 0
	}
	temp.Size++

	return
}

package io

import (
	"github.com/ezrec/rs100/num"
)

const (
	STACK_DEFAULT_CAPACITY = 256 // Default stack depth.
)

// Stack is a bounded last-in-first-out buffer port.
type Stack struct {
	Capacity int // Maximum depth; STACK_DEFAULT_CAPACITY if zero.
	Data     []num.Num
}

var _ Port = (*Stack)(nil)

// Rewind empties the stack.
func (s *Stack) Rewind() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}

// Read pops the most recently written value.
// Returns ErrUnderflow if the stack is empty.
func (s *Stack) Read() (value num.Num, err error) {
	value, ok := s.Peek()
	if !ok {
		err = ErrUnderflow
		return
	}

	s.Data = s.Data[:len(s.Data)-1]
	return
}

// Write pushes a value.
// Returns ErrChannelFull if the stack is at capacity.
func (s *Stack) Write(value num.Num) (err error) {
	if s.Full() {
		err = ErrChannelFull
		return
	}

	s.Data = append(s.Data, value)
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	limit := s.Capacity
	if limit == 0 {
		limit = STACK_DEFAULT_CAPACITY
	}
	return len(s.Data) >= limit
}

func (s *Stack) Peek() (value num.Num, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

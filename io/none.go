package io

import (
	"github.com/ezrec/rs100/num"
)

// None is a port that reads zeros and discards writes.
type None struct{}

var _ Port = (*None)(nil)

func (none *None) Rewind() {}

func (none *None) Read() (value num.Num, err error) {
	return
}

func (none *None) Write(value num.Num) (err error) {
	return
}

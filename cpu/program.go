package cpu

import (
	"iter"
)

// Line represents a line of assembled code with its source location and generated instruction.
type Line struct {
	LineNo    int
	Pc        int
	Words     []string
	Code      Code
	LinkLabel string
}

// Program is an assembled listing.
type Program struct {
	Lines []Line
}

// Debug returns the listing entry for the instruction at pc, or nil.
func (prog *Program) Debug(pc int) (line *Line) {
	for n := range prog.Lines {
		if prog.Lines[n].Pc == pc {
			line = &prog.Lines[n]
			break
		}
	}

	return
}

// Binary returns the program as a concatenation of encoded instructions.
func (prog *Program) Binary() (bin []byte) {
	for _, code := range prog.Codes() {
		bin = append(bin, code[:]...)
	}

	return
}

// Codes iterates over the program counter and code of each instruction.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(pc int, code Code) bool) {
		for _, line := range prog.Lines {
			if !yield(line.Pc, line.Code) {
				return
			}
		}
	}
}

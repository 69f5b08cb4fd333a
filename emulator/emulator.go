// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/rs100/cpu"
	"github.com/ezrec/rs100/internal"
	"github.com/ezrec/rs100/io"
)

const (
	PROGRAM_LIMIT = cpu.JUMP_MASK + 1 // Largest program reachable by a jump.
)

var _emulator_defines = map[string]string{
	"PROGRAM_LIMIT": fmt.Sprintf("%v", PROGRAM_LIMIT),
}

// Emulator state. CPU + ports.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Listing  *cpu.Program // Listing of the running program, if assembled.
}

// NewEmulator creates a new emulator running binary, attached to the up and
// down ports.
func NewEmulator(binary []byte, up, down io.Port) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(binary, up, down),
		Listing: &cpu.Program{},
	}

	return
}

// NewEmulatorProgram creates a new emulator running an assembled program.
func NewEmulatorProgram(prog *cpu.Program, up, down io.Port) (emu *Emulator) {
	emu = NewEmulator(prog.Binary(), up, down)
	emu.Listing = prog

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the emulator state, rewinding both ports.
func (emu *Emulator) Reset() {
	for _, port := range []cpu.Port{emu.Cpu.Up, emu.Cpu.Down} {
		if port != nil {
			port.Rewind()
		}
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// LineNo returns the source line number for the executing instruction,
// or 0 if the program has no listing.
func (emu *Emulator) LineNo() int {
	line := emu.Listing.Debug(emu.Cpu.Pc)
	if line == nil {
		return 0
	}

	return line.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrIpEmpty) {
		err = nil
		done = true
		return
	}

	return
}

// Run ticks the emulator until the program halts or fails.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted after %v ticks", emu.Cpu.Ticks)
	}

	return
}

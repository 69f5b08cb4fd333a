// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/ezrec/rs100/cpu"
)

const (
	SOURCE_EXT = ".tis" // Extension of assembler source files.
)

// Load a program into the emulator, replacing the current one.
//
// Files ending in SOURCE_EXT are assembled, with the emulator defines
// predefined. Any other file is a raw binary image.
func (emu *Emulator) Load(fileName string) (err error) {
	var binary []byte
	listing := &cpu.Program{}

	if strings.EqualFold(filepath.Ext(fileName), SOURCE_EXT) {
		inf, err := os.Open(fileName)
		if err != nil {
			return errors.Wrap(err, "load")
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: emu.Verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}

		listing, err = asm.Parse(inf)
		if err != nil {
			return errors.Wrapf(err, "load %v", fileName)
		}
		binary = listing.Binary()
	} else {
		binary, err = os.ReadFile(fileName)
		if err != nil {
			return errors.Wrap(err, "load")
		}
	}

	if len(binary) > PROGRAM_LIMIT {
		return errors.Errorf("load %v: file too large", fileName)
	}

	emu.Listing = listing
	emu.Cpu.Program = binary

	return
}

// Save the loaded program binary to a file.
func (emu *Emulator) Save(fileName string) (err error) {
	err = os.WriteFile(fileName, emu.Cpu.Program, 0o644)
	if err != nil {
		return errors.Wrap(err, "save")
	}

	return
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/ezrec/rs100/emulator"
	"github.com/ezrec/rs100/io"
)

const (
	VERSION         = "1.4"
	PORT_ROM_PREFIX = "rom:" // Read-only port replaying values from a file.
)

func main() {
	var program string
	var numeric bool
	var version bool
	var upName string
	var downName string
	var save string
	var compat bool
	var verbose bool

	flag.StringVar(&program, "f", "", "Program to run (binary, or .tis source)")
	flag.BoolVar(&numeric, "n", false, "Numeric display mode")
	flag.BoolVar(&version, "version", false, "Show version and exit")
	flag.StringVar(&upName, "u", io.PORT_STDIN, "Up port (none, stdin, stdout, stack, temp, prompt, rom:FILE)")
	flag.StringVar(&downName, "d", io.PORT_STDOUT, "Down port (none, stdin, stdout, stack, temp, prompt, rom:FILE)")
	flag.StringVar(&save, "s", "", "Save program binary to file, do not execute")
	flag.BoolVar(&compat, "compat", false, "Read DOWN through the up port")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if version {
		fmt.Printf("RS-100 version %v\n", VERSION)
		return
	}

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(program) == 0 {
		log.Fatalf("%v: no program file (-f) given", os.Args[0])
	}

	emu := emulator.NewEmulator(nil, nil, nil)
	emu.Verbose = verbose
	emu.Cpu.CompatDownRead = compat

	err := emu.Load(program)
	if err != nil {
		log.Fatal(err)
	}

	if len(save) != 0 {
		err = emu.Save(save)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	// Only one line editor may own the terminal.
	var state *liner.State
	newPort := func(name string, label string) (port io.Port, err error) {
		if fileName, ok := strings.CutPrefix(name, PORT_ROM_PREFIX); ok {
			inf, err := os.Open(fileName)
			if err != nil {
				return nil, err
			}
			defer inf.Close()
			return io.ParseRom(inf)
		}
		if strings.ToLower(name) != PORT_PROMPT {
			return io.NewPort(name, numeric, os.Stdin, os.Stdout)
		}
		if state == nil {
			state = liner.NewLiner()
			state.SetCtrlCAborts(true)
		}
		port = &prompt{
			Tape:  io.Tape{Output: os.Stdout, Numeric: numeric},
			State: state,
			Label: label,
		}
		return
	}

	emu.Cpu.Up, err = newPort(upName, "up> ")
	if err != nil {
		log.Fatalf("-u: %v", err)
	}

	emu.Cpu.Down, err = newPort(downName, "down> ")
	if err != nil {
		if state != nil {
			state.Close()
		}
		log.Fatalf("-d: %v", err)
	}

	emu.Reset()
	err = emu.Run()
	if state != nil {
		state.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", program, err)
		os.Exit(1)
	}
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/rs100/io"
	"github.com/ezrec/rs100/num"
)

// Port is an I/O port interface.
type Port io.Port

var _cpu_defines = map[string]string{
	"INSTRUCTION_SIZE": fmt.Sprintf("%v", INSTRUCTION_SIZE),
	"NUM_MAX":          fmt.Sprintf("%v", num.NUM_MAX),
	"NUM_MIN":          fmt.Sprintf("%v", num.NUM_MIN),
}

// Cpu is the simulation context for a single RS-100 node.
type Cpu struct {
	Verbose        bool // Set to enable verbose logging.
	CompatDownRead bool // Set to route reads of the down port to the up port.

	Program []byte // Program text, immutable for the run.

	Pc  int     // Current program counter, as a byte offset into Program.
	Acc num.Num // Accumulator.
	Bak num.Num // Backup register.

	Up   Port // Inbound port.
	Down Port // Outbound port.

	Ticks int // Instructions executed since reset.

	last Dest // Last engaged port; only ever DEST_UP or DEST_DOWN.
}

// NewCpu creates a new CPU running program, attached to the up and
// down ports. A nil port behaves as io.None.
func NewCpu(program []byte, up, down Port) (cpu *Cpu) {
	cpu = &Cpu{
		Program: program,
		Up:      up,
		Down:    down,
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the accumulator and backup registers.
// - Sets the program counter to the start of the program.
// - Sets the last engaged port to the down port.
// - Zeros the tick counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Pc = 0
	cpu.Acc = num.Num{}
	cpu.Bak = num.Num{}
	cpu.last = DEST_DOWN
	cpu.Ticks = 0
}

// LastPort returns the port that DEST_LAST currently resolves to.
func (cpu *Cpu) LastPort() Dest {
	return cpu.last
}

// Halted returns true once the program counter has left the program.
func (cpu *Cpu) Halted() bool {
	return cpu.Pc >= len(cpu.Program)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"pc", "acc", "bak", "last"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%06x", cpu.Pc)
		case "acc":
			strval = cpu.Acc.String()
		case "bak":
			strval = cpu.Bak.String()
		case "last":
			strval = cpu.last.String()
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// port returns the port attached in the direction of dst.
func (cpu *Cpu) port(dst Dest) (port Port) {
	switch dst {
	case DEST_UP:
		port = cpu.Up
	case DEST_DOWN:
		port = cpu.Down
	}

	if port == nil {
		port = &io.None{}
	}

	return
}

// getValue reads the value selected by src.
// Only a successful port read updates the last engaged port.
func (cpu *Cpu) getValue(src Dest) (value num.Num, err error) {
	switch src {
	case DEST_LAST:
		return cpu.getValue(cpu.last)
	case DEST_ACC:
		value = cpu.Acc
	case DEST_UP, DEST_DOWN:
		port := cpu.port(src)
		if src == DEST_DOWN && cpu.CompatDownRead {
			port = cpu.port(DEST_UP)
		}
		value, err = port.Read()
		if err != nil {
			err = &ErrPort{Port: src, Err: err}
			return
		}
		cpu.last = src
	default:
		panic("unknown dest")
	}

	return
}

// setValue writes value to the location selected by dst.
// Only a successful port write updates the last engaged port.
func (cpu *Cpu) setValue(dst Dest, value num.Num) (err error) {
	switch dst {
	case DEST_LAST:
		return cpu.setValue(cpu.last, value)
	case DEST_ACC:
		cpu.Acc = value
	case DEST_UP, DEST_DOWN:
		err = cpu.port(dst).Write(value)
		if err != nil {
			err = &ErrPort{Port: dst, Write: true, Err: err}
			return
		}
		cpu.last = dst
	default:
		panic("unknown dest")
	}

	return
}

// operand resolves operand A of an instruction.
func (cpu *Cpu) operand(ins Instruction) (value num.Num, err error) {
	if ins.Literal {
		value = ins.Immediate
		return
	}

	return cpu.getValue(ins.Source)
}

// FetchCode fetches the instruction at the program counter.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if cpu.Halted() {
		err = ErrIpEmpty
		return
	}

	if cpu.Pc < 0 || len(cpu.Program)-cpu.Pc < INSTRUCTION_SIZE {
		err = errors.Join(ErrOpcodeDecode, ErrTruncated)
		return
	}

	copy(code[:], cpu.Program[cpu.Pc:cpu.Pc+INSTRUCTION_SIZE])

	return
}

// Tick executes a single CPU instruction cycle.
// Returns ErrIpEmpty once the program has halted.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.Execute(code)

	return
}

// Run executes instructions until the program halts, or an error occurs.
func (cpu *Cpu) Run() (err error) {
	for {
		err = cpu.Tick()
		if errors.Is(err, ErrIpEmpty) {
			return nil
		}
		if err != nil {
			return
		}
	}
}

// jumpTaken evaluates the condition of a jump opcode against the accumulator.
func (cpu *Cpu) jumpTaken(op Opcode) (taken bool) {
	sign := cpu.Acc.Sign()

	switch op {
	case OP_JMP:
		taken = true
	case OP_JEZ:
		taken = sign == 0
	case OP_JNZ:
		taken = sign != 0
	case OP_JGZ:
		taken = sign > 0
	case OP_JLZ:
		taken = sign < 0
	}

	return
}

// Execute executes a single encoded instruction.
// On error the program counter is left at the failing instruction; register
// updates made before a failing port access are kept.
func (cpu *Cpu) Execute(code Code) (err error) {
	if cpu.Verbose {
		log.Printf("%06x: %v", cpu.Pc, code)
	}

	ins, err := code.Decode()
	if err != nil {
		return
	}

	next_pc := cpu.Pc + INSTRUCTION_SIZE

	var value num.Num

	switch ins.Op {
	case OP_NOP:
		// pass
	case OP_MOV:
		value, err = cpu.operand(ins)
		if err != nil {
			return
		}
		err = cpu.setValue(ins.Target, value)
		if err != nil {
			return
		}
	case OP_SWP:
		cpu.Acc, cpu.Bak = cpu.Bak, cpu.Acc
	case OP_SAV:
		cpu.Bak = cpu.Acc
	case OP_ADD:
		value, err = cpu.operand(ins)
		if err != nil {
			return
		}
		cpu.Acc = cpu.Acc.Add(value)
	case OP_SUB:
		value, err = cpu.operand(ins)
		if err != nil {
			return
		}
		cpu.Acc = cpu.Acc.Sub(value)
	case OP_NEG:
		cpu.Acc = cpu.Acc.Neg()
	case OP_JMP, OP_JEZ, OP_JNZ, OP_JGZ, OP_JLZ:
		if cpu.jumpTaken(ins.Op) {
			next_pc = int(ins.Jump)
		}
	case OP_JRO:
		// Negative offsets clamp to the start of the program.
		next_pc = max(cpu.Acc.Int(), 0)
	default:
		err = ErrOpcode(code[0])
		return
	}

	cpu.Pc = next_pc
	cpu.Ticks++

	if cpu.Verbose {
		log.Printf("cpu: acc:%v bak:%v last:%v", cpu.Acc, cpu.Bak, cpu.last)
	}

	return
}

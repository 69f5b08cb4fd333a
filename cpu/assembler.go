// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/rs100/num"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass assembler for the RS-100 node.
//
// Each non-empty line holds at most one instruction, optionally preceded
// by one or more 'label:' prefixes. Comments start with '#'.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Lines   []Line // List of generated instructions.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of jump labels to program offsets.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// dstMap is a map of selector names.
var dstMap = map[string]Dest{
	"last": DEST_LAST,
	"acc":  DEST_ACC,
	"up":   DEST_UP,
	"down": DEST_DOWN,
}

// opMap is a map of opcode mnemonics.
var opMap = func() map[string]Opcode {
	ops := make(map[string]Opcode, OPCODE_COUNT)
	for op := range Opcode(OPCODE_COUNT) {
		ops[op.String()] = op
	}
	return ops
}()

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
	reSeparator  = regexp.MustCompile(`[\s,]+`)
)

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value64 int64
		value64, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be selectors
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(value64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine splits a single line into labels and instruction words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	line = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			switch str[1:] {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "t":
				str = "\t"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	line = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(reSeparator.Split(line, -1), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if strings.ToLower(words[0]) == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	// LABEL: or LABEL:OPCODE
	for len(words) > 0 {
		index := strings.IndexByte(words[0], ':')
		if index <= 0 {
			break
		}
		label := words[0][:index]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = asm.currentPc()

		rest := words[0][index+1:]
		if len(rest) == 0 {
			words = words[1:]
		} else {
			words[0] = rest
		}
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// currentPc gets the program offset of the next instruction.
func (asm *Assembler) currentPc() int {
	return len(asm.Lines) * INSTRUCTION_SIZE
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = make(map[string]int, 16)
	asm.Lines = asm.Lines[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(strings.SplitN(text, "#", 2)[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of jump labels.
	for n := range asm.Lines {
		op := &asm.Lines[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		pc, ok := asm.Label[op.LinkLabel]
		if !ok {
			lineno = op.LineNo
			line = strings.Join(op.Words, " ")
			err = ErrLabelMissing(op.LinkLabel)
			return
		}
		op.Code = MakeCodeJump(Opcode(op.Code[0]&OPCODE_MASK), uint32(pc))
	}

	prog = &Program{
		Lines: slices.Clone(asm.Lines),
	}

	return
}

// getSource encodes operand A as either a selector or a literal.
func (asm *Assembler) getSource(op Opcode, word string, dst Dest) (code Code, err error) {
	src, ok := dstMap[strings.ToLower(word)]
	if ok {
		code = MakeCode(op, src, dst)
		return
	}

	value, err := asm.valueOf(word)
	if err != nil {
		return
	}

	code = MakeCodeLiteral(op, num.From(int(max(min(value, num.NUM_MAX), num.NUM_MIN))), dst)
	return
}

// getTarget decodes a destination selector.
func (asm *Assembler) getTarget(word string) (dst Dest, err error) {
	dst, ok := dstMap[strings.ToLower(word)]
	if !ok {
		err = ErrTargetInvalid
		return
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	op, ok := opMap[strings.ToLower(words[0])]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	line := Line{LineNo: lineno, Pc: asm.currentPc(), Words: words}
	args := words[1:]

	switch op {
	case OP_NOP, OP_SWP, OP_SAV, OP_NEG, OP_JRO:
		if len(args) > 0 {
			err = ErrOpcodeExtraArgs
			return
		}
		line.Code = MakeCode(op, DEST_LAST, DEST_LAST)
	case OP_MOV:
		if len(args) < 1 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(args) < 2 {
			err = ErrTargetMissing
			return
		}
		if len(args) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}
		var dst Dest
		dst, err = asm.getTarget(args[1])
		if err != nil {
			return
		}
		line.Code, err = asm.getSource(op, args[0], dst)
		if err != nil {
			return
		}
	case OP_ADD, OP_SUB:
		if len(args) < 1 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(args) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		line.Code, err = asm.getSource(op, args[0], DEST_ACC)
		if err != nil {
			return
		}
	case OP_JMP, OP_JEZ, OP_JNZ, OP_JGZ, OP_JLZ:
		if len(args) < 1 {
			err = ErrTargetMissing
			return
		}
		if len(args) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		target, _err := asm.valueOf(args[0])
		if _err != nil {
			// Resolved at link time.
			line.LinkLabel = args[0]
			target = 0
		}
		if target < 0 || target > JUMP_MASK {
			err = ErrTargetInvalid
			return
		}
		line.Code = MakeCodeJump(op, uint32(target))
	default:
		err = ErrInstructionInvalid
		return
	}

	asm.Lines = append(asm.Lines, line)

	return
}

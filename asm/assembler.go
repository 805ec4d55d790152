// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"log"

	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/iridium/isa"
)

// MAX_WORDS is the size of the 16-bit address space.
const MAX_WORDS = 1 << 16

// Assembler translates Iridium assembly source into a word image.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]int // Predefined symbols.
}

// Predefine binds a symbol to a fixed address before assembly.
func (asm *Assembler) Predefine(name string, value int) {
	if asm.predefine == nil {
		asm.predefine = map[string]int{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// dump formats intermediate state for verbose logs.
func dump(value any) string {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	return printer.Sprint(value)
}

// Assemble assembles comment-stripped source lines into a Program.
// Blank lines are skipped, but still count towards line numbers.
func (asm *Assembler) Assemble(text []string) (prog *Program, err error) {
	for name, value := range asm.predefine {
		err = checkPredefine(name, value)
		if err != nil {
			return
		}
	}

	lines := make([]Line, 0, len(text))
	for n, source := range text {
		var line Line
		line, err = Classify(source, n+1)
		if err != nil {
			return
		}
		if asm.Verbose && line.Form != FORM_NONE {
			log.Printf("%v: %v [%v]", line.LineNo, line.String(), line.Form)
		}
		lines = append(lines, line)
	}

	expanded, err := Expand(lines)
	if err != nil {
		return
	}

	if len(expanded) > MAX_WORDS {
		last := expanded[len(expanded)-1]
		err = last.wrap(ErrProgramSize)
		return
	}

	if asm.Verbose {
		log.Printf("expanded %d lines to %d words", len(lines), len(expanded))
	}

	labels, err := BuildLabels(expanded, asm.predefine)
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("labels: %v", dump(labels))
	}

	resolved, err := Resolve(expanded, labels)
	if err != nil {
		return
	}

	prog = &Program{
		Label:   labels,
		Opcodes: make([]Opcode, 0, len(resolved)),
	}

	for ip, line := range resolved {
		var code isa.Code
		code, err = Encode(line)
		if err != nil {
			prog = nil
			return
		}

		if asm.Verbose {
			log.Printf("%04x: %v %v", ip, code, line.String())
		}

		prog.Opcodes = append(prog.Opcodes, Opcode{
			LineNo: line.LineNo,
			Ip:     ip,
			Line:   expanded[ip].String(),
			Code:   code,
		})
	}

	return
}

package asm

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/iridium/isa"
)

// Opcode is one assembled word with its source location.
type Opcode struct {
	LineNo int      // Source line number.
	Ip     int      // Word address.
	Line   string   // Canonical text of the expanded line.
	Code   isa.Code // Encoded word.
}

// Program is the result of an assembly.
type Program struct {
	Label   map[string]int // Resolved label addresses.
	Opcodes []Opcode       // Words in address order.
}

type Debug struct {
	*Opcode
	Labels []string // Labels bound to the address.
}

// Debug looks up the source of the word at ip.
func (prog *Program) Debug(ip uint16) (dbg Debug) {
	if int(ip) >= len(prog.Opcodes) {
		return
	}

	dbg.Opcode = &prog.Opcodes[ip]
	for label, addr := range prog.Label {
		if addr == int(ip) {
			dbg.Labels = append(dbg.Labels, label)
		}
	}
	slices.Sort(dbg.Labels)

	return
}

// Binary returns the image words in address order.
func (prog *Program) Binary() (bins []uint16) {
	bins = make([]uint16, 0, len(prog.Opcodes))
	for _, code := range prog.Codes() {
		bins = append(bins, uint16(code))
	}

	return
}

// Codes iterates over the address and code of every word.
func (prog *Program) Codes() iter.Seq2[uint16, isa.Code] {
	return func(yield func(ip uint16, code isa.Code) bool) {
		for _, op := range prog.Opcodes {
			if !yield(uint16(op.Ip), op.Code) {
				return
			}
		}
	}
}

// Listing writes one line per word: address, word, source line and text.
func (prog *Program) Listing(w io.Writer) (err error) {
	byAddr := make(map[int][]string, len(prog.Label))
	for _, label := range slices.Sorted(maps.Keys(prog.Label)) {
		addr := prog.Label[label]
		byAddr[addr] = append(byAddr[addr], label)
	}

	for _, op := range prog.Opcodes {
		for _, label := range byAddr[op.Ip] {
			_, err = fmt.Fprintf(w, "%24s%v:\n", "", label)
			if err != nil {
				return
			}
		}
		_, err = fmt.Fprintf(w, "%04x  %04x  %6d      %v\n", op.Ip, uint16(op.Code), op.LineNo, op.Line)
		if err != nil {
			return
		}
	}

	return
}

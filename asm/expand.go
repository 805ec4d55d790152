package asm

import (
	"iter"
	"slices"

	"github.com/ezrec/iridium/internal"
	"github.com/ezrec/iridium/isa"
)

const (
	LOW_MASK   = 0x003f // Bits set by the ADDI half of a 16-bit split.
	HIGH_MASK  = 0xffc0 // Bits set by the LUI half of a 16-bit split.
	HIGH_SHIFT = 6
)

// splitLow returns the ADDI half of a 16-bit value.
func splitLow(value int) int {
	return value & LOW_MASK
}

// splitHigh returns the LUI half of a 16-bit value.
func splitHigh(value int) int {
	return (value & HIGH_MASK) >> HIGH_SHIFT
}

// Expand rewrites pseudo instructions and data directives into real
// instructions and fill words. Labels of an expanded line move to the
// first line it expands to; labels of a line that expands to nothing move
// to the next line that produces a word.
func Expand(lines []Line) (expanded []Line, err error) {
	var pending []string
	var pendingLine Line

	seqs := make([]iter.Seq[Line], 0, len(lines))
	for _, line := range lines {
		var out []Line
		out, err = expandLine(line)
		if err != nil {
			err = line.wrap(err)
			return
		}

		if len(out) == 0 {
			if len(line.Labels) > 0 && len(pending) == 0 {
				pendingLine = line
			}
			pending = append(pending, line.Labels...)
			continue
		}

		out[0].Labels = append(pending, line.Labels...)
		pending = nil
		seqs = append(seqs, slices.Values(out))
	}

	if len(pending) > 0 {
		err = pendingLine.wrap(ErrLabelDangling(pending[0]))
		return
	}

	expanded = slices.Collect(internal.IterSeqConcat(seqs...))
	return
}

// expandLine expands a single line into zero or more lines.
func expandLine(line Line) (out []Line, err error) {
	switch line.Form {
	case FORM_NONE:
	case FORM_NOP:
		zero := []isa.Register{isa.REG_ZERO, isa.REG_ZERO, isa.REG_ZERO}
		out = append(out, line.derive(FORM_RRR, "ADD", zero, Immediate{}))
	case FORM_LLI:
		reg := line.Regs[0]
		out = append(out, line.derive(FORM_RRI, "ADDI", []isa.Register{reg, reg}, line.Imm))
	case FORM_MOVI:
		reg := line.Regs[0]
		low, high := line.Imm, line.Imm
		if !line.Imm.IsLabel() {
			low.Value = splitLow(line.Imm.Value)
			high.Value = splitHigh(line.Imm.Value)
		}
		out = append(out,
			line.derive(FORM_RRI, "ADDI", []isa.Register{reg, isa.REG_ZERO}, low),
			line.derive(FORM_RI, "LUI", []isa.Register{reg}, high),
		)
	case FORM_SPACE:
		if len(line.Elements) > line.Count {
			err = ErrSpaceOverflow
			return
		}
		out = make([]Line, line.Count)
		for n := range out {
			var imm Immediate
			if n < len(line.Elements) {
				imm = line.Elements[n]
			}
			out[n] = line.derive(FORM_FILL, "", nil, imm)
		}
	case FORM_TEXT:
		for _, ch := range []byte(line.Text) {
			out = append(out, line.derive(FORM_FILL, "", nil, Immediate{Value: int(ch)}))
		}
		out = append(out, line.derive(FORM_FILL, "", nil, Immediate{}))
	default:
		line.Labels = nil
		out = append(out, line)
	}

	return
}

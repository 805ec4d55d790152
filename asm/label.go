package asm

import (
	"maps"
	"slices"

	"github.com/ezrec/iridium/internal"
	"github.com/ezrec/iridium/isa"
)

// BuildLabels binds every label of the expanded program to the address
// of the line carrying it. Predefined symbols are bound first.
func BuildLabels(lines []Line, predefine map[string]int) (labels map[string]int, err error) {
	labels = make(map[string]int, len(lines)+len(predefine))
	maps.Copy(labels, predefine)

	for ip, line := range internal.IterSeqIndex(slices.Values(lines)) {
		for _, label := range line.Labels {
			if _, ok := labels[label]; ok {
				err = line.wrap(ErrLabelDuplicate(label))
				return
			}
			labels[label] = ip
		}
	}

	return
}

// labelValue transforms a label address for the immediate field of line.
// The split matches the one MOVI uses for numeric values.
func labelValue(line Line, addr int) int {
	switch line.Mnemonic {
	case "ADDI", "LW", "SW":
		return splitLow(addr)
	case "LUI":
		return splitHigh(addr)
	}
	return addr
}

// Resolve substitutes every label reference with its address.
func Resolve(lines []Line, labels map[string]int) (resolved []Line, err error) {
	resolved = slices.Clone(lines)

	for n := range resolved {
		line := &resolved[n]
		if !line.Imm.IsLabel() {
			continue
		}

		addr, ok := labels[line.Imm.Label]
		if !ok {
			err = line.wrap(ErrLabelMissing(line.Imm.Label))
			return
		}

		line.Imm = Immediate{Value: labelValue(*line, addr)}
	}

	return
}

// checkPredefine validates a predefined symbol.
func checkPredefine(name string, value int) (err error) {
	if !identRe.MatchString(name) {
		return ErrLabelSyntax(name)
	}
	if !isa.FIELD_WORD.Contains(value) {
		return &isa.ErrImmediateRange{Value: value, Field: isa.FIELD_WORD}
	}
	return
}

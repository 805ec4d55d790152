package asm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ezrec/iridium/isa"
)

// Immediate is a literal operand, or a reference to a label whose
// address is not known yet.
type Immediate struct {
	Value int
	Label string
}

// IsLabel is true if the immediate still refers to a label.
func (imm Immediate) IsLabel() bool {
	return len(imm.Label) != 0
}

func (imm Immediate) String() string {
	if imm.IsLabel() {
		return "@" + imm.Label
	}
	return strconv.Itoa(imm.Value)
}

// Line is a classified source line.
type Line struct {
	LineNo   int            // Source line number, 1 based.
	Source   string         // Source text the line was classified from.
	Labels   []string       // Labels bound to the address of this line.
	Form     Form           // Recognized form.
	Mnemonic string         // Instruction mnemonic of real instruction forms.
	Regs     []isa.Register // Register operands.
	Imm      Immediate      // Immediate operand.
	Count    int            // .space word count.
	Elements []Immediate    // .space initial values.
	Text     string         // .text characters.
}

// derive creates a line of a new form from the same source location.
func (line Line) derive(form Form, mnemonic string, regs []isa.Register, imm Immediate) Line {
	return Line{
		LineNo:   line.LineNo,
		Source:   line.Source,
		Form:     form,
		Mnemonic: mnemonic,
		Regs:     regs,
		Imm:      imm,
	}
}

// wrap locates err at this line.
func (line Line) wrap(err error) error {
	return &ErrSyntax{LineNo: line.LineNo, Line: line.Source, Err: err}
}

// String returns the canonical assembly text of the line.
func (line Line) String() string {
	var sb strings.Builder

	for _, label := range line.Labels {
		sb.WriteString(label)
		sb.WriteString(": ")
	}

	operands := make([]string, 0, len(line.Regs)+1)
	for _, reg := range line.Regs {
		operands = append(operands, reg.String())
	}

	switch line.Form {
	case FORM_NONE:
		return strings.TrimSpace(sb.String())
	case FORM_RRR, FORM_RR:
		sb.WriteString(line.Mnemonic)
	case FORM_RRI, FORM_RI:
		sb.WriteString(line.Mnemonic)
		operands = append(operands, line.Imm.String())
	case FORM_NOP:
		sb.WriteString("NOP")
	case FORM_LLI:
		sb.WriteString("LLI")
		operands = append(operands, line.Imm.String())
	case FORM_MOVI:
		sb.WriteString("MOVI")
		operands = append(operands, line.Imm.String())
	case FORM_FILL:
		sb.WriteString(".fill")
		if line.Imm.IsLabel() {
			operands = append(operands, line.Imm.String())
		} else {
			operands = append(operands, fmt.Sprintf("0x%04x", line.Imm.Value))
		}
	case FORM_SPACE:
		sb.WriteString(".space ")
		sb.WriteString(strconv.Itoa(line.Count))
		if len(line.Elements) > 0 {
			elems := make([]string, len(line.Elements))
			for n, elem := range line.Elements {
				elems[n] = elem.String()
			}
			sb.WriteString(" [")
			sb.WriteString(strings.Join(elems, ", "))
			sb.WriteString("]")
		}
	case FORM_TEXT:
		sb.WriteString(".text ")
		sb.WriteString(strconv.Quote(line.Text))
	case FORM_SYSCALL:
		sb.WriteString(".syscall")
		operands = append(operands, line.Imm.String())
	}

	if len(operands) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(operands, ", "))
	}

	return sb.String()
}

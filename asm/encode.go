package asm

import (
	"github.com/ezrec/iridium/isa"
)

// Encode produces the word of a resolved, expanded line.
func Encode(line Line) (code isa.Code, err error) {
	if line.Imm.IsLabel() {
		err = line.wrap(ErrLabelMissing(line.Imm.Label))
		return
	}

	var inst isa.Instruction
	var ok bool

	switch {
	case line.Form == FORM_FILL:
		if !isa.FIELD_WORD.Contains(line.Imm.Value) {
			err = line.wrap(&isa.ErrImmediateRange{Value: line.Imm.Value, Field: isa.FIELD_WORD})
			return
		}
		code = isa.Code(line.Imm.Value)
		return
	case line.Form == FORM_SYSCALL:
		inst, ok = isa.Lookup("SYSCALL")
	case line.Form.IsInstruction():
		inst, ok = isa.Lookup(line.Mnemonic)
	case line.Form.IsPseudo():
		err = line.wrap(ErrPseudoUnexpanded)
		return
	}

	if !ok {
		err = line.wrap(ErrInstructionInvalid)
		return
	}

	code, err = inst.Encode(line.Regs, line.Imm.Value)
	if err != nil {
		err = line.wrap(err)
		return
	}

	return
}

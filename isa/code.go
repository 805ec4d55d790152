package isa

import (
	"fmt"
)

// Code is a single assembled instruction word.
type Code uint16

// Encode packs an instruction with its register operands and immediate.
// The immediate is ignored by shapes without an immediate field.
func (inst Instruction) Encode(regs []Register, imm int) (code Code, err error) {
	need := inst.Shape.Registers()
	if len(regs) != need {
		err = &ErrOperandCount{Mnemonic: inst.Mnemonic, Expected: need, Got: len(regs)}
		return
	}

	if inst.Shape.HasImmediate() && !inst.Field.Contains(imm) {
		err = &ErrImmediateRange{Value: imm, Field: inst.Field}
		return
	}

	word := inst.Opcode.Word()

	switch inst.Shape {
	case SHAPE_RRR:
		word |= uint16(regs[0]&7)<<REG_A_SHIFT | uint16(regs[1]&7)<<REG_B_SHIFT | uint16(regs[2]&7)<<REG_C_SHIFT
	case SHAPE_RRI:
		word |= uint16(regs[0]&7)<<REG_A_SHIFT | uint16(regs[1]&7)<<REG_B_SHIFT | uint16(imm)&IMM7_MASK
	case SHAPE_RI:
		word |= uint16(regs[0]&7)<<REG_A_SHIFT | uint16(imm)&IMM10_MASK
	case SHAPE_RR:
		word |= uint16(regs[0]&7)<<REG_A_SHIFT | uint16(regs[1]&7)<<REG_B_SHIFT
	case SHAPE_I:
		word |= SYSCALL_FLAG | uint16(imm)&SYSCALL_MASK
	}

	code = Code(word)
	return
}

// Opcode returns the opcode field.
func (code Code) Opcode() Opcode {
	return Opcode((uint16(code) & OPCODE_MASK) >> OPCODE_SHIFT)
}

// RegA returns the register A field.
func (code Code) RegA() Register {
	return Register((code >> REG_A_SHIFT) & 7)
}

// RegB returns the register B field.
func (code Code) RegB() Register {
	return Register((code >> REG_B_SHIFT) & 7)
}

// RegC returns the register C field.
func (code Code) RegC() Register {
	return Register((code >> REG_C_SHIFT) & 7)
}

// Imm7 returns the sign extended 7-bit immediate field.
func (code Code) Imm7() int {
	imm := int(code & IMM7_MASK)
	if imm&0x40 != 0 {
		imm -= 0x80
	}
	return imm
}

// Imm10 returns the unsigned 10-bit immediate field.
func (code Code) Imm10() int {
	return int(code & IMM10_MASK)
}

// IsSyscall is true if the word is a SYSCALL rather than a JAL.
func (code Code) IsSyscall() bool {
	return code.Opcode() == OP_JAL && code&SYSCALL_FLAG != 0
}

func (code Code) String() string {
	return fmt.Sprintf("0x%04x", uint16(code))
}

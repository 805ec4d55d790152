// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// Opcode is the 3-bit operation selector of an instruction word.
type Opcode uint16

const (
	OP_ADD  = Opcode(0) // ADD
	OP_ADDI = Opcode(1) // ADDI
	OP_NAND = Opcode(2) // NAND
	OP_LUI  = Opcode(3) // LUI
	OP_SW   = Opcode(4) // SW
	OP_LW   = Opcode(5) // LW
	OP_BEQ  = Opcode(6) // BEQ
	OP_JAL  = Opcode(7) // JAL, SYSCALL
)

const (
	OPCODE_SHIFT = 13
	OPCODE_MASK  = 0xe000 // Mask of the opcode bits.

	REG_A_SHIFT = 10
	REG_B_SHIFT = 7
	REG_C_SHIFT = 4

	IMM7_MASK  = 0x007f // Signed immediate of the rri shape.
	IMM10_MASK = 0x03ff // Unsigned immediate of the ri shape.

	SYSCALL_FLAG = 0x0040 // Sub-opcode bit distinguishing SYSCALL from JAL.
	SYSCALL_MASK = 0x0007 // Syscall number.
)

// Word returns the opcode positioned in an instruction word.
func (op Opcode) Word() uint16 {
	return uint16(op) << OPCODE_SHIFT
}

// Shape is the operand layout of an instruction.
type Shape int

//go:generate go tool stringer -linecomment -type=Shape
const (
	SHAPE_RRR = Shape(0) // rrr
	SHAPE_RRI = Shape(1) // rri
	SHAPE_RI  = Shape(2) // ri
	SHAPE_RR  = Shape(3) // rr
	SHAPE_I   = Shape(4) // i
)

// Registers returns the number of register operands of the shape.
func (shape Shape) Registers() int {
	switch shape {
	case SHAPE_RRR:
		return 3
	case SHAPE_RRI, SHAPE_RR:
		return 2
	case SHAPE_RI:
		return 1
	}
	return 0
}

// HasImmediate is true if the shape carries an immediate field.
func (shape Shape) HasImmediate() bool {
	return shape == SHAPE_RRI || shape == SHAPE_RI || shape == SHAPE_I
}

// Field describes the width and signedness of an immediate field.
type Field struct {
	Bits   int
	Signed bool
}

// Min returns the smallest value the field holds.
func (field Field) Min() int {
	if field.Signed {
		return -(1 << (field.Bits - 1))
	}
	return 0
}

// Max returns the largest value the field holds.
func (field Field) Max() int {
	if field.Signed {
		return (1 << (field.Bits - 1)) - 1
	}
	return (1 << field.Bits) - 1
}

// Contains is true if value is representable in the field.
func (field Field) Contains(value int) bool {
	return value >= field.Min() && value <= field.Max()
}

var (
	FIELD_IMM6    = Field{Bits: 6}
	FIELD_IMM7    = Field{Bits: 7, Signed: true}
	FIELD_IMM10   = Field{Bits: 10}
	FIELD_WORD    = Field{Bits: 16}
	FIELD_SYSCALL = Field{Bits: 3}
)

// Instruction is an entry of the opcode catalog.
type Instruction struct {
	Mnemonic string
	Opcode   Opcode
	Shape    Shape
	Field    Field // Immediate field, if the shape has one.
}

// catalog maps each encodable mnemonic to its opcode and shape.
var catalog = map[string]Instruction{
	"ADD":     {"ADD", OP_ADD, SHAPE_RRR, Field{}},
	"NAND":    {"NAND", OP_NAND, SHAPE_RRR, Field{}},
	"BEQ":     {"BEQ", OP_BEQ, SHAPE_RRR, Field{}},
	"ADDI":    {"ADDI", OP_ADDI, SHAPE_RRI, FIELD_IMM7},
	"SW":      {"SW", OP_SW, SHAPE_RRI, FIELD_IMM7},
	"LW":      {"LW", OP_LW, SHAPE_RRI, FIELD_IMM7},
	"LUI":     {"LUI", OP_LUI, SHAPE_RI, FIELD_IMM10},
	"JAL":     {"JAL", OP_JAL, SHAPE_RR, Field{}},
	"SYSCALL": {"SYSCALL", OP_JAL, SHAPE_I, FIELD_SYSCALL},
}

// Lookup returns the catalog entry for a mnemonic.
func Lookup(mnemonic string) (inst Instruction, ok bool) {
	inst, ok = catalog[mnemonic]
	return
}

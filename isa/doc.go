// Package isa describes the Iridium instruction set: the opcode catalog,
// the register table and the 16-bit instruction word layout.
//
// Every instruction is a single 16-bit word. Bits 13-15 select the
// opcode, bits 10-12 hold register A, bits 7-9 register B and, for the
// three-register shape, bits 4-6 register C. The remaining low bits carry
// the immediate of the shape, if any.
package isa

// Package asm implements the assembler for the Iridium 16-bit instruction set.
//
// Assembly runs as a fixed pipeline over the source lines: each line is
// classified into one of the recognized instruction forms, pseudo
// instructions and data directives are expanded into real instructions
// and fill words, labels are bound to word addresses and substituted,
// and finally every line is encoded into a single 16-bit word.
//
// The accepted language:
//
//	name:  ADD|NAND|BEQ  reg, reg, reg
//	       ADDI|SW|LW    reg, reg, imm7
//	       LUI           reg, imm10
//	       JAL           reg, reg
//	       NOP
//	       LLI           reg, imm6
//	       MOVI          reg, imm16
//	       .fill         imm16
//	       .space        count [imm16, ...]
//	       .text         "string"
//	       .syscall      0-7
//
// Immediates are decimal, 0b binary, 0x hexadecimal, a quoted ASCII
// character, or a label reference written as @name.
package asm

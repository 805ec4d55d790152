package asm

import (
	"strconv"
	"strings"

	"github.com/ezrec/iridium/isa"
)

// ImmSpec describes what an immediate operand may hold.
type ImmSpec struct {
	isa.Field
	Char  bool // Accept a quoted ASCII character.
	Label bool // Accept a @label reference.
}

var (
	specImm7  = ImmSpec{Field: isa.FIELD_IMM7, Char: true, Label: true}
	specImm10 = ImmSpec{Field: isa.FIELD_IMM10, Char: true, Label: true}
	specImm6  = ImmSpec{Field: isa.FIELD_IMM6, Char: true, Label: true}
	specImm16 = ImmSpec{Field: isa.FIELD_WORD, Char: true, Label: true}
	specCount = ImmSpec{Field: isa.FIELD_WORD}
)

// ParseImmediate parses and range checks a literal operand.
//
// A label reference is recognized, but not resolved.
func ParseImmediate(word string, spec ImmSpec) (imm Immediate, err error) {
	switch {
	case len(word) == 0:
		err = ErrOpcodeValueMissing
		return
	case word[0] == '@':
		if !spec.Label {
			err = ErrLabelNotAllowed
			return
		}
		if !identRe.MatchString(word[1:]) {
			err = ErrLabelSyntax(word)
			return
		}
		imm.Label = word[1:]
		return
	case word[0] == '\'':
		if !spec.Char {
			err = ErrParseNumber(word)
			return
		}
		imm.Value, err = parseChar(word)
	default:
		imm.Value, err = parseNumber(word)
	}
	if err != nil {
		return
	}

	if !spec.Contains(imm.Value) {
		err = &isa.ErrImmediateRange{Value: imm.Value, Field: spec.Field}
		return
	}

	return
}

// parseChar returns the ordinal of a single quoted ASCII character.
func parseChar(word string) (value int, err error) {
	if len(word) < 3 || word[0] != '\'' || word[len(word)-1] != '\'' {
		err = ErrCharacterInvalid(word)
		return
	}

	text, ok := unescape(word[1 : len(word)-1])
	if !ok || len(text) != 1 {
		err = ErrCharacterInvalid(word)
		return
	}

	value = int(text[0])
	return
}

// parseNumber parses a signed decimal, 0b binary or 0x hexadecimal literal.
func parseNumber(word string) (value int, err error) {
	digits := word
	negative := false
	switch {
	case strings.HasPrefix(digits, "-"):
		negative = true
		digits = digits[1:]
	case strings.HasPrefix(digits, "+"):
		digits = digits[1:]
	}

	base := 10
	switch {
	case strings.HasPrefix(digits, "0x"), strings.HasPrefix(digits, "0X"):
		base = 16
		digits = digits[2:]
	case strings.HasPrefix(digits, "0b"), strings.HasPrefix(digits, "0B"):
		base = 2
		digits = digits[2:]
	}

	v64, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	if negative {
		value = -value
	}

	return
}

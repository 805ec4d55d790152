package asm

import (
	"slices"
	"strings"

	"github.com/ezrec/iridium/isa"
)

// grammar is one recognized instruction form.
type grammar struct {
	form      Form
	mnemonics []string
	regs      int      // Register operands.
	imm       *ImmSpec // Trailing immediate, if any.
	parse     func(line *Line, operands []string) error
}

// grammars in priority order.
var grammars = []grammar{
	{form: FORM_RRR, mnemonics: []string{"ADD", "NAND", "BEQ"}, regs: 3},
	{form: FORM_RRI, mnemonics: []string{"ADDI", "SW", "LW"}, regs: 2, imm: &specImm7},
	{form: FORM_RI, mnemonics: []string{"LUI"}, regs: 1, imm: &specImm10},
	{form: FORM_RR, mnemonics: []string{"JAL"}, regs: 2},
	{form: FORM_NOP, mnemonics: []string{"NOP"}},
	{form: FORM_LLI, mnemonics: []string{"LLI"}, regs: 1, imm: &specImm6},
	{form: FORM_MOVI, mnemonics: []string{"MOVI"}, regs: 1, imm: &specImm16},
	{form: FORM_FILL, mnemonics: []string{".fill"}, imm: &specImm16},
	{form: FORM_SPACE, mnemonics: []string{".space"}, parse: parseSpace},
	{form: FORM_TEXT, mnemonics: []string{".text"}, parse: parseText},
	{form: FORM_SYSCALL, mnemonics: []string{".syscall"}, parse: parseSyscall},
}

// Classify recognizes the form of a single source line.
//
// A blank line, or one holding only labels, classifies as FORM_NONE.
func Classify(text string, lineno int) (line Line, err error) {
	line.LineNo = lineno
	line.Source = strings.TrimSpace(text)

	labels, rest := splitLabels(text)
	line.Labels = labels

	words, err := tokenize(rest)
	if err != nil {
		err = line.wrap(err)
		return
	}

	if len(words) == 0 {
		line.Form = FORM_NONE
		return
	}

	mnemonic := words[0]
	operands := words[1:]

	err = ErrInstructionInvalid
	for _, g := range grammars {
		if !slices.Contains(g.mnemonics, mnemonic) {
			continue
		}

		try := line
		try.Form = g.form
		if g.form.IsInstruction() {
			try.Mnemonic = mnemonic
		}

		var g_err error
		if g.parse != nil {
			g_err = g.parse(&try, operands)
		} else {
			g_err = g.match(&try, mnemonic, operands)
		}
		if g_err == nil {
			line = try
			err = nil
			return
		}
		if err == ErrInstructionInvalid {
			err = g_err
		}
	}

	err = line.wrap(err)
	return
}

// registers counts the leading register operands.
func registers(operands []string) (count int) {
	for _, op := range operands {
		if _, ok := isa.ParseRegister(op); !ok {
			break
		}
		count++
	}
	return
}

// match parses register operands followed by an optional immediate.
func (g grammar) match(line *Line, mnemonic string, operands []string) (err error) {
	have := registers(operands)
	if have != g.regs {
		if have < len(operands) && have < g.regs && strings.HasPrefix(operands[have], "$") {
			return ErrRegisterInvalid
		}
		return &isa.ErrOperandCount{Mnemonic: mnemonic, Expected: g.regs, Got: have}
	}

	for _, op := range operands[:g.regs] {
		reg, _ := isa.ParseRegister(op)
		line.Regs = append(line.Regs, reg)
	}

	rest := operands[g.regs:]

	if g.imm == nil {
		if len(rest) > 0 {
			return ErrOpcodeExtraArgs
		}
		return
	}

	switch {
	case len(rest) == 0:
		return ErrOpcodeValueMissing
	case len(rest) > 1:
		return ErrOpcodeExtraArgs
	}

	line.Imm, err = ParseImmediate(rest[0], *g.imm)
	return
}

// parseSpace parses `.space count [elem, ...]`, brackets optional.
func parseSpace(line *Line, operands []string) (err error) {
	if len(operands) == 0 {
		return ErrOpcodeValueMissing
	}

	count, err := ParseImmediate(operands[0], specCount)
	if err != nil {
		return
	}
	line.Count = count.Value

	elems := operands[1:]
	if len(elems) > 0 && elems[0] == "[" {
		if elems[len(elems)-1] != "]" {
			return ErrSpaceSyntax
		}
		elems = elems[1 : len(elems)-1]
	}

	for _, word := range elems {
		if word == "[" || word == "]" {
			return ErrSpaceSyntax
		}
		var imm Immediate
		imm, err = ParseImmediate(word, specImm16)
		if err != nil {
			return
		}
		line.Elements = append(line.Elements, imm)
	}

	if len(line.Elements) > line.Count {
		return ErrSpaceOverflow
	}

	return
}

// parseText parses `.text "string"`.
func parseText(line *Line, operands []string) (err error) {
	if len(operands) != 1 {
		return ErrTextSyntax
	}

	word := operands[0]
	if len(word) < 2 || word[0] != '"' || word[len(word)-1] != '"' {
		return ErrTextSyntax
	}

	text, ok := unescape(word[1 : len(word)-1])
	if !ok {
		return ErrCharacterInvalid(word)
	}

	line.Text = text
	return
}

// parseSyscall parses `.syscall n`, with n a single digit 0 to 7.
func parseSyscall(line *Line, operands []string) (err error) {
	if len(operands) != 1 {
		return ErrSyscallSyntax
	}

	word := operands[0]
	if len(word) != 1 || word[0] < '0' || word[0] > '9' {
		return ErrSyscallSyntax
	}

	value := int(word[0] - '0')
	if !isa.FIELD_SYSCALL.Contains(value) {
		return &isa.ErrImmediateRange{Value: value, Field: isa.FIELD_SYSCALL}
	}

	line.Imm = Immediate{Value: value}
	return
}

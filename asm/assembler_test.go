package asm

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/iridium/isa"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Assemble(nil)
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))
	assert.Empty(prog.Binary())
}

func TestAssemblerExample(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"start: ADDI $r0, $zero, 5",
		"ADD $r0, $r0, $r0",
	}

	prog, err := asm.Assemble(program)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(map[string]int{"start": 0}, prog.Label)
	assert.Equal([]uint16{0x2405, 0x0490}, prog.Binary())

	expected := []Opcode{
		{1, 0, "start: ADDI $r0, $zero, 5", 0x2405},
		{2, 1, "ADD $r0, $r0, $r0", 0x0490},
	}
	assert.Equal(expected, prog.Opcodes)
}

func TestAssemblerPseudo(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"main: MOVI $r2, 0xabcd", // 0, 1
		"",
		"      NOP            # 2",
		"      LLI $r1, 3",
		"      .syscall 2",
		`msg:  .text "hi"`,             // 5, 6, 7
		"tbl:  .space 3 [@main, @msg]", // 8, 9, 10
		"      JAL $r0, $r6",
	}

	prog, err := asm.Assemble(program)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal([]uint16{
		0x2c0d, 0x6eaf,
		0x0000,
		0x2903,
		0xe042,
		0x0068, 0x0069, 0x0000,
		0x0000, 0x0005, 0x0000,
		0xe780,
	}, prog.Binary())

	assert.Equal(map[string]int{"main": 0, "msg": 5, "tbl": 8}, prog.Label)

	for ip, op := range prog.Opcodes {
		assert.Equal(ip, op.Ip)
	}
	assert.Equal(1, prog.Opcodes[1].LineNo)
	assert.Equal(3, prog.Opcodes[2].LineNo)
	assert.Equal(8, prog.Opcodes[11].LineNo)
}

func TestAssemblerLabelSplit(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"MOVI $r1, @target", // 0, 1
		"ADDI $r0, $r0, @target",
		"LUI $r0, @target",
		".space 66",
		"target: .fill 0x1234", // 70
	}

	prog, err := asm.Assemble(program)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(70, prog.Label["target"])
	words := prog.Binary()
	assert.Equal(71, len(words))
	assert.Equal(uint16(0x2806), words[0])
	assert.Equal(uint16(0x6801), words[1])
	assert.Equal(uint16(0x2486), words[2])
	assert.Equal(uint16(0x6401), words[3])
	assert.Equal(uint16(0x1234), words[70])
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("IO", 0xff00)

	prog, err := asm.Assemble([]string{"LUI $r0, @IO", "ADDI $r0, $r0, @IO"})
	assert.NoError(err)
	assert.Equal([]uint16{0x67fc, 0x2480}, prog.Binary())

	_, err = asm.Assemble([]string{"IO: NOP"})
	var eld ErrLabelDuplicate
	assert.True(errors.As(err, &eld))

	asm.Predefine("9lives", 0)
	_, err = asm.Assemble([]string{"NOP"})
	var els ErrLabelSyntax
	assert.True(errors.As(err, &els))

	asm = &Assembler{}
	asm.Predefine("big", 0x10000)
	_, err = asm.Assemble([]string{"NOP"})
	var eir *isa.ErrImmediateRange
	assert.True(errors.As(err, &eir))
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Program []string
		LineNo  int
		Err     error
	}{
		{[]string{"NOP", "FOO $r0"}, 2, ErrInstructionInvalid},
		{[]string{"NOP", "ADDI $r0, $r0, 64"}, 2, &isa.ErrImmediateRange{}},
		{[]string{"a: NOP", "NOP", "a: NOP"}, 3, ErrLabelDuplicate("a")},
		{[]string{"JAL $r0, $r1", "ADDI $r0, $r0, @nowhere"}, 2, ErrLabelMissing("nowhere")},
		{[]string{"NOP", ".space 1 [1, 2]"}, 2, ErrSpaceOverflow},
		{[]string{"NOP", "done:"}, 2, ErrLabelDangling("done")},
		{[]string{".space 65535", ".space 2"}, 2, ErrProgramSize},
	}

	asm := &Assembler{}

	for _, tc := range table {
		prog, err := asm.Assemble(tc.Program)
		assert.Nil(prog)

		var es *ErrSyntax
		if !assert.True(errors.As(err, &es), "%v", tc.Program) {
			continue
		}
		assert.Equal(tc.LineNo, es.LineNo, "%v", tc.Program)
		assert.Equal(tc.Program[tc.LineNo-1], es.Line)

		switch expected := tc.Err.(type) {
		case *isa.ErrImmediateRange:
			assert.True(errors.As(err, &expected))
		default:
			assert.ErrorIs(err, tc.Err, "%v", tc.Program)
		}
	}
}

func TestAssemblerVerbose(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	defer log.SetOutput(os.Stderr)

	asm := &Assembler{Verbose: true}
	_, err := asm.Assemble([]string{"start: MOVI $r0, @start"})
	assert.NoError(err)

	out := buf.String()
	assert.True(strings.Contains(out, "labels:"), out)
	assert.True(strings.Contains(out, "start"), out)
	assert.True(strings.Contains(out, "expanded 1 lines to 2 words"), out)
}

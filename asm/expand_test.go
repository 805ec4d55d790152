package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/iridium/isa"
)

// classifyAll classifies a program, failing the test on error.
func classifyAll(t *testing.T, text ...string) (lines []Line) {
	for n, source := range text {
		line, err := Classify(source, n+1)
		if err != nil {
			t.Fatal(err)
		}
		lines = append(lines, line)
	}
	return
}

func TestExpandNop(t *testing.T) {
	assert := assert.New(t)

	out, err := Expand(classifyAll(t, "idle: NOP"))
	assert.NoError(err)
	assert.Equal(1, len(out))
	assert.Equal("idle: ADD $zero, $zero, $zero", out[0].String())
	assert.Equal(FORM_RRR, out[0].Form)
}

func TestExpandLli(t *testing.T) {
	assert := assert.New(t)

	out, err := Expand(classifyAll(t, "LLI $r2, 5"))
	assert.NoError(err)
	assert.Equal(1, len(out))
	assert.Equal("ADDI $r2, $r2, 5", out[0].String())
}

func TestExpandMovi(t *testing.T) {
	assert := assert.New(t)

	for _, value := range []int{0, 1, 63, 64, 0x1234, 0xabcd, 0xffc0, 0xffff} {
		line := Line{LineNo: 1, Labels: []string{"here"}, Form: FORM_MOVI,
			Regs: []isa.Register{isa.REG_R3}, Imm: Immediate{Value: value}}

		out, err := Expand([]Line{line})
		assert.NoError(err)
		if !assert.Equal(2, len(out)) {
			continue
		}

		addi, lui := out[0], out[1]
		assert.Equal("ADDI", addi.Mnemonic)
		assert.Equal([]isa.Register{isa.REG_R3, isa.REG_ZERO}, addi.Regs)
		assert.Equal([]string{"here"}, addi.Labels)
		assert.Equal("LUI", lui.Mnemonic)
		assert.Equal([]isa.Register{isa.REG_R3}, lui.Regs)
		assert.Nil(lui.Labels)

		assert.True(isa.FIELD_IMM6.Contains(addi.Imm.Value))
		assert.True(isa.FIELD_IMM10.Contains(lui.Imm.Value))
		assert.Equal(value, addi.Imm.Value|lui.Imm.Value<<6, "%#x", value)
	}
}

func TestExpandMoviLabel(t *testing.T) {
	assert := assert.New(t)

	out, err := Expand(classifyAll(t, "MOVI $r1, @far"))
	assert.NoError(err)
	assert.Equal(2, len(out))
	assert.Equal("ADDI $r1, $zero, @far", out[0].String())
	assert.Equal("LUI $r1, @far", out[1].String())
}

func TestExpandSpace(t *testing.T) {
	assert := assert.New(t)

	out, err := Expand(classifyAll(t, "buf: .space 3 [7]"))
	assert.NoError(err)
	assert.Equal(3, len(out))
	for n, value := range []int{7, 0, 0} {
		assert.Equal(FORM_FILL, out[n].Form)
		assert.Equal(value, out[n].Imm.Value)
	}
	assert.Equal([]string{"buf"}, out[0].Labels)
	assert.Nil(out[1].Labels)

	line := Line{LineNo: 4, Source: ".space", Form: FORM_SPACE, Count: 1,
		Elements: []Immediate{{Value: 1}, {Value: 2}}}
	_, err = Expand([]Line{line})
	assert.ErrorIs(err, ErrSpaceOverflow)
	var es *ErrSyntax
	assert.True(errors.As(err, &es))
	assert.Equal(4, es.LineNo)
}

func TestExpandText(t *testing.T) {
	assert := assert.New(t)

	out, err := Expand(classifyAll(t, `msg: .text "ab"`, "NOP"))
	assert.NoError(err)
	assert.Equal(4, len(out))
	for n, value := range []int{'a', 'b', 0} {
		assert.Equal(FORM_FILL, out[n].Form)
		assert.Equal(value, out[n].Imm.Value)
	}
	assert.Equal([]string{"msg"}, out[0].Labels)
	assert.Equal(FORM_RRR, out[3].Form)
	assert.Equal(2, out[3].LineNo)
}

func TestExpandPendingLabels(t *testing.T) {
	assert := assert.New(t)

	out, err := Expand(classifyAll(t, "top:", "", "empty: .space 0", "first: NOP"))
	assert.NoError(err)
	assert.Equal(1, len(out))
	assert.Equal([]string{"top", "empty", "first"}, out[0].Labels)

	_, err = Expand(classifyAll(t, "NOP", "end:"))
	var eld ErrLabelDangling
	assert.True(errors.As(err, &eld))
	assert.Equal(ErrLabelDangling("end"), eld)

	out, err = Expand(classifyAll(t, "NOP", "end:", "     .fill 0"))
	assert.NoError(err)
	assert.Equal(2, len(out))
	assert.Equal([]string{"end"}, out[1].Labels)
}

func TestExpandKeepsRealInstructions(t *testing.T) {
	assert := assert.New(t)

	in := classifyAll(t, "a: ADD $r0, $r1, $r2", "LUI $r0, 5", ".fill 3", ".syscall 1")
	out, err := Expand(in)
	assert.NoError(err)
	assert.Equal(len(in), len(out))
	for n := range in {
		assert.Equal(in[n], out[n])
	}
}

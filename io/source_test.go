package io

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert := assert.New(t)

	table := map[string]string{
		"  ADDI $r0 $r0 5  ":         "ADDI $r0 $r0 5",
		"ADD $r0, $r0, $r0 # add":    "ADD $r0, $r0, $r0",
		"# only a comment":           "",
		"\t":                         "",
		".fill '#'   # hash":         ".fill '#'",
		`.text "a # b" # c`:          `.text "a # b"`,
		`.text "say \"#\"" # quoted`: `.text "say \"#\""`,
		`.fill '\'' # escaped quote`: `.fill '\''`,
		"loop:   NOP":                "loop:   NOP",
	}

	for in, out := range table {
		assert.Equal(out, Normalize(in), in)
	}
}

func TestReadLines(t *testing.T) {
	assert := assert.New(t)

	source := strings.Join([]string{
		"ADDI $r0 $r0 5",
		"ADDI $r0 $r1 2   # two",
		"",
		"NAND $r0 $r0 $r0",
		"  ADD $r0 $r0 $r1",
	}, "\n")

	lines, err := ReadLines(strings.NewReader(source))
	assert.NoError(err)
	assert.Equal([]string{
		"ADDI $r0 $r0 5",
		"ADDI $r0 $r1 2",
		"",
		"NAND $r0 $r0 $r0",
		"ADD $r0 $r0 $r1",
	}, lines)

	lines, err = ReadLines(strings.NewReader(""))
	assert.NoError(err)
	assert.Empty(lines)
}

type failReader struct {
	data string
	err  error
}

func (fr *failReader) Read(buf []byte) (n int, err error) {
	if len(fr.data) == 0 {
		return 0, fr.err
	}
	n = copy(buf, fr.data)
	fr.data = fr.data[n:]
	return
}

func TestReadLinesLong(t *testing.T) {
	assert := assert.New(t)

	text := `.text "` + strings.Repeat("x", 256<<10) + `"`
	lines, err := ReadLines(strings.NewReader("NOP\n" + text + "\nNOP\n"))
	assert.NoError(err)
	assert.Equal([]string{"NOP", text, "NOP"}, lines)
}

func TestReadLinesError(t *testing.T) {
	assert := assert.New(t)

	broken := errors.New("disk on fire")
	lines, err := ReadLines(&failReader{data: "NOP\nNOP\n", err: broken})
	assert.Nil(lines)
	assert.ErrorIs(err, broken)

	var esr *ErrSourceRead
	if assert.True(errors.As(err, &esr)) {
		assert.Equal(3, esr.LineNo)
	}
}

// Package io provides the file collaborators of the Iridium assembler:
// reading normalized source lines and writing the assembled word image.
package io

import (
	"bufio"
	"io"
	"strings"
)

// Normalize strips a '#' comment and surrounding whitespace from a
// source line. A '#' inside a quoted character or string literal does
// not start a comment.
func Normalize(line string) string {
	var quote rune
	escape := false

	for n, ru := range line {
		switch {
		case quote != 0:
			if escape {
				escape = false
			} else if ru == '\\' {
				escape = true
			} else if ru == quote {
				quote = 0
			}
		case ru == '\'' || ru == '"':
			quote = ru
		case ru == '#':
			return strings.TrimSpace(line[:n])
		}
	}

	return strings.TrimSpace(line)
}

// MAX_LINE is the longest source line, in bytes, that ReadLines accepts.
const MAX_LINE = 16 << 20

// ReadLines reads and normalizes every line of input. Blank lines are
// kept so that indexes match source line numbers.
func ReadLines(input io.Reader) (lines []string, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, MAX_LINE)

	for scanner.Scan() {
		lines = append(lines, Normalize(scanner.Text()))
	}

	err = scanner.Err()
	if err != nil {
		err = &ErrSourceRead{LineNo: len(lines) + 1, Err: err}
		lines = nil
		return
	}

	return
}

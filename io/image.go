package io

import (
	"bufio"
	"encoding/binary"
	"io"
)

// WriteImage writes words in big-endian order, high byte first, and
// returns the number of bytes written.
func WriteImage(output io.Writer, words []uint16) (n int, err error) {
	writer := bufio.NewWriter(output)

	var buf [2]byte
	for _, word := range words {
		binary.BigEndian.PutUint16(buf[:], word)
		var wrote int
		wrote, err = writer.Write(buf[:])
		n += wrote
		if err != nil {
			return
		}
	}

	err = writer.Flush()
	if err != nil {
		n -= writer.Buffered()
	}

	return
}

// WriteFile creates name in filesys and writes the word image to it.
func WriteFile(filesys CreateFS, name string, words []uint16) (n int, err error) {
	file, err := filesys.Create(name)
	if err != nil {
		return
	}

	n, err = WriteImage(file, words)
	if err != nil {
		file.Close()
		return
	}

	err = file.Close()
	return
}

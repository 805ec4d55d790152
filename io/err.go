package io

import (
	"strconv"

	"github.com/ezrec/iridium/translate"
)

var f = translate.From

// ErrSourceRead reports a failure reading source text.
type ErrSourceRead struct {
	LineNo int
	Err    error
}

func (err *ErrSourceRead) Error() string {
	return f("read line %v: %v", strconv.Itoa(err.LineNo), err.Err)
}

func (err *ErrSourceRead) Unwrap() error {
	return err.Err
}

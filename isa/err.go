package isa

import (
	"strconv"

	"github.com/ezrec/iridium/translate"
)

var f = translate.From

// ErrOperandCount reports an instruction given the wrong number of registers.
type ErrOperandCount struct {
	Mnemonic string
	Expected int
	Got      int
}

func (err *ErrOperandCount) Error() string {
	return f("%v expects %v register operands, got %v", err.Mnemonic, strconv.Itoa(err.Expected), strconv.Itoa(err.Got))
}

// ErrImmediateRange reports an immediate that does not fit its field.
type ErrImmediateRange struct {
	Value int
	Field Field
}

func (err *ErrImmediateRange) Error() string {
	kind := "unsigned"
	if err.Field.Signed {
		kind = "signed"
	}
	return f("immediate %v out of range for %v %v-bit field [%v, %v]",
		strconv.Itoa(err.Value), kind, strconv.Itoa(err.Field.Bits),
		strconv.Itoa(err.Field.Min()), strconv.Itoa(err.Field.Max()))
}

package asm

import (
	"errors"
	"strconv"

	"github.com/ezrec/iridium/translate"
)

var f = translate.From

var (
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrLabelNotAllowed    = errors.New(f("label reference not allowed"))
	ErrQuoteUnterminated  = errors.New(f("unterminated quote"))
	ErrSpaceSyntax        = errors.New(f(".space syntax"))
	ErrSpaceOverflow      = errors.New(f(".space lists more values than its count"))
	ErrTextSyntax         = errors.New(f(".text syntax"))
	ErrSyscallSyntax      = errors.New(f(".syscall syntax"))
	ErrPseudoUnexpanded   = errors.New(f("pseudo instruction not expanded"))
	ErrProgramSize        = errors.New(f("program exceeds the 16-bit address space"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrLabelDuplicate string

func (el ErrLabelDuplicate) Error() string {
	return f("label %v duplicated", string(el))
}

type ErrLabelDangling string

func (el ErrLabelDangling) Error() string {
	return f("label %v is not followed by an instruction", string(el))
}

type ErrLabelSyntax string

func (el ErrLabelSyntax) Error() string {
	return f("'%v' is not a valid label", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrCharacterInvalid string

func (err ErrCharacterInvalid) Error() string {
	return f("%v is not an ASCII character", string(err))
}

// ErrSyntax locates an assembly failure in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %v '%v' %v", strconv.Itoa(err.LineNo), err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

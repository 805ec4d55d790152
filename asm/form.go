package asm

// Form is the recognized shape of a source line.
type Form int

//go:generate go tool stringer -linecomment -type=Form
const (
	FORM_NONE    = Form(0)  // none
	FORM_RRR     = Form(1)  // rrr
	FORM_RRI     = Form(2)  // rri
	FORM_RI      = Form(3)  // ri
	FORM_RR      = Form(4)  // rr
	FORM_NOP     = Form(5)  // nop
	FORM_LLI     = Form(6)  // lli
	FORM_MOVI    = Form(7)  // movi
	FORM_FILL    = Form(8)  // .fill
	FORM_SPACE   = Form(9)  // .space
	FORM_TEXT    = Form(10) // .text
	FORM_SYSCALL = Form(11) // .syscall
)

// IsPseudo is true for forms that must be expanded before encoding.
func (form Form) IsPseudo() bool {
	switch form {
	case FORM_NOP, FORM_LLI, FORM_MOVI, FORM_SPACE, FORM_TEXT:
		return true
	}
	return false
}

// IsInstruction is true for the real instruction forms.
func (form Form) IsInstruction() bool {
	switch form {
	case FORM_RRR, FORM_RRI, FORM_RI, FORM_RR:
		return true
	}
	return false
}

package isa

// Register is a 3-bit register index.
type Register uint8

const (
	REG_ZERO = Register(0) // $zero, hard-wired to zero.
	REG_R0   = Register(1)
	REG_R1   = Register(2)
	REG_R2   = Register(3)
	REG_R3   = Register(4)
	REG_R4   = Register(5)
	REG_R5   = Register(6)
	REG_R6   = Register(7)
)

var registerName = [...]string{"$zero", "$r0", "$r1", "$r2", "$r3", "$r4", "$r5", "$r6"}

// regMap is the register table.
var regMap = map[string]Register{
	"$zero": REG_ZERO,
	"$r0":   REG_R0,
	"$r1":   REG_R1,
	"$r2":   REG_R2,
	"$r3":   REG_R3,
	"$r4":   REG_R4,
	"$r5":   REG_R5,
	"$r6":   REG_R6,
}

// ParseRegister looks up a register by its textual name.
func ParseRegister(name string) (reg Register, ok bool) {
	reg, ok = regMap[name]
	return
}

func (reg Register) String() string {
	if int(reg) < len(registerName) {
		return registerName[reg]
	}
	return "$?"
}

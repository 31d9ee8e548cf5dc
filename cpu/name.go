package cpu

import (
	"iter"
	"slices"

	"github.com/ezrec/x86reg/internal"
)

// RegName is a symbolic register name.
// The word and byte tags follow the 8086 reg field encoding.
type RegName int

//go:generate go tool stringer -linecomment -type=RegName
const (
	REG_AX = RegName(0)  // ax
	REG_CX = RegName(1)  // cx
	REG_DX = RegName(2)  // dx
	REG_BX = RegName(3)  // bx
	REG_SP = RegName(4)  // sp
	REG_BP = RegName(5)  // bp
	REG_SI = RegName(6)  // si
	REG_DI = RegName(7)  // di
	REG_AL = RegName(8)  // al
	REG_CL = RegName(9)  // cl
	REG_DL = RegName(10) // dl
	REG_BL = RegName(11) // bl
	REG_AH = RegName(12) // ah
	REG_CH = RegName(13) // ch
	REG_DH = RegName(14) // dh
	REG_BH = RegName(15) // bh
	REG_IP = RegName(16) // ip
)

// FlagName is a symbolic condition flag name.
type FlagName int

//go:generate go tool stringer -linecomment -type=FlagName
const (
	FLAG_SIGN = FlagName(0) // sign
	FLAG_ZERO = FlagName(1) // zero
)

const flagCount = int(FLAG_ZERO) + 1

var (
	_reg_names  = map[string]RegName{}
	_flag_names = map[string]FlagName{}
)

func init() {
	for reg := REG_AX; reg <= REG_IP; reg++ {
		_reg_names[reg.String()] = reg
	}
	for flag := range FlagNames() {
		_flag_names[flag.String()] = flag
	}
}

// ParseRegName resolves a canonical lowercase register name.
// "ip" resolves to REG_IP, even though it is not a readable or writable
// operand.
func ParseRegName(name string) (reg RegName, err error) {
	reg, ok := _reg_names[name]
	if !ok {
		err = ErrRegisterName(name)
	}
	return
}

// ParseFlagName resolves a canonical lowercase flag name.
func ParseFlagName(name string) (flag FlagName, err error) {
	flag, ok := _flag_names[name]
	if !ok {
		err = ErrFlagName(name)
	}
	return
}

// WordReg returns the 16-bit register for a 3-bit reg field.
func WordReg(field int) RegName {
	return REG_AX + RegName(field&7)
}

// ByteReg returns the 8-bit register for a 3-bit reg field.
func ByteReg(field int) RegName {
	return REG_AL + RegName(field&7)
}

// Valid returns true if the tag is in the closed register set.
func (reg RegName) Valid() bool {
	return reg >= REG_AX && reg <= REG_IP
}

// Operand returns true if the tag can be read and written as an operand.
func (reg RegName) Operand() bool {
	return reg >= REG_AX && reg <= REG_BH
}

// Wide returns true for 16-bit register names.
func (reg RegName) Wide() bool {
	return (reg >= REG_AX && reg <= REG_DI) || reg == REG_IP
}

// index returns the backing register and byte selection of an operand.
func (reg RegName) index() (n int, high bool) {
	if reg <= REG_DI {
		return int(reg), false
	}
	n = int(reg-REG_AL) & 3
	high = reg >= REG_AH
	return
}

// RegNames iterates over all operand register names, words first.
func RegNames() iter.Seq[RegName] {
	words := []RegName{REG_AX, REG_CX, REG_DX, REG_BX, REG_SP, REG_BP, REG_SI, REG_DI}
	bytes := []RegName{REG_AL, REG_CL, REG_DL, REG_BL, REG_AH, REG_CH, REG_DH, REG_BH}
	return internal.Concat(slices.Values(words), slices.Values(bytes))
}

// FlagNames iterates over all flag names.
func FlagNames() iter.Seq[FlagName] {
	return func(yield func(FlagName) bool) {
		for flag := range FlagName(flagCount) {
			if !yield(flag) {
				return
			}
		}
	}
}

// Valid returns true if the tag is in the closed flag set.
func (flag FlagName) Valid() bool {
	return flag >= 0 && int(flag) < flagCount
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ezrec/x86reg/register"
)

// State is the architectural register state of the processor.
type State struct {
	Verbose bool // Set to enable verbose logging.

	reg  [8]register.Register // Register bank, in reg field encoding order.
	ip   int16                // Instruction pointer.
	flag [flagCount]bool      // Condition flags.
}

// NewState creates a processor state with all registers, flags and the
// instruction pointer cleared.
func NewState() (state *State) {
	state = &State{}

	return
}

// Reset the state to its power-on values.
func (state *State) Reset() {
	if state.Verbose {
		log.Printf("cpu: reset")
	}

	clear(state.reg[:])
	clear(state.flag[:])
	state.ip = 0
}

// Get returns the value of a register operand.
// Byte registers are zero extended.
func (state *State) Get(reg RegName) (value uint16, err error) {
	if !reg.Operand() {
		err = ErrRegisterName(reg.String())
		return
	}

	n, high := reg.index()
	switch {
	case reg.Wide():
		value = state.reg[n].Get()
	case high:
		value = uint16(state.reg[n].High())
	default:
		value = uint16(state.reg[n].Low())
	}

	return
}

// Set writes the value of a register operand.
// Byte registers keep only the low 8 bits of value.
// The instruction pointer cannot be set, see ModifyIp.
func (state *State) Set(reg RegName, value uint16) (err error) {
	if reg == REG_IP {
		err = ErrOperation{Op: "set", Name: reg}
		return
	}
	if !reg.Operand() {
		err = ErrRegisterName(reg.String())
		return
	}

	n, high := reg.index()
	switch {
	case reg.Wide():
		state.reg[n].Set(value)
	case high:
		state.reg[n].SetHigh(uint8(value))
	default:
		state.reg[n].SetLow(uint8(value))
	}

	if state.Verbose {
		log.Printf("cpu: set %v = 0x%X", reg, value)
	}

	return
}

// GetRegisterValue returns the value of a register by name.
func (state *State) GetRegisterValue(name string) (value uint16, err error) {
	reg, err := ParseRegName(name)
	if err != nil {
		return
	}
	if reg == REG_IP {
		err = ErrRegisterName(name)
		return
	}

	return state.Get(reg)
}

// SetRegisterValue sets the value of a register by name.
func (state *State) SetRegisterValue(name string, value uint16) (err error) {
	reg, err := ParseRegName(name)
	if err != nil {
		return
	}

	return state.Set(reg, value)
}

// Ip returns the instruction pointer.
func (state *State) Ip() int16 {
	return state.ip
}

// ModifyIp moves the instruction pointer by delta.
// The result wraps at the 16-bit boundary.
func (state *State) ModifyIp(delta int16) {
	state.ip += delta

	if state.Verbose {
		log.Printf("cpu: ip %+d => %d", delta, state.ip)
	}
}

// Flag returns the value of a condition flag.
func (state *State) Flag(flag FlagName) (value bool, err error) {
	if !flag.Valid() {
		err = ErrFlagName(flag.String())
		return
	}

	value = state.flag[flag]
	return
}

// SetFlag sets the value of a condition flag.
func (state *State) SetFlag(flag FlagName, value bool) (err error) {
	if !flag.Valid() {
		err = ErrFlagName(flag.String())
		return
	}

	state.flag[flag] = value

	if state.Verbose {
		log.Printf("cpu: flag %v = %v", flag, value)
	}

	return
}

// FlagByName returns the value of a condition flag by name.
func (state *State) FlagByName(name string) (value bool, err error) {
	flag, err := ParseFlagName(name)
	if err != nil {
		return
	}

	return state.Flag(flag)
}

// SetFlagByName sets the value of a condition flag by name.
func (state *State) SetFlagByName(name string, value bool) (err error) {
	flag, err := ParseFlagName(name)
	if err != nil {
		return
	}

	return state.SetFlag(flag, value)
}

// Dump writes the registers, instruction pointer and flags to w.
// Registers are shown in hex and decimal, the instruction pointer in decimal.
func (state *State) Dump(w io.Writer) (err error) {
	regs := []RegName{REG_AX, REG_BX, REG_CX, REG_DX, REG_SP, REG_BP, REG_SI, REG_DI}
	for _, reg := range regs {
		val := state.reg[reg].Get()
		_, err = fmt.Fprintf(w, "%v: 0x%X (%d)\n", reg, val, val)
		if err != nil {
			return
		}
	}

	_, err = fmt.Fprintf(w, "%v: (%d)\n", REG_IP, state.ip)
	if err != nil {
		return
	}

	for flag := range FlagNames() {
		_, err = fmt.Fprintf(w, "%v: %v\n", flag, state.flag[flag])
		if err != nil {
			return
		}
	}

	return
}

// String returns the Dump output.
func (state *State) String() string {
	var text strings.Builder
	_ = state.Dump(&text)
	return text.String()
}

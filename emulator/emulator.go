// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives a processor state from symbolic operations.
package emulator

import (
	"fmt"
	"io"
	"iter"
	"log"
	"os"
	"strings"

	"github.com/ezrec/x86reg/cpu"
	"github.com/ezrec/x86reg/internal"
)

// Emulator state. Processor state + operand error policy.
type Emulator struct {
	Verbose    bool      // If set, enables verbose logging.
	KeepGoing  bool      // If set, operand errors are logged and skipped.
	*cpu.State           // Reference to the processor state.
	Output     io.Writer // Destination of script print() and dump() output.

	Faults []error // Operand errors skipped since the last Reset.
	Steps  int     // Operations applied since the last Reset.

	err error // First fatal operand error.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		State:  cpu.NewState(),
		Output: os.Stdout,
	}

	return
}

// Defines returns an iterator over the symbolic names, keyed by their
// upper case constant names.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	upper := func(name fmt.Stringer) (string, string) {
		return strings.ToUpper(name.String()), name.String()
	}

	return internal.Concat2(
		internal.Pairs(cpu.RegNames(), func(reg cpu.RegName) (string, string) { return upper(reg) }),
		internal.Pairs(cpu.FlagNames(), func(flag cpu.FlagName) (string, string) { return upper(flag) }),
	)
}

// Reset the processor state and the fault history.
func (emu *Emulator) Reset() {
	emu.State.Verbose = emu.Verbose
	emu.State.Reset()
	emu.Faults = nil
	emu.Steps = 0
	emu.err = nil
}

// fault applies the operand error policy to err raised at lineno.
// It returns nil when the error is skipped.
func (emu *Emulator) fault(lineno int, err error) error {
	if err == nil {
		return nil
	}

	rt := &ErrRuntime{LineNo: lineno, Err: err}
	if emu.KeepGoing {
		log.Printf("emulator: %v", rt)
		emu.Faults = append(emu.Faults, rt)
		return nil
	}

	if emu.err == nil {
		emu.err = rt
	}

	return rt
}

// Get reads a register operand by name.
func (emu *Emulator) Get(lineno int, name string) (value uint16, err error) {
	emu.Steps++
	value, err = emu.State.GetRegisterValue(name)
	err = emu.fault(lineno, err)
	return
}

// Set writes a register operand by name.
func (emu *Emulator) Set(lineno int, name string, value uint16) (err error) {
	emu.Steps++
	return emu.fault(lineno, emu.State.SetRegisterValue(name, value))
}

// Flag writes a condition flag by name.
func (emu *Emulator) Flag(lineno int, name string, value bool) (err error) {
	emu.Steps++
	return emu.fault(lineno, emu.State.SetFlagByName(name, value))
}

// Test reads a condition flag by name.
func (emu *Emulator) Test(lineno int, name string) (value bool, err error) {
	emu.Steps++
	value, err = emu.State.FlagByName(name)
	err = emu.fault(lineno, err)
	return
}

// Advance moves the instruction pointer by delta.
func (emu *Emulator) Advance(delta int16) {
	emu.Steps++
	emu.State.ModifyIp(delta)
}

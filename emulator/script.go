package emulator

import (
	"fmt"
	"log"
	"math"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// lineOf returns the script line that called the current builtin.
func lineOf(thread *starlark.Thread) int {
	return int(thread.CallFrame(1).Pos.Line)
}

// predeclared returns the builtins available to scripts.
func (emu *Emulator) predeclared() (pred starlark.StringDict) {
	pred = starlark.StringDict{
		"get":       starlark.NewBuiltin("get", emu.builtinGet),
		"set":       starlark.NewBuiltin("set", emu.builtinSet),
		"flag":      starlark.NewBuiltin("flag", emu.builtinFlag),
		"test":      starlark.NewBuiltin("test", emu.builtinTest),
		"ip":        starlark.NewBuiltin("ip", emu.builtinIp),
		"modify_ip": starlark.NewBuiltin("modify_ip", emu.builtinModifyIp),
		"reset":     starlark.NewBuiltin("reset", emu.builtinReset),
		"dump":      starlark.NewBuiltin("dump", emu.builtinDump),
	}

	for key, value := range emu.Defines() {
		pred[key] = starlark.String(value)
	}

	return
}

func (emu *Emulator) builtinGet(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &name); err != nil {
		return nil, err
	}

	value, err := emu.Get(lineOf(thread), name)
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt(int(value)), nil
}

func (emu *Emulator) builtinSet(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var value int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &name, &value); err != nil {
		return nil, err
	}

	if value < 0 || value > math.MaxUint16 {
		return starlark.None, emu.fault(lineOf(thread), fmt.Errorf("%w: %v", ErrValueRange, value))
	}

	if err := emu.Set(lineOf(thread), name, uint16(value)); err != nil {
		return nil, err
	}

	return starlark.None, nil
}

func (emu *Emulator) builtinFlag(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var value bool
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &name, &value); err != nil {
		return nil, err
	}

	if err := emu.Flag(lineOf(thread), name, value); err != nil {
		return nil, err
	}

	return starlark.None, nil
}

func (emu *Emulator) builtinTest(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &name); err != nil {
		return nil, err
	}

	value, err := emu.Test(lineOf(thread), name)
	if err != nil {
		return nil, err
	}

	return starlark.Bool(value), nil
}

func (emu *Emulator) builtinIp(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}

	return starlark.MakeInt(int(emu.State.Ip())), nil
}

func (emu *Emulator) builtinModifyIp(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var delta int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &delta); err != nil {
		return nil, err
	}

	if delta < math.MinInt16 || delta > math.MaxInt16 {
		return starlark.None, emu.fault(lineOf(thread), fmt.Errorf("%w: %v", ErrValueRange, delta))
	}

	emu.Advance(int16(delta))

	return starlark.None, nil
}

func (emu *Emulator) builtinReset(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}

	emu.State.Reset()

	return starlark.None, nil
}

func (emu *Emulator) builtinDump(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}

	return starlark.String(emu.State.String()), nil
}

// Run executes a script against the processor state.
// src may be a string, []byte or io.Reader; if nil, filename is read.
//
// Unless KeepGoing is set, the first operand error stops the script and
// is returned as an *ErrRuntime.
func (emu *Emulator) Run(filename string, src any) (err error) {
	emu.err = nil
	emu.State.Verbose = emu.Verbose

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if emu.Output != nil {
				fmt.Fprintln(emu.Output, msg)
			}
		},
	}

	if emu.Verbose {
		log.Printf("emulator: run %v", filename)
	}

	opts := syntax.FileOptions{}
	_, err = starlark.ExecFileOptions(&opts, thread, filename, src, emu.predeclared())
	if emu.err != nil {
		err = emu.err
	}

	return
}

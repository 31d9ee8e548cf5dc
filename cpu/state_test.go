// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var byteNames = []string{"al", "ah", "bl", "bh", "cl", "ch", "dl", "dh"}
var wordNames = []string{"ax", "bx", "cx", "dx", "si", "di", "bp", "sp"}

func TestState_New(t *testing.T) {
	assert := assert.New(t)

	state := NewState()

	for _, name := range append(wordNames, byteNames...) {
		val, err := state.GetRegisterValue(name)
		assert.NoError(err, name)
		assert.Equal(uint16(0), val, name)
	}

	for _, name := range []string{"sign", "zero"} {
		val, err := state.FlagByName(name)
		assert.NoError(err, name)
		assert.False(val, name)
	}

	assert.Equal(int16(0), state.Ip())
}

func TestState_Alias(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word string
		low  string
		high string
	}){
		{"ax", "al", "ah"},
		{"bx", "bl", "bh"},
		{"cx", "cl", "ch"},
		{"dx", "dl", "dh"},
	}

	for _, entry := range table {
		state := NewState()

		assert.NoError(state.SetRegisterValue(entry.word, 0x1234))
		val, err := state.GetRegisterValue(entry.low)
		assert.NoError(err)
		assert.Equal(uint16(0x34), val, entry.low)
		val, err = state.GetRegisterValue(entry.high)
		assert.NoError(err)
		assert.Equal(uint16(0x12), val, entry.high)

		assert.NoError(state.SetRegisterValue(entry.high, 0xab))
		val, _ = state.GetRegisterValue(entry.word)
		assert.Equal(uint16(0xab34), val, entry.word)

		assert.NoError(state.SetRegisterValue(entry.low, 0xcd))
		val, _ = state.GetRegisterValue(entry.word)
		assert.Equal(uint16(0xabcd), val, entry.word)
	}
}

func TestState_Independent(t *testing.T) {
	assert := assert.New(t)

	state := NewState()
	for n, name := range wordNames {
		assert.NoError(state.SetRegisterValue(name, uint16(0x1111*(n+1))))
	}
	for n, name := range wordNames {
		val, err := state.GetRegisterValue(name)
		assert.NoError(err)
		assert.Equal(uint16(0x1111*(n+1)), val, name)
	}
}

func TestState_Truncate(t *testing.T) {
	assert := assert.New(t)

	state := NewState()
	assert.NoError(state.SetRegisterValue("ax", 0x5600))
	assert.NoError(state.SetRegisterValue("al", 0x1ff))

	val, err := state.GetRegisterValue("al")
	assert.NoError(err)
	assert.Equal(uint16(0xff), val)

	val, err = state.GetRegisterValue("ax")
	assert.NoError(err)
	assert.Equal(uint16(0x56ff), val)

	assert.NoError(state.SetRegisterValue("ah", 0xff12))
	val, _ = state.GetRegisterValue("ax")
	assert.Equal(uint16(0x12ff), val)
}

func TestState_ByteBound(t *testing.T) {
	assert := assert.New(t)

	state := NewState()
	for _, name := range wordNames {
		assert.NoError(state.SetRegisterValue(name, 0xffff))
	}
	for _, name := range byteNames {
		val, err := state.GetRegisterValue(name)
		assert.NoError(err)
		assert.LessOrEqual(val, uint16(0xff), name)
	}
}

func TestState_Errors(t *testing.T) {
	assert := assert.New(t)

	state := NewState()

	_, err := state.GetRegisterValue("zz")
	assert.True(errors.Is(err, ErrUnknownRegister))
	assert.Equal(ErrRegisterName("zz"), err)

	_, err = state.GetRegisterValue("AX")
	assert.True(errors.Is(err, ErrUnknownRegister))

	_, err = state.GetRegisterValue("ip")
	assert.True(errors.Is(err, ErrUnknownRegister))

	err = state.SetRegisterValue("zz", 1)
	assert.True(errors.Is(err, ErrUnknownRegister))

	err = state.SetRegisterValue("ip", 5)
	assert.True(errors.Is(err, ErrInvalidOperation))
	assert.False(errors.Is(err, ErrUnknownRegister))
	assert.Equal(int16(0), state.Ip())

	err = state.SetFlagByName("carry", true)
	assert.True(errors.Is(err, ErrUnknownFlag))
	assert.Equal(ErrFlagName("carry"), err)

	_, err = state.FlagByName("carry")
	assert.True(errors.Is(err, ErrUnknownFlag))

	_, err = state.Get(RegName(42))
	assert.True(errors.Is(err, ErrUnknownRegister))

	err = state.SetFlag(FlagName(-1), true)
	assert.True(errors.Is(err, ErrUnknownFlag))
}

func TestState_Flags(t *testing.T) {
	assert := assert.New(t)

	state := NewState()

	assert.NoError(state.SetFlagByName("sign", true))
	sign, _ := state.Flag(FLAG_SIGN)
	zero, _ := state.Flag(FLAG_ZERO)
	assert.True(sign)
	assert.False(zero)

	assert.NoError(state.SetFlag(FLAG_ZERO, true))
	assert.NoError(state.SetFlag(FLAG_SIGN, false))
	sign, _ = state.FlagByName("sign")
	zero, _ = state.FlagByName("zero")
	assert.False(sign)
	assert.True(zero)
}

func TestState_ModifyIp(t *testing.T) {
	assert := assert.New(t)

	state := NewState()
	state.ModifyIp(10)
	state.ModifyIp(-3)
	assert.Equal(int16(7), state.Ip())

	state = NewState()
	state.ModifyIp(math.MaxInt16)
	state.ModifyIp(1)
	assert.Equal(int16(math.MinInt16), state.Ip())

	state.ModifyIp(-1)
	assert.Equal(int16(math.MaxInt16), state.Ip())
}

func TestState_Reset(t *testing.T) {
	assert := assert.New(t)

	state := NewState()
	assert.NoError(state.SetRegisterValue("sp", 0xfffe))
	assert.NoError(state.SetFlag(FLAG_ZERO, true))
	state.ModifyIp(0x100)

	state.Reset()
	assert.Equal(NewState(), state)
}

func TestState_Dump(t *testing.T) {
	assert := assert.New(t)

	state := NewState()
	assert.NoError(state.SetRegisterValue("ax", 0x1f))
	assert.NoError(state.SetRegisterValue("bh", 0x12))
	assert.NoError(state.SetRegisterValue("sp", 0xfffe))
	assert.NoError(state.SetFlag(FLAG_SIGN, true))
	state.ModifyIp(-2)

	expect := strings.Join([]string{
		"ax: 0x1F (31)",
		"bx: 0x1200 (4608)",
		"cx: 0x0 (0)",
		"dx: 0x0 (0)",
		"sp: 0xFFFE (65534)",
		"bp: 0x0 (0)",
		"si: 0x0 (0)",
		"di: 0x0 (0)",
		"ip: (-2)",
		"sign: true",
		"zero: false",
		"",
	}, "\n")

	var buff bytes.Buffer
	assert.NoError(state.Dump(&buff))
	assert.Equal(expect, buff.String())
	assert.Equal(expect, state.String())
}

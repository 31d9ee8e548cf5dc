package cpu

import (
	"errors"

	"github.com/ezrec/x86reg/translate"
)

var f = translate.From

var (
	ErrUnknownRegister  = errors.New(f("unknown register"))
	ErrUnknownFlag      = errors.New(f("unknown flag"))
	ErrInvalidOperation = errors.New(f("invalid operation"))
)

// ErrRegisterName is a register name outside of the closed register set.
type ErrRegisterName string

func (err ErrRegisterName) Error() string {
	return f("register '%v' unknown", string(err))
}

func (err ErrRegisterName) Unwrap() error {
	return ErrUnknownRegister
}

// ErrFlagName is a flag name outside of the closed flag set.
type ErrFlagName string

func (err ErrFlagName) Error() string {
	return f("flag '%v' unknown", string(err))
}

func (err ErrFlagName) Unwrap() error {
	return ErrUnknownFlag
}

// ErrOperation is an operation the named register does not permit.
type ErrOperation struct {
	Op   string
	Name RegName
}

func (err ErrOperation) Error() string {
	return f("%v %v not permitted", err.Op, err.Name.String())
}

func (err ErrOperation) Unwrap() error {
	return ErrInvalidOperation
}

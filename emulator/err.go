package emulator

import (
	"errors"

	"github.com/sanzaru/ibm-1401/cpu"
	"github.com/sanzaru/ibm-1401/translate"
)

var f = translate.From

var (
	ErrHopperEmpty = errors.New(f("card reader hopper empty"))
	ErrTickLimit   = errors.New(f("tick limit reached"))
)

// ErrRuntime indicates the instruction address of a runtime error.
type ErrRuntime struct {
	Address cpu.Address
	Err     error
}

func (err *ErrRuntime) Error() string {
	return f("address %v (%04d) %v", err.Address, err.Address.IntValue(), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

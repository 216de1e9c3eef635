package cpu

import (
	"errors"

	"github.com/sanzaru/ibm-1401/bcd"
	"github.com/sanzaru/ibm-1401/translate"
)

var f = translate.From

var (
	ErrUnimplemented = errors.New(f("instruction not implemented or unknown"))
	ErrPrinter       = errors.New(f("printer"))
)

// ErrStopCondition stops the run for the instruction in the I register.
type ErrStopCondition struct {
	Opcode bcd.Word
	Err    error
}

func (err *ErrStopCondition) Error() string {
	return f("stop condition: op %v (%v): %v", err.Opcode, err.Opcode.BinaryString(), err.Err)
}

func (err *ErrStopCondition) Unwrap() error {
	return err.Err
}

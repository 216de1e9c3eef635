package bcd

import (
	"github.com/sanzaru/ibm-1401/translate"
)

var f = translate.From

// ErrUnknownChar is returned when a character has no 1401 encoding.
type ErrUnknownChar struct {
	Char rune
	Pos  int
}

func (err *ErrUnknownChar) Error() string {
	return f("character %q at %d has no BCD code", err.Char, err.Pos)
}

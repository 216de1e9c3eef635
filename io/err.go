package io

import (
	"errors"

	"github.com/sanzaru/ibm-1401/translate"
)

var f = translate.From

var (
	ErrPrinterOffline = errors.New(f("printer offline"))
	ErrCardWidth      = errors.New(f("card width must be 80 or 51"))
)

// ErrCard indicates the card of a deck that could not be punched.
type ErrCard struct {
	Card int
	Err  error
}

func (err *ErrCard) Error() string {
	return f("card %d: %v", err.Card, err.Err)
}

func (err *ErrCard) Unwrap() error {
	return err.Err
}

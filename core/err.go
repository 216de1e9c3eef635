package core

import (
	"github.com/sanzaru/ibm-1401/translate"
)

var f = translate.From

// ErrSize is returned for an unsupported storage capacity.
type ErrSize string

func (err ErrSize) Error() string {
	return f("storage size '%v' not supported", string(err))
}

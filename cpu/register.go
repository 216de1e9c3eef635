package cpu

import (
	"github.com/sanzaru/ibm-1401/bcd"
)

// Register is a single character register.
type Register struct {
	value         bcd.Word
	validityCheck bool // Also check the character against the table.
	needCheck     bool // Set whenever the value was touched and not yet verified.
}

// NewRegister creates a register. With validityCheck set, Valid also
// requires a known character.
func NewRegister(validityCheck bool) Register {
	return Register{validityCheck: validityCheck}
}

// Get returns the register value.
func (reg *Register) Get() bcd.Word {
	reg.needCheck = true
	return reg.value
}

// Set replaces the register value.
func (reg *Register) Set(value bcd.Word) {
	reg.value = value
	reg.needCheck = true
}

// SetWordMark sets the word mark of the held character.
func (reg *Register) SetWordMark() {
	reg.value.SetWordMark()
}

// ClearWordMark clears the word mark of the held character.
func (reg *Register) ClearWordMark() {
	reg.value.ClearWordMark()
}

// NeedCheck reports whether the value has not been verified since it was
// last touched.
func (reg *Register) NeedCheck() bool {
	return reg.needCheck
}

// Verify runs Valid and clears the need-check flag.
func (reg *Register) Verify() (ok bool) {
	ok = reg.Valid()
	reg.needCheck = false
	return
}

// Valid checks the parity, and the character if requested.
func (reg *Register) Valid() bool {
	if reg.validityCheck {
		return reg.value.ParityCheck() && reg.value.Valid()
	}
	return reg.value.ParityCheck()
}

// IsDecimal returns true if the held character has no zone bits.
func (reg *Register) IsDecimal() bool {
	return reg.value&bcd.ZONE_MASK == 0
}

// Registers is the register file of the processing unit.
type Registers struct {
	A Register // A character register.
	B Register // B character register.
	I Register // Instruction (op code) register.

	AddrA Address // A-address register.
	AddrB Address // B-address register.
	AddrI Address // I-address register, the next instruction character.
	AddrS Address // Storage address register (STAR).
}

// NewRegisters returns a register file with every address at "000".
func NewRegisters() Registers {
	return Registers{
		A:     NewRegister(false),
		B:     NewRegister(false),
		I:     NewRegister(true),
		AddrA: ADDRESS_ZERO,
		AddrB: ADDRESS_ZERO,
		AddrI: ADDRESS_ZERO,
		AddrS: ADDRESS_ZERO,
	}
}

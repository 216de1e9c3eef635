package bcd

import (
	"fmt"
	"math/bits"
)

// Word is a single storage position.
type Word uint8

const (
	WORD_MARK  = Word(0b1000_0000) // Word mark (WM)
	CHECK_BIT  = Word(0b0100_0000) // Check bit (C)
	ZONE_B     = Word(0b0010_0000) // Zone bit B, also the sign
	ZONE_A     = Word(0b0001_0000) // Zone bit A
	ZONE_MASK  = ZONE_B | ZONE_A
	DIGIT_MASK = Word(0b0000_1111)             // 8-4-2-1
	CODE_MASK  = ZONE_MASK | DIGIT_MASK        // Character code, no WM or C.
	DATA_MASK  = CHECK_BIT | CODE_MASK         // Everything but the word mark.
	BLANK      = CHECK_BIT                     // Blank with check bit set.
	ZERO       = CHECK_BIT | Word(0b0000_1010) // Digit 0, as stored.
)

// HasWordMark returns true if the word mark bit is set.
func (w Word) HasWordMark() bool {
	return w&WORD_MARK != 0
}

// IsBlank returns true if the check bit is clear.
func (w Word) IsBlank() bool {
	return w&CHECK_BIT == 0
}

// IsNegative returns true if the B zone (sign) bit is set.
func (w Word) IsNegative() bool {
	return w&ZONE_B != 0
}

// ParityCheck returns true if bits 0..6 have odd parity.
func (w Word) ParityCheck() bool {
	return bits.OnesCount8(uint8(w&DATA_MASK))%2 == 1
}

// Valid returns true if the character code is in the encoding table.
func (w Word) Valid() bool {
	_, ok := Decode(w)
	return ok
}

// Code returns the six bit character code, without WM and C.
func (w Word) Code() Word {
	return w & CODE_MASK
}

// DropWordMark returns the word without its word mark.
func (w Word) DropWordMark() Word {
	return w & DATA_MASK
}

// Char returns the printable character of the word.
func (w Word) Char() (r rune, ok bool) {
	return Decode(w)
}

// Decoded returns the digit value of the 8-4-2-1 bits. The BCD code for
// zero (8-2) decodes to 0, as do codes that are not decimal digits.
func (w Word) Decoded() int {
	digit := int(w & DIGIT_MASK)
	if digit > 9 {
		return 0
	}
	return digit
}

// IntValue returns the signed digit value.
func (w Word) IntValue() int {
	if w.IsNegative() {
		return -w.Decoded()
	}
	return w.Decoded()
}

// IsOpCode compares the zone and digit bits with the code of r.
func (w Word) IsOpCode(r rune) bool {
	code, ok := Encode(r)
	if !ok {
		return false
	}
	return w.Code() == code.Code()
}

// SetWordMark sets the word mark, keeping odd parity.
func (w *Word) SetWordMark() {
	*w |= WORD_MARK
	if !w.ParityCheck() {
		*w ^= CHECK_BIT
	}
}

// ClearWordMark clears the word mark, keeping odd parity.
func (w *Word) ClearWordMark() {
	*w &^= WORD_MARK
	if !w.ParityCheck() {
		*w ^= CHECK_BIT
	}
}

// SetCheckBit sets the check bit, then clears it again if that broke odd
// parity.
func (w *Word) SetCheckBit() {
	*w |= CHECK_BIT
	if !w.ParityCheck() {
		*w ^= CHECK_BIT
	}
}

// BinaryString returns the eight bits, WM first.
func (w Word) BinaryString() string {
	return fmt.Sprintf("%08b", uint8(w))
}

// String returns the printable character, or the octal code when the word
// has none.
func (w Word) String() string {
	if r, ok := w.Char(); ok {
		return string(r)
	}
	return fmt.Sprintf("\\%03o", uint8(w))
}

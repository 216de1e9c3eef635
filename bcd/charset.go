package bcd

import (
	"strings"
	"unicode"
)

// The 1401 character set, indexed by six bit code.
var _charset = [64]rune{
	// No zone
	' ', '1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '#', '@', ':', '>', '√',
	// A zone (0 zone)
	'¢', '/', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', '‡', ',', '%', '=', '\'', '"',
	// B zone (11 zone)
	'-', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', '!', '$', '*', ']', ';', 'Δ',
	// B and A zone (12 zone)
	'&', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', '?', '.', ')', '[', '<', 'ǂ',
}

var _encoding map[rune]Word

func init() {
	_encoding = make(map[rune]Word, len(_charset))
	for code, r := range _charset {
		_encoding[r] = withCheckBit(Word(code))
	}
}

// withCheckBit adds the check bit to a six bit code if needed for odd parity.
func withCheckBit(code Word) Word {
	w := code & CODE_MASK
	if !w.ParityCheck() {
		w |= CHECK_BIT
	}
	return w
}

// Charset returns the printable characters, in code order.
func Charset() []rune {
	return _charset[:]
}

// Encode returns the stored form (with check bit) of r.
// Lower case letters are accepted as their upper case form.
func Encode(r rune) (w Word, ok bool) {
	w, ok = _encoding[unicode.ToUpper(r)]
	return
}

// Decode returns the character for the code of w, ignoring WM and C.
func Decode(w Word) (r rune, ok bool) {
	code := int(w.Code())
	if code >= len(_charset) {
		return
	}
	return _charset[code], true
}

// EncodeString encodes every character of text.
func EncodeString(text string) (words []Word, err error) {
	words = make([]Word, 0, len(text))
	pos := 0
	for _, r := range text {
		w, ok := Encode(r)
		if !ok {
			err = &ErrUnknownChar{Char: r, Pos: pos}
			return
		}
		words = append(words, w)
		pos++
	}
	return
}

// DecodeWords decodes words into text. Undecodable words become blanks.
func DecodeWords(words []Word) string {
	var sb strings.Builder
	for _, w := range words {
		r, ok := Decode(w)
		if !ok {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

package core

import (
	"strconv"
	"strings"
)

// Size is a core storage capacity, in characters.
type Size int

//go:generate go tool stringer -linecomment -type=Size
const (
	SIZE_1400  = Size(1400)  // 1.4k
	SIZE_2000  = Size(2000)  // 2k
	SIZE_4000  = Size(4000)  // 4k
	SIZE_8000  = Size(8000)  // 8k
	SIZE_12000 = Size(12000) // 12k
	SIZE_16000 = Size(16000) // 16k
)

// Sizes lists the capacities the 1401 was sold with.
func Sizes() []Size {
	return []Size{SIZE_1400, SIZE_2000, SIZE_4000, SIZE_8000, SIZE_12000, SIZE_16000}
}

// ParseSize accepts either a character count ("4000") or a model name ("4k").
func ParseSize(text string) (size Size, err error) {
	text = strings.ToLower(strings.TrimSpace(text))
	for _, sz := range Sizes() {
		if text == sz.String() || text == strconv.Itoa(int(sz)) {
			size = sz
			return
		}
	}

	err = ErrSize(text)
	return
}

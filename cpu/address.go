package cpu

import (
	"slices"

	"github.com/sanzaru/ibm-1401/bcd"
)

const (
	ADDRESS_LIMIT = 4000 // Addresses 0..3999 fit in three characters.
)

// Address is a three character storage address, hundreds position first.
//
// The tens and units positions are plain BCD digits. Addresses of 1000 and
// up put a zone on the hundreds position: A for 1000-1999, B for 2000-2999
// and both for 3000-3999.
type Address [3]bcd.Word

// Hundreds position prefixes for each thousand, indexed by hundreds digit.
var _zonePrefix = [ADDRESS_LIMIT / 1000](struct {
	Zone  bcd.Word
	Chars []rune
}){
	{0, []rune("0123456789")},
	{bcd.ZONE_A, []rune("‡/STUVWXYZ")},
	{bcd.ZONE_B, []rune("!JKLMNOPQR")},
	{bcd.ZONE_MASK, []rune("?ABCDEFGHI")},
}

var (
	ADDRESS_ZERO  = MakeAddress(0)                           // "000"
	ADDRESS_BLANK = Address{bcd.BLANK, bcd.BLANK, bcd.BLANK} // "   "
)

func digit(value int) (w bcd.Word) {
	w, _ = bcd.Encode(rune('0' + value))
	return
}

// MakeAddress encodes value as an address. Values outside 0..3999 wrap.
func MakeAddress(value int) (addr Address) {
	value %= ADDRESS_LIMIT
	if value < 0 {
		value += ADDRESS_LIMIT
	}

	prefix := _zonePrefix[value/1000]
	addr[0], _ = bcd.Encode(prefix.Chars[(value/100)%10])
	addr[1] = digit((value / 10) % 10)
	addr[2] = digit(value % 10)

	return
}

// IntValue decodes the address.
func (addr Address) IntValue() (value int) {
	value = addr[1].Decoded()*10 + addr[2].Decoded()

	hundreds := addr[0]
	zone := hundreds & bcd.ZONE_MASK
	for block, prefix := range _zonePrefix {
		if prefix.Zone != zone {
			continue
		}
		value += block * 1000
		r, _ := hundreds.Char()
		if index := slices.Index(prefix.Chars, r); index >= 0 {
			value += index * 100
		} else {
			value += hundreds.Decoded() * 100
		}
		break
	}

	return
}

// Encoded returns the address less one, but never below zero.
func (addr Address) Encoded() int {
	return max(addr.IntValue()-1, 0)
}

// Increase steps the address up by one.
func (addr *Address) Increase() {
	*addr = MakeAddress(addr.IntValue() + 1)
}

// Decrease steps the address down by one. Below zero the address wraps.
func (addr *Address) Decrease() {
	*addr = MakeAddress(addr.IntValue() - 1)
}

// String returns the address characters.
func (addr Address) String() string {
	return bcd.DecodeWords(addr[:])
}

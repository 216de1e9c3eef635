package cpu

import (
	"fmt"

	"github.com/sanzaru/ibm-1401/bcd"
)

// Monitor is a snapshot of the processing unit registers, for display.
type Monitor struct {
	A, B, I bcd.Word

	AddrA, AddrB, AddrI, AddrS Address

	Phase          Phase
	Cycle          int
	AddressBlocked bool
	Equal          bool
}

// String returns the monitor data as text, one register per line.
func (mon Monitor) String() (text string) {
	for _, reg := range []struct {
		name  string
		value bcd.Word
	}{
		{"a", mon.A},
		{"b", mon.B},
		{"i", mon.I},
	} {
		text += fmt.Sprintf("% 6s: %03d %-4v %v\n", reg.name, uint8(reg.value), reg.value, reg.value.BinaryString())
	}

	for _, reg := range []struct {
		name  string
		value Address
	}{
		{"addr-a", mon.AddrA},
		{"addr-b", mon.AddrB},
		{"addr-i", mon.AddrI},
		{"addr-s", mon.AddrS},
	} {
		text += fmt.Sprintf("% 6s: %v %04d\n", reg.name, reg.value, reg.value.IntValue())
	}

	text += fmt.Sprintf("% 6s: %v\n", "phase", mon.Phase)
	text += fmt.Sprintf("% 6s: %d\n", "cycle", mon.Cycle)
	text += fmt.Sprintf("% 6s: %v\n", "branch", mon.AddressBlocked)
	text += fmt.Sprintf("% 6s: %v\n", "equal", mon.Equal)

	return
}

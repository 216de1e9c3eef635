package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/sanzaru/ibm-1401/bcd"
	"github.com/sanzaru/ibm-1401/core"
)

// Print line band, as machine addresses.
const (
	PRINT_START = 201 // First print position.
	PRINT_END   = 332 // Last print position.
)

var _cpu_defines = map[string]string{
	"PRINT_START":   fmt.Sprintf("%d", PRINT_START),
	"PRINT_END":     fmt.Sprintf("%d", PRINT_END),
	"ADDRESS_LIMIT": fmt.Sprintf("%d", ADDRESS_LIMIT),
}

// Printer receives the lines of the PRINT instruction.
type Printer interface {
	PrintLine(line string) error
}

// ProcessingUnit is the simulation context of the 1401 processing unit.
type ProcessingUnit struct {
	Verbose bool // Set to enable verbose logging.

	Storage   *core.Storage // Core storage.
	Registers Registers     // Register file.
	Printer   Printer       // Print line sink, may be nil.

	phase           Phase
	cycle           int
	addressBlocked  bool // Next opcode fetch comes from the A-address.
	cycleAEliminate bool // Skip the A-cycle of the instruction.
	equal           bool // Compare latch.
}

// NewProcessingUnit creates a processing unit with the given storage size.
func NewProcessingUnit(size core.Size) (pu *ProcessingUnit) {
	pu = &ProcessingUnit{
		Storage:   core.NewStorage(size),
		Registers: NewRegisters(),
	}

	return
}

// Defines for the processing unit.
func (pu *ProcessingUnit) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Phase returns the current hardware phase.
func (pu *ProcessingUnit) Phase() Phase {
	return pu.phase
}

// Cycle returns the I-phase micro-cycle counter.
func (pu *ProcessingUnit) Cycle() int {
	return pu.cycle
}

// AddressBlocked is set when the next opcode fetch is redirected to the
// A-address.
func (pu *ProcessingUnit) AddressBlocked() bool {
	return pu.addressBlocked
}

// CycleAEliminated is set while the A-cycle of the instruction is skipped.
func (pu *ProcessingUnit) CycleAEliminated() bool {
	return pu.cycleAEliminate
}

// Equal returns the compare latch.
func (pu *ProcessingUnit) Equal() bool {
	return pu.equal
}

// ResetRegisters clears the registers and the sequencing state.
func (pu *ProcessingUnit) ResetRegisters() {
	pu.Registers = NewRegisters()
	pu.phase = PHASE_I
	pu.cycle = 0
	pu.addressBlocked = false
	pu.cycleAEliminate = false
	pu.equal = false
}

// Reset stops execution, and clears registers and storage.
func (pu *ProcessingUnit) Reset() {
	if pu.Verbose {
		log.Printf("cpu: reset")
	}

	pu.ResetRegisters()
	pu.Storage.Reset()
}

// Load copies words into storage from position 0, and sets a word mark at
// position 0.
func (pu *ProcessingUnit) Load(words []bcd.Word) (count int) {
	count = pu.Storage.Load(0, words)
	pu.Storage.SetWordMark(0)

	if pu.Verbose {
		log.Printf("cpu: loaded %d of %d positions", count, len(words))
	}

	return
}

// Step runs one hardware cycle. In the I-phase that is one micro-cycle of
// the instruction fetch, in the E-phase the whole instruction.
func (pu *ProcessingUnit) Step() (sig Signal, err error) {
	pu.Storage.Verbose = pu.Verbose

	switch pu.phase {
	case PHASE_E:
		sig, err = pu.execute()
	default:
		sig = pu.fetch()
	}

	return
}

// Monitor returns a snapshot of the registers.
func (pu *ProcessingUnit) Monitor() (mon Monitor) {
	regs := &pu.Registers
	mon = Monitor{
		A:              regs.A.value,
		B:              regs.B.value,
		I:              regs.I.value,
		AddrA:          regs.AddrA,
		AddrB:          regs.AddrB,
		AddrI:          regs.AddrI,
		AddrS:          regs.AddrS,
		Phase:          pu.phase,
		Cycle:          pu.cycle,
		AddressBlocked: pu.addressBlocked,
		Equal:          pu.equal,
	}

	return
}

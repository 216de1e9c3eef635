// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator assembles an IBM 1401 system: the processing unit, a
// 1402 card reader and a 1403 printer.
package emulator

import (
	"errors"
	"fmt"
	goio "io"
	"iter"
	"log"
	"maps"

	"github.com/sanzaru/ibm-1401/bcd"
	"github.com/sanzaru/ibm-1401/core"
	"github.com/sanzaru/ibm-1401/cpu"
	"github.com/sanzaru/ibm-1401/deck"
	"github.com/sanzaru/ibm-1401/internal"
	"github.com/sanzaru/ibm-1401/io"
)

const (
	DEFAULT_SIZE = core.SIZE_4000 // Default core storage size.
)

// HELLO_WORLD is a single card program that prints HELLO WORLD and halts.
const HELLO_WORLD = ",008015,201022,029036,043047,051055,062063,067/332/299M0772112.047HELLO WORLD"

var _emulator_defines = map[string]string{
	"DEFAULT_SIZE": fmt.Sprintf("%d", int(DEFAULT_SIZE)),
}

// Emulator state. Processing unit + card reader + printer.
type Emulator struct {
	Verbose             bool // If set, enables verbose logging.
	*cpu.ProcessingUnit      // Reference to the processing unit simulation.

	Reader io.CardReader // Card reader.
	Deck   deck.Deck     // Deck preprocessor.

	printer     *io.Printer
	instruction cpu.Address // Address of the instruction being run.
	ticks       int
}

// NewEmulator creates a new emulator with the given core storage size.
func NewEmulator(size core.Size) (emu *Emulator) {
	emu = &Emulator{
		ProcessingUnit: cpu.NewProcessingUnit(size),
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.ProcessingUnit.Defines(),
		emu.Storage.Defines(),
		emu.Reader.Defines(),
	)
}

// SetPrinter attaches the printer. A nil printer detaches it.
func (emu *Emulator) SetPrinter(pr *io.Printer) {
	emu.printer = pr
	if pr == nil {
		emu.ProcessingUnit.Printer = nil
	} else {
		emu.ProcessingUnit.Printer = pr
	}
}

// LinePrinter returns the attached printer.
func (emu *Emulator) LinePrinter() *io.Printer {
	return emu.printer
}

// Close the emulator, and its printer.
func (emu *Emulator) Close() (err error) {
	if emu.printer != nil {
		err = emu.printer.Close()
		emu.SetPrinter(nil)
	}

	return
}

// Reset the machine: registers, storage, and card reader.
func (emu *Emulator) Reset() {
	emu.ProcessingUnit.Verbose = emu.Verbose
	emu.ProcessingUnit.Reset()
	emu.Reader.Rewind()
	emu.instruction = cpu.ADDRESS_ZERO
	emu.ticks = 0
}

// LoadDeck places a deck in the card reader, and reads the first card into
// storage. Text decks are preprocessed first.
func (emu *Emulator) LoadDeck(input goio.Reader) (err error) {
	var data []byte
	if emu.Reader.Raw {
		data, err = goio.ReadAll(input)
	} else {
		data, err = emu.parseDeck(input)
	}
	if err != nil {
		return
	}

	emu.Reader.Verbose = emu.Verbose
	_, err = emu.Reader.Load(data)
	if err != nil {
		return
	}

	err = emu.ReadCard()
	return
}

func (emu *Emulator) parseDeck(input goio.Reader) (data []byte, err error) {
	emu.Deck.Verbose = emu.Verbose
	for key, value := range emu.Defines() {
		emu.Deck.Predefine(key, value)
	}

	text, err := emu.Deck.Parse(input)
	if err != nil {
		return
	}

	data = []byte(text)
	return
}

// Load copies words into storage at position 0, and sets a word mark
// there.
func (emu *Emulator) Load(words []bcd.Word) {
	emu.ProcessingUnit.Load(words)
	emu.instruction = emu.Registers.AddrI
}

// ReadCard clears the registers, and reads the next card into storage.
func (emu *Emulator) ReadCard() (err error) {
	card, ok := emu.Reader.Read()
	if !ok {
		err = ErrHopperEmpty
		return
	}

	emu.ResetRegisters()
	emu.Load(card)

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.ticks
}

// Instruction returns the address of the instruction being run.
func (emu *Emulator) Instruction() cpu.Address {
	return emu.instruction
}

// Tick performs a single processing unit cycle.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set processing unit verbosity
	emu.ProcessingUnit.Verbose = emu.Verbose

	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: emu.instruction, Err: err}
		}
	}()

	if emu.Phase() == cpu.PHASE_I && emu.Cycle() == 0 {
		emu.instruction = emu.Registers.AddrI
		if emu.AddressBlocked() {
			emu.instruction = cpu.MakeAddress(emu.Registers.AddrA.Encoded())
		}
	}

	sig, err := emu.Step()
	emu.ticks++
	if err != nil {
		return
	}

	switch sig {
	case cpu.SIGNAL_HALT:
		if emu.Verbose {
			log.Printf("emulator: halt at %v after %d ticks", emu.instruction, emu.ticks)
		}
		done = true
	case cpu.SIGNAL_READ_CARD:
		err = emu.ReadCard()
	}

	return
}

// Run ticks until the machine halts or stops. With limit > 0, at most
// limit ticks are run.
func (emu *Emulator) Run(limit int) (err error) {
	for n := 0; limit <= 0 || n < limit; n++ {
		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}

	err = &ErrRuntime{Address: emu.instruction, Err: ErrTickLimit}
	return
}

// Dump writes the storage print-out.
func (emu *Emulator) Dump(w goio.Writer) error {
	return emu.Storage.Dump(w)
}

// Stopped reports whether err stopped the processing unit, rather than
// the emulator.
func Stopped(err error) bool {
	var stop *cpu.ErrStopCondition
	return errors.As(err, &stop)
}

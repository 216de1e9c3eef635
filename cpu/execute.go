package cpu

import (
	"errors"
	"log"
	"strings"

	"github.com/sanzaru/ibm-1401/bcd"
)

type handler func(pu *ProcessingUnit) (Signal, error)

// Unimplemented op codes have no handler.
var _execute = [...]handler{
	OP_SET_WORD_MARK:   (*ProcessingUnit).opSetWordMark,
	OP_CLEAR_WORD_MARK: (*ProcessingUnit).opClearWordMark,
	OP_CLEAR_STORAGE:   (*ProcessingUnit).opClearStorage,
	OP_MOVE:            (*ProcessingUnit).opMove,
	OP_MOVE_DIGIT:      (*ProcessingUnit).opMoveDigit,
	OP_MOVE_ZONE:       (*ProcessingUnit).opMoveZone,
	OP_LOAD:            (*ProcessingUnit).opLoad,
	OP_HALT:            (*ProcessingUnit).opHalt,
	OP_NO_OP:           (*ProcessingUnit).opNoOp,
	OP_PRINT:           (*ProcessingUnit).opPrint,
	OP_READ_CARD:       (*ProcessingUnit).opReadCard,
	OP_COMPARE:         (*ProcessingUnit).opCompare,
	OP_BRANCH:          nil,
	OP_STORE_A_ADDRESS: nil,
	OP_STORE_B_ADDRESS: nil,
	OP_UNKNOWN:         nil,
}

// execute runs the E-phase of the instruction in the I register, then
// returns to the opcode fetch.
func (pu *ProcessingUnit) execute() (sig Signal, err error) {
	defer func() {
		pu.phase = PHASE_I
		pu.cycle = 0
	}()

	opcode := pu.Registers.I.Get()
	op := OpcodeOf(opcode)

	if pu.Verbose {
		log.Printf("cpu: execute %v A=%v B=%v", op, pu.Registers.AddrA, pu.Registers.AddrB)
	}

	exec := _execute[op]
	if exec == nil {
		err = &ErrStopCondition{Opcode: opcode, Err: ErrUnimplemented}
		return
	}

	return exec(pu)
}

// cycleA is the general A-cycle: read the A-field character into the A
// register, and step the A-address down.
func (pu *ProcessingUnit) cycleA() (a bcd.Word) {
	regs := &pu.Registers

	addr := regs.AddrA.Encoded()
	a = pu.Storage.Get(addr, false)
	regs.B.Set(a)
	regs.A.Set(a)
	regs.AddrA.Decrease()

	return
}

// readB reads the B-field character into the B register. The position is
// left blank.
func (pu *ProcessingUnit) readB() (addr int, b bcd.Word) {
	regs := &pu.Registers

	addr = regs.AddrB.Encoded()
	b = pu.Storage.Get(addr, true)
	regs.B.Set(b)

	return
}

// markAt reads and restores the position at addr, and sets or clears its
// word mark.
func (pu *ProcessingUnit) markAt(addr int, set bool) {
	regs := &pu.Registers

	w := pu.Storage.Get(addr, true)
	pu.Storage.Set(addr, w)
	regs.B.Set(w)
	regs.A.Set(w)

	if set {
		pu.Storage.SetWordMark(addr)
	} else {
		pu.Storage.ClearWordMark(addr)
	}
}

func (pu *ProcessingUnit) opSetWordMark() (Signal, error) {
	regs := &pu.Registers

	pu.markAt(regs.AddrA.Encoded(), true)
	pu.markAt(regs.AddrB.Encoded(), true)
	regs.AddrB.Decrease()

	return SIGNAL_CONTINUE, nil
}

func (pu *ProcessingUnit) opClearWordMark() (Signal, error) {
	regs := &pu.Registers

	pu.markAt(regs.AddrA.Encoded(), false)
	pu.markAt(regs.AddrB.Encoded(), false)
	regs.AddrB.Decrease()

	return SIGNAL_CONTINUE, nil
}

// opClearStorage clears from the B-address down to the machine address at
// the start of its hundreds block, inclusive.
func (pu *ProcessingUnit) opClearStorage() (Signal, error) {
	regs := &pu.Registers

	addr := regs.AddrB.Encoded()
	end := max((regs.AddrB.IntValue()/100)*100-1, 0)
	for ; addr >= end; addr-- {
		pu.readB()
		pu.Storage.SetCheckBit(addr)
		regs.AddrB.Decrease()
	}

	pu.cycleAEliminate = false

	return SIGNAL_CONTINUE, nil
}

func (pu *ProcessingUnit) opMove() (Signal, error) {
	regs := &pu.Registers

	for {
		a := pu.cycleA()
		addr, b := pu.readB()
		if b.HasWordMark() {
			pu.Storage.SetWordMark(addr)
		}
		regs.AddrB.Decrease()
		pu.Storage.Set(addr, a&^bcd.WORD_MARK)

		if a.HasWordMark() || b.HasWordMark() {
			break
		}
	}

	return SIGNAL_CONTINUE, nil
}

// moveCombine writes the B-field character with the bits in keep taken
// from B, and the rest of the code from A.
func (pu *ProcessingUnit) moveCombine(keep bcd.Word) (Signal, error) {
	regs := &pu.Registers

	a := pu.cycleA()
	addr, b := pu.readB()

	take := (bcd.WORD_MARK | bcd.CODE_MASK) &^ keep
	w := (b & keep) | (a & take)
	w.SetCheckBit()

	regs.AddrB.Decrease()
	pu.Storage.Set(addr, w)

	return SIGNAL_CONTINUE, nil
}

func (pu *ProcessingUnit) opMoveDigit() (Signal, error) {
	return pu.moveCombine(bcd.WORD_MARK | bcd.ZONE_MASK)
}

func (pu *ProcessingUnit) opMoveZone() (Signal, error) {
	return pu.moveCombine(bcd.DIGIT_MASK)
}

func (pu *ProcessingUnit) opLoad() (Signal, error) {
	regs := &pu.Registers

	for {
		a := pu.cycleA()
		addr, _ := pu.readB()
		regs.AddrB.Decrease()
		pu.Storage.Set(addr, a&^bcd.CHECK_BIT)

		if a.HasWordMark() {
			break
		}
	}

	return SIGNAL_CONTINUE, nil
}

// opHalt stops the machine, unless the op code is a digit.
func (pu *ProcessingUnit) opHalt() (Signal, error) {
	regs := &pu.Registers

	if regs.I.IsDecimal() {
		return SIGNAL_CONTINUE, nil
	}

	pu.addressBlocked = pu.cycle == 4

	if pu.Verbose {
		log.Printf("cpu: halt at %v", regs.AddrI)
	}

	return SIGNAL_HALT, nil
}

func (pu *ProcessingUnit) opNoOp() (Signal, error) {
	return SIGNAL_CONTINUE, nil
}

// opPrint sends the print line band to the printer.
func (pu *ProcessingUnit) opPrint() (sig Signal, err error) {
	sig = SIGNAL_CONTINUE

	band := pu.Storage.Slice(PRINT_START-1, PRINT_END)
	line := strings.TrimRight(bcd.DecodeWords(band), " ")

	if pu.Verbose {
		log.Printf("cpu: print %q", line)
	}

	if pu.Printer == nil {
		return
	}

	err = pu.Printer.PrintLine(line)
	if err != nil {
		err = &ErrStopCondition{
			Opcode: pu.Registers.I.Get(),
			Err:    errors.Join(ErrPrinter, err),
		}
	}

	return
}

func (pu *ProcessingUnit) opReadCard() (Signal, error) {
	return SIGNAL_READ_CARD, nil
}

// opCompare compares the A and B fields, right to left, into the equal
// latch.
func (pu *ProcessingUnit) opCompare() (Signal, error) {
	regs := &pu.Registers

	pu.equal = true
	for {
		a := pu.cycleA()
		addr, b := pu.readB()
		pu.Storage.Set(addr, b)
		regs.AddrB.Decrease()

		if a.Code() != b.Code() {
			pu.equal = false
		}

		if a.HasWordMark() || b.HasWordMark() {
			break
		}
	}

	return SIGNAL_CONTINUE, nil
}

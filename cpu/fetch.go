package cpu

import (
	"log"

	"github.com/sanzaru/ibm-1401/bcd"
)

// enterExecute switches to the E-phase.
func (pu *ProcessingUnit) enterExecute() Signal {
	pu.phase = PHASE_E
	return SIGNAL_EXECUTE
}

// endFetch abandons the instruction; the next step fetches an opcode at
// the current position.
func (pu *ProcessingUnit) endFetch() Signal {
	pu.cycle = 0
	return SIGNAL_CONTINUE
}

// advance moves the I-address to the next position, and continues with the
// next micro-cycle.
func (pu *ProcessingUnit) advance() Signal {
	regs := &pu.Registers
	regs.AddrI = MakeAddress(regs.AddrS.IntValue() + 1)
	regs.AddrS = regs.AddrI
	pu.cycle++
	return SIGNAL_CONTINUE
}

// readNext latches STAR from the I-address and reads the character there
// into the B register. The read is restored.
func (pu *ProcessingUnit) readNext() (w bcd.Word) {
	regs := &pu.Registers
	regs.AddrS = regs.AddrI

	addr := regs.AddrS.IntValue()
	w = pu.Storage.Get(addr, true)
	pu.Storage.Set(addr, w)
	regs.B.Set(w)

	return
}

// fetch runs a single I-phase micro-cycle.
func (pu *ProcessingUnit) fetch() (sig Signal) {
	regs := &pu.Registers

	if pu.cycle == 0 {
		return pu.fetchOpcode()
	}

	op := OpcodeOf(regs.I.Get())
	w := pu.readNext()

	if pu.Verbose {
		log.Printf("cpu: %v %v cycle %d: %v (%v)", regs.AddrS, op, pu.cycle, w, w.BinaryString())
	}

	switch pu.cycle {
	case 1, 2, 3:
		if w.HasWordMark() {
			if op == OP_NO_OP && pu.cycle < 3 {
				return pu.endFetch()
			}
			return pu.enterExecute()
		}
		regs.A.Set(w)
		pos := pu.cycle - 1
		regs.AddrA[pos] = w
		if !op.SingleOperand() {
			regs.AddrB[pos] = w
		}
	case 4:
		// A stored blank carries the check bit, so test the space code.
		if op == OP_BRANCH && (w.HasWordMark() || w.Code() == 0) {
			if pu.Verbose {
				log.Printf("cpu: %v: branch without target", regs.AddrS)
			}
			return pu.endFetch()
		}
		if w.HasWordMark() {
			if op == OP_CLEAR_STORAGE {
				pu.cycleAEliminate = true
			}
			return pu.enterExecute()
		}
		regs.A.Set(w)
		regs.AddrB = ADDRESS_BLANK
		regs.AddrB[0] = w
	case 5:
		if w.HasWordMark() {
			if op == OP_BRANCH && regs.A.Get()&1 != 0 {
				pu.addressBlocked = true
			}
			return pu.enterExecute()
		}
		regs.A.Set(w)
		regs.AddrB[1] = w
	case 6:
		if w.HasWordMark() {
			return pu.enterExecute()
		}
		regs.A.Set(w)
		regs.AddrB[2] = w
	case 7:
		switch {
		case op == OP_SET_WORD_MARK:
			return pu.enterExecute()
		case op == OP_CLEAR_STORAGE:
			pu.addressBlocked = true
			pu.cycleAEliminate = true
			return pu.enterExecute()
		case w.HasWordMark():
			return pu.enterExecute()
		}
		regs.A.Set(w)
	default:
		return pu.fetchLong()
	}

	return pu.advance()
}

// fetchOpcode is micro-cycle 0: read the op code at STAR.
func (pu *ProcessingUnit) fetchOpcode() Signal {
	regs := &pu.Registers

	if pu.addressBlocked {
		target := MakeAddress(regs.AddrA.Encoded())
		regs.AddrS = target
		regs.AddrI = target
		pu.addressBlocked = false
	}

	w := pu.readNext()
	regs.I.Set(w.Code())

	if pu.Verbose {
		log.Printf("cpu: %v opcode %v (%v)", regs.AddrS, OpcodeOf(w), w.BinaryString())
	}

	return pu.advance()
}

// fetchLong is micro-cycle 8: skip over the rest of a long instruction,
// up to the next word mark.
func (pu *ProcessingUnit) fetchLong() Signal {
	regs := &pu.Registers

	for {
		w := pu.readNext()
		if w.HasWordMark() {
			break
		}
		regs.A.Set(w)
		regs.AddrI = MakeAddress(regs.AddrS.IntValue() + 1)
	}

	return SIGNAL_CONTINUE
}

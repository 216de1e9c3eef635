package cpu

import (
	"github.com/sanzaru/ibm-1401/bcd"
)

// Opcode is a processing unit operation.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_SET_WORD_MARK   = Opcode(iota) // set-word-mark
	OP_CLEAR_WORD_MARK                // clear-word-mark
	OP_CLEAR_STORAGE                  // clear-storage
	OP_MOVE                           // move
	OP_MOVE_DIGIT                     // move-digit
	OP_MOVE_ZONE                      // move-zone
	OP_LOAD                           // load
	OP_HALT                           // halt
	OP_NO_OP                          // no-op
	OP_PRINT                          // print
	OP_READ_CARD                      // read-card
	OP_COMPARE                        // compare
	OP_BRANCH                         // branch
	OP_STORE_A_ADDRESS                // store-a-address
	OP_STORE_B_ADDRESS                // store-b-address
	OP_UNKNOWN                        // unknown
)

var _opcodeChar = [...]rune{
	OP_SET_WORD_MARK:   ',',
	OP_CLEAR_WORD_MARK: ')',
	OP_CLEAR_STORAGE:   '/',
	OP_MOVE:            'M',
	OP_MOVE_DIGIT:      'D',
	OP_MOVE_ZONE:       'Y',
	OP_LOAD:            'L',
	OP_HALT:            '.',
	OP_NO_OP:           'N',
	OP_PRINT:           '2',
	OP_READ_CARD:       '1',
	OP_COMPARE:         'C',
	OP_BRANCH:          'B',
	OP_STORE_A_ADDRESS: 'Q',
	OP_STORE_B_ADDRESS: 'H',
}

// Opcodes returns all known opcodes.
func Opcodes() []Opcode {
	ops := make([]Opcode, 0, len(_opcodeChar))
	for op := range _opcodeChar {
		ops = append(ops, Opcode(op))
	}
	return ops
}

// OpcodeOf maps an instruction character to its opcode.
// Word mark and check bit are ignored.
func OpcodeOf(w bcd.Word) Opcode {
	for op, r := range _opcodeChar {
		if w.IsOpCode(r) {
			return Opcode(op)
		}
	}
	return OP_UNKNOWN
}

// Char returns the machine character of the opcode, or 0 for OP_UNKNOWN.
func (op Opcode) Char() rune {
	if op < 0 || int(op) >= len(_opcodeChar) {
		return 0
	}
	return _opcodeChar[op]
}

// Word returns the encoded opcode character.
func (op Opcode) Word() (w bcd.Word) {
	w, _ = bcd.Encode(op.Char())
	return
}

// SingleOperand is true for the opcodes that take no A-address.
func (op Opcode) SingleOperand() bool {
	switch op {
	case OP_LOAD, OP_MOVE, OP_STORE_A_ADDRESS, OP_STORE_B_ADDRESS:
		return true
	}
	return false
}

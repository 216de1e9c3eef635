// Package core implements the magnetic core storage of the 1401.
//
// Reads are destructive: unless the caller asks otherwise, reading a
// position leaves the blank character behind, and the caller is expected to
// write the value back. Word marks live in their own plane, so a plain write
// never removes one.
package core

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/sanzaru/ibm-1401/bcd"
)

const (
	DUMP_ROW   = 20  // Positions per storage print-out row.
	DUMP_BLOCK = 100 // Positions per storage print-out block.
)

// Storage is the core storage array.
//
// Addresses outside the array are not an error: reads return 0 and writes
// are dropped. Some instruction field scans depend on this.
type Storage struct {
	Verbose bool       // If set, logs every storage access.
	Cell    []bcd.Word // Storage positions.

	size Size
}

// NewStorage creates core storage of the given capacity, all blank.
func NewStorage(size Size) (st *Storage) {
	st = &Storage{
		Cell: make([]bcd.Word, int(size)),
		size: size,
	}

	st.Reset()

	return
}

// Size returns the storage capacity.
func (st *Storage) Size() Size {
	return st.size
}

// Len returns the number of storage positions.
func (st *Storage) Len() int {
	return len(st.Cell)
}

// Defines returns the storage related defines.
func (st *Storage) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"STORAGE_SIZE": fmt.Sprintf("%d", st.Len()),
	})
}

// Reset fills all of storage with blanks.
func (st *Storage) Reset() {
	for n := range st.Cell {
		st.Cell[n] = bcd.BLANK
	}
}

func (st *Storage) inside(addr int) bool {
	return addr >= 0 && addr < len(st.Cell)
}

// Get reads the word at addr. If setZero is set the position is left blank.
func (st *Storage) Get(addr int, setZero bool) (value bcd.Word) {
	if !st.inside(addr) {
		if st.Verbose {
			log.Printf("core: get %d: out of range", addr)
		}
		return
	}

	value = st.Cell[addr]
	if setZero {
		st.Cell[addr] = bcd.BLANK
	}

	if st.Verbose {
		log.Printf("core: get %04d: %v (%v)", addr, value.BinaryString(), value)
	}

	return
}

// Set writes value to addr. A word mark already at addr is kept.
func (st *Storage) Set(addr int, value bcd.Word) {
	if !st.inside(addr) {
		if st.Verbose {
			log.Printf("core: set %d: out of range", addr)
		}
		return
	}

	if st.Cell[addr].HasWordMark() {
		value |= bcd.WORD_MARK
	}
	st.Cell[addr] = value

	if st.Verbose {
		log.Printf("core: set %04d: %v (%v)", addr, value.BinaryString(), value)
	}
}

// SetWordMark sets the word mark at addr.
func (st *Storage) SetWordMark(addr int) {
	if st.inside(addr) {
		st.Cell[addr].SetWordMark()
	}
}

// ClearWordMark clears the word mark at addr.
func (st *Storage) ClearWordMark(addr int) {
	if st.inside(addr) {
		st.Cell[addr].ClearWordMark()
	}
}

// SetCheckBit sets the check bit at addr, as far as parity allows.
func (st *Storage) SetCheckBit(addr int) {
	if st.inside(addr) {
		st.Cell[addr].SetCheckBit()
	}
}

// Slice returns a copy of positions [from, to), without disturbing storage.
// The range is clipped to the array.
func (st *Storage) Slice(from, to int) (words []bcd.Word) {
	from = max(from, 0)
	to = min(to, len(st.Cell))
	if from >= to {
		return
	}

	words = make([]bcd.Word, to-from)
	copy(words, st.Cell[from:to])
	return
}

// Load writes words starting at addr, and returns the count written.
func (st *Storage) Load(addr int, words []bcd.Word) (count int) {
	for n, w := range words {
		if !st.inside(addr + n) {
			break
		}
		st.Set(addr+n, w)
		count++
	}
	return
}

// Dump writes the storage print-out: a ruler, then DUMP_ROW decimal
// values per row, with a blank line between blocks of DUMP_BLOCK.
func (st *Storage) Dump(w io.Writer) (err error) {
	header := "   "
	ruler := "   "
	for n := 1; n <= DUMP_ROW; n++ {
		header += fmt.Sprintf(" %03d", n)
		ruler += " ==="
	}
	_, err = fmt.Fprintf(w, "%v\n%v\n", header, ruler)
	if err != nil {
		return
	}

	for row := 0; row*DUMP_ROW < len(st.Cell); row++ {
		start := row * DUMP_ROW
		if start > 0 && start%DUMP_BLOCK == 0 {
			_, err = fmt.Fprintln(w)
			if err != nil {
				return
			}
		}

		line := fmt.Sprintf("%04d", start+1)
		for _, value := range st.Slice(start, start+DUMP_ROW) {
			line += fmt.Sprintf(" %03d", uint8(value))
		}

		_, err = fmt.Fprintln(w, line)
		if err != nil {
			return
		}
	}

	return
}

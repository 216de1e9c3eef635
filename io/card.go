package io

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"
	"strings"

	"github.com/sanzaru/ibm-1401/bcd"
)

// Card widths of the reader.
const (
	CARD_WIDTH_NORMAL = 80 // Standard card.
	CARD_WIDTH_STUB   = 51 // Stub card.
)

var _card_defines = map[string]string{
	"CARD_WIDTH_NORMAL": fmt.Sprintf("%d", CARD_WIDTH_NORMAL),
	"CARD_WIDTH_STUB":   fmt.Sprintf("%d", CARD_WIDTH_STUB),
}

// CardReader is the read feed of the 1402 card reader.
//
// A loaded deck is placed on top of the hopper, so it is read before any
// cards already there. Within a deck the cards are read in order.
type CardReader struct {
	Verbose bool // If set, logs cards as they are loaded and read.
	Raw     bool // If set, decks are raw storage codes, not text.
	Width   int  // Raw card width, CARD_WIDTH_NORMAL if unset.

	hopper [][]bcd.Word // Top of the hopper is last.
}

// Defines returns the card reader defines.
func (cr *CardReader) Defines() iter.Seq2[string, string] {
	return maps.All(_card_defines)
}

func (cr *CardReader) width() (width int, err error) {
	switch cr.Width {
	case 0:
		width = CARD_WIDTH_NORMAL
	case CARD_WIDTH_NORMAL, CARD_WIDTH_STUB:
		width = cr.Width
	default:
		err = ErrCardWidth
	}
	return
}

// Load places a deck on top of the hopper.
//
// Text decks have one card per line, blank lines are skipped. Raw decks are
// cut into cards of Width storage codes.
func (cr *CardReader) Load(deck []byte) (count int, err error) {
	var cards [][]bcd.Word

	if cr.Raw {
		var width int
		width, err = cr.width()
		if err != nil {
			return
		}
		for chunk := range slices.Chunk(deck, width) {
			card := make([]bcd.Word, len(chunk))
			for n, code := range chunk {
				card[n] = bcd.Word(code)
			}
			cards = append(cards, card)
		}
	} else {
		for line := range strings.Lines(string(deck)) {
			line = strings.TrimRight(line, "\r\n")
			if len(line) == 0 {
				continue
			}
			var card []bcd.Word
			card, err = bcd.EncodeString(line)
			if err != nil {
				err = &ErrCard{Card: len(cards) + 1, Err: err}
				return
			}
			cards = append(cards, card)
		}
	}

	slices.Reverse(cards)
	cr.hopper = append(cr.hopper, cards...)
	count = len(cards)

	if cr.Verbose {
		log.Printf("card: loaded %d cards, %d in hopper", count, len(cr.hopper))
	}

	return
}

// Read takes the card on top of the hopper.
func (cr *CardReader) Read() (card []bcd.Word, ok bool) {
	if len(cr.hopper) == 0 {
		return
	}

	top := len(cr.hopper) - 1
	card = cr.hopper[top]
	cr.hopper = cr.hopper[:top]
	ok = true

	if cr.Verbose {
		log.Printf("card: read %q", bcd.DecodeWords(card))
	}

	return
}

// Count returns the number of cards in the hopper.
func (cr *CardReader) Count() int {
	return len(cr.hopper)
}

// Rewind empties the hopper.
func (cr *CardReader) Rewind() {
	cr.hopper = nil
}

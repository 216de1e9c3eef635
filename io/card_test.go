package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanzaru/ibm-1401/bcd"
)

func TestCardReaderText(t *testing.T) {
	assert := assert.New(t)

	cr := &CardReader{}

	count, err := cr.Load([]byte("FIRST\r\n\nSECOND\nTHIRD"))
	assert.NoError(err)
	assert.Equal(3, count)
	assert.Equal(3, cr.Count())

	for _, want := range []string{"FIRST", "SECOND", "THIRD"} {
		card, ok := cr.Read()
		assert.True(ok)
		assert.Equal(want, bcd.DecodeWords(card))
	}

	_, ok := cr.Read()
	assert.False(ok)
	assert.Equal(0, cr.Count())
}

func TestCardReaderLastDeckFirst(t *testing.T) {
	assert := assert.New(t)

	cr := &CardReader{}

	_, err := cr.Load([]byte("A1\nA2"))
	assert.NoError(err)
	_, err = cr.Load([]byte("B1"))
	assert.NoError(err)

	var order []string
	for card, ok := cr.Read(); ok; card, ok = cr.Read() {
		order = append(order, bcd.DecodeWords(card))
	}
	assert.Equal([]string{"B1", "A1", "A2"}, order)
}

func TestCardReaderBadCard(t *testing.T) {
	assert := assert.New(t)

	cr := &CardReader{}

	count, err := cr.Load([]byte("GOOD\nBAD{\n"))
	assert.Equal(0, count)
	assert.Equal(0, cr.Count())

	var card *ErrCard
	assert.ErrorAs(err, &card)
	assert.Equal(2, card.Card)

	var char *bcd.ErrUnknownChar
	assert.ErrorAs(err, &char)
	assert.Equal('{', char.Char)
	assert.Equal(3, char.Pos)
}

func TestCardReaderRaw(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		width int
		size  int
		cards []int
	}){
		{0, 200, []int{80, 80, 40}},
		{CARD_WIDTH_NORMAL, 80, []int{80}},
		{CARD_WIDTH_STUB, 102, []int{51, 51}},
		{CARD_WIDTH_STUB, 0, nil},
	}

	for _, entry := range table {
		cr := &CardReader{Raw: true, Width: entry.width}
		deck := bytes.Repeat([]byte{0xCA}, entry.size)
		count, err := cr.Load(deck)
		assert.NoError(err)
		assert.Equal(len(entry.cards), count)

		var sizes []int
		for card, ok := cr.Read(); ok; card, ok = cr.Read() {
			sizes = append(sizes, len(card))
			assert.Equal(bcd.Word(0xCA), card[0])
		}
		assert.Equal(entry.cards, sizes, entry)
	}

	cr := &CardReader{Raw: true, Width: 72}
	_, err := cr.Load([]byte("X"))
	assert.ErrorIs(err, ErrCardWidth)
}

func TestCardReaderRewind(t *testing.T) {
	assert := assert.New(t)

	cr := &CardReader{}
	_, err := cr.Load([]byte("ONE\nTWO"))
	assert.NoError(err)

	cr.Rewind()
	assert.Equal(0, cr.Count())
	_, ok := cr.Read()
	assert.False(ok)
}

func TestCardReaderDefines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{}
	for k, v := range (&CardReader{}).Defines() {
		defines[k] = v
	}

	assert.Equal("80", defines["CARD_WIDTH_NORMAL"])
	assert.Equal("51", defines["CARD_WIDTH_STUB"])
}

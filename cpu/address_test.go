package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for value := range ADDRESS_LIMIT {
		addr := MakeAddress(value)
		assert.Equal(value, addr.IntValue(), addr.String())
	}
}

func TestAddressString(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value int
		text  string
	}){
		{0, "000"},
		{1, "001"},
		{201, "201"},
		{999, "999"},
		{1000, "‡00"},
		{1099, "‡99"},
		{1100, "/00"},
		{1200, "S00"},
		{1999, "Z99"},
		{2000, "!00"},
		{2100, "J00"},
		{2999, "R99"},
		{3000, "?00"},
		{3100, "A00"},
		{3999, "I99"},
		{4000, "000"},
		{4001, "001"},
		{-1, "I99"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, MakeAddress(entry.value).String(), entry.value)
	}
}

func TestAddressZero(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("000", ADDRESS_ZERO.String())
	assert.Equal(0, ADDRESS_ZERO.IntValue())
	assert.Equal("   ", ADDRESS_BLANK.String())
	assert.Equal(0, ADDRESS_BLANK.IntValue())

	// Digit zero is 8-2 with the check bit.
	for _, w := range ADDRESS_ZERO {
		assert.Equal(uint8(0b0100_1010), uint8(w))
	}
}

func TestAddressEncoded(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, MakeAddress(0).Encoded())
	assert.Equal(0, MakeAddress(1).Encoded())
	assert.Equal(200, MakeAddress(201).Encoded())
	assert.Equal(3998, MakeAddress(3999).Encoded())
}

func TestAddressStep(t *testing.T) {
	assert := assert.New(t)

	addr := MakeAddress(999)
	addr.Increase()
	assert.Equal(1000, addr.IntValue())
	addr.Decrease()
	addr.Decrease()
	assert.Equal(998, addr.IntValue())

	addr = MakeAddress(3999)
	addr.Increase()
	assert.Equal(0, addr.IntValue())
	addr.Decrease()
	assert.Equal(3999, addr.IntValue())
}

func FuzzAddress(f *testing.F) {
	for _, value := range []int{0, 1, 99, 100, 999, 1000, 3999, 4000, -1, -4001, 123456} {
		f.Add(value)
	}

	f.Fuzz(func(t *testing.T, value int) {
		assert := assert.New(t)

		want := ((value % ADDRESS_LIMIT) + ADDRESS_LIMIT) % ADDRESS_LIMIT
		addr := MakeAddress(value)
		assert.Equal(want, addr.IntValue())
		assert.Equal(addr, MakeAddress(addr.IntValue()))

		for _, w := range addr {
			assert.True(w.ParityCheck(), addr.String())
		}
	})
}

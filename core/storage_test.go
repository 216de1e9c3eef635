package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanzaru/ibm-1401/bcd"
)

func TestStorageSizes(t *testing.T) {
	assert := assert.New(t)

	for _, size := range Sizes() {
		st := NewStorage(size)
		assert.Equal(int(size), st.Len())
		assert.Equal(size, st.Size())
		for n := range st.Len() {
			if st.Cell[n] != bcd.BLANK {
				t.Fatalf("%v: position %d not blank", size, n)
			}
		}
	}
}

func TestParseSize(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		size Size
		ok   bool
	}){
		{"1400", SIZE_1400, true},
		{"1.4k", SIZE_1400, true},
		{"4K", SIZE_4000, true},
		{" 16000 ", SIZE_16000, true},
		{"3000", 0, false},
		{"", 0, false},
	}

	for _, entry := range table {
		size, err := ParseSize(entry.text)
		if entry.ok {
			assert.NoError(err, entry.text)
			assert.Equal(entry.size, size, entry.text)
		} else {
			assert.Error(err, entry.text)
		}
	}

	assert.Equal("Size(3)", Size(3).String())
}

func TestStorageDestructiveRead(t *testing.T) {
	assert := assert.New(t)

	st := NewStorage(SIZE_1400)
	h, _ := bcd.Encode('H')

	st.Set(10, h)
	assert.Equal(h, st.Get(10, true))
	assert.Equal(bcd.BLANK, st.Get(10, true))

	st.Set(11, h)
	assert.Equal(h, st.Get(11, false))
	assert.Equal(h, st.Get(11, false))
}

func TestStorageStickyWordMark(t *testing.T) {
	assert := assert.New(t)

	st := NewStorage(SIZE_1400)
	a, _ := bcd.Encode('A')
	b, _ := bcd.Encode('B')

	st.Set(5, a)
	st.SetWordMark(5)
	assert.True(st.Get(5, false).HasWordMark())

	st.Set(5, b)
	got := st.Get(5, false)
	assert.True(got.HasWordMark())
	assert.True(got.IsOpCode('B'))
	assert.True(got.ParityCheck())

	st.ClearWordMark(5)
	got = st.Get(5, false)
	assert.False(got.HasWordMark())
	assert.True(got.IsOpCode('B'))

	// A destructive read drops the mark with the rest of the character.
	st.SetWordMark(5)
	st.Get(5, true)
	assert.Equal(bcd.BLANK, st.Get(5, false))
}

func TestStorageOutOfRange(t *testing.T) {
	assert := assert.New(t)

	st := NewStorage(SIZE_1400)
	a, _ := bcd.Encode('A')

	assert.Equal(bcd.Word(0), st.Get(-1, true))
	assert.Equal(bcd.Word(0), st.Get(1400, true))
	assert.Equal(bcd.Word(0), st.Get(99999, false))

	st.Set(1400, a)
	st.Set(-5, a)
	st.SetWordMark(1400)
	st.ClearWordMark(-1)
	st.SetCheckBit(2000)

	assert.Equal(bcd.BLANK, st.Get(1399, false))
	assert.Equal(bcd.BLANK, st.Get(0, false))
}

func TestStorageSetCheckBit(t *testing.T) {
	assert := assert.New(t)

	st := NewStorage(SIZE_1400)
	st.Cell[3] = 0
	st.SetCheckBit(3)
	assert.Equal(bcd.BLANK, st.Get(3, false))

	st.Cell[4] = 0b0000_0001
	st.SetCheckBit(4)
	assert.Equal(bcd.Word(0b0000_0001), st.Get(4, false))
}

func TestStorageReset(t *testing.T) {
	assert := assert.New(t)

	st := NewStorage(SIZE_2000)
	words, err := bcd.EncodeString("HELLO")
	assert.NoError(err)
	assert.Equal(5, st.Load(1990, words))
	st.SetWordMark(0)

	st.Reset()
	for n := range st.Len() {
		assert.Equal(bcd.BLANK, st.Cell[n])
	}
}

func TestStorageLoadSlice(t *testing.T) {
	assert := assert.New(t)

	st := NewStorage(SIZE_1400)
	words, err := bcd.EncodeString("HELLO")
	assert.NoError(err)

	assert.Equal(5, st.Load(200, words))
	assert.Equal("HELLO", bcd.DecodeWords(st.Slice(200, 205)))
	assert.Equal(2, st.Load(1398, words))
	assert.Equal("HE", bcd.DecodeWords(st.Slice(1398, 1500)))
	assert.Nil(st.Slice(10, 10))

	// Slice never destroys.
	assert.Equal("HELLO", bcd.DecodeWords(st.Slice(200, 205)))
}

func TestStorageDump(t *testing.T) {
	assert := assert.New(t)

	st := NewStorage(SIZE_1400)
	st.Cell[0] = bcd.ZERO | bcd.WORD_MARK

	out := &bytes.Buffer{}
	assert.NoError(st.Dump(out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	// ruler + 70 rows + 13 block separators
	assert.Equal(2+70+13, len(lines))
	assert.True(strings.HasPrefix(lines[0], "    001 002"))
	assert.True(strings.HasPrefix(lines[2], "0001 202 064"))
	assert.Equal("", lines[7])
	assert.True(strings.HasPrefix(lines[8], "0101 "))
}

func TestStorageDefines(t *testing.T) {
	assert := assert.New(t)

	st := NewStorage(SIZE_4000)
	defines := map[string]string{}
	for key, value := range st.Defines() {
		defines[key] = value
	}
	assert.Equal("4000", defines["STORAGE_SIZE"])
}

package io

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	pr := &Printer{Output: buf}

	assert.NoError(pr.PrintLine("HELLO WORLD"))
	assert.NoError(pr.PrintLine(""))
	assert.Equal("HELLO WORLD\n\n", buf.String())
	assert.Equal(2, pr.Lines())

	assert.NoError(pr.Close())
	assert.ErrorIs(pr.PrintLine("LATE"), ErrPrinterOffline)
}

func TestOpenPrinterAppends(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), DEFAULT_PRINTER_FILE)

	for _, line := range []string{"ONE", "TWO"} {
		pr, err := OpenPrinter(path)
		assert.NoError(err)
		assert.NoError(pr.PrintLine(line))
		assert.NoError(pr.Close())
	}

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal("ONE\nTWO\n", string(data))
}

func TestOpenPrinterMissingDir(t *testing.T) {
	assert := assert.New(t)

	_, err := OpenPrinter(filepath.Join(t.TempDir(), "missing", DEFAULT_PRINTER_FILE))
	assert.Error(err)
}

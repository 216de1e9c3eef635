package io

import (
	"fmt"
	"io"
	"log"
	"os"
)

// DEFAULT_PRINTER_FILE is the print-out file, relative to the working
// directory.
const DEFAULT_PRINTER_FILE = "printer.out.txt"

// Printer is the 1403 line printer. Lines are appended to Output.
type Printer struct {
	Verbose bool      // If set, logs every printed line.
	Output  io.Writer // Print-out.

	lines int
}

// OpenPrinter opens a printer that appends to the file at path.
func OpenPrinter(path string) (pr *Printer, err error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}

	pr = &Printer{Output: file}
	return
}

// PrintLine prints a single line.
func (pr *Printer) PrintLine(line string) (err error) {
	if pr.Output == nil {
		err = ErrPrinterOffline
		return
	}

	_, err = fmt.Fprintln(pr.Output, line)
	if err != nil {
		return
	}

	pr.lines++

	if pr.Verbose {
		log.Printf("printer: %d: %q", pr.lines, line)
	}

	return
}

// Lines returns the number of lines printed.
func (pr *Printer) Lines() int {
	return pr.lines
}

// Close closes the print-out, if it can be closed.
func (pr *Printer) Close() (err error) {
	if closer, ok := pr.Output.(io.Closer); ok {
		err = closer.Close()
	}
	pr.Output = nil
	return
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/sanzaru/ibm-1401/emulator"
)

const PROMPT = "1401> "

var (
	ErrUnknownCommand = errors.New(f("unknown command"))
	ErrQuit           = errors.New(f("quit"))
)

// monitor is the interactive console of the emulator.
type monitor struct {
	*emulator.Emulator
	Output io.Writer // Console output.
	Limit  int       // Tick limit for 'run', 0 for none.
}

// load loads a deck file, or the hello world deck without one.
func (mon *monitor) load(path string) (err error) {
	if len(path) == 0 {
		return mon.LoadDeck(strings.NewReader(emulator.HELLO_WORLD))
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return mon.LoadDeck(inf)
}

// report prints the outcome of a tick or a run.
func (mon *monitor) report(done bool, err error) {
	switch {
	case emulator.Stopped(err):
		fmt.Fprintln(mon.Output, f("STOP CONDITION: %v", err))
	case err != nil:
		fmt.Fprintln(mon.Output, f("ERROR: %v", err))
	case done:
		fmt.Fprintln(mon.Output, f("SYSTEM HALT"))
	}
}

// Command runs a single console command.
func (mon *monitor) Command(line string) (err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	switch words[0] {
	case "quit", "q":
		fmt.Fprintln(mon.Output, f("Goodbye!"))
		err = ErrQuit
	case "load", "l":
		var path string
		if len(words) > 1 {
			path = words[1]
		}
		err = mon.load(path)
		if err == nil {
			fmt.Fprintln(mon.Output, f("Loaded, %d cards in hopper", mon.Reader.Count()))
		}
	case "dump", "d":
		err = mon.Dump(mon.Output)
	case "start", "s":
		mon.report(mon.Tick())
	case "run", "r":
		runErr := mon.Emulator.Run(mon.Limit)
		mon.report(runErr == nil, runErr)
	case "monitor", "m":
		fmt.Fprint(mon.Output, mon.Monitor())
	case "reset", "rst":
		mon.Reset()
		fmt.Fprintln(mon.Output, f("System reset"))
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, words[0])
	}

	return
}

// Console reads commands until 'quit' or the end of input. On a terminal,
// the command line can be edited.
func (mon *monitor) Console(in *os.File) (err error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return mon.Script(in)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return
	}
	defer term.Restore(fd, state)

	console := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, mon.Output}, PROMPT)
	output := mon.Output
	mon.Output = console
	defer func() { mon.Output = output }()

	for {
		var line string
		line, err = console.ReadLine()
		if err == io.EOF {
			err = nil
			return
		}
		if err != nil {
			return
		}
		if mon.done(mon.Command(line)) {
			return
		}
	}
}

// Script runs commands from a non-interactive input.
func (mon *monitor) Script(in io.Reader) (err error) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if mon.done(mon.Command(scanner.Text())) {
			return
		}
	}

	return scanner.Err()
}

// done reports command errors, and returns true on quit.
func (mon *monitor) done(err error) bool {
	if errors.Is(err, ErrQuit) {
		return true
	}
	if err != nil {
		fmt.Fprintln(mon.Output, f("Error: %v", err))
	}
	return false
}

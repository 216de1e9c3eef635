// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/sanzaru/ibm-1401/core"
	"github.com/sanzaru/ibm-1401/emulator"
	"github.com/sanzaru/ibm-1401/io"
	"github.com/sanzaru/ibm-1401/translate"
)

var f = translate.From

func main() {
	var size string
	var deck string
	var output string
	var raw bool
	var width int
	var run bool
	var limit int
	var verbose bool

	flag.StringVar(&size, "m", emulator.DEFAULT_SIZE.String(), "Core storage size (1.4k, 2k, 4k, 8k, 12k, 16k)")
	flag.StringVar(&deck, "d", "", "Card deck to load")
	flag.StringVar(&output, "o", io.DEFAULT_PRINTER_FILE, "Printer output file")
	flag.BoolVar(&raw, "raw", false, "Card deck is raw storage codes")
	flag.IntVar(&width, "w", io.CARD_WIDTH_NORMAL, "Raw card width (80 or 51)")
	flag.BoolVar(&run, "r", false, "Run the deck, do not start the monitor")
	flag.IntVar(&limit, "n", 0, "Tick limit for runs, 0 for none")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	storage, err := core.ParseSize(size)
	if err != nil {
		log.Fatalf("%v: %v", size, err)
	}

	emu := emulator.NewEmulator(storage)
	emu.Verbose = verbose
	emu.Reader.Raw = raw
	emu.Reader.Width = width
	defer emu.Close()

	printer, err := io.OpenPrinter(output)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
	printer.Verbose = verbose
	emu.SetPrinter(printer)

	mon := &monitor{
		Emulator: emu,
		Output:   os.Stdout,
		Limit:    limit,
	}

	if len(deck) != 0 {
		err = mon.load(deck)
		if err != nil {
			log.Fatalf("%v: %v", deck, err)
		}
	}

	if run {
		if len(deck) == 0 {
			err = emu.LoadDeck(strings.NewReader(emulator.HELLO_WORLD))
			if err != nil {
				log.Fatal(err)
			}
		}
		err = emu.Run(limit)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	err = mon.Console(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
}

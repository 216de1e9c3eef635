// Package deck prepares card decks for the card reader.
//
// A deck is one card per line. Besides the cards themselves a deck may
// hold comment lines starting with '*', and equates:
//
//	.equ NAME expr
//
// Anywhere on a card, $(expr) is replaced by the three character machine
// address of expr. Expressions are Starlark, evaluated with the equates and
// the machine defines in scope.
package deck

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/sanzaru/ibm-1401/cpu"
)

// Predefined deck equates
var sysEquate = map[string]string{
	"LINENO": "0",
	"CARD":   "0",
}

var _parenExpr = regexp.MustCompile(`\$\([^\$]*\)`)

// Deck is a card deck preprocessor.
type Deck struct {
	Verbose bool              // If set, verbosely logs the preprocessor actions.
	Equate  map[string]string // Map of equates.
	Cards   []string          // Cards of the last parsed deck.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate for all
// decks parsed afterwards.
func (dk *Deck) Predefine(equ string, value string) {
	if dk.predefine == nil {
		dk.predefine = map[string]string{equ: value}
	} else {
		dk.predefine[equ] = value
	}
}

// parenEval evaluates a $(...) expression.
func (dk *Deck) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range dk.Equate {
		v64, err := strconv.ParseInt(str, 0, 64)
		if err != nil {
			// Only integer equates are visible.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// address evaluates expr as a machine address.
func (dk *Deck) address(expr string) (addr cpu.Address, err error) {
	value, err := dk.parenEval(expr)
	if err != nil {
		return
	}
	if value < 0 || value >= cpu.ADDRESS_LIMIT {
		err = ErrAddressRange(value)
		return
	}
	addr = cpu.MakeAddress(value)
	return
}

// isComment is true for a '*' in column 1 followed by a blank or nothing.
// Any other '*' is card data.
func isComment(line string) bool {
	return line == "*" || strings.HasPrefix(line, "* ")
}

// parseLine handles a single deck line, returning the card text if the line
// is a card.
func (dk *Deck) parseLine(line string, lineno int) (card string, ok bool, err error) {
	dk.Equate["LINENO"] = fmt.Sprintf("%v", lineno)
	dk.Equate["CARD"] = fmt.Sprintf("%v", len(dk.Cards)+1)

	trimmed := strings.TrimSpace(line)
	if len(trimmed) == 0 || isComment(line) {
		return
	}

	// .equ CONST EXPRESSION
	words := strings.Fields(trimmed)
	if words[0] == ".equ" {
		if len(words) < 3 {
			err = ErrEquateSyntax
			return
		}
		_, dup := dk.Equate[words[1]]
		if dup {
			err = ErrEquateDuplicate
			return
		}
		var value int
		value, err = dk.parenEval(strings.Join(words[2:], " "))
		if err != nil {
			return
		}
		dk.Equate[words[1]] = fmt.Sprintf("%d", value)
		if dk.Verbose {
			log.Printf("deck: %v: .equ %v %v", lineno, words[1], value)
		}
		return
	}

	// Do $() evaluations
	card = _parenExpr.ReplaceAllStringFunc(line, func(str string) string {
		addr, _err := dk.address(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return addr.String()
	})
	if err != nil {
		return
	}

	ok = true
	return
}

// Parse parses an input stream into cards, one card per line of text.
func (dk *Deck) Parse(input io.Reader) (text string, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	dk.Cards = dk.Cards[:0]
	dk.Equate = maps.Clone(sysEquate)
	for attr, val := range dk.predefine {
		dk.Equate[attr] = val
	}

	for scanner.Scan() {
		line = strings.TrimRight(scanner.Text(), "\r")
		lineno += 1

		if dk.Verbose {
			log.Printf("deck: %v: %v\n", lineno, line)
		}

		var card string
		var ok bool
		card, ok, err = dk.parseLine(line, lineno)
		if err != nil {
			return
		}
		if ok {
			dk.Cards = append(dk.Cards, card)
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	text = strings.Join(dk.Cards, "\n")
	return
}

// Package translate formats user visible messages for the current locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("ibm1401: locale: %v", err)
	}

	var names []string
	for _, name := range locales {
		// Skip anything the matcher would choke on, like "C" or "POSIX".
		if _, err := language.Parse(name); err == nil {
			names = append(names, name)
		}
	}
	names = append(names, language.AmericanEnglish.String())

	printer = message.NewPrinter(message.MatchLanguage(names...))
}

// From formats an en-US Sprintf() style key for the active locale.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

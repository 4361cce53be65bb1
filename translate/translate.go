// Package translate renders user visible text through a locale aware
// message printer.
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
		log.Printf("rv32: locale: %v", err)
	}

	printer = NewPrinter(locales...)
}

// NewPrinter returns a printer for the best match of locales in Messages.
// With no match, messages are printed in en-US.
func NewPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	tags := append([]language.Tag{language.AmericanEnglish}, Messages.Languages()...)
	tag, _ := language.MatchStrings(language.NewMatcher(tags), locales...)

	return message.NewPrinter(tag, message.Catalog(Messages))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Package translate formats user-facing messages for the host locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback is the locale used when the host reports none.
const Fallback = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("x86reg: locale: %v", err)
	}

	printer = NewPrinter(locales...)
}

// NewPrinter returns a message printer for the best match of locales.
func NewPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{Fallback}
	}

	tag := message.MatchLanguage(locales...)
	if tag == language.Und {
		tag = language.MustParse(Fallback)
	}

	return message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

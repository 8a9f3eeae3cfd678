// Package compare checks the curated flags against the flags a locale source
// derives on its own. Differences are expected, the curated table is always
// authoritative and this is only a diagnostic.
package compare

import (
	"github.com/1f349/kbflags/flags"
	"github.com/1f349/kbflags/locale"
	"github.com/charmbracelet/log"
	"golang.org/x/text/language/display"
)

type Mismatch struct {
	Locale     locale.Locale `json:"locale"`
	Flag       locale.Flag   `json:"flag"`
	Derived    string        `json:"derived,omitempty"`
	HasDerived bool          `json:"hasDerived"`
}

// Run returns a mismatch for each locale where src disagrees with the
// curated flag or has no flag at all. A nil locales slice checks every locale.
func Run(src flags.Source, locales []locale.Locale) []Mismatch {
	if locales == nil {
		locales = locale.All()
	}
	var out []Mismatch
	for _, l := range locales {
		f := l.Flag()
		derived, ok := src.Flag(l.Tag())
		if ok && derived == string(f) {
			continue
		}
		out = append(out, Mismatch{Locale: l, Flag: f, Derived: derived, HasDerived: ok})
	}
	return out
}

// Log writes one warning for each mismatch.
func Log(l *log.Logger, ms []Mismatch) {
	for _, m := range ms {
		derived := m.Derived
		if !m.HasDerived {
			derived = "-"
		}
		l.Warn("Flag mismatch", "locale", m.Locale, "name", display.Self.Name(m.Locale.Tag()), "flag", m.Flag, "derived", derived)
	}
}

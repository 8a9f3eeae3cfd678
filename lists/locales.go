package lists

import (
	"github.com/1f349/kbflags/locale"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"sync"
)

type Entry struct {
	Value string      `json:"value"`
	Label string      `json:"label"`
	Flag  locale.Flag `json:"flag"`
}

var (
	localeOnce  sync.Once
	localeNames []Entry
)

// ListKeyboardLocale lists every keyboard locale labelled in its own language.
func ListKeyboardLocale() []Entry {
	localeOnce.Do(func() {
		all := locale.All()
		localeNames = make([]Entry, len(all))
		for i, l := range all {
			localeNames[i] = Entry{Value: l.ID(), Label: selfName(l), Flag: l.Flag()}
		}
	})
	return localeNames
}

// ListKeyboardLocaleIn lists locales labelled in the display language lang,
// a nil locales slice lists every keyboard locale. The root language or a
// language without display names labels each locale in its own language.
func ListKeyboardLocaleIn(lang language.Tag, locales []locale.Locale) []Entry {
	if locales == nil {
		locales = locale.All()
	}
	var namer display.Namer
	if !lang.IsRoot() {
		namer = display.Tags(lang)
	}
	out := make([]Entry, len(locales))
	for i, l := range locales {
		var label string
		if namer != nil {
			label = namer.Name(l.Tag())
		}
		if label == "" {
			label = selfName(l)
		}
		out[i] = Entry{Value: l.ID(), Label: label, Flag: l.Flag()}
	}
	return out
}

func selfName(l locale.Locale) string {
	if n := display.Self.Name(l.Tag()); n != "" {
		return n
	}
	return l.ID()
}

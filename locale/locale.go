// Package locale holds the closed set of keyboard locales and the curated
// flag assigned to each of them.
package locale

import (
	"encoding"
	"errors"
	"golang.org/x/text/language"
)

var ErrUnknownLocale = errors.New("unknown locale")

var (
	_ encoding.TextMarshaler   = Locale(0)
	_ encoding.TextUnmarshaler = new(Locale)
)

// Locale identifies a keyboard locale. The zero value is Albanian, values
// outside [0, count) are not members of the set.
type Locale int

const (
	Albanian Locale = iota
	Arabic
	Armenian
	Belarusian
	Bulgarian
	Catalan
	Cherokee
	Croatian
	Czech
	Danish
	Dutch
	DutchBelgium
	English
	EnglishGB
	EnglishUS
	Esperanto
	Estonian
	Faroese
	Filipino
	Finnish
	French
	FrenchBelgium
	FrenchSwitzerland
	Georgian
	German
	GermanAustria
	GermanSwitzerland
	Greek
	Hawaiian
	Hebrew
	Hungarian
	Icelandic
	Indonesian
	InariSami
	Irish
	Italian
	Kazakh
	KurdishSorani
	KurdishSoraniArabic
	KurdishSoraniPC
	Latvian
	Lithuanian
	Macedonian
	Malay
	Maltese
	Mongolian
	NorthernSami
	Norwegian
	Persian
	Polish
	Portuguese
	PortugueseBrazil
	Romanian
	Russian
	Serbian
	SerbianLatin
	Slovenian
	Slovak
	Spanish
	Swedish
	Swahili
	Turkish
	Ukrainian
	Uzbek

	count
)

type info struct {
	id  string
	tag language.Tag
}

var infos = [count]info{
	Albanian:            {"albanian", language.MustParse("sq")},
	Arabic:              {"arabic", language.MustParse("ar")},
	Armenian:            {"armenian", language.MustParse("hy")},
	Belarusian:          {"belarusian", language.MustParse("be")},
	Bulgarian:           {"bulgarian", language.MustParse("bg")},
	Catalan:             {"catalan", language.MustParse("ca")},
	Cherokee:            {"cherokee", language.MustParse("chr")},
	Croatian:            {"croatian", language.MustParse("hr")},
	Czech:               {"czech", language.MustParse("cs")},
	Danish:              {"danish", language.MustParse("da")},
	Dutch:               {"dutch", language.MustParse("nl")},
	DutchBelgium:        {"dutch_belgium", language.MustParse("nl-BE")},
	English:             {"english", language.MustParse("en")},
	EnglishGB:           {"english_gb", language.MustParse("en-GB")},
	EnglishUS:           {"english_us", language.MustParse("en-US")},
	Esperanto:           {"esperanto", language.MustParse("eo")},
	Estonian:            {"estonian", language.MustParse("et")},
	Faroese:             {"faroese", language.MustParse("fo")},
	Filipino:            {"filipino", language.MustParse("fil")},
	Finnish:             {"finnish", language.MustParse("fi")},
	French:              {"french", language.MustParse("fr")},
	FrenchBelgium:       {"french_belgium", language.MustParse("fr-BE")},
	FrenchSwitzerland:   {"french_switzerland", language.MustParse("fr-CH")},
	Georgian:            {"georgian", language.MustParse("ka")},
	German:              {"german", language.MustParse("de")},
	GermanAustria:       {"german_austria", language.MustParse("de-AT")},
	GermanSwitzerland:   {"german_switzerland", language.MustParse("de-CH")},
	Greek:               {"greek", language.MustParse("el")},
	Hawaiian:            {"hawaiian", language.MustParse("haw")},
	Hebrew:              {"hebrew", language.MustParse("he")},
	Hungarian:           {"hungarian", language.MustParse("hu")},
	Icelandic:           {"icelandic", language.MustParse("is")},
	Indonesian:          {"indonesian", language.MustParse("id")},
	InariSami:           {"inariSami", language.MustParse("smn")},
	Irish:               {"irish", language.MustParse("ga")},
	Italian:             {"italian", language.MustParse("it")},
	Kazakh:              {"kazakh", language.MustParse("kk")},
	KurdishSorani:       {"kurdish_sorani", language.MustParse("ckb")},
	KurdishSoraniArabic: {"kurdish_sorani_arabic", language.MustParse("ckb-Arab")},
	KurdishSoraniPC:     {"kurdish_sorani_pc", language.MustParse("ckb")},
	Latvian:             {"latvian", language.MustParse("lv")},
	Lithuanian:          {"lithuanian", language.MustParse("lt")},
	Macedonian:          {"macedonian", language.MustParse("mk")},
	Malay:               {"malay", language.MustParse("ms")},
	Maltese:             {"maltese", language.MustParse("mt")},
	Mongolian:           {"mongolian", language.MustParse("mn")},
	NorthernSami:        {"northernSami", language.MustParse("se")},
	Norwegian:           {"norwegian", language.MustParse("nb")},
	Persian:             {"persian", language.MustParse("fa")},
	Polish:              {"polish", language.MustParse("pl")},
	Portuguese:          {"portuguese", language.MustParse("pt-PT")},
	PortugueseBrazil:    {"portuguese_brazil", language.MustParse("pt-BR")},
	Romanian:            {"romanian", language.MustParse("ro")},
	Russian:             {"russian", language.MustParse("ru")},
	Serbian:             {"serbian", language.MustParse("sr")},
	SerbianLatin:        {"serbian_latin", language.MustParse("sr-Latn")},
	Slovenian:           {"slovenian", language.MustParse("sl")},
	Slovak:              {"slovak", language.MustParse("sk")},
	Spanish:             {"spanish", language.MustParse("es")},
	Swedish:             {"swedish", language.MustParse("sv")},
	Swahili:             {"swahili", language.MustParse("sw")},
	Turkish:             {"turkish", language.MustParse("tr")},
	Ukrainian:           {"ukrainian", language.MustParse("uk")},
	Uzbek:               {"uzbek", language.MustParse("uz")},
}

var byId = func() map[string]Locale {
	m := make(map[string]Locale, count)
	for i := range infos {
		m[infos[i].id] = Locale(i)
	}
	return m
}()

// All returns every keyboard locale in declaration order.
func All() []Locale {
	a := make([]Locale, count)
	for i := range a {
		a[i] = Locale(i)
	}
	return a
}

// Parse looks up a locale by its ID, the match is case-sensitive.
func Parse(id string) (Locale, error) {
	if l, ok := byId[id]; ok {
		return l, nil
	}
	return 0, ErrUnknownLocale
}

func (l Locale) Valid() bool { return l >= 0 && l < count }

func (l Locale) ID() string {
	if !l.Valid() {
		return ""
	}
	return infos[l].id
}

func (l Locale) String() string {
	if !l.Valid() {
		return "Locale(invalid)"
	}
	return infos[l].id
}

// Tag returns the BCP 47 tag of the language the keyboard is for. Layout
// variants of one language share a tag.
func (l Locale) Tag() language.Tag {
	if !l.Valid() {
		return language.Und
	}
	return infos[l].tag
}

func (l Locale) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, ErrUnknownLocale
	}
	return []byte(infos[l].id), nil
}

func (l *Locale) UnmarshalText(text []byte) error {
	p, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = p
	return nil
}

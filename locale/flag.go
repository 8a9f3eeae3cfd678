package locale

import (
	"fmt"
	"github.com/1f349/kbflags/flags"
)

// Flag is the short string shown for a locale: a national flag, the white
// flag placeholder or the star used for constructed languages.
type Flag string

const (
	FlagPlaceholder Flag = "\U0001F3F3️"
	FlagConstructed Flag = "⭐️"
)

type Kind int

const (
	KindInvalid Kind = iota
	KindNational
	KindPlaceholder
	KindConstructed
)

func (k Kind) String() string {
	switch k {
	case KindNational:
		return "national"
	case KindPlaceholder:
		return "placeholder"
	case KindConstructed:
		return "constructed"
	}
	return "invalid"
}

func (f Flag) Kind() Kind {
	switch f {
	case FlagPlaceholder:
		return KindPlaceholder
	case FlagConstructed:
		return KindConstructed
	}
	if _, ok := flags.ToRegion(string(f)); ok {
		return KindNational
	}
	return KindInvalid
}

// Region returns the region code of a national flag.
func (f Flag) Region() (string, bool) { return flags.ToRegion(string(f)) }

func (f Flag) String() string { return string(f) }

// flagTable is indexed by Locale, keys beyond the set or repeated keys do not
// compile and missing keys are caught by init.
var flagTable = [count]Flag{
	Albanian:            "🇦🇱",
	Arabic:              "🇦🇪",
	Armenian:            "🇦🇲",
	Belarusian:          "🇧🇾",
	Bulgarian:           "🇧🇬",
	Catalan:             "🇦🇩",
	Cherokee:            FlagPlaceholder,
	Croatian:            "🇭🇷",
	Czech:               "🇨🇿",
	Danish:              "🇩🇰",
	Dutch:               "🇳🇱",
	DutchBelgium:        "🇧🇪",
	English:             "🇺🇸",
	EnglishGB:           "🇬🇧",
	EnglishUS:           "🇺🇸",
	Esperanto:           FlagConstructed,
	Estonian:            "🇪🇪",
	Faroese:             "🇫🇴",
	Filipino:            "🇵🇭",
	Finnish:             "🇫🇮",
	French:              "🇫🇷",
	FrenchBelgium:       "🇧🇪",
	FrenchSwitzerland:   "🇨🇭",
	Georgian:            "🇬🇪",
	German:              "🇩🇪",
	GermanAustria:       "🇦🇹",
	GermanSwitzerland:   "🇨🇭",
	Greek:               "🇬🇷",
	Hawaiian:            "🇺🇸",
	Hebrew:              "🇮🇱",
	Hungarian:           "🇭🇺",
	Icelandic:           "🇮🇸",
	Indonesian:          "🇮🇩",
	InariSami:           FlagPlaceholder,
	Irish:               "🇮🇪",
	Italian:             "🇮🇹",
	Kazakh:              "🇰🇿",
	KurdishSorani:       "🇹🇯",
	KurdishSoraniArabic: "🇹🇯",
	KurdishSoraniPC:     "🇹🇯",
	Latvian:             "🇱🇻",
	Lithuanian:          "🇱🇹",
	Macedonian:          "🇲🇰",
	Malay:               "🇲🇾",
	Maltese:             "🇲🇹",
	Mongolian:           "🇲🇳",
	NorthernSami:        FlagPlaceholder,
	Norwegian:           "🇳🇴",
	Persian:             "🇮🇷",
	Polish:              "🇵🇱",
	Portuguese:          "🇵🇹",
	PortugueseBrazil:    "🇧🇷",
	Romanian:            "🇷🇴",
	Russian:             "🇷🇺",
	Serbian:             "🇷🇸",
	SerbianLatin:        "🇷🇸",
	Slovenian:           "🇸🇮",
	Slovak:              "🇸🇰",
	Spanish:             "🇪🇸",
	Swedish:             "🇸🇪",
	Swahili:             "🇰🇪",
	Turkish:             "🇹🇷",
	Ukrainian:           "🇺🇦",
	Uzbek:               "🇺🇿",
}

func init() {
	for i := range flagTable {
		if flagTable[i].Kind() == KindInvalid {
			panic(fmt.Sprintf("locale: missing or invalid flag for %s", Locale(i)))
		}
		if infos[i].id == "" {
			panic(fmt.Sprintf("locale: missing id for Locale(%d)", i))
		}
	}
}

// Flag returns the curated flag of the locale. It is empty only for values
// outside the set.
func (l Locale) Flag() Flag {
	if !l.Valid() {
		return ""
	}
	return flagTable[l]
}

func FlagFor(l Locale) Flag { return l.Flag() }

// Table returns a copy of the full locale to flag mapping.
func Table() map[Locale]Flag {
	m := make(map[Locale]Flag, count)
	for i := range flagTable {
		m[Locale(i)] = flagTable[i]
	}
	return m
}

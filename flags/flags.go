// Package flags converts between ISO 3166 region codes and regional-indicator
// flag sequences, and provides locale-derived flags for diagnostics.
package flags

import "golang.org/x/text/language"

const (
	regionalA = 0x1F1E6
	regionalZ = regionalA + 'Z' - 'A'
)

// FromRegion returns the flag for a two letter region code, the code is
// matched case-insensitively.
func FromRegion(code string) (string, bool) {
	if len(code) != 2 {
		return "", false
	}
	var r [2]rune
	for i := 0; i < 2; i++ {
		c := code[i]
		switch {
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		case c >= 'A' && c <= 'Z':
		default:
			return "", false
		}
		r[i] = regionalA + rune(c-'A')
	}
	return string(r[:]), true
}

// ToRegion decodes a pair of regional-indicator symbols to the upper case
// region code they spell.
func ToRegion(flag string) (string, bool) {
	rs := []rune(flag)
	if len(rs) != 2 {
		return "", false
	}
	var b [2]byte
	for i, r := range rs {
		if r < regionalA || r > regionalZ {
			return "", false
		}
		b[i] = byte('A' + r - regionalA)
	}
	return string(b[:]), true
}

// Source provides a flag for a language tag, if it can find one.
type Source interface {
	Flag(tag language.Tag) (string, bool)
}

type SourceFunc func(tag language.Tag) (string, bool)

func (f SourceFunc) Flag(tag language.Tag) (string, bool) { return f(tag) }

// RegionSource derives a flag from the most likely region of a tag.
type RegionSource struct {
	// MinConfidence is the lowest confidence of the region guess that is
	// still turned into a flag.
	MinConfidence language.Confidence
}

var _ Source = RegionSource{}

func NewRegionSource() RegionSource {
	return RegionSource{MinConfidence: language.Low}
}

func (s RegionSource) Flag(tag language.Tag) (string, bool) {
	region, conf := tag.Region()
	if conf < s.MinConfidence || !region.IsCountry() {
		return "", false
	}
	return FromRegion(region.String())
}

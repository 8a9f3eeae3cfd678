package locale

import "strings"

// ParseList parses locale ids separated by commas or spaces. Repeated ids
// are only returned once, in order of first appearance.
func ParseList(s string) ([]Locale, error) {
	var arr []Locale
	seen := make(map[string]struct{})
	for {
		n := strings.IndexAny(s, ", ")
		var key string
		switch n {
		case 0:
			// separator without a key, just continue
			s = s[1:]
			continue
		case -1:
			if len(s) == 0 {
				return arr, nil
			}
			key = s
			s = ""
		default:
			key = s[:n]
			s = s[n+1:]
		}

		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		l, err := Parse(key)
		if err != nil {
			return nil, err
		}
		arr = append(arr, l)
	}
}

package features

import (
	"strconv"
	"unicode"
)

var unitSeconds = map[rune]int{
	'H': 3600,
	'M': 60,
	'S': 1,
}

// DurationSeconds converts an ISO-8601-like duration token ("PT1H2M3S") to
// total seconds. The two-character prefix marker is skipped, then digit+unit
// pairs are accumulated; zero or more of the hour/minute/second components
// may appear, in any order. ok is false when the token cannot be parsed
// (unknown unit letter, non-numeric segment).
func DurationSeconds(token string) (total int, ok bool) {
	runes := []rune(token)
	if len(runes) <= 2 {
		return 0, true
	}

	var digits []rune
	for _, r := range runes[2:] {
		if !unicode.IsLetter(r) {
			digits = append(digits, r)
			continue
		}

		n, err := strconv.Atoi(string(digits))
		if err != nil {
			return 0, false
		}
		mult, known := unitSeconds[r]
		if !known {
			return 0, false
		}
		total += n * mult
		digits = nil
	}

	return total, true
}

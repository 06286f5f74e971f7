package food

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const MaxFoodNameLength = 30

// Hangul syllables, ASCII letters and digits, whitespace and -_.()
// Lone jamo runs (ㅋㅋㅋ, ㅠㅠ) and emoji fall outside the class.
var foodNamePattern = regexp.MustCompile(`^[가-힣A-Za-z0-9\s\-_.()]+$`)

// NormalizeFoodName trims the input and reports whether it is acceptable as
// a lookup key.
func NormalizeFoodName(raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return name, false
	}
	if utf8.RuneCountInString(name) > MaxFoodNameLength {
		return name, false
	}
	return name, foodNamePattern.MatchString(name)
}

package generator

import (
	"regexp"
	"unicode/utf8"
)

// Strength is a heuristic label for a generated password.
type Strength string

const (
	Weak       Strength = "Weak"
	Moderate   Strength = "Moderate"
	Strong     Strength = "Strong"
	VeryStrong Strength = "Very Strong"
)

var (
	lowercasePattern = regexp.MustCompile(`[a-z]`)
	uppercasePattern = regexp.MustCompile(`[A-Z]`)
	digitPattern     = regexp.MustCompile(`[0-9]`)
	symbolPattern    = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// Score returns the heuristic strength score of password, from 0 to 60.
// Each character class present adds 10; lengths of 12 and 16 add 10 each.
func Score(password string) int {
	score := 0
	for _, p := range []*regexp.Regexp{lowercasePattern, uppercasePattern, digitPattern, symbolPattern} {
		if p.MatchString(password) {
			score += 10
		}
	}

	n := utf8.RuneCountInString(password)
	if n >= 12 {
		score += 10
	}
	if n >= 16 {
		score += 10
	}

	return score
}

// StrengthOf labels password by its score. Only the password itself is
// inspected, not the options that produced it.
func StrengthOf(password string) Strength {
	switch score := Score(password); {
	case score >= 35:
		return VeryStrong
	case score >= 25:
		return Strong
	case score >= 15:
		return Moderate
	default:
		return Weak
	}
}

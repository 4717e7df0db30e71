package utils

import (
	"strings"
	"unicode"
)

// IsVocabWord checks that s is lowercase letters, optionally joined by single inner hyphens
// ("self-worth" passes, "-worth", "self--worth" and "Worth" do not).
func IsVocabWord(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	prevHyphen := false
	for _, r := range s {
		switch {
		case r == '-':
			if prevHyphen {
				return false
			}
			prevHyphen = true
		case unicode.IsLetter(r) && !unicode.IsUpper(r):
			prevHyphen = false
		default:
			return false
		}
	}
	return true
}

// TrimPunct strips leading and trailing runes that are neither letters nor digits.
func TrimPunct(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// LastField returns the last whitespace separated token of s, or "".
func LastField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// CountWords counts whitespace separated tokens.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

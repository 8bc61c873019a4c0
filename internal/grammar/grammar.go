// Package grammar implements the textual grammar of rendered sums.
package grammar

import (
	"strconv"
)

// IsToken reports whether s is a valid tag token:
// a letter or underscore followed by letters, digits, underscores or hyphens.
func IsToken[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	if !isTokenStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isTokenChar(s[i]) {
			return false
		}
	}
	return true
}

func isTokenStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isTokenChar(c byte) bool {
	return isTokenStart(c) || c >= '0' && c <= '9' || c == '-'
}

// ConsumeToken splits the leading token off s.
// It returns an empty token when s does not start with a token.
func ConsumeToken(s []byte) (string, []byte) {
	if len(s) == 0 || !isTokenStart(s[0]) {
		return "", s
	}
	i := 1
	for i < len(s) && isTokenChar(s[i]) {
		i++
	}
	return string(s[:i]), s[i:]
}

// TrimLeftSP trims leading spaces and tabs.
func TrimLeftSP(s []byte) []byte {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[i:]
}

func Quote(s string) string {
	return strconv.Quote(s)
}

func Unquote(s string) string {
	qs, err := strconv.Unquote(s)
	if err != nil {
		qs = s
	}
	return qs
}

// QuotedPrefix returns the quoted string at the start of s.
func QuotedPrefix(s string) (string, error) {
	return strconv.QuotedPrefix(s) //errtrace:skip
}

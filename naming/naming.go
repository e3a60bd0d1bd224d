// Package naming turns SQL identifiers into Java identifiers.
package naming

import (
	"strings"
	"unicode/utf8"
)

// ToCamelCase converts a snake_case column name to a camelCase field name.
// The first token is lowercased; every later token only gets its first
// character uppercased, so "user_ID" becomes "userID".
func ToCamelCase(snake string) string {
	parts := strings.Split(snake, "_")
	return strings.ToLower(parts[0]) + ToPascalCase(parts[1:])
}

// ToPascalCase capitalizes each token and joins them without a separator.
func ToPascalCase(tokens []string) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(capitalize(t))
	}
	return b.String()
}

// EndsWithDigit reports whether the last character of s is a decimal digit.
func EndsWithDigit(s string) bool {
	if s == "" {
		return false
	}
	last := s[len(s)-1]
	return last >= '0' && last <= '9'
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return strings.ToUpper(string(r)) + s[size:]
}

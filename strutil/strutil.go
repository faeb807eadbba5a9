// Package strutil provides small, pure string transformations.
//
// Every function is a pure function of its input: no function mutates its
// argument or touches shared state, so all of them are safe for concurrent
// use. Operations are rune-aware and act on Unicode code points, not bytes.
package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Reverse returns text with its runes in reverse order.
func Reverse(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// IsPalindrome reports whether text reads the same forwards and backwards.
// The comparison is exact: case and punctuation are significant.
func IsPalindrome(text string) bool {
	return text == Reverse(text)
}

// CountVowels returns the number of vowels (aeiou, either case) in text.
func CountVowels(text string) int {
	count := 0
	for _, r := range text {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
			count++
		}
	}
	return count
}

// RemoveDuplicates returns text with every repeated rune removed, keeping
// the first occurrence of each rune in its original position.
func RemoveDuplicates(text string) string {
	seen := make(map[rune]struct{}, len(text))
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		b.WriteRune(r)
	}
	return b.String()
}

// CamelToSnake converts a camelCase string to snake_case. An underscore is
// inserted before every uppercase rune except at the start of the string,
// then the whole result is lowercased: "HelloWorld" becomes "hello_world".
func CamelToSnake(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 4)
	for i, r := range text {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SnakeToCamel converts a snake_case string to camelCase. The first segment
// is kept verbatim; every following segment is title-cased:
// "hello_world" becomes "helloWorld".
func SnakeToCamel(text string) string {
	parts := strings.Split(text, "_")
	var b strings.Builder
	b.Grow(len(text))
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		b.WriteString(titleWord(part))
	}
	return b.String()
}

// titleWord uppercases the first rune of word and lowercases the rest.
func titleWord(word string) string {
	if word == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
}

package compactstr

import "strings"

// ToAsciiLower returns a copy of s with ASCII letters A-Z lowercased.
// Non-ASCII bytes pass through untouched, matching spec's locale-free
// "to_ascii_lowercase" rather than full Unicode case folding (locale
// awareness is explicitly out of scope).
func (s *CompactString) ToAsciiLower() CompactString {
	return New(asciiMap(s.String(), asciiToLower))
}

// ToAsciiUpper returns a copy of s with ASCII letters a-z uppercased.
func (s *CompactString) ToAsciiUpper() CompactString {
	return New(asciiMap(s.String(), asciiToUpper))
}

// ToLower returns a copy of s with full Unicode lowercasing applied,
// using the unicode tables that ship with the standard library rather
// than a locale-specific one (locale-aware folding is out of scope).
func (s *CompactString) ToLower() CompactString {
	return New(strings.ToLower(s.String()))
}

// ToUpper returns a copy of s with full Unicode uppercasing applied.
func (s *CompactString) ToUpper() CompactString {
	return New(strings.ToUpper(s.String()))
}

func asciiToLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func asciiToUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func asciiMap(s string, f func(byte) byte) string {
	b := []byte(s)
	for i, c := range b {
		b[i] = f(c)
	}
	return string(b)
}

package gen

import "github.com/lucaskalb/rapidx/seed"

// Alphabet shortcuts, kept ASCII-only to avoid multi-byte surprises when
// strings are sliced or indexed downstream.
const (
	AlphabetLower    = "abcdefghijklmnopqrstuvwxyz"
	AlphabetUpper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	AlphabetAlpha    = AlphabetLower + AlphabetUpper
	AlphabetDigits   = "0123456789"
	AlphabetAlphaNum = AlphabetAlpha + AlphabetDigits
	AlphabetASCII    = AlphabetAlphaNum + " !\"#$%&'()*+,-./:;<=>?@[\\]^_{|}~"
)

// defaultStringMax is the ceiling spec §6's gen_string uses when a caller
// doesn't bound length explicitly.
const defaultStringMax = 32

// String draws a string of length between min and max (length 0..32 if
// min == max == 0) built from alphabet's runes (AlphabetAlphaNum if
// alphabet is empty). Shrinking goes length-first, then character-first
// (spec §4.D): it is Array's shrink order specialized to runes, since
// String is implemented directly as an Array of alphabet runes mapped to
// a string.
func String(alphabet string, min, max int) Generator[string] {
	if alphabet == "" {
		alphabet = AlphabetAlphaNum
	}
	if min == 0 && max == 0 {
		max = defaultStringMax
	}
	return MapGen(Array(runeGen([]rune(alphabet)), min, max), func(rs []rune) string {
		return string(rs)
	})
}

// StringAlpha, StringAlphaNum, StringDigits, and StringASCII are String
// preconfigured with the alphabet shortcuts above.
func StringAlpha(min, max int) Generator[string]    { return String(AlphabetAlpha, min, max) }
func StringAlphaNum(min, max int) Generator[string] { return String(AlphabetAlphaNum, min, max) }
func StringDigits(min, max int) Generator[string]   { return String(AlphabetDigits, min, max) }
func StringASCII(min, max int) Generator[string]    { return String(AlphabetASCII, min, max) }

// runeGen draws uniformly from alphabet, shrinking towards alphabet[0] —
// the "tame to the simplest character" heuristic spec §4.D describes for
// string shrinking.
func runeGen(alphabet []rune) Generator[rune] {
	return From(func(_ Size, s seed.Seed) Tree[rune] {
		idx, _ := s.NextBounded(len(alphabet))
		return runeTree(alphabet, idx)
	})
}

func runeTree(alphabet []rune, idx int) Tree[rune] {
	if idx == 0 {
		return Singleton(alphabet[0])
	}
	return WithChildren(alphabet[idx], []Tree[rune]{Singleton(alphabet[0])})
}

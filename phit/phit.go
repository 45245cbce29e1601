// Package phit models udātta/anudātta accent placement from the
// Phiṭ-sūtras at a level coarse enough to support the svara stage without
// attempting full Vedic accentuation (out of scope; see the base spec's
// Non-goals on a phonetic/accent layer).
package phit

// Accent marks which syllable (by rune index into a word's vowel
// sequence, 0-based) carries udātta pitch.
type Accent struct {
	VowelIndex int
}

// Default returns the accent placement the Phiṭ-sūtras assign by default
// to a prātipadika with n vowels: the first vowel is udātta (1.1
// ādyudāttaḥ, the default rule before any more specific accent rule
// overrides it).
func Default(vowelCount int) Accent {
	if vowelCount <= 0 {
		return Accent{VowelIndex: 0}
	}
	return Accent{VowelIndex: 0}
}

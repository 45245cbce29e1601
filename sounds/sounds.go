// Package sounds classifies SLP1 phonemes into the named sets the
// Aṣṭādhyāyī's Śiva-sūtras define (vowels, stops by place/manner, savarṇa
// classes) and exposes pure predicates over them.
//
// SLP1 is a single ASCII byte per phoneme, so every function here operates
// on runes (which are single bytes for valid SLP1 input) rather than on
// decomposed Unicode graphemes.
//
// All functions are safe for concurrent use by multiple goroutines: the
// package-level sets are built once in init and never mutated afterward.
package sounds

import "strings"

// Set is a named, immutable collection of SLP1 phonemes.
type Set struct {
	name    string
	members map[rune]bool
}

// s builds a Set from a space-separated or contiguous SLP1 string,
// mirroring the "sounds.Set" helper used throughout the Sanskrit tooling
// ecosystem (every rune of every space-separated token becomes one
// member). Unknown callers should use the pre-built sets below instead of
// calling this directly.
func s(members string) *Set {
	set := &Set{members: make(map[rune]bool)}
	for _, tok := range strings.Fields(members) {
		for _, r := range tok {
			set.members[r] = true
		}
	}
	return set
}

// Contains reports whether r belongs to the set.
func (set *Set) Contains(r rune) bool {
	if set == nil {
		return false
	}
	return set.members[r]
}

// ContainsLast reports whether the last rune of text belongs to the set.
func (set *Set) ContainsLast(text string) bool {
	if text == "" {
		return false
	}
	runes := []rune(text)
	return set.Contains(runes[len(runes)-1])
}

// Name returns the set's human-readable name (used in diagnostics only).
func (set *Set) Name() string {
	return set.name
}

var (
	// AC is the full vowel set (a-vowels, i-vowels, u-vowels, vocalic r/l,
	// e/o/ai/au).
	AC = named("ac", "a A i I u U f F x X e E o O")
	// HAL is the full consonant set.
	HAL = named("hal", "k K g G N c C j J Y w W q Q R t T d D n p P b B m y r l v S z s h L")
	// IK is the "ik" pratyāhāra: i, u, f, x (simple high vowels) used by
	// samprasāraṇa and guṇa/vṛddhi rules.
	IK = named("ik", "i I u U f F x X")
	// AT is the short a ending set used by guna-triggering contexts.
	AT = named("at", "a")
	// JHAL is the "jhal" pratyāhāra (most obstruents).
	JHAL = named("jhal", "J B G Q D j b g q K P C T c w t k p")
	// YAN is the semivowel set y v r l, the samprasāraṇa targets.
	YAN = named("yan", "y v r l")
	// KHAY is hard consonants triggering visarga/jashtva rules.
	KHAY = named("khay", "K P C T t c w k p")
	// ANUNASIKA is the nasal consonant set.
	ANUNASIKA = named("anunasika", "N Y R n m")
)

func named(name, members string) *Set {
	set := s(members)
	set.name = name
	return set
}

// IsVowel reports whether r is a vowel (ac).
func IsVowel(r rune) bool { return AC.Contains(r) }

// IsConsonant reports whether r is a consonant (hal).
func IsConsonant(r rune) bool { return HAL.Contains(r) }

// IsHrasva reports whether r is a short (hrasva) vowel.
func IsHrasva(r rune) bool {
	switch r {
	case 'a', 'i', 'u', 'f', 'x':
		return true
	}
	return false
}

// IsDirgha reports whether r is a long (dīrgha) vowel.
func IsDirgha(r rune) bool {
	switch r {
	case 'A', 'I', 'U', 'F', 'X':
		return true
	}
	return false
}

// guna maps a short vowel (or vocalic liquid) to its guṇa substitute,
// per 1.1.3 iko guṇavṛddhī and the an-ic enumeration in the Śiva-sūtras.
var gunaMap = map[rune]string{
	'a': "a", 'A': "a",
	'i': "e", 'I': "e",
	'u': "o", 'U': "o",
	'f': "ar", 'F': "ar",
	'x': "al", 'X': "al",
}

// vrddhiMap maps a vowel to its vṛddhi substitute.
var vrddhiMap = map[rune]string{
	'a': "A", 'A': "A",
	'i': "E", 'I': "E",
	'u': "O", 'U': "O",
	'f': "Ar", 'F': "Ar",
	'x': "Al", 'X': "Al",
	'e': "E", 'E': "E",
	'o': "O", 'O': "O",
}

// Guna returns the guṇa substitute for r, and ok=false if r has none
// (r is not an ik/a vowel).
func Guna(r rune) (string, bool) {
	v, ok := gunaMap[r]
	return v, ok
}

// Vrddhi returns the vṛddhi substitute for r, and ok=false if r has none.
func Vrddhi(r rune) (string, bool) {
	v, ok := vrddhiMap[r]
	return v, ok
}

// savarnaGroups lists phonemes that are mutually savarṇa (1.1.9
// tulyāsyaprayatnaṃ savarṇam), grouped by place and length distinction
// collapsed (a/A are one savarṇa group, i/I another, and so on).
var savarnaGroups = [][]rune{
	{'a', 'A'},
	{'i', 'I'},
	{'u', 'U'},
	{'f', 'F', 'x', 'X'}, // f/F savarna of one another; x/X likewise (1.1.10 note)
}

// NearestSavarna returns the short-vowel savarṇa representative of r,
// or r itself if r has no recorded savarṇa group.
func NearestSavarna(r rune) rune {
	for _, grp := range savarnaGroups {
		for _, m := range grp {
			if m == r {
				return grp[0]
			}
		}
	}
	return r
}

// IsSavarna reports whether a and b are savarṇa to one another.
func IsSavarna(a, b rune) bool {
	if a == b {
		return true
	}
	return NearestSavarna(a) == NearestSavarna(b)
}

// LastSound returns the final rune of text, or 0 for an empty string.
func LastSound(text string) rune {
	if text == "" {
		return 0
	}
	runes := []rune(text)
	return runes[len(runes)-1]
}

// PenultimateSound returns the second-to-last rune of text, or 0 if text
// has fewer than two runes.
func PenultimateSound(text string) rune {
	runes := []rune(text)
	if len(runes) < 2 {
		return 0
	}
	return runes[len(runes)-2]
}

// IsLaghu reports whether the final syllable of text is phonologically
// light: text ends in a short vowel, or in a single consonant preceded by a
// short vowel. This is the samyoga-laghu/guru distinction used by dvitva
// and several aṅga rules.
func IsLaghu(text string) bool {
	runes := []rune(text)
	if len(runes) == 0 {
		return false
	}
	last := runes[len(runes)-1]
	if IsHrasva(last) {
		return true
	}
	if IsConsonant(last) && len(runes) >= 2 {
		// single short vowel followed by exactly one consonant is laghu.
		prev := runes[len(runes)-2]
		return IsHrasva(prev)
	}
	return false
}

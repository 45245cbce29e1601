// Package lingas assigns grammatical gender (liṅga) to a prātipadika, per
// the Liṅgānuśāsana's closed rule set. Only the handful of stem-final-sound
// defaults this engine's worked nominal derivations need are modeled — the
// Liṅgānuśāsana also carries many semantic (by-meaning) rules that are out
// of scope here; see DESIGN.md.
package lingas

import "github.com/ai-labs/vyakarana-go/sounds"

// Linga is one of the three grammatical genders.
type Linga int

const (
	Pum Linga = iota // masculine
	Stri             // feminine
	Napumsaka        // neuter
)

var lingaNames = map[Linga]string{
	Pum: "pum", Stri: "stri", Napumsaka: "napumsaka",
}

func (l Linga) String() string {
	if name, ok := lingaNames[l]; ok {
		return name
	}
	return "linga(?)"
}

// ForStem returns a default gender for a prātipadika ending in stemFinal,
// by the common phonological defaults (a-stems masculine, A/I-stems
// feminine). Explicit per-word exceptions are not modeled.
func ForStem(stemFinal rune) Linga {
	switch stemFinal {
	case 'A', 'I':
		return Stri
	case 'a':
		return Pum
	default:
		if sounds.IsConsonant(stemFinal) {
			return Pum
		}
		return Pum
	}
}

// Package stages implements the ordered rule-stage pipeline: each function
// here scans the Prakriyā's current term sequence, finds positions
// satisfying a structural/tag/phonological predicate, and applies the
// stage's operators under a sutra id, per §4.3 of the base spec. The
// vyakarana driver invokes these in a fixed order.
package stages

import (
	"strings"

	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/samjna"
	"github.com/ai-labs/vyakarana-go/sutra"
	"github.com/ai-labs/vyakarana-go/term"
)

// accentMarks are prosodic (udatta/anudatta/svarita) diacritics carried in
// dhatupatha citations. They have no phonemic content and are dropped
// outright; tracking Vedic accent placement itself is out of scope (the
// base spec excludes a phonetic/accent layer beyond basic linga/svara
// assignment — see §1 Non-goals and stages/svara.go).
var accentMarks = "\\^"

// itPrefixes are the two-letter it-syllables the Dhatupatha prefixes onto
// certain roots (1.3.7 cuṭū: initial cu/ṭu/ḍu consonants, before the root's
// own first phoneme, are it and carry no samjna of their own). Limited to
// the "qu"/"wu" (ḍu/ṭu) spellings the traditional citation actually uses —
// a root's own initial syllable can otherwise coincide with these letters
// (e.g. "zu\Y", ṣuÑ, genuinely begins with zu) so the list is not widened
// pragmatically the way leadingMarkers is in package samjna.
var itPrefixes = []string{"qu", "wu"}

// DhatuKarya resolves every dhatu-tagged term's citation form to its actual
// text: strips accent diacritics, strips the leading it-prefix syllable if
// present, records the seT/aniT (iṭ-augment-taking) status carried by a
// trailing '~', and runs it-saṃjña for any remaining marker consonant.
func DhatuKarya(p *prakriya.Prakriya) {
	for i, t := range p.Terms() {
		if !t.HasTag(term.Dhatu) {
			continue
		}
		resolveDhatuText(p, i, t)
	}
}

func resolveDhatuText(p *prakriya.Prakriya, i int, t *term.Term) {
	text := t.Upadesha()

	isSet := strings.Contains(text, "~")
	text = strings.Map(func(r rune) rune {
		if r == '~' || strings.ContainsRune(accentMarks, r) {
			return -1
		}
		return r
	}, text)

	for _, prefix := range itPrefixes {
		if strings.HasPrefix(text, prefix) {
			text = text[len(prefix):]
			break
		}
	}

	p.SetText(sutra.AP("1.3.7"), i, text)
	if isSet {
		p.AddTag(sutra.AP("7.2.35"), i, term.SetAgama)
	}
	samjna.ProcessDhatu(p, i, sutra.AP("1.3.3"))
}

// Package unadi attaches Uṇādipāṭha affixes: a closed, per-root list of
// irregular-looking but still rule-derived primary nominal formations
// (3.3.1 uṇādayo bahulam — "uṇādi affixes apply widely [and irregularly]").
// Dispatch is by the dhātu's upadeśa matching a fixed membership list (a
// has_u check via term.Term.HasUIn), mirroring
// how the Uṇādipāṭha itself is organized as "this affix attaches to these
// named roots" rather than by a general phonological condition.
package unadi

import (
	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/samjna"
	"github.com/ai-labs/vyakarana-go/sutra"
	"github.com/ai-labs/vyakarana-go/term"
)

// Rule is one uṇādi entry: an affix with the upadeśas it attaches to.
type Rule struct {
	Upadesha string
	Code     string
	Roots    []string // dhatu upadeshas this affix attaches to
	Tags     []term.Tag
}

// Aru forms agent nouns like "kAru" (artisan) from qukf\Y. The affix is
// cited here as the bare vowel "u" carrying an explicit ṇit tag (rather
// than a longer citation this package's samjna would have to reduce to
// that) since its only phonemic content is the "u" and nothing else in the
// upadeśa survives it-saṃjña; ṇit triggers vṛddhi of the dhātu's vowel
// (7.2.115), giving kṛ -> kAr, then + u -> kAru.
var Aru = Rule{
	Upadesha: "u",
	Code:     "1.1",
	Roots:    []string{"qukf\\Y"},
	Tags:     []term.Tag{term.Unadi, term.Ardhadhatuka, term.Nit},
}

// knownRules lists every uṇādi affix this package can attach.
var knownRules = []Rule{Aru}

// TryAttach attaches the first uṇādi rule in knownRules whose Roots list
// contains the dhātu's upadeśa, and reports whether one matched.
func TryAttach(p *prakriya.Prakriya, i int) bool {
	dhatu := p.Get(i)
	if dhatu == nil {
		return false
	}
	for _, r := range knownRules {
		if !dhatu.HasUIn(r.Roots...) {
			continue
		}
		t := term.MakeUpadesha(r.Upadesha)
		t.AddTags(r.Tags...)
		p.InsertAfter(sutra.UP(r.Code), i, t)
		samjna.Process(p, i+1, sutra.UP(r.Code))
		return true
	}
	return false
}

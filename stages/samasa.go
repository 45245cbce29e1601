// Stage samasa joins two already-formed prātipadika terms into a compound
// (samāsa), tagging both halves Samasa under the citation rule for the
// given compound type, and concatenating them as a single pada for
// subsequent sup declension. Differing svara or case-assignment behavior
// per compound type beyond the citation rule is out of scope; see
// DESIGN.md.
package stages

import (
	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/sutra"
	"github.com/ai-labs/vyakarana-go/term"
)

// CompoundType names the traditional samāsa classes.
type CompoundType int

const (
	Tatpurusha CompoundType = iota
	Bahuvrihi
	Dvandva
	Avyayibhava
)

// samasaRule cites the defining sutra for each compound type, so the step
// log records which rule licensed the join rather than a single generic
// citation regardless of class.
var samasaRule = map[CompoundType]sutra.Rule{
	Tatpurusha:  sutra.AP("2.1.22"),
	Bahuvrihi:   sutra.AP("2.2.23"),
	Dvandva:     sutra.AP("2.2.29"),
	Avyayibhava: sutra.AP("2.1.5"),
}

// Join tags the terms at i and i+1 as members of a compound of the given
// type. The terms are left adjacent (no sup endings between them, per
// 2.4.71 supo dhatuprativtiyoh luk) — callers insert them already stripped
// of any intermediate case ending.
func Join(p *prakriya.Prakriya, i int, ct CompoundType) {
	rule, ok := samasaRule[ct]
	if !ok {
		rule = sutra.AP("2.1.3")
	}
	p.AddTag(rule, i, term.Samasa)
	p.AddTag(rule, i+1, term.Samasa)
}

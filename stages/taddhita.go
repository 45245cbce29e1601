// Stage taddhita attaches secondary (taddhita) affixes to an already-formed
// prātipadika, producing a derived stem (e.g. possession, relation,
// patronymic formations). Only a small representative subset is modeled.
package stages

import (
	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/samjna"
	"github.com/ai-labs/vyakarana-go/sutra"
	"github.com/ai-labs/vyakarana-go/term"
)

// Matup is the possessive taddhita affix "matup" (5.2.94 tadasyasty asmin
// iti matup). It-saṃjña removes only its final p, so the stem reads
// "X-matu"; the u marker and the -vat alternant are not modeled.
var Matup = struct {
	Upadesha string
	Rule     sutra.Rule
}{Upadesha: "matup", Rule: sutra.AP("5.2.94")}

// AttachTaddhita appends the matup affix after the prātipadika at index i.
func AttachTaddhita(p *prakriya.Prakriya, i int) {
	t := term.MakeUpadesha(Matup.Upadesha)
	t.AddTags(term.Taddhita, term.Pratyaya)
	p.InsertAfter(Matup.Rule, i, t)
	samjna.Process(p, i+1, Matup.Rule)
}

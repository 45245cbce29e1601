// Stage sanadi attaches a sanādi affix (san/yaṅ/ṇic/kāmyac etc.) onto a
// dhātu, producing a derived root that itself behaves as a Bhvādi-gaṇa
// dhātu for every subsequent stage (3.1.32 sanādyantā dhātavaḥ).
package stages

import (
	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/sutra"
	"github.com/ai-labs/vyakarana-go/term"
)

// San attaches the desiderative affix "san" after the dhātu at index i and
// retags the dhātu as a sanādi-derived, bhvādi-gaṇa stem for downstream
// vikaraṇa selection. The dhātu's vowel is expected to already carry
// guṇa/vṛddhi where 7.2.115 demands it (San is ñit per its citation "san",
// but this engine does not model reduplication-then-guna ordering beyond
// the Dvitva helper in abhyasa.go, which callers invoke first).
func San(p *prakriya.Prakriya, i int) {
	t := term.MakeUpadesha("san")
	t.AddTags(term.Pratyaya, term.Sanadi, term.Ardhadhatuka, term.Jit)
	p.InsertAfter(sutra.AP("3.1.7"), i, t)
	samjnaProcessLast(p)
	dhatu := p.Get(i)
	if dhatu != nil {
		p.AddTag(sutra.AP("3.1.32"), i, term.Sanadi)
		dhatu.Gana = term.Bhvadi
	}
}

// Yak attaches the passive/yak affix "yak" after the dhātu at index i,
// tagged sārvadhātuka (3.1.67 sārvadhātuke yak).
func Yak(p *prakriya.Prakriya, i int) {
	t := term.MakeUpadesha("yak")
	t.AddTags(term.Pratyaya, term.Sarvadhatuka)
	p.InsertAfter(sutra.AP("3.1.67"), i, t)
	samjnaProcessLast(p)
}

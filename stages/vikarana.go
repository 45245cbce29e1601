package stages

import (
	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/samjna"
	"github.com/ai-labs/vyakarana-go/sutra"
	"github.com/ai-labs/vyakarana-go/term"
)

// vikaranaByGana maps a gana to the sārvadhātuka vikaraṇa its present stem
// inserts between dhātu and tiṅ (3.1.68 kartari śap and its sisters). Only
// the ten base-gana defaults are modeled; gana-internal exceptions are
// handled outside this table (adadi's luk-elision by isLukVikarana in
// Vikarana below, juhotyadi's reduplication by Dvitva in abhyasa.go).
var vikaranaByGana = map[term.Gana]string{
	term.Bhvadi:    "Sap",
	term.Adadi:     "Sap", // luk (zero) elision handled in Vikarana
	term.Juhotyadi: "Sap", // preceded by reduplication; see Dvitva
	term.Divadi:    "Syan",
	term.Svadi:     "Snu",
	term.Tudadi:    "Sa",
	term.Rudhadi:   "Snam",
	term.Tanadi:    "u",
	term.Kryadi:    "nA",
	term.Curadi:    "Ric",
}

// isLukVikarana reports whether gana g elides its vikaraṇa outright (2.4.72 adiprabhrtibhyah
// Sapah); the dhātu itself takes the sārvadhātuka ending directly.
func isLukVikarana(g term.Gana) bool { return g == term.Adadi }

// Vikarana inserts the sārvadhātuka vikaraṇa for the dhātu (or sanādi
// affix acting as one, per 3.1.32) at index i, assumed to be the last
// term of the aṅga so far, per the gana recorded on it.
func Vikarana(p *prakriya.Prakriya, i int) {
	dhatu := p.Get(i)
	if dhatu == nil || !(dhatu.HasTag(term.Dhatu) || dhatu.HasTag(term.Sanadi)) {
		return
	}
	if isLukVikarana(dhatu.Gana) {
		return
	}
	v, ok := vikaranaByGana[dhatu.Gana]
	if !ok {
		v = "Sap"
	}
	t := term.MakeUpadesha(v)
	t.AddTags(term.Pratyaya, term.Sarvadhatuka)
	p.InsertAfter(sutra.AP("3.1.68"), i, t)
	samjna.Process(p, i+1, sutra.AP("1.3.2"))
}

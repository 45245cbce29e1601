package stages

import (
	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/sutra"
	"github.com/ai-labs/vyakarana-go/term"
)

// tinEndings maps a (lakara, purusha, vacana) cell to its citation tin
// ending. Only laT (present indicative) parasmaipada and atmanepada rows
// are populated — the handful this engine's worked derivations need; a
// full tiṅ table has 10 lakaras x 3 purusha x 3 vacana x 2 pada cells,
// which is out of scope (see DESIGN.md).
type tinKey struct {
	Lakara   string
	Purusha  int // 3=prathama, 2=madhyama, 1=uttama
	Vacana   int // 1=eka, 2=dvi, 3=bahu
	Atmane   bool
}

var tinTable = map[tinKey]string{
	{"laT", 3, 1, false}: "tip", {"laT", 3, 2, false}: "tas", {"laT", 3, 3, false}: "Ji",
	{"laT", 2, 1, false}: "sip", {"laT", 2, 2, false}: "Tas", {"laT", 2, 3, false}: "Ta",
	{"laT", 1, 1, false}: "mip", {"laT", 1, 2, false}: "vas", {"laT", 1, 3, false}: "mas",
	{"laT", 3, 1, true}: "ta", {"laT", 3, 2, true}: "AtAm", {"laT", 3, 3, true}: "Ja",
	{"laT", 2, 1, true}: "TAs", {"laT", 2, 2, true}: "ATAm", {"laT", 2, 3, true}: "Dvam",
	{"laT", 1, 1, true}: "iw", {"laT", 1, 2, true}: "vahi", {"laT", 1, 3, true}: "mahiN",
}

// TinEnding looks up the citation tin ending for the given cell.
func TinEnding(lakara string, purusha, vacana int, atmanepada bool) (string, bool) {
	e, ok := tinTable[tinKey{lakara, purusha, vacana, atmanepada}]
	return e, ok
}

// AttachTin inserts the tin ending after the last term (the aṅga) and
// tags it Pratyaya+Tin+Sarvadhatuka (every laT ending is sārvadhātuka).
func AttachTin(p *prakriya.Prakriya, lakara string, purusha, vacana int, atmanepada bool) bool {
	u, ok := TinEnding(lakara, purusha, vacana, atmanepada)
	if !ok {
		return false
	}
	t := term.MakeUpadesha(u)
	t.AddTags(term.Pratyaya, term.Tin, term.Sarvadhatuka)
	if atmanepada {
		t.AddTag(term.Atmanepada)
	} else {
		t.AddTag(term.Parasmaipada)
	}
	p.InsertAfter(sutra.AP("3.4.78"), p.Len()-1, t)
	samjnaProcessLast(p)
	return true
}

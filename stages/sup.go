package stages

import (
	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/samjna"
	"github.com/ai-labs/vyakarana-go/sutra"
	"github.com/ai-labs/vyakarana-go/term"
)

type supKey struct {
	Vibhakti int // 1st (prathama) through 7th, 8th = sambodhana
	Vacana   int // 1=eka, 2=dvi, 3=bahu
}

// supTable holds the citation sup endings (4.1.2 svaujasamautchastabhyas...)
// for the first three vibhaktis, in all three vacanas.
// A full table spans 8 vibhaktis x 3 vacanas x multiple stem-final classes;
// this engine only covers the a-stem masculine paradigm (see DESIGN.md).
var supTable = map[supKey]string{
	{1, 1}: "sU", {1, 2}: "O", {1, 3}: "jas",
	{2, 1}: "am", {2, 2}: "ixamO", {2, 3}: "Sas",
	{3, 1}: "wA", {3, 2}: "ByAm", {3, 3}: "Bis",
}

// SupEnding looks up the citation sup ending for the given cell.
func SupEnding(vibhakti, vacana int) (string, bool) {
	e, ok := supTable[supKey{vibhakti, vacana}]
	return e, ok
}

// AttachSup inserts the sup ending after the prātipadika (stem) at index i.
func AttachSup(p *prakriya.Prakriya, i, vibhakti, vacana int) bool {
	u, ok := SupEnding(vibhakti, vacana)
	if !ok {
		return false
	}
	t := term.MakeUpadesha(u)
	t.AddTags(term.Pratyaya, term.Sup)
	p.InsertAfter(sutra.AP("4.1.2"), i, t)
	samjna.Process(p, i+1, sutra.AP("1.3.2"))
	return true
}

// Package krt attaches primary (kṛt) affixes to a dhātu, producing a
// prātipadika (nominal stem) that the sup stage can then decline. Only a
// small, representative subset of the kṛt-affix inventory is modeled — see
// DESIGN.md for the list of rules intentionally left out.
package krt

import (
	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/samjna"
	"github.com/ai-labs/vyakarana-go/sutra"
	"github.com/ai-labs/vyakarana-go/term"
)

// Affix describes one kṛt affix this package knows how to attach.
type Affix struct {
	Upadesha string
	Rule     sutra.Rule
	Artha    string // "" if the affix is not meaning-gated
	Tags     []term.Tag
}

// Kta is the past-passive-participle affix (3.2.102 niṣṭhā), kit (blocks
// guṇa on the preceding aṅga per 1.1.5), tagged Nistha.
var Kta = Affix{Upadesha: "kta", Rule: sutra.AP("3.2.102"), Tags: []term.Tag{term.Krt, term.Nistha, term.Ardhadhatuka}}

// Tavya is the gerundive affix (3.1.96 tavyattavyanlyah), ardhadhatuka.
var Tavya = Affix{Upadesha: "tavya", Rule: sutra.AP("3.1.96"), Tags: []term.Tag{term.Krt, term.Krtya, term.Ardhadhatuka}}

// Attach appends affix after the dhātu at index i, subject to an artha
// gate if the affix carries one, and runs it-saṃjña on the new term.
// Reports whether the affix was attached (false if the artha gate failed).
func Attach(p *prakriya.Prakriya, i int, affix Affix) bool {
	if affix.Artha != "" && !p.ArthaMatches(affix.Artha) {
		return false
	}
	t := term.MakeUpadesha(affix.Upadesha)
	t.AddTags(affix.Tags...)
	p.InsertAfter(affix.Rule, i, t)
	samjna.Process(p, i+1, sutra.AP("1.3.2"))
	return true
}

package stages

import (
	"github.com/ai-labs/vyakarana-go/ganapatha"
	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/sounds"
	"github.com/ai-labs/vyakarana-go/sutra"
	"github.com/ai-labs/vyakarana-go/term"
)

// blocksGunaVrddhi reports whether the affix at i is kit or ṅit, which
// blocks guṇa/vṛddhi on the preceding aṅga (1.1.5 kṅiti ca).
func blocksGunaVrddhi(t *term.Term) bool {
	return t.HasTag(term.Kit) || t.HasTag(term.Git)
}

// Anga applies guṇa or vṛddhi to the last vowel of the aṅga at index i when
// the following affix at i+1 licenses it: vṛddhi for a ñit/ṇit ardhadhatuka
// affix (7.2.115 aco ñṇiti), guṇa for a non-kit/ṅit sārvadhātuka affix
// (7.3.84 sārvadhātuke guṇaḥ), unless 1.1.5 blocks it.
func Anga(p *prakriya.Prakriya, i int) {
	anga := p.Get(i)
	affix := p.Get(i + 1)
	if anga == nil || affix == nil {
		return
	}
	if blocksGunaVrddhi(affix) {
		return
	}

	runes := anga.TextRunes()
	if len(runes) == 0 {
		return
	}
	last := runes[len(runes)-1]
	if !sounds.IsVowel(last) {
		return
	}

	ardhadhatukaVrddhi := affix.HasAnyTag(term.Jit, term.Nit) && affix.HasTag(term.Ardhadhatuka)

	// ghu-class roots (dā, dhā and their kin) take guṇa rather than vṛddhi
	// before a ñit/ṇit ardhadhatuka affix (1.1.20's घु designation feeds
	// 7.3.35's exception to 7.2.115 for this list).
	if ardhadhatukaVrddhi && ganapatha.Ghu.Contains(anga.Upadesha()) {
		if sub, ok := sounds.Guna(last); ok {
			p.SetAntya(sutra.AP("7.3.35"), i, sub)
		}
		return
	}

	switch {
	case ardhadhatukaVrddhi:
		if sub, ok := sounds.Vrddhi(last); ok {
			p.SetAntya(sutra.AP("7.2.115"), i, sub)
		}
	case affix.HasTag(term.Sarvadhatuka):
		if sub, ok := sounds.Guna(last); ok {
			p.SetAntya(sutra.AP("7.3.84"), i, sub)
		}
	}
}

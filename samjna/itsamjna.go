// Package samjna implements the it-saṃjñā processor: after an affix enters
// the derivation in its citation (upadeśa) form, this package identifies
// its marker phonemes, tags the term with the saṃjñā each marker licenses,
// and deletes the markers from the term's text.
//
// This is a deliberately simplified model of 1.3.2-1.3.9, narrowed to the
// shapes that matter for the affixes this engine actually inserts: a single
// leading marker consonant (1.3.5/1.3.6 style, "ādir ñituḍavaḥ"), a single
// trailing marker consonant (1.3.3 halantyam, "a final consonant [of an
// upadeśa] is it") subject to its own 1.3.4 exception (na vibhaktau tusmāḥ:
// a final t/s/m of a sup or tiṅ ending is not it — this is load-bearing,
// since the populated sup/tiṅ tables cite endings like "jas", "Bis", "tas",
// "ByAm" that end in exactly these consonants), and a single trailing
// long-vowel marker.
package samjna

import (
	"fmt"

	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/sounds"
	"github.com/ai-labs/vyakarana-go/sutra"
	"github.com/ai-labs/vyakarana-go/term"
)

// tagFor maps an it-consonant to the saṃjña tag it licenses. A marker
// consonant not present here is still stripped (it is still "it" under
// halantyam) but contributes no extra tag.
var tagFor = map[rune]term.Tag{
	'k': term.Kit, // kit
	'N': term.Git, // ṅit
	'Y': term.Jit, // ñit
	'R': term.Nit, // ṇit
	'z': term.Sit, // ṣit
	'p': term.Pit, // pit
	'S': term.Shit, // śit
}

// leadingMarkers lists consonants that are it when they begin an upadeśa
// (1.3.5 ādir ñituḍavaḥ names ñ, ṭu, ḍu; we extend it pragmatically to ṇ
// and ś, which the engine's own affix set needs — e.g. Ric (ṇic) and the
// Sap/Syan/Snu vikaraṇa citation forms). 'k' is included for 1.3.8's
// laśakvataddhite: a word-initial k of a kṛt affix (kta, ktavatu) is it.
var leadingMarkers = map[rune]bool{
	'k': true, 'Y': true, 'w': true, 'q': true, 'R': true, 'S': true,
}

// trailingVowelMarkers lists long vowels that are it when they end an
// upadeśa (1.3.2 upadeśe'janunāsika ika, pragmatically narrowed here to the
// long-vowel case this engine's sup citation forms use, e.g. sup "sU").
var trailingVowelMarkers = map[rune]bool{
	'A': true, 'I': true, 'U': true, 'F': true, 'X': true,
}

// tusmVibhakti lists the three consonants 1.3.4 na vibhaktau tusmāḥ exempts
// from halantyam when they end a sup or tiṅ (vibhakti) citation: jas, Bis,
// tas, ByAm and their kin keep their final t/s/m rather than losing it as
// an it marker.
var tusmVibhakti = map[rune]bool{'t': true, 's': true, 'm': true}

// isVibhakti reports whether t is a sup or tiṅ ending, the two term kinds
// 1.3.4's exception applies to.
func isVibhakti(t *term.Term) bool {
	return t.HasTag(term.Sup) || t.HasTag(term.Tin)
}

// Process runs the it-saṃjñā algorithm on term i of p: it strips a leading
// marker consonant (if any), then a single trailing marker consonant (if
// any), then a single trailing long-vowel marker (if any), adding the
// saṃjña tag each strip licenses. rule identifies the samjna rule to
// attribute the mutation to in the step log.
//
// Process is for affixes (kṛt, sup, tin, taddhita citation forms); their
// upadeśas are where leading-consonant and trailing-vowel markers actually
// occur. Dhātu citations never carry those two shapes as markers — a root
// can genuinely start with 'k' or end in consonant+long-vowel as ordinary
// phonemic content — so dhātu-kārya calls ProcessDhatu instead, which only
// applies 1.3.3 halantyam.
//
// Process must be total: by the time it returns, term i carries no
// residual marker phoneme (testable property 2). If an internal bug left a
// marker behind despite this algorithm, Verify below will catch it.
func Process(p *prakriya.Prakriya, i int, rule sutra.Rule) {
	t := p.Get(i)
	if t == nil {
		return
	}

	runes := t.TextRunes()
	if len(runes) == 0 {
		return
	}

	// Strip a leading marker consonant.
	if leadingMarkers[runes[0]] && len(runes) > 1 {
		if tag, ok := tagFor[runes[0]]; ok {
			p.AddTag(rule, i, tag)
		}
		p.SetText(rule, i, string(runes[1:]))
		runes = t.TextRunes()
	}

	runes = stripTrailingConsonant(p, i, rule, runes)

	// Strip a single trailing long-vowel marker (1.3.2), provided it is
	// preceded by a consonant and removing it leaves at least one phoneme
	// behind — e.g. the sup citation "sU" reduces to "s".
	if len(runes) > 1 {
		last := runes[len(runes)-1]
		if trailingVowelMarkers[last] && sounds.IsConsonant(runes[len(runes)-2]) {
			p.SetText(rule, i, string(runes[:len(runes)-1]))
		}
	}
}

// ProcessDhatu runs only the 1.3.3 halantyam trailing-consonant strip,
// the one it-shape that genuinely applies to dhātu citation forms (see
// Process's doc comment for why the other two shapes do not).
func ProcessDhatu(p *prakriya.Prakriya, i int, rule sutra.Rule) {
	t := p.Get(i)
	if t == nil {
		return
	}
	runes := t.TextRunes()
	if len(runes) == 0 {
		return
	}
	stripTrailingConsonant(p, i, rule, runes)
}

func stripTrailingConsonant(p *prakriya.Prakriya, i int, rule sutra.Rule, runes []rune) []rune {
	if len(runes) <= 1 {
		return runes
	}
	last := runes[len(runes)-1]
	if !sounds.IsConsonant(last) {
		return runes
	}
	if t := p.Get(i); tusmVibhakti[last] && t != nil && isVibhakti(t) {
		return runes // 1.3.4 na vibhaktau tusmah
	}
	if tag, ok := tagFor[last]; ok {
		p.AddTag(rule, i, tag)
	}
	p.SetText(rule, i, string(runes[:len(runes)-1]))
	return runes[:len(runes)-1]
}

// Verify panics with a *prakriya.InvariantViolation if term i still carries
// a residual marker phoneme matching leadingMarkers or tagFor after
// Process should have run. No rule stage calls it; the package's tests use
// it as a guard after Process.
func Verify(p *prakriya.Prakriya, i int, rule sutra.Rule) {
	t := p.Get(i)
	if t == nil {
		return
	}
	runes := t.TextRunes()
	if len(runes) == 0 {
		return
	}
	if leadingMarkers[runes[0]] {
		panicResidual(rule, "leading marker %q survived it-samjna", runes[0])
	}
	last := runes[len(runes)-1]
	if _, ok := tagFor[last]; ok {
		panicResidual(rule, "trailing marker %q survived it-samjna", last)
	}
	if trailingVowelMarkers[last] && len(runes) > 1 && sounds.IsConsonant(runes[len(runes)-2]) {
		panicResidual(rule, "trailing vowel marker %q survived it-samjna", last)
	}
}

func panicResidual(rule sutra.Rule, format string, args ...any) {
	// Reuse the same invariant-violation panic shape as package prakriya's
	// operators so the driver's single recover() site catches both.
	panic(&prakriya.InvariantViolation{Rule: rule, Msg: fmt.Sprintf(format, args...)})
}

// Stage abhyasa implements dvitva (reduplication), needed for juhotyadi
// present stems and for the san/yaṅ sanādi formations (6.1.9 sanyaṅoḥ).
package stages

import (
	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/sounds"
	"github.com/ai-labs/vyakarana-go/sutra"
	"github.com/ai-labs/vyakarana-go/term"
)

// abhyasaText computes the reduplicant for a dhātu text per the
// traditional light-syllable abbreviation (7.4.59 hrasvah, 7.4.60
// haladih-sesah): keep the first consonant (if any) plus a short vowel
// matching the root's own first vowel's savarṇa class.
func abhyasaText(dhatuText string) string {
	runes := []rune(dhatuText)
	if len(runes) == 0 {
		return ""
	}
	var cons, vowel string
	i := 0
	if sounds.IsConsonant(runes[0]) {
		cons = string(runes[0])
		i = 1
	}
	if i < len(runes) && sounds.IsVowel(runes[i]) {
		short := sounds.NearestSavarna(runes[i])
		if sounds.IsDirgha(short) {
			if g, ok := sounds.Guna(short); ok {
				short = []rune(g)[0]
			}
		}
		vowel = string(short)
	}
	return cons + vowel
}

// Dvitva prefixes a reduplicant term before the dhātu at index i, tagged
// Abhyasa, and marks the dhātu Abhyasta.
func Dvitva(p *prakriya.Prakriya, i int) {
	dhatu := p.Get(i)
	if dhatu == nil {
		return
	}
	reduplicant := abhyasaText(dhatu.Text())
	if reduplicant == "" {
		return
	}
	t := term.New(reduplicant)
	t.AddTag(term.Abhyasa)
	p.InsertBefore(sutra.AP("6.1.1"), i, t)
	p.AddTag(sutra.AP("6.1.8"), i+1, term.Abhyasta)
}

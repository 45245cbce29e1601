// Stage acsandhi applies the tripādī's vowel-sandhi rules (6.1-8.4.68) at
// term junctions. Only the handful this engine needs are modeled: see
// each rule's doc comment for the corresponding sūtra.
package stages

import (
	"strings"

	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/sounds"
	"github.com/ai-labs/vyakarana-go/sutra"
)

// glideFor maps e/o/ai/au to the glide substitute 6.1.78 eco'yavāyāvaḥ
// installs when any vowel follows: e->ay, o->av, E->Ay, O->Av.
var glideFor = map[rune]string{
	'e': "ay", 'o': "av", 'E': "Ay", 'O': "Av",
}

// AcSandhi scans adjacent term pairs and applies eco'yavāyāvaḥ wherever
// term i ends in e/o/ai/au and term i+1 begins with a vowel.
func AcSandhi(p *prakriya.Prakriya) {
	for i := 0; i < p.Len()-1; i++ {
		left := p.Get(i)
		right := p.Get(i + 1)
		if left == nil || right == nil {
			continue
		}
		lr := left.TextRunes()
		if len(lr) == 0 {
			continue
		}
		rr := right.TextRunes()
		if len(rr) == 0 || !sounds.IsVowel(rr[0]) {
			continue
		}
		last := lr[len(lr)-1]
		glide, ok := glideFor[last]
		if !ok {
			continue
		}
		p.SetAntya(sutra.AP("6.1.78"), i, glide)
	}
}

// Visarga converts a trailing 's' (or 'r', treated as an 's' allophone for
// this engine's purposes) at the very end of the derivation into visarga
// (8.3.15 kharavasānayor visarjanīyah / 8.3.34 visarjanīyasya sah), unless
// the branch has already sealed on a different final rule.
func Visarga(p *prakriya.Prakriya) {
	if p.Sealed() {
		return
	}
	text := p.Text()
	if strings.HasSuffix(text, "s") || strings.HasSuffix(text, "r") {
		i := p.Len() - 1
		t := p.Get(i)
		if t == nil {
			return
		}
		p.SetAntya(sutra.AP("8.3.15"), i, "H")
	}
}

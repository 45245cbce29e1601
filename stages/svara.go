// Stage svara assigns accent placement via package phit, recorded
// alongside the surface text rather than mutating it (SLP1 carries no
// accent marks in this engine's output; see the base spec's Non-goals).
package stages

import (
	"github.com/ai-labs/vyakarana-go/phit"
	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/sounds"
)

// Svara computes the default accent placement for the finished pada's
// vowel sequence.
func Svara(p *prakriya.Prakriya) phit.Accent {
	count := 0
	for _, r := range p.Text() {
		if sounds.IsVowel(r) {
			count++
		}
	}
	return phit.Default(count)
}

// Stage stritva applies feminine-stem formation (4.1.3 onward): appending
// NIp/Cap/wAp-class affixes that turn a masculine/neuter prātipadika into
// its feminine counterpart. Only the "wAp" (a -> A) default is modeled.
package stages

import (
	"strings"

	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/sutra"
)

// Tap appends the default feminine affix "wAp" (4.1.4 ajadyatastap) by
// replacing a trailing short 'a' with long 'A', the common a-stem ->
// A-stem feminine formation.
func Tap(p *prakriya.Prakriya, i int) bool {
	t := p.Get(i)
	if t == nil || !strings.HasSuffix(t.Text(), "a") {
		return false
	}
	p.SetAntya(sutra.AP("4.1.4"), i, "A")
	return true
}

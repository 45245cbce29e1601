package stages

import (
	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/samjna"
	"github.com/ai-labs/vyakarana-go/sutra"
)

// samjnaProcessLast runs it-saṃjña on the most recently appended term, the
// common case right after inserting a fresh affix.
func samjnaProcessLast(p *prakriya.Prakriya) {
	if p.Len() == 0 {
		return
	}
	samjna.Process(p, p.Len()-1, sutra.AP("1.3.2"))
}

package stages

import "github.com/ai-labs/vyakarana-go/prakriya"

// Tripadi runs the self-sealing finalization rules (8.1.16 onward): ac-sandhi
// across the whole pada, then visarga formation, then seals the branch so
// no later stage mutates it again (testable property 8).
func Tripadi(p *prakriya.Prakriya) {
	if p.Sealed() {
		return
	}
	AcSandhi(p)
	Visarga(p)
	p.Seal()
}

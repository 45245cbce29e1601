// Package prakriya holds the mutable derivation state machine: an ordered
// sequence of terms, the append-only step log, the optional-rule choice
// stack used for branching, and the meaning (artha) context.
//
// A Prakriyā is owned exclusively by one derivation branch. When the driver
// explores an optional rule it clones the whole Prakriyā so each branch
// mutates a disjoint copy; see Clone.
package prakriya

import (
	"github.com/ai-labs/vyakarana-go/sutra"
	"github.com/ai-labs/vyakarana-go/term"
)

// Decision records whether an optional rule was accepted or declined.
type Decision bool

const (
	Decline Decision = false
	Accept  Decision = true
)

// RuleChoice is one entry in a Prakriyā's branch identity: which optional
// rule was encountered, and what was decided. The full slice of RuleChoices
// in arrival order is the branch's canonical identity for memoization
// (§5 of the base spec).
type RuleChoice struct {
	Rule     sutra.Rule
	Decision Decision
}

// Step is one append-only log entry: a rule that fired, and a snapshot of
// the concatenated term text immediately after it fired. Logging is
// suppressible via Config.LogSteps for throughput, but suppressing it must
// never change the resulting text (testable property 5).
type Step struct {
	Rule     sutra.Rule
	Snapshot string
}

// Config carries per-derivation flags.
type Config struct {
	// LogSteps enables step recording. Disabled by default for throughput;
	// the regression harness and debugging tools turn it on.
	LogSteps bool
	// Chandasi marks a derivation as Vedic (chandas) register. No rule
	// stage in this engine reads it.
	Chandasi bool
	// MaxBranches is a cap on optional-rule branches, zero meaning
	// unbounded. The vyakarana driver does not read it: no modeled rule is
	// optional, so every request runs a single branch.
	MaxBranches int
}

// Prakriya is one derivation branch: an ordered term sequence plus the
// bookkeeping needed to log, branch, and finalize it.
type Prakriya struct {
	terms       []*term.Term
	steps       []Step
	ruleChoices []RuleChoice
	arthaStack  []string
	config      Config
	sealed      bool // true once a tripadi rule has fired (§4.3.4)
}

// New creates an empty Prakriya with the given config.
func New(cfg Config) *Prakriya {
	return &Prakriya{config: cfg}
}

// Config returns the derivation's configuration.
func (p *Prakriya) Config() Config { return p.config }

// Len returns the number of terms.
func (p *Prakriya) Len() int { return len(p.terms) }

// Get returns the term at index i, or nil if i is out of range.
func (p *Prakriya) Get(i int) *term.Term {
	if i < 0 || i >= len(p.terms) {
		return nil
	}
	return p.terms[i]
}

// Terms returns the live term slice. Callers must not retain the returned
// slice across a mutating call (Insert/Delete reallocate it).
func (p *Prakriya) Terms() []*term.Term { return p.terms }

// Append adds t to the end of the term sequence without logging (used only
// during initial seeding by the driver, before any rule has fired).
func (p *Prakriya) Append(t *term.Term) {
	p.terms = append(p.terms, t)
}

// FindFirst returns the index of the first term carrying tag, or -1.
func (p *Prakriya) FindFirst(tag term.Tag) int {
	for i, t := range p.terms {
		if t.HasTag(tag) {
			return i
		}
	}
	return -1
}

// FindLast returns the index of the last term carrying tag, or -1.
func (p *Prakriya) FindLast(tag term.Tag) int {
	for i := len(p.terms) - 1; i >= 0; i-- {
		if p.terms[i].HasTag(tag) {
			return i
		}
	}
	return -1
}

// FindFirstWhere returns the index of the first term satisfying pred, or -1.
func (p *Prakriya) FindFirstWhere(pred func(*term.Term) bool) int {
	for i, t := range p.terms {
		if pred(t) {
			return i
		}
	}
	return -1
}

// Has reports whether the term at index i satisfies pred. Out-of-range
// indices report false rather than panicking, since many rule predicates
// probe a neighbour index ("i+1", "i-1") that may not exist.
func (p *Prakriya) Has(i int, pred func(*term.Term) bool) bool {
	t := p.Get(i)
	if t == nil {
		return false
	}
	return pred(t)
}

// Text concatenates every term's current text, the engine's final read-out.
func (p *Prakriya) Text() string {
	out := ""
	for _, t := range p.terms {
		out += t.Text()
	}
	return out
}

// Sealed reports whether a tripadi rule has already fired in this branch.
func (p *Prakriya) Sealed() bool { return p.sealed }

// Seal marks the branch as sealed; called once by the first tripadi rule
// that fires, per the §4.3.4 self-sealing invariant (testable property 8).
func (p *Prakriya) Seal() { p.sealed = true }

// RuleChoices returns the branch's canonical identity.
func (p *Prakriya) RuleChoices() []RuleChoice { return p.ruleChoices }

// RecordChoice appends a RuleChoice for an optional rule encountered at r.
func (p *Prakriya) RecordChoice(r sutra.Rule, d Decision) {
	p.ruleChoices = append(p.ruleChoices, RuleChoice{Rule: r, Decision: d})
}

// Steps returns the step log (empty unless Config.LogSteps is set).
func (p *Prakriya) Steps() []Step { return p.steps }

// PushArtha pushes a meaning context onto the artha stack, restricting
// meaning-gated kṛt/taddhita rules to that artha until popped.
func (p *Prakriya) PushArtha(artha string) { p.arthaStack = append(p.arthaStack, artha) }

// PopArtha pops the most recent artha context, if any.
func (p *Prakriya) PopArtha() {
	if len(p.arthaStack) > 0 {
		p.arthaStack = p.arthaStack[:len(p.arthaStack)-1]
	}
}

// Artha returns the current meaning context, or "" if none is active.
func (p *Prakriya) Artha() string {
	if len(p.arthaStack) == 0 {
		return ""
	}
	return p.arthaStack[len(p.arthaStack)-1]
}

// ArthaMatches reports whether the current artha context allows a rule
// restricted to want: an unspecified current artha always matches, as does
// an unrestricted rule (want == "").
func (p *Prakriya) ArthaMatches(want string) bool {
	if want == "" {
		return true
	}
	cur := p.Artha()
	return cur == "" || cur == want
}

// Clone returns a deep copy of the Prakriya with disjoint term ownership,
// used when the driver branches on an optional rule so that each branch
// mutates its own copy (§5 concurrency model: "the engine clones the
// Prakriyā so both branches own disjoint copies").
func (p *Prakriya) Clone() *Prakriya {
	cp := &Prakriya{
		terms:       make([]*term.Term, len(p.terms)),
		steps:       append([]Step(nil), p.steps...),
		ruleChoices: append([]RuleChoice(nil), p.ruleChoices...),
		arthaStack:  append([]string(nil), p.arthaStack...),
		config:      p.config,
		sealed:      p.sealed,
	}
	for i, t := range p.terms {
		cp.terms[i] = t.Clone()
	}
	return cp
}

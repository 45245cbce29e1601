package prakriya

import (
	"fmt"

	"github.com/ai-labs/vyakarana-go/sutra"
	"github.com/ai-labs/vyakarana-go/term"
)

// InvariantViolation is the panic value raised by an operator asked to act
// on an out-of-range term index, or by the it-saṃjñā processor when it
// finds a residual marker after it should have stripped one. Per §7 of the
// base spec this should be unreachable; when it happens the branch that
// raised it is abandoned by the driver (see vyakarana.recoverBranch), never
// silently swallowed.
type InvariantViolation struct {
	Rule sutra.Rule
	Msg  string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("rule invariant violation at %s: %s", e.Rule, e.Msg)
}

func invariant(rule sutra.Rule, format string, args ...any) {
	panic(&InvariantViolation{Rule: rule, Msg: fmt.Sprintf(format, args...)})
}

// logStep appends a Step if step logging is enabled. Every operator below
// calls this after mutating, so steps and mutations never drift apart
// (§3 invariant: "once a rule is logged in steps, the mutation it names
// must already have been applied").
func (p *Prakriya) logStep(rule sutra.Rule) {
	if !p.config.LogSteps {
		return
	}
	p.steps = append(p.steps, Step{Rule: rule, Snapshot: p.Text()})
}

func (p *Prakriya) checkIndex(rule sutra.Rule, i int) {
	if i < 0 || i >= len(p.terms) {
		invariant(rule, "term index %d out of range (len=%d)", i, len(p.terms))
	}
}

// SetText replaces term i's text with s and logs rule.
func (p *Prakriya) SetText(rule sutra.Rule, i int, s string) {
	p.checkIndex(rule, i)
	p.terms[i].SetText(s)
	p.logStep(rule)
}

// SetAntya replaces the last phoneme of term i with c and logs rule.
func (p *Prakriya) SetAntya(rule sutra.Rule, i int, c string) {
	p.checkIndex(rule, i)
	p.terms[i].SetAntya(c)
	p.logStep(rule)
}

// SetUpadha replaces the penultimate phoneme of term i with c and logs rule.
func (p *Prakriya) SetUpadha(rule sutra.Rule, i int, c string) {
	p.checkIndex(rule, i)
	p.terms[i].SetUpadha(c)
	p.logStep(rule)
}

// AddTag inserts tag into term i's tag set and logs rule.
func (p *Prakriya) AddTag(rule sutra.Rule, i int, tag term.Tag) {
	p.checkIndex(rule, i)
	p.terms[i].AddTag(tag)
	p.logStep(rule)
}

// InsertBefore splices t into the sequence immediately before index i and
// logs rule. i may equal len(terms) to mean "at the end", matching
// InsertAfter(len-1, t).
func (p *Prakriya) InsertBefore(rule sutra.Rule, i int, t *term.Term) {
	if i < 0 || i > len(p.terms) {
		invariant(rule, "insert index %d out of range (len=%d)", i, len(p.terms))
	}
	p.terms = append(p.terms, nil)
	copy(p.terms[i+1:], p.terms[i:])
	p.terms[i] = t
	p.logStep(rule)
}

// InsertAfter splices t into the sequence immediately after index i.
func (p *Prakriya) InsertAfter(rule sutra.Rule, i int, t *term.Term) {
	p.checkIndex(rule, i)
	p.InsertBefore(rule, i+1, t)
}

// Delete removes term i from the sequence and logs rule.
func (p *Prakriya) Delete(rule sutra.Rule, i int) {
	p.checkIndex(rule, i)
	p.terms = append(p.terms[:i], p.terms[i+1:]...)
	p.logStep(rule)
}

// Adesha substitutes term i's text with s ("ādeśa", a rule-driven
// replacement) and logs rule. Distinguished from SetText only by intent:
// Adesha is for rule-triggered substitutions that callers want to read as
// "replace X with Y per rule R" in the step log.
func (p *Prakriya) Adesha(rule sutra.Rule, i int, s string) {
	p.SetText(rule, i, s)
}

// Nipatana sets the entire derivation's final result by fiat, for
// irregular forms the general rule machinery cannot produce
// compositionally (e.g. "asti" as a suppletive form). It collapses the
// term sequence to a single Pada-tagged term carrying s, and seals the
// branch exactly as tripadi completion does, since no further rule should
// touch an irregular form.
func (p *Prakriya) Nipatana(rule sutra.Rule, s string) {
	irregular := term.New(s)
	irregular.AddTag(term.Pada)
	p.terms = []*term.Term{irregular}
	p.sealed = true
	p.logStep(rule)
}

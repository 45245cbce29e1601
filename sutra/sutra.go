// Package sutra identifies the rules the derivation engine can fire,
// namespaced by the source text each belongs to. A flat "rule id" string
// would make it cheap for two unrelated texts to collide on the same
// numbering (the Aṣṭādhyāyī and the Uṇādipāṭha both have a "1.1"); keeping
// the source alongside the code avoids that and lets the engine check
// testable property 3 ("every step names a real rule id") against a fixed,
// enumerable set of sources rather than free-text matching.
package sutra

// Source identifies which śāstra text a Rule's Code is drawn from.
type Source int

const (
	Ashtadhyayi Source = iota // Pāṇini's sūtras, "a.p.s" numbering
	Ganapatha                 // word-group references, e.g. "sarvadi"
	Unadi                     // Uṇādipāṭha, "UP n.n" numbering
	Linganushasana            // gender-assignment sūtras
	Phit                      // Phiṭ-sūtras (accent)
	Kashika                   // Kāśikāvṛtti commentary clarifications
	Dhatupatha                // Dhatupatha-internal notes/tags
	Adhoc                     // irregular/nipatana forms with no clean citation
)

var sourceNames = map[Source]string{
	Ashtadhyayi: "Ashtadhyayi", Ganapatha: "Ganapatha", Unadi: "Unadi",
	Linganushasana: "Linganushasana", Phit: "Phit", Kashika: "Kashika",
	Dhatupatha: "Dhatupatha", Adhoc: "Adhoc",
}

func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return "Source(?)"
}

// Rule names one firing of a sutra: its source text and the code within
// that text (e.g. {Ashtadhyayi, "7.3.84"} or {Unadi, "1.1"}).
type Rule struct {
	Source Source
	Code   string
}

// AP builds an Aṣṭādhyāyī rule reference.
func AP(code string) Rule { return Rule{Ashtadhyayi, code} }

// GP builds a Gaṇapāṭha rule reference.
func GP(code string) Rule { return Rule{Ganapatha, code} }

// UP builds an Uṇādipāṭha rule reference.
func UP(code string) Rule { return Rule{Unadi, code} }

// LA builds a Liṅgānuśāsana rule reference.
func LA(code string) Rule { return Rule{Linganushasana, code} }

// PH builds a Phiṭ-sūtra rule reference.
func PH(code string) Rule { return Rule{Phit, code} }

// KV builds a Kāśikā commentary rule reference.
func KV(code string) Rule { return Rule{Kashika, code} }

// DP builds a Dhatupatha-internal rule reference.
func DP(code string) Rule { return Rule{Dhatupatha, code} }

// AD builds an ad-hoc/irregular rule reference. label should describe the
// irregularity (e.g. "nipatana:asti") since there is no sutra citation to
// fall back on.
func AD(label string) Rule { return Rule{Adhoc, label} }

// String renders the rule as "Source code", e.g. "Ashtadhyayi 7.3.84".
func (r Rule) String() string {
	return r.Source.String() + " " + r.Code
}

// KnownSources lists every Source the engine can cite, used by tests that
// verify testable property 3 (every step names a rule from a known table).
func KnownSources() []Source {
	return []Source{Ashtadhyayi, Ganapatha, Unadi, Linganushasana, Phit, Kashika, Dhatupatha, Adhoc}
}

// IsKnownSource reports whether s is one of KnownSources.
func IsKnownSource(s Source) bool {
	for _, known := range KnownSources() {
		if known == s {
			return true
		}
	}
	return false
}

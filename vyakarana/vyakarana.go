// Package vyakarana is the public driver: it seeds a Prakriyā from a
// caller's input, runs the fixed rule-stage pipeline, and returns the
// resulting surface forms (padas), deduplicated and sorted. Steps are
// logged on the Prakriyā during the run but are not returned to the caller.
//
// No rule modeled here is optional, so each Derive* call runs a single
// branch and never calls prakriya.Prakriya.Clone. An invariant violation is
// recovered by recoverBranch and returned as a RuleInvariantViolation error.
package vyakarana

import (
	"sort"

	"github.com/ai-labs/vyakarana-go/dhatupatha"
	"github.com/ai-labs/vyakarana-go/krt"
	"github.com/ai-labs/vyakarana-go/lingas"
	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/stages"
	"github.com/ai-labs/vyakarana-go/term"
	"github.com/ai-labs/vyakarana-go/unadi"
	"github.com/google/uuid"
)

// Dhatu names a verbal root to derive from, either by its citation
// (upadeśa) text directly, or by (Gana, Index) lookup in a Dhatupatha.
type Dhatu struct {
	Upadesha string
	Gana     term.Gana
	Index    int // used only when Upadesha == ""
	Table    *dhatupatha.Dhatupatha // nil means dhatupatha.Default()
}

func (d Dhatu) resolve() (string, term.Gana, error) {
	if d.Upadesha != "" {
		return d.Upadesha, d.Gana, nil
	}
	table := d.Table
	if table == nil {
		table = dhatupatha.Default()
	}
	entry, ok := table.Find(d.Gana, d.Index)
	if !ok {
		return "", 0, malformed("no dhatupatha entry for gana %d index %d", d.Gana, d.Index)
	}
	return entry.Upadesha, entry.Gana, nil
}

// Tinanta describes a finite verb to derive.
type Tinanta struct {
	Dhatu      Dhatu
	Lakara     string // "laT", ...
	Purusha    int    // 1, 2, 3
	Vacana     int    // 1, 2, 3
	Atmanepada bool
	Sanadi     string // "", "san", "yak" — sanadi affix to insert first
}

// Subanta describes a nominal declension of an already-formed stem.
type Subanta struct {
	Pratipadika string
	Vibhakti    int
	Vacana      int
	// Feminine requests wAp (a -> A) stem formation (4.1.4) before
	// declension, e.g. "deva" -> "devA" -> devAH (prathama eka).
	Feminine bool
}

// Krdanta describes a primary-derivative nominal stem built from a dhātu.
type Krdanta struct {
	Dhatu Dhatu
	Krt   string // "kta", "tavya", or an uṇādi affix name ("aru")
}

// Taddhita describes a secondary-derivative nominal stem built from an
// already-formed prātipadika, declined in its prathama-eka surface form.
type Taddhita struct {
	Pratipadika string
}

// Samasa describes a two-member nominal compound, declined in its
// prathama-eka surface form.
type Samasa struct {
	Purva  string // first member, already stripped of any sup ending
	Uttara string // second member, already stripped of any sup ending
	Type   stages.CompoundType
}

func newPrakriya() *prakriya.Prakriya {
	return prakriya.New(prakriya.Config{LogSteps: true})
}

// traceID returns a fresh identifier for one Derive* call's log lines.
func traceID() string { return uuid.NewString() }

func seedDhatu(p *prakriya.Prakriya, d Dhatu) (*term.Term, error) {
	upadesha, gana, err := d.resolve()
	if err != nil {
		return nil, err
	}
	if upadesha == "" {
		return nil, malformed("dhatu upadesha is empty")
	}
	t := term.MakeUpadesha(upadesha)
	t.AddTag(term.Dhatu)
	t.Gana = gana
	p.Append(t)
	return t, nil
}

// DeriveDhatus resolves d to its post-dhatukarya text (it-letters,
// augments, and citation prefixes stripped). Most callers want
// DeriveTinantas or DeriveKrdantas instead; this is exposed for tooling
// that inspects the Dhatupatha directly (the regression harness's
// "dhatu" test-case rows, see cmd/prakriyacli).
func DeriveDhatus(d Dhatu) (result []string, err error) {
	trace := traceID()
	defer recoverBranch(&err, trace)

	p := newPrakriya()
	if _, err := seedDhatu(p, d); err != nil {
		return nil, err
	}
	stages.DhatuKarya(p)
	logger.Debug().Str("trace", trace).Str("text", p.Text()).Msg("derive dhatu")
	return dedupeSorted([]string{p.Text()}), nil
}

// DeriveTinantas derives every surface form (pada) for t, deduplicated and
// sorted.
func DeriveTinantas(t Tinanta) (result []string, err error) {
	trace := traceID()
	defer recoverBranch(&err, trace)

	if t.Purusha < 1 || t.Purusha > 3 || t.Vacana < 1 || t.Vacana > 3 {
		return nil, malformed("purusha/vacana out of range: %d/%d", t.Purusha, t.Vacana)
	}

	p := newPrakriya()
	if _, err := seedDhatu(p, t.Dhatu); err != nil {
		return nil, err
	}
	stages.DhatuKarya(p)

	dhatuIdx := 0
	switch t.Sanadi {
	case "san":
		stages.Dvitva(p, dhatuIdx)
		dhatuIdx++
		stages.San(p, dhatuIdx)
	case "yak":
		stages.Yak(p, dhatuIdx)
	}

	lastDhatuLikeIdx := dhatuLikeIndex(p)
	if lastDhatuLikeIdx < 0 {
		return nil, malformed("no dhatu-like term found after sanadi stage")
	}
	if gana := p.Get(lastDhatuLikeIdx).Gana; gana == term.Juhotyadi {
		stages.Dvitva(p, lastDhatuLikeIdx)
		lastDhatuLikeIdx++
	}

	stages.Vikarana(p, lastDhatuLikeIdx)
	stages.Anga(p, lastDhatuLikeIdx)
	if !stages.AttachTin(p, t.Lakara, t.Purusha, t.Vacana, t.Atmanepada) {
		return nil, malformed("no tin ending for lakara=%s purusha=%d vacana=%d atmanepada=%v",
			t.Lakara, t.Purusha, t.Vacana, t.Atmanepada)
	}
	// The vikarana's own final vowel is itself the aṅga's last vowel once
	// it has been inserted, so it is separately subject to 7.3.84/7.2.115
	// against the tin ending that follows it (e.g. kf+u+mip -> kf+u(guna:o)+mi
	// = karomi, not karumi).
	stages.Anga(p, lastDhatuLikeIdx+1)
	stages.Tripadi(p)

	logger.Debug().Str("trace", trace).Str("text", p.Text()).Msg("derive tinanta")
	return dedupeSorted([]string{p.Text()}), nil
}

// dhatuLikeIndex returns the index of the last term tagged Dhatu or Sanadi,
// the position subsequent stages treat as "the aṅga so far".
func dhatuLikeIndex(p *prakriya.Prakriya) int {
	for i := p.Len() - 1; i >= 0; i-- {
		t := p.Get(i)
		if t.HasTag(term.Dhatu) || t.HasTag(term.Sanadi) {
			return i
		}
	}
	return -1
}

// DeriveKrdantas derives the prātipadika (nominal stem) for k, in its
// unmarked (prathama eka) surface form.
func DeriveKrdantas(k Krdanta) (result []string, err error) {
	trace := traceID()
	defer recoverBranch(&err, trace)

	p := newPrakriya()
	if _, err := seedDhatu(p, k.Dhatu); err != nil {
		return nil, err
	}
	stages.DhatuKarya(p)

	dhatuIdx := p.Len() - 1
	switch k.Krt {
	case "kta":
		if !krt.Attach(p, dhatuIdx, krt.Kta) {
			return nil, malformed("kta affix rejected by artha gate")
		}
	case "tavya":
		if !krt.Attach(p, dhatuIdx, krt.Tavya) {
			return nil, malformed("tavya affix rejected by artha gate")
		}
	default:
		if !unadi.TryAttach(p, dhatuIdx) {
			return nil, malformed("unrecognized krt/unadi affix %q", k.Krt)
		}
	}
	stages.Anga(p, dhatuIdx)

	// Default to prathama-eka declension so the returned form is a
	// complete pada, not a bare stem.
	stages.AttachSup(p, dhatuIdx+1, 1, 1)
	stages.Anga(p, dhatuIdx+1)
	stages.Tripadi(p)

	logger.Debug().Str("trace", trace).Str("text", p.Text()).Msg("derive krdanta")
	return dedupeSorted([]string{p.Text()}), nil
}

// DeriveSubantas declines an already-formed prātipadika.
func DeriveSubantas(s Subanta) (result []string, err error) {
	trace := traceID()
	defer recoverBranch(&err, trace)

	if s.Pratipadika == "" {
		return nil, malformed("pratipadika is empty")
	}
	p := newPrakriya()
	t := term.New(s.Pratipadika)
	p.Append(t)
	if s.Feminine {
		stages.Tap(p, 0)
	}

	stemRunes := p.Get(0).TextRunes()
	gender := lingas.ForStem(stemRunes[len(stemRunes)-1])

	if !stages.AttachSup(p, 0, s.Vibhakti, s.Vacana) {
		return nil, malformed("no sup ending for vibhakti=%d vacana=%d", s.Vibhakti, s.Vacana)
	}
	stages.Anga(p, 0)
	stages.Tripadi(p)

	accent := stages.Svara(p)
	logger.Debug().Str("trace", trace).Str("text", p.Text()).Int("accent_vowel_index", accent.VowelIndex).
		Str("linga", gender.String()).Msg("derive subanta")
	return dedupeSorted([]string{p.Text()}), nil
}

// DeriveTaddhitas attaches the matup possessive affix to t's prātipadika
// and declines the result in its prathama-eka surface form.
func DeriveTaddhitas(t Taddhita) (result []string, err error) {
	trace := traceID()
	defer recoverBranch(&err, trace)

	if t.Pratipadika == "" {
		return nil, malformed("pratipadika is empty")
	}
	p := newPrakriya()
	p.Append(term.New(t.Pratipadika))
	stages.AttachTaddhita(p, 0)

	if !stages.AttachSup(p, 1, 1, 1) {
		return nil, malformed("no prathama-eka sup ending available")
	}
	stages.Anga(p, 1)
	stages.Tripadi(p)

	logger.Debug().Str("trace", trace).Str("text", p.Text()).Msg("derive taddhita")
	return dedupeSorted([]string{p.Text()}), nil
}

// DeriveSamasas joins s's two members into a compound and declines the
// result in its prathama-eka surface form.
func DeriveSamasas(s Samasa) (result []string, err error) {
	trace := traceID()
	defer recoverBranch(&err, trace)

	if s.Purva == "" || s.Uttara == "" {
		return nil, malformed("samasa requires both purva and uttara members")
	}
	p := newPrakriya()
	p.Append(term.New(s.Purva))
	p.Append(term.New(s.Uttara))
	stages.Join(p, 0, s.Type)

	if !stages.AttachSup(p, 1, 1, 1) {
		return nil, malformed("no prathama-eka sup ending available")
	}
	stages.Anga(p, 1)
	stages.Tripadi(p)

	logger.Debug().Str("trace", trace).Str("text", p.Text()).Msg("derive samasa")
	return dedupeSorted([]string{p.Text()}), nil
}

// recoverBranch is the single site where a *prakriya.InvariantViolation
// panic is converted into a RuleInvariantViolation error. Every Derive*
// function defers this immediately after assigning its trace id.
func recoverBranch(errOut *error, trace string) {
	r := recover()
	if r == nil {
		return
	}
	iv, ok := r.(*prakriya.InvariantViolation)
	if !ok {
		panic(r) // not ours; a real programming bug elsewhere, propagate it
	}
	logger.Error().Str("trace", trace).Str("rule", iv.Rule.String()).Msg("rule invariant violation")
	*errOut = &DerivationError{Kind: RuleInvariantViolation, Msg: iv.Error(), Err: iv}
}

// dedupeSorted returns the sorted, duplicate-free contents of forms.
func dedupeSorted(forms []string) []string {
	seen := make(map[string]bool, len(forms))
	out := make([]string, 0, len(forms))
	for _, f := range forms {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

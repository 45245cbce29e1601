// Package term defines the Term type, the single morpheme unit every rule
// stage reads and rewrites, and the closed tag universe attached to it.
//
// A Term never rewrites its own upadesha (citation form); only its text is
// mutated, and only through the operators in this package, so that every
// mutation can be logged uniformly by the caller.
//
// All functions are safe for concurrent use by multiple goroutines as long
// as distinct goroutines operate on distinct Terms — a Term itself carries
// no synchronization, the same as every other mutable value in this engine
// (see the Prakriyā ownership model in package prakriya).
package term

import "strings"

// Tag is one member of the closed grammatical/phonological marker universe.
type Tag int

const (
	Dhatu          Tag = iota // verbal root
	Pratyaya                  // any affix
	Krt                       // primary (kṛt) affix
	Krtya                     // kṛtya subtype of kṛt (tavya, anIyar, ...)
	Unadi                     // uṇādi affix
	Taddhita                  // secondary (taddhita) affix
	Sup                       // nominal ending
	Tin                       // verbal ending
	Sanadi                    // sanādi-derived root (ṇic/san/yaṅ/yak)
	Atmanepada                // ātmanepada voice marker
	Parasmaipada              // parasmaipada voice marker
	Kit                       // it-saṃjñā: kit
	Git                       // it-saṃjñā: ṅit (Ngit in ASCII-safe form)
	Jit                       // it-saṃjñā: ñit
	Sit                       // it-saṃjñā: ṣit
	Nit                       // it-saṃjñā: ṇit
	Pit                       // it-saṃjñā: pit
	Shit                      // it-saṃjñā: śit
	Ardhadhatuka              // ardhadhātuka affix
	Sarvadhatuka              // sārvadhātuka affix
	Abhyasa                   // reduplicant
	Abhyasta                  // reduplicated stem (aṅga carrying an abhyāsa)
	Pada                      // finished word
	Samasa                    // compound member
	Upasarga                  // preverb/prefix
	Agama                     // augment (it-āgama etc.)
	Nistha                    // niṣṭhā (kta/ktavatu) samjna
	Vibhakti                  // case/tense ending generically
	SetAgama                  // dhatu takes iṭ augment before ardhadhatuka (seT)
	Chandasi                  // form restricted to Vedic (chandas) register
)

var tagNames = map[Tag]string{
	Dhatu: "Dhatu", Pratyaya: "Pratyaya", Krt: "Krt", Krtya: "Krtya",
	Unadi: "Unadi", Taddhita: "Taddhita", Sup: "Sup", Tin: "Tin",
	Sanadi: "Sanadi", Atmanepada: "Atmanepada", Parasmaipada: "Parasmaipada",
	Kit: "Kit", Git: "Git", Jit: "Jit", Sit: "Sit", Nit: "Nit", Pit: "Pit",
	Shit: "Shit", Ardhadhatuka: "Ardhadhatuka", Sarvadhatuka: "Sarvadhatuka",
	Abhyasa: "Abhyasa", Abhyasta: "Abhyasta", Pada: "Pada", Samasa: "Samasa",
	Upasarga: "Upasarga", Agama: "Agama", Nistha: "Nistha", Vibhakti: "Vibhakti",
	SetAgama: "SetAgama", Chandasi: "Chandasi",
}

// String returns the tag's name, or "Tag(?)" for an unrecognized value.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "Tag(?)"
}

// Gana is one of the ten traditional dhātu classes.
type Gana int

const (
	Bhvadi Gana = iota + 1
	Adadi
	Juhotyadi
	Divadi
	Svadi
	Tudadi
	Rudhadi
	Tanadi
	Kryadi
	Curadi
)

var ganaNames = map[Gana]string{
	Bhvadi: "bhvadi", Adadi: "adadi", Juhotyadi: "juhotyadi", Divadi: "divadi",
	Svadi: "svadi", Tudadi: "tudadi", Rudhadi: "rudhadi", Tanadi: "tanadi",
	Kryadi: "kryadi", Curadi: "curadi",
}

func (g Gana) String() string {
	if name, ok := ganaNames[g]; ok {
		return name
	}
	return "gana(?)"
}

// Term represents one morpheme in the derivation.
type Term struct {
	upadesha string
	text     string
	tags     map[Tag]bool

	Lakara    string // laT, liT, ... (empty if not a tin/lakara-bearing term)
	Vikarana  string // vikarana u/nu/Sap/... inserted for this dhatu, if any
	Gana      Gana
	Antargana string // sub-class within a gana, e.g. "kut" within curadi
}

// New creates a Term whose text and upadesha both start as text.
func New(text string) *Term {
	return &Term{upadesha: text, text: text, tags: make(map[Tag]bool)}
}

// MakeUpadesha creates a Term from its citation form; upadesha is frozen to
// the given string and text starts identical to it (as it-saṃjñā has not
// run yet).
func MakeUpadesha(upadesha string) *Term {
	return &Term{upadesha: upadesha, text: upadesha, tags: make(map[Tag]bool)}
}

// Upadesha returns the term's original citation form. Never mutated after
// construction.
func (t *Term) Upadesha() string { return t.upadesha }

// Text returns the term's current surface text.
func (t *Term) Text() string { return t.text }

// HasTag reports whether the term carries tag.
func (t *Term) HasTag(tag Tag) bool { return t.tags[tag] }

// HasAllTags reports whether the term carries every given tag.
func (t *Term) HasAllTags(tags ...Tag) bool {
	for _, tag := range tags {
		if !t.tags[tag] {
			return false
		}
	}
	return true
}

// HasAnyTag reports whether the term carries at least one given tag.
func (t *Term) HasAnyTag(tags ...Tag) bool {
	for _, tag := range tags {
		if t.tags[tag] {
			return true
		}
	}
	return false
}

// Tags returns a snapshot slice of the term's tags (order unspecified).
func (t *Term) Tags() []Tag {
	out := make([]Tag, 0, len(t.tags))
	for tag := range t.tags {
		out = append(out, tag)
	}
	return out
}

// HasU reports whether the term's upadesha equals u. Some rules must branch
// on the original citation form rather than the (possibly already-mutated)
// text — see the §9 design note on has_u vs has_text: the two predicates
// are preserved separately rather than normalized into one, because
// grammar semantics differ at a handful of sites.
func (t *Term) HasU(u string) bool { return t.upadesha == u }

// HasUIn reports whether the term's upadesha matches any of us.
func (t *Term) HasUIn(us ...string) bool {
	for _, u := range us {
		if t.upadesha == u {
			return true
		}
	}
	return false
}

// HasText reports whether the term's current text equals s.
func (t *Term) HasText(s string) bool { return t.text == s }

// EndsInVowel reports whether the term's text ends in a vowel.
func (t *Term) EndsInVowel() bool {
	if t.text == "" {
		return false
	}
	r := []rune(t.text)
	return strings.ContainsRune("aAiIuUfFxXeEoO", r[len(r)-1])
}

// IsDhatu reports whether the term is tagged as a dhātu.
func (t *Term) IsDhatu() bool { return t.tags[Dhatu] }

// IsPratyaya reports whether the term is tagged as a pratyaya.
func (t *Term) IsPratyaya() bool { return t.tags[Pratyaya] }

// IsUpasarga reports whether the term is tagged as an upasarga.
func (t *Term) IsUpasarga() bool { return t.tags[Upasarga] }

// clone returns a deep copy of the term, used when Prakriyā branches.
func (t *Term) clone() *Term {
	cp := &Term{
		upadesha:  t.upadesha,
		text:      t.text,
		tags:      make(map[Tag]bool, len(t.tags)),
		Lakara:    t.Lakara,
		Vikarana:  t.Vikarana,
		Gana:      t.Gana,
		Antargana: t.Antargana,
	}
	for k, v := range t.tags {
		cp.tags[k] = v
	}
	return cp
}

// Clone is the exported form of clone, used by callers outside the package
// (the prakriya package clones term-by-term when branching).
func (t *Term) Clone() *Term { return t.clone() }

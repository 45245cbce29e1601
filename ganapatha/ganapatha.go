// Package ganapatha holds the Gaṇapāṭha: named, fixed word-lists that
// specific sūtras test membership against. Matching is by exact upadeśa,
// never by surface text, since gaṇa membership is a lexical fact about the
// citation form.
//
// Only a representative subset of each traditional list is compiled in —
// full coverage of the ~40 Gaṇapāṭha lists (thousands of words) is out of
// scope for this engine; see DESIGN.md.
package ganapatha

// List is a named, fixed sequence of upadeśa strings.
type List struct {
	Name    string
	Members []string
}

// Contains reports whether upadesha is a member of the list.
func (l List) Contains(upadesha string) bool {
	for _, m := range l.Members {
		if m == upadesha {
			return true
		}
	}
	return false
}

// Ghu is the "ghu" gaṇapāṭha referenced by several aṅga rules (roots like
// dā, dhā whose short-vowel a/A undergoes special treatment).
var Ghu = List{Name: "ghu", Members: []string{"quDA\\Y", "qudA\\Y", "do\\"}}

// Sarvadi is the "sarvādi" list used by sup-stage pronoun-declension rules.
var Sarvadi = List{Name: "sarvadi", Members: []string{
	"sarva", "viSva", "uBa", "uBaya", "qatara", "qatama", "anya", "anyatara",
}}

// Bhrsadi is the "bhṛśādi" list that licenses certain taddhita/kRt
// formations on adjectives of degree.
var Bhrsadi = List{Name: "bhrsadi", Members: []string{"BfSa", "SIGra", "kzipra", "kzipa"}}

// Kutadi is the "kuṭādi" list used by curādi-gaṇa aṅga rules.
var Kutadi = List{Name: "kutadi", Members: []string{"kuwa~", "puwa~", "lupa~"}}

// Find returns the named list (by its List.Name), or ok=false if unknown.
func Find(name string) (List, bool) {
	for _, l := range []List{Ghu, Sarvadi, Bhrsadi, Kutadi} {
		if l.Name == name {
			return l, true
		}
	}
	return List{}, false
}

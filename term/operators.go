package term

// SetText replaces the term's current text wholesale.
func (t *Term) SetText(s string) { t.text = s }

// SetAntya replaces the last phoneme of the term's text with c. c may be
// the empty string, which deletes the final phoneme.
func (t *Term) SetAntya(c string) {
	runes := []rune(t.text)
	if len(runes) == 0 {
		t.text = c
		return
	}
	t.text = string(runes[:len(runes)-1]) + c
}

// SetUpadha replaces the penultimate phoneme of the term's text with c.
// No-op if the text has fewer than two runes.
func (t *Term) SetUpadha(c string) {
	runes := []rune(t.text)
	if len(runes) < 2 {
		return
	}
	t.text = string(runes[:len(runes)-2]) + c + string(runes[len(runes)-1])
}

// AddTag inserts tag into the term's tag set. Tags are additive: calling
// this twice with the same tag is a no-op, and no operator below ever
// removes a tag (only DropTag does, and only for the few rules that name it
// explicitly).
func (t *Term) AddTag(tag Tag) {
	if t.tags == nil {
		t.tags = make(map[Tag]bool)
	}
	t.tags[tag] = true
}

// AddTags inserts every given tag.
func (t *Term) AddTags(tags ...Tag) {
	for _, tag := range tags {
		t.AddTag(tag)
	}
}

// DropTag removes tag from the term's tag set. Used only by the rare rule
// that explicitly un-marks a term (e.g. a samjna that a later, more specific
// rule overrides outright) — not a general-purpose escape hatch.
func (t *Term) DropTag(tag Tag) {
	delete(t.tags, tag)
}

// TextRunes returns the term's text as a rune slice, a convenience for
// callers that need positional phoneme access without repeating the
// []rune(t.Text()) conversion.
func (t *Term) TextRunes() []rune {
	return []rune(t.text)
}

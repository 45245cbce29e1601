package krt

import (
	"testing"

	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/term"
)

func TestAttachKta(t *testing.T) {
	p := prakriya.New(prakriya.Config{})
	dhatu := term.New("kf")
	dhatu.AddTag(term.Dhatu)
	p.Append(dhatu)

	if !Attach(p, 0, Kta) {
		t.Fatal("Kta should attach unconditionally (no artha gate)")
	}
	if p.Len() != 2 {
		t.Fatalf("want 2 terms after attach, got %d", p.Len())
	}
	last := p.Get(1)
	if last.Text() != "ta" {
		t.Fatalf("want text ta, got %q", last.Text())
	}
	if !last.HasTag(term.Kit) || !last.HasTag(term.Nistha) {
		t.Fatal("expected Kit+Nistha tags on kta")
	}
}

func TestAttachArthaGated(t *testing.T) {
	p := prakriya.New(prakriya.Config{})
	dhatu := term.New("kf")
	dhatu.AddTag(term.Dhatu)
	p.Append(dhatu)

	gated := Affix{Upadesha: "x", Rule: Kta.Rule, Artha: "onlyThisArtha", Tags: []term.Tag{term.Krt}}
	p.PushArtha("someOtherArtha")
	if Attach(p, 0, gated) {
		t.Fatal("expected artha-gated affix to be rejected")
	}
	if p.Len() != 1 {
		t.Fatal("rejected affix must not be inserted")
	}
}

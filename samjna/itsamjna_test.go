package samjna

import (
	"testing"

	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/sutra"
	"github.com/ai-labs/vyakarana-go/term"
)

func newSingleTermPrakriya(upadesha string) *prakriya.Prakriya {
	p := prakriya.New(prakriya.Config{})
	p.Append(term.MakeUpadesha(upadesha))
	return p
}

func TestProcess_LeadingMarker(t *testing.T) {
	p := newSingleTermPrakriya("Ric")
	Process(p, 0, sutra.AP("test"))
	got := p.Get(0)
	if got.Text() != "i" {
		t.Fatalf("want text %q, got %q", "i", got.Text())
	}
	if !got.HasTag(term.Nit) {
		t.Fatal("expected Nit tag from leading R marker")
	}
}

func TestProcess_TrailingLongVowel(t *testing.T) {
	p := newSingleTermPrakriya("sU")
	Process(p, 0, sutra.AP("test"))
	if got := p.Get(0).Text(); got != "s" {
		t.Fatalf("want %q, got %q", "s", got)
	}
}

func TestProcessDhatu_DoesNotStripLeadingK(t *testing.T) {
	p := newSingleTermPrakriya("kfY")
	ProcessDhatu(p, 0, sutra.AP("test"))
	if got := p.Get(0).Text(); got != "kf" {
		t.Fatalf("want %q, got %q", "kf", got)
	}
}

func TestProcess_VibhaktiExemptsTrailingTusm(t *testing.T) {
	p := newSingleTermPrakriya("jas")
	p.Get(0).AddTag(term.Sup)
	Process(p, 0, sutra.AP("test"))
	if got := p.Get(0).Text(); got != "jas" {
		t.Fatalf("1.3.4 should exempt jas's trailing s, want %q, got %q", "jas", got)
	}
}

func TestProcess_NonVibhaktiStillStripsTrailingConsonant(t *testing.T) {
	p := newSingleTermPrakriya("jas")
	Process(p, 0, sutra.AP("test"))
	if got := p.Get(0).Text(); got != "ja" {
		t.Fatalf("non-vibhakti term should still lose its trailing consonant under halantyam, want %q, got %q", "ja", got)
	}
}

func TestProcess_SupEndingKeepsTrailingM(t *testing.T) {
	p := newSingleTermPrakriya("ByAm")
	p.Get(0).AddTag(term.Sup)
	Process(p, 0, sutra.AP("test"))
	if got := p.Get(0).Text(); got != "ByAm" {
		t.Fatalf("1.3.4 should exempt ByAm's trailing m, want %q, got %q", "ByAm", got)
	}
}

func TestVerify_PassesAfterProcess(t *testing.T) {
	p := newSingleTermPrakriya("kta")
	Process(p, 0, sutra.AP("test"))
	Verify(p, 0, sutra.AP("test")) // must not panic
}

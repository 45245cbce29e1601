package unadi

import (
	"testing"

	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/term"
)

func TestTryAttachMatchesKrRoot(t *testing.T) {
	p := prakriya.New(prakriya.Config{})
	dhatu := term.MakeUpadesha("qukf\\Y")
	dhatu.AddTag(term.Dhatu)
	p.Append(dhatu)

	if !TryAttach(p, 0) {
		t.Fatal("expected uNadi aru to attach to qukf\\Y")
	}
	if p.Len() != 2 {
		t.Fatalf("want 2 terms, got %d", p.Len())
	}
}

func TestTryAttachNoMatch(t *testing.T) {
	p := prakriya.New(prakriya.Config{})
	dhatu := term.MakeUpadesha("BU")
	dhatu.AddTag(term.Dhatu)
	p.Append(dhatu)

	if TryAttach(p, 0) {
		t.Fatal("expected no uNadi match for BU")
	}
}

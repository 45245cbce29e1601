package dhatupatha

import (
	"errors"
	"testing"

	"github.com/ai-labs/vyakarana-go/term"
)

func TestDefaultLoadsAndFindsBhu(t *testing.T) {
	d := Default()
	entry, ok := d.Find(term.Bhvadi, 1)
	if !ok {
		t.Fatal("expected to find gana 1 index 1 (BU)")
	}
	if entry.Upadesha != "BU" {
		t.Fatalf("want upadesha BU, got %q", entry.Upadesha)
	}
}

func TestLoadRejectsBadHash(t *testing.T) {
	_, err := Load(defaultData, "0000000000000000000000000000000000000000000000000000000000000000")
	if !errors.Is(err, ErrHashMismatch) {
		t.Fatalf("want ErrHashMismatch, got %v", err)
	}
}

func TestLoadAcceptsGoodHash(t *testing.T) {
	d, err := Load(defaultData, DefaultSHA256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Len() == 0 {
		t.Fatal("expected at least one entry")
	}
}

func TestFindByUpadesha(t *testing.T) {
	entries := Default().FindByUpadesha("BU")
	if len(entries) != 1 {
		t.Fatalf("want 1 entry for BU, got %d", len(entries))
	}
}

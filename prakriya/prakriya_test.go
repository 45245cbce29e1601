package prakriya

import (
	"testing"

	"github.com/ai-labs/vyakarana-go/sutra"
	"github.com/ai-labs/vyakarana-go/term"
)

func TestAppendAndText(t *testing.T) {
	p := New(Config{})
	p.Append(term.New("kf"))
	p.Append(term.New("ta"))
	if p.Text() != "kfta" {
		t.Fatalf("want kfta, got %q", p.Text())
	}
}

func TestSetTextLogsStepWhenEnabled(t *testing.T) {
	p := New(Config{LogSteps: true})
	p.Append(term.New("BU"))
	p.SetText(sutra.AP("1.1.1"), 0, "Bo")
	if len(p.Steps()) != 1 {
		t.Fatalf("want 1 step, got %d", len(p.Steps()))
	}
	if p.Steps()[0].Snapshot != "Bo" {
		t.Fatalf("snapshot should reflect the mutation, got %q", p.Steps()[0].Snapshot)
	}
}

func TestSetTextDoesNotLogWhenDisabled(t *testing.T) {
	p := New(Config{LogSteps: false})
	p.Append(term.New("BU"))
	p.SetText(sutra.AP("1.1.1"), 0, "Bo")
	if len(p.Steps()) != 0 {
		t.Fatal("expected no steps logged")
	}
	if p.Text() != "Bo" {
		t.Fatal("mutation must still apply even without logging")
	}
}

func TestOutOfRangeIndexPanics(t *testing.T) {
	p := New(Config{})
	p.Append(term.New("kf"))
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on out-of-range index")
		}
		if _, ok := r.(*InvariantViolation); !ok {
			t.Fatalf("expected *InvariantViolation, got %T", r)
		}
	}()
	p.SetText(sutra.AP("1.1.1"), 5, "x")
}

func TestCloneIsIndependent(t *testing.T) {
	p := New(Config{})
	p.Append(term.New("kf"))
	cp := p.Clone()
	cp.SetText(sutra.AP("1.1.1"), 0, "kAr")
	if p.Text() == "kAr" {
		t.Fatal("mutating the clone mutated the original")
	}
}

func TestSealAndTripadiInvariant(t *testing.T) {
	p := New(Config{})
	if p.Sealed() {
		t.Fatal("new prakriya should not be sealed")
	}
	p.Seal()
	if !p.Sealed() {
		t.Fatal("Seal should mark sealed")
	}
}

func TestArthaMatches(t *testing.T) {
	p := New(Config{})
	if !p.ArthaMatches("karane") {
		t.Fatal("unrestricted current artha should match any want")
	}
	p.PushArtha("karane")
	if !p.ArthaMatches("karane") {
		t.Fatal("matching artha should match")
	}
	if p.ArthaMatches("Bave") {
		t.Fatal("mismatched artha should not match")
	}
	p.PopArtha()
	if !p.ArthaMatches("Bave") {
		t.Fatal("after pop, any want should match again")
	}
}

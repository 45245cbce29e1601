package term

import "testing"

func TestMakeUpadeshaFreezesUpadesha(t *testing.T) {
	tm := MakeUpadesha("kftvA")
	tm.SetText("kftv")
	if tm.Upadesha() != "kftvA" {
		t.Fatalf("upadesha mutated: got %q", tm.Upadesha())
	}
	if tm.Text() != "kftv" {
		t.Fatalf("text not updated: got %q", tm.Text())
	}
}

func TestHasTagAndAddTag(t *testing.T) {
	tm := New("kf")
	if tm.HasTag(Dhatu) {
		t.Fatal("new term should carry no tags")
	}
	tm.AddTag(Dhatu)
	if !tm.HasTag(Dhatu) {
		t.Fatal("AddTag did not set tag")
	}
}

func TestCloneIsDeep(t *testing.T) {
	tm := New("kf")
	tm.AddTag(Dhatu)
	cp := tm.Clone()
	cp.AddTag(Kit)
	if tm.HasTag(Kit) {
		t.Fatal("mutating clone's tags mutated the original")
	}
	cp.SetText("x")
	if tm.Text() == "x" {
		t.Fatal("mutating clone's text mutated the original")
	}
}

func TestEndsInVowel(t *testing.T) {
	cases := map[string]bool{"kf": true, "gam": false, "kfta": true, "": false}
	for text, want := range cases {
		tm := New(text)
		if got := tm.EndsInVowel(); got != want {
			t.Errorf("EndsInVowel(%q) = %v, want %v", text, got, want)
		}
	}
}

func TestTagStringUnknown(t *testing.T) {
	var bogus Tag = 9999
	if bogus.String() != "Tag(?)" {
		t.Fatalf("unexpected String() for unknown tag: %q", bogus.String())
	}
}

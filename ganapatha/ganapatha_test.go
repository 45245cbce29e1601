package ganapatha

import "testing"

func TestGhuContainsKnownMember(t *testing.T) {
	if !Ghu.Contains("qudA\\Y") {
		t.Fatal("expected qudA\\Y to be a ghu-class member")
	}
	if Ghu.Contains("BU") {
		t.Fatal("BU should not be a ghu-class member")
	}
}

func TestFindByName(t *testing.T) {
	l, ok := Find("sarvadi")
	if !ok {
		t.Fatal("expected sarvadi list to be found")
	}
	if !l.Contains("sarva") {
		t.Fatal("expected sarva in sarvadi list")
	}

	if _, ok := Find("nosuchlist"); ok {
		t.Fatal("expected unknown list name to report ok=false")
	}
}

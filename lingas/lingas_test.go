package lingas

import "testing"

func TestForStemVowelFinals(t *testing.T) {
	if ForStem('A') != Stri {
		t.Fatal("long A final should default to feminine")
	}
	if ForStem('I') != Stri {
		t.Fatal("long I final should default to feminine")
	}
	if ForStem('a') != Pum {
		t.Fatal("short a final should default to masculine")
	}
}

func TestForStemConsonantFinal(t *testing.T) {
	if ForStem('s') != Pum {
		t.Fatal("consonant final should default to masculine")
	}
}

func TestLingaString(t *testing.T) {
	if Stri.String() != "stri" {
		t.Fatalf("want stri, got %q", Stri.String())
	}
	if Linga(99).String() != "linga(?)" {
		t.Fatal("unknown linga should report a placeholder string")
	}
}

package phit

import "testing"

func TestDefaultIsAdyudatta(t *testing.T) {
	a := Default(3)
	if a.VowelIndex != 0 {
		t.Fatalf("want adyudatta default (index 0), got %d", a.VowelIndex)
	}
}

func TestDefaultHandlesZeroVowels(t *testing.T) {
	a := Default(0)
	if a.VowelIndex != 0 {
		t.Fatalf("want index 0 even with no vowels, got %d", a.VowelIndex)
	}
}

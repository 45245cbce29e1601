package sounds

import "testing"

func TestGuna(t *testing.T) {
	cases := map[rune]string{'u': "o", 'U': "o", 'f': "ar", 'i': "e", 'a': "a"}
	for r, want := range cases {
		got, ok := Guna(r)
		if !ok || got != want {
			t.Errorf("Guna(%q) = %q, %v; want %q", r, got, ok, want)
		}
	}
}

func TestVrddhi(t *testing.T) {
	cases := map[rune]string{'u': "O", 'f': "Ar", 'i': "E", 'a': "A"}
	for r, want := range cases {
		got, ok := Vrddhi(r)
		if !ok || got != want {
			t.Errorf("Vrddhi(%q) = %q, %v; want %q", r, got, ok, want)
		}
	}
}

func TestIsVowelIsConsonant(t *testing.T) {
	if !IsVowel('a') || IsConsonant('a') {
		t.Fatal("'a' should be a vowel, not a consonant")
	}
	if !IsConsonant('k') || IsVowel('k') {
		t.Fatal("'k' should be a consonant, not a vowel")
	}
}

func TestIsSavarna(t *testing.T) {
	if !IsSavarna('a', 'A') {
		t.Fatal("a and A should be savarna")
	}
	if IsSavarna('a', 'i') {
		t.Fatal("a and i should not be savarna")
	}
}

func TestLastSoundEmpty(t *testing.T) {
	if LastSound("") != 0 {
		t.Fatal("LastSound of empty string should be 0")
	}
}

func TestIsLaghu(t *testing.T) {
	if !IsLaghu("kf") {
		t.Fatal("'kf' (short vocalic r) should be laghu")
	}
	if IsLaghu("kAr") {
		t.Fatal("'kAr' (long vowel) should not be laghu")
	}
}

package stages

import (
	"testing"

	"github.com/ai-labs/vyakarana-go/prakriya"
	"github.com/ai-labs/vyakarana-go/term"
)

func TestDhatuKaryaStripsSetAgamaAndItLetter(t *testing.T) {
	p := prakriya.New(prakriya.Config{})
	d := term.MakeUpadesha("gamx~")
	d.AddTag(term.Dhatu)
	p.Append(d)

	DhatuKarya(p)

	got := p.Get(0)
	if got.Text() != "gamx" {
		t.Fatalf("want text gamx, got %q", got.Text())
	}
	if !got.HasTag(term.SetAgama) {
		t.Fatal("expected SetAgama tag from trailing '~'")
	}
}

func TestDhatuKaryaStripsQuPrefix(t *testing.T) {
	p := prakriya.New(prakriya.Config{})
	d := term.MakeUpadesha("qukf\\Y")
	d.AddTag(term.Dhatu)
	p.Append(d)

	DhatuKarya(p)

	if got := p.Get(0).Text(); got != "kf" {
		t.Fatalf("want kf, got %q", got)
	}
}

func TestAngaGunaBlockedByKit(t *testing.T) {
	p := prakriya.New(prakriya.Config{})
	dhatu := term.New("kf")
	dhatu.AddTag(term.Dhatu)
	p.Append(dhatu)

	affix := term.New("ta")
	affix.AddTags(term.Pratyaya, term.Kit, term.Ardhadhatuka)
	p.Append(affix)

	Anga(p, 0)

	if p.Get(0).Text() != "kf" {
		t.Fatalf("kit affix should block guna, got %q", p.Get(0).Text())
	}
}

func TestAngaGunaAppliesForSarvadhatuka(t *testing.T) {
	p := prakriya.New(prakriya.Config{})
	dhatu := term.New("BU")
	dhatu.AddTag(term.Dhatu)
	p.Append(dhatu)

	affix := term.New("a")
	affix.AddTags(term.Pratyaya, term.Sarvadhatuka)
	p.Append(affix)

	Anga(p, 0)

	if p.Get(0).Text() != "Bo" {
		t.Fatalf("want Bo, got %q", p.Get(0).Text())
	}
}

func TestAngaGhuClassTakesGunaNotVrddhi(t *testing.T) {
	p := prakriya.New(prakriya.Config{})
	dhatu := term.MakeUpadesha("qudA\\Y")
	dhatu.AddTag(term.Dhatu)
	p.Append(dhatu)
	DhatuKarya(p) // resolves qudA\Y -> dA, the Ghu-listed citation form

	affix := term.New("tavya")
	affix.AddTags(term.Pratyaya, term.Nit, term.Ardhadhatuka)
	p.Append(affix)

	Anga(p, 0)

	if got := p.Get(0).Text(); got != "da" {
		t.Fatalf("ghu-class root should take guna (dA -> da) rather than vrddhi, got %q", got)
	}
}

func TestAcSandhiGlideSubstitution(t *testing.T) {
	p := prakriya.New(prakriya.Config{})
	p.Append(term.New("Bo"))
	p.Append(term.New("a"))
	p.Append(term.New("ti"))

	AcSandhi(p)

	if p.Text() != "Bavati" {
		t.Fatalf("want Bavati, got %q", p.Text())
	}
}

func TestVisargaFromTrailingS(t *testing.T) {
	p := prakriya.New(prakriya.Config{})
	p.Append(term.New("deva"))
	p.Append(term.New("s"))

	Visarga(p)

	if p.Text() != "devaH" {
		t.Fatalf("want devaH, got %q", p.Text())
	}
}

func TestTripadiSealsOnce(t *testing.T) {
	p := prakriya.New(prakriya.Config{})
	p.Append(term.New("deva"))
	p.Append(term.New("s"))

	Tripadi(p)
	if !p.Sealed() {
		t.Fatal("expected prakriya to be sealed after tripadi")
	}
	before := p.Text()
	Tripadi(p) // must be a no-op once sealed
	if p.Text() != before {
		t.Fatal("tripadi re-ran after sealing")
	}
}

package vyakarana

import (
	"testing"

	"github.com/ai-labs/vyakarana-go/stages"
	"github.com/ai-labs/vyakarana-go/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveTinantas_Bhavati(t *testing.T) {
	got, err := DeriveTinantas(Tinanta{
		Dhatu:   Dhatu{Gana: term.Bhvadi, Index: 1},
		Lakara:  "laT",
		Purusha: 3,
		Vacana:  1,
	})
	require.NoError(t, err)
	assert.Contains(t, got, "Bavati")
}

func TestDeriveTinantas_Karomi(t *testing.T) {
	got, err := DeriveTinantas(Tinanta{
		Dhatu:   Dhatu{Gana: term.Tanadi, Index: 8},
		Lakara:  "laT",
		Purusha: 1,
		Vacana:  1,
	})
	require.NoError(t, err)
	assert.Contains(t, got, "karomi")
}

func TestDeriveKrdantas_Kfta(t *testing.T) {
	got, err := DeriveKrdantas(Krdanta{
		Dhatu: Dhatu{Gana: term.Tanadi, Index: 8},
		Krt:   "kta",
	})
	require.NoError(t, err)
	assert.Contains(t, got, "kftaH")
}

func TestDeriveKrdantas_Tavya(t *testing.T) {
	got, err := DeriveKrdantas(Krdanta{
		Dhatu: Dhatu{Gana: term.Tanadi, Index: 8},
		Krt:   "tavya",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestDeriveKrdantas_Karu(t *testing.T) {
	got, err := DeriveKrdantas(Krdanta{
		Dhatu: Dhatu{Gana: term.Tanadi, Index: 8},
		Krt:   "aru",
	})
	require.NoError(t, err)
	assert.Contains(t, got, "kAruH")
}

func TestDeriveDhatus_MalformedGanaIndex(t *testing.T) {
	_, err := DeriveDhatus(Dhatu{Gana: term.Curadi, Index: 9999})
	require.Error(t, err)
	var derr *DerivationError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, MalformedInput, derr.Kind)
}

func TestDeriveSubantas_Deva(t *testing.T) {
	got, err := DeriveSubantas(Subanta{Pratipadika: "deva", Vibhakti: 1, Vacana: 1})
	require.NoError(t, err)
	assert.Contains(t, got, "devaH")
}

func TestDeriveSubantas_FeminineStem(t *testing.T) {
	got, err := DeriveSubantas(Subanta{Pratipadika: "rama", Vibhakti: 1, Vacana: 1, Feminine: true})
	require.NoError(t, err)
	assert.Contains(t, got, "ramAH")
}

func TestDeriveTaddhitas_Matup(t *testing.T) {
	got, err := DeriveTaddhitas(Taddhita{Pratipadika: "goda"})
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestDeriveTaddhitas_EmptyPratipadikaRejected(t *testing.T) {
	_, err := DeriveTaddhitas(Taddhita{})
	require.Error(t, err)
}

func TestDeriveSamasas_RajaPurusha(t *testing.T) {
	got, err := DeriveSamasas(Samasa{Purva: "rAjan", Uttara: "puruRa", Type: stages.Tatpurusha})
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestDeriveTinantas_Pipasati(t *testing.T) {
	got, err := DeriveTinantas(Tinanta{
		Dhatu:   Dhatu{Upadesha: "pA\\", Gana: term.Bhvadi},
		Lakara:  "laT",
		Purusha: 3,
		Vacana:  1,
		Sanadi:  "san",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

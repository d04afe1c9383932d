package insurance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchScopedToProvider(t *testing.T) {
	c := Default()
	got := c.Search("en", "Dr. Jaime A. Acosta", "cigna")
	assert.Equal(t, []string{"CIGNA"}, got)
}

func TestSearchUnknownProviderIsEmpty(t *testing.T) {
	c := Default()
	assert.Empty(t, c.Search("en", "Dr. Nobody", ""))
	assert.Empty(t, c.Search("en", "Dr. Nobody", "cigna"))
}

func TestSearchEmptyQueryEqualsNoFilter(t *testing.T) {
	c := Default()
	all := c.Search("en", "", "")
	again := c.Search("en", "", "")
	assert.Equal(t, all, again, "identical arguments give identical, stably-ordered results")
	assert.NotEmpty(t, all)

	// union must deduplicate: CIGNA appears under every provider
	count := 0
	for _, p := range all {
		if p == "CIGNA" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSearchIsDiacriticInsensitive(t *testing.T) {
	c := NewCatalog(map[string][]string{
		"Dra. María Jiménez": {"Atención Médica Total", "CIGNA"},
	})
	got := c.Search("es", "Dra. María Jiménez", "atencion medica")
	assert.Equal(t, []string{"Atención Médica Total"}, got)

	// accented query against an unaccented plan
	got = c.Search("es", "", "áetna")
	assert.Empty(t, got)
	got = c.Search("es", "", "cígna")
	assert.Equal(t, []string{"CIGNA"}, got)
}

func TestSearchResultsAreSorted(t *testing.T) {
	c := Default()
	all := c.Search("en", "", "")
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, Fold(all[i-1]), Fold(all[i]), "results out of order at %d: %v", i, all)
	}
}

func TestProvidersSorted(t *testing.T) {
	c := Default()
	got := c.Providers()
	assert.Len(t, got, 3)
	assert.Contains(t, got, "Dr. Jaime A. Acosta")
}

func TestFold(t *testing.T) {
	assert.Equal(t, "jimenez", Fold("Jiménez"))
	assert.Equal(t, "nino sano", Fold("  Niño Sano "))
	assert.Equal(t, "cigna", Fold("CIGNA"))
}

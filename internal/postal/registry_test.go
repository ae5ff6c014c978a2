package postal

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"datagen-api/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T, lines []string) *Registry {
	t.Helper()
	return NewRegistry(lines, rand.New(rand.NewPCG(7, 7)), zerolog.Nop())
}

func TestNewRegistry_Parse(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		wantLen int
		want    []models.PostalEntry
	}{
		{
			name:    "full line",
			lines:   []string{"00-001;Warszawa;Marszałkowska;1-10;Śródmieście;warszawski;mazowieckie"},
			wantLen: 1,
			want: []models.PostalEntry{{
				PostalCode:   "00-001",
				Locality:     "Warszawa",
				Street:       "Marszałkowska",
				HouseNumbers: "1-10",
				District:     "Śródmieście",
				County:       "warszawski",
				Region:       "mazowieckie",
			}},
		},
		{
			name:    "empty street and numbers become absent",
			lines:   []string{"62-200;Gniezno;;;Gniezno;gnieźnieński;wielkopolskie"},
			wantLen: 1,
			want: []models.PostalEntry{{
				PostalCode: "62-200",
				Locality:   "Gniezno",
				District:   "Gniezno",
				County:     "gnieźnieński",
				Region:     "wielkopolskie",
			}},
		},
		{
			name:    "fields are trimmed",
			lines:   []string{" 10115 ; Berlin ; Invalidenstraße ; 43 ; Mitte ; Berlin ; Berlin "},
			wantLen: 1,
			want: []models.PostalEntry{{
				PostalCode:   "10115",
				Locality:     "Berlin",
				Street:       "Invalidenstraße",
				HouseNumbers: "43",
				District:     "Mitte",
				County:       "Berlin",
				Region:       "Berlin",
			}},
		},
		{
			name: "short line skipped, rest kept",
			lines: []string{
				"too;few;fields",
				"00-002;Warszawa;Nowy Świat;5;Śródmieście;warszawski;mazowieckie",
			},
			wantLen: 1,
			want: []models.PostalEntry{{
				PostalCode:   "00-002",
				Locality:     "Warszawa",
				Street:       "Nowy Świat",
				HouseNumbers: "5",
				District:     "Śródmieście",
				County:       "warszawski",
				Region:       "mazowieckie",
			}},
		},
		{
			name:    "no lines",
			lines:   nil,
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRegistry(t, tt.lines)
			assert.Equal(t, tt.wantLen, r.Len())
			assert.Equal(t, tt.want, r.entries)
		})
	}
}

func TestRegistry_ResolveAddress_HouseNumbers(t *testing.T) {
	r := testRegistry(t, nil)

	t.Run("range draws within bounds", func(t *testing.T) {
		entry := models.PostalEntry{Locality: "Warszawa", Street: "Marszałkowska", HouseNumbers: "10-12"}
		for i := 0; i < 100; i++ {
			addr := r.ResolveAddress(entry)
			assert.Contains(t, []string{
				"Marszałkowska 10", "Marszałkowska 11", "Marszałkowska 12",
			}, addr.Street)
		}
	})

	t.Run("reversed range still draws within bounds", func(t *testing.T) {
		entry := models.PostalEntry{Locality: "Warszawa", Street: "Prosta", HouseNumbers: "12-10"}
		for i := 0; i < 100; i++ {
			addr := r.ResolveAddress(entry)
			assert.Contains(t, []string{"Prosta 10", "Prosta 11", "Prosta 12"}, addr.Street)
		}
	})

	t.Run("list picks one element", func(t *testing.T) {
		entry := models.PostalEntry{Locality: "Warszawa", Street: "Złota", HouseNumbers: "1,3,5"}
		for i := 0; i < 100; i++ {
			addr := r.ResolveAddress(entry)
			assert.Contains(t, []string{"Złota 1", "Złota 3", "Złota 5"}, addr.Street)
		}
	})

	t.Run("single value used verbatim", func(t *testing.T) {
		entry := models.PostalEntry{Locality: "Warszawa", Street: "Krucza", HouseNumbers: "17a"}
		addr := r.ResolveAddress(entry)
		assert.Equal(t, "Krucza 17a", addr.Street)
	})

	t.Run("malformed range passes through literally", func(t *testing.T) {
		entry := models.PostalEntry{Locality: "Warszawa", Street: "Długa", HouseNumbers: "x-y"}
		addr := r.ResolveAddress(entry)
		assert.Equal(t, "Długa x-y", addr.Street)
	})

	t.Run("absent spec draws 1..150", func(t *testing.T) {
		entry := models.PostalEntry{Locality: "Warszawa", Street: "Wspólna"}
		for i := 0; i < 100; i++ {
			addr := r.ResolveAddress(entry)
			numStr := addr.Street[len("Wspólna "):]
			n, err := strconv.Atoi(numStr)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, 150)
		}
	})
}

func TestRegistry_ResolveAddress_Fields(t *testing.T) {
	r := testRegistry(t, nil)

	entry := models.PostalEntry{
		PostalCode:   "00-001",
		Locality:     "Warszawa",
		Street:       "Marszałkowska",
		HouseNumbers: "7",
		District:     "Śródmieście",
		County:       "warszawski",
		Region:       "mazowieckie",
	}

	addr := r.ResolveAddress(entry)
	assert.Equal(t, models.Address{
		Street:     "Marszałkowska 7",
		City:       "Warszawa",
		PostalCode: "00-001",
		District:   "Śródmieście",
		County:     "warszawski",
		Region:     "mazowieckie",
	}, addr)
}

func TestRegistry_ResolveAddress_NoStreetUsesLocality(t *testing.T) {
	r := testRegistry(t, nil)

	entry := models.PostalEntry{PostalCode: "62-200", Locality: "Gniezno", HouseNumbers: "4"}
	addr := r.ResolveAddress(entry)
	assert.Equal(t, "Gniezno 4", addr.Street)
	assert.Equal(t, "Gniezno", addr.City)
}

func TestRegistry_RandomEntry(t *testing.T) {
	r := testRegistry(t, []string{
		"00-001;Warszawa;Marszałkowska;1;Śródmieście;warszawski;mazowieckie",
		"30-001;Kraków;Floriańska;2;Stare Miasto;krakowski;małopolskie",
	})
	require.False(t, r.Empty())

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[r.RandomEntry().Locality] = true
	}
	assert.True(t, seen["Warszawa"])
	assert.True(t, seen["Kraków"])
}
